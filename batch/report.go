/*
 * report.go, part of goligand.
 *
 *
 * Copyright 2024 rmeraaatacademicosdotutadotcl
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 * goligand is developed at Universidad de Tarapaca (UTA)
 *
 *
 */

package batch

import (
	"encoding/json"
	"io"
	"math"
	"os"

	"gonum.org/v1/gonum/floats"

	chem "github.com/rmera/goligand"
	"github.com/rmera/goligand/chemplot"
	"github.com/rmera/goligand/histo"
)

// Report is the JSON summary of a job.
type Report struct {
	Directory string              `json:"directory"`
	OutputDir string              `json:"output_dir"`
	Files     []string            `json:"files"`
	NLigands  int                 `json:"n_ligands"`
	Ligands   []chem.OutputLigand `json:"ligands"`
	AtomsHist *histo.Data         `json:"natoms_histogram,omitempty"` //bins of 10 atoms
	RgHist    *histo.Data         `json:"rg_histogram,omitempty"`     //10 bins, in Angstrom
}

// NewReport builds the report for the result R.
func NewReport(R Result) *Report {
	ligs := R.Ligands
	if ligs == nil {
		ligs = []chem.OutputLigand{}
	}
	rep := &Report{
		Directory: R.Directory,
		OutputDir: R.OutputDir,
		Files:     R.Files,
		NLigands:  len(ligs),
		Ligands:   ligs,
	}
	if len(ligs) == 0 {
		return rep
	}
	natoms := make([]float64, 0, len(ligs))
	rgs := make([]float64, 0, len(ligs))
	for _, l := range ligs {
		natoms = append(natoms, float64(l.NAtoms))
		rgs = append(rgs, l.Rg)
	}
	//the last divider is excluded from the histograms, so there is always room above the maximum.
	top := 10 * (math.Floor(floats.Max(natoms)/10) + 1)
	rep.AtomsHist = histo.NewData(histo.Dividers(0, top, int(top/10)), natoms)
	rep.RgHist = histo.NewData(histo.Dividers(0, math.Floor(floats.Max(rgs))+1, 10), rgs)
	return rep
}

// Encode writes the report as indented JSON to out.
func (J *Report) Encode(out io.Writer) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(J)
}

// WriteReport writes the JSON report for R to the file name. Failures are WriteErrors.
func WriteReport(name string, R Result) (err error) {
	fout, err := os.Create(name)
	if err != nil {
		return chem.NewError(chem.WriteError, name, "can't create report", err)
	}
	defer func() {
		if cerr := fout.Close(); cerr != nil && err == nil {
			err = chem.NewError(chem.WriteError, name, "can't close report", cerr)
		}
	}()
	if err = NewReport(R).Encode(fout); err != nil {
		return chem.NewError(chem.WriteError, name, "can't write report", err)
	}
	return nil
}

// writePlot saves the ligand frequency chart. Nothing is written if there
// are no ligands.
func writePlot(name string, ligs []chem.OutputLigand) error {
	if len(ligs) == 0 {
		return nil
	}
	names := make([]string, 0, len(ligs))
	for _, l := range ligs {
		names = append(names, l.Name)
	}
	if err := chemplot.LigandFrequency(names, "Ligands found", name); err != nil {
		return chem.NewError(chem.WriteError, name, "can't write plot", err)
	}
	return nil
}
