/*
 * batch_test.go, part of goligand.
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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	chem "github.com/rmera/goligand"
)

func pdbAtom(het bool, serial int, name, resname string, seq int, x float64) string {
	record := "ATOM"
	if het {
		record = "HETATM"
	}
	return fmt.Sprintf("%-6s%5d %-4s %3s A%4d    %8.3f%8.3f%8.3f  1.00 20.00", record, serial, name, resname, seq, x, 0.0, 0.0)
}

//water, zinc and ATP.
var xPDB = strings.Join([]string{
	pdbAtom(false, 1, " CA ", "ALA", 1, 0),
	pdbAtom(true, 2, " O  ", "HOH", 101, 3),
	pdbAtom(true, 3, "ZN  ", " ZN", 201, 6),
	pdbAtom(true, 4, " PA ", "ATP", 301, 9),
	pdbAtom(true, 5, " O1A", "ATP", 301, 10),
	"END",
}, "\n") + "\n"

func writeFile(Te *testing.T, name, content string) {
	Te.Helper()
	if err := os.WriteFile(name, []byte(content), 0o644); err != nil {
		Te.Fatal(err)
	}
}

func TestRunDefaultOutput(Te *testing.T) {
	dir := Te.TempDir()
	writeFile(Te, filepath.Join(dir, "x.pdb"), xPDB)
	var out bytes.Buffer
	R := Run(context.Background(), Config{Directory: dir, Stdout: &out})
	if !R.OK() {
		Te.Fatal(R.Err)
	}
	if R.OutputDir != filepath.Join(dir, DefaultOutputSubdir) {
		Te.Errorf("wrong output directory: %s", R.OutputDir)
	}
	if _, err := os.Stat(filepath.Join(R.OutputDir, "lig_x_1_ATP.pdb")); err != nil {
		Te.Error(err)
	}
	if !strings.HasPrefix(out.String(), "Info:  Processing all the pdb files in:  "+dir) {
		Te.Errorf("unexpected output: %q", out.String())
	}
	//the listing is sorted and contains the output directory, which is skipped.
	if !reflect.DeepEqual(R.Files, []string{DefaultOutputSubdir, "x.pdb"}) {
		Te.Errorf("unexpected file list: %v", R.Files)
	}
	if len(R.Ligands) != 1 || R.Ligands[0].Name != "ATP" {
		Te.Errorf("unexpected ligands: %+v", R.Ligands)
	}
}

func TestRunManifest(Te *testing.T) {
	dir := Te.TempDir()
	out := filepath.Join(Te.TempDir(), "ligs")
	writeFile(Te, filepath.Join(dir, "x.pdb"), xPDB)
	writeFile(Te, filepath.Join(dir, "list.txt"), "  x.pdb  \n\ny.pdb\n")
	var stdout bytes.Buffer
	R := Run(context.Background(), Config{Directory: dir, FileList: "list.txt", Output: out, Stdout: &stdout})
	var fe chem.FileError
	if e, ok := R.Err.(chem.FileError); ok {
		fe = e
	}
	if fe == nil || fe.Kind() != chem.ParseError || filepath.Base(fe.FileName()) != "y.pdb" {
		Te.Fatalf("expected a ParseError for y.pdb, got %v", R.Err)
	}
	if _, err := os.Stat(filepath.Join(out, "lig_x_1_ATP.pdb")); err != nil {
		Te.Errorf("ligand of x.pdb should have been written: %v", err)
	}
	if !strings.Contains(stdout.String(), filepath.Join(dir, "list.txt")) {
		Te.Errorf("the manifest should be reported: %q", stdout.String())
	}
}

func TestRunMissingManifest(Te *testing.T) {
	dir := Te.TempDir()
	writeFile(Te, filepath.Join(dir, "x.pdb"), xPDB)
	var stdout bytes.Buffer
	R := Run(context.Background(), Config{Directory: dir, FileList: "nothere.txt", Stdout: &stdout})
	if k, ok := chem.KindOf(R.Err); !ok || k != chem.ConfigError {
		Te.Fatalf("expected a ConfigError, got %v", R.Err)
	}
	entries, _ := os.ReadDir(R.OutputDir)
	if len(entries) != 0 || stdout.Len() != 0 {
		Te.Error("nothing should be extracted with a missing manifest")
	}
}

func TestRunAbsoluteManifest(Te *testing.T) {
	dir := Te.TempDir()
	writeFile(Te, filepath.Join(dir, "x.pdb"), xPDB)
	list := filepath.Join(Te.TempDir(), "list.txt")
	writeFile(Te, list, "x.pdb\n")
	R := Run(context.Background(), Config{Directory: dir, FileList: list, Stdout: &bytes.Buffer{}})
	if !R.OK() || len(R.Ligands) != 1 {
		Te.Errorf("expected one ligand, got %d (%v)", len(R.Ligands), R.Err)
	}
}

func TestRunReport(Te *testing.T) {
	dir := Te.TempDir()
	writeFile(Te, filepath.Join(dir, "x.pdb"), xPDB)
	report := filepath.Join(Te.TempDir(), "report.json")
	plot := filepath.Join(Te.TempDir(), "ligands.png")
	R := Run(context.Background(), Config{Directory: dir, Report: report, Plot: plot, Stdout: &bytes.Buffer{}})
	if !R.OK() {
		Te.Fatal(R.Err)
	}
	b, err := os.ReadFile(report)
	if err != nil {
		Te.Fatal(err)
	}
	var rep Report
	if err := json.Unmarshal(b, &rep); err != nil {
		Te.Fatal(err)
	}
	if rep.NLigands != 1 || rep.Ligands[0].Name != "ATP" || rep.Ligands[0].NAtoms != 2 || rep.Directory != dir {
		Te.Errorf("unexpected report: %+v", rep)
	}
	if rep.AtomsHist == nil || rep.AtomsHist.Total() != 1 || rep.AtomsHist.View()[0] != 1 {
		Te.Errorf("wrong atom count histogram: %v", rep.AtomsHist)
	}
	if rep.RgHist == nil || rep.RgHist.Sum() != 1 {
		Te.Errorf("wrong Rg histogram: %v", rep.RgHist)
	}
	if _, err := os.Stat(plot); err != nil {
		Te.Errorf("plot not written: %v", err)
	}
}

func TestRunReportError(Te *testing.T) {
	dir := Te.TempDir()
	writeFile(Te, filepath.Join(dir, "x.pdb"), xPDB)
	report := filepath.Join(dir, "nodir", "report.json")
	R := Run(context.Background(), Config{Directory: dir, Report: report, Stdout: &bytes.Buffer{}})
	if k, ok := chem.KindOf(R.Err); !ok || k != chem.WriteError {
		Te.Errorf("expected a WriteError, got %v", R.Err)
	}
}

func TestReadManifest(Te *testing.T) {
	name := filepath.Join(Te.TempDir(), "list")
	writeFile(Te, name, "b.pdb\r\n a.pdb\n\tc.pdb \n")
	files, err := ReadManifest(name)
	if err != nil {
		Te.Fatal(err)
	}
	if !reflect.DeepEqual(files, []string{"b.pdb", "a.pdb", "c.pdb"}) {
		Te.Errorf("unexpected list: %q", files)
	}
}
