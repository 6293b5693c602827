/*
 * pdbwrite.go, part of goligand.
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

package chem

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

//PDBFileWrite writes to the file name the atoms of s accepted by sel, in PDB format.
//The file is created or truncated.
func PDBFileWrite(name string, s *Structure, sel Selector) (err error) {
	out, err := os.Create(name)
	if err != nil {
		return NewError(WriteError, name, "can't create file", err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = NewError(WriteError, name, "can't close file", cerr)
		}
	}()
	if err = PDBWrite(out, s, sel); err != nil {
		return NewError(WriteError, name, "can't write structure", err)
	}
	return nil
}

//PDBWrite writes the atoms of s accepted by sel to out, in PDB format. Atoms are
//renumbered from 1, a TER record closes each chain with written atoms and
//MODEL/ENDMDL records are used only if s has more than one model.
//A nil sel writes everything.
func PDBWrite(out io.Writer, s *Structure, sel Selector) error {
	if sel == nil {
		sel = SelectAll{}
	}
	w := bufio.NewWriter(out)
	multimodel := len(s.Models) > 1
	serial := 1
	for i, m := range s.Models {
		if multimodel {
			ms := m.Serial
			if ms == 0 {
				ms = i + 1
			}
			fmt.Fprintf(w, "MODEL     %4d\n", ms)
		}
		modelwritten := false
		for _, c := range m.Chains {
			if !sel.AcceptChain(c) {
				continue
			}
			var last *Residue
			for _, r := range c.Residues {
				if !sel.AcceptResidue(r) {
					continue
				}
				for _, a := range r.Atoms {
					writeAtomLine(w, a, serial, r, c.ID)
					serial++
					last = r
				}
			}
			if last != nil {
				fmt.Fprintf(w, "TER   %5d      %s%s%4d%c\n", serial%100000, resnameField(last.Name), chainField(c.ID), last.ID.SeqNum, icodeOrBlank(last.ID.ICode))
				serial++
				modelwritten = true
			}
		}
		if multimodel && modelwritten {
			fmt.Fprint(w, "ENDMDL\n")
		}
	}
	fmt.Fprint(w, "END\n")
	return w.Flush()
}

//writeAtomLine writes one 80-column ATOM or HETATM line.
func writeAtomLine(w io.Writer, a *Atom, serial int, r *Residue, chain string) {
	record := "ATOM  "
	if a.Het {
		record = "HETATM"
	}
	altloc := a.AltLoc
	if altloc == 0 {
		altloc = ' '
	}
	fmt.Fprintf(w, "%s%5d %-4s%c%s%s%4d%c   %8.3f%8.3f%8.3f%6.2f%6.2f      %-4s%2s%2s\n",
		record, serial%100000, atomNameField(a), altloc, resnameField(r.Name), chainField(chain),
		r.ID.SeqNum, icodeOrBlank(r.ID.ICode), a.Coords[0], a.Coords[1], a.Coords[2],
		a.Occupancy, a.Bfactor, a.SegID, strings.ToUpper(a.Symbol), a.Charge)
}

//atomNameField returns the 4 columns of the atom name. One-letter elements
//start in the second column.
func atomNameField(a *Atom) string {
	if len(a.FullName) == 4 {
		return a.FullName
	}
	name := a.Name
	if len(name) < 4 && len(name) > 0 && isLetter(name[0]) && len(a.Symbol) < 2 {
		name = " " + name
	}
	return name
}

//resnameField returns the residue name right-justified in 3 columns and a
//blank, or the 4 columns of a 4-letter name.
func resnameField(name string) string {
	if len(name) >= 4 {
		return name[:4]
	}
	return fmt.Sprintf("%3s ", name)
}

func chainField(id string) string {
	if id == "" {
		return " "
	}
	return id[:1]
}
