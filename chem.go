/*
 * chem.go, part of goligand.
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
	"fmt"
	"strings"

	v3 "github.com/rmera/goligand/v3"
)

// Record-type flags for residues. Anything else is a heteroatom group,
// and the parser uses HetPrefix+name for those.
const (
	PolymerFlag = " "
	WaterFlag   = "W"
	HetPrefix   = "H_"
)

// Atom contains the data of one ATOM or HETATM record.
type Atom struct {
	ID        int
	Name      string //trimmed atom name
	FullName  string //the 4 columns of the atom name, as read.
	AltLoc    byte
	Coords    [3]float64
	Occupancy float64
	Bfactor   float64
	SegID     string
	Symbol    string
	Charge    string
	Het       bool // is hetatm in the pdb file?
}

// ResidueID is the composite identifier of a residue within a chain,
// the record-type flag, the sequence number and the insertion code.
type ResidueID struct {
	HetFlag string
	SeqNum  int
	ICode   byte
}

func (R ResidueID) String() string {
	return fmt.Sprintf("('%s', %d, '%c')", R.HetFlag, R.SeqNum, icodeOrBlank(R.ICode))
}

// Residue is a group of atoms sharing a ResidueID in one chain of one model.
type Residue struct {
	ID    ResidueID
	Name  string
	Atoms []*Atom
}

// Len returns the number of atoms in the residue.
func (R *Residue) Len() int {
	return len(R.Atoms)
}

// Atom returns the ith atom of the residue. Panics if out of range.
func (R *Residue) Atom(i int) *Atom {
	if i >= R.Len() {
		panic("Residue: Requested Atom out of bounds")
	}
	return R.Atoms[i]
}

// Coords returns the coordinates of the residue atoms as a v3.Matrix,
// one row per atom, or nil if the residue has no atoms.
func (R *Residue) Coords() *v3.Matrix {
	data := make([]float64, 0, 3*R.Len())
	for _, a := range R.Atoms {
		data = append(data, a.Coords[:]...)
	}
	c, err := v3.NewMatrix(data)
	if err != nil {
		return nil //only happens for empty residues
	}
	return c
}

func (R *Residue) String() string {
	return fmt.Sprintf("<Residue %s het=%s resseq=%d icode=%c>", R.Name, strings.TrimSpace(R.ID.HetFlag), R.ID.SeqNum, icodeOrBlank(R.ID.ICode))
}

// Chain is an ordered set of residues sharing a chain identifier.
type Chain struct {
	ID       string
	Residues []*Residue
}

// Residue returns the residue with the given id, or nil.
func (C *Chain) Residue(id ResidueID) *Residue {
	for _, r := range C.Residues {
		if r.ID == id {
			return r
		}
	}
	return nil
}

// Model is one conformation (e.g. one member of an NMR ensemble) of the structure.
type Model struct {
	Serial int //0 if the file has no MODEL records
	Chains []*Chain
}

// Chain returns the chain with the given identifier, or nil.
func (M *Model) Chain(id string) *Chain {
	for _, c := range M.Chains {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// Structure is the content of one structure file. It is only
// iterated after parsing.
type Structure struct {
	ID     string
	Models []*Model
}

// Len returns the total number of atoms in all models.
func (S *Structure) Len() int {
	n := 0
	S.Walk(func(_ *Model, _ *Chain, r *Residue) bool {
		n += r.Len()
		return true
	})
	return n
}

// Walk visits every residue depth-first: models, then chains, then
// residues, all in file order. Returning false from f stops the walk.
func (S *Structure) Walk(f func(m *Model, c *Chain, r *Residue) bool) {
	for _, m := range S.Models {
		for _, c := range m.Chains {
			for _, r := range c.Residues {
				if !f(m, c, r) {
					return
				}
			}
		}
	}
}

func icodeOrBlank(c byte) byte {
	if c == 0 {
		return ' '
	}
	return c
}
