/*
 * descriptor.go, part of goligand.
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
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

//Descriptor contains a few simple numbers that describe a residue.
type Descriptor struct {
	NAtoms   int        `json:"natoms"`
	Mass     float64    `json:"mass"` //only atoms with known elements contribute
	Centroid [3]float64 `json:"centroid"`
	Rg       float64    `json:"rg"` //radius of gyration, not mass-weighted.
}

//Describe returns the Descriptor for the residue r. An empty residue gives
//the zero Descriptor.
func Describe(r *Residue) Descriptor {
	var D Descriptor
	D.NAtoms = r.Len()
	if D.NAtoms == 0 {
		return D
	}
	for _, a := range r.Atoms {
		D.Mass += symbolMass[a.Symbol]
	}
	coords := r.Coords()
	var sqdev float64
	col := make([]float64, coords.NVecs())
	for j := 0; j < 3; j++ {
		coords.Col(col, j)
		D.Centroid[j] = stat.Mean(col, nil)
		floats.AddConst(-D.Centroid[j], col)
		sqdev += floats.Dot(col, col)
	}
	D.Rg = math.Sqrt(sqdev / float64(D.NAtoms))
	return D
}
