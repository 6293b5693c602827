/*
 * atomicdata.go, part of goligand.
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

import "strings"

//A map for assigning mass to elements.
//Note that just common "bio-elements" are present
var symbolMass = map[string]float64{
	"H":  1.0,
	"C":  12.01,
	"O":  16.00,
	"N":  14.01,
	"P":  30.97,
	"S":  32.06,
	"Se": 78.96,
	"K":  39.1,
	"Ca": 40.08,
	"Mg": 24.30,
	"Cl": 35.45,
	"Na": 22.99,
	"Cu": 63.55,
	"Zn": 65.38,
	"Co": 58.93,
	"Fe": 55.84,
	"Mn": 54.94,
	"Cr": 51.996,
	"Si": 28.08,
	"Be": 9.012,
	"F":  18.998,
	"Br": 79.904,
	"I":  126.90,
	"B":  10.81,
	"Ni": 58.69,
	"Au": 196.97,
	"Pt": 195.08,
	"Hg": 200.59,
	"Cd": 112.41,
}

//symbolFromName tries to guess a chemical element symbol from the 4 columns
//of a PDB atom name. Two-letter elements are left-aligned in the field
//(e.g. "ZN  ", "CL1 "), one-letter ones start in the second column (" CA ").
//It returns the empty string if nothing sensible is found.
func symbolFromName(fullname string) string {
	name := strings.TrimLeft(strings.TrimSpace(fullname), "0123456789")
	if name == "" {
		return ""
	}
	//4-letter names are hydrogens in most force fields, and HG21 is not mercury.
	if name[0] == 'H' && len(name) == 4 {
		return "H"
	}
	if len(fullname) >= 2 && fullname[0] != ' ' && !isDigit(fullname[0]) && isLetter(fullname[1]) {
		two := fullname[0:1] + strings.ToLower(fullname[1:2])
		if _, ok := symbolMass[two]; ok && fullname[0] != 'H' {
			return two
		}
	}
	if !isLetter(name[0]) {
		return ""
	}
	return strings.ToUpper(name[0:1])
}

//normalizeSymbol turns an element field as found in PDB files ("ZN", " C")
//into the symbol spelling used in symbolMass ("Zn", "C").
func normalizeSymbol(s string) string {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return ""
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

func isDigit(c byte) bool  { return c >= '0' && c <= '9' }
func isLetter(c byte) bool { return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') }
