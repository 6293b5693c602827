/*
 * classify.go, part of goligand.
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

//The exclusion lists. Do not edit: the content of these lists defines
//which HETATM groups are written out.

var ions = []string{"AU", "BR", "CA", "CL", "CO", "EU", "FE", "K", "KR", "IOD",
	"MG", "MN", "NA", "NI", "RB", "UNX", "XE", "Y1", "YB", "ZN"}

var smallMols = []string{"06B", "1F1", "1X4", "2FX", "3CH", "4DX", "ACE", "ACN", "ACT",
	"ACY", "AKG", "ASN", "AZI", "B3P", "BCT", "BEN", "BGC", "BME",
	"BNZ", "BTB", "CAD", "CHT", "CMT", "CO3", "DMS", "DTD", "DIQ",
	"EDO", "EOH", "FG7", "FMT", "GAI", "GOL", "HED", "IIL", "AIB",
	"7GC", "HV9", "HGU", "HPH", "IX4", "MAN", "MNM", "MES", "MAH",
	"MLI", "MOO", "MPD", "MRD", "MTE", "MTN", "N4B", "NAG", "NET",
	"NH2", "NO3", "NTB", "OXY", "PEG", "PG4", "PGE", "PO4", "PXY",
	"QNC", "SO4", "TRS", "IMD", "K97", "27B"}

var nonStandardRes = []string{"5GM", "ABA", "AIB", "CCS", "CSD", "CME", "CSO", "DAL",
	"DPP", "GOA", "IIL", "MSE", "NLE", "OIL", "OMI", "DAL",
	"MK8", "SLZ", "SMC", "SCH", "TIS", "URE", "YCM"}

// built once, never written after init.
var (
	ionSet      = toSet(ions)
	smallMolSet = toSet(smallMols)
	nonStdSet   = toSet(nonStandardRes)
)

func toSet(names []string) map[string]struct{} {
	s := make(map[string]struct{}, len(names))
	for _, v := range names {
		s[v] = struct{}{}
	}
	return s
}

// Ions returns a copy of the ion exclusion list.
func Ions() []string { return append([]string(nil), ions...) }

// SmallMolecules returns a copy of the list of excluded small molecules
// (solvents, buffers, cryoprotectants and other additives).
func SmallMolecules() []string { return append([]string(nil), smallMols...) }

// NonStandardResidues returns a copy of the list of excluded modified amino acids.
func NonStandardResidues() []string { return append([]string(nil), nonStandardRes...) }

// IsHet returns true if the residue is a heteroatom group, i.e.
// neither a standard polymer residue nor water.
func IsHet(r *Residue) bool {
	f := r.ID.HetFlag
	return f != PolymerFlag && f != WaterFlag
}

// IsExcludedName returns true if name is, exactly, in one of the
// exclusion lists. The comparison is case-sensitive.
func IsExcludedName(name string) bool {
	if _, ok := ionSet[name]; ok {
		return true
	}
	if _, ok := smallMolSet[name]; ok {
		return true
	}
	_, ok := nonStdSet[name]
	return ok
}

// IsMainLigand returns false for ions, small molecules and non-standard
// residues, true for anything else, including empty or unknown names.
func IsMainLigand(r *Residue) bool {
	return !IsExcludedName(r.Name)
}

// IsLigand tells whether r is to be extracted.
func IsLigand(r *Residue) bool {
	return IsHet(r) && IsMainLigand(r)
}
