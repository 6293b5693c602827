/*
 * select.go, part of goligand.
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

// ResidueSelect accepts one residue, of one chain. The residue is
// compared by identity, so a residue with the same name and number in
// another chain or model is not accepted.
type ResidueSelect struct {
	chain   *Chain
	residue *Residue
}

// NewResidueSelect returns a selector for the residue res of chain c.
func NewResidueSelect(c *Chain, res *Residue) *ResidueSelect {
	return &ResidueSelect{chain: c, residue: res}
}

// AcceptChain returns true if c has the same identifier as the target chain.
func (S *ResidueSelect) AcceptChain(c *Chain) bool {
	return c.ID == S.chain.ID
}

// AcceptResidue returns true only for the target residue itself, and only
// if it is still a ligand.
func (S *ResidueSelect) AcceptResidue(r *Residue) bool {
	return r == S.residue && IsHet(r) && IsMainLigand(r)
}

// SelectAll accepts everything. Writing with it reproduces the whole structure.
type SelectAll struct{}

func (SelectAll) AcceptChain(*Chain) bool     { return true }
func (SelectAll) AcceptResidue(*Residue) bool { return true }
