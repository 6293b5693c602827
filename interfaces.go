/*
 * interfaces.go, part of goligand.
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

// Selector decides which parts of a Structure are written by PDBWrite.
type Selector interface {

	//AcceptChain returns true if the chain should be visited.
	AcceptChain(c *Chain) bool

	//AcceptResidue returns true if the atoms of the residue should be written.
	AcceptResidue(r *Residue) bool
}

//Errors

// Decorator is the interface for errors that all packages in this library implement. The Decorate method allows to add and retrieve info from the
// error, without changing it's type or wrapping it around something else.
type Decorator interface {
	Error() string
	Decorate(string) []string //Adds the caller to the decoration slice and returns the resulting slice. An empty string adds nothing.
}

// FileError is the interface for errors associated to a file.
type FileError interface {
	Decorator
	FileName() string
	Kind() ErrorKind
}
