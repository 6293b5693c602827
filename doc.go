/*
 * doc.go, part of goligand.
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

/*Package chem is the main package of the goligand library. It reads macromolecular
structures in PDB format, finds the heteroatom groups that are bound ligands, and
writes each of them to its own PDB file.



	**goligand Capabilities**


    Reads PDB files, plain or compressed with gzip or zstd, into a
	Structure/Model/Chain/Residue/Atom hierarchy. Malformed records are
	skipped, or reported as errors in strict mode.

    Classifies residues: heteroatom groups vs. polymer residues and water,
	and main ligands vs. ions, crystallization additives and modified
	amino acids.

    Writes any subset of a structure, chosen with a Selector, in PDB format.

    Extracts all the main ligands of a set of files, optionally
	processing several files concurrently, and describes each ligand
	(number of atoms, mass, centroid, radius of gyration).


The batch subpackage runs a whole extraction job (directories, file lists, reports),
and the chemplot subpackage plots how often each ligand was found.

*/
package chem
