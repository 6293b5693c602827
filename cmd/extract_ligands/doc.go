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

/*
Extract_ligands writes each main ligand found in a set of PDB files to its own
PDB file.

Heteroatom groups are taken from every PDB file in a directory (or from the files
named in a list), and water, ions, crystallization additives and modified amino
acids are discarded. Each remaining group is written as

	lig_<file stem>_<index>_<residue name>.pdb

in the output directory, where index counts the ligands of each input file from 1.

Usage:

	extract_ligands [-d directory] [-l file-list] [-o output] [flags]

The flags are:

	-d, --directory
		The directory of the files. Default: the current directory.
	-l, --file-list
		A file with one PDB file name per line, relative to the directory.
	-o, --output
		The output directory. Default: the main-ligands sub-directory of the
		input directory. It is created if needed.
	-c, --config
		A YAML (or JSON) file with defaults for any of the other options.
	-j, --workers
		Number of files processed at the same time.
	-z, --compressed
		Also process .pdb.gz and .pdb.zst files.
	--strict
		Stop at malformed atom records instead of skipping them.
	--report
		Write a JSON report of the extracted ligands.
	--plot
		Write a chart with the frequency of each ligand.
	-v, --verbose
		Debug logging, to standard error.
	--version
		Print the version and exit.

The program exits with status 1 if any file could not be read or written.
*/
package main
