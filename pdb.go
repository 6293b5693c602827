/*
 * pdb.go, part of goligand.
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
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

const pdbLineLen = 80

//ReadOption configures PDBRead and PDBFileRead.
type ReadOption func(*readConfig)

type readConfig struct {
	strict bool
	log    zerolog.Logger
}

//Strict makes the reader return a ParseError for malformed ATOM/HETATM records,
//instead of skipping them.
func Strict(strict bool) ReadOption {
	return func(c *readConfig) { c.strict = strict }
}

//ReadLogger sets the logger where skipped records are reported, at debug level.
func ReadLogger(log zerolog.Logger) ReadOption {
	return func(c *readConfig) { c.log = log }
}

func newReadConfig(opts []ReadOption) *readConfig {
	c := &readConfig{log: zerolog.Nop()}
	for _, o := range opts {
		o(c)
	}
	return c
}

//PDBFileRead reads the structure in the PDB file name. Files ending in .gz or
//.zst are decompressed on the fly. The ID of the returned structure is the stem
//of the file name.
func PDBFileRead(name string, opts ...ReadOption) (*Structure, error) {
	in, err := openStructureFile(name)
	if err != nil {
		return nil, NewError(ParseError, name, "can't open file", err)
	}
	defer in.Close()
	S, err := pdbRead(in, Stem(name), name, newReadConfig(opts))
	return S, errDecorate(err, "PDBFileRead")
}

//PDBRead reads a PDB-formatted structure from r, and returns it with the
//given id. Only ATOM, HETATM, MODEL and ENDMDL records are used.
func PDBRead(r io.Reader, id string, opts ...ReadOption) (*Structure, error) {
	S, err := pdbRead(r, id, id, newReadConfig(opts))
	return S, errDecorate(err, "PDBRead")
}

//pdbBuilder keeps the current model while a file is being read.
type pdbBuilder struct {
	S     *Structure
	model *Model
}

func (B *pdbBuilder) newModel(serial int) {
	B.model = &Model{Serial: serial}
	B.S.Models = append(B.S.Models, B.model)
}

//add puts the atom in its residue, creating the model, chain and residue
//if they don't exist yet. Chains and residues that show up again later in
//the same model are continued.
func (B *pdbBuilder) add(at *Atom, chainID string, id ResidueID, resname string) {
	if B.model == nil {
		B.newModel(0)
	}
	c := B.model.Chain(chainID)
	if c == nil {
		c = &Chain{ID: chainID}
		B.model.Chains = append(B.model.Chains, c)
	}
	var r *Residue
	//the common case, the atom belongs to the last residue.
	if l := len(c.Residues); l > 0 && c.Residues[l-1].ID == id {
		r = c.Residues[l-1]
	} else if r = c.Residue(id); r == nil {
		r = &Residue{ID: id, Name: resname}
		c.Residues = append(c.Residues, r)
	}
	r.Atoms = append(r.Atoms, at)
}

func pdbRead(r io.Reader, id, filename string, conf *readConfig) (*Structure, error) {
	B := &pdbBuilder{S: &Structure{ID: id}}
	scan := bufio.NewScanner(r)
	scan.Buffer(make([]byte, 0, 4096), 1<<20)
	nlines := 0
	for scan.Scan() {
		nlines++
		line := scan.Text()
		switch {
		case strings.HasPrefix(line, "ATOM  "), strings.HasPrefix(line, "HETATM"):
			at, chainID, resid, resname, err := readAtomLine(line)
			if err != nil {
				if conf.strict {
					return nil, NewError(ParseError, filename, fmt.Sprintf("malformed record at line %d", nlines), err)
				}
				conf.log.Debug().Str("file", filename).Int("line", nlines).Err(err).Msg("skipping malformed record")
				continue
			}
			B.add(at, chainID, resid, resname)
		case strings.HasPrefix(line, "MODEL"):
			serial, err := strconv.Atoi(strings.TrimSpace(padLine(line)[10:14]))
			if err != nil {
				//Not important enough to fail, we just number the models ourselves.
				serial = len(B.S.Models) + 1
				conf.log.Debug().Str("file", filename).Int("line", nlines).Msg("MODEL record without serial")
			}
			B.newModel(serial)
		case strings.HasPrefix(line, "ENDMDL"):
			B.model = nil
		}
	}
	if err := scan.Err(); err != nil {
		return nil, NewError(ParseError, filename, "can't read file", err)
	}
	if nlines == 0 {
		return nil, NewError(ParseError, filename, "empty file", nil)
	}
	return B.S, nil
}

//padLine returns line with trailing spaces up to 80 columns, so the
//optional columns can be sliced without checks.
func padLine(line string) string {
	line = strings.TrimRight(line, "\r")
	if len(line) >= pdbLineLen {
		return line
	}
	return line + strings.Repeat(" ", pdbLineLen-len(line))
}

//readAtomLine parses one ATOM or HETATM line. It returns the atom, the chain
//identifier, the residue identifier and the residue name.
func readAtomLine(line string) (*Atom, string, ResidueID, string, error) {
	var resid ResidueID
	line = padLine(line)
	err := make([]error, 5) //accumulate errors to check at the end of the line.
	atom := new(Atom)
	atom.Het = strings.HasPrefix(line, "HETATM")
	atom.ID, err[0] = strconv.Atoi(strings.TrimSpace(line[6:11]))
	atom.FullName = line[12:16]
	atom.Name = strings.TrimSpace(atom.FullName)
	atom.AltLoc = line[16]
	//column 21 is blank in the standard, but 4-letter residue names use it.
	resname := strings.TrimSpace(line[17:21])
	chain := line[21:22]
	resid.SeqNum, err[1] = strconv.Atoi(strings.TrimSpace(line[22:26]))
	resid.ICode = line[26]
	atom.Coords[0], err[2] = strconv.ParseFloat(strings.TrimSpace(line[30:38]), 64)
	atom.Coords[1], err[3] = strconv.ParseFloat(strings.TrimSpace(line[38:46]), 64)
	atom.Coords[2], err[4] = strconv.ParseFloat(strings.TrimSpace(line[46:54]), 64)
	for _, e := range err {
		if e != nil {
			return nil, "", resid, "", e
		}
	}
	//From here on nothing is mandatory. Missing or broken fields are left
	//with their zero values.
	atom.Occupancy, _ = strconv.ParseFloat(strings.TrimSpace(line[54:60]), 64)
	atom.Bfactor, _ = strconv.ParseFloat(strings.TrimSpace(line[60:66]), 64)
	atom.SegID = strings.TrimSpace(line[72:76])
	atom.Symbol = normalizeSymbol(line[76:78])
	atom.Charge = strings.TrimSpace(line[78:80])
	if atom.Symbol == "" {
		atom.Symbol = symbolFromName(atom.FullName)
	}
	switch {
	case !atom.Het:
		resid.HetFlag = PolymerFlag
	case resname == "HOH" || resname == "WAT":
		resid.HetFlag = WaterFlag
	default:
		resid.HetFlag = HetPrefix + resname
	}
	return atom, chain, resid, resname, nil
}
