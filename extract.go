/*
 * extract.go, part of goligand.
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
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

//LigandPrefix starts the name of every file written by ExtractLigands. Input
//files with this prefix are never processed.
const LigandPrefix = "lig_"

//Options controls ExtractLigands. The zero value, as well as a nil *Options,
//processes plain .pdb files one at a time, with a permissive parser and no logging.
type Options struct {
	Workers    int  //files processed concurrently. Values below 1 mean 1.
	Compressed bool //also process .pdb.gz and .pdb.zst files.
	Strict     bool //malformed records are parse errors.
	Logger     *zerolog.Logger
}

func (O *Options) logger() zerolog.Logger {
	if O == nil || O.Logger == nil {
		return zerolog.Nop()
	}
	return *O.Logger
}

//OutputLigand describes one ligand file written by ExtractLigands.
type OutputLigand struct {
	Source string `json:"source"` //the input file, as given.
	Stem   string `json:"stem"`
	Index  int    `json:"index"` //1-based, per input file.
	Name   string `json:"name"`
	Chain  string `json:"chain"`
	Model  int    `json:"model"`
	SeqNum int    `json:"seqnum"`
	ICode  string `json:"icode,omitempty"`
	Path   string `json:"path"`
	Descriptor
}

//Stem returns the base name of a structure file without its extension. For compressed
//files both extensions are removed, so "1abc.pdb.gz" gives "1abc".
func Stem(name string) string {
	base := filepath.Base(name)
	base = strings.TrimSuffix(base, compressedExt(base))
	return strings.TrimSuffix(base, filepath.Ext(base))
}

//AcceptedFile returns true if ExtractLigands would process the file name: it must have the
//.pdb extension (or .pdb.gz/.pdb.zst if compressed is true) and must not
//start with LigandPrefix.
func AcceptedFile(name string, compressed bool) bool {
	base := filepath.Base(name)
	if strings.HasPrefix(base, LigandPrefix) {
		return false
	}
	if strings.HasSuffix(base, ".pdb") {
		return true
	}
	return compressed && (strings.HasSuffix(base, ".pdb.gz") || strings.HasSuffix(base, ".pdb.zst"))
}

//LigandFileName returns the name of the file for the index-th ligand, named resname,
//of the structure file with the given stem.
func LigandFileName(stem string, index int, resname string) string {
	return fmt.Sprintf("%s%s_%d_%s.pdb", LigandPrefix, stem, index, resname)
}

//ExtractLigands reads each of the files fileNames, relative to inDir, and writes every
//main ligand it finds as a separate PDB file in outDir. Both directories must exist.
//Files not accepted by AcceptedFile are skipped. Output names only carry the stem of
//each input file, so two accepted files with the same stem (e.g. a/x.pdb and b/x.pdb,
//or a file listed twice) are a ConfigError, and nothing is written. The first error
//during extraction stops the process, files written up to that point are left in
//place. The written ligands are returned in the order of fileNames.
func ExtractLigands(ctx context.Context, fileNames []string, inDir, outDir string, opts *Options) ([]OutputLigand, error) {
	var compressed bool
	workers := 1
	if opts != nil {
		compressed = opts.Compressed
		if opts.Workers > 1 {
			workers = opts.Workers
		}
	}
	log := opts.logger()
	if err := checkStems(fileNames, compressed); err != nil {
		return nil, errDecorate(err, "ExtractLigands")
	}
	perfile := make([][]OutputLigand, len(fileNames))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, name := range fileNames {
		if !AcceptedFile(name, compressed) {
			log.Debug().Str("file", name).Msg("skipped")
			continue
		}
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			ligs, err := extractFile(name, inDir, outDir, opts, log)
			perfile[i] = ligs
			return err
		})
	}
	err := g.Wait()
	var ret []OutputLigand
	for _, l := range perfile {
		ret = append(ret, l...)
	}
	if err != nil {
		return ret, errDecorate(err, "ExtractLigands")
	}
	//The parent context could have been cancelled after the last file started.
	return ret, ctx.Err()
}

//checkStems returns a ConfigError if two accepted files in fileNames would
//write ligand files with the same names.
func checkStems(fileNames []string, compressed bool) error {
	seen := make(map[string]string)
	for _, name := range fileNames {
		if !AcceptedFile(name, compressed) {
			continue
		}
		stem := Stem(name)
		if prev, ok := seen[stem]; ok {
			return NewError(ConfigError, name, fmt.Sprintf("output names would collide with those of %s (stem %q)", prev, stem), nil)
		}
		seen[stem] = name
	}
	return nil
}

//extractFile writes the ligands of one structure file and returns their descriptions.
//The returned slice contains the ligands written before an error, if there is one.
func extractFile(name, inDir, outDir string, opts *Options, log zerolog.Logger) ([]OutputLigand, error) {
	var strict bool
	if opts != nil {
		strict = opts.Strict
	}
	S, err := PDBFileRead(filepath.Join(inDir, name), Strict(strict), ReadLogger(log))
	if err != nil {
		return nil, errDecorate(err, "extractFile")
	}
	stem := Stem(name)
	log.Debug().Str("file", name).Int("atoms", S.Len()).Msg("processing")
	var ret []OutputLigand
	index := 1
	S.Walk(func(m *Model, c *Chain, r *Residue) bool {
		if !IsHet(r) || !IsMainLigand(r) {
			return true
		}
		path := filepath.Join(outDir, LigandFileName(stem, index, r.Name))
		if err = PDBFileWrite(path, S, NewResidueSelect(c, r)); err != nil {
			return false
		}
		lig := OutputLigand{
			Source:     name,
			Stem:       stem,
			Index:      index,
			Name:       r.Name,
			Chain:      c.ID,
			Model:      m.Serial,
			SeqNum:     r.ID.SeqNum,
			ICode:      strings.TrimSpace(string(icodeOrBlank(r.ID.ICode))),
			Path:       path,
			Descriptor: Describe(r),
		}
		log.Debug().Str("file", name).Str("ligand", r.Name).Str("chain", c.ID).Int("seqnum", r.ID.SeqNum).Str("output", path).Msg("ligand written")
		ret = append(ret, lig)
		index++
		return true
	})
	return ret, errDecorate(err, "extractFile")
}
