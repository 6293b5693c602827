/*
 * batch.go, part of goligand.
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

package batch

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	chem "github.com/rmera/goligand"
)

// Result is the outcome of a Run. Err is nil if everything went well.
type Result struct {
	Directory string
	OutputDir string
	Files     []string //the input list, as given to the extraction.
	Ligands   []chem.OutputLigand
	Err       error
}

// OK returns true if the job finished without errors.
func (R Result) OK() bool {
	return R.Err == nil
}

// Run resolves the directories and the list of files of cfg, and extracts all
// the main ligands in those files. Errors are returned in the Err field of the
// Result, never as panics.
func Run(ctx context.Context, cfg Config) Result {
	var R Result
	stdout := cfg.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = *cfg.Logger
	}
	dir, err := resolveDirectory(cfg.Directory)
	if err != nil {
		R.Err = err
		return R
	}
	R.Directory = dir
	R.OutputDir = cfg.Output
	if R.OutputDir == "" {
		R.OutputDir = filepath.Join(dir, DefaultOutputSubdir)
	}
	if err := os.MkdirAll(R.OutputDir, 0o755); err != nil {
		R.Err = chem.NewError(chem.ConfigError, R.OutputDir, "can't create output directory", err)
		return R
	}
	var source string
	if cfg.FileList == "" {
		R.Files, err = listDirectory(dir)
		source = dir
	} else {
		source = manifestPath(dir, cfg.FileList)
		R.Files, err = ReadManifest(source)
	}
	if err != nil {
		R.Err = err
		return R
	}
	fmt.Fprintln(stdout, "Info:  Processing all the pdb files in: ", source)
	log.Debug().Str("directory", dir).Str("output", R.OutputDir).Int("files", len(R.Files)).Msg("starting extraction")
	opts := &chem.Options{
		Workers:    cfg.Workers,
		Compressed: cfg.Compressed,
		Strict:     cfg.Strict,
		Logger:     &log,
	}
	R.Ligands, R.Err = chem.ExtractLigands(ctx, R.Files, dir, R.OutputDir, opts)
	if R.Err != nil {
		return R
	}
	if cfg.Report != "" {
		if R.Err = WriteReport(cfg.Report, R); R.Err != nil {
			return R
		}
	}
	if cfg.Plot != "" {
		R.Err = writePlot(cfg.Plot, R.Ligands)
	}
	return R
}

func resolveDirectory(dir string) (string, error) {
	if dir == "" || dir == "." {
		wd, err := os.Getwd()
		if err != nil {
			return "", chem.NewError(chem.ConfigError, ".", "can't get the working directory", err)
		}
		return wd, nil
	}
	return dir, nil
}

// manifestPath returns the path of the manifest name. Relative names are taken
// relative to dir.
func manifestPath(dir, name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}

// listDirectory returns the names of all the entries in dir, sorted.
func listDirectory(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, chem.NewError(chem.ConfigError, dir, "can't list directory", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// ReadManifest reads a list of file names, one per line. Each line is trimmed,
// the order is kept. Blank lines give empty names, which are later skipped.
func ReadManifest(name string) ([]string, error) {
	fin, err := os.Open(name)
	if err != nil {
		return nil, chem.NewError(chem.ConfigError, name, "can't open file list", err)
	}
	defer fin.Close()
	ret, err := readManifest(fin)
	if err != nil {
		return nil, chem.NewError(chem.ConfigError, name, "can't read file list", err)
	}
	return ret, nil
}

func readManifest(in io.Reader) ([]string, error) {
	var ret []string
	scan := bufio.NewScanner(in)
	for scan.Scan() {
		ret = append(ret, strings.TrimSpace(scan.Text()))
	}
	return ret, scan.Err()
}
