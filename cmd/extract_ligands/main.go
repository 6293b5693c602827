/*
 * main.go, part of goligand.
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

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/rmera/goligand/batch"
)

const (
	exitSuccess = 0
	exitFailure = iota
)

// Build information, set with -ldflags at build time.
var (
	BuildVersion = "0.1.0"
	BuildCommit  = "unknown"
)

const progName = "extract_ligands"

const shorthandUsage = "shorthand for --"

func usage(fs *flag.FlagSet, out io.Writer) func() {
	return func() {
		fmt.Fprintln(out, "usage:", progName, "[-d directory] [-l file-list] [-o output]")
		fmt.Fprintln(out, "Extracts the HETATM groups of PDB files and writes each of them as a PDB file.")
		fmt.Fprintln(out, "Ions, small ligands and non-standard residues are filtered out and not written.")
		fs.PrintDefaults()
	}
}

// stringFlag and the others register one option under a short and a long name.
func stringFlag(fs *flag.FlagSet, p *string, short, long, value, help string) {
	fs.StringVar(p, long, value, help)
	if short != "" {
		fs.StringVar(p, short, value, shorthandUsage+long)
	}
}

func boolFlag(fs *flag.FlagSet, p *bool, short, long string, value bool, help string) {
	fs.BoolVar(p, long, value, help)
	if short != "" {
		fs.BoolVar(p, short, value, shorthandUsage+long)
	}
}

func intFlag(fs *flag.FlagSet, p *int, short, long string, value int, help string) {
	fs.IntVar(p, long, value, help)
	if short != "" {
		fs.IntVar(p, short, value, shorthandUsage+long)
	}
}

// explicitFlags returns the long names of the options given in the command line.
func explicitFlags(fs *flag.FlagSet) map[string]bool {
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		name := f.Name
		if long, ok := strings.CutPrefix(f.Usage, shorthandUsage); ok {
			name = long
		}
		set[name] = true
	})
	return set
}

func mymain(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	var (
		cfg        batch.Config
		configFile string
		verbose    bool
		version    bool
	)
	fs := flag.NewFlagSet(progName, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = usage(fs, stderr)
	stringFlag(fs, &cfg.Directory, "d", "directory", "", "The directory of the files. Default: current directory")
	stringFlag(fs, &cfg.FileList, "l", "file-list", "", "[optional] A file with the list of PDB files to extract the ligands from, relative to the directory")
	stringFlag(fs, &cfg.Output, "o", "output", "", "The directory for the ligands. Default: the 'main-ligands' sub-directory of the directory")
	stringFlag(fs, &configFile, "c", "config", "", "YAML or JSON file with default values for the options")
	intFlag(fs, &cfg.Workers, "j", "workers", 1, "Number of files processed concurrently")
	boolFlag(fs, &cfg.Compressed, "z", "compressed", false, "Also process .pdb.gz and .pdb.zst files")
	boolFlag(fs, &cfg.Strict, "", "strict", false, "Fail on malformed ATOM/HETATM records instead of skipping them")
	stringFlag(fs, &cfg.Report, "", "report", "", "Write a JSON report of the extracted ligands to this file")
	stringFlag(fs, &cfg.Plot, "", "plot", "", "Write a ligand frequency chart to this file (png, svg or pdf)")
	boolFlag(fs, &verbose, "v", "verbose", false, "Verbose logging")
	boolFlag(fs, &version, "", "version", false, "Print the version and exit")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return exitSuccess
		}
		return exitFailure
	}
	if version {
		fmt.Fprintln(stdout, progName, BuildVersion)
		return exitSuccess
	}
	if fs.NArg() > 0 {
		fmt.Fprintln(stderr, "unexpected arguments:", fs.Args())
		fs.Usage()
		return exitFailure
	}
	if configFile != "" {
		fc, err := batch.LoadConfigFile(configFile)
		if err != nil {
			fmt.Fprintln(stdout, "Error:", err)
			return exitFailure
		}
		explicit := explicitFlags(fs)
		batch.ApplyFileConfig(&cfg, fc, explicit)
		if !explicit["verbose"] {
			verbose = verbose || fc.Verbose
		}
	}

	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.RFC3339}).Level(level).With().Timestamp().Logger()
	log.Debug().Str("version", BuildVersion).Str("commit", BuildCommit).Msg(progName)
	cfg.Stdout = stdout
	cfg.Logger = &log

	R := batch.Run(ctx, cfg)
	if !R.OK() {
		fmt.Fprintln(stdout, "Error:", R.Err)
		return exitFailure
	}
	fmt.Fprintln(stdout, "Info:  Main ligands were extracted successfully")
	log.Info().Int("ligands", len(R.Ligands)).Str("output", R.OutputDir).Msg("done")
	return exitSuccess
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := mymain(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
