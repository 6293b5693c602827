/*
 * config.go, part of goligand.
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
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	yaml "gopkg.in/yaml.v3"

	chem "github.com/rmera/goligand"
)

// DefaultOutputSubdir is the output directory, relative to the input directory,
// used when no output directory is given.
const DefaultOutputSubdir = "main-ligands"

// Config contains everything needed for one extraction job.
type Config struct {
	Directory  string //input directory. Empty or "." means the working directory.
	FileList   string //manifest, relative to Directory unless absolute. Empty means all the files in Directory.
	Output     string //output directory. Empty means Directory/main-ligands.
	Workers    int
	Compressed bool
	Strict     bool
	Report     string //path for the JSON report, or empty.
	Plot       string //path for the ligand frequency plot, or empty.

	Stdout io.Writer //where the Info lines go. nil means os.Stdout.
	Logger *zerolog.Logger
}

// FileConfig is the schema of the optional configuration file.
type FileConfig struct {
	Directory  string `yaml:"directory" json:"directory"`
	FileList   string `yaml:"fileList" json:"fileList"`
	Output     string `yaml:"output" json:"output"`
	Workers    int    `yaml:"workers" json:"workers"`
	Compressed bool   `yaml:"compressed" json:"compressed"`
	Strict     bool   `yaml:"strict" json:"strict"`
	Report     string `yaml:"report" json:"report"`
	Plot       string `yaml:"plot" json:"plot"`
	Verbose    bool   `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig. Failures are ConfigErrors.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, chem.NewError(chem.ConfigError, path, "can't read config file", err)
	}
	switch ext := filepath.Ext(path); ext {
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, chem.NewError(chem.ConfigError, path, "parse json", err)
		}
	default:
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, chem.NewError(chem.ConfigError, path, "parse yaml", err)
		}
	}
	if fc.Workers < 0 {
		return fc, chem.NewError(chem.ConfigError, path, fmt.Sprintf("invalid number of workers: %d", fc.Workers), nil)
	}
	return fc, nil
}

// ApplyFileConfig overlays values from FileConfig into cfg for any fields that
// are currently unset/zero in cfg. Fields whose option is in explicit, keyed by
// the long flag name ("workers", "strict"...), are never touched, so flags given
// on the command line win over the file even when they carry the default value.
// explicit may be nil.
func ApplyFileConfig(cfg *Config, fc FileConfig, explicit map[string]bool) {
	if cfg == nil {
		return
	}
	if !explicit["directory"] && cfg.Directory == "" && fc.Directory != "" {
		cfg.Directory = fc.Directory
	}
	if !explicit["file-list"] && cfg.FileList == "" && fc.FileList != "" {
		cfg.FileList = fc.FileList
	}
	if !explicit["output"] && cfg.Output == "" && fc.Output != "" {
		cfg.Output = fc.Output
	}
	if !explicit["workers"] && cfg.Workers <= 1 && fc.Workers > 1 {
		cfg.Workers = fc.Workers
	}
	if !explicit["compressed"] && fc.Compressed {
		cfg.Compressed = true
	}
	if !explicit["strict"] && fc.Strict {
		cfg.Strict = true
	}
	if !explicit["report"] && cfg.Report == "" && fc.Report != "" {
		cfg.Report = fc.Report
	}
	if !explicit["plot"] && cfg.Plot == "" && fc.Plot != "" {
		cfg.Plot = fc.Plot
	}
}
