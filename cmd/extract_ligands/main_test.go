/*
 * main_test.go, part of goligand.
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
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var testPDB = strings.Join([]string{
	fmt.Sprintf("%-6s%5d %-4s %3s A%4d    %8.3f%8.3f%8.3f", "HETATM", 1, "ZN  ", " ZN", 201, 0.0, 0.0, 0.0),
	fmt.Sprintf("%-6s%5d %-4s %3s A%4d    %8.3f%8.3f%8.3f", "HETATM", 2, " C1 ", "HEM", 301, 1.0, 0.0, 0.0),
}, "\n") + "\n"

func run(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := mymain(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestCLI(Te *testing.T) {
	dir := Te.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "h.pdb"), []byte(testPDB), 0o644); err != nil {
		Te.Fatal(err)
	}
	out := filepath.Join(Te.TempDir(), "ligs")
	code, stdout, _ := run("-d", dir, "--output", out)
	if code != exitSuccess {
		Te.Fatalf("exit status %d, output %q", code, stdout)
	}
	if !strings.Contains(stdout, "Info:  Main ligands were extracted successfully") {
		Te.Errorf("no success message: %q", stdout)
	}
	if _, err := os.Stat(filepath.Join(out, "lig_h_1_HEM.pdb")); err != nil {
		Te.Error(err)
	}
}

func TestCLIFailure(Te *testing.T) {
	dir := Te.TempDir()
	code, stdout, _ := run("--directory", dir, "-l", "missing.txt")
	if code != exitFailure {
		Te.Errorf("expected exit status %d, got %d", exitFailure, code)
	}
	if !strings.HasPrefix(stdout, "Error: ") {
		Te.Errorf("expected an error message, got %q", stdout)
	}
}

func TestCLIVersion(Te *testing.T) {
	code, stdout, _ := run("--version")
	if code != exitSuccess || stdout != "extract_ligands "+BuildVersion+"\n" {
		Te.Errorf("unexpected version output %q (%d)", stdout, code)
	}
}

func TestCLIConfigFile(Te *testing.T) {
	dir := Te.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "h.pdb"), []byte(testPDB), 0o644); err != nil {
		Te.Fatal(err)
	}
	conf := filepath.Join(Te.TempDir(), "conf.yaml")
	if err := os.WriteFile(conf, []byte("directory: "+dir+"\nverbose: true\n"), 0o644); err != nil {
		Te.Fatal(err)
	}
	code, stdout, stderr := run("-c", conf)
	if code != exitSuccess {
		Te.Fatalf("exit status %d, output %q", code, stdout)
	}
	if _, err := os.Stat(filepath.Join(dir, "main-ligands", "lig_h_1_HEM.pdb")); err != nil {
		Te.Error(err)
	}
	if !strings.Contains(stderr, "ligand written") {
		Te.Errorf("verbose from the config file should give debug logging: %q", stderr)
	}
}

//-v=false on the command line beats verbose: true in the config file.
func TestCLIConfigFileExplicit(Te *testing.T) {
	dir := Te.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "h.pdb"), []byte(testPDB), 0o644); err != nil {
		Te.Fatal(err)
	}
	conf := filepath.Join(Te.TempDir(), "conf.yaml")
	if err := os.WriteFile(conf, []byte("directory: "+dir+"\nverbose: true\n"), 0o644); err != nil {
		Te.Fatal(err)
	}
	code, stdout, stderr := run("-c", conf, "-v=false")
	if code != exitSuccess {
		Te.Fatalf("exit status %d, output %q", code, stdout)
	}
	if strings.Contains(stderr, "ligand written") {
		Te.Errorf("debug logging should be off: %q", stderr)
	}
}

func TestExplicitFlags(Te *testing.T) {
	fs := flag.NewFlagSet("t", flag.ContinueOnError)
	var workers int
	var strict, compressed bool
	intFlag(fs, &workers, "j", "workers", 1, "")
	boolFlag(fs, &strict, "", "strict", false, "")
	boolFlag(fs, &compressed, "z", "compressed", false, "")
	if err := fs.Parse([]string{"-j", "1", "--strict=false"}); err != nil {
		Te.Fatal(err)
	}
	set := explicitFlags(fs)
	if !set["workers"] || !set["strict"] || set["compressed"] || len(set) != 2 {
		Te.Errorf("expected workers and strict, got %v", set)
	}
}

func TestCLIBadArgs(Te *testing.T) {
	if code, _, _ := run("--no-such-flag"); code != exitFailure {
		Te.Errorf("expected exit status %d, got %d", exitFailure, code)
	}
	if code, _, _ := run("extra"); code != exitFailure {
		Te.Errorf("expected exit status %d, got %d", exitFailure, code)
	}
}
