package chem

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

//pdbAtom returns an ATOM or HETATM line with the PDB columns.
func pdbAtom(het bool, serial int, name, resname, chain string, seq int, x, y, z float64, elem string) string {
	record := "ATOM"
	if het {
		record = "HETATM"
	}
	return fmt.Sprintf("%-6s%5d %-4s %3s %1s%4d    %8.3f%8.3f%8.3f%6.2f%6.2f          %2s",
		record, serial, name, resname, chain, seq, x, y, z, 1.0, 20.0, elem)
}

func pdbLines(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

//xPDB has a protein residue, a water, a zinc ion and an ATP.
var xPDB = pdbLines(
	pdbAtom(false, 1, " N  ", "ALA", "A", 1, 0, 0, 0, "N"),
	pdbAtom(false, 2, " CA ", "ALA", "A", 1, 1.458, 0, 0, "C"),
	"TER       3      ALA A   1",
	pdbAtom(true, 4, " O  ", "HOH", "A", 101, 5, 5, 5, "O"),
	pdbAtom(true, 5, "ZN  ", " ZN", "A", 201, -3, 2, 1, "ZN"),
	pdbAtom(true, 6, " PA ", "ATP", "A", 301, 10, 0, 0, "P"),
	pdbAtom(true, 7, " O1A", "ATP", "A", 301, 11, 0, 0, "O"),
	pdbAtom(true, 8, " C1'", "ATP", "A", 301, 12, 0, 0, "C"),
	"END",
)

//multiPDB has three main ligands in two chains, plus an additive and a modified residue.
var multiPDB = pdbLines(
	pdbAtom(false, 1, " CA ", "GLY", "A", 1, 0, 0, 0, "C"),
	pdbAtom(true, 2, "FE  ", "HEM", "A", 150, 1, 1, 1, "FE"),
	pdbAtom(true, 3, " NA ", "HEM", "A", 150, 2, 1, 1, "N"),
	pdbAtom(true, 4, " C1 ", "GOL", "A", 160, 3, 3, 3, "C"),
	pdbAtom(true, 5, " N  ", "NAD", "A", 170, 4, 4, 4, "N"),
	pdbAtom(false, 6, " CA ", "GLY", "B", 1, 9, 9, 9, "C"),
	pdbAtom(true, 7, "SE  ", "MSE", "B", 2, 9, 8, 9, "SE"),
	pdbAtom(true, 8, " P  ", "FAD", "B", 180, 7, 7, 7, "P"),
	"END",
)

func writeTestFile(Te *testing.T, dir, name, content string) string {
	Te.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		Te.Fatal(err)
	}
	return p
}

//residueNames returns the names of all residues in S, in order.
func residueNames(S *Structure) []string {
	var ret []string
	S.Walk(func(_ *Model, _ *Chain, r *Residue) bool {
		ret = append(ret, r.Name)
		return true
	})
	return ret
}
