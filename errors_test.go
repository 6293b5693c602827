package chem

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"
)

func TestErrorKinds(Te *testing.T) {
	e := NewError(ParseError, "x.pdb", "can't open file", fs.ErrNotExist)
	if e.Error() != "parse error in x.pdb: can't open file: file does not exist" {
		Te.Errorf("unexpected message: %s", e)
	}
	wrapped := fmt.Errorf("batch: %w", e)
	if k, ok := KindOf(wrapped); !ok || k != ParseError {
		Te.Errorf("kind lost when wrapping: %v %v", k, ok)
	}
	if !errors.Is(wrapped, fs.ErrNotExist) {
		Te.Error("the cause is not reachable")
	}
	if _, ok := KindOf(errors.New("plain")); ok {
		Te.Error("a plain error has no kind")
	}
	for k, s := range map[ErrorKind]string{ConfigError: "config", ParseError: "parse", WriteError: "write"} {
		if k.String() != s {
			Te.Errorf("expected %s, got %s", s, k)
		}
	}
}

func TestErrorDecorate(Te *testing.T) {
	var err error = NewError(WriteError, "out.pdb", "can't write", nil)
	err = errDecorate(err, "PDBFileWrite")
	err = errDecorate(err, "extractFile")
	e := err.(Error)
	if e.Trace() != "PDBFileWrite <- extractFile" {
		Te.Errorf("unexpected trace: %s", e.Trace())
	}
	if errDecorate(nil, "nothing") != nil {
		Te.Error("decorating nil should give nil")
	}
}
