/*
 * errors.go, part of goligand.
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
	"errors"
	"fmt"
	"strings"
)

// ErrorKind tells which stage of the process failed.
type ErrorKind int

const (
	ConfigError ErrorKind = iota //file list, config file or output directory
	ParseError                   //a structure file could not be read
	WriteError                   //an output file could not be written
)

func (K ErrorKind) String() string {
	switch K {
	case ConfigError:
		return "config"
	case ParseError:
		return "parse"
	case WriteError:
		return "write"
	}
	return "unknown"
}

// Error is the error type returned by this library. It fullfills Decorator
// and FileError.
type Error struct {
	kind     ErrorKind
	message  string
	filename string //the file that has problems, or empty string if none.
	deco     *[]string
	err      error //the cause, may be nil
}

// NewError returns an Error of the given kind, for the file filename, caused by cause,
// which can be nil.
func NewError(kind ErrorKind, filename, message string, cause error) Error {
	d := make([]string, 0, 2)
	return Error{kind: kind, message: message, filename: filename, deco: &d, err: cause}
}

func (E Error) Error() string {
	s := fmt.Sprintf("%s error", E.kind)
	if E.filename != "" {
		s += " in " + E.filename
	}
	s += ": " + E.message
	if E.err != nil {
		s += ": " + E.err.Error()
	}
	return s
}

// Decorate adds new information to the error and returns the decoration slice.
// The slice is shared by all copies of the error.
func (E Error) Decorate(deco string) []string {
	if E.deco == nil {
		return nil
	}
	if deco != "" {
		*E.deco = append(*E.deco, deco)
	}
	return *E.deco
}

// Trace returns the decorations as a single string, outermost call last.
func (E Error) Trace() string {
	return strings.Join(E.Decorate(""), " <- ")
}

// FileName returns the file associated to the error.
func (E Error) FileName() string { return E.filename }

// Kind returns the kind of error.
func (E Error) Kind() ErrorKind { return E.kind }

func (E Error) Unwrap() error { return E.err }

// KindOf returns the kind of the first Error in the err chain. The bool is false
// if there is no such error.
func KindOf(err error) (ErrorKind, bool) {
	var e Error
	if errors.As(err, &e) {
		return e.kind, true
	}
	return 0, false
}

// errDecorate decorates err with the caller's name if it implements Decorator.
// Other errors are returned unchanged.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	if d, ok := err.(Decorator); ok {
		d.Decorate(caller)
	}
	return err
}
