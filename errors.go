/*
 * errors.go, part of gocube.
 *
 * Copyright 2021 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
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
 */

package cube

import (
	"errors"
	"fmt"
	"strings"
)

//Kind classifies the errors returned by the cube readers.
type Kind int

const (
	//IOError means the source could not be opened or read.
	IOError Kind = iota + 1
	//StructuralError means a fixed-shape line had the wrong number of fields, or was missing.
	StructuralError
	//NumericError means a field could not be read as the number it should be.
	NumericError
	//ConsistencyError means two fields of the file disagree with each other.
	ConsistencyError
	//TruncationError means the file ended before a required element was complete.
	TruncationError
)

func (k Kind) String() string {
	switch k {
	case IOError:
		return "IOError"
	case StructuralError:
		return "StructuralError"
	case NumericError:
		return "NumericError"
	case ConsistencyError:
		return "ConsistencyError"
	case TruncationError:
		return "TruncationError"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

//Sentinels for errors.Is. Only the kind is compared.
var (
	ErrIO          = &Error{kind: IOError}
	ErrStructure   = &Error{kind: StructuralError}
	ErrNumeric     = &Error{kind: NumericError}
	ErrConsistency = &Error{kind: ConsistencyError}
	ErrTruncation  = &Error{kind: TruncationError}
)

//Section names, used in error messages.
const (
	secSource   = "source"
	secComments = "comments"
	secHeader   = "header"
	secAxes     = "axes"
	secAtoms    = "atoms"
	secOrbitals = "orbitals"
	secVoxels   = "voxels"
)

//Error is the error type returned by all the readers in this package.
//Every failure aborts the whole parse, so an Error is always critical.
type Error struct {
	kind     Kind
	message  string
	section  string
	line     int //1-based line of the file, 0 if unknown
	filename string
	cause    error
	deco     []string
}

func newError(kind Kind, section string, line int, format string, args ...interface{}) *Error {
	return &Error{kind: kind, section: section, line: line, message: fmt.Sprintf(format, args...)}
}

func (err *Error) Error() string {
	var b strings.Builder
	b.WriteString("cube")
	if err.filename != "" {
		b.WriteString(" file ")
		b.WriteString(err.filename)
	}
	fmt.Fprintf(&b, ": %s", err.kind)
	if err.section != "" {
		fmt.Fprintf(&b, " in %s", err.section)
	}
	if err.line > 0 {
		fmt.Fprintf(&b, " (line %d)", err.line)
	}
	b.WriteString(": ")
	b.WriteString(err.message)
	if err.cause != nil {
		b.WriteString(": ")
		b.WriteString(err.cause.Error())
	}
	return b.String()
}

//Kind returns the class of the error.
func (err *Error) Kind() Kind { return err.kind }

//Section returns the part of the file (header, atoms, voxels...) where the error happened.
func (err *Error) Section() string { return err.section }

//Line returns the 1-based line number where the error happened, or 0 if unknown.
func (err *Error) Line() int { return err.line }

//FileName returns the file that was being read, or the empty string for in-memory sources.
func (err *Error) FileName() string { return err.filename }

//Format returns the format of the file associated to the error, always "cube".
func (err *Error) Format() string { return "cube" }

//Critical is always true, there are no recoverable errors in a cube read.
func (err *Error) Critical() bool { return true }

func (err *Error) Unwrap() error { return err.cause }

//Is reports whether target is an *Error of the same kind. It allows
//errors.Is(err, cube.ErrTruncation) and friends.
func (err *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.kind == err.kind
}

//Decorate adds the name of a calling function to the error, and returns
//the resulting call path. An empty string just returns the current value.
func (err *Error) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

func (err *Error) wrap(cause error) *Error {
	err.cause = cause
	return err
}

//errDecorate decorates err with the caller's name if err is an *Error,
//and returns it unchanged otherwise.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		e.Decorate(caller)
	}
	return err
}

//IsKind returns true if err is, or wraps, a cube *Error of the given kind.
func IsKind(err error, k Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.kind == k
}
