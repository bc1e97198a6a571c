/*
 * tokens.go, part of gocube.
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
	"bufio"
	"io"
	"strconv"
	"strings"
)

//Some producers write the whole grid in very few lines.
const maxLineLength = 64 * 1024 * 1024

//token is one numeric field of the file, with the line it came from.
type token struct {
	text string
	line int
}

//tokens reads a cube file line by line, and can also hand out its
//numeric fields one at a time, ignoring line breaks. It is single-pass.
type tokens struct {
	sc          *bufio.Scanner
	lineNo      int
	pending     []string //fields of the current line not yet handed out
	pendingLine int
}

func newTokens(r io.Reader) *tokens {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	return &tokens{sc: sc}
}

//line returns the next raw line, without the line terminator, and its number.
//Any field of the current line not yet returned by next is discarded.
//It returns io.EOF when there are no more lines.
func (T *tokens) line() (string, int, error) {
	T.pending = nil
	if T.sc.Scan() {
		T.lineNo++
		return strings.TrimRight(T.sc.Text(), "\r"), T.lineNo, nil
	}
	if err := T.sc.Err(); err != nil {
		return "", T.lineNo, newError(IOError, secSource, T.lineNo+1, "can't read line").wrap(err)
	}
	return "", T.lineNo, io.EOF
}

//next returns the next numeric field, going to the following lines as
//needed. Blank lines are skipped. It returns io.EOF at the end of the input.
func (T *tokens) next() (token, error) {
	for len(T.pending) == 0 {
		if !T.sc.Scan() {
			if err := T.sc.Err(); err != nil {
				return token{}, newError(IOError, secSource, T.lineNo+1, "can't read line").wrap(err)
			}
			return token{}, io.EOF
		}
		T.lineNo++
		T.pending = splitNumbers(T.sc.Text())
		T.pendingLine = T.lineNo
	}
	t := token{T.pending[0], T.pendingLine}
	T.pending = T.pending[1:]
	return t, nil
}

//pendingOnLine returns how many fields of the line that produced the last
//token are still to be handed out.
func (T *tokens) pendingOnLine() int {
	return len(T.pending)
}

//splitNumbers splits s on whitespace and also where a sign starts a new
//number right after the digits of the previous one, as in "1.23-4.56".
//Signs after an exponent marker are left alone.
func splitNumbers(s string) []string {
	fields := strings.Fields(s)
	ret := make([]string, 0, len(fields))
	for _, f := range fields {
		start := 0
		for i := 1; i < len(f); i++ {
			if f[i] != '-' && f[i] != '+' {
				continue
			}
			if p := f[i-1]; isDigit(p) || p == '.' {
				ret = append(ret, f[start:i])
				start = i
			}
		}
		ret = append(ret, f[start:])
	}
	return ret
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

//looksNumeric rejects what strconv would accept as a float but is not
//a plain decimal or exponential number: inf, nan and hex floats.
func looksNumeric(s string) bool {
	if s == "" {
		return false
	}
	c := s[0]
	if c == '-' || c == '+' {
		if len(s) == 1 {
			return false
		}
		c = s[1]
	}
	if !isDigit(c) && c != '.' {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) && !strings.ContainsRune(".+-eEdD", rune(s[i])) {
			return false
		}
	}
	return true
}

//parseFloat reads t as a float64. Fortran "D" exponents are accepted.
func parseFloat(t token, section string) (float64, error) {
	s := t.text
	if !looksNumeric(s) {
		return 0, newError(NumericError, section, t.line, "number expected, got %q", t.text)
	}
	if strings.ContainsAny(s, "dD") {
		s = strings.NewReplacer("d", "e", "D", "E").Replace(s)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, newError(NumericError, section, t.line, "number expected, got %q", t.text).wrap(err)
	}
	return f, nil
}

//parseInt reads t as an int.
func parseInt(t token, section string) (int, error) {
	if !looksNumeric(t.text) {
		return 0, newError(NumericError, section, t.line, "integer expected, got %q", t.text)
	}
	i, err := strconv.Atoi(t.text)
	if err == nil {
		return i, nil
	}
	if _, ferr := parseFloat(t, section); ferr == nil {
		return 0, newError(NumericError, section, t.line, "integer expected but fractional value %q given", t.text)
	}
	return 0, newError(NumericError, section, t.line, "integer expected, got %q", t.text).wrap(err)
}

//lineTokens splits a whole line into tokens, for the fixed-shape lines of the header.
func lineTokens(s string, line int) []token {
	f := splitNumbers(s)
	ret := make([]token, len(f))
	for i, v := range f {
		ret[i] = token{v, line}
	}
	return ret
}
