// seehuhn.de/go/section - cross-section properties from vector drawings
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package dxf

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Tag is a single DXF group: an integer group code and its value.
type Tag struct {
	Code  int
	Value string
	Line  int // line number of the group code, 1-based
}

// AsFloat parses the tag value as a real number.
func (t Tag) AsFloat() (float64, error) {
	x, err := strconv.ParseFloat(t.Value, 64)
	if err != nil {
		return 0, &SyntaxError{Line: t.Line + 1, Msg: fmt.Sprintf("group %d: invalid number %q", t.Code, t.Value)}
	}
	return x, nil
}

// AsInt parses the tag value as an integer.
func (t Tag) AsInt() (int, error) {
	x, err := strconv.Atoi(t.Value)
	if err != nil {
		return 0, &SyntaxError{Line: t.Line + 1, Msg: fmt.Sprintf("group %d: invalid integer %q", t.Code, t.Value)}
	}
	return x, nil
}

// SyntaxError reports malformed input.
type SyntaxError struct {
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("dxf: line %d: %s", e.Line, e.Msg)
}

// Scanner reads group code/value pairs from an ASCII DXF stream.
type Scanner struct {
	lines *bufio.Scanner
	line  int

	// LastTag is the tag read by the most recent successful call to Next.
	LastTag Tag

	err error
}

// NewScanner returns a Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	lines := bufio.NewScanner(r)
	lines.Buffer(make([]byte, 0, 4096), 1<<20)
	return &Scanner{lines: lines}
}

// Next advances to the next tag. It returns false at the end of the input
// or after an error; Err distinguishes the two cases.
func (s *Scanner) Next() bool {
	if s.err != nil {
		return false
	}

	codeLine, ok := s.readLine()
	for ok && strings.TrimSpace(codeLine) == "" {
		// trailing blank lines are common in hand-edited files
		codeLine, ok = s.readLine()
	}
	if !ok {
		return false
	}
	codeLineNo := s.line
	valueLine, ok := s.readLine()
	if !ok {
		if s.err == nil {
			s.err = &SyntaxError{Line: codeLineNo, Msg: "group code without value"}
		}
		return false
	}

	code, err := strconv.Atoi(strings.TrimSpace(codeLine))
	if err != nil {
		s.err = &SyntaxError{Line: codeLineNo, Msg: fmt.Sprintf("invalid group code %q", codeLine)}
		return false
	}

	s.LastTag = Tag{
		Code:  code,
		Value: strings.TrimSpace(valueLine),
		Line:  codeLineNo,
	}
	return true
}

// Err returns the first error encountered by the Scanner, if any.
func (s *Scanner) Err() error {
	return s.err
}

func (s *Scanner) readLine() (string, bool) {
	if !s.lines.Scan() {
		s.err = s.lines.Err()
		return "", false
	}
	s.line++
	return strings.TrimSuffix(s.lines.Text(), "\r"), true
}
