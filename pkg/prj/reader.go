package prj

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"
)

const maxLineSize = 1 << 20

// Reader pulls whitespace-delimited tokens and whole lines from PRJ text.
// Token reads skip blank lines and comment lines starting with '!'.
type Reader struct {
	sc   *bufio.Scanner
	line int
	cur  string
	pos  int
	have bool
}

// NewReader creates a Reader over r.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &Reader{sc: sc}
}

// NewStringReader creates a Reader over s.
func NewStringReader(s string) *Reader {
	return NewReader(strings.NewReader(s))
}

// Line returns the 1-based number of the line last read from.
func (r *Reader) Line() int {
	return r.line
}

func (r *Reader) scan() error {
	if !r.sc.Scan() {
		err := r.sc.Err()
		if err == nil {
			err = io.ErrUnexpectedEOF
		}
		return &ReadError{Line: r.line, Err: err}
	}
	r.line++
	r.cur = strings.TrimRight(r.sc.Text(), "\r")
	r.pos = 0
	return nil
}

// ReadString returns the next token.
func (r *Reader) ReadString() (string, error) {
	for {
		if r.have {
			for r.pos < len(r.cur) && isSpace(r.cur[r.pos]) {
				r.pos++
			}
			if r.pos < len(r.cur) {
				start := r.pos
				for r.pos < len(r.cur) && !isSpace(r.cur[r.pos]) {
					r.pos++
				}
				return r.cur[start:r.pos], nil
			}
			r.have = false
		}
		if err := r.scan(); err != nil {
			return "", err
		}
		if strings.HasPrefix(strings.TrimLeft(r.cur, " \t"), "!") {
			continue
		}
		r.have = true
	}
}

// ReadNumber returns the next token as text. Validation is left to the
// FloatField that stores it.
func (r *Reader) ReadNumber() (string, error) {
	return r.ReadString()
}

// ReadInt reads the next token as an int.
func (r *Reader) ReadInt() (int, error) {
	tok, err := r.ReadString()
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, &ReadError{Line: r.line, Err: err}
	}
	return v, nil
}

// ReadUint reads the next token as a uint32.
func (r *Reader) ReadUint() (uint32, error) {
	tok, err := r.ReadString()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(tok, 10, 32)
	if err != nil {
		return 0, &ReadError{Line: r.line, Err: err}
	}
	return uint32(v), nil
}

// ReadLine returns the unread remainder of the current line if it holds
// anything, otherwise the whole next line. Comment lines are not skipped.
func (r *Reader) ReadLine() (string, error) {
	if r.have {
		rest := strings.TrimSpace(r.cur[r.pos:])
		r.have = false
		if rest != "" {
			return rest, nil
		}
	}
	if err := r.scan(); err != nil {
		return "", err
	}
	return r.cur, nil
}

// AtEnd reports whether only blank and comment lines remain. If not, the
// next token is left unread.
func (r *Reader) AtEnd() (bool, error) {
	for {
		if r.have {
			if strings.TrimLeft(r.cur[r.pos:], " \t\v\f") != "" {
				return false, nil
			}
			r.have = false
		}
		if err := r.scan(); err != nil {
			if errors.Is(err, io.ErrUnexpectedEOF) {
				return true, nil
			}
			return false, err
		}
		if strings.HasPrefix(strings.TrimLeft(r.cur, " \t"), "!") {
			continue
		}
		r.have = true
	}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\v' || c == '\f'
}
