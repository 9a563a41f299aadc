package lexer

import (
	"strconv"
	"unicode/utf8"

	"github.com/agenthands/forjery/pkg/diag"
)

// Scanner performs lexical analysis on forjery source.
type Scanner struct {
	source []byte
	words  map[string]Kind
	cursor int
	line   int
	col    int

	buf       []byte
	startLine int
	startCol  int
	inString  bool

	code *Code
}

// NewScanner creates a new scanner for the given source. words is the
// reserved-word table, normally the result of ReservedWords.
func NewScanner(source []byte, words map[string]Kind) *Scanner {
	s := &Scanner{words: words}
	s.Reset(source)
	return s
}

// Reset re-initializes the scanner with new source.
func (s *Scanner) Reset(source []byte) {
	s.source = source
	s.cursor = 0
	s.line = 1
	s.col = 1
	s.buf = s.buf[:0]
	s.inString = false
	s.code = &Code{}
}

// Scan consumes the whole source and returns the emitted code. The first
// lexical error stops the scan and is returned as a *diag.Diagnostic.
//
// A word still pending when the source ends is dropped, as is an
// unterminated string literal: programs end with a space or newline.
func (s *Scanner) Scan() (*Code, error) {
	for s.cursor < len(s.source) {
		r, size := utf8.DecodeRune(s.source[s.cursor:])
		s.cursor += size

		if err := s.scanRune(r); err != nil {
			return nil, err
		}

		if r == '\n' {
			s.line++
			s.col = 1
		} else {
			s.col++
		}
	}
	return s.code, nil
}

func (s *Scanner) scanRune(r rune) error {
	if !isLegal(r) {
		return diag.Errorf(diag.KindLex, s.pos(), "Invalid character \"%c\"", r)
	}

	if s.inString {
		if r != '"' {
			s.buf = append(s.buf, byte(r))
			return nil
		}
		s.emit(Token{Kind: KindStr, Str: string(s.buf)})
		s.inString = false
		s.buf = s.buf[:0]
		return nil
	}

	if r == ' ' || r == '\n' {
		if len(s.buf) == 0 {
			return nil
		}
		err := s.classify()
		s.buf = s.buf[:0]
		return err
	}

	if len(s.buf) == 0 {
		s.startLine, s.startCol = s.line, s.col
	}
	s.buf = append(s.buf, byte(r))
	return nil
}

// classify turns the completed word in buf into a token.
func (s *Scanner) classify() error {
	if kind, ok := s.words[string(s.buf)]; ok {
		if kind == KindSos {
			// The literal starts after this delimiter and keeps the
			// opener's position.
			s.inString = true
			return nil
		}
		s.emit(Token{Kind: kind})
		return nil
	}

	n, err := strconv.ParseInt(string(s.buf), 10, 32)
	if err != nil {
		return diag.Errorf(diag.KindLex, s.pos(), "Invalid identifier \"%s\"", s.buf)
	}
	s.emit(Token{Kind: KindNum, Num: int32(n)})
	return nil
}

func (s *Scanner) emit(tok Token) {
	tok.Line = uint32(s.startLine)
	tok.Col = uint32(s.startCol)
	s.code.Emit(tok)
}

func (s *Scanner) pos() diag.Pos {
	return diag.Pos{Line: s.line, Col: s.col}
}

// isLegal reports whether r may appear in source: printable ASCII or a
// newline.
func isLegal(r rune) bool {
	return (r > 31 && r < 127) || r == '\n'
}
