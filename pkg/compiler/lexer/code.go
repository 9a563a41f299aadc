package lexer

// Code is the token sequence emitted by the scanner. The scanner emits
// onto the top; a machine drains from the bottom through an explicit
// cursor, so the first token written is the first one evaluated.
type Code struct {
	tokens []Token
	bottom int
}

// Emit places tok on top of the code.
func (c *Code) Emit(tok Token) {
	c.tokens = append(c.tokens, tok)
}

// Next removes and returns the bottom-most token. ok is false once the
// code is exhausted.
func (c *Code) Next() (tok Token, ok bool) {
	if c.bottom >= len(c.tokens) {
		return Token{}, false
	}
	tok = c.tokens[c.bottom]
	c.bottom++
	return tok, true
}

// Len returns the number of tokens not yet consumed.
func (c *Code) Len() int {
	return len(c.tokens) - c.bottom
}

// Tokens returns the unconsumed tokens in source order. The slice aliases
// the code's storage.
func (c *Code) Tokens() []Token {
	return c.tokens[c.bottom:]
}

// Reset empties the code, keeping its storage for reuse.
func (c *Code) Reset() {
	c.tokens = c.tokens[:0]
	c.bottom = 0
}
