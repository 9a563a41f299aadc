package lexer

import "strconv"

// Kind represents the type of token identified by the scanner.
type Kind uint8

const (
	KindNum       Kind = iota // integer literal
	KindSos                   // start of string, never emitted
	KindStr                   // string literal
	KindPop                   // .
	KindShowStack             // .s
	KindAdd                   // +
	KindSub                   // -
	KindMul                   // *
	KindDiv                   // /
	KindPrintln               // println
)

var kindNames = [...]string{
	KindNum:       "Num",
	KindSos:       "Sos",
	KindStr:       "Str",
	KindPop:       "Pop",
	KindShowStack: "Sstk",
	KindAdd:       "Add",
	KindSub:       "Sub",
	KindMul:       "Mul",
	KindDiv:       "Div",
	KindPrintln:   "Println",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Token is a single unit of emitted code. Num and Str hold the payload of
// literal kinds; Line and Col locate the character that completed it.
type Token struct {
	Kind Kind
	Num  int32
	Str  string
	Line uint32
	Col  uint32
}

// ReservedWords returns a fresh table of the words that map directly to a
// token kind. Lookups against it are exact.
func ReservedWords() map[string]Kind {
	return map[string]Kind{
		`."`:      KindSos,
		".":       KindPop,
		".s":      KindShowStack,
		"+":       KindAdd,
		"-":       KindSub,
		"*":       KindMul,
		"/":       KindDiv,
		"println": KindPrintln,
	}
}
