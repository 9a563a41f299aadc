package vm

import "github.com/agenthands/forjery/pkg/compiler/lexer"

// binaryOp applies an arithmetic word as b op a, where a is the operand
// popped first. Results wrap at 32 bits.
type binaryOp func(b, a int32) (int32, error)

var binaryOps = map[lexer.Kind]binaryOp{
	lexer.KindAdd: func(b, a int32) (int32, error) { return b + a, nil },
	lexer.KindSub: func(b, a int32) (int32, error) { return b - a, nil },
	lexer.KindMul: func(b, a int32) (int32, error) { return b * a, nil },
	lexer.KindDiv: func(b, a int32) (int32, error) {
		if a == 0 {
			return 0, ErrDivisionByZero
		}
		return b / a, nil
	},
}
