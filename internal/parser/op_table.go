package parser

import "stopline/internal/token"

// Приоритеты бинарных операторов: чем больше, тем сильнее связывает.
const (
	precNone = iota
	precLogicalOr
	precLogicalAnd
	precBitOr
	precBitXor
	precBitAnd
	precEquality
	precRelational
	precShift
	precAdditive
	precMultiplicative
)

var binaryPrec = map[token.Kind]int{
	token.OrOr:         precLogicalOr,
	token.AndAnd:       precLogicalAnd,
	token.Pipe:         precBitOr,
	token.Caret:        precBitXor,
	token.Amp:          precBitAnd,
	token.EqEq:         precEquality,
	token.BangEq:       precEquality,
	token.EqEqEq:       precEquality,
	token.BangEqEq:     precEquality,
	token.Lt:           precRelational,
	token.Gt:           precRelational,
	token.LtEq:         precRelational,
	token.GtEq:         precRelational,
	token.KwInstanceof: precRelational,
	token.KwIn:         precRelational,
	token.Shl:          precShift,
	token.Shr:          precShift,
	token.UShr:         precShift,
	token.Plus:         precAdditive,
	token.Minus:        precAdditive,
	token.Star:         precMultiplicative,
	token.Slash:        precMultiplicative,
	token.Percent:      precMultiplicative,
}

// binaryPrecedence returns precNone when k is not a binary operator here.
// With noIn the 'in' operator is disabled so a for header can claim it.
func binaryPrecedence(k token.Kind, noIn bool) int {
	if noIn && k == token.KwIn {
		return precNone
	}
	return binaryPrec[k]
}

func isPrefixOperator(k token.Kind) bool {
	switch k {
	case token.Plus, token.Minus, token.Bang, token.Tilde, token.PlusPlus, token.MinusMinus,
		token.KwTypeof, token.KwVoid, token.KwDelete:
		return true
	default:
		return false
	}
}
