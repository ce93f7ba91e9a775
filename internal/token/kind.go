package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// NumberLit represents a numeric literal.
	NumberLit
	// StringLit represents a single- or double-quoted string literal.
	StringLit

	// reserved words
	KwBreak
	KwCase
	KwCatch
	KwClass
	KwConst
	KwContinue
	KwDebugger
	KwDefault
	KwDelete
	KwDo
	KwElse
	KwEnum
	KwExport
	KwExtends
	KwFalse
	KwFinally
	KwFor
	KwFunction
	KwIf
	KwImport
	KwIn
	KwInstanceof
	KwInterface
	KwLet
	KwNew
	KwNull
	KwReturn
	KwSuper
	KwSwitch
	KwThis
	KwThrow
	KwTrue
	KwTry
	KwTypeof
	KwVar
	KwVoid
	KwWhile
	KwWith

	// contextual keywords
	KwConstructor
	KwDeclare
	KwGet
	KwModule
	KwNamespace
	KwPrivate
	KwPublic
	KwRequire
	KwSet
	KwStatic

	LBrace    // {
	RBrace    // }
	LParen    // (
	RParen    // )
	LBracket  // [
	RBracket  // ]
	Dot       // .
	DotDotDot // ...
	Semicolon // ;
	Comma     // ,
	Colon     // :
	Question  // ?
	FatArrow  // =>

	Lt       // <
	Gt       // >
	LtEq     // <=
	GtEq     // >=
	EqEq     // ==
	BangEq   // !=
	EqEqEq   // ===
	BangEqEq // !==

	Plus       // +
	Minus      // -
	Star       // *
	Slash      // /
	Percent    // %
	PlusPlus   // ++
	MinusMinus // --
	Shl        // <<
	Shr        // >>
	UShr       // >>>
	Amp        // &
	Pipe       // |
	Caret      // ^
	Bang       // !
	Tilde      // ~
	AndAnd     // &&
	OrOr       // ||

	Assign        // =
	PlusAssign    // +=
	MinusAssign   // -=
	StarAssign    // *=
	SlashAssign   // /=
	PercentAssign // %=
	ShlAssign     // <<=
	ShrAssign     // >>=
	UShrAssign    // >>>=
	AmpAssign     // &=
	PipeAssign    // |=
	CaretAssign   // ^=

	kindCount
)

var kindNames = [...]string{
	Invalid:   "Invalid",
	EOF:       "EOF",
	Ident:     "Ident",
	NumberLit: "NumberLit",
	StringLit: "StringLit",

	KwBreak:       "break",
	KwCase:        "case",
	KwCatch:       "catch",
	KwClass:       "class",
	KwConst:       "const",
	KwContinue:    "continue",
	KwDebugger:    "debugger",
	KwDefault:     "default",
	KwDelete:      "delete",
	KwDo:          "do",
	KwElse:        "else",
	KwEnum:        "enum",
	KwExport:      "export",
	KwExtends:     "extends",
	KwFalse:       "false",
	KwFinally:     "finally",
	KwFor:         "for",
	KwFunction:    "function",
	KwIf:          "if",
	KwImport:      "import",
	KwIn:          "in",
	KwInstanceof:  "instanceof",
	KwInterface:   "interface",
	KwLet:         "let",
	KwNew:         "new",
	KwNull:        "null",
	KwReturn:      "return",
	KwSuper:       "super",
	KwSwitch:      "switch",
	KwThis:        "this",
	KwThrow:       "throw",
	KwTrue:        "true",
	KwTry:         "try",
	KwTypeof:      "typeof",
	KwVar:         "var",
	KwVoid:        "void",
	KwWhile:       "while",
	KwWith:        "with",
	KwConstructor: "constructor",
	KwDeclare:     "declare",
	KwGet:         "get",
	KwModule:      "module",
	KwNamespace:   "namespace",
	KwPrivate:     "private",
	KwPublic:      "public",
	KwRequire:     "require",
	KwSet:         "set",
	KwStatic:      "static",

	LBrace:    "{",
	RBrace:    "}",
	LParen:    "(",
	RParen:    ")",
	LBracket:  "[",
	RBracket:  "]",
	Dot:       ".",
	DotDotDot: "...",
	Semicolon: ";",
	Comma:     ",",
	Colon:     ":",
	Question:  "?",
	FatArrow:  "=>",

	Lt:       "<",
	Gt:       ">",
	LtEq:     "<=",
	GtEq:     ">=",
	EqEq:     "==",
	BangEq:   "!=",
	EqEqEq:   "===",
	BangEqEq: "!==",

	Plus:       "+",
	Minus:      "-",
	Star:       "*",
	Slash:      "/",
	Percent:    "%",
	PlusPlus:   "++",
	MinusMinus: "--",
	Shl:        "<<",
	Shr:        ">>",
	UShr:       ">>>",
	Amp:        "&",
	Pipe:       "|",
	Caret:      "^",
	Bang:       "!",
	Tilde:      "~",
	AndAnd:     "&&",
	OrOr:       "||",

	Assign:        "=",
	PlusAssign:    "+=",
	MinusAssign:   "-=",
	StarAssign:    "*=",
	SlashAssign:   "/=",
	PercentAssign: "%=",
	ShlAssign:     "<<=",
	ShrAssign:     ">>=",
	UShrAssign:    ">>>=",
	AmpAssign:     "&=",
	PipeAssign:    "|=",
	CaretAssign:   "^=",
}

func (k Kind) String() string {
	if k < kindCount && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}

// IsKeyword reports whether k is a reserved or contextual keyword.
func (k Kind) IsKeyword() bool {
	return k >= KwBreak && k <= KwStatic
}

// IsContextualKeyword reports whether k may also be used as a plain identifier.
func (k Kind) IsContextualKeyword() bool {
	return k >= KwConstructor && k <= KwStatic
}

// IsAssignment reports whether k is '=' or a compound assignment operator.
func (k Kind) IsAssignment() bool {
	return k >= Assign && k <= CaretAssign
}

// IsModifier reports whether k may appear in a declaration modifier list.
func (k Kind) IsModifier() bool {
	switch k {
	case KwDeclare, KwExport, KwPublic, KwPrivate, KwStatic:
		return true
	default:
		return false
	}
}
