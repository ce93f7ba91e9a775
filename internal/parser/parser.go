package parser

import (
	"stopline/internal/ast"
	"stopline/internal/diag"
	"stopline/internal/lexer"
	"stopline/internal/source"
	"stopline/internal/token"
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough - проверить, достигли ли мы максимального количества ошибок
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

type Result struct {
	Tree   *ast.Tree
	Errors uint
}

// Parser: состояние парсера на один файл
type Parser struct {
	file    *source.File
	toks    []token.Token // весь поток токенов, последний всегда EOF
	pos     int
	b       *ast.Builder
	opts    Options
	pending []token.Trivia // trivia пропущенных токенов, приклеивается к следующему
	lastErr int            // позиция последней ошибки, чтобы не плодить каскады
}

// ParseFile разбирает весь файл. Дерево строится всегда, даже при ошибках:
// нераспознанные токены уходят в trivia следующего токена.
func ParseFile(lx *lexer.Lexer, opts Options) Result {
	file := lx.File()
	toks := lx.All()
	p := Parser{
		file:    file,
		toks:    toks,
		b:       ast.NewBuilder(file, uint(len(toks))*2),
		opts:    opts,
		lastErr: -1,
	}
	root := p.parseSourceUnit()
	return Result{
		Tree:   p.b.Finish(root),
		Errors: p.opts.CurrentErrors,
	}
}

func (p *Parser) parseSourceUnit() ast.ElementID {
	elems := p.parseModuleElements(token.EOF)
	eof := p.advance()
	return p.b.Node(ast.KindSourceUnit, elems, eof)
}

// parseModuleElements reads module elements until the closing token (not consumed).
func (p *Parser) parseModuleElements(until token.Kind) ast.ElementID {
	var items []ast.ElementID
	for !p.at(until) && !p.at(token.EOF) {
		start := p.pos
		if el := p.parseModuleElement(); el.IsValid() {
			items = append(items, el)
		}
		if p.pos == start {
			p.skipUnexpected(diag.SynUnexpectedTopLevel, "unexpected token")
		}
	}
	return p.b.List(items...)
}

func (p *Parser) parseModuleElement() ast.ElementID {
	if p.at(token.KwExport) && p.peekAt(1).Kind == token.Assign {
		return p.parseExportAssignment()
	}
	n := p.modifierRun(isModuleModifier)
	if n > 0 && !isDeclarationStart(p.peekAt(n)) {
		n = 0
	}
	switch p.peekAt(n).Kind {
	case token.KwModule, token.KwNamespace:
		if n > 0 || p.isModuleDeclarationStart() {
			return p.parseModuleDeclaration(p.parseModifiers(n))
		}
	case token.KwClass:
		return p.parseClassDeclaration(p.parseModifiers(n))
	case token.KwInterface:
		return p.parseInterfaceDeclaration(p.parseModifiers(n))
	case token.KwEnum:
		return p.parseEnumDeclaration(p.parseModifiers(n))
	case token.KwImport:
		return p.parseImportDeclaration(p.parseModifiers(n))
	case token.KwFunction:
		return p.parseFunctionDeclaration(p.parseModifiers(n))
	case token.KwVar, token.KwLet, token.KwConst:
		return p.parseVariableStatement(p.parseModifiers(n))
	}
	return p.parseStatement()
}

func (p *Parser) isModuleDeclarationStart() bool {
	next := p.peekAt(1)
	return next.Kind == token.StringLit || next.IsIdent()
}

func isModuleModifier(k token.Kind) bool {
	return k == token.KwDeclare || k == token.KwExport
}

func isDeclarationStart(tok token.Token) bool {
	switch tok.Kind {
	case token.KwModule, token.KwNamespace, token.KwClass, token.KwInterface, token.KwEnum,
		token.KwImport, token.KwFunction, token.KwVar, token.KwLet, token.KwConst:
		return true
	default:
		return false
	}
}
