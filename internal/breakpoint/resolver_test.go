package breakpoint_test

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/sync/errgroup"

	"stopline/internal/ast"
	"stopline/internal/breakpoint"
	"stopline/internal/diag"
	"stopline/internal/lexer"
	"stopline/internal/parser"
	"stopline/internal/source"
	"stopline/internal/token"
)

func parseTree(t testing.TB, path, src string) *ast.Tree {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual(path, []byte(src)))
	bag := diag.NewBag(0)
	rep := diag.BagReporter{Bag: bag}
	res := parser.ParseFile(lexer.New(file, lexer.Options{Reporter: rep}), parser.Options{Reporter: rep})
	if bag.HasErrors() {
		for _, d := range bag.Items() {
			t.Errorf("%s %s at %v", d.Code.ID(), d.Message, d.Primary)
		}
		t.Fatalf("expected clean parse of %q", src)
	}
	return res.Tree
}

// caretAt returns the offset of the first occurrence of needle in src.
func caretAt(t *testing.T, src, needle string) uint32 {
	t.Helper()
	i := strings.Index(src, needle)
	if i < 0 {
		t.Fatalf("caret %q not found in %q", needle, src)
	}
	return uint32(i)
}

func textOf(src string, info breakpoint.SpanInfo) string {
	if !info.Valid() {
		return ""
	}
	return src[info.Start():info.End()]
}

func mustResolve(t *testing.T, tree *ast.Tree, off uint32) breakpoint.SpanInfo {
	t.Helper()
	info, err := breakpoint.Resolve(tree, off)
	if err != nil {
		t.Fatalf("unexpected error at %d: %v", off, err)
	}
	return info
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		caret string // first occurrence in src
		want  string // "" means no breakpoint
	}{
		// variables
		{"first declarator", "var a = 1, b = 2;", "a =", "var a = 1"},
		{"comma binds to previous declarator", "var a = 1, b = 2;", ", b", "var a = 1"},
		{"later declarator", "var a = 1, b = 2;", "b =", "b = 2"},
		{"declarator without initializer", "var p, q = 2;", "p,", ""},
		{"statement skips uninitialized first", "var p, q = 2;", "var", "q = 2"},
		{"no initializers", "var p, q;", "var", ""},
		{"semicolon binds to previous token", "var a = 1;", ";", "var a = 1"},
		{"type annotation on caret line", "var v: number = 1;", "number", "var v: number = 1"},
		{"type annotation on previous line", "var w:\n  number = 2;", "number", ""},

		// functions
		{"function keyword goes to first statement", "function foo() {\n  return 1;\n}\n", "function", "return 1"},
		{"open brace on header line", "function foo() {\n  return 1;\n}\n", "{", "function foo()"},
		{"open brace on own line", "function foo()\n{\n  return 1;\n}\n", "{", "return 1"},
		{"close brace", "function foo() {\n  a();\n  return 1;\n}\n", "}", "return 1"},
		{"close brace of empty function", "function foo() {\n}\n", "}", "}"},
		{"overload signature", "function o(a: string);\nfunction o(a: any) {\n  return a;\n}", "o(a: string)", ""},
		{"nested function", "function outer() {\n  function inner() {\n    x();\n  }\n}", "inner", "function inner() {\n    x();\n  }"},
		{"throw", "function f() {\n  throw new Error(\"x\");\n}", "throw", "throw new Error(\"x\")"},
		{"bare return", "function f() {\n  return;\n}", "return", "return"},

		// parameters
		{"plain parameter", "function h(a, b = 2, ...c) {\n  return a;\n}", "a,", ""},
		{"default parameter", "function h(a, b = 2, ...c) {\n  return a;\n}", "b =", "b = 2"},
		{"rest parameter", "function h(a, b = 2, ...c) {\n  return a;\n}", "c)", "...c"},
		{"comma after plain parameter", "function h(a, b = 2, ...c) {\n  return a;\n}", ", b", ""},
		{"close paren binds to last parameter", "function f(a, b) {\n  return a;\n}", ") {", ""},
		{"close paren after rest parameter", "function h(a, ...c) {\n  return a;\n}", ") {", "...c"},

		// classes
		{"class keyword goes to first member", "class C {\n  x = 1;\n}", "class", "x = 1"},
		{"member without initializer", "class C {\n  x: number;\n}", "x:", ""},
		{"member with modifiers", "class C {\n  private static x = 1;\n}", "x =", "private static x = 1"},
		{"constructor is one breakpoint", "class C {\n  constructor(a) {\n    f();\n  }\n}", "constructor", "constructor(a) {\n    f();\n  }"},
		{"constructor open brace on header line", "class C {\n  constructor(a) {\n    f();\n  }\n}", "{\n    f", "constructor(a)"},
		{"property parameter", "class C {\n  constructor(private a, b) {\n  }\n}", "private", "private a"},
		{"comma after property parameter", "class C {\n  constructor(private a, b) {\n  }\n}", ", b", "private a"},
		{"empty class close brace", "class C {\n}\nvar z = 1;", "}", "}"},

		// modules
		{"module goes to first element", "module M {\n  var x = 1;\n}", "module", "var x = 1"},
		{"dotted module is whole", "module A.B {\n  var x = 1;\n}", "B", "module A.B {\n  var x = 1;\n}"},
		{"empty module close brace", "module M {\n}\nvar y = 1;", "}", ""},
		{"import", "import fs = require(\"fs\");", "import", "import fs = require(\"fs\")"},
		{"export assignment", "class C {\n}\nexport = C;", "export", "export = C"},

		// enums
		{"enum", "enum E {\n  A = 1,\n  B\n}", "enum", "enum E {\n  A = 1,\n  B\n}"},
		{"enum header", "enum E {\n  A = 1,\n  B\n}", "{", "enum E"},
		{"enum element", "enum E {\n  A = 1,\n  B\n}", "A", "A = 1"},
		{"enum comma", "enum E {\n  A = 1,\n  B\n}", ",", "A = 1"},
		{"enum close brace", "enum E {\n  A = 1,\n  B\n}", "}", "}"},

		// control flow
		{"if header", "if (a) {\n  b();\n} else {\n  c();\n}", "if", "if (a)"},
		{"if open brace on header line", "if (a) {\n  b();\n}", "{", "if (a)"},
		{"if close brace", "if (a) {\n  b();\n} else {\n  c();\n}", "}", "b()"},
		{"else", "if (a) {\n  b();\n} else {\n  c();\n}", "else", "c()"},
		{"if body statement", "if (a) return b;", "return", "return b"},
		{"while", "while (a) {\n  b();\n}", "while", "while (a)"},
		{"do keyword", "do {\n  x();\n} while (a);", "do", "x()"},
		{"do while keyword", "do {\n  x();\n} while (a);", "while", "while (a)"},
		{"do semicolon", "do {\n  x();\n} while (a);", ";\n", "x()"},
		{"do condition paren", "do {\n  x();\n} while (a);", "(a);", "while (a)"},
		{"do with empty body", "do ;\nwhile (a);", "do", "while (a)"},
		{"for-in header", "for (var k in o) {\n  f(k);\n}", "for", "for (var k in o)"},
		{"for declaration", "for (var i = 0; i < n; i++) {\n  f(i);\n}", "for", "var i = 0"},
		{"for condition", "for (var i = 0; i < n; i++) {\n  f(i);\n}", "i < n", "i < n"},
		{"for incrementor", "for (var i = 0; i < n; i++) {\n  f(i);\n}", "i++", "i++"},
		{"for close paren", "for (var i = 0; i < n; i++) {\n  f(i);\n}", ") {", "i++"},
		{"for open brace on header line", "for (var i = 0; i < n; i++) {\n  f(i);\n}", "{", "i++"},
		{"for close brace", "for (var i = 0; i < n; i++) {\n  f(i);\n}", "}", "f(i)"},
		{"for empty header", "for (;;) {\n  f();\n}", "for", ""},
		{"for comma initializer", "for (i = 0, j = 1; ; ) {\n}", ",", "i = 0"},
		{"for comma right operand", "for (i = 0, j = 1; ; ) {\n}", "j", "j = 1"},
		{"for token initializer", "for (i; i < 2; ) {\n}", "for", "i"},
		{"switch header", "switch (x) {\n  case 1:\n    f();\n}", "switch", "switch (x)"},
		{"switch brace on header line", "switch (x) {\n  case 1:\n    f();\n}", "{", "switch (x)"},
		{"switch entry", "switch (x)\n{\n  case 1:\n    f();\n    break;\n  default:\n    g();\n}\n", "{", "f()"},
		{"switch close brace", "switch (x)\n{\n  case 1:\n    f();\n    break;\n  default:\n    g();\n}\n", "}", "g()"},
		{"case clause", "switch (x)\n{\n  case 1:\n    f();\n    break;\n  default:\n    g();\n}\n", "case", "f()"},
		{"break", "switch (x)\n{\n  case 1:\n    f();\n    break;\n  default:\n    g();\n}\n", "break", "break"},
		{"try", "try {\n  a();\n} catch (e) {\n  b();\n} finally {\n  c();\n}", "try", "a()"},
		{"catch", "try {\n  a();\n} catch (e) {\n  b();\n} finally {\n  c();\n}", "catch", "catch (e)"},
		{"finally", "try {\n  a();\n} catch (e) {\n  b();\n} finally {\n  c();\n}", "finally", "c()"},
		{"labeled break", "outer: for (;;) {\n  break outer;\n}", "break", "break outer"},
		{"with", "with (o) {\n  f();\n}", "with", "f()"},
		{"debugger", "debugger;", "debugger", "debugger"},
		{"empty statement", ";\nf();", ";", ""},
		{"bare block", "{\n  f();\n}", "{", "f()"},

		// arrows
		{"arrow concise body", "var f = (a) => a + 1;", "a + 1", "a + 1"},
		{"arrow token", "var f = (a) => a + 1;", "=>", "a + 1"},
		{"arrow statement", "var f = (a) => a + 1;", "var", "var f = (a) => a + 1"},
		{"simple arrow parameter", "var g = x => {\n  return x;\n};", "x =>", "return x"},
		{"arrow body call", "h(x => g(x));", "g(", "g(x)"},
		{"call around arrow", "h(x => g(x));", "h(", "h(x => g(x))"},

		// positions
		{"caret on line before token", "\n\nvar x = 1;", "\n", ""},
		{"end of file", "f();\n", "\n", "f()"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := parseTree(t, "test.ts", tt.src)
			info := mustResolve(t, tree, caretAt(t, tt.src, tt.caret))
			if got := textOf(tt.src, info); got != tt.want {
				t.Fatalf("expected %q, got %q (%v)", tt.want, got, info)
			}
		})
	}
}

func TestAmbientExclusion(t *testing.T) {
	srcs := []string{
		"declare function f(a: number): void;\nvar x = 1;\n",
		"declare class C {\n  m() { return 1; }\n  x = 2;\n}\nvar y = 1;\n",
		"declare module M {\n  var z = 1;\n  function g() { }\n}\nf();\n",
		"interface I {\n  a: number;\n  m(x: string): void;\n}\nvar q = 1;\n",
	}
	for _, src := range srcs {
		tree := parseTree(t, "test.ts", src)
		decl := tree.Item(tree.Field(tree.Root(), ast.FieldElements), 0)
		sp, _ := tree.Span(decl)
		for off := sp.Start; off < sp.End; off++ {
			if info := mustResolve(t, tree, off); info.Valid() {
				t.Fatalf("expected no breakpoint at %d in %q, got %q", off, src, textOf(src, info))
			}
		}
	}
}

func TestDeclarationsOnlyFiles(t *testing.T) {
	tests := []struct {
		path string
		src  string
	}{
		{"lib.d.ts", "var x = 1;\nf();\n"},
		{"ambient.ts", "declare var x: number;\ndeclare function f(): void;\n"},
	}
	for _, tt := range tests {
		tree := parseTree(t, tt.path, tt.src)
		for off := 0; off <= len(tt.src); off++ {
			if info := mustResolve(t, tree, uint32(off)); info.Valid() {
				t.Fatalf("%s: expected no breakpoint at %d, got %v", tt.path, off, info)
			}
		}
	}
}

func TestEmptyBodyBraces(t *testing.T) {
	src := "x();\n{\n}\nwhile (a)\n{\n}\nif (b)\n{\n}\n"
	tree := parseTree(t, "test.ts", src)
	for i := range len(src) {
		if src[i] != '{' && src[i] != '}' {
			continue
		}
		if info := mustResolve(t, tree, uint32(i)); info.Valid() {
			t.Fatalf("expected no breakpoint on brace at %d, got %q", i, textOf(src, info))
		}
	}
}

func TestCaretBeforeToken(t *testing.T) {
	src := "function f() {\n\n  return 1;\n}\n"
	tree := parseTree(t, "test.ts", src)
	blank := caretAt(t, src, "\n\n") + 1
	tok := breakpoint.FindToken(tree, blank)
	if got := tree.TokenKind(tok); got != token.KwReturn {
		t.Fatalf("expected caret to bind to 'return', got %v", got)
	}
	if info := mustResolve(t, tree, blank); info.Valid() {
		t.Fatalf("expected no breakpoint on blank line, got %q", textOf(src, info))
	}
}

func TestDeterminism(t *testing.T) {
	src := sampleProgram
	tree := parseTree(t, "sample.ts", src)
	for off := 0; off <= len(src); off++ {
		a := mustResolve(t, tree, uint32(off))
		b := mustResolve(t, tree, uint32(off))
		if a != b {
			t.Fatalf("expected identical results at %d, got %v and %v", off, a, b)
		}
	}
}

func TestConcurrentResolve(t *testing.T) {
	src := sampleProgram
	tree := parseTree(t, "sample.ts", src)
	want := make([]breakpoint.SpanInfo, len(src)+1)
	for off := range want {
		want[off] = mustResolve(t, tree, uint32(off))
	}
	var g errgroup.Group
	for range 8 {
		g.Go(func() error {
			for off := range want {
				got, err := breakpoint.Resolve(tree, uint32(off))
				if err != nil {
					return err
				}
				if got != want[off] {
					return errors.New("result differs under concurrency at offset " + src[off:min(off+10, len(src))])
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
}

// Every resolved span lies inside the file and inside the top-level element holding the caret.
func TestSpansStayInsideElement(t *testing.T) {
	src := sampleProgram
	tree := parseTree(t, "sample.ts", src)
	elems := tree.Field(tree.Root(), ast.FieldElements)
	for i := range tree.ItemCount(elems) {
		el := tree.Item(elems, i)
		sp, _ := tree.Span(el)
		for off := sp.Start; off < sp.End; off++ {
			info := mustResolve(t, tree, off)
			if info.Valid() && !info.Span().Within(sp) {
				t.Fatalf("span %v for caret %d escapes element %v", info, off, sp)
			}
		}
	}
}

func TestInvariantViolation(t *testing.T) {
	// "var f = function ();" with the function body missing, which the parser never produces.
	src := "var f = function ();"
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("broken.ts", []byte(src)))
	toks := lexer.New(file, lexer.Options{}).All()
	b := ast.NewBuilder(file, 0)
	ids := make([]ast.ElementID, len(toks))
	for i, tok := range toks {
		ids[i] = b.Token(tok)
	}
	// var f = function ( ) ; EOF
	params := b.Node(ast.KindParameterList, ids[4], b.SeparatedList(), ids[5])
	sig := b.Node(ast.KindCallSignature, params, ast.NoElementID)
	fn := b.Node(ast.KindFunctionExpression, ids[3], ast.NoElementID, sig, ast.NoElementID)
	init := b.Node(ast.KindEqualsValueClause, ids[2], fn)
	declarator := b.Node(ast.KindVariableDeclarator, ids[1], ast.NoElementID, init)
	decl := b.Node(ast.KindVariableDeclaration, ids[0], b.SeparatedList(declarator))
	stmt := b.Node(ast.KindVariableStatement, b.List(), decl, ids[6])
	tree := b.Finish(b.Node(ast.KindSourceUnit, b.List(stmt), ids[7]))

	info, err := breakpoint.Resolve(tree, caretAt(t, src, "function"))
	if err == nil {
		t.Fatalf("expected invariant error, got %v", info)
	}
	if !errors.Is(err, breakpoint.ErrInvariant) {
		t.Fatalf("expected ErrInvariant, got %v", err)
	}
	var inv *breakpoint.InvariantError
	if !errors.As(err, &inv) || inv.Kind != ast.KindFunctionExpression {
		t.Fatalf("expected InvariantError on FunctionExpression, got %v", err)
	}
	if info.Valid() {
		t.Fatalf("expected no span alongside error, got %v", info)
	}
}

func TestFindToken(t *testing.T) {
	src := "a;b  \n  c"
	tree := parseTree(t, "test.ts", src)
	tests := []struct {
		off  uint32
		want string
	}{
		{0, "a"},
		{1, ";"},
		{2, "b"},
		{4, "b"},
		{6, "c"},
		{8, "c"},
		{9, ""},
		{100, ""},
	}
	for _, tt := range tests {
		tok, _ := tree.Token(breakpoint.FindToken(tree, tt.off))
		if tok.Text != tt.want {
			t.Fatalf("offset %d: expected %q, got %q", tt.off, tt.want, tok.Text)
		}
	}
}

const sampleProgram = `module Shapes {
    export class Point {
        constructor(public x: number, public y: number) {
        }
        getDist() { return Math.sqrt(this.x * this.x + this.y * this.y); }
        static origin = new Point(0, 0);
    }
}

var p: Shapes.Point = new Shapes.Point(3, 4), unused;
var dist = p.getDist();
function sum(xs, ...rest) {
    var total = 0;
    for (var i = 0; i < xs.length; i++) {
        total += xs[i];
    }
    for (var k in rest) total++;
    do {
        total--;
    } while (total > 100);
    switch (total) {
        case 0:
            return 0;
        default:
            break;
    }
    try {
        if (total > 1) { throw total; } else total = 1;
    } catch (e) {
    } finally {
        debugger;
    }
    return total;
}
enum Color { Red, Green = 2, Blue }
var f = (a) => a * 2, g = x => { return x; };
`
