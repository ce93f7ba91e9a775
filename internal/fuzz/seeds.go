package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB: ограничение для тестового корпуса
	maxFuzzInput = 1 << 16
)

var builtinSeeds = []string{
	"",
	"var a = 1, b = 2;\n",
	"function foo() {\n  return 1;\n}\n",
	"function foo()\n{\n  return 1;\n}\n",
	"module A.B {\n  export var x = 1;\n}\n",
	"declare module M { function f(): void; }\n",
	"class C extends D {\n  private x: number = 1;\n  constructor(a?, ...r) { super(a); }\n  get v() { return this.x; }\n  static m() {}\n}\n",
	"for (var i = 0; i < n; i++) {\n  f(i);\n}\nfor (k in o) g(k);\n",
	"switch (x)\n{\n  case 1:\n    a();\n    break;\n  default:\n    b();\n}\n",
	"do {\n  x--;\n} while (x > 0);\n",
	"try { a(); } catch (e) { b(); } finally { c(); }\n",
	"label: while (true) { if (x) break label; else continue; }\n",
	"var f = (a: number, b = 2): number => a + b;\nvar g = x => x * 2;\n",
	"enum Color { Red = 1, Green, }\ninterface I { m(): void; p: string[]; }\n",
	"import fs = require(\"fs\");\nexport = fs;\n",
	"var o = { a: 1, b: function () { return 2; } }, arr = [1, , 3];\n",
	"with (o) { x = typeof y; }\ndebugger;\n",
	// recovery
	"function ( { var = ;",
	"} } ) ]",
	"class { get set static }",
	"for (var a, b in c;;) {}",
	"/* open comment",
	"'open string\nx;",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range builtinSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.ts файлы
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || !strings.HasSuffix(path, ".ts") {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}

// truncateForLog truncates input for logging purposes
func truncateForLog(input []byte, maxLen int) []byte {
	if len(input) <= maxLen {
		return input
	}
	return append(append([]byte(nil), input[:maxLen]...), "..."...)
}
