package driver

import (
	"fortio.org/safecast"

	"stopline/internal/ast"
	"stopline/internal/diag"
	"stopline/internal/lexer"
	"stopline/internal/parser"
	"stopline/internal/source"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tree    *ast.Tree
	Bag     *diag.Bag
}

func Parse(filePath string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(filePath)
	if err != nil {
		return nil, err
	}
	return ParseLoaded(fs, fileID, maxDiagnostics)
}

// ParseLoaded runs lexer and parser over a file already present in fs.
func ParseLoaded(fs *source.FileSet, fileID source.FileID, maxDiagnostics int) (*ParseResult, error) {
	file := fs.Get(fileID)
	bag := diag.NewBag(maxDiagnostics)
	tree, err := parseInto(file, bag, maxDiagnostics)
	if err != nil {
		return nil, err
	}
	return &ParseResult{FileSet: fs, File: file, Tree: tree, Bag: bag}, nil
}

func parseInto(file *source.File, bag *diag.Bag, maxDiagnostics int) (*ast.Tree, error) {
	var maxErrors uint
	if maxDiagnostics > 0 {
		var err error
		maxErrors, err = safecast.Conv[uint](maxDiagnostics)
		if err != nil {
			return nil, err
		}
	}
	lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	res := parser.ParseFile(lx, parser.Options{
		Reporter:  newRecoveryReporter(diag.BagReporter{Bag: bag}),
		MaxErrors: maxErrors,
	})
	return res.Tree, nil
}
