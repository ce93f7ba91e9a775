// Package fuzztests houses Go fuzz harnesses for the stopline pipeline
// (source -> lexer -> parser -> breakpoint resolver). They guard against panics,
// hangs and broken tree invariants on arbitrary input.
//
// Назначение: загрузить байты в FileSet и прогнать их через лексер, парсер и
// резолвер, проверяя инварианты дерева и спанов.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
package fuzztests
