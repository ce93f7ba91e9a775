// Package breakpoint decides where a debugger breakpoint lands for a caret
// position in a parsed file.
//
// Resolve locates the token under the caret and walks outwards through the
// tree until a rule for the token or one of its enclosing nodes produces a
// span, or decides that no breakpoint can be placed. The result is a
// SpanInfo in byte offsets of the tree's file.
//
// The resolver only reads the tree. Calls on one tree may run concurrently.
package breakpoint
