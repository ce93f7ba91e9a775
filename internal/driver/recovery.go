package driver

import (
	"stopline/internal/diag"
	"stopline/internal/source"
)

type recoveryKey struct {
	code diag.Code
	file source.FileID
	at   uint32
}

// recoveryReporter keeps the first diagnostic of a code at a given offset.
// After a failed production the parser resynchronises at the same token and
// re-reports there, often with a wider span or a different expected token.
type recoveryReporter struct {
	next diag.Reporter
	seen map[recoveryKey]struct{}
}

func newRecoveryReporter(next diag.Reporter) *recoveryReporter {
	return &recoveryReporter{next: next, seen: make(map[recoveryKey]struct{})}
}

func (r *recoveryReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	key := recoveryKey{code: code, file: primary.File, at: primary.Start}
	if _, ok := r.seen[key]; ok {
		return
	}
	r.seen[key] = struct{}{}
	r.next.Report(code, sev, primary, msg, notes)
}
