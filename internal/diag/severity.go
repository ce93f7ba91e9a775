package diag

import (
	"fmt"
	"strings"
)

// Severity orders diagnostics. Breakpoint notes on declaration files and
// timing reports are Info; anything that loses source from the tree is Error.
type Severity uint8

const (
	SevInfo Severity = iota
	SevWarning
	SevError
)

var severityLabels = [...]string{
	SevInfo:    "info",
	SevWarning: "warning",
	SevError:   "error",
}

// Label is the lower-case name used by short output and stopline.toml.
func (s Severity) Label() string {
	if int(s) < len(severityLabels) {
		return severityLabels[s]
	}
	return "unknown"
}

// String is the upper-case tag of the pretty printer and JSON.
func (s Severity) String() string { return strings.ToUpper(s.Label()) }

// ParseSeverity reads a label in any case; "warn" is accepted for warning.
func ParseSeverity(s string) (Severity, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "warn" {
		return SevWarning, nil
	}
	for sev, label := range severityLabels {
		if name == label {
			return Severity(sev), nil
		}
	}
	return SevInfo, fmt.Errorf("unknown severity %q (expected info|warning|error)", s)
}
