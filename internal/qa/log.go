// Package qa collects data-quality flags raised during an import run and
// serializes them into the durable audit report.
package qa

import (
	"os"
	"regexp"
	"strings"
)

type Kind string

const (
	KindMissingLanded Kind = "MISSING_LANDED"
	KindTotalMismatch Kind = "TOTAL_MISMATCH"
	KindPriceLtLanded Kind = "PRICE_LT_LANDED"
)

type Flag struct {
	Kind     Kind
	Sheet    string
	Supplier string
	ItemCode string
	Message  string
}

// Log is the append-only flag collection for one run. Flags are advisory:
// they never abort processing and are never deduplicated.
type Log struct {
	flags []Flag
}

func (l *Log) Add(f Flag) {
	l.flags = append(l.flags, f)
}

func (l *Log) Flags() []Flag {
	return l.flags
}

func (l *Log) Count() int {
	return len(l.flags)
}

const reportHeader = "kind,sheet,supplier,itemCode,message"

var messageSeps = regexp.MustCompile(`[\n,]+`)

// WriteReport writes the delimited report, one line per flag. Messages have
// newlines and commas collapsed to spaces so a line stays a line.
func (l *Log) WriteReport(path string) error {
	lines := make([]string, 0, len(l.flags)+1)
	lines = append(lines, reportHeader)
	for _, f := range l.flags {
		msg := messageSeps.ReplaceAllString(f.Message, " ")
		lines = append(lines, strings.Join([]string{string(f.Kind), f.Sheet, f.Supplier, f.ItemCode, msg}, ","))
	}
	return os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644)
}
