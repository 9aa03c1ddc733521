package diag

import "qak/internal/source"

// Reporter is the narrow interface the tokenizer and parser use to
// raise diagnostics, so neither package needs to know about Bag
// directly, only that something is listening.
type Reporter interface {
	Report(code Code, sev Severity, span source.Span, msg string, notes []Note)
}

// BagReporter adapts a *Bag to the Reporter interface.
type BagReporter struct {
	Bag *Bag
}

// Report implements Reporter.
func (r BagReporter) Report(code Code, sev Severity, span source.Span, msg string, notes []Note) {
	if r.Bag == nil {
		return
	}
	r.Bag.Report(code, sev, span, msg, notes)
}
