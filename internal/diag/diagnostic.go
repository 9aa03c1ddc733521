package diag

import "qak/internal/source"

// Note is a secondary span/message attached to a Diagnostic, used for
// "previous declaration here"-style annotations. Qak's current error
// set never attaches one.
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is a single error or warning, anchored at a primary span.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}
