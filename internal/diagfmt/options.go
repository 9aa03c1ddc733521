package diagfmt

// PrettyOpts configures the caret pretty-printer.
type PrettyOpts struct {
	// Color enables ANSI colorization of severities and carets.
	Color bool
	// Context is how many lines of source to show around the primary
	// line on each side. 0 means "just the primary line".
	Context uint8
}

// Format selects a dump encoding for the tokenize/parse debug
// subcommands.
type Format uint8

const (
	FormatPretty Format = iota
	FormatJSON
	FormatMsgpack
)

// ParseFormat maps a CLI --format flag value to a Format, defaulting to
// FormatPretty for an unrecognized or empty string.
func ParseFormat(s string) Format {
	switch s {
	case "json":
		return FormatJSON
	case "msgpack":
		return FormatMsgpack
	default:
		return FormatPretty
	}
}
