package diag

// Code identifies a diagnostic's kind, independent of its message text.
// Numbering is phase-banded: lexical errors in the 1000s, syntax
// errors in the 2000s.
type Code uint16

const (
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexUnterminatedChar   Code = 1003
	LexBadNumberSuffix    Code = 1004

	SynUnexpectedToken Code = 2001
	SynUnexpectedEOF   Code = 2002
)

var codeNames = map[Code]string{
	LexUnknownChar:        "LexUnknownChar",
	LexUnterminatedString: "LexUnterminatedString",
	LexUnterminatedChar:   "LexUnterminatedChar",
	LexBadNumberSuffix:    "LexBadNumberSuffix",
	SynUnexpectedToken:    "SynUnexpectedToken",
	SynUnexpectedEOF:      "SynUnexpectedEOF",
}

func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "Code(?)"
}
