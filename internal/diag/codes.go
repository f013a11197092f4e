package diag

import (
	"fmt"
)

// Code identifies a diagnostic kind. The thousands digit fixes the stage
// that conceptually owns the code (lexical / structural / semantic / I/O),
// which is also how diagnostics are grouped in the analysis result.
type Code uint16

const (
	// UnknownCode - на первое время
	UnknownCode Code = 0

	// Лексические
	LexUnknownChar         Code = 1001
	LexUnterminatedString  Code = 1002
	LexBadNumber           Code = 1003
	LexBadIndent           Code = 1004
	LexBadIdent            Code = 1005
	LexInternal            Code = 1099

	// Структурные
	SynExpectIdentifier  Code = 2001
	SynExpectLParen      Code = 2002
	SynExpectRParen      Code = 2003
	SynExpectColon       Code = 2004
	SynExpectIn          Code = 2005
	SynExpectImport      Code = 2006
	SynExpectComma       Code = 2007
	SynBadParameter      Code = 2008
	SynExpectValue       Code = 2009
	SynExpectExpression  Code = 2010
	SynExpectName        Code = 2011
	SynClassNameStyle    Code = 2012
	SynUnclosedCallParen Code = 2013
	SynInternal          Code = 2099

	// Семантические
	SemaUndefinedVariable Code = 3001
	SemaUndefinedFunction Code = 3002

	// Ошибки I/O
	IOLoadFileError Code = 4001
)

// Stage is the diagnostic category a code belongs to.
type Stage uint8

const (
	StageUnknown Stage = iota
	StageLexical
	StageStructural
	StageSemantic
	StageIO
)

func (s Stage) String() string {
	switch s {
	case StageLexical:
		return "LEXICAL"
	case StageStructural:
		return "STRUCTURAL"
	case StageSemantic:
		return "SEMANTIC"
	case StageIO:
		return "IO"
	}
	return "UNKNOWN"
}

// Stage returns the category a code belongs to, derived from its range.
func (c Code) Stage() Stage {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return StageLexical
	case ic >= 2000 && ic < 3000:
		return StageStructural
	case ic >= 3000 && ic < 4000:
		return StageSemantic
	case ic >= 4000 && ic < 5000:
		return StageIO
	}
	return StageUnknown
}

var codeDescription = map[Code]string{
	UnknownCode:           "Unknown error",
	LexUnknownChar:        "Unknown character",
	LexUnterminatedString: "Unterminated string",
	LexBadNumber:          "Malformed number",
	LexBadIndent:          "Bad indentation width",
	LexBadIdent:           "Malformed identifier",
	LexInternal:           "Internal scanner fault",
	SynExpectIdentifier:   "Expect identifier",
	SynExpectLParen:       "Expect opening parenthesis",
	SynExpectRParen:       "Expect closing parenthesis",
	SynExpectColon:        "Expect colon",
	SynExpectIn:           "Missing 'in' in for loop",
	SynExpectImport:       "Missing 'import' in from-import",
	SynExpectComma:        "Expect comma",
	SynBadParameter:       "Malformed parameter",
	SynExpectValue:        "Missing value",
	SynExpectExpression:   "Expect expression",
	SynExpectName:         "Expect name",
	SynClassNameStyle:     "Class name style",
	SynUnclosedCallParen:  "Unclosed parenthesis in call",
	SynInternal:           "Critical syntax error",
	SemaUndefinedVariable: "Variable used without definition",
	SemaUndefinedFunction: "Function called without definition",
	IOLoadFileError:       "I/O load file error",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
