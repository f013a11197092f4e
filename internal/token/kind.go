package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token. The scanner never emits it into
	// a stream; it is the zero value returned alongside a failed extraction.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF
	// Ident represents an identifier token.
	Ident
	// Keyword represents a reserved word.
	Keyword
	// Number represents an integer or floating-point literal.
	Number
	// String represents a string literal, including triple-quoted ones.
	String
	// Operator represents an arithmetic, comparison, or assignment operator.
	Operator
	// Delimiter represents punctuation such as brackets, commas, and colons.
	Delimiter
	// Comment represents a '#' comment running to the end of the line.
	Comment
	// Indent represents the leading whitespace of an indented line.
	Indent
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "Invalid"
	case EOF:
		return "EOF"
	case Ident:
		return "Ident"
	case Keyword:
		return "Keyword"
	case Number:
		return "Number"
	case String:
		return "String"
	case Operator:
		return "Operator"
	case Delimiter:
		return "Delimiter"
	case Comment:
		return "Comment"
	case Indent:
		return "Indent"
	}
	return "Unknown"
}
