package token

// Fixed operator and delimiter tables. The scanner matches the longest
// symbol first (3, then 2, then 1 characters); operators win over
// delimiters when a symbol appears in both tables.

// MaxSymbolLen is the length of the longest operator or delimiter.
const MaxSymbolLen = 3

var operators = map[string]struct{}{
	"+": {}, "-": {}, "*": {}, "**": {}, "/": {}, "//": {}, "%": {}, "@": {},
	"<<": {}, ">>": {}, "&": {}, "|": {}, "^": {}, "~": {},
	"<": {}, ">": {}, "<=": {}, ">=": {}, "==": {}, "!=": {},
	"=": {}, "+=": {}, "-=": {}, "*=": {}, "/=": {}, "//=": {}, "%=": {}, "@=": {},
	"&=": {}, "|=": {}, "^=": {}, ">>=": {}, "<<=": {}, "**=": {},
}

var delimiters = map[string]struct{}{
	"(": {}, ")": {}, "[": {}, "]": {}, "{": {}, "}": {},
	",": {}, ":": {}, ".": {}, ";": {}, "->": {},
}

// AugmentedAssignOps are the operators that both assign and read their
// left-hand side; the definition/use checker treats them as definition
// context.
var AugmentedAssignOps = map[string]struct{}{
	"=": {}, "+=": {}, "-=": {}, "*=": {}, "/=": {}, "//=": {}, "%=": {}, "**=": {},
}

// ClassifySymbol reports the token kind of an exact operator or delimiter
// lexeme, or false if the text is neither.
func ClassifySymbol(text string) (Kind, bool) {
	if _, ok := operators[text]; ok {
		return Operator, true
	}
	if _, ok := delimiters[text]; ok {
		return Delimiter, true
	}
	return Invalid, false
}
