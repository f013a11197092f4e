package sema

// Имена, считающиеся определёнными всегда: встроенные функции, константы
// и распространённые исключения. Таблица неизменяема, грузится один раз.
var builtins = map[string]struct{}{
	// функции
	"abs": {}, "all": {}, "any": {}, "ascii": {}, "bin": {}, "bool": {},
	"bytearray": {}, "bytes": {}, "callable": {}, "chr": {}, "classmethod": {},
	"compile": {}, "complex": {}, "delattr": {}, "dict": {}, "dir": {},
	"divmod": {}, "enumerate": {}, "eval": {}, "exec": {}, "filter": {},
	"float": {}, "format": {}, "frozenset": {}, "getattr": {}, "globals": {},
	"hasattr": {}, "hash": {}, "help": {}, "hex": {}, "id": {}, "input": {},
	"int": {}, "isinstance": {}, "issubclass": {}, "iter": {}, "len": {},
	"list": {}, "locals": {}, "map": {}, "max": {}, "memoryview": {},
	"min": {}, "next": {}, "object": {}, "oct": {}, "open": {}, "ord": {},
	"pow": {}, "print": {}, "property": {}, "range": {}, "repr": {},
	"reversed": {}, "round": {}, "set": {}, "setattr": {}, "slice": {},
	"sorted": {}, "staticmethod": {}, "str": {}, "sum": {}, "super": {},
	"tuple": {}, "type": {}, "vars": {}, "zip": {},

	// константы
	"True": {}, "False": {}, "None": {}, "NotImplemented": {}, "Ellipsis": {},

	// исключения
	"Exception": {}, "ValueError": {}, "TypeError": {}, "AttributeError": {},
	"KeyError": {}, "IndexError": {}, "NameError": {}, "SyntaxError": {},
	"RuntimeError": {},
}

// Специальные dunder-имена.
var specialNames = map[string]struct{}{
	"__name__": {}, "__main__": {}, "__file__": {}, "__doc__": {},
	"__dict__": {}, "__class__": {}, "__bases__": {}, "__module__": {},
	"__version__": {},
}

// IsBuiltin reports whether the name is pre-approved as always defined.
func IsBuiltin(name string) bool {
	_, ok := builtins[name]
	return ok
}

// IsSpecialName reports whether the name is a reserved dunder variable.
func IsSpecialName(name string) bool {
	_, ok := specialNames[name]
	return ok
}
