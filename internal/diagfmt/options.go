package diagfmt

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color   bool
	Context bool // печатать строку исходника с кареткой
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	Max int // обрезка вывода, не Bag
}
