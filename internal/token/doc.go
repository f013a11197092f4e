// Package token defines the token value type and the fixed lexical tables
// (reserved words, operators, delimiters) shared by every analysis stage.
// The tables are immutable static data: loaded once, read-only for the
// process lifetime.
package token
