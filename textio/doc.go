// Package textio reads and writes square integer matrices in the plain
// text format shared by the benchmark programs: decimal integers separated
// by any whitespace, row-major, N² values.
//
// Writers emit every value followed by a single space and no newline, so
// outputs of the different programs and variants can be compared byte for
// byte (cmp A B).
//
// Readers consume exactly N² tokens and ignore anything after them.
package textio
