// Package interp implements the twoq instruction interpreter.
//
// A twoq program is a list of lines, each a mnemonic followed by space
// separated operands. The machine keeps two integer queues (left and
// right), a string pool and an alias table, and executes one line per
// Tick. Operands in read positions are resolved through sigils that pop or
// peek the queues, the string pool or the alias table; results are written
// through push targets.
//
// Every error is fatal: Tick returns a *Fault naming the failing line, and
// the machine is not expected to continue.
package interp
