// Command ubf compiles and runs ubf programs.
//
// The program is read from standard input, from the file named by -f, or
// generated by the Starlark script named by -s. By default the program
// reads keypresses from the terminal and writes to standard output.
//
// Usage:
//
//	ubf [-f prog.b | -s prog.star] [-i input] [-o output] [-e minus|zero|keep] [-n ticks] [-d] [-x] [-t] [-v] [-l locale]
//
// With -d the bytecode is disassembled, and with -x it is hex dumped,
// instead of being executed.
package main
