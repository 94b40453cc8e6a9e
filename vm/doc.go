// Package vm implements the ubf bytecode execution engine.
//
// The Vm executes a bytecode.Chunk over a tape.Tape, one instruction per
// Tick, until FIN. All input and output goes through the Input and Output
// hooks, so the engine itself never touches the terminal.
package vm
