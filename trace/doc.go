// Package trace produces an execution log of a running machine, one line per
// instruction, in the format used by the FCEUX trace logger:
//
//	f0     c7          A:00 X:00 Y:00 S:FD nvubdIzc   $FF40: 78       SEI
//
// The fields are the frame number, the CPU cycle count, the registers, the
// status flags (upper case when set), an indent of one space for every byte
// pushed on the stack, the program counter, the instruction bytes and the
// disassembly. Operands that address memory are followed by the effective
// address and the value found there.
//
// Every value in a line is obtained with side-effect-free reads, so tracing a
// machine never changes how it runs.
//
// Compare() steps a machine against a reference log and reports the first
// line that differs.
package trace
