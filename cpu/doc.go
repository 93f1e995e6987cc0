// Package cpu implements the execution engine of the SP16 stack processor.
//
// The CPU consists of an instruction pointer (IP), a stack pointer (SP), an
// accumulator (A), a 16-bit ALU with add-with-flags and NAND modes, and 64K
// words of memory. Every instruction is a single 16-bit word whose fields
// select the ALU operands, the write-back target, and the stack and
// instruction pointer adjustments.
//
// There is no branch instruction. Conditional control transfer is done by
// adjusting SP on the carry, zero or overflow flag, and then addressing
// memory relative to SP.
package cpu
