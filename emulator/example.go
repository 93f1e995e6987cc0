package emulator

import (
	"github.com/ezrec/sp16/cpu"
)

// FIBONACCI_HALT is the accumulator value the Fibonacci example stops on.
const FIBONACCI_HALT = 28657

// Fibonacci returns the bundled example program. It leaves successive
// Fibonacci numbers in A, pushing each one below the two scratch values
// at the top of memory, and loops forever; stop it with
// StopOnValue(FIBONACCI_HALT).
func Fibonacci() (prog *cpu.Program) {
	prog = &cpu.Program{}

	prog.Append(0,
		// 0 + 0 + 1 -> A
		uint16(cpu.MakeCode(cpu.Op{CarryIn: true, IncIp: true})),
		// 0 + A -> mem[SP-1], SP unchanged
		uint16(cpu.MakeCode(cpu.Op{Right: cpu.RIGHT_A, Target: cpu.TARGET_MEMORY, DecSp: true, IncSp: true, IncIp: true})),
		// mem[SP] + A -> A, SP-1
		uint16(cpu.MakeCode(cpu.Op{Left: cpu.LEFT_MEMORY, Right: cpu.RIGHT_A, DecSp: true, Cond: cpu.COND_CARRY, IncIp: true})),
		// 0 + A -> mem[SP-1], SP unchanged
		uint16(cpu.MakeCode(cpu.Op{Right: cpu.RIGHT_A, Target: cpu.TARGET_MEMORY, DecSp: true, IncSp: true, IncIp: true})),
		// mem[SP] + A -> A, SP-1
		uint16(cpu.MakeCode(cpu.Op{Left: cpu.LEFT_MEMORY, Right: cpu.RIGHT_A, DecSp: true, Cond: cpu.COND_CARRY, IncIp: true})),
		// 0 -> IP, then IP+1: back to word 1
		uint16(cpu.MakeCode(cpu.Op{Target: cpu.TARGET_IP, IncIp: true})),
		// Never reached.
		0,
	)

	prog.Append(0xfffe, 1, 1)

	return
}
