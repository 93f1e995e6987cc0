package cpu

// Add is the SP16 adder. It adds left, right and the carry-in bit, and
// derives the unsigned carry-out and the signed overflow.
//
// Bit 15 is summed separately from the low 15 bits, so that the carry into
// bit 15 is observable: overflow is the carry into bit 15 XOR the carry out
// of it.
func Add(left uint16, carryIn bool, right uint16) (result uint16, carry bool, overflow bool) {
	var cin uint16
	if carryIn {
		cin = 1
	}

	// 0x7fff + 0x7fff + 1 still fits in 16 bits.
	add15 := (left & 0x7fff) + (right & 0x7fff) + cin
	c15 := (add15 >> 15) & 1

	// Full adder for bit 15: bit 0 is the sum, bit 1 the carry out.
	top := (left >> 15) + (right >> 15) + c15

	result = (add15 & 0x7fff) | ((top & 1) << 15)
	carry = (top >> 1) != 0
	overflow = carry != (c15 != 0)

	return
}

// Nand returns the bitwise NAND of left and right.
func Nand(left uint16, right uint16) uint16 {
	return ^(left & right)
}

// Alu performs the requested ALU mode. When flags is false, the carry and
// overflow are not consumed by the caller, and a plain wrapping add is used.
func Alu(mode CodeAluMode, left uint16, carryIn bool, right uint16, flags bool) (result uint16, carry bool, overflow bool) {
	switch {
	case mode == ALU_MODE_NAND:
		result = Nand(left, right)
	case !flags:
		result = left + right
		if carryIn {
			result++
		}
	default:
		result, carry, overflow = Add(left, carryIn, right)
	}

	return
}
