// Package bits provides small bit manipulation helpers shared by the
// register file and the instruction set.
package bits

import "golang.org/x/exp/constraints"

// Val returns the value of the bit at the given index.
func Val[T constraints.Unsigned](b T, i uint8) T {
	return (b >> i) & 1
}

// Reset resets the bit at the given index.
func Reset[T constraints.Unsigned](b T, i uint8) T {
	return b &^ (1 << i)
}

// Set sets the bit at the given index.
func Set[T constraints.Unsigned](b T, i uint8) T {
	return b | (1 << i)
}

// Test tests the bit at the given index.
func Test[T constraints.Unsigned](b T, i uint8) bool {
	return (b>>i)&1 != 0
}

// Join concatenates two bytes into a word, high byte first.
func Join(high, low uint8) uint16 {
	return uint16(high)<<8 | uint16(low)
}

// Split is the inverse of Join.
func Split(v uint16) (high, low uint8) {
	return uint8(v >> 8), uint8(v)
}
