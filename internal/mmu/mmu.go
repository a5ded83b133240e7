// Package mmu provides a flat memory device for the CPU core. It
// backs the whole 64kB address space with RAM, so a program can be
// loaded anywhere and executed without a cartridge or peripherals.
package mmu

import (
	"fmt"
)

// IOBus is the interface the MMU exposes to the CPU and to anything
// that prepares memory before execution.
type IOBus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// MMU is a 64kB flat memory.
type MMU struct {
	raw [0x10000]uint8
}

var _ IOBus = (*MMU)(nil)

// NewMMU returns an MMU with data copied to address 0.
func NewMMU(data []byte) *MMU {
	m := &MMU{}
	// images larger than the address space are truncated
	copy(m.raw[:], data)
	return m
}

// Read returns the byte at address. Every address is readable.
func (m *MMU) Read(address uint16) uint8 {
	return m.raw[address]
}

// Write stores value at address.
func (m *MMU) Write(address uint16, value uint8) {
	m.raw[address] = value
}

// Load copies data into memory starting at offset.
func (m *MMU) Load(offset uint16, data []byte) error {
	if int(offset)+len(data) > len(m.raw) {
		return fmt.Errorf("mmu: %d bytes at 0x%04X overflow the address space", len(data), offset)
	}
	copy(m.raw[offset:], data)
	return nil
}
