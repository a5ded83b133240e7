package types

import (
	"errors"
	"os"

	"github.com/cespare/xxhash"
)

// ErrStateShort is reported by State.Err when a read ran past the end
// of the raw state data.
var ErrStateShort = errors.New("state: unexpected end of data")

// State represents a snapshot of the CPU. This is used to
// save and load states between runs.
type State struct {
	raw          []byte // raw state data (for serialization)
	readPosition int    // current read position
	short        bool   // a read ran past the end of raw
}

// Stater is an interface that allows an object to be saved
// and loaded from a state.
type Stater interface {
	Load(*State) // Load the state of the object
	Save(*State) // Save the state of the object
}

// NewState creates a new state.
func NewState() *State {
	return &State{
		raw: make([]byte, 0),
	}
}

// StateFromBytes creates a new state from the given bytes.
func StateFromBytes(raw []byte) *State {
	return &State{
		raw: raw,
	}
}

func (s *State) Write8(value uint8) {
	s.raw = append(s.raw, value)
}

func (s *State) Write16(value uint16) {
	s.raw = append(s.raw, byte(value), byte(value>>8))
}

// Read8 reads the next byte, or 0 if the state is exhausted.
func (s *State) Read8() uint8 {
	if s.readPosition >= len(s.raw) {
		s.short = true
		return 0
	}
	value := s.raw[s.readPosition]
	s.readPosition++
	return value
}

// Read16 reads the next little-endian word.
func (s *State) Read16() uint16 {
	return uint16(s.Read8()) | uint16(s.Read8())<<8
}

// Err returns ErrStateShort if any read ran out of data.
func (s *State) Err() error {
	if s.short {
		return ErrStateShort
	}
	return nil
}

func (s *State) SaveToFile(filename string) error {
	return os.WriteFile(filename, s.raw, 0644)
}

func (s *State) Bytes() []byte {
	return s.raw
}

// Hash returns a digest of the raw state, used to compare two runs
// without diffing every register.
func (s *State) Hash() uint64 {
	return xxhash.Sum64(s.raw)
}
