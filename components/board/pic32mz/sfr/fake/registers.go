// Package fake implements an in-memory register file.
package fake

import (
	"sync"

	"github.com/majenkotech/gpio-pic32/components/board/pic32mz/sfr"
)

// A Write is one recorded register write.
type Write struct {
	Offset sfr.Offset
	Value  uint32
}

// Registers is a register file backed by a map. Registers that were never written read as zero.
type Registers struct {
	mu     sync.Mutex
	values map[sfr.Offset]uint32
	writes []Write
}

// NewRegisters returns an empty register file.
func NewRegisters() *Registers {
	return &Registers{values: map[sfr.Offset]uint32{}}
}

// Read returns the value stored at offset.
func (r *Registers) Read(offset sfr.Offset) uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.values[offset]
}

// Write stores value at offset and records the write.
func (r *Registers) Write(offset sfr.Offset, value uint32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[offset] = value
	r.writes = append(r.writes, Write{offset, value})
}

// Set stores value at offset without recording a write, e.g. to set up hardware state.
func (r *Registers) Set(offset sfr.Offset, value uint32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[offset] = value
}

// Writes returns every write since creation or the last ResetWrites.
func (r *Registers) Writes() []Write {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Write, len(r.writes))
	copy(out, r.writes)
	return out
}

// ResetWrites forgets recorded writes.
func (r *Registers) ResetWrites() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.writes = nil
}

// Snapshot returns a copy of all non-zero registers.
func (r *Registers) Snapshot() map[sfr.Offset]uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[sfr.Offset]uint32, len(r.values))
	for offset, value := range r.values {
		if value != 0 {
			out[offset] = value
		}
	}
	return out
}
