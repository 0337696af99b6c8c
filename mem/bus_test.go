package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBasicRamLoad(t *testing.T) {
	ram := NewBasicRam()
	ram.Load([]byte{0x02, 0x04, 0x06}, 0x8000)
	assert.Equal(t, byte(0x02), ram.Read(0x8000))
	assert.Equal(t, byte(0x04), ram.Read(0x8001))
	assert.Equal(t, byte(0x06), ram.Read(0x8002))
}

func TestPeripheralMemoryFromBinary(t *testing.T) {
	m := NewPeripheralMemoryFromBinary([]byte{2, 4, 6}, 0x8000)
	assert.Equal(t, byte(2), m.Read(0x8000))
	assert.Equal(t, byte(4), m.Read(0x8001))
	assert.Equal(t, byte(6), m.Read(0x8002))
}

func TestPeripheralMemoryRNGVaries(t *testing.T) {
	m := NewPeripheralMemory()
	seen := map[byte]bool{}
	for i := 0; i < 64; i++ {
		seen[m.Read(AddrRNG)] = true
	}
	assert.Greater(t, len(seen), 1, "AddrRNG should not return a constant byte")
}

func TestPeripheralMemoryIRQAck(t *testing.T) {
	m := NewPeripheralMemory()
	assert.True(t, m.IsIRQHandled())

	m.SetIRQAck()
	assert.False(t, m.IsIRQHandled())

	// Simulate the 6502 program clearing the latch once it has serviced
	// the key.
	m.Write(AddrIRQAck, 0)
	assert.True(t, m.IsIRQHandled())
}

func TestPeripheralMemoryStackWindow(t *testing.T) {
	m := NewPeripheralMemoryFromBinary([]byte{1, 2, 3, 4, 5, 6, 7}, 0x01FA)
	entries := m.StackWindow(0xFF, 5)
	assert.Equal(t, byte(1), entries[0].Value)
	assert.Equal(t, byte(0x04), entries[len(entries)-1].StackPointer)
}
