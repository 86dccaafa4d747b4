package advanced

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequenceSource(t *testing.T) {
	src := NewSequenceSource(0.1, 0.2)
	assert.Equal(t, 0.1, src.Float64())
	assert.Equal(t, 0.2, src.Float64())
	assert.Equal(t, 2, src.Consumed())
	assert.Panics(t, func() { src.Float64() })
}

func TestCellStreams(t *testing.T) {
	streams := CellStreams(7)

	// Same cell, same stream
	a, b := streams(3), streams(3)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}

	// Neighbouring cells and seeds diverge
	assert.NotEqual(t, streams(3).Float64(), streams(4).Float64())
	assert.NotEqual(t, streams(3).Float64(), CellStreams(8)(3).Float64())

	for i := 0; i < 1000; i++ {
		v := streams(i).Float64()
		assert.True(t, v >= 0 && v < 1, "variate %v out of range", v)
	}
}
