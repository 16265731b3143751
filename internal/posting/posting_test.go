package posting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddAppendsPositionAndUpdatesFrequency(t *testing.T) {
	var p Posting
	p.Add(0)
	p.Add(4)
	p.Add(9)

	assert.Equal(t, []int{0, 4, 9}, p.Positions)
	assert.Equal(t, 3, p.Frequency)
}

func TestCloneIsIndependentOfOriginal(t *testing.T) {
	p := Posting{Frequency: 2, Positions: []int{1, 2}}
	cp := p.Clone()
	cp.Positions[0] = 99

	assert.Equal(t, 1, p.Positions[0])
	assert.Equal(t, 99, cp.Positions[0])
}

func TestCloneEmptyPostingHasNilPositions(t *testing.T) {
	cp := Posting{}.Clone()
	assert.Nil(t, cp.Positions)
}
