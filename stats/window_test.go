package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindow_OverwritesOldestWhenFull(t *testing.T) {
	w := NewWindow[int](3)
	w.Push(1)
	w.Push(2)
	w.Push(3)
	assert.Equal(t, []int{1, 2, 3}, w.Items())

	w.Push(4)
	assert.Equal(t, 3, w.Len())
	assert.Equal(t, []int{2, 3, 4}, w.Items())

	w.Push(5)
	w.Push(6)
	assert.Equal(t, []int{4, 5, 6}, w.Items())
}

func TestWindow_LenTracksMinOfPushesAndCapacity(t *testing.T) {
	w := NewWindow[int](5)
	for i := 0; i < 3; i++ {
		w.Push(i)
	}
	assert.Equal(t, 3, w.Len())
	for i := 0; i < 10; i++ {
		w.Push(i)
	}
	assert.Equal(t, 5, w.Len())
}
