package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewItemIsNotDone(t *testing.T) {
	for _, title := range []string{"", "Buy milk", "  spaced  ", "ünïcode"} {
		it := NewItem(title)
		assert.False(t, it.IsDone(), "title %q", title)
		assert.Equal(t, title, it.Title())
	}
}

func TestItemTransitions(t *testing.T) {
	tests := []struct {
		name  string
		start bool
	}{
		{name: "from undone", start: false},
		{name: "from done", start: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := NewItem("Clean room")
			if tt.start {
				it.MarkDone()
			}

			it.MarkDone()
			it.MarkDone()
			assert.True(t, it.IsDone())

			it.MarkUndone()
			it.MarkUndone()
			assert.False(t, it.IsDone())
		})
	}
}

func TestItemToggle(t *testing.T) {
	it := NewItem("Go shopping")
	it.Toggle()
	assert.True(t, it.IsDone())
	it.Toggle()
	assert.False(t, it.IsDone())
}

func TestItemString(t *testing.T) {
	it := NewItem("Feed the cats")
	assert.Equal(t, "[ ] Feed the cats", it.String())
	it.MarkDone()
	assert.Equal(t, "[X] Feed the cats", it.String())
}
