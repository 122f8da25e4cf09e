package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressBar(t *testing.T) {
	tests := []struct {
		name              string
		done, total, w    int
		wantFill, wantPct string
	}{
		{name: "empty list", done: 0, total: 0, w: 10, wantFill: "", wantPct: "  0%"},
		{name: "half", done: 1, total: 2, w: 10, wantFill: "█████", wantPct: " 50%"},
		{name: "all", done: 3, total: 3, w: 10, wantFill: "██████████", wantPct: "100%"},
		{name: "min width", done: 1, total: 1, w: 1, wantFill: "█████", wantPct: "100%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProgressBar(tt.done, tt.total, tt.w)
			assert.True(t, strings.HasPrefix(got, tt.wantFill), got)
			assert.True(t, strings.HasSuffix(got, tt.wantPct), got)
			width := tt.w
			if width < 5 {
				width = 5
			}
			bar := strings.TrimSuffix(got, " "+tt.wantPct)
			assert.Equal(t, width, len([]rune(bar)))
		})
	}
}

func TestSetTheme(t *testing.T) {
	t.Cleanup(func() { SetTheme("classic") })

	SetTheme("NEON")
	assert.Equal(t, "neon", Current().Name)
	assert.Equal(t, "◼", Current().BoxChecked)

	SetTheme("mono")
	assert.Equal(t, "[x]", Current().BoxChecked)
	assert.Equal(t, "[ ]", Current().BoxUnchecked)

	SetTheme("whatever")
	assert.Equal(t, "classic", Current().Name)
}

func TestPanelContainsLines(t *testing.T) {
	t.Cleanup(func() { SetTheme("classic") })
	SetTheme("mono")

	out := Panel([]string{"first", "second line"})
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 4)
	assert.Contains(t, lines[1], "first")
	assert.Contains(t, lines[2], "second line")
	assert.True(t, strings.HasPrefix(lines[0], "┌"), lines[0])
}

func TestOKAndFail(t *testing.T) {
	t.Cleanup(func() { SetTheme("classic") })
	SetTheme("mono")

	var buf bytes.Buffer
	OK(&buf, "added")
	Fail(&buf, "broken")
	Hint(&buf, "run ls")
	assert.Equal(t, "x added\n✖ broken\nHint: run ls\n", buf.String())
}
