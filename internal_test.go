package boxtable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitWindowsRuneWiderThanColumn(t *testing.T) {
	t.Parallel()
	// Each window holds one double-width rune and overflows the column.
	assert.Equal(t, []string{"你", "好"}, splitWindows("你好", 1))
	assert.Equal(t, []string{"名", "x"}, splitWindows("名x", 1))
}

func TestSplitWindowsEmpty(t *testing.T) {
	t.Parallel()
	assert.Nil(t, splitWindows("", 4))
}

func TestSplitWindowsNoWidth(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"hi"}, splitWindows("hi", 0))
}

func TestSplitWindowsFits(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"hi"}, splitWindows("hi", 5))
	assert.Equal(t, []string{"hello"}, splitWindows("hello", 5))
}

func TestSplitWindowsBasic(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"Hel", "lo"}, splitWindows("Hello", 3))
	assert.Equal(t, []string{"名前", "です"}, splitWindows("名前です", 5))
}

func TestZeroPad(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "07", zeroPad("7", 2))
	assert.Equal(t, "42", zeroPad("42", 2))
	assert.Equal(t, "123", zeroPad("123", 2))
}

func TestAlignCell(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		text  string
		width int
		align Alignment
		want  string
	}{
		"left":        {text: "ab", width: 5, align: AlignLeft, want: "ab   "},
		"right":       {text: "ab", width: 5, align: AlignRight, want: "   ab"},
		"center even": {text: "ab", width: 6, align: AlignCenter, want: "  ab  "},
		"center odd":  {text: "ab", width: 5, align: AlignCenter, want: " ab  "},
		"full":        {text: "abcde", width: 5, align: AlignRight, want: "abcde"},
		"wide":        {text: "名", width: 4, align: AlignRight, want: "  名"},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, alignCell(tt.text, tt.width, tt.align))
		})
	}
}

func TestLookupPatternIsTotal(t *testing.T) {
	t.Parallel()
	for g := HeadTop; g < numGroups; g++ {
		for r := RoleLineNumber; r <= RoleLast; r++ {
			p := lookupPattern(g, r)
			if r == RoleLineNumber {
				assert.Equal(t, noGlyph, p.leftBorder, "%s %s", g, r)
				continue
			}
			assert.NotEqual(t, noGlyph, p.leftMargin, "%s %s", g, r)
		}
	}
	assert.Panics(t, func() { lookupPattern(numGroups, RoleFirst) })
}
