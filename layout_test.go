package boxtable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/boxtable"
)

func TestLayoutBuild(t *testing.T) {
	t.Parallel()
	l := boxtable.NewLayout().
		Append(10, "First Column", boxtable.AlignLeft).
		AppendAuto("Left Column ").
		AppendAuto(" Middle Column ").
		AppendAuto("    Right Column").
		Seal(false)

	want := []boxtable.Column{
		{Width: 10, Title: "First Column", Align: boxtable.AlignLeft, Role: boxtable.RoleFirst},
		{Width: 12, Title: "Left Column", Align: boxtable.AlignLeft, Role: boxtable.RoleMiddle},
		{Width: 15, Title: "Middle Column", Align: boxtable.AlignCenter, Role: boxtable.RoleMiddle},
		{Width: 16, Title: "Right Column", Align: boxtable.AlignRight, Role: boxtable.RoleLast},
	}
	assert.Equal(t, want, l.Columns())
	assert.False(t, l.HasLineNumber())
	assert.True(t, l.Sealed())
}

func TestLayoutSealWithLineNumber(t *testing.T) {
	t.Parallel()
	l := boxtable.NewLayout().AppendAuto("Name  ").AppendAuto(" Age").Seal(true)

	require.Equal(t, 3, l.Len())
	assert.True(t, l.HasLineNumber())
	assert.Equal(t, boxtable.Column{Width: 2, Title: "No", Align: boxtable.AlignLeft, Role: boxtable.RoleLineNumber}, l.Column(0))
	assert.Equal(t, boxtable.RoleFirst, l.Column(1).Role)
	assert.Equal(t, boxtable.RoleLast, l.Column(2).Role)
	assert.Equal(t, []string{"No", "Name", "Age"}, l.Titles())
}

func TestLayoutSingleColumnIsLast(t *testing.T) {
	t.Parallel()
	l := boxtable.NewLayout().Append(5, "Only", boxtable.AlignLeft).Seal(false)
	assert.Equal(t, boxtable.RoleLast, l.Column(0).Role)
}

func TestAppendAutoAlignment(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		spec      string
		wantWidth int
		wantTitle string
		wantAlign boxtable.Alignment
	}{
		"trailing space":   {spec: "Name  ", wantWidth: 6, wantTitle: "Name", wantAlign: boxtable.AlignLeft},
		"leading space":    {spec: "  Age", wantWidth: 5, wantTitle: "Age", wantAlign: boxtable.AlignRight},
		"both sides":       {spec: " Mid ", wantWidth: 5, wantTitle: "Mid", wantAlign: boxtable.AlignCenter},
		"no padding":       {spec: "Tight", wantWidth: 5, wantTitle: "Tight", wantAlign: boxtable.AlignLeft},
		"all whitespace":   {spec: "    ", wantWidth: 4, wantTitle: "", wantAlign: boxtable.AlignLeft},
		"inner space kept": {spec: "Full Name ", wantWidth: 10, wantTitle: "Full Name", wantAlign: boxtable.AlignLeft},
		"wide characters":  {spec: "名前  ", wantWidth: 6, wantTitle: "名前", wantAlign: boxtable.AlignLeft},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			l := boxtable.NewLayout().AppendAuto(tt.spec).Seal(false)
			c := l.Column(0)
			assert.Equal(t, tt.wantWidth, c.Width)
			assert.Equal(t, tt.wantTitle, c.Title)
			assert.Equal(t, tt.wantAlign, c.Align)
		})
	}
}

func TestLayoutColumnsIsCopy(t *testing.T) {
	t.Parallel()
	l := boxtable.NewLayout().AppendAuto("A  ").Seal(false)
	cols := l.Columns()
	cols[0].Width = 99
	assert.Equal(t, 3, l.Column(0).Width)
}

func TestLayoutContractViolations(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		fn      func()
		wantErr error
	}{
		"seal empty": {
			fn:      func() { boxtable.NewLayout().Seal(false) },
			wantErr: boxtable.ErrEmptyLayout,
		},
		"zero width": {
			fn:      func() { boxtable.NewLayout().Append(0, "x", boxtable.AlignLeft) },
			wantErr: boxtable.ErrInvalidWidth,
		},
		"empty auto spec": {
			fn:      func() { boxtable.NewLayout().AppendAuto("") },
			wantErr: boxtable.ErrInvalidWidth,
		},
		"append after seal": {
			fn:      func() { boxtable.NewLayout().AppendAuto("a ").Seal(false).AppendAuto("b ") },
			wantErr: boxtable.ErrSealed,
		},
		"seal twice": {
			fn:      func() { boxtable.NewLayout().AppendAuto("a ").Seal(false).Seal(true) },
			wantErr: boxtable.ErrSealed,
		},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assertPanicsWith(t, tt.wantErr, tt.fn)
		})
	}
}

func TestParseAlignment(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input   string
		want    boxtable.Alignment
		wantErr require.ErrorAssertionFunc
	}{
		"empty":   {input: "", want: boxtable.AlignLeft, wantErr: require.NoError},
		"left":    {input: "left", want: boxtable.AlignLeft, wantErr: require.NoError},
		"center":  {input: "Center", want: boxtable.AlignCenter, wantErr: require.NoError},
		"right":   {input: " right ", want: boxtable.AlignRight, wantErr: require.NoError},
		"unknown": {input: "justify", want: boxtable.AlignLeft, wantErr: require.Error},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := boxtable.ParseAlignment(tt.input)
			tt.wantErr(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// assertPanicsWith checks that fn panics with an error wrapping want.
func assertPanicsWith(t *testing.T, want error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		assert.ErrorIs(t, err, want)
	}()
	fn()
}
