package console_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/nlogcolor/console"
)

func TestParseAttribute(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		want  console.Attribute
		err   bool
	}{
		"hex":              {input: "0x4f", want: 0x4f},
		"decimal":          {input: "10", want: 10},
		"plain color":      {input: "green", want: console.FgGreen},
		"cyan":             {input: "cyan", want: console.FgGreen | console.FgBlue},
		"intense yellow":   {input: "intense yellow", want: console.FgRed | console.FgGreen | console.FgIntensity},
		"bright alias":     {input: "BRIGHT red", want: console.FgRed | console.FgIntensity},
		"white on red":     {input: "intense white on_red", want: 0x4f},
		"intense bg":       {input: "black on_intense_blue", want: console.BgBlue | console.BgIntensity},
		"styles":           {input: "underline reverse white", want: console.Underscore | console.ReverseVideo | console.Plain},
		"empty":            {input: "  ", err: true},
		"unknown word":     {input: "purple", err: true},
		"unknown bg color": {input: "white on_purple", err: true},
	}

	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := console.ParseAttribute(tc.input)
			if tc.err {
				require.ErrorIs(t, err, console.ErrInvalidAttribute)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestAttribute_StringRoundTrip(t *testing.T) {
	for _, a := range []console.Attribute{
		console.Plain,
		console.FgGreen,
		console.FgRed | console.FgGreen | console.FgIntensity,
		0x4f,
		console.Underscore | console.FgBlue | console.BgGreen,
	} {
		parsed, err := console.ParseAttribute(a.String())
		require.NoError(t, err, a.String())
		assert.Equal(t, a, parsed, a.String())
	}
	assert.Equal(t, "intense white on_red", console.Attribute(0x4f).String())
}

func TestAttribute_WithForeground(t *testing.T) {
	orig := console.BgBlue | console.Underscore | console.FgRed
	got := orig.WithForeground(console.FgGreen)
	assert.Equal(t, console.BgBlue|console.Underscore|console.FgGreen, got)
	assert.Equal(t, console.FgGreen, got.Foreground())
	assert.Equal(t, console.FgBlue, got.Background())
}

func TestSGR(t *testing.T) {
	tests := []struct {
		name string
		attr console.Attribute
		want string
	}{
		{"plain resets", console.Plain, "\x1b[0m"},
		{"green", console.FgGreen, "\x1b[0;32m"},
		{"cyan", console.FgGreen | console.FgBlue, "\x1b[0;36m"},
		{"intense red", console.FgRed | console.FgIntensity, "\x1b[0;91m"},
		{"intense white on red", 0x4f, "\x1b[0;97;41m"},
		{"underline", console.Plain | console.Underscore, "\x1b[0;4m"},
		{"reverse blue", console.FgBlue | console.ReverseVideo, "\x1b[0;34;7m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, console.SGR(tt.attr))
		})
	}
}
