package buffer

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

const (
	thumbsUp = "\U0001F44D\U0001F3FD" // thumbs up + skin tone modifier
	eAcute   = "e\u0301"             // e + combining acute accent
	flag     = "\U0001F1E9\U0001F1EA" // regional indicator pair
)

func TestLineLenCountsGraphemes(t *testing.T) {
	require.Equal(t, 0, NewLine("").Len())
	require.Equal(t, 3, NewLine("abc").Len())
	require.Equal(t, 3, NewLine("a"+thumbsUp+"b").Len())
	require.Equal(t, 2, NewLine(eAcute+flag).Len())
	require.Equal(t, 3, NewLine("a\tb").Len())
}

func TestLineInsert(t *testing.T) {
	l := NewLine("a" + thumbsUp + "b")

	l.Insert(1, 'x')
	require.Equal(t, "ax"+thumbsUp+"b", l.String())
	require.Equal(t, 4, l.Len())

	l.Insert(3, 'y')
	require.Equal(t, "ax"+thumbsUp+"yb", l.String())

	l.Insert(0, '>')
	require.Equal(t, ">ax"+thumbsUp+"yb", l.String())

	// past the end appends
	l.Insert(100, '<')
	require.Equal(t, ">ax"+thumbsUp+"yb<", l.String())
	require.Equal(t, 7, l.Len())
}

func TestLineDeleteRemovesWholeGrapheme(t *testing.T) {
	l := NewLine(eAcute + thumbsUp + flag)

	l.Delete(1)
	require.Equal(t, eAcute+flag, l.String())
	require.Equal(t, 2, l.Len())

	l.Delete(0)
	require.Equal(t, flag, l.String())

	// past the end is harmless
	l.Delete(1)
	l.Delete(-1)
	require.Equal(t, flag, l.String())

	l.Delete(0)
	require.Equal(t, "", l.String())
	require.Equal(t, 0, l.Len())
}

func TestLineAppend(t *testing.T) {
	l := NewLine("ab")
	other := NewLine(thumbsUp + "c")
	l.Append(other)
	require.Equal(t, "ab"+thumbsUp+"c", l.String())
	require.Equal(t, 4, l.Len())
	require.Equal(t, thumbsUp+"c", other.String())
}

func TestLineSplit(t *testing.T) {
	l := NewLine("ab" + thumbsUp + "cd")

	tail := l.Split(3)
	require.Equal(t, "ab"+thumbsUp, l.String())
	require.Equal(t, 3, l.Len())
	require.Equal(t, "cd", tail.String())
	require.Equal(t, 2, tail.Len())

	tail = l.Split(10)
	require.Equal(t, "ab"+thumbsUp, l.String())
	require.Equal(t, "", tail.String())

	tail = l.Split(0)
	require.Equal(t, "", l.String())
	require.Equal(t, "ab"+thumbsUp, tail.String())
}

func TestLineRender(t *testing.T) {
	l := NewLine("a\tb" + thumbsUp)

	cases := []struct {
		start, end int
		want       string
	}{
		{0, 4, "a    b" + thumbsUp},
		{0, 100, "a    b" + thumbsUp},
		{1, 2, "    "},
		{3, 4, thumbsUp},
		{2, 2, ""},
		{3, 1, ""},
		{7, 9, ""},
		{-3, 1, "a"},
		{0, -1, ""},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, l.Render(tc.start, tc.end), "Render(%d, %d)", tc.start, tc.end)
	}

	// storage keeps the tab
	require.Equal(t, "a\tb"+thumbsUp, l.String())
}

func TestLineRenderFullIsText(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		text := rapid.StringMatching(`[a-z ]{0,20}`).Draw(t, "text")
		l := NewLine(text)
		require.Equal(t, text, l.Render(0, l.Len()))

		a := rapid.IntRange(-2, 25).Draw(t, "a")
		require.Empty(t, l.Render(a, a))
	})
}

func TestLineInsertCombiningMarkMerges(t *testing.T) {
	l := NewLine("ea")

	// the mark joins "e" so the length does not grow
	l.Insert(1, '\u0301')
	require.Equal(t, eAcute+"a", l.String())
	require.Equal(t, 2, l.Len())

	// deleting at the same column removes "a", not the mark
	l.Delete(1)
	require.Equal(t, eAcute, l.String())
	require.Equal(t, 1, l.Len())

	l.Delete(0)
	require.Equal(t, "", l.String())
}

func TestLineInsertDeleteInverse(t *testing.T) {
	alphabet := []string{"a", "b", " ", eAcute, thumbsUp, flag, "z"}
	rapid.Check(t, func(t *rapid.T) {
		parts := rapid.SliceOfN(rapid.SampledFrom(alphabet), 0, 12).Draw(t, "parts")
		text := ""
		for _, p := range parts {
			text += p
		}
		l := NewLine(text)
		before := l.Len()

		c := rapid.IntRange(0, before).Draw(t, "column")
		x := rapid.RuneFrom([]rune("xyz0123456789#")).Draw(t, "char")

		l.Insert(c, x)
		require.Equal(t, before+1, l.Len())
		l.Delete(c)
		require.Equal(t, text, l.String())
		require.Equal(t, before, l.Len())
	})
}
