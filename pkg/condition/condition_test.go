package condition

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestClassify_NoInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text *string
	}{
		{name: "nil", text: nil},
		{name: "empty", text: strPtr("")},
		{name: "whitespace", text: strPtr("  \t\n ")},
	}

	c := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			score, trace := c.Classify(tt.text)
			assert.Equal(t, 0.5, score)
			assert.True(t, trace.NoInput)
			assert.False(t, trace.BaseMatched)
			assert.Empty(t, trace.Error)
		})
	}
}

func TestClassify_Examples(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		want     float64
		matched  bool
		wantBase float64
	}{
		{
			name:     "highest base phrase wins",
			text:     "Bilen er i topstand og nysynet",
			want:     1.0,
			matched:  true,
			wantBase: 1.0,
		},
		{
			name:     "danish letters match after transliteration",
			text:     "Pæn bil men med rust",
			want:     0.7,
			matched:  true,
			wantBase: 0.8,
		},
		{
			name:     "meget applies both modifier deltas",
			text:     "meget pæn",
			want:     0.8,
			matched:  true,
			wantBase: 0.85,
		},
		{
			name:     "clamped at zero",
			text:     "defekt motor",
			want:     0.0,
			matched:  true,
			wantBase: 0.0,
		},
		{
			name:     "clamped at one",
			text:     "nysynet, super flot",
			want:     1.0,
			matched:  true,
			wantBase: 1.0,
		},
		{
			name:     "no base match is neutral",
			text:     "Fantastisk bil",
			want:     0.5,
			matched:  false,
			wantBase: 0.5,
		},
		{
			name:     "repeated issues are not deduplicated",
			text:     "RUST!!! rust",
			want:     0.3,
			matched:  false,
			wantBase: 0.5,
		},
		{
			name:     "god stand beats god",
			text:     "God stand med buler",
			want:     0.7,
			matched:  true,
			wantBase: 0.75,
		},
	}

	c := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			score, trace := c.ClassifyString(tt.text)
			assert.InDelta(t, tt.want, score, 1e-9)
			assert.InDelta(t, tt.want, trace.FinalScore, 1e-9)
			assert.InDelta(t, tt.wantBase, trace.BaseScore, 1e-9)
			assert.Equal(t, tt.matched, trace.BaseMatched)
			assert.Equal(t, tt.text, trace.OriginalText)
			assert.False(t, trace.NoInput)
			assert.GreaterOrEqual(t, score, 0.0)
			assert.LessOrEqual(t, score, 1.0)
		})
	}
}

func TestClassify_TraceEffects(t *testing.T) {
	t.Parallel()

	_, trace := New().ClassifyString("Pæn bil men med rust")

	assert.Equal(t, "paen bil men med rust", trace.NormalizedText)
	assert.Equal(t, 12, trace.PhraseCount)
	assert.Len(t, trace.Phrases, 10)
	require.Len(t, trace.BaseMatches, 1)
	assert.Equal(t, Match{Phrase: "paen", Score: 0.8}, trace.BaseMatches[0])
	require.Len(t, trace.Effects, 1)
	assert.Equal(t, Effect{Kind: EffectIssue, Phrase: "rust", Delta: -0.1}, trace.Effects[0])
}

func TestClassify_RecoversFromFault(t *testing.T) {
	t.Parallel()

	c := New()
	c.normalize = func(string) string { panic("boom") }

	score, trace := c.ClassifyString("flot bil")
	assert.Equal(t, 0.5, score)
	assert.Equal(t, 0.5, trace.FinalScore)
	assert.Equal(t, "boom", trace.Error)
	assert.Equal(t, "flot bil", trace.OriginalText)
}

func TestClassify_CustomLexicon(t *testing.T) {
	t.Parallel()

	lex := NewLexicon(
		map[string]float64{"skinnende": 0.9},
		nil,
		nil,
		map[string]float64{"ridse": -0.2},
	)
	c := New(WithLexicon(lex))

	score, _ := c.ClassifyString("Skinnende, en ridse")
	assert.InDelta(t, 0.7, score, 1e-9)

	score, _ = c.ClassifyString("topstand")
	assert.Equal(t, 0.5, score)
}

func TestClassifyBatch(t *testing.T) {
	t.Parallel()

	texts := []*string{strPtr("som ny"), nil, strPtr("slidt")}
	results := New().ClassifyBatch(texts)

	require.Len(t, results, 3)
	assert.InDelta(t, 0.95, results[0].Score, 1e-9)
	assert.Equal(t, 0.5, results[1].Score)
	assert.True(t, results[1].Trace.NoInput)
	assert.InDelta(t, 0.3, results[2].Score, 1e-9)

	assert.Empty(t, New().ClassifyBatch(nil))
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "  Pæn   BIL ", want: "paen bil"},
		{in: "Æble, ØL; Å!", want: "aeble oel aa"},
		{in: `"Som ny" (næsten)`, want: "som ny naesten"},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestPhrases(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		[]string{"a", "b", "c", "a b", "b c", "a b c"},
		Phrases("a b c"),
	)
	assert.Equal(t, []string{"a"}, Phrases("a"))
	assert.Empty(t, Phrases(""))
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	tests := []struct {
		score float64
		want  Label
	}{
		{score: 1.0, want: LabelExcellent},
		{score: 0.9, want: LabelExcellent},
		{score: 0.85, want: LabelVeryGood},
		{score: 0.8, want: LabelVeryGood},
		{score: 0.7, want: LabelGood},
		{score: 0.6, want: LabelGood},
		{score: 0.5, want: LabelFair},
		{score: 0.4, want: LabelFair},
		{score: 0.3, want: LabelPoor},
		{score: 0.2, want: LabelPoor},
		{score: 0.1, want: LabelVeryPoor},
		{score: 0.0, want: LabelVeryPoor},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Describe(tt.score), "score %v", tt.score)
	}
}

func TestDefaultLexicon(t *testing.T) {
	t.Parallel()

	lex := DefaultLexicon()

	base, pos, neg, issues := lex.Size()
	assert.Equal(t, len(baseScores), base)
	assert.Equal(t, 6, pos)
	assert.Equal(t, 5, neg)
	assert.Equal(t, 10, issues)

	for phrase, v := range lex.base {
		assert.False(t, strings.ContainsAny(phrase, "æøå"), "phrase %q not normalized", phrase)
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}

	v, ok := lex.Base("upaaklagelig")
	assert.True(t, ok)
	assert.Equal(t, 0.9, v)

	p, ok := lex.Positive("meget")
	assert.True(t, ok)
	assert.Equal(t, 0.05, p)

	n, ok := lex.Negative("meget")
	assert.True(t, ok)
	assert.Equal(t, -0.1, n)
}
