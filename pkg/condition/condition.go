// Package condition scores free-text Danish car condition descriptions.
//
// Text is normalized, split into 1-, 2- and 3-word phrases, and looked up in
// a phrase lexicon. The most optimistic base phrase wins; modifier and issue
// phrases add signed deltas, and the result is clamped to [0, 1].
package condition

import (
	"fmt"
	"log/slog"
	"strings"

	domain "github.com/donaldgifford/car-deal-finder/pkg/types"
)

const (
	maxTracePhrases = 10
	punctuation     = ".,!?;:\"'()"
)

// transliterations maps Danish letters to their ASCII digraphs.
var transliterations = map[rune]string{
	'æ': "ae",
	'ø': "oe",
	'å': "aa",
}

// Match is a base lexicon hit.
type Match struct {
	Phrase string  `json:"phrase"`
	Score  float64 `json:"score"`
}

// EffectKind identifies which table a modifier came from.
type EffectKind string

// Effect kinds.
const (
	EffectPositive EffectKind = "positive_modifier"
	EffectNegative EffectKind = "negative_modifier"
	EffectIssue    EffectKind = "issue_phrase"
)

// Effect is a modifier or issue delta applied to the base score.
type Effect struct {
	Kind   EffectKind `json:"kind"`
	Phrase string     `json:"phrase"`
	Delta  float64    `json:"delta"`
}

// Trace records how a score was derived.
type Trace struct {
	OriginalText   string   `json:"original_text"`
	NoInput        bool     `json:"no_input"`
	NormalizedText string   `json:"normalized_text"`
	PhraseCount    int      `json:"phrase_count"`
	Phrases        []string `json:"phrases"`
	BaseMatched    bool     `json:"base_matched"`
	BaseMatches    []Match  `json:"base_matches"`
	Effects        []Effect `json:"effects"`
	BaseScore      float64  `json:"base_score"`
	FinalScore     float64  `json:"final_score"`
	Error          string   `json:"error,omitempty"`
}

// Result pairs a score with its trace.
type Result struct {
	Score float64 `json:"score"`
	Trace Trace   `json:"trace"`
}

// Classifier maps condition text to a score in [0, 1]. It holds no mutable
// state and is safe for concurrent use.
type Classifier struct {
	lexicon   *Lexicon
	log       *slog.Logger
	normalize func(string) string
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Classifier) {
		c.log = l
	}
}

// WithLexicon replaces the built-in lexicon.
func WithLexicon(lex *Lexicon) Option {
	return func(c *Classifier) {
		c.lexicon = lex
	}
}

// New creates a Classifier using the default lexicon.
func New(opts ...Option) *Classifier {
	c := &Classifier{
		lexicon:   DefaultLexicon(),
		log:       slog.Default(),
		normalize: Normalize,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ClassifyString is Classify for a non-optional string.
func (c *Classifier) ClassifyString(text string) (float64, Trace) {
	return c.Classify(&text)
}

// Classify scores a condition description. A nil, empty or whitespace-only
// text yields the neutral score. Classify never fails: internal faults are
// logged and reported in the trace with the neutral score.
func (c *Classifier) Classify(text *string) (score float64, trace Trace) {
	trace = Trace{
		BaseScore:  domain.NeutralScore,
		FinalScore: domain.NeutralScore,
	}

	if text == nil || strings.TrimSpace(*text) == "" {
		if text != nil {
			trace.OriginalText = *text
		}
		trace.NoInput = true
		c.log.Debug("empty condition text, using neutral score")
		return domain.NeutralScore, trace
	}
	trace.OriginalText = *text

	defer func() {
		if r := recover(); r != nil {
			c.log.Error("condition parsing failed", "text", *text, "error", r)
			trace.Error = fmt.Sprint(r)
			trace.FinalScore = domain.NeutralScore
			score = domain.NeutralScore
		}
	}()

	normalized := c.normalize(*text)
	phrases := Phrases(normalized)

	trace.NormalizedText = normalized
	trace.PhraseCount = len(phrases)
	trace.Phrases = phrases[:min(len(phrases), maxTracePhrases)]

	base, matches := c.baseScore(phrases)
	trace.BaseScore = base
	trace.BaseMatched = len(matches) > 0
	trace.BaseMatches = matches

	final, effects := c.applyModifiers(base, phrases)
	trace.FinalScore = final
	trace.Effects = effects

	c.log.Debug("parsed condition", "text", *text, "score", final)
	return final, trace
}

// ClassifyBatch classifies each text independently, preserving order.
func (c *Classifier) ClassifyBatch(texts []*string) []Result {
	results := make([]Result, len(texts))
	for i, t := range texts {
		score, trace := c.Classify(t)
		results[i] = Result{Score: score, Trace: trace}
	}
	return results
}

// baseScore returns the highest base score among matching phrases, or the
// neutral score with no matches.
func (c *Classifier) baseScore(phrases []string) (float64, []Match) {
	var matches []Match
	best := 0.0
	for _, p := range phrases {
		s, ok := c.lexicon.Base(p)
		if !ok {
			continue
		}
		if len(matches) == 0 || s > best {
			best = s
		}
		matches = append(matches, Match{Phrase: p, Score: s})
	}
	if len(matches) == 0 {
		return domain.NeutralScore, nil
	}
	return best, matches
}

// applyModifiers sums every modifier and issue delta found, without
// deduplication, and clamps the adjusted score to [0, 1].
func (c *Classifier) applyModifiers(base float64, phrases []string) (float64, []Effect) {
	var effects []Effect
	total := 0.0

	for _, p := range phrases {
		if d, ok := c.lexicon.Positive(p); ok {
			total += d
			effects = append(effects, Effect{Kind: EffectPositive, Phrase: p, Delta: d})
		}
	}

	for _, p := range phrases {
		if d, ok := c.lexicon.Negative(p); ok {
			total += d
			effects = append(effects, Effect{Kind: EffectNegative, Phrase: p, Delta: d})
		}
		if d, ok := c.lexicon.Issue(p); ok {
			total += d
			effects = append(effects, Effect{Kind: EffectIssue, Phrase: p, Delta: d})
		}
	}

	return clamp01(base + total), effects
}

// Normalize lowercases text, replaces punctuation with spaces, transliterates
// æ, ø and å, and collapses whitespace.
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		if strings.ContainsRune(punctuation, r) {
			b.WriteRune(' ')
			continue
		}
		if t, ok := transliterations[r]; ok {
			b.WriteString(t)
			continue
		}
		b.WriteRune(r)
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Phrases returns every contiguous 1-, 2- and 3-word window of the
// normalized text: all single words first, then pairs, then triples.
func Phrases(normalized string) []string {
	words := strings.Fields(normalized)
	phrases := make([]string, 0, 3*len(words))
	for n := 1; n <= 3; n++ {
		for i := 0; i+n <= len(words); i++ {
			phrases = append(phrases, strings.Join(words[i:i+n], " "))
		}
	}
	return phrases
}

// Label is a human-readable condition grade.
type Label string

// Condition labels, best first.
const (
	LabelExcellent Label = "Excellent"
	LabelVeryGood  Label = "Very Good"
	LabelGood      Label = "Good"
	LabelFair      Label = "Fair"
	LabelPoor      Label = "Poor"
	LabelVeryPoor  Label = "Very Poor"
)

// Describe maps a condition score to its label.
func Describe(score float64) Label {
	switch {
	case score >= 0.9:
		return LabelExcellent
	case score >= 0.8:
		return LabelVeryGood
	case score >= 0.6:
		return LabelGood
	case score >= 0.4:
		return LabelFair
	case score >= 0.2:
		return LabelPoor
	default:
		return LabelVeryPoor
	}
}

func clamp01(v float64) float64 {
	return max(0.0, min(1.0, v))
}
