package condition

// baseScores maps Danish condition phrases to a base score in [0, 1].
var baseScores = map[string]float64{
	// Excellent
	"nysynet":       1.0,
	"helt ny":       1.0,
	"fabriksny":     1.0,
	"som ny":        0.95,
	"topstand":      0.95,
	"perfekt stand": 0.95,
	"upåklagelig":   0.9,
	"fremragende":   0.9,

	// Very good
	"nyserviceret":  0.85,
	"meget pæn":     0.85,
	"virkelig pæn":  0.85,
	"super flot":    0.85,
	"flot":          0.8,
	"pæn":           0.8,
	"velholdt":      0.8,

	// Good
	"god stand":         0.75,
	"fin stand":         0.75,
	"god":               0.7,
	"fin":               0.7,
	"tilfredsstillende": 0.65,
	"ok stand":          0.65,
	"acceptabel":        0.6,
	"brugbar":           0.6,

	// Average
	"brugt":             0.55,
	"almindelig brugt":  0.55,
	"normal":            0.5,
	"normalt brugsspor": 0.5,
	"almindelig stand":  0.5,
	"middelstand":       0.45,
	"gennemsnitlig":     0.45,
	"brugsport":         0.4,

	// Poor
	"slidte":         0.35,
	"tærskel":        0.35,
	"slidt":          0.3,
	"mangler":        0.3,
	"skal repareres": 0.25,
	"trænger til":    0.25,
	"dårlig stand":   0.2,
	"dårlig":         0.2,

	// Very poor
	"reparationsobjekt": 0.1,
	"til dele":          0.05,
	"defekt":            0.0,
	"ødelagt":           0.0,
	"havareret":         0.0,
	"skrotet":           0.0,
}

var positiveModifiers = map[string]float64{
	"meget":   0.05,
	"super":   0.05,
	"rigtig":  0.05,
	"særlig":  0.05,
	"ekstra":  0.05,
	"utrolig": 0.05,
}

// "meget" is listed as both a positive and a negative modifier. Both
// deltas apply.
var negativeModifiers = map[string]float64{
	"lidt":     -0.05,
	"noget":    -0.05,
	"ret":      -0.05,
	"temmelig": -0.1,
	"meget":    -0.1,
}

var issuePhrases = map[string]float64{
	"rust":         -0.1,
	"buler":        -0.05,
	"ridser":       -0.03,
	"slitage":      -0.05,
	"motor":        -0.15,
	"gear":         -0.1,
	"bremser":      -0.1,
	"elektronik":   -0.08,
	"aircon":       -0.03,
	"aircondition": -0.03,
}

// Lexicon is an immutable set of phrase tables. Keys are stored in
// normalized form so they match normalized input text.
type Lexicon struct {
	base     map[string]float64
	positive map[string]float64
	negative map[string]float64
	issues   map[string]float64
}

var defaultLexicon = NewLexicon(baseScores, positiveModifiers, negativeModifiers, issuePhrases)

// DefaultLexicon returns the built-in Danish condition lexicon.
func DefaultLexicon() *Lexicon {
	return defaultLexicon
}

// NewLexicon builds a lexicon from raw phrase tables. The input maps are
// copied and their keys normalized.
func NewLexicon(base, positive, negative, issues map[string]float64) *Lexicon {
	return &Lexicon{
		base:     normalizeKeys(base),
		positive: normalizeKeys(positive),
		negative: normalizeKeys(negative),
		issues:   normalizeKeys(issues),
	}
}

// Base returns the base score for a normalized phrase.
func (l *Lexicon) Base(phrase string) (float64, bool) {
	v, ok := l.base[phrase]
	return v, ok
}

// Positive returns the positive modifier delta for a normalized phrase.
func (l *Lexicon) Positive(phrase string) (float64, bool) {
	v, ok := l.positive[phrase]
	return v, ok
}

// Negative returns the negative modifier delta for a normalized phrase.
func (l *Lexicon) Negative(phrase string) (float64, bool) {
	v, ok := l.negative[phrase]
	return v, ok
}

// Issue returns the penalty delta for a normalized issue phrase.
func (l *Lexicon) Issue(phrase string) (float64, bool) {
	v, ok := l.issues[phrase]
	return v, ok
}

// Size returns the number of entries in each table.
func (l *Lexicon) Size() (base, positive, negative, issues int) {
	return len(l.base), len(l.positive), len(l.negative), len(l.issues)
}

func normalizeKeys(m map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[Normalize(k)] = v
	}
	return out
}
