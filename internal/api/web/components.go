package web

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/a-h/templ"

	score "github.com/donaldgifford/car-deal-finder/pkg/scorer"
	domain "github.com/donaldgifford/car-deal-finder/pkg/types"
)

const styles = `body{font-family:system-ui,sans-serif;margin:2rem;color:#222}
table{border-collapse:collapse;width:100%}
th,td{padding:.35rem .6rem;border-bottom:1px solid #ddd;text-align:left}
.tier-high{color:#1a7f37;font-weight:600}
.tier-mid{color:#9a6700}
.tier-low{color:#cf222e}
.bar{display:inline-block;height:.8rem;background:#0969da}
.summary span{margin-right:1.5rem}`

// htmlWriter stops writing after the first error and reports it once.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (hw *htmlWriter) raw(s string) {
	if hw.err != nil {
		return
	}
	_, hw.err = io.WriteString(hw.w, s)
}

func (hw *htmlWriter) text(s string) {
	hw.raw(templ.EscapeString(s))
}

func (hw *htmlWriter) child(ctx context.Context, c templ.Component) {
	if hw.err != nil {
		return
	}
	hw.err = c.Render(ctx, hw.w)
}

// Page is the full dashboard document.
func Page(title string, st score.Stats[*domain.Listing]) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="UTF-8"><title>`)
		hw.text(title)
		hw.raw(`</title><style>` + styles + `</style></head><body><h1>`)
		hw.text(title)
		hw.raw(`</h1>`)

		if st.NoData {
			hw.raw(`<p class="empty">No scored listings yet.</p></body></html>`)
			return hw.err
		}

		hw.child(ctx, Summary(st))
		hw.child(ctx, Histogram(st.Histogram, st.Scored))
		hw.child(ctx, TopListings(st.Top))
		hw.raw(`</body></html>`)
		return hw.err
	})
}

// Summary shows the descriptive statistics.
func Summary(st score.Stats[*domain.Listing]) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<p class="summary">`)
		field := func(name, value string) {
			hw.raw(`<span>`)
			hw.text(name + ": " + value)
			hw.raw(`</span>`)
		}
		field("Scored", strconv.Itoa(st.Scored))
		field("Unscored", strconv.Itoa(st.Unscored))
		field("Min", strconv.Itoa(st.Min))
		field("Max", strconv.Itoa(st.Max))
		field("Mean", fmt.Sprintf("%.1f", st.Mean))
		field("Median", fmt.Sprintf("%.1f", st.Median))
		field("Std", fmt.Sprintf("%.1f", st.Std))
		hw.raw(`</p>`)
		return hw.err
	})
}

// Histogram draws one bar per score bucket, scaled to the scored count.
func Histogram(buckets []score.Bucket, scored int) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<h2>Distribution</h2><table class="histogram"><tbody>`)
		for _, b := range buckets {
			width := 0
			if scored > 0 {
				width = b.Count * 300 / scored
			}
			hw.raw(`<tr><td>`)
			hw.text(b.Label)
			hw.raw(`</td><td><span class="bar" style="width:` + strconv.Itoa(width) + `px"></span></td><td>`)
			hw.text(strconv.Itoa(b.Count))
			hw.raw(`</td></tr>`)
		}
		hw.raw(`</tbody></table>`)
		return hw.err
	})
}

// TopListings is the table of best deals.
func TopListings(listings []*domain.Listing) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw(`<h2>Best deals</h2><table class="top"><thead><tr>` +
			`<th>Score</th><th>Listing</th><th>Price</th><th>Year</th><th>Km</th><th>Condition</th>` +
			`</tr></thead><tbody>`)
		for _, l := range listings {
			title := l.Title
			if title == "" {
				title = l.URL
			}
			hw.raw(`<tr><td class="` + tierClass(l.Score) + `">`)
			hw.text(intOrDash(l.Score))
			hw.raw(`</td><td><a href="`)
			hw.text(string(templ.URL(l.URL)))
			hw.raw(`">`)
			hw.text(title)
			hw.raw(`</a></td><td>`)
			hw.text(priceOrDash(l.Price))
			hw.raw(`</td><td>`)
			hw.text(intOrDash(l.ModelYear))
			hw.raw(`</td><td>`)
			hw.text(intOrDash(l.Mileage))
			hw.raw(`</td><td>`)
			hw.text(l.ConditionLabel)
			hw.raw(`</td></tr>`)
		}
		hw.raw(`</tbody></table>`)
		return hw.err
	})
}

// tierClass buckets a composite score into the colour classes.
func tierClass(s *int) string {
	switch {
	case s == nil:
		return "tier-none"
	case *s >= 70:
		return "tier-high"
	case *s >= 40:
		return "tier-mid"
	default:
		return "tier-low"
	}
}

func intOrDash(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}

func priceOrDash(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.0f kr.", *v)
}
