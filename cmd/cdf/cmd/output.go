package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	apiclient "github.com/donaldgifford/car-deal-finder/internal/api/client"
	score "github.com/donaldgifford/car-deal-finder/pkg/scorer"
	domain "github.com/donaldgifford/car-deal-finder/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

// scoreStyles colours composite scores by tier.
type scoreStyles struct {
	header lipgloss.Style
	high   lipgloss.Style
	mid    lipgloss.Style
	low    lipgloss.Style
	dim    lipgloss.Style
}

func newScoreStyles() scoreStyles {
	return scoreStyles{
		header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		high:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		mid:    lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		low:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		dim:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// score renders a composite score in its tier colour.
func (s scoreStyles) score(v *int) string {
	switch {
	case v == nil:
		return s.dim.Render("-")
	case *v >= 70:
		return s.high.Render(strconv.Itoa(*v))
	case *v >= 40:
		return s.mid.Render(strconv.Itoa(*v))
	default:
		return s.low.Render(strconv.Itoa(*v))
	}
}

func printListingsTable(w io.Writer, listings []domain.Listing) error {
	styles := newScoreStyles()
	tw := newTabWriter(w)
	tw.writef("ID\tSCORE\tTITLE\tPRICE\tYEAR\tKM\tCONDITION\n")
	for i := range listings {
		l := &listings[i]
		tw.writef("%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			l.ID,
			styles.score(l.Score),
			truncate(l.Title, 40),
			formatPrice(l.Price),
			formatInt(l.ModelYear),
			formatInt(l.Mileage),
			l.ConditionLabel,
		)
	}
	return tw.finish()
}

func printListingDetail(w io.Writer, l *domain.Listing) error {
	styles := newScoreStyles()
	tw := newTabWriter(w)
	tw.writef("ID:\t%s\n", l.ID)
	tw.writef("Title:\t%s\n", l.Title)
	tw.writef("URL:\t%s\n", l.URL)
	tw.writef("Price:\t%s\n", formatPrice(l.Price))
	tw.writef("Model Year:\t%s\n", formatInt(l.ModelYear))
	tw.writef("Mileage:\t%s km\n", formatInt(l.Mileage))
	if l.ConditionText != nil {
		tw.writef("Condition Text:\t%s\n", truncate(*l.ConditionText, 80))
	}
	tw.writef("Condition:\t%s (%s)\n", l.ConditionLabel, formatFloat(l.ConditionScore))
	tw.writef("Make/Model:\t%s %s\n", l.Brand, l.Model)
	tw.writef("Fuel:\t%s\n", l.FuelType)
	tw.writef("Transmission:\t%s\n", l.Transmission)
	tw.writef("Location:\t%s\n", l.Location)
	tw.writef("Score:\t%s/100\n", styles.score(l.Score))
	if l.Score != nil {
		tw.writef("Components:\tprice %s, year %s, mileage %s, condition %s\n",
			formatFloat(l.PriceScore),
			formatFloat(l.YearScore),
			formatFloat(l.MileageScore),
			formatFloat(l.ConditionScore),
		)
	}
	tw.writef("Fetched:\t%s\n", l.FetchedAt.Format("2006-01-02 15:04:05"))
	return tw.finish()
}

func printStats(w io.Writer, st *apiclient.StatsResponse) error {
	styles := newScoreStyles()
	if st.NoData {
		_, err := fmt.Fprintf(w, "No scored listings (%d stored).\n", st.Total)
		return err
	}

	tw := newTabWriter(w)
	tw.writef("%s\n", styles.header.Render("Score statistics"))
	tw.writef("Scored:\t%d of %d\n", st.Scored, st.Total)
	tw.writef("Min / Max:\t%d / %d\n", st.Min, st.Max)
	tw.writef("Mean:\t%.1f\n", st.Mean)
	tw.writef("Median:\t%.1f\n", st.Median)
	tw.writef("Std:\t%.1f\n", st.Std)
	tw.writef("\n%s\n", styles.header.Render("Distribution"))
	for _, b := range st.Histogram {
		tw.writef("%s\t%s %d\n", b.Label, histogramBar(b, st.Scored, styles), b.Count)
	}
	if err := tw.finish(); err != nil {
		return err
	}

	if len(st.Top) == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(w, "\n%s\n", styles.header.Render("Top listings")); err != nil {
		return err
	}
	return printListingsTable(w, st.Top)
}

func histogramBar(b score.Bucket, total int, styles scoreStyles) string {
	const width = 20
	if total == 0 {
		return styles.dim.Render(strings.Repeat("░", width))
	}
	filled := b.Count * width / total
	if b.Count > 0 && filled == 0 {
		filled = 1
	}
	return styles.high.Render(strings.Repeat("█", filled)) +
		styles.dim.Render(strings.Repeat("░", width-filled))
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}

func formatPrice(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.0f kr.", *v)
}

func formatInt(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}

func formatFloat(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f", *v)
}
