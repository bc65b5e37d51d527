// Package validate checks generated dashboards and rule files for PromQL
// syntax errors and references to metrics the service does not export.
package validate

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/prometheus/prometheus/promql/parser"

	"github.com/donaldgifford/car-deal-finder/tools/dashgen/rules"
)

// Result collects validation findings. Errors fail generation, warnings
// are reported but do not.
type Result struct {
	Errors   []error
	Warnings []string
}

// Ok reports whether no errors were found.
func (r Result) Ok() bool { return len(r.Errors) == 0 }

func (r *Result) merge(other Result) {
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
}

// Expr parses a single PromQL expression and checks every selector
// against known.
func Expr(expr string, known map[string]bool) Result {
	var r Result

	node, err := parser.ParseExpr(expr)
	if err != nil {
		r.Errors = append(r.Errors, fmt.Errorf("parsing %q: %w", expr, err))
		return r
	}

	selectors := 0
	parser.Inspect(node, func(n parser.Node, _ []parser.Node) error {
		vs, ok := n.(*parser.VectorSelector)
		if !ok {
			return nil
		}
		selectors++
		if !known[vs.Name] && !known[baseMetric(vs.Name)] {
			r.Errors = append(r.Errors, fmt.Errorf("unknown metric %q in %q", vs.Name, expr))
		}
		return nil
	})

	if selectors == 0 {
		r.Warnings = append(r.Warnings, fmt.Sprintf("expression %q selects no metrics", expr))
	}
	return r
}

// Dashboard validates every query expression in a dashboard model. The
// model is walked in its JSON form so rows, nested panels and targets are
// all covered.
func Dashboard(dash any, known map[string]bool) Result {
	var r Result

	data, err := json.Marshal(dash)
	if err != nil {
		r.Errors = append(r.Errors, fmt.Errorf("marshaling dashboard: %w", err))
		return r
	}

	var tree any
	if err := json.Unmarshal(data, &tree); err != nil {
		r.Errors = append(r.Errors, fmt.Errorf("decoding dashboard: %w", err))
		return r
	}

	exprs := collectExprs(tree, nil)
	if len(exprs) == 0 {
		r.Warnings = append(r.Warnings, "dashboard has no query expressions")
	}
	for _, e := range exprs {
		r.merge(Expr(e, known))
	}
	return r
}

// Rules validates every rule expression in a PrometheusRule. Recorded
// series names become known for the rules that follow them.
func Rules(pr rules.PrometheusRule, known map[string]bool) Result {
	var r Result

	names := make(map[string]bool, len(known))
	for k, v := range known {
		names[k] = v
	}

	for _, g := range pr.Spec.Groups {
		for _, rule := range g.Rules {
			if rule.Record == "" && rule.Alert == "" {
				r.Errors = append(r.Errors, fmt.Errorf("group %s: rule %q has neither record nor alert", g.Name, rule.Expr))
			}
			r.merge(Expr(rule.Expr, names))
			if rule.Record != "" {
				names[rule.Record] = true
			}
		}
	}
	return r
}

func collectExprs(node any, out []string) []string {
	switch v := node.(type) {
	case map[string]any:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			if s, ok := v[k].(string); ok && k == "expr" {
				out = append(out, s)
				continue
			}
			out = collectExprs(v[k], out)
		}
	case []any:
		for _, item := range v {
			out = collectExprs(item, out)
		}
	}
	return out
}

// baseMetric maps histogram series back to the metric family name.
func baseMetric(name string) string {
	for _, suffix := range []string{"_bucket", "_sum", "_count"} {
		if trimmed, ok := strings.CutSuffix(name, suffix); ok {
			return trimmed
		}
	}
	return name
}
