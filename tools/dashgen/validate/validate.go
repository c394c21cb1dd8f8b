// Package validate checks generated dashboards and rules before they are
// written: every expression must parse as PromQL and reference only known
// metrics.
package validate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/prometheus/prometheus/promql/parser"

	"github.com/donaldgifford/maardu-realty/tools/dashgen/rules"
)

// Result collects problems found during validation. Errors make the
// artifact unusable; warnings flag panels that render but show nothing.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether validation found no errors.
func (r Result) Ok() bool { return len(r.Errors) == 0 }

// Merge appends other's findings to r.
func (r *Result) Merge(other Result) {
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
}

// Dashboard validates every panel query of a built dashboard, including
// panels nested in rows.
func Dashboard(dash dashboard.Dashboard, known map[string]bool) Result {
	var res Result

	// The SDK models targets as an open interface; round-tripping through
	// JSON gives a uniform view of titles and expressions.
	data, err := json.Marshal(dash)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("marshaling dashboard: %v", err))
		return res
	}
	var doc struct {
		Panels []panelDoc `json:"panels"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("decoding dashboard: %v", err))
		return res
	}

	for _, p := range doc.Panels {
		if p.Type == "row" {
			for _, inner := range p.Panels {
				res.Merge(panel(inner, known))
			}
			continue
		}
		res.Merge(panel(p, known))
	}
	return res
}

// Rules validates every expression in a PrometheusRule CR.
func Rules(cr rules.PrometheusRule, known map[string]bool) Result {
	var res Result
	for _, g := range cr.Spec.Groups {
		for _, r := range g.Rules {
			name := r.Record
			if name == "" {
				name = r.Alert
			}
			res.Merge(Expr(g.Name+"/"+name, r.Expr, known))
		}
	}
	return res
}

// Expr parses a single PromQL expression and checks its metric names.
func Expr(where, expr string, known map[string]bool) Result {
	var res Result

	node, err := parser.ParseExpr(expr)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("%s: invalid PromQL: %v", where, err))
		return res
	}

	parser.Inspect(node, func(n parser.Node, _ []parser.Node) error {
		vs, ok := n.(*parser.VectorSelector)
		if !ok || vs.Name == "" {
			return nil
		}
		if !known[baseMetric(vs.Name, known)] {
			res.Errors = append(res.Errors, fmt.Sprintf("%s: unknown metric %q", where, vs.Name))
		}
		return nil
	})
	return res
}

type panelDoc struct {
	Type    string     `json:"type"`
	Title   string     `json:"title"`
	Panels  []panelDoc `json:"panels"`
	Targets []struct {
		Expr string `json:"expr"`
	} `json:"targets"`
}

func panel(p panelDoc, known map[string]bool) Result {
	var res Result
	if len(p.Targets) == 0 {
		res.Warnings = append(res.Warnings, fmt.Sprintf("panel %q has no queries", p.Title))
		return res
	}
	for i, t := range p.Targets {
		res.Merge(Expr(fmt.Sprintf("panel %q target %d", p.Title, i), t.Expr, known))
	}
	return res
}

// histogramSuffixes are the series a histogram exports beyond its base name.
var histogramSuffixes = []string{"_bucket", "_count", "_sum"}

// baseMetric maps histogram series back to the metric that exports them.
func baseMetric(name string, known map[string]bool) string {
	if known[name] {
		return name
	}
	for _, s := range histogramSuffixes {
		if base, ok := strings.CutSuffix(name, s); ok && known[base] {
			return base
		}
	}
	return name
}
