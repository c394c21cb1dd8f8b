// Package rules generates Prometheus recording and alert rules, either as
// Prometheus Operator PrometheusRule resources or as plain rule files.
package rules

// Severity values attached to alert rules.
const (
	SeverityCritical = "critical"
	SeverityWarning  = "warning"
)

// ruleSelector matches the label the cluster's rule-evaluating Prometheus
// selects PrometheusRule resources by.
var ruleSelector = map[string]string{"prometheus": "system-rules-prometheus"}

// PrometheusRule is the monitoring.coreos.com/v1 PrometheusRule resource.
type PrometheusRule struct {
	APIVersion string                 `yaml:"apiVersion"`
	Kind       string                 `yaml:"kind"`
	Metadata   PrometheusRuleMetadata `yaml:"metadata"`
	Spec       PrometheusRuleSpec     `yaml:"spec"`
}

// PrometheusRuleMetadata holds the resource name and labels.
type PrometheusRuleMetadata struct {
	Name   string            `yaml:"name"`
	Labels map[string]string `yaml:"labels,omitempty"`
}

// PrometheusRuleSpec holds the rule groups.
type PrometheusRuleSpec struct {
	Groups []RuleGroup `yaml:"groups"`
}

// RuleGroup is a named set of rules evaluated together.
type RuleGroup struct {
	Name     string `yaml:"name"`
	Interval string `yaml:"interval,omitempty"`
	Rules    []Rule `yaml:"rules"`
}

// Rule is a recording rule when Record is set and an alert when Alert is.
type Rule struct {
	Record      string            `yaml:"record,omitempty"`
	Alert       string            `yaml:"alert,omitempty"`
	Expr        string            `yaml:"expr"`
	For         string            `yaml:"for,omitempty"`
	Labels      map[string]string `yaml:"labels,omitempty"`
	Annotations map[string]string `yaml:"annotations,omitempty"`
}

// RuleFile is the plain Prometheus rule_files format, for deployments that
// run Prometheus without the operator.
type RuleFile struct {
	Groups []RuleGroup `yaml:"groups"`
}

// newPrometheusRule wraps groups in a PrometheusRule named name.
func newPrometheusRule(name string, groups ...RuleGroup) PrometheusRule {
	labels := make(map[string]string, len(ruleSelector))
	for k, v := range ruleSelector {
		labels[k] = v
	}
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata:   PrometheusRuleMetadata{Name: name, Labels: labels},
		Spec:       PrometheusRuleSpec{Groups: groups},
	}
}

// File returns the rule groups of r as a standalone rule file.
func (r PrometheusRule) File() RuleFile {
	return RuleFile{Groups: r.Spec.Groups}
}

func record(name, expr string) Rule {
	return Rule{Record: name, Expr: expr}
}

func alert(name, expr, forDur, severity, summary, description string) Rule {
	return Rule{
		Alert:       name,
		Expr:        expr,
		For:         forDur,
		Labels:      map[string]string{"severity": severity},
		Annotations: map[string]string{"summary": summary, "description": description},
	}
}
