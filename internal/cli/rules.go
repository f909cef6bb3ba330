package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"

	"github.com/yaklabco/gostylecheck/internal/ui/pretty"
	"github.com/yaklabco/gostylecheck/pkg/check"
	"github.com/yaklabco/gostylecheck/pkg/config"
)

type rulesFlags struct {
	ruleFormat string
	format     string
}

const formatJSON = "json"

// descriptionWrapWidth keeps the DESCRIPTION column readable on
// standard terminals.
const descriptionWrapWidth = 50

// ruleInfo represents a rule in JSON output.
type ruleInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
	Enabled     bool   `json:"enabled"`
	Fixable     bool   `json:"fixable"`
}

func newRulesCommand() *cobra.Command {
	flags := &rulesFlags{}

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List available style rules",
		Long: `List all available style rules with their IDs, categories, default
severity, and whether they support auto-fixing.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rules := check.DefaultRegistry.Rules()

			if flags.format == formatJSON {
				return outputRulesJSON(rules)
			}

			colorMode, err := cmd.Flags().GetString("color")
			if err != nil {
				colorMode = "auto"
			}
			outputRulesTable(cmd, rules, config.RuleFormat(flags.ruleFormat), colorMode)
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.ruleFormat, "rule-format", "name",
		"rule identifier format in output: name, id, or combined")
	cmd.Flags().StringVar(&flags.format, "format", "text",
		"output format: text, json")

	return cmd
}

// outputRulesTable renders the rule registry as a table, in registration
// order, which is also the order the engine evaluates rules in.
func outputRulesTable(cmd *cobra.Command, rules []check.Rule, ruleFormat config.RuleFormat, colorMode string) {
	writer := cmd.OutOrStdout()
	colorEnabled := pretty.IsColorEnabled(colorMode, writer)

	t := pretty.NewTable(colorEnabled)
	t.SetOutputMirror(writer)
	t.AppendHeader(table.Row{"RULE", "CATEGORY", "SEVERITY", "FIX", "DESCRIPTION"})

	if colorEnabled {
		t.SetRowPainter(func(row table.Row) text.Colors {
			if severity, ok := row[2].(string); ok {
				return pretty.SeverityColors(severity)
			}
			return nil
		})
	}

	for _, rule := range rules {
		fixable := ""
		if rule.CanFix() {
			fixable = "✓"
		}

		t.AppendRow(table.Row{
			config.FormatRuleID(ruleFormat, rule.ID(), rule.Name()),
			rule.Category(),
			string(rule.DefaultSeverity()),
			fixable,
			wordwrap.String(rule.Description(), descriptionWrapWidth),
		})
	}

	t.Render()
	fmt.Fprintf(writer, "\n%d rules registered\n", len(rules))
}

// outputRulesJSON outputs rules as a JSON array.
func outputRulesJSON(rules []check.Rule) error {
	infos := make([]ruleInfo, 0, len(rules))
	for _, rule := range rules {
		infos = append(infos, ruleInfo{
			ID:          rule.ID(),
			Name:        rule.Name(),
			Category:    rule.Category(),
			Description: rule.Description(),
			Severity:    string(rule.DefaultSeverity()),
			Enabled:     rule.DefaultEnabled(),
			Fixable:     rule.CanFix(),
		})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encoding rules: %w", err)
	}
	return nil
}
