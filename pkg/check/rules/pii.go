package rules

import (
	"regexp"
	"strings"

	"github.com/yaklabco/gostylecheck/pkg/check"
	"github.com/yaklabco/gostylecheck/pkg/config"
	"github.com/yaklabco/gostylecheck/pkg/extract"
)

var (
	ipPattern    = regexp.MustCompile(`\b(?:[0-9]{1,3}\.){3}[0-9]{1,3}\b`)
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
)

// PIIRule flags content that looks like personally identifying
// information: real IP addresses and email addresses.
type PIIRule struct {
	check.BaseRule
}

// NewPIIRule creates a new PII rule.
func NewPIIRule() *PIIRule {
	return &PIIRule{
		BaseRule: check.NewBaseRule(
			check.RulePII,
			"pii",
			"Mask IP addresses and email addresses in training content",
			check.CategoryTraining,
			config.SeverityError,
			false,
		),
	}
}

// CheckFragment flags IP-looking and email-looking patterns. Fragments
// containing a configured masked pattern are exempt from the IP check;
// addresses at allow-listed domains are exempt from the email check.
// At most one issue of each kind per fragment, IP first.
func (r *PIIRule) CheckFragment(rc *check.RuleContext, frag extract.Fragment) ([]check.Issue, error) {
	pii := rc.Guide.PIIGuidelines()
	if pii == nil {
		return nil, nil
	}

	var issues []check.Issue
	line := rc.FragmentLine(frag.Pos)

	masked := false
	for _, pattern := range pii.MaskedPatterns {
		if pattern != "" && strings.Contains(frag.Text, pattern) {
			masked = true
			break
		}
	}
	if !masked && ipPattern.MatchString(frag.Text) {
		issues = append(issues, r.NewRuleIssue(line, "Possible real IP address found").
			WithSuggestion("Replace with masked format like 'x.x.x.123' or 'nutanix@cvm:x.x.x.123:~'").
			Build())
	}

	for _, email := range emailPattern.FindAllString(frag.Text, -1) {
		if emailAllowed(email, pii.AllowedDomains) {
			continue
		}
		issues = append(issues, r.NewRuleIssue(line, "Possible email address found").
			WithSuggestion("Replace with a masked or example address").
			Build())
		break
	}

	return issues, nil
}

// emailAllowed reports whether the address's domain is allow-listed,
// either exactly or as a parent domain.
func emailAllowed(email string, domains []string) bool {
	at := strings.LastIndexByte(email, '@')
	if at < 0 {
		return false
	}
	domain := strings.ToLower(email[at+1:])
	for _, allowed := range domains {
		allowed = strings.ToLower(allowed)
		if allowed == "" {
			continue
		}
		if domain == allowed || strings.HasSuffix(domain, "."+allowed) {
			return true
		}
	}
	return false
}
