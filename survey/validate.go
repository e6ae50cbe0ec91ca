package survey

import (
	"regexp"

	"github.com/rnbwlabs/survey/i18n"
	"github.com/rnbwlabs/survey/model"
)

// Deliberately loose: anything of the shape local@domain.tld. Stricter
// address checking belongs to the mail transport, not the form.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// rule checks one answer and returns a message key, or "" when the
// answer passes.
type rule func(ans model.Answer) string

// RuleSet is the per-question validity predicate table compiled from a
// schema. Build it once; it is immutable afterwards.
type RuleSet struct {
	order []string
	rules map[string]rule
}

// NewRuleSet derives a validation rule for every question of the
// schema, keyed by question id.
func NewRuleSet(schema model.Schema) RuleSet {
	rs := RuleSet{rules: make(map[string]rule)}
	for _, q := range schema.Questions() {
		rs.order = append(rs.order, q.ID)
		rs.rules[q.ID] = ruleFor(q)
	}
	return rs
}

func ruleFor(q model.Question) rule {
	switch q.Type {
	case model.TypeEmail:
		return func(ans model.Answer) string {
			if ans.Text == "" {
				if q.Required {
					return "error.required"
				}
				return ""
			}
			if !emailPattern.MatchString(ans.Text) {
				return "error.invalidEmail"
			}
			return ""
		}

	case model.TypeRadio:
		return func(ans model.Answer) string {
			if ans.Text == "" {
				if q.Required {
					return "error.selectOne"
				}
				return ""
			}
			if !declaresOption(q, ans.Text) {
				return "error.invalidOption"
			}
			return ""
		}

	case model.TypeCheckbox:
		return func(ans model.Answer) string {
			for _, id := range ans.Choices {
				if !declaresOption(q, id) {
					return "error.invalidOption"
				}
			}
			if q.Required && len(ans.Choices) == 0 {
				return "error.selectAtLeastOne"
			}
			return ""
		}

	default: // text, textarea
		return func(ans model.Answer) string {
			if q.Required && ans.Text == "" {
				return "error.required"
			}
			return ""
		}
	}
}

func declaresOption(q model.Question, id string) bool {
	for _, opt := range q.Options {
		if opt.ID == id {
			return true
		}
	}
	return false
}

// Validate applies every rule to the answers and returns the localized
// message of each failing question, keyed by question id. An empty map
// means the whole form is valid. Answer keys that match no question are
// ignored: stale state from an older schema must never fail a fresh
// form.
func (rs RuleSet) Validate(answers model.AnswerMap) map[string]string {
	return rs.ValidateLocale(answers, i18n.DefaultLocale)
}

// ValidateLocale is Validate with messages resolved for the given
// locale.
func (rs RuleSet) ValidateLocale(answers model.AnswerMap, locale string) map[string]string {
	failed := make(map[string]string)
	for _, id := range rs.order {
		if key := rs.rules[id](answers[id]); key != "" {
			failed[id] = i18n.Resolve(key, "", locale)
		}
	}
	return failed
}
