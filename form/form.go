// Package form implements one live survey form: the answer state
// machine, the HTML renderer and the submission pipeline.
package form

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/rnbwlabs/survey/i18n"
	"github.com/rnbwlabs/survey/model"
	"github.com/rnbwlabs/survey/survey"
)

// State of a form instance. A form starts Editing; Submitting covers
// the single in-flight network round trip; Success is terminal until
// Reset; EditingWithError keeps the answers so the user never re-enters
// data.
type State int

const (
	Editing State = iota
	Submitting
	Success
	EditingWithError
)

var (
	ErrNotEditing     = errors.New("form: answers are read-only outside editing")
	ErrSubmitInFlight = errors.New("form: a submission is already in flight")
)

// Form is one per-visitor form instance. It is not safe for concurrent
// use; a form belongs to a single event loop.
type Form struct {
	schema model.Schema
	rules  survey.RuleSet
	locale string
	theme  string

	client   *http.Client
	endpoint string

	state     State
	answers   model.AnswerMap
	fieldErrs map[string]string
	globalErr string
}

// New builds a form over the given schema, posting submissions to
// endpoint through client.
func New(schema model.Schema, client *http.Client, endpoint, locale string) *Form {
	if !i18n.Known(locale) {
		locale = i18n.DefaultLocale
	}
	return &Form{
		schema:   schema,
		rules:    survey.NewRuleSet(schema),
		locale:   locale,
		theme:    "light",
		client:   client,
		endpoint: endpoint,
		answers:  model.NewAnswerMap(schema),
	}
}

// SetTheme switches the page chrome between light and dark. Anything
// but "dark" renders light.
func (f *Form) SetTheme(theme string) {
	if theme != "dark" {
		theme = "light"
	}
	f.theme = theme
}

func (f *Form) State() State { return f.state }

// Answers returns the live answer map. Callers must treat it as
// read-only; all mutation goes through SetString and Toggle.
func (f *Form) Answers() model.AnswerMap { return f.answers }

// FieldErrors returns the per-question messages of the last validation
// run.
func (f *Form) FieldErrors() map[string]string { return f.fieldErrs }

// GlobalError returns the banner message of the last transport failure,
// or "".
func (f *Form) GlobalError() string { return f.globalErr }

// SetString records the value of a text, textarea, email or radio
// question. For radio questions the value is the chosen option id and
// replaces any previous choice.
func (f *Form) SetString(questionID, value string) error {
	q, err := f.editable(questionID)
	if err != nil {
		return err
	}
	if q.Type == model.TypeCheckbox {
		return fmt.Errorf("form: question %q is a checkbox, use Toggle", questionID)
	}
	f.answers[questionID] = model.TextAnswer(value)
	return nil
}

// Toggle switches one option of a checkbox question on or off. Turning
// an option on appends its id if absent; turning it off removes it.
// Insertion order is kept but carries no meaning.
func (f *Form) Toggle(questionID, optionID string, on bool) error {
	q, err := f.editable(questionID)
	if err != nil {
		return err
	}
	if q.Type != model.TypeCheckbox {
		return fmt.Errorf("form: question %q is not a checkbox", questionID)
	}

	selected := f.answers[questionID].Choices
	if on {
		for _, id := range selected {
			if id == optionID {
				return nil
			}
		}
		f.answers[questionID] = model.ChoiceAnswer(append(selected, optionID)...)
		return nil
	}
	kept := make([]string, 0, len(selected))
	for _, id := range selected {
		if id != optionID {
			kept = append(kept, id)
		}
	}
	f.answers[questionID] = model.ChoiceAnswer(kept...)
	return nil
}

func (f *Form) editable(questionID string) (model.Question, error) {
	if f.state == Submitting || f.state == Success {
		return model.Question{}, ErrNotEditing
	}
	q, ok := f.schema.QuestionByID(questionID)
	if !ok {
		return model.Question{}, fmt.Errorf("form: unknown question %q", questionID)
	}
	return q, nil
}

// Reset returns a Success form to Editing with a fresh answer map.
func (f *Form) Reset() {
	f.state = Editing
	f.answers = model.NewAnswerMap(f.schema)
	f.fieldErrs = nil
	f.globalErr = ""
}
