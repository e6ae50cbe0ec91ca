package model

import "fmt"

type QuestionType string

const (
	TypeText     QuestionType = "text"
	TypeTextarea QuestionType = "textarea"
	TypeRadio    QuestionType = "radio"
	TypeCheckbox QuestionType = "checkbox"
	TypeEmail    QuestionType = "email"
)

// HasOptions reports whether questions of this type carry an option list.
func (t QuestionType) HasOptions() bool {
	return t == TypeRadio || t == TypeCheckbox
}

type QuestionOption struct {
	ID          string `json:"id"`
	LabelKey    string `json:"labelKey,omitempty"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
}

type Question struct {
	ID          string           `json:"id"`
	Type        QuestionType     `json:"type"`
	TitleKey    string           `json:"titleKey,omitempty"`
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	Required    bool             `json:"required"`
	Options     []QuestionOption `json:"options,omitempty"`
}

type SurveySection struct {
	ID        string     `json:"id"`
	TitleKey  string     `json:"titleKey,omitempty"`
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

// Schema is the ordered list of survey sections. It is defined once at
// process start and never mutated afterwards.
type Schema []SurveySection

// Questions returns every question in section order, then schema order
// within each section.
func (s Schema) Questions() []Question {
	var qs []Question
	for _, sec := range s {
		qs = append(qs, sec.Questions...)
	}
	return qs
}

// QuestionByID looks a question up by its id.
func (s Schema) QuestionByID(id string) (Question, bool) {
	for _, sec := range s {
		for _, q := range sec.Questions {
			if q.ID == id {
				return q, true
			}
		}
	}
	return Question{}, false
}

// OptionLabel resolves an option id of the given question to its display
// label, falling back to the raw id when the option is not declared.
func (q Question) OptionLabel(optionID string) string {
	for _, opt := range q.Options {
		if opt.ID == optionID {
			return opt.Label
		}
	}
	return optionID
}

// Check verifies the schema shape: radio and checkbox questions must
// declare a non-empty option list, option ids must be unique within a
// question, and question ids must be unique across the whole schema.
// A schema failing Check must never be served.
func (s Schema) Check() error {
	seen := make(map[string]bool)
	for _, sec := range s {
		for _, q := range sec.Questions {
			if seen[q.ID] {
				return fmt.Errorf("schema: duplicate question id %q", q.ID)
			}
			seen[q.ID] = true

			if q.Type.HasOptions() {
				if len(q.Options) == 0 {
					return fmt.Errorf("schema: question %q is %s but declares no options", q.ID, q.Type)
				}
				opts := make(map[string]bool)
				for _, opt := range q.Options {
					if opts[opt.ID] {
						return fmt.Errorf("schema: question %q has duplicate option id %q", q.ID, opt.ID)
					}
					opts[opt.ID] = true
				}
			} else if len(q.Options) > 0 {
				return fmt.Errorf("schema: question %q is %s but declares options", q.ID, q.Type)
			}
		}
	}
	return nil
}
