package model

import "encoding/json"

// Answer is a tagged answer value. Text carries the value of text,
// textarea, email and radio questions; Choices carries the ordered,
// duplicate-free option-id set of checkbox questions. Exactly one of
// the two is meaningful for a given question.
type Answer struct {
	Text    string
	Choices []string
}

// TextAnswer builds a string-valued answer.
func TextAnswer(s string) Answer {
	return Answer{Text: s}
}

// ChoiceAnswer builds a checkbox answer from the given option ids.
func ChoiceAnswer(ids ...string) Answer {
	if ids == nil {
		ids = []string{}
	}
	return Answer{Choices: ids}
}

// IsChoices reports whether the answer carries a checkbox id set.
func (a Answer) IsChoices() bool {
	return a.Choices != nil
}

// Empty reports whether the answer carries no value at all.
func (a Answer) Empty() bool {
	if a.IsChoices() {
		return len(a.Choices) == 0
	}
	return a.Text == ""
}

func (a Answer) MarshalJSON() ([]byte, error) {
	if a.IsChoices() {
		return json.Marshal(a.Choices)
	}
	return json.Marshal(a.Text)
}

func (a *Answer) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = TextAnswer(s)
		return nil
	}
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return err
	}
	*a = ChoiceAnswer(ids...)
	return nil
}

// AnswerMap holds the live answers of one form instance, keyed by
// question id.
type AnswerMap map[string]Answer

// NewAnswerMap builds the default answer state for a schema: every
// checkbox question starts with an empty id set, everything else is
// simply absent.
func NewAnswerMap(schema Schema) AnswerMap {
	answers := make(AnswerMap)
	for _, q := range schema.Questions() {
		if q.Type == TypeCheckbox {
			answers[q.ID] = ChoiceAnswer()
		}
	}
	return answers
}

// DecodeAnswers normalizes an untyped submission payload into an
// AnswerMap, coercing each value by the shape of the question it
// references. Keys not present in the schema and values of the wrong
// shape are dropped rather than rejected.
func DecodeAnswers(schema Schema, payload map[string]any) AnswerMap {
	answers := NewAnswerMap(schema)
	for _, q := range schema.Questions() {
		raw, ok := payload[q.ID]
		if !ok {
			continue
		}
		if q.Type == TypeCheckbox {
			items, ok := raw.([]any)
			if !ok {
				continue
			}
			ids := make([]string, 0, len(items))
			for _, it := range items {
				if id, ok := it.(string); ok {
					ids = append(ids, id)
				}
			}
			answers[q.ID] = ChoiceAnswer(ids...)
			continue
		}
		if s, ok := raw.(string); ok {
			answers[q.ID] = TextAnswer(s)
		}
	}
	return answers
}
