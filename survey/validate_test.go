package survey

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rnbwlabs/survey/model"
)

func TestSchemaIsWellFormed(t *testing.T) {
	require.NoError(t, Schema.Check())
}

func testSchema() model.Schema {
	return model.Schema{
		{ID: "main", Title: "Main", Questions: []model.Question{
			{ID: "name", Type: model.TypeText, Title: "Name", Required: true},
			{ID: "nickname", Type: model.TypeText, Title: "Nickname"},
			{ID: "email", Type: model.TypeEmail, Title: "Email"},
			{ID: "interest", Type: model.TypeRadio, Title: "Interest", Required: true, Options: []model.QuestionOption{
				{ID: "a", Label: "Option A"},
				{ID: "b", Label: "Option B"},
			}},
			{ID: "features", Type: model.TypeCheckbox, Title: "Features", Required: true, Options: []model.QuestionOption{
				{ID: "x", Label: "Feature X"},
				{ID: "y", Label: "Feature Y"},
				{ID: "z", Label: "Feature Z"},
			}},
			{ID: "extras", Type: model.TypeCheckbox, Title: "Extras", Options: []model.QuestionOption{
				{ID: "p", Label: "P"},
			}},
		}},
	}
}

func validAnswers() model.AnswerMap {
	return model.AnswerMap{
		"name":     model.TextAnswer("Ann"),
		"interest": model.TextAnswer("a"),
		"features": model.ChoiceAnswer("x"),
		"extras":   model.ChoiceAnswer(),
	}
}

func TestValidate(t *testing.T) {
	rules := NewRuleSet(testSchema())

	t.Run("valid answers produce no errors", func(t *testing.T) {
		assert.Empty(t, rules.Validate(validAnswers()))
	})

	t.Run("empty answer map flags exactly the required questions", func(t *testing.T) {
		errs := rules.Validate(model.AnswerMap{})
		assert.Len(t, errs, 3)
		assert.Contains(t, errs, "name")
		assert.Contains(t, errs, "interest")
		assert.Contains(t, errs, "features")
	})

	t.Run("required text rejects the empty string", func(t *testing.T) {
		answers := validAnswers()
		answers["name"] = model.TextAnswer("")
		errs := rules.Validate(answers)
		assert.Len(t, errs, 1)
		assert.Contains(t, errs, "name")
	})

	t.Run("optional text accepts the empty string", func(t *testing.T) {
		answers := validAnswers()
		answers["nickname"] = model.TextAnswer("")
		assert.Empty(t, rules.Validate(answers))
	})

	t.Run("required radio rejects unset and empty", func(t *testing.T) {
		answers := validAnswers()
		delete(answers, "interest")
		assert.Contains(t, rules.Validate(answers), "interest")

		answers["interest"] = model.TextAnswer("")
		assert.Contains(t, rules.Validate(answers), "interest")
	})

	t.Run("radio rejects undeclared option ids", func(t *testing.T) {
		answers := validAnswers()
		answers["interest"] = model.TextAnswer("c")
		assert.Contains(t, rules.Validate(answers), "interest")
	})

	t.Run("required checkbox rejects the empty set", func(t *testing.T) {
		answers := validAnswers()
		answers["features"] = model.ChoiceAnswer()
		assert.Contains(t, rules.Validate(answers), "features")
	})

	t.Run("checkbox rejects undeclared ids even when optional", func(t *testing.T) {
		answers := validAnswers()
		answers["extras"] = model.ChoiceAnswer("q")
		assert.Contains(t, rules.Validate(answers), "extras")
	})

	t.Run("optional email accepts empty, rejects malformed", func(t *testing.T) {
		answers := validAnswers()
		answers["email"] = model.TextAnswer("")
		assert.Empty(t, rules.Validate(answers))

		answers["email"] = model.TextAnswer("not-an-address")
		assert.Contains(t, rules.Validate(answers), "email")

		answers["email"] = model.TextAnswer("ann@example.com")
		assert.Empty(t, rules.Validate(answers))
	})

	t.Run("required email rejects empty", func(t *testing.T) {
		rules := NewRuleSet(model.Schema{
			{ID: "s", Questions: []model.Question{
				{ID: "email", Type: model.TypeEmail, Title: "Email", Required: true},
			}},
		})
		assert.Contains(t, rules.Validate(model.AnswerMap{}), "email")
	})

	t.Run("unknown answer keys are ignored", func(t *testing.T) {
		answers := validAnswers()
		answers["removedQuestion"] = model.TextAnswer("stale value")
		assert.Empty(t, rules.Validate(answers))
	})

	t.Run("messages are localized", func(t *testing.T) {
		errs := rules.ValidateLocale(model.AnswerMap{}, "it")
		assert.Equal(t, "Questo campo è obbligatorio", errs["name"])

		errs = rules.Validate(model.AnswerMap{})
		assert.Equal(t, "This field is required", errs["name"])
	})
}
