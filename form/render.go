package form

import (
	"fmt"
	"html/template"
	"io"

	"github.com/rnbwlabs/survey/i18n"
	"github.com/rnbwlabs/survey/model"
)

// One template per question type; rendering a question is a single
// lookup in this table. Adding a question to the schema never touches
// rendering code.
var controlTemplates = map[model.QuestionType]*template.Template{
	model.TypeText:     control(`<input id="{{.ID}}" name="{{.ID}}" type="text" value="{{.Value}}">`),
	model.TypeEmail:    control(`<input id="{{.ID}}" name="{{.ID}}" type="email" value="{{.Value}}">`),
	model.TypeTextarea: control(`<textarea id="{{.ID}}" name="{{.ID}}" rows="4">{{.Value}}</textarea>`),
	model.TypeRadio: control(`{{range .Options}}
	<label class="choice"><input type="radio" name="{{$.ID}}" value="{{.ID}}"{{if .Selected}} checked{{end}}> {{.Label}}</label>
{{end}}`),
	model.TypeCheckbox: control(`{{range .Options}}
	<label class="choice"><input type="checkbox" name="{{$.ID}}" value="{{.ID}}"{{if .Selected}} checked{{end}}> {{.Label}}</label>
{{end}}`),
}

func control(body string) *template.Template {
	const frame = `<div class="field{{if .Error}} field-error{{end}}">
<label for="{{.ID}}">{{.Title}}{{if .Required}} *{{end}}</label>
` + "{{template \"control\" .}}" + `
{{if .Error}}<p class="error-message">{{.Error}}</p>{{end}}
</div>`
	t := template.Must(template.New("field").Parse(frame))
	template.Must(t.New("control").Parse(body))
	return t
}

type optionView struct {
	ID       string
	Label    string
	Selected bool
}

type questionView struct {
	ID       string
	Title    string
	Required bool
	Value    string
	Error    string
	Options  []optionView
}

// RenderQuestion renders one question with its current answer and
// inline error. Pure string building; no I/O.
func (f *Form) RenderQuestion(q model.Question, w io.Writer) error {
	tmpl, ok := controlTemplates[q.Type]
	if !ok {
		return fmt.Errorf("form: no control for question type %q", q.Type)
	}

	ans := f.answers[q.ID]
	view := questionView{
		ID:       q.ID,
		Title:    i18n.Resolve(q.TitleKey, q.Title, f.locale),
		Required: q.Required,
		Value:    ans.Text,
		Error:    f.fieldErrs[q.ID],
	}
	for _, opt := range q.Options {
		view.Options = append(view.Options, optionView{
			ID:       opt.ID,
			Label:    i18n.Resolve(opt.LabelKey, opt.Label, f.locale),
			Selected: selected(q, ans, opt.ID),
		})
	}
	return tmpl.Execute(w, view)
}

func selected(q model.Question, ans model.Answer, optionID string) bool {
	if q.Type == model.TypeCheckbox {
		for _, id := range ans.Choices {
			if id == optionID {
				return true
			}
		}
		return false
	}
	return ans.Text == optionID
}
