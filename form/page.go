package form

import (
	"bytes"
	"html/template"
	"io"

	"github.com/rnbwlabs/survey/i18n"
)

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="{{.Locale}}">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<link rel="stylesheet" href="/static/style.css">
</head>
<body class="theme-{{.Theme}}">
<header>
<h1>{{.Title}}</h1>
<nav class="locales">{{range .Locales}}<a href="/?locale={{.}}&theme={{$.Theme}}">{{.}}</a> {{end}}</nav>
<a class="theme-toggle" href="/?locale={{.Locale}}&theme={{.OtherTheme}}">{{.ThemeLabel}}</a>
</header>
<main>
{{if .Success}}
<div class="success">
<h2>{{.SuccessTitle}}</h2>
<p>{{.SuccessBody}}</p>
<a class="btn" href="/?locale={{.Locale}}&theme={{.Theme}}">{{.SubmitAnother}}</a>
</div>
{{else}}
<p class="intro">{{.Intro}}</p>
{{if .GlobalError}}<div class="banner-error"><p>{{.GlobalError}}</p></div>{{end}}
<form method="post" action="/api/submit-survey" id="survey-form">
{{range .Sections}}
<fieldset>
<legend>{{.Title}}</legend>
{{range .Controls}}{{.}}{{end}}
</fieldset>
{{end}}
<button type="submit"{{if $.Submitting}} disabled{{end}}>{{$.SubmitLabel}}</button>
</form>
{{end}}
</main>
</body>
</html>
`))

type sectionView struct {
	Title    string
	Controls []template.HTML
}

type pageView struct {
	Locale        string
	Locales       []string
	Theme         string
	OtherTheme    string
	ThemeLabel    string
	Title         string
	Intro         string
	GlobalError   string
	SubmitLabel   string
	Submitting    bool
	Success       bool
	SuccessTitle  string
	SuccessBody   string
	SubmitAnother string
	Sections      []sectionView
}

// RenderPage writes the whole survey page for the form's current state:
// the editable form with inline errors, the submit control disabled
// while a submission is in flight, or the terminal success card.
func (f *Form) RenderPage(w io.Writer) error {
	view := pageView{
		Locale:        f.locale,
		Locales:       i18n.Locales(),
		Theme:         f.theme,
		OtherTheme:    "dark",
		Title:         i18n.Resolve("page.title", "", f.locale),
		Intro:         i18n.Resolve("page.intro", "", f.locale),
		GlobalError:   f.globalErr,
		SubmitLabel:   i18n.Resolve("page.submit", "", f.locale),
		Submitting:    f.state == Submitting,
		Success:       f.state == Success,
		SuccessTitle:  i18n.Resolve("page.successTitle", "", f.locale),
		SuccessBody:   i18n.Resolve("page.successBody", "", f.locale),
		SubmitAnother: i18n.Resolve("page.submitAnother", "", f.locale),
	}
	if view.Submitting {
		view.SubmitLabel = i18n.Resolve("page.submitting", "", f.locale)
	}
	view.ThemeLabel = i18n.Resolve("page.darkMode", "", f.locale)
	if f.theme == "dark" {
		view.OtherTheme = "light"
		view.ThemeLabel = i18n.Resolve("page.lightMode", "", f.locale)
	}

	for _, sec := range f.schema {
		sv := sectionView{Title: i18n.Resolve(sec.TitleKey, sec.Title, f.locale)}
		for _, q := range sec.Questions {
			var buf bytes.Buffer
			if err := f.RenderQuestion(q, &buf); err != nil {
				return err
			}
			sv.Controls = append(sv.Controls, template.HTML(buf.String()))
		}
		view.Sections = append(view.Sections, sv)
	}

	return pageTemplate.Execute(w, view)
}
