package routes

import (
	"net/http"
	"strings"

	"github.com/go-chi/render"
	"github.com/google/uuid"
	"github.com/rnbwlabs/survey/app"
	"github.com/rnbwlabs/survey/form"
	"github.com/rnbwlabs/survey/httpx"
	"github.com/rnbwlabs/survey/log"
	"github.com/rnbwlabs/survey/mail"
	"github.com/rnbwlabs/survey/model"
	"github.com/rnbwlabs/survey/report"
)

// GetSurvey serves the full schema: every section, question and option,
// in order. No lookup, no I/O; the schema is a process constant.
func GetSurvey(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, app.Schema)
	}
}

// SurveyPage renders the survey form server-side, honoring the
// ?locale= and ?theme= toggles.
func SurveyPage(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		locale := r.URL.Query().Get("locale")
		if locale == "" {
			locale = app.DefaultLocale
		}

		f := form.New(app.Schema, http.DefaultClient, "/api/submit-survey", locale)
		f.SetTheme(r.URL.Query().Get("theme"))
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := f.RenderPage(w); err != nil {
			log.Errorf("survey_page.render: %s", err)
		}
	}
}

// SubmitSurvey accepts one submission: decode, re-validate against the
// same ruleset the client used, format the report and dispatch it by
// email. Nothing is stored; a failed dispatch just asks the visitor to
// try again.
func SubmitSurvey(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, err := decodePayload(r, app.Schema)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "submit_survey.parse_body")
			return
		}

		answers := model.DecodeAnswers(app.Schema, payload)
		if fieldErrs := app.Rules.Validate(answers); len(fieldErrs) > 0 {
			log.Debugf("submit_survey.validate: %d invalid answers", len(fieldErrs))
			render.Status(r, http.StatusBadRequest)
			body := httpx.Failure("Some answers are missing or invalid.")
			body["errors"] = fieldErrs
			render.JSON(w, r, body)
			return
		}

		ref := uuid.NewString()
		msg := mail.Message{
			From:     app.EmailFrom,
			FromName: app.EmailFromName,
			To:       app.EmailRecipient,
			Subject:  "New RNBW Survey Submission [" + ref + "]",
			HTML:     report.Format(app.Schema, payload),
		}
		err = app.Send(r.Context(), msg)
		if err != nil {
			// keep the reference in the log so a failed dispatch can
			// still be correlated
			httpx.LogInternalError(w, r, "submit_survey.send_mail "+ref, err)
			return
		}

		log.Infof("submit_survey.dispatched: %s", ref)
		render.JSON(w, r, map[string]any{
			"success": true,
			"message": "Survey submitted successfully",
			"ref":     ref,
		})
	}
}

// decodePayload reads a submission from either wire shape: the JSON
// body the pipeline sends, or the urlencoded body a plain browser post
// of the rendered page produces. Multi-valued form keys become checkbox
// id sets; everything funnels into the same untyped payload map.
func decodePayload(r *http.Request, schema model.Schema) (map[string]any, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var payload map[string]any
		err := render.DecodeJSON(r.Body, &payload)
		return payload, err
	}

	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	payload := make(map[string]any, len(r.PostForm))
	for _, q := range schema.Questions() {
		values, ok := r.PostForm[q.ID]
		if !ok {
			continue
		}
		if q.Type == model.TypeCheckbox {
			ids := make([]any, len(values))
			for i, v := range values {
				ids[i] = v
			}
			payload[q.ID] = ids
			continue
		}
		payload[q.ID] = values[0]
	}
	return payload, nil
}
