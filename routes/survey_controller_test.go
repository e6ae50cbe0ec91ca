package routes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rnbwlabs/survey/app"
	"github.com/rnbwlabs/survey/config"
	"github.com/rnbwlabs/survey/mail"
	"github.com/rnbwlabs/survey/survey"
)

type fakeSender struct {
	sent []mail.Message
	err  error
}

func (f *fakeSender) Send(ctx context.Context, msg mail.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

func testApp(sender mail.Sender) app.App {
	return app.App{
		Config: config.Config{
			DefaultLocale:  "en",
			EmailFrom:      "no-reply@rnbw.dev",
			EmailRecipient: "surveys@rnbw.dev",
		},
		Sender: sender,
		Schema: survey.Schema,
		Rules:  survey.NewRuleSet(survey.Schema),
	}
}

func validPayload() string {
	return `{
		"name": "Ann",
		"email": "ann@example.com",
		"interestLevel": "very-interested",
		"heardFrom": ["friend"],
		"importantFeatures": ["design", "battery"],
		"priceRange": "100-200",
		"purchaseIntent": "very-likely",
		"submittedAt": "2026-08-29T10:00:00Z"
	}`
}

func postSubmission(t *testing.T, a app.App, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/submit-survey", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	Wire(a).ServeHTTP(rec, req)
	return rec
}

func TestSubmitSurvey(t *testing.T) {
	t.Run("valid submission dispatches the report", func(t *testing.T) {
		sender := &fakeSender{}
		rec := postSubmission(t, testApp(sender), validPayload())

		require.Equal(t, http.StatusOK, rec.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, true, body["success"])
		assert.NotEmpty(t, body["ref"])

		require.Len(t, sender.sent, 1)
		msg := sender.sent[0]
		assert.Equal(t, "surveys@rnbw.dev", msg.To)
		assert.Equal(t, "no-reply@rnbw.dev", msg.From)
		// the reference is stamped into the subject for correlation
		assert.Equal(t, "New RNBW Survey Submission ["+body["ref"].(string)+"]", msg.Subject)
		assert.Contains(t, msg.HTML, "Very interested")
		assert.Contains(t, msg.HTML, "Sleek design and portability, Long battery life")
		assert.Contains(t, msg.HTML, "Submitted on: 2026-08-29T10:00:00Z")
	})

	t.Run("plain browser form posts are accepted", func(t *testing.T) {
		sender := &fakeSender{}
		values := url.Values{
			"name":              {"Ann"},
			"email":             {"ann@example.com"},
			"interestLevel":     {"very-interested"},
			"importantFeatures": {"design", "battery"},
			"priceRange":        {"100-200"},
			"purchaseIntent":    {"very-likely"},
		}
		req := httptest.NewRequest(http.MethodPost, "/api/submit-survey", strings.NewReader(values.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		Wire(testApp(sender)).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.Len(t, sender.sent, 1)
		// multi-valued keys arrive as checkbox id sets
		assert.Contains(t, sender.sent[0].HTML, "Sleek design and portability, Long battery life")
	})

	t.Run("browser form posts are validated too", func(t *testing.T) {
		sender := &fakeSender{}
		values := url.Values{"name": {"Ann"}}
		req := httptest.NewRequest(http.MethodPost, "/api/submit-survey", strings.NewReader(values.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		Wire(testApp(sender)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, sender.sent)
	})

	t.Run("invalid answers are rejected before any dispatch", func(t *testing.T) {
		sender := &fakeSender{}
		rec := postSubmission(t, testApp(sender), `{"name": ""}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		var body struct {
			Success bool              `json:"success"`
			Errors  map[string]string `json:"errors"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.False(t, body.Success)
		assert.Contains(t, body.Errors, "name")
		assert.Contains(t, body.Errors, "interestLevel")
		assert.Empty(t, sender.sent)
	})

	t.Run("malformed body is a bad request", func(t *testing.T) {
		rec := postSubmission(t, testApp(&fakeSender{}), `{not json`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("transport failure is a generic server error", func(t *testing.T) {
		sender := &fakeSender{err: errors.New("smtp: connection refused")}
		rec := postSubmission(t, testApp(sender), validPayload())

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, false, body["success"])
		// the raw transport error never reaches the client
		assert.NotContains(t, rec.Body.String(), "connection refused")
	})
}

func TestGetSurvey(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/survey", nil)
	rec := httptest.NewRecorder()
	Wire(testApp(&fakeSender{})).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var sections []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sections))
	require.NotEmpty(t, sections)
	assert.Equal(t, "contact", sections[0]["id"])
}

func TestSurveyPage(t *testing.T) {
	t.Run("default locale", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		Wire(testApp(&fakeSender{})).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, rec.Body.String(), "RNBW Device Survey")
	})

	t.Run("locale toggle", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/?locale=it", nil)
		rec := httptest.NewRecorder()
		Wire(testApp(&fakeSender{})).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Sondaggio sul dispositivo RNBW")
	})

	t.Run("theme toggle", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/?theme=dark", nil)
		rec := httptest.NewRecorder()
		Wire(testApp(&fakeSender{})).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `class="theme-dark"`)
	})
}
