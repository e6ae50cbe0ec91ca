package form

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rnbwlabs/survey/i18n"
	"github.com/rnbwlabs/survey/log"
	"github.com/rnbwlabs/survey/model"
)

// SubmittedAtField is the payload key carrying the client submission
// timestamp, alongside the question ids.
const SubmittedAtField = "submittedAt"

// Submit runs the whole pipeline for the current answers: validate,
// transmit, interpret. Validation failures return before any network
// call. Transport failures keep the answers and surface a generic,
// localized message; the raw error is only logged. There is no retry
// and no way to abort an in-flight request beyond ctx.
func (f *Form) Submit(ctx context.Context) (model.SubmissionResult, error) {
	if f.state == Submitting {
		return model.SubmissionResult{}, ErrSubmitInFlight
	}

	if fieldErrs := f.rules.ValidateLocale(f.answers, f.locale); len(fieldErrs) > 0 {
		f.state = EditingWithError
		f.fieldErrs = fieldErrs
		f.globalErr = ""
		return model.ValidationFailure(fieldErrs), nil
	}

	f.state = Submitting
	f.fieldErrs = nil
	f.globalErr = ""

	err := f.post(ctx)
	if err != nil {
		log.Errorf("form.submit: %s", err)
		f.state = EditingWithError
		f.globalErr = i18n.Resolve("page.transportError", "", f.locale)
		return model.TransportFailure(f.globalErr), nil
	}

	f.state = Success
	f.answers = model.NewAnswerMap(f.schema)
	return model.Success(), nil
}

func (f *Form) post(ctx context.Context) error {
	// every question id goes on the wire, answered or not, so the
	// endpoint always sees the full key set
	questions := f.schema.Questions()
	payload := make(map[string]any, len(questions)+1)
	for _, q := range questions {
		ans, ok := f.answers[q.ID]
		if !ok {
			if q.Type == model.TypeCheckbox {
				ans = model.ChoiceAnswer()
			} else {
				ans = model.TextAnswer("")
			}
		}
		payload[q.ID] = ans
	}
	payload[SubmittedAtField] = time.Now().UTC().Format(time.RFC3339)

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &statusError{resp.StatusCode}
	}
	return nil
}

type statusError struct {
	status int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("endpoint answered %d %s", e.status, http.StatusText(e.status))
}
