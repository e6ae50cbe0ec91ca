// Package report turns a raw submission payload into the human-readable
// email body. The payload is untyped at this boundary: it just arrived
// over the wire and may be partial or malformed, so formatting has to be
// total and must never panic.
package report

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/rnbwlabs/survey/i18n"
	"github.com/rnbwlabs/survey/model"
)

// NotProvidedKey resolves to the marker emitted for required questions
// the payload carries no answer for.
const NotProvidedKey = "report.notProvided"

// SubmittedAtField mirrors the payload key the client stamps its
// submission time into. The value is echoed verbatim, never
// regenerated, so formatting the same payload twice yields identical
// bytes.
const SubmittedAtField = "submittedAt"

// Format walks the schema in order and renders each section title and
// each answered question as HTML. Option ids are resolved to display
// labels with a raw-id fallback; optional unanswered questions are
// omitted, required unanswered ones get the "not provided" marker.
func Format(schema model.Schema, payload map[string]any) string {
	var b bytes.Buffer
	b.WriteString("<h2>Survey Submission</h2>\n")

	for _, sec := range schema {
		var fields bytes.Buffer
		for _, q := range sec.Questions {
			value, answered := formatAnswer(q, payload[q.ID])
			if !answered && !q.Required {
				continue
			}
			if !answered {
				value = i18n.Resolve(NotProvidedKey, "", i18n.DefaultLocale)
			}
			fields.WriteString("<p><strong>")
			fields.WriteString(template.HTMLEscapeString(q.Title))
			fields.WriteString(":</strong> ")
			fields.WriteString(template.HTMLEscapeString(value))
			fields.WriteString("</p>\n")
		}
		if fields.Len() == 0 {
			continue
		}
		b.WriteString("<h3>")
		b.WriteString(template.HTMLEscapeString(sec.Title))
		b.WriteString("</h3>\n")
		b.Write(fields.Bytes())
	}

	if at, ok := payload[SubmittedAtField].(string); ok && at != "" {
		b.WriteString("<p>Submitted on: ")
		b.WriteString(template.HTMLEscapeString(at))
		b.WriteString("</p>\n")
	}
	return b.String()
}

// formatAnswer renders one raw answer value by the shape of its
// question. The second return is false when the payload carries no
// usable answer.
func formatAnswer(q model.Question, raw any) (string, bool) {
	switch q.Type {
	case model.TypeRadio:
		id, ok := raw.(string)
		if !ok || id == "" {
			return "", false
		}
		return q.OptionLabel(id), true

	case model.TypeCheckbox:
		ids := stringSlice(raw)
		if len(ids) == 0 {
			return "", false
		}
		labels := make([]string, len(ids))
		for i, id := range ids {
			labels[i] = q.OptionLabel(id)
		}
		return strings.Join(labels, ", "), true

	default: // text, textarea, email
		s, ok := raw.(string)
		if !ok || s == "" {
			return "", false
		}
		return s, true
	}
}

// stringSlice accepts both the decoded-JSON shape ([]any of strings)
// and the native one ([]string); anything else is treated as empty.
func stringSlice(raw any) []string {
	switch v := raw.(type) {
	case []string:
		return v
	case []any:
		ids := make([]string, 0, len(v))
		for _, it := range v {
			if id, ok := it.(string); ok {
				ids = append(ids, id)
			}
		}
		return ids
	}
	return nil
}
