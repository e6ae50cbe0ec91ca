package httpx

import (
	"net/http"

	"github.com/go-chi/render"
	"github.com/rnbwlabs/survey/log"
)

// Will log an error, and send a JSON failure response with status 500
// and a generic message; the raw error never reaches the client
func LogInternalError(w http.ResponseWriter, r *http.Request, code string, err error) {
	log.Errorf("%s: %s", code, err)
	render.Status(r, http.StatusInternalServerError)
	render.JSON(w, r, Failure("There was an error submitting your survey. Please try again."))
}

// Will log an error code at the given level, and send
// an HTTP response with status and default text
func LogStatus(w http.ResponseWriter, status int, level log.Level, code string) {
	log.Log(level, code)
	http.Error(w, http.StatusText(status), status)
}

// Failure is the JSON error body shape shared by all failing API
// responses.
func Failure(message string) map[string]any {
	return map[string]any{
		"success": false,
		"message": message,
	}
}
