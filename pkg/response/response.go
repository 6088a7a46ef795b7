// Package response writes the JSON, view, and plain-text bodies shared by
// handlers and middleware.
package response

import (
	"encoding/json"
	"net/http"
	"strconv"
)

type envelope struct {
	Status  int         `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

// Model is the data handed to a view.
type Model map[string]interface{}

// ViewBody is the rendered form of a view: its name plus its model.
type ViewBody struct {
	View  string `json:"view"`
	Model Model  `json:"model"`
}

// JSON writes v as the whole body.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// View writes a named view and its model with status 200.
func View(w http.ResponseWriter, name string, model Model) {
	if model == nil {
		model = Model{}
	}
	JSON(w, http.StatusOK, ViewBody{View: name, Model: model})
}

// Text writes a text/plain body.
func Text(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(body)) //nolint:errcheck
}

// Bool answers a literal true or false.
func Bool(w http.ResponseWriter, ok bool) {
	Text(w, http.StatusOK, strconv.FormatBool(ok))
}

// Error sends a JSON error envelope.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, envelope{Status: status, Message: message})
}

// ValidationError sends a 400 with a field-level error map.
func ValidationError(w http.ResponseWriter, errs map[string]string) {
	JSON(w, http.StatusBadRequest, envelope{
		Status:  http.StatusBadRequest,
		Message: "Validation failed",
		Errors:  errs,
	})
}

func Unauthorized(w http.ResponseWriter) {
	Error(w, http.StatusUnauthorized, "Login required")
}

func Forbidden(w http.ResponseWriter) {
	Error(w, http.StatusForbidden, "Forbidden")
}

func NotFound(w http.ResponseWriter) {
	Error(w, http.StatusNotFound, "Not found")
}
