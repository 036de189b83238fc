package api

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-chi/render"
)

// FieldErrorResponse is the form-level error surface: field-scoped messages
// plus the submitted values echoed back so the client does not lose them.
type FieldErrorResponse struct {
	Errors map[string][]string `json:"errors"`
	Values map[string]string   `json:"values"`
}

// redirectToLogin sends the caller to the login endpoint with the attempted
// URL preserved, shaped exactly as {login_path}?next={original_path}.
func redirectToLogin(w http.ResponseWriter, r *http.Request, loginPath string) {
	http.Redirect(w, r, fmt.Sprintf("%s?next=%s", loginPath, r.URL.RequestURI()), http.StatusFound)
}

// renderFieldError attaches a single field-scoped error without discarding
// the other submitted field values.
func renderFieldError(w http.ResponseWriter, r *http.Request, field, message string, form url.Values) {
	values := make(map[string]string, len(form))
	for key := range form {
		values[key] = form.Get(key)
	}

	render.Status(r, http.StatusUnprocessableEntity)
	render.JSON(w, r, FieldErrorResponse{
		Errors: map[string][]string{field: {message}},
		Values: values,
	})
}
