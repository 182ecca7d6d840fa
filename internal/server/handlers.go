package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrymomot/letterdrop/internal/auth"
	"github.com/dmitrymomot/letterdrop/internal/newsletter"
	"github.com/dmitrymomot/letterdrop/internal/subscription"
	"github.com/dmitrymomot/letterdrop/pkg/logger"
	"github.com/dmitrymomot/letterdrop/pkg/validator"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.healthcheck(r.Context()); err != nil {
		s.log.ErrorContext(r.Context(), "healthcheck failed",
			logger.Error(err),
			logger.Component("server"),
		)
		writeJSON(w, http.StatusServiceUnavailable, response{
			Status: "error",
			Error:  &errorDetail{Code: "unavailable"},
		})
		return
	}
	writeOK(w)
}

// handleSubscribe accepts a form-encoded registration {name, email}.
func (s *Server) handleSubscribe(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeClientError(w, http.StatusBadRequest, "bad_request", "malformed form data", nil)
		return
	}

	err := s.subscriptions.Subscribe(r.Context(), r.PostFormValue("name"), r.PostFormValue("email"))
	switch {
	case err == nil:
		writeOK(w)
	case validator.IsValidationError(err):
		writeClientError(w, http.StatusBadRequest, "validation_failed", "invalid name or email", validationFields(err))
	default:
		s.log.ErrorContext(r.Context(), "failed to register subscriber",
			logger.Error(err),
			logger.Component("server"),
		)
		writeServerError(w)
	}
}

// handleConfirm applies the confirmation token from the query string. An
// unknown token is the caller's fault and maps to 401, never to 500.
func (s *Server) handleConfirm(w http.ResponseWriter, r *http.Request) {
	confirmationToken := r.URL.Query().Get("subscription_token")
	if confirmationToken == "" {
		writeClientError(w, http.StatusBadRequest, "bad_request", "subscription_token is required", nil)
		return
	}

	err := s.subscriptions.Confirm(r.Context(), confirmationToken)
	switch {
	case err == nil:
		writeOK(w)
	case errors.Is(err, subscription.ErrUnknownToken):
		writeClientError(w, http.StatusUnauthorized, "unauthorized", "invalid confirmation token", nil)
	default:
		s.log.ErrorContext(r.Context(), "failed to confirm subscriber",
			logger.Error(err),
			logger.Component("server"),
		)
		writeServerError(w)
	}
}

// publishRequest mirrors the issue payload: a title plus HTML and plain-text
// renderings of the content.
type publishRequest struct {
	Title   string `json:"title"`
	Content struct {
		HTML string `json:"html"`
		Text string `json:"text"`
	} `json:"content"`
}

// handlePublish broadcasts a newsletter issue. Credentials come from HTTP
// Basic auth; a missing or rejected pair gets the Basic challenge back so
// clients know how to authenticate.
func (s *Server) handlePublish(w http.ResponseWriter, r *http.Request) {
	username, password, ok := r.BasicAuth()
	if !ok {
		writeBasicChallenge(w)
		return
	}

	var req publishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeClientError(w, http.StatusBadRequest, "bad_request", "malformed JSON body", nil)
		return
	}

	if err := validator.Apply(
		validator.RequiredTrimmed("title", req.Title),
	); err != nil {
		writeClientError(w, http.StatusBadRequest, "validation_failed", "invalid issue payload", validationFields(err))
		return
	}

	err := s.newsletters.Publish(r.Context(),
		newsletter.Credentials{Username: username, Password: password},
		newsletter.Issue{Title: req.Title, BodyHTML: req.Content.HTML, BodyText: req.Content.Text},
	)
	switch {
	case err == nil:
		writeOK(w)
	case errors.Is(err, auth.ErrInvalidCredentials):
		writeBasicChallenge(w)
	default:
		s.log.ErrorContext(r.Context(), "failed to publish newsletter issue",
			logger.Error(err),
			logger.Component("server"),
		)
		writeServerError(w)
	}
}

// writeBasicChallenge rejects the request with the Basic auth challenge. The
// body is identical whether the username was unknown or the password wrong.
func writeBasicChallenge(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Basic realm="publish"`)
	writeClientError(w, http.StatusUnauthorized, "unauthorized", "", nil)
}

// validationFields flattens ValidationErrors into a field -> messages map for
// the response body.
func validationFields(err error) map[string][]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	fields := make(map[string][]string, len(verrs))
	for _, verr := range verrs {
		fields[verr.Field] = append(fields[verr.Field], verr.Message)
	}
	return fields
}
