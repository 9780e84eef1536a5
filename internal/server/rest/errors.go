package rest

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/videoclub/internal/common"
)

type errorMapping struct {
	err    error
	status int
	msg    string
}

// errorMappings is matched in order with errors.Is. An empty msg means the
// sentinel's own text is shown.
var errorMappings = []errorMapping{
	{common.ErrMissingToken, http.StatusUnauthorized, "Token is missing"},
	{common.ErrInvalidToken, http.StatusUnauthorized, "Token is invalid"},

	{common.ErrInvalidRequest, http.StatusBadRequest, ""},
	{common.ErrMissingCredentials, http.StatusBadRequest, ""},
	{common.ErrMissingTitle, http.StatusBadRequest, ""},
	{common.ErrMissingCategory, http.StatusBadRequest, ""},
	{common.ErrPasswordTooLong, http.StatusBadRequest, ""},
	{common.ErrEmailTaken, http.StatusBadRequest, ""},
	{common.ErrAlreadyRenting, http.StatusBadRequest, ""},

	{common.ErrInvalidCredentials, http.StatusForbidden, ""},

	{common.ErrUserNotFound, http.StatusNotFound, ""},
	{common.ErrTitleNotFound, http.StatusNotFound, ""},
	{common.ErrGenreNotFound, http.StatusNotFound, ""},
	{common.ErrNotRenting, http.StatusNotFound, ""},
}

// errorStatus maps a service error to a status code and a client message.
// Only the matched sentinel's text reaches the client, never the wrapped
// cause. Unknown errors are reported as 500.
func errorStatus(err error) (int, string) {
	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			if m.msg == "" {
				return m.status, m.err.Error()
			}
			return m.status, m.msg
		}
	}

	return http.StatusInternalServerError, common.ErrorInternal.Error()
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := errorStatus(err)

	if status >= http.StatusInternalServerError {
		s.logger.Error(r.Context(), "request failed",
			"request_id", requestID(r.Context()),
			"path", r.URL.Path,
			"error", err,
		)
	} else {
		s.logger.Debug(r.Context(), "request rejected",
			"request_id", requestID(r.Context()),
			"path", r.URL.Path,
			"status", status,
			"error", err,
		)
	}

	writeJSON(w, status, envelope{OK: false, Message: msg})
}
