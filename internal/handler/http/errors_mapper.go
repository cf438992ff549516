package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/notesync/internal/app"
	"github.com/MKhiriev/notesync/internal/service"
)

var errorStatusMap = map[error]int{
	ErrEmptyAuthorizationHeader: http.StatusUnauthorized,
	ErrInvalidSettings:          http.StatusBadRequest,
	service.ErrUnknownSyncKey:   http.StatusUnauthorized,
	service.ErrArchiveNotFound:  http.StatusNotFound,
}

var errorMessageMap = map[int]string{
	http.StatusUnauthorized:        app.MsgInvalidSyncKey,
	http.StatusBadRequest:          app.MsgInvalidDataProvided,
	http.StatusNotFound:            app.MsgArchiveNotFound,
	http.StatusInternalServerError: app.MsgInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with the status mapped from err and its public message.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	http.Error(w, errorMessageMap[status], status)
}
