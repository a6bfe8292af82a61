package server

import (
	"net/http"

	"github.com/kmorton/resume-tailor/internal/faults"
)

// HTTPStatus returns the appropriate HTTP status code for an error based on
// its fault kind. Unrecognized errors are treated as internal.
func HTTPStatus(err error) int {
	switch faults.KindOf(err) {
	case faults.KindInvalidInput, faults.KindInvalidURL, faults.KindInvalidURLFormat,
		faults.KindInvalidMasterResume:
		return http.StatusBadRequest
	case faults.KindAuthError:
		return http.StatusUnauthorized
	case faults.KindTimeout:
		return http.StatusGatewayTimeout
	case faults.KindNetworkError:
		return http.StatusBadGateway
	case faults.KindExtractionFailed, faults.KindDescriptionMissing:
		return http.StatusUnprocessableEntity
	case faults.KindInvalidGeneratedResume, faults.KindGenerationFailed,
		faults.KindPDFGenerationFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
