package response

import (
	"errors"
	"net/http"

	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/domain/address"
	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/domain/auth"
	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/domain/clock"
	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/domain/contract"
	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/domain/diary"
	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/domain/document"
	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/domain/evaluation"
	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/domain/justification"
	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/domain/user"
	"github.com/checkpoint-estagio/checkpoint-backend-go/internal/pkg/validator"
)

type geofencePayload struct {
	JustificationID int64   `json:"id_justificativa"`
	DistanceMeters  float64 `json:"distancia_metros"`
	AllowedRadius   int     `json:"raio_permitido_metros"`
}

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	var geofenceErr *clock.GeofenceViolationError
	if errors.As(err, &geofenceErr) {
		GeofenceRejected(w, geofenceErr.Error(), geofencePayload{
			JustificationID: geofenceErr.JustificationID,
			DistanceMeters:  geofenceErr.DistanceMeters,
			AllowedRadius:   geofenceErr.AllowedRadius,
		})
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrTooManyAttempts):
		TooManyRequests(w, err.Error())

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrMatriculaExists):
		Conflict(w, "Matricula already registered")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrStaffAccessRequired):
		Forbidden(w, "Staff access required")
	case errors.Is(err, user.ErrInvalidRole):
		BadRequest(w, err.Error(), nil)

	// Contract and address domain errors
	case errors.Is(err, contract.ErrContractNotFound):
		NotFound(w, "Contract not found")
	case errors.Is(err, contract.ErrNoActiveContract):
		NotFound(w, "Student has no active contract")
	case errors.Is(err, contract.ErrStudentInvalid),
		errors.Is(err, contract.ErrProfessorInvalid):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, address.ErrAddressNotFound):
		NotFound(w, "Address not found")

	// Attendance domain errors
	case errors.Is(err, clock.ErrPontoNotFound):
		NotFound(w, "Clock entry not found")
	case errors.Is(err, clock.ErrNoOpenEntry):
		NotFound(w, "No open clock entry")

	// Justification domain errors
	case errors.Is(err, justification.ErrJustificationNotFound):
		NotFound(w, "Justification not found")
	case errors.Is(err, justification.ErrAlreadyResolved):
		Conflict(w, "Justification already resolved")
	case errors.Is(err, justification.ErrInvalidStatus):
		BadRequest(w, err.Error(), nil)

	// Diary domain errors
	case errors.Is(err, diary.ErrDiaryNotFound):
		NotFound(w, "Diary entry not found")
	case errors.Is(err, diary.ErrAlreadyReviewed):
		Conflict(w, "Diary entry already reviewed")
	case errors.Is(err, diary.ErrInvalidStatus):
		BadRequest(w, err.Error(), nil)

	// Evaluation domain errors
	case errors.Is(err, evaluation.ErrEvaluationNotFound):
		NotFound(w, "Evaluation not found")
	case errors.Is(err, evaluation.ErrAlreadyDone):
		Conflict(w, "Evaluation already concluded")

	// Document domain errors
	case errors.Is(err, document.ErrDocumentNotFound):
		NotFound(w, "Document not found")
	case errors.Is(err, document.ErrAlreadyReviewed):
		Conflict(w, "Document already reviewed")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
