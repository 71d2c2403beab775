package httperr

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

var statusByKind = map[Kind]int{
	KindBadRequest:      http.StatusBadRequest,
	KindUnauthenticated: http.StatusUnauthorized,
	KindForbidden:       http.StatusForbidden,
	KindNotFound:        http.StatusNotFound,
	KindConflict:        http.StatusConflict,
	KindUnavailable:     http.StatusServiceUnavailable,
	KindTooManyRequests: http.StatusTooManyRequests,
}

var messages = map[string]string{
	"forbidden":               "You are not allowed to perform this action.",
	"invalid_credentials":     "Incorrect username or password.",
	"invalid_token":           "Could not validate credentials.",
	"user_not_found":          "User not found.",
	"username_taken":          "Username already registered.",
	"email_taken":             "Email already registered.",
	"session_unavailable":     "Session is not available.",
	"session_mismatch":        "Session does not match the requested master or service.",
	"session_not_found":       "Session not found.",
	"session_has_booking":     "Session has an active appointment.",
	"outside_shift":           "Session does not fit any shift of that day.",
	"appointment_not_found":   "Appointment not found.",
	"invalid_state":           "Appointment cannot change to that status.",
	"master_not_found":        "Master profile not found.",
	"service_not_found":       "Service not found.",
	"shift_not_found":         "Shift not found.",
	"review_not_found":        "Review not found.",
	"review_exists":           "This appointment already has a review.",
	"review_master_mismatch":  "Review master does not match the appointment.",
	"appointment_cancelled":   "Cancelled appointments cannot be reviewed.",
	"user_not_master":         "User does not exist or is not a master.",
	"master_profile_exists":   "User already has a master profile.",
	"invalid_date":            "Invalid date format. Use YYYY-MM-DD.",
	"invalid_time_range":      "End time must be after start time.",
	"invalid_period":          "Invalid period. Use day, week, month, or year.",
	"invalid_pagination":      "skip and limit must be non-negative.",
	"invalid_image":           "Image could not be decoded.",
	"avatar_storage_disabled": "Avatar storage is not configured.",
	"duplicate_record":        "Record already exists.",
	"invalid_reference":       "Referenced record does not exist.",
	"too_many_requests":       "Too many requests.",
	"internal_error":          "Internal server error.",
	"invalid_request":         "Invalid request.",
	"missing_authorization":   "Missing authorization header.",
	"invalid_authorization":   "Invalid authorization header.",
	"invalid_role":            "Role must be client or master.",
	"invalid_id":              "Invalid id.",
	"invalid_rating":          "Rating must be between 1 and 5.",
}

func messageFor(code string) string {
	if m, ok := messages[code]; ok {
		return m
	}
	return strings.ReplaceAll(code, "_", " ")
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

// Abort writes the error and stops the gin handler chain.
func Abort(c *gin.Context, err error) {
	Respond(c, err)
	c.Abort()
}

// Respond maps any error returned by a use case to its HTTP response.
// Errors that are not BusinessError are logged and hidden behind internal_error.
func Respond(c *gin.Context, err error) {
	var be BusinessError
	if errors.As(err, &be) {
		status, ok := statusByKind[be.Kind]
		if !ok {
			status = http.StatusBadRequest
		}
		Write(c, status, be.Code, messageFor(be.Code))
		return
	}

	log.Error().
		Err(err).
		Str("method", c.Request.Method).
		Str("path", c.FullPath()).
		Msg("unhandled error")

	Internal(c, "internal_error", messageFor("internal_error"))
}
