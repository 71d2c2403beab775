package validators

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_.-]{3,50}$`)

// RegisterCustomValidations adds hhmm, ymd and username to v.
func RegisterCustomValidations(v *validator.Validate) {
	_ = v.RegisterValidation("hhmm", validateClock)
	_ = v.RegisterValidation("ymd", validateDate)
	_ = v.RegisterValidation("username", validateUsername)
}

// RegisterWithGin installs the custom rules on gin's binding engine.
func RegisterWithGin() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterCustomValidations(v)
	}
}

func validateClock(fl validator.FieldLevel) bool {
	_, err := time.Parse("15:04", fl.Field().String())
	return err == nil
}

func validateDate(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01-02", fl.Field().String())
	return err == nil
}

func validateUsername(fl validator.FieldLevel) bool {
	return usernamePattern.MatchString(fl.Field().String())
}

// Translate turns binding errors into a short human message.
func Translate(err error) string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return "Invalid request body."
	}

	messages := make([]string, 0, len(ve))
	for _, fe := range ve {
		field := fe.Field()
		switch fe.Tag() {
		case "required":
			messages = append(messages, field+" is required")
		case "email":
			messages = append(messages, "invalid email format")
		case "min":
			messages = append(messages, field+" must be at least "+fe.Param())
		case "max":
			messages = append(messages, field+" must be at most "+fe.Param())
		case "gte":
			messages = append(messages, field+" must be greater than or equal to "+fe.Param())
		case "gt":
			messages = append(messages, field+" must be greater than "+fe.Param())
		case "oneof":
			messages = append(messages, field+" must be one of: "+fe.Param())
		case "hhmm":
			messages = append(messages, field+" must be in HH:MM format (e.g., 14:00)")
		case "ymd":
			messages = append(messages, field+" must be in YYYY-MM-DD format")
		case "username":
			messages = append(messages, field+" must be 3-50 letters, digits, '_', '.' or '-'")
		default:
			messages = append(messages, field+" is invalid")
		}
	}
	return strings.Join(messages, ", ")
}
