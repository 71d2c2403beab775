package httperr

import "errors"

type Kind int

const (
	KindBadRequest Kind = iota + 1
	KindUnauthenticated
	KindForbidden
	KindNotFound
	KindConflict
	KindUnavailable
	KindTooManyRequests
)

// BusinessError is a domain failure with a stable code the API exposes as error_code.
type BusinessError struct {
	Kind Kind
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Kind: KindBadRequest, Code: code}
}

func ErrUnauthenticated(code string) error {
	return BusinessError{Kind: KindUnauthenticated, Code: code}
}

func ErrForbidden(code string) error {
	return BusinessError{Kind: KindForbidden, Code: code}
}

func ErrNotFound(code string) error {
	return BusinessError{Kind: KindNotFound, Code: code}
}

func ErrConflict(code string) error {
	return BusinessError{Kind: KindConflict, Code: code}
}

func ErrUnavailable(code string) error {
	return BusinessError{Kind: KindUnavailable, Code: code}
}

func ErrTooManyRequests(code string) error {
	return BusinessError{Kind: KindTooManyRequests, Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
