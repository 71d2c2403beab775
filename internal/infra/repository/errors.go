package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-booking/internal/httperr"
)

var (
	ErrDuplicate        = httperr.ErrConflict("duplicate_record")
	ErrInvalidReference = httperr.ErrBusiness("invalid_reference")
)

// translate maps driver and gorm failures to domain errors.
// notFound is returned for gorm.ErrRecordNotFound; anything unknown passes through.
func translate(err error, notFound error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return ErrInvalidReference
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return ErrDuplicate
		case "23503":
			return ErrInvalidReference
		case "23502", "23514":
			return httperr.ErrBusiness("invalid_request")
		}
	}

	return err
}
