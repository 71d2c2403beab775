package pagination

import (
	"strconv"

	"github.com/BruksfildServices01/salon-booking/internal/httperr"
)

const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

var ErrInvalid = httperr.ErrBusiness("invalid_pagination")

// Page is a skip/limit window over a listing ordered by id ascending.
type Page struct {
	Skip  int
	Limit int
}

func Default() Page {
	return Page{Skip: 0, Limit: DefaultLimit}
}

func New(skip, limit int) (Page, error) {
	if skip < 0 || limit < 0 {
		return Page{}, ErrInvalid
	}
	if limit == 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Page{Skip: skip, Limit: limit}, nil
}

// Parse reads raw query values; empty strings fall back to defaults.
func Parse(skipRaw, limitRaw string) (Page, error) {
	skip, limit := 0, DefaultLimit

	if skipRaw != "" {
		v, err := strconv.Atoi(skipRaw)
		if err != nil {
			return Page{}, ErrInvalid
		}
		skip = v
	}
	if limitRaw != "" {
		v, err := strconv.Atoi(limitRaw)
		if err != nil {
			return Page{}, ErrInvalid
		}
		limit = v
	}

	return New(skip, limit)
}
