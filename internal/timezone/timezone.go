package timezone

import (
	"time"

	"github.com/BruksfildServices01/salon-booking/internal/httperr"
)

const DefaultTimezone = "UTC"

var (
	ErrInvalidDate  = httperr.ErrBusiness("invalid_date")
	ErrInvalidRange = httperr.ErrBusiness("invalid_time_range")
)

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func NowIn(loc *time.Location) time.Time {
	return time.Now().In(loc)
}

// ParseDay parses YYYY-MM-DD as a calendar day in loc.
func ParseDay(s string, loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation("2006-01-02", s, loc)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}

// DayBounds returns [00:00, 24:00) of day's calendar date in loc, as UTC instants.
func DayBounds(day time.Time, loc *time.Location) (time.Time, time.Time) {
	local := day.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	end := start.AddDate(0, 0, 1)
	return start.UTC(), end.UTC()
}

// Combine places an HH:MM clock reading on day in loc.
func Combine(day time.Time, hhmm string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	local := day.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), t.Hour(), t.Minute(), 0, 0, loc).UTC(), nil
}

// Window resolves a date plus start/end clock readings into UTC day start, start and end.
func Window(date, start, end string, loc *time.Location) (day, from, to time.Time, err error) {
	d, err := ParseDay(date, loc)
	if err != nil {
		return
	}
	if from, err = Combine(d, start, loc); err != nil {
		return
	}
	if to, err = Combine(d, end, loc); err != nil {
		return
	}
	if !to.After(from) {
		err = ErrInvalidRange
		return
	}
	day, _ = DayBounds(d, loc)
	return
}
