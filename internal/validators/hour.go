package validators

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

var hourPattern = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)

// IsHour reports whether s is a zero-padded 24h "HH:MM" value.
func IsHour(s string) bool {
	return hourPattern.MatchString(s)
}

// CheckHour returns a BadRequest naming the offending value.
func CheckHour(s string) error {
	if !IsHour(s) {
		return httperr.ErrBadRequest("invalid_hour", fmt.Sprintf("Format hour %s invalid", s))
	}
	return nil
}

func hhmm(fl validator.FieldLevel) bool {
	return IsHour(fl.Field().String())
}
