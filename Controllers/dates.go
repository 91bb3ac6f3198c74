package Controllers

import (
	"errors"
	"time"
)

const dateLayout = "2006-01-02"

// validateDates parses YYYY-MM-DD start/end dates and rejects inverted
// ranges before anything reaches the store.
func validateDates(startDate, endDate string) (time.Time, time.Time, error) {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("dataInicio must be in YYYY-MM-DD format")
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("dataFim must be in YYYY-MM-DD format")
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, errors.New("dataFim must not be before dataInicio")
	}
	return start, end, nil
}
