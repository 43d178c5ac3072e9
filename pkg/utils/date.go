package utils

import "time"

// ParseDate lê uma data YYYY-MM-DD; string vazia devolve a data zero
func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// DaysBefore devolve o dia (UTC) que fica days dias antes de ref, no formato YYYY-MM-DD
func DaysBefore(ref time.Time, days int) string {
	return ref.UTC().AddDate(0, 0, -days).Format(time.DateOnly)
}
