package utils

import "time"

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

// StartOfDay zera o horário mantendo a localização
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// MonthToDate devolve o primeiro dia do mês de now e o próprio dia
func MonthToDate(now time.Time) (time.Time, time.Time) {
	today := StartOfDay(now)
	return time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location()), today
}
