package services

import "time"

const DateLayout = "2006-01-02"

const weekLength = 7

type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// CanonicalDate is the partition key for every daily record.
func CanonicalDate(value time.Time) string {
	return value.UTC().Format(DateLayout)
}

func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

// DayRange returns [midnight, next midnight) around value.
func DayRange(value time.Time, location *time.Location) (time.Time, time.Time) {
	start := DateAtLocation(value, location)
	return start, start.AddDate(0, 0, 1)
}

// WeekDates lists the seven canonical dates ending with today, oldest first.
func WeekDates(today time.Time) []string {
	start := DateAtLocation(today, time.UTC).AddDate(0, 0, -(weekLength - 1))
	dates := make([]string, 0, weekLength)
	for offset := 0; offset < weekLength; offset++ {
		dates = append(dates, CanonicalDate(start.AddDate(0, 0, offset)))
	}
	return dates
}
