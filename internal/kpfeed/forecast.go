package kpfeed

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// kpFieldOffset is the field index of the largest-expected-Kp column in a
// 27-day-outlook record (date, 10.7cm flux, A index precede it).
const kpFieldOffset = 5

var forecastLineRe = regexp.MustCompile(`^\d{4}\s+[A-Za-z]{3}\s+\d{2}`)

var monthsByAbbrev = map[string]time.Month{
	"Jan": time.January, "Feb": time.February, "Mar": time.March,
	"Apr": time.April, "May": time.May, "Jun": time.June,
	"Jul": time.July, "Aug": time.August, "Sep": time.September,
	"Oct": time.October, "Nov": time.November, "Dec": time.December,
}

// ParseForecast extracts daily Kp forecasts from the 27-day-outlook feed.
// Unparseable lines are skipped; only days within [start, end] are returned.
func ParseForecast(body string, start, end time.Time) []DayValue {
	startDay := truncateDay(start)
	endDay := truncateDay(end)

	var out []DayValue
	inData := false
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "#") || strings.HasPrefix(line, ":") {
			if strings.Contains(line, "UTC") {
				inData = true
			}
			continue
		}
		if !inData || !forecastLineRe.MatchString(line) {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < kpFieldOffset+1 {
			continue
		}

		year, err := strconv.Atoi(fields[0])
		if err != nil {
			continue
		}
		month, ok := monthsByAbbrev[fields[1]]
		if !ok {
			continue
		}
		day, err := strconv.Atoi(fields[2])
		if err != nil {
			continue
		}
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		if date.Before(startDay) || date.After(endDay) {
			continue
		}

		kp, err := strconv.Atoi(fields[kpFieldOffset])
		if err != nil {
			continue
		}

		out = append(out, DayValue{Date: date, Kp: float64(kp)})
	}
	return out
}
