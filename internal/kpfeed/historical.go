package kpfeed

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// subIndexCount is the number of 3-hourly planetary K sub-indices per day.
const subIndexCount = 8

// planetaryFieldOffset is the field index where the planetary sub-indices
// begin in a daily-geomagnetic-indices record (after the date, the Fredericksburg
// and College A/K blocks and the planetary A index).
const planetaryFieldOffset = 22

var historicalLineRe = regexp.MustCompile(`^\d{4}\s+\d{2}\s+\d{2}`)

// ParseHistorical extracts daily Kp means from the daily-geomagnetic-indices
// feed. A day is emitted only when all eight planetary sub-indices parse as
// non-negative numbers; days with placeholder values are skipped whole.
// Only days within [start, end] (inclusive, day granularity) are returned.
func ParseHistorical(body string, start, end time.Time) []DayValue {
	startDay := truncateDay(start)
	endDay := truncateDay(end)

	var out []DayValue
	inData := false
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "#") || strings.HasPrefix(line, ":") {
			if strings.Contains(strings.ToLower(line), "date") {
				inData = true
			}
			continue
		}
		if !inData || !historicalLineRe.MatchString(line) {
			continue
		}

		fields := Tokenize(line)
		if len(fields) < planetaryFieldOffset+subIndexCount {
			continue
		}

		day, err := time.Parse("2006 01 02", fields[0]+" "+fields[1]+" "+fields[2])
		if err != nil {
			continue
		}
		if day.Before(startDay) || day.After(endDay) {
			continue
		}

		sum := 0.0
		valid := 0
		for _, f := range fields[planetaryFieldOffset : planetaryFieldOffset+subIndexCount] {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil || v < 0 {
				continue
			}
			sum += v
			valid++
		}
		if valid != subIndexCount {
			continue
		}

		out = append(out, DayValue{Date: day, Kp: sum / subIndexCount})
	}
	return out
}

// Tokenize splits a feed record into whitespace-delimited fields, first
// breaking apart concatenated negative placeholder runs. The feed sometimes
// emits adjacent missing-value markers without separating whitespace
// ("-1-1-1-1" for four -1 placeholders); a naive split would miscount the
// sub-index columns and drop valid days.
func Tokenize(line string) []string {
	var b strings.Builder
	b.Grow(len(line) + 8)
	prevDigit := false
	for _, r := range line {
		if r == '-' && prevDigit {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
		prevDigit = r >= '0' && r <= '9'
	}
	return strings.Fields(b.String())
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
