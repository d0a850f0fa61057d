package kpfeed

import (
	"testing"
	"time"
)

const forecastFixture = `:Product: 27-day Space Weather Outlook Table 27DO.txt
:Issued: 2024 Jan 01 0315 UTC
# Prepared by the US Dept. of Commerce, NOAA, Space Weather Prediction Center
#
#      UTC      Radio Flux   Planetary   Largest
#     Date       10.7 cm      A Index    Kp Index
2024 Jan 01      150           8          3
2024 Jan 02      148          12          4
2024 Feb 01      140           5          2
2024 Mar 15      135          bad         x
`

func TestParseForecast(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	got := ParseForecast(forecastFixture, start, end)
	want := []DayValue{
		{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Kp: 3},
		{Date: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), Kp: 4},
		{Date: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), Kp: 2},
	}
	if len(got) != len(want) {
		t.Fatalf("ParseForecast() returned %d days, want %d: %#v", len(got), len(want), got)
	}
	for i := range want {
		if !got[i].Date.Equal(want[i].Date) || got[i].Kp != want[i].Kp {
			t.Errorf("day[%d] = %v Kp %v, want %v Kp %v", i, got[i].Date, got[i].Kp, want[i].Date, want[i].Kp)
		}
	}
}

func TestParseForecastRangeFilter(t *testing.T) {
	start := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	got := ParseForecast(forecastFixture, start, end)
	if len(got) != 1 || got[0].Kp != 4 {
		t.Fatalf("ParseForecast() = %#v, want single 2024-01-02 entry", got)
	}
}

func TestParseForecastEmptyOnGarbage(t *testing.T) {
	for _, body := range []string{"", "not a feed at all", "# UTC\n2024 Xyz 01 150 8 3"} {
		if got := ParseForecast(body, time.Time{}, time.Date(2100, 1, 1, 0, 0, 0, 0, time.UTC)); len(got) != 0 {
			t.Fatalf("ParseForecast(%q) = %#v, want empty", body, got)
		}
	}
}
