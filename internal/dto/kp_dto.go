package dto

// KpEntry is one calendar day of Kp data. KpIndex is null in forecast
// responses for days NOAA has not forecasted yet.
type KpEntry struct {
	Date    string `json:"date"` // YYYY-MM-DD
	KpIndex *int   `json:"kpIndex"`
}
