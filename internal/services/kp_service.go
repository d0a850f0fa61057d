package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/medtrack-app/medtrack-backend/internal/dto"
	"github.com/medtrack-app/medtrack-backend/internal/kpfeed"
	"github.com/medtrack-app/medtrack-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// forecastDays is the forward window of the Kp forecast: today plus 25 days.
const forecastDays = 25

// KpFeed is the NOAA feed boundary. Implementations never fail: a fetch or
// parse problem yields an empty slice.
type KpFeed interface {
	FetchHistorical(ctx context.Context, start, end time.Time) []kpfeed.DayValue
	FetchForecast(ctx context.Context, start, end time.Time) []kpfeed.DayValue
}

// KpService maintains the local date-indexed cache of geomagnetic Kp values.
type KpService struct {
	db   *gorm.DB
	feed KpFeed
	now  func() time.Time
}

func NewKpService(db *gorm.DB, feed KpFeed) *KpService {
	return &KpService{db: db, feed: feed, now: time.Now}
}

// GetRange returns one entry per stored calendar day in [start, end], values
// rounded to the nearest integer. Days absent from storage trigger a single
// historical-feed fill attempt; days the feed cannot supply stay omitted.
func (s *KpService) GetRange(ctx context.Context, start, end time.Time) ([]dto.KpEntry, error) {
	start = dayUTC(start)
	end = dayUTC(end)
	if end.Before(start) {
		return nil, invalidf("end date precedes start date")
	}

	rows, err := s.load(start, end)
	if err != nil {
		return nil, err
	}

	if s.hasMissingDays(rows, start, end) {
		fetched := s.feed.FetchHistorical(ctx, start, end)
		if len(fetched) > 0 {
			for _, v := range fetched {
				if err := s.upsert(v.Date, math.Round(v.Kp)); err != nil {
					return nil, err
				}
			}
			if rows, err = s.load(start, end); err != nil {
				return nil, err
			}
		} else {
			slog.Warn("no kp data found for range", "start", start.Format("2006-01-02"), "end", end.Format("2006-01-02"))
		}
	}

	entries := make([]dto.KpEntry, 0, len(rows))
	for _, row := range rows {
		v := int(math.Round(row.KpIndex))
		entries = append(entries, dto.KpEntry{Date: row.Date.Format("2006-01-02"), KpIndex: &v})
	}
	return entries, nil
}

// Forecast returns exactly one entry per day from today through today+25,
// kpIndex null for days storage knows nothing about.
func (s *KpService) Forecast() ([]dto.KpEntry, error) {
	today := dayUTC(s.now())
	end := today.AddDate(0, 0, forecastDays)

	rows, err := s.load(today, end)
	if err != nil {
		return nil, err
	}

	byDay := make(map[string]float64, len(rows))
	for _, row := range rows {
		byDay[row.Date.Format("2006-01-02")] = row.KpIndex
	}

	entries := make([]dto.KpEntry, 0, forecastDays+1)
	for d := today; !d.After(end); d = d.AddDate(0, 0, 1) {
		key := d.Format("2006-01-02")
		entry := dto.KpEntry{Date: key}
		if kp, ok := byDay[key]; ok {
			v := int(math.Round(kp))
			entry.KpIndex = &v
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Refresh re-fetches the trailing 30-day historical window and the 26-day
// forward window, upserting every parsed value on the unique date key.
// Intended to run daily.
func (s *KpService) Refresh(ctx context.Context) error {
	today := dayUTC(s.now())

	historical := s.feed.FetchHistorical(ctx, today.AddDate(0, 0, -30), today)
	for _, v := range historical {
		if err := s.upsert(v.Date, math.Round(v.Kp)); err != nil {
			return err
		}
	}

	forecast := s.feed.FetchForecast(ctx, today, today.AddDate(0, 0, forecastDays))
	for _, v := range forecast {
		if err := s.upsert(v.Date, v.Kp); err != nil {
			return err
		}
	}

	slog.Info("kp cache refreshed", "historical", len(historical), "forecast", len(forecast))
	return nil
}

func (s *KpService) load(start, end time.Time) ([]models.KpIndex, error) {
	var rows []models.KpIndex
	err := s.db.
		Where("date >= ? AND date <= ?", start, end).
		Order("date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load kp rows: %w", err)
	}
	return rows, nil
}

func (s *KpService) hasMissingDays(rows []models.KpIndex, start, end time.Time) bool {
	have := make(map[string]bool, len(rows))
	for _, row := range rows {
		have[row.Date.Format("2006-01-02")] = true
	}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if !have[d.Format("2006-01-02")] {
			return true
		}
	}
	return false
}

// upsert inserts or replaces the value for a date (unique key).
func (s *KpService) upsert(date time.Time, kp float64) error {
	row := models.KpIndex{
		ID:      uuid.New(),
		Date:    dayUTC(date),
		KpIndex: kp,
	}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"kp_index", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to upsert kp value: %w", err)
	}
	return nil
}

func dayUTC(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
