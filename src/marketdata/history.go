package marketdata

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"
	polygon "github.com/polygon-io/client-go/rest"
	polygonmodels "github.com/polygon-io/client-go/rest/models"
	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/option-surfaces/src/models"
)

// HistoryService fetches daily closing prices and caches them on disk, one
// CSV per ticker.
type HistoryService struct {
	Client   *polygon.Client
	CacheDir string
}

func NewHistoryService(apiKey, cacheDir string) *HistoryService {
	return &HistoryService{
		Client:   polygon.New(apiKey),
		CacheDir: cacheDir,
	}
}

func (s *HistoryService) cachePath(symbol string) string {
	return filepath.Join(s.CacheDir, fmt.Sprintf("%s_closes.csv", symbol))
}

// FetchDailyCloses pulls the daily closing prices for symbol between from and
// to, sorted chronologically.
func (s *HistoryService) FetchDailyCloses(ctx context.Context, symbol string, from, to time.Time) (models.DailyCloses, error) {
	params := polygonmodels.ListAggsParams{
		Ticker:     symbol,
		Multiplier: 1,
		Timespan:   polygonmodels.Day,
		From:       polygonmodels.Millis(from),
		To:         polygonmodels.Millis(to),
	}.WithOrder(polygonmodels.Asc).WithAdjusted(true)

	log.Infof("fetching daily closes for %s from %s to %s", symbol, from.Format("2006-01-02"), to.Format("2006-01-02"))

	iter := s.Client.ListAggs(ctx, params)

	var closes models.DailyCloses
	for iter.Next() {
		bar := iter.Item()
		closes = append(closes, &models.DailyClose{
			Date:  time.Time(bar.Timestamp).Format("2006-01-02"),
			Close: bar.Close,
		})
	}

	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("FetchDailyCloses: failed to fetch daily bars for %s: %w", symbol, err)
	}

	if len(closes) == 0 {
		return nil, fmt.Errorf("FetchDailyCloses: %s: %w", symbol, models.NoPriceDataErr)
	}

	closes.SortChronologically()

	return closes, nil
}

// SaveCloses writes the series to the ticker's cache file, one row per
// trading day.
func (s *HistoryService) SaveCloses(symbol string, closes models.DailyCloses) error {
	if err := os.MkdirAll(s.CacheDir, 0755); err != nil {
		return fmt.Errorf("SaveCloses: failed to create cache dir: %w", err)
	}

	outPath := s.cachePath(symbol)

	file, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("SaveCloses: failed to create %s: %w", outPath, err)
	}

	defer file.Close()

	if err := gocsv.MarshalFile(&closes, file); err != nil {
		return fmt.Errorf("SaveCloses: failed to write csv: %w", err)
	}

	log.Infof("saved %d closes to %s", len(closes), outPath)

	return nil
}

// LoadCloses reads a previously cached series. Rows are re-sorted so a hand
// edited file still comes back chronological.
func (s *HistoryService) LoadCloses(symbol string) (models.DailyCloses, error) {
	inPath := s.cachePath(symbol)

	file, err := os.Open(inPath)
	if err != nil {
		return nil, fmt.Errorf("LoadCloses: failed to open %s: %w", inPath, err)
	}

	defer file.Close()

	var closes models.DailyCloses
	if err := gocsv.UnmarshalFile(file, &closes); err != nil {
		return nil, fmt.Errorf("LoadCloses: failed to parse csv: %w", err)
	}

	closes.SortChronologically()

	return closes, nil
}
