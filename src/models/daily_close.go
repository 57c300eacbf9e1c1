package models

import "sort"

// DailyClose is one row of a cached closing-price series. Date uses the
// 2006-01-02 layout so lexical order matches chronological order.
type DailyClose struct {
	Date  string  `json:"date" csv:"date"`
	Close float64 `json:"close" csv:"close"`
}

type DailyCloses []*DailyClose

func (c DailyCloses) SortChronologically() {
	sort.Slice(c, func(i, j int) bool {
		return c[i].Date < c[j].Date
	})
}

func (c DailyCloses) Closes() []float64 {
	var closes []float64
	for _, row := range c {
		closes = append(closes, row.Close)
	}

	return closes
}
