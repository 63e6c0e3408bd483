// Package report holds the defect sales report data contract and its PDF
// export.
package report

import (
	"time"
)

// Row is one month of aggregated return counts by reason, as served by the
// product-returns-report endpoint.
type Row struct {
	Month  string `json:"month"`
	Lost   int    `json:"lost"`
	Return int    `json:"return"`
	Refund int    `json:"refund"`
	Other  int    `json:"other"`
}

// Filename returns the download name for the defect sales report covering
// the calendar month before t.
func Filename(t time.Time) string {
	return "Defect_Sales_Report_" + t.AddDate(0, -1, 0).Format("2006-01") + ".pdf"
}
