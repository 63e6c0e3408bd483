package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"
)

const (
	pageWidth  = 600
	pageHeight = 800
	leftMargin = 50
	rowStep    = 15
)

// column x positions, one fixed-width text column per field
var columnX = [5]float64{leftMargin, 150, 250, 350, 450}

// WritePDF renders the defect sales report for the calendar month before
// now and writes the document to w. Rows that do not fit on the page are
// dropped rather than flowed onto a second page, matching the layout the
// report has always had.
func WritePDF(w io.Writer, rows []Row, now time.Time) error {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: pageWidth, Ht: pageHeight},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	y := 50.0
	title := fmt.Sprintf("Defect Sales Report - %s", now.AddDate(0, -1, 0).Format("January 2006"))
	pdf.SetFont("Helvetica", "", 16)
	pdf.Text(leftMargin, y, title)
	y += 30

	pdf.SetFont("Helvetica", "", 12)
	headers := [5]string{"Month", "Lost", "Return", "Refund", "Other"}
	for i, h := range headers {
		pdf.Text(columnX[i], y, h)
	}
	y += rowStep
	pdf.Line(leftMargin, y, pageWidth-leftMargin, y)
	y += rowStep

	pdf.SetFont("Helvetica", "", 10)
	for _, r := range rows {
		if y > pageHeight-50 {
			break
		}
		cells := [5]string{
			r.Month,
			strconv.Itoa(r.Lost),
			strconv.Itoa(r.Return),
			strconv.Itoa(r.Refund),
			strconv.Itoa(r.Other),
		}
		for i, cell := range cells {
			pdf.Text(columnX[i], y, cell)
		}
		y += rowStep
	}

	return pdf.Output(w)
}
