package utils

import (
	"bytes"
	"context"
	"errors"
	"html/template"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"ricemill/calc"
	"ricemill/models"
	"ricemill/repository"
)

// ErrPDFUnavailable is returned when no headless Chrome binary exists
// on the host. Callers report it as a distinct "unavailable" outcome
// rather than a generic failure.
var ErrPDFUnavailable = errors.New("PDF generation is not available: headless Chrome not found")

var chromeBinaries = []string{
	"google-chrome", "google-chrome-stable", "chromium", "chromium-browser", "chrome",
}

// PDFSupported reports whether a Chrome binary is on PATH. Resolved
// once at startup and injected into the PDF handler.
func PDFSupported() bool {
	for _, bin := range chromeBinaries {
		if _, err := exec.LookPath(bin); err == nil {
			return true
		}
	}
	return false
}

// GenerateSlipPDF renders the print template for one slip and prints
// it to PDF with headless Chrome. Returns (nil, nil) when the slip
// does not exist. The temporary HTML file is removed on every path.
func GenerateSlipPDF(repo *repository.PDFRepository, slipID int64) ([]byte, error) {
	slip, err := repo.GetSlipForPDF(slipID)
	if err != nil {
		return nil, err
	}
	if slip == nil {
		return nil, nil
	}

	html, err := RenderSlipHTML(slip)
	if err != nil {
		return nil, err
	}

	tmpHTML := filepath.Join(os.TempDir(), "slip_"+time.Now().Format("20060102150405")+".html")
	if err := os.WriteFile(tmpHTML, html, 0644); err != nil {
		return nil, err
	}
	defer os.Remove(tmpHTML)

	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuf []byte
	fileURL := "file://" + tmpHTML

	err = chromedp.Run(ctx,
		chromedp.Navigate(fileURL),
		chromedp.Sleep(500*time.Millisecond),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).  // A4 width
				WithPaperHeight(11.7). // A4 height
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, err
	}

	return pdfBuf, nil
}

// RenderSlipHTML executes the print template against a slip with its
// payment totals recomputed and every date formatted for display.
func RenderSlipHTML(slip *models.Slip) ([]byte, error) {
	slip.TotalPaidAmount, slip.BalanceAmount = calc.PaymentTotals(slip.PayableAmount, slip.InstalmentAmounts())
	slip.FormatDates()

	tmpl, err := template.ParseFiles("templates/print_template.html")
	if err != nil {
		return nil, err
	}

	now := time.Now()
	data := models.SlipPDFData{
		Slip:         slip,
		PayableWords: NumberToCurrencyWords(slip.PayableAmount),
		GeneratedAt:  models.FormatIST(&now),
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
