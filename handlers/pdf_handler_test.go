package handlers

import (
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSlipPDF_Unavailable(t *testing.T) {
	h := &PDFHandler{Supported: false}
	req := httptest.NewRequest("GET", "/api/slip/1/pdf", nil)
	rec := httptest.NewRecorder()
	h.SlipPDF(rec, req, "1")

	if rec.Code != 503 {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "PDF generation is not available") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestSlipPDF_BadID(t *testing.T) {
	h := &PDFHandler{Supported: true}
	req := httptest.NewRequest("GET", "/api/slip/abc/pdf", nil)
	rec := httptest.NewRecorder()
	h.SlipPDF(rec, req, "abc")

	if rec.Code != 400 {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
