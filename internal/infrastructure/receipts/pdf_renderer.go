package receipts

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"traful_pagos/internal/domain/entities"
	"traful_pagos/internal/usecase/interfaces"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var ErrReceiptUnavailable = errors.New("receipt unavailable")

//go:embed templates/receipt.txt
var defaultTemplate string

// PDFRenderer fills a line template with {{key}} placeholders and lays it out,
// followed by the item table and total, on a single A4 page.
//
// Template lines starting with "# " and "## " are rendered as headings.
type PDFRenderer struct {
	template string
	logg     *logrus.Logger
}

var _ interfaces.IReceiptRenderer = (*PDFRenderer)(nil)

// NewPDFRenderer loads the template at path, or the embedded one when path is empty.
func NewPDFRenderer(path string, logg *logrus.Logger) (*PDFRenderer, error) {
	tpl := defaultTemplate
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			logg.WithError(err).WithField("path", path).Error("[receipt][pdf] template not readable")
			return nil, fmt.Errorf("%w: %v", ErrReceiptUnavailable, err)
		}
		tpl = string(b)
	}
	return &PDFRenderer{template: tpl, logg: logg}, nil
}

func (r *PDFRenderer) Render(ctx context.Context, receipt entities.Receipt) ([]byte, error) {
	if r == nil || strings.TrimSpace(r.template) == "" {
		return nil, ErrReceiptUnavailable
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	text := Fill(r.template, receiptValues(receipt))

	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	for _, line := range strings.Split(text, "\n") {
		switch {
		case strings.HasPrefix(line, "## "):
			pdf.SetFont("Helvetica", "B", 13)
			pdf.CellFormat(0, 9, tr(strings.TrimPrefix(line, "## ")), "", 1, "C", false, 0, "")
			pdf.Ln(3)
		case strings.HasPrefix(line, "# "):
			pdf.SetFont("Helvetica", "B", 16)
			pdf.CellFormat(0, 10, tr(strings.TrimPrefix(line, "# ")), "", 1, "C", false, 0, "")
		case strings.TrimSpace(line) == "":
			pdf.Ln(4)
		default:
			pdf.SetFont("Helvetica", "", 11)
			pdf.CellFormat(0, 7, tr(line), "", 1, "L", false, 0, "")
		}
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(130, 8, tr("Descripción"), "1", 0, "L", true, 0, "")
	pdf.CellFormat(40, 8, "Monto", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	for _, it := range receipt.Items {
		pdf.CellFormat(130, 8, tr(it.Description), "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 8, FormatMoney(it.Amount), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(130, 8, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 8, FormatMoney(receipt.Total), "1", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		r.logg.WithError(err).WithField("receipt", receipt.Number).Error("[receipt][pdf] render failed")
		return nil, fmt.Errorf("%w: %v", ErrReceiptUnavailable, err)
	}
	return buf.Bytes(), nil
}

// Fill replaces every {{key}} with its value. Unknown placeholders are left as is.
func Fill(tpl string, values map[string]string) string {
	pairs := make([]string, 0, len(values)*2)
	for k, v := range values {
		pairs = append(pairs, "{{"+k+"}}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tpl)
}

// FormatMoney renders an amount as "$ 1500.00".
func FormatMoney(v float64) string {
	return "$ " + decimal.NewFromFloat(v).StringFixed(2)
}

func receiptValues(r entities.Receipt) map[string]string {
	name := r.PayerName
	if name == "" {
		name = "-"
	}
	date := "-"
	if !r.Date.IsZero() {
		date = r.Date.Local().Format("02/01/2006 15:04")
	}
	return map[string]string{
		"numero":     r.Number,
		"fecha":      date,
		"nombre":     name,
		"email":      r.Email,
		"estado":     string(r.Status),
		"concepto":   r.Concept,
		"total":      FormatMoney(r.Total),
		"payment_id": r.GatewayPaymentID,
	}
}
