package reportgen

import (
	"bytes"
	"fmt"
	"os"

	"github.com/go-pdf/fpdf"
)

const pdfFontFamily = "report"

// BuildPDF renders the report as a PDF document. fontPath must point at a
// TTF with Cyrillic coverage; the built-in core fonts cannot render the
// report text.
func BuildPDF(in Input, s Summary, pie, line []byte, fontPath string) ([]byte, error) {
	if _, err := os.Stat(fontPath); err != nil {
		return nil, fmt.Errorf("report font not available: %w", err)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddUTF8Font(pdfFontFamily, "", fontPath)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	title := "Отчет о симптомах"
	if in.Kind == KindMedications {
		title = "Отчет о лекарствах"
	}
	pdf.SetFont(pdfFontFamily, "", 20)
	pdf.CellFormat(0, 12, title, "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont(pdfFontFamily, "", 12)
	pdf.CellFormat(0, 7, fmt.Sprintf("Имя пользователя: %s (возраст: %d)", in.Username, in.Age), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Период: %s — %s", in.StartDate.Format("02.01.2006"), in.EndDate.Format("02.01.2006")), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Всего записей: %d", s.Total), "", 1, "L", false, 0, "")
	if in.Kind == KindSymptoms {
		pdf.CellFormat(0, 7, fmt.Sprintf("Средняя тяжесть симптомов: %.1f", s.MeanSeverity), "", 1, "L", false, 0, "")
	}
	pdf.Ln(3)

	pdf.CellFormat(0, 7, "Наиболее частые:", "", 1, "L", false, 0, "")
	for i, nc := range s.Top {
		pdf.CellFormat(0, 6, fmt.Sprintf("%d. %s — %d", i+1, nc.Name, nc.Count), "", 1, "L", false, 0, "")
	}
	pdf.Ln(3)

	writePDFTable(pdf, in)

	pdf.Ln(4)
	pdf.MultiCell(0, 6, s.Recommendation, "", "L", false)

	if len(pie) > 0 {
		embedPNG(pdf, "pie", pie, 110)
	}
	if len(line) > 0 {
		embedPNG(pdf, "line", line, 80)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func writePDFTable(pdf *fpdf.Fpdf, in Input) {
	valueHeader := "Тяжесть (0-5)"
	nameHeader := "Симптом"
	if in.Kind == KindMedications {
		valueHeader = "Дозировка / количество"
		nameHeader = "Лекарство"
	}

	pdf.SetFont(pdfFontFamily, "", 11)
	pdf.CellFormat(50, 7, "Дата", "1", 0, "L", false, 0, "")
	pdf.CellFormat(80, 7, nameHeader, "1", 0, "L", false, 0, "")
	pdf.CellFormat(60, 7, valueHeader, "1", 1, "L", false, 0, "")

	for _, e := range in.Entries {
		value := ""
		if in.Kind == KindSymptoms {
			if e.Weight != nil {
				value = fmt.Sprintf("%d", *e.Weight)
			}
		} else {
			value = e.Dosage
			if e.Quantity != "" {
				value += " / " + e.Quantity
			}
		}
		pdf.CellFormat(50, 6, e.Date.Format("02.01.2006 15:04"), "1", 0, "L", false, 0, "")
		pdf.CellFormat(80, 6, e.Category, "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 6, value, "1", 1, "L", false, 0, "")
	}
}

func embedPNG(pdf *fpdf.Fpdf, name string, png []byte, width float64) {
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(png))
	if pdf.GetY() > 180 {
		pdf.AddPage()
	}
	pdf.Ln(4)
	pdf.ImageOptions(name, (210-width)/2, pdf.GetY(), width, 0, true, opts, 0, "")
}
