package reportgen

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const excelSheet = "Отчет"

// BuildExcel renders the report as an .xlsx workbook with the same content
// as the PDF variant: header, summary stats, top-3, detail table,
// recommendation and the chart images.
func BuildExcel(in Input, s Summary, pie, line []byte) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(excelSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	title := "Отчет о симптомах"
	nameHeader := "Симптом"
	valueHeader := "Тяжесть (0-5)"
	if in.Kind == KindMedications {
		title = "Отчет о лекарствах"
		nameHeader = "Лекарство"
		valueHeader = "Дозировка / количество"
	}

	row := 1
	set := func(col string, v interface{}) {
		f.SetCellValue(excelSheet, fmt.Sprintf("%s%d", col, row), v)
	}

	set("A", title)
	row += 2
	set("A", "Имя пользователя")
	set("B", fmt.Sprintf("%s (возраст: %d)", in.Username, in.Age))
	row++
	set("A", "Период")
	set("B", fmt.Sprintf("%s — %s", in.StartDate.Format("02.01.2006"), in.EndDate.Format("02.01.2006")))
	row++
	set("A", "Всего записей")
	set("B", s.Total)
	row++
	if in.Kind == KindSymptoms {
		set("A", "Средняя тяжесть")
		set("B", fmt.Sprintf("%.1f", s.MeanSeverity))
		row++
	}

	row++
	set("A", "Наиболее частые")
	row++
	for i, nc := range s.Top {
		set("A", fmt.Sprintf("%d. %s", i+1, nc.Name))
		set("B", nc.Count)
		row++
	}

	row++
	set("A", "Дата")
	set("B", nameHeader)
	set("C", valueHeader)
	row++
	for _, e := range in.Entries {
		set("A", e.Date.Format("02.01.2006 15:04"))
		set("B", e.Category)
		if in.Kind == KindSymptoms {
			if e.Weight != nil {
				set("C", *e.Weight)
			}
		} else {
			value := e.Dosage
			if e.Quantity != "" {
				value += " / " + e.Quantity
			}
			set("C", value)
		}
		row++
	}

	row++
	set("A", s.Recommendation)
	row += 2

	if len(pie) > 0 {
		if err := addPicture(f, fmt.Sprintf("A%d", row), pie); err != nil {
			return nil, err
		}
		row += 28
	}
	if len(line) > 0 {
		if err := addPicture(f, fmt.Sprintf("A%d", row), line); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func addPicture(f *excelize.File, cell string, png []byte) error {
	err := f.AddPictureFromBytes(excelSheet, cell, &excelize.Picture{
		Extension: ".png",
		File:      png,
	})
	if err != nil {
		return fmt.Errorf("failed to embed chart: %w", err)
	}
	return nil
}
