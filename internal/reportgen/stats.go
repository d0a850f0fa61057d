// Package reportgen assembles PDF and Excel health reports: descriptive
// statistics, a top-3 frequency ranking, a detail table and embedded charts.
package reportgen

import (
	"fmt"
	"sort"
	"time"
)

// Kind selects which record variant a report covers.
type Kind string

const (
	KindSymptoms    Kind = "symptoms"
	KindMedications Kind = "medications"
)

// Format selects the output document type.
type Format string

const (
	FormatPDF   Format = "pdf"
	FormatExcel Format = "excel"
)

// Entry is one health record flattened for rendering.
type Entry struct {
	Date     time.Time
	Category string
	Weight   *int // symptom severity 0-5
	Dosage   string
	Quantity string
}

// Input is everything a document builder needs.
type Input struct {
	Kind      Kind
	Username  string
	Age       int
	StartDate time.Time
	EndDate   time.Time
	Entries   []Entry
}

// NameCount is a category name with its occurrence count.
type NameCount struct {
	Name  string
	Count int
}

// Summary holds the computed statistics block of a report.
type Summary struct {
	Total          int
	MeanSeverity   float64 // symptom reports only
	Frequencies    []NameCount
	Top            []NameCount
	Recommendation string
}

// Summarize computes totals, mean severity, the descending frequency ranking
// with its top 3, and the templated recommendation. The "consult" branch
// fires only when the most frequent category accounts for strictly more than
// half of all records.
func Summarize(kind Kind, entries []Entry) Summary {
	s := Summary{Total: len(entries)}
	if len(entries) == 0 {
		return s
	}

	counts := make(map[string]int)
	weightSum := 0
	weighted := 0
	for _, e := range entries {
		counts[e.Category]++
		if e.Weight != nil {
			weightSum += *e.Weight
			weighted++
		}
	}
	if kind == KindSymptoms && weighted > 0 {
		s.MeanSeverity = float64(weightSum) / float64(weighted)
	}

	s.Frequencies = make([]NameCount, 0, len(counts))
	for name, count := range counts {
		s.Frequencies = append(s.Frequencies, NameCount{Name: name, Count: count})
	}
	sort.Slice(s.Frequencies, func(i, j int) bool {
		if s.Frequencies[i].Count != s.Frequencies[j].Count {
			return s.Frequencies[i].Count > s.Frequencies[j].Count
		}
		return s.Frequencies[i].Name < s.Frequencies[j].Name
	})

	s.Top = s.Frequencies
	if len(s.Top) > 3 {
		s.Top = s.Top[:3]
	}

	s.Recommendation = recommendation(kind, s.Frequencies[0], s.Total)
	return s
}

func recommendation(kind Kind, top NameCount, total int) string {
	dominant := top.Count*2 > total
	switch {
	case dominant && kind == KindSymptoms:
		return fmt.Sprintf("Симптом «%s» составляет более половины записей за период. Рекомендуем обратиться к врачу для консультации.", top.Name)
	case dominant && kind == KindMedications:
		return fmt.Sprintf("Лекарство «%s» принималось чаще остальных и составляет более половины записей. Рекомендуем уточнить дозировку у лечащего врача.", top.Name)
	case kind == KindSymptoms:
		return "Выраженного преобладания какого-либо симптома не выявлено. Продолжайте наблюдение и ведение дневника."
	default:
		return "Выраженного преобладания какого-либо лекарства не выявлено. Продолжайте прием согласно назначениям."
	}
}
