package reportgen

import (
	"strings"
	"testing"
	"time"
)

func entryWithWeight(category string, weight int) Entry {
	return Entry{Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), Category: category, Weight: &weight}
}

func TestSummarizeFrequenciesSorted(t *testing.T) {
	entries := []Entry{
		{Category: "B"}, {Category: "A"}, {Category: "A"},
		{Category: "C"}, {Category: "C"}, {Category: "D"},
	}

	s := Summarize(KindMedications, entries)
	if s.Total != 6 {
		t.Fatalf("Total = %d, want 6", s.Total)
	}

	got := make([]string, len(s.Frequencies))
	for i, f := range s.Frequencies {
		got[i] = f.Name
	}
	// Descending by count, ties broken by name.
	want := []string{"A", "C", "B", "D"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("frequency order = %v, want %v", got, want)
		}
	}
	if len(s.Top) != 3 {
		t.Errorf("Top has %d items, want 3", len(s.Top))
	}
}

func TestSummarizeMeanSeverity(t *testing.T) {
	entries := []Entry{
		entryWithWeight("Головная боль", 2),
		entryWithWeight("Головная боль", 4),
		{Category: "Тошнота"}, // unweighted entries stay out of the mean
	}

	s := Summarize(KindSymptoms, entries)
	if s.MeanSeverity != 3 {
		t.Errorf("MeanSeverity = %v, want 3", s.MeanSeverity)
	}
}

func TestSummarizeMeanSeverityOnlyForSymptoms(t *testing.T) {
	entries := []Entry{entryWithWeight("X", 4)}

	if s := Summarize(KindMedications, entries); s.MeanSeverity != 0 {
		t.Errorf("MeanSeverity = %v, want 0 for medication reports", s.MeanSeverity)
	}
}

func TestRecommendationConsultBranch(t *testing.T) {
	// A accounts for 3 of 4 records: strictly more than half.
	entries := []Entry{
		{Category: "A"}, {Category: "A"}, {Category: "A"}, {Category: "B"},
	}

	s := Summarize(KindSymptoms, entries)
	if !strings.Contains(s.Recommendation, "«A»") || !strings.Contains(s.Recommendation, "врачу") {
		t.Errorf("Recommendation = %q, want the consult branch naming A", s.Recommendation)
	}
}

func TestRecommendationGenericOnExactHalf(t *testing.T) {
	// 2 of 4 is not strictly more than half.
	entries := []Entry{
		{Category: "A"}, {Category: "A"}, {Category: "B"}, {Category: "B"},
	}

	s := Summarize(KindSymptoms, entries)
	if strings.Contains(s.Recommendation, "«") {
		t.Errorf("Recommendation = %q, want the generic branch", s.Recommendation)
	}
}

func TestRecommendationMedicationBranch(t *testing.T) {
	entries := []Entry{{Category: "Ибупрофен"}, {Category: "Ибупрофен"}, {Category: "Цитрамон"}}

	s := Summarize(KindMedications, entries)
	if !strings.Contains(s.Recommendation, "«Ибупрофен»") || !strings.Contains(s.Recommendation, "дозировку") {
		t.Errorf("Recommendation = %q, want the dosage branch naming Ибупрофен", s.Recommendation)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(KindSymptoms, nil)
	if s.Total != 0 || len(s.Frequencies) != 0 || s.Recommendation != "" {
		t.Errorf("empty summary not zero-valued: %+v", s)
	}
}
