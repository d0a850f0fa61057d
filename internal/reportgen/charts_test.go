package reportgen

import (
	"bytes"
	"testing"
	"time"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestPieChartPNG(t *testing.T) {
	png, err := PieChartPNG([]NameCount{{Name: "Головная боль", Count: 3}, {Name: "Тошнота", Count: 1}})
	if err != nil {
		t.Fatalf("PieChartPNG() unexpected error: %v", err)
	}
	if !bytes.HasPrefix(png, pngMagic) {
		t.Fatal("PieChartPNG() did not produce a PNG")
	}
}

func TestPieChartPNGEmpty(t *testing.T) {
	png, err := PieChartPNG(nil)
	if err != nil || png != nil {
		t.Fatalf("PieChartPNG(nil) = %v, %v, want nil, nil", png, err)
	}
}

func TestSeverityLinePNG(t *testing.T) {
	entries := []Entry{
		entryWithWeight("A", 2),
		{Date: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), Category: "A", Weight: intPtr(4)},
		{Date: time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC), Category: "A"}, // unweighted, ignored
	}

	png, err := SeverityLinePNG(entries)
	if err != nil {
		t.Fatalf("SeverityLinePNG() unexpected error: %v", err)
	}
	if !bytes.HasPrefix(png, pngMagic) {
		t.Fatal("SeverityLinePNG() did not produce a PNG")
	}
}

func TestSeverityLinePNGTooFewPoints(t *testing.T) {
	entries := []Entry{entryWithWeight("A", 2)}

	png, err := SeverityLinePNG(entries)
	if err != nil || png != nil {
		t.Fatalf("SeverityLinePNG() = %v, %v, want nil, nil for a single point", png, err)
	}
}

func intPtr(v int) *int { return &v }
