package loader

import (
	"testing"

	"github.com/ukaji3/shiftsync-go/pkg/shiftsync/models"
)

func regionOf(r1, c1, r2, c2 int) models.Region {
	return models.Region{R1: r1, C1: c1, R2: r2, C2: c2}
}

func TestDetectRegion(t *testing.T) {
	tests := []struct {
		name     string
		rows     [][]string
		expected models.Region
		ok       bool
	}{
		{"empty", nil, models.Region{}, false},
		{"blank cells", [][]string{{"", ""}, {""}}, models.Region{}, false},
		{"single cell", [][]string{{"x"}}, models.Region{}, false},
		{"offset table", [][]string{{}, {"", "a", "b"}, {"", "1", "2"}}, regionOf(2, 2, 3, 3), true},
		{"ragged", [][]string{{"a", "b", "c"}, {"1"}}, regionOf(1, 1, 2, 3), true},
	}

	for _, tt := range tests {
		got, ok := DetectRegion(tt.rows, DefaultRegionParams())
		if ok != tt.ok || got != tt.expected {
			t.Errorf("%s: DetectRegion = %v, %v; expected %v, %v", tt.name, got, ok, tt.expected, tt.ok)
		}
	}
}

func TestDetectRegionSparse(t *testing.T) {
	rows := make([][]string, 100)
	rows[0] = []string{"a"}
	rows[99] = make([]string, 100)
	rows[99][99] = "z"

	if _, ok := DetectRegion(rows, DefaultRegionParams()); ok {
		t.Error("Expected sparse sheet to be rejected")
	}
}

func TestParsePrintAreaReference(t *testing.T) {
	tests := []struct {
		ref       string
		sheet     string
		areaCount int
		first     models.Region
	}{
		{"'MSM Data'!$A$1:$M$26", "MSM Data", 1, regionOf(1, 1, 26, 13)},
		{"Sheet1!$B$2:$D$10,Sheet1!$F$1:$G$3", "Sheet1", 2, regionOf(2, 2, 10, 4)},
		{"Sheet1!A1", "Sheet1", 0, models.Region{}},
		{"'Bob''s Shifts'!$A$1:$B$2", "Bob's Shifts", 1, regionOf(1, 1, 2, 2)},
		{"$A$3:$C$9", "", 1, regionOf(3, 1, 9, 3)},
		{"", "", 0, models.Region{}},
	}

	for _, tt := range tests {
		sheet, areas := parsePrintAreaReference(tt.ref)
		if sheet != tt.sheet || len(areas) != tt.areaCount {
			t.Errorf("parsePrintAreaReference(%q) = %q, %v", tt.ref, sheet, areas)
			continue
		}
		if tt.areaCount > 0 && areas[0] != tt.first {
			t.Errorf("parsePrintAreaReference(%q) first area = %v, expected %v", tt.ref, areas[0], tt.first)
		}
	}
}

func TestRegionReference(t *testing.T) {
	ref, err := RegionReference("ABS Shift Data", regionOf(1, 1, 21, 11))
	if err != nil {
		t.Fatalf("RegionReference failed: %v", err)
	}
	if ref != "'ABS Shift Data'!$A$1:$K$21" {
		t.Errorf("Unexpected reference %q", ref)
	}
}
