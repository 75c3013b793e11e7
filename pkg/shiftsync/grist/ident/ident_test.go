package ident

import "testing"

func TestColumn(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"scraped_at", "scraped_at"},
		{"Sch Start", "Sch_Start"},
		{"Exception Type", "Exception_Type"},
		{"bill rate ($)", "bill_rate_"},
		{"  leading", "leading"},
		{"_private", "private"},
		{"1st shift", "c1st_shift"},
		{"Café", "Cafe"},
		{"", "c"},
		{"!!!", "c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Column(tt.name); got != tt.want {
				t.Errorf("Column(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestTable(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"shifts", "Shifts"},
		{"MSM_Results", "MSM_Results"},
		{"msm data", "Msm_data"},
		{"2025 shifts", "Table2025_shifts"},
		{"", "Table"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Table(tt.name); got != tt.want {
				t.Errorf("Table(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}
