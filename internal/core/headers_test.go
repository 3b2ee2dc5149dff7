package core

import "testing"

func TestHeaderCatalog(t *testing.T) {
	if len(Headers) != 15 {
		t.Fatalf("catalog has %d entries, want 15", len(Headers))
	}

	labels := HeaderLabels()
	if len(labels) != 15 {
		t.Fatalf("HeaderLabels returned %d entries, want 15", len(labels))
	}

	// Spot-check verbatim CMiC text.
	if labels[0] != "A. Current Cost Budget\n(Original Budget + Posted PCIs Thru Current Period)" {
		t.Errorf("column A label = %q", labels[0])
	}
	if labels[3] != "Current Period Cost" {
		t.Errorf("current period label = %q", labels[3])
	}
	if labels[7] != "G. Cost to Complete\n(A - C) unless A less than B, then (CTC = 0)" {
		t.Errorf("column G label = %q", labels[7])
	}
	if labels[14] != "N. Projected Gain/Loss\n(M - I)" {
		t.Errorf("column N label = %q", labels[14])
	}
}

func TestHeadersParallelToColumns(t *testing.T) {
	var row ForecastRow
	if got, want := len(row.Columns()), len(Headers); got != want {
		t.Fatalf("Columns() has %d entries, catalog has %d", got, want)
	}
}
