package diag

import (
	"testing"

	"ember/internal/source"
)

func TestBag_AddRespectsLimit(t *testing.T) {
	bag := NewBag(2)
	for i := range 3 {
		added := bag.Add(Diagnostic{Code: ScanMissingPath, Severity: SevError,
			Primary: source.Span{File: 1, Start: uint32(i), End: uint32(i + 1)}})
		if want := i < 2; added != want {
			t.Errorf("Add #%d = %v, want %v", i, added, want)
		}
	}
	if bag.Len() != 2 {
		t.Errorf("Len() = %d, want 2", bag.Len())
	}
}

func TestBag_LimitClamped(t *testing.T) {
	tests := []struct {
		name string
		max  int
		want uint16
	}{
		{"negative", -5, 0},
		{"zero", 0, 0},
		{"in range", 100, 100},
		{"above uint16", 1 << 20, 65535},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bag := NewBag(tt.max)
			if bag.Cap() != tt.want {
				t.Errorf("NewBag(%d).Cap() = %d, want %d", tt.max, bag.Cap(), tt.want)
			}
		})
	}

	// A huge limit must not wrap to a tiny one and start dropping.
	big := NewBag(1 << 20)
	if !big.Add(Diagnostic{Severity: SevError, Code: ScanMissingPath}) {
		t.Errorf("bag with clamped limit dropped its first diagnostic")
	}
}

func TestBag_MergeGrowsLimit(t *testing.T) {
	a := NewBag(1)
	a.Add(Diagnostic{Severity: SevError, Code: ScanMissingPath})
	b := NewBag(1)
	b.Add(Diagnostic{Severity: SevWarning, Code: ResolveDuplicateImport})

	a.Merge(b)
	if a.Len() != 2 {
		t.Fatalf("Merge kept %d items, want 2", a.Len())
	}
	if a.Cap() != 2 {
		t.Errorf("Cap() = %d after merge, want 2", a.Cap())
	}
}

func TestBag_HasErrorsHasWarnings(t *testing.T) {
	bag := NewBag(10)
	if bag.HasErrors() || bag.HasWarnings() {
		t.Errorf("empty bag reports findings")
	}
	bag.Add(Diagnostic{Severity: SevWarning, Code: ResolveDuplicateImport})
	if bag.HasErrors() {
		t.Errorf("warning counted as error")
	}
	if !bag.HasWarnings() {
		t.Errorf("warning not seen")
	}
	bag.Add(Diagnostic{Severity: SevError, Code: ResolveUnknownModule})
	if !bag.HasErrors() {
		t.Errorf("error not seen")
	}
}

func TestBag_SortAndDedup(t *testing.T) {
	bag := NewBag(10)
	late := Diagnostic{Severity: SevError, Code: ScanMissingPath,
		Primary: source.Span{File: 1, Start: 40, End: 41}}
	early := Diagnostic{Severity: SevWarning, Code: ResolveDuplicateImport,
		Primary: source.Span{File: 1, Start: 5, End: 6}}
	bag.Add(late)
	bag.Add(early)
	bag.Add(late) // duplicate

	bag.Sort()
	items := bag.Items()
	if items[0].Primary.Start != 5 {
		t.Errorf("Sort did not order by start offset")
	}

	bag.Dedup()
	if bag.Len() != 2 {
		t.Errorf("Dedup kept %d items, want 2", bag.Len())
	}
}

func TestReportBuilder_EmitOnce(t *testing.T) {
	bag := NewBag(10)
	b := ReportError(BagReporter{Bag: bag}, ResolveUnknownModule,
		source.Span{File: 1, Start: 0, End: 3}, "cannot resolve module \"foo\"")
	b.WithNote(source.Span{File: 1, Start: 10, End: 13}, "declared here")
	b.Emit()
	b.Emit()

	if bag.Len() != 1 {
		t.Fatalf("emitted %d diagnostics, want 1", bag.Len())
	}
	d := bag.Items()[0]
	if len(d.Notes) != 1 || d.Notes[0].Msg != "declared here" {
		t.Errorf("note lost: %+v", d.Notes)
	}
	if d.Code.ID() != "RES2001" {
		t.Errorf("Code.ID() = %q", d.Code.ID())
	}
}
