package main

import "testing"

func TestReadUIMode(t *testing.T) {
	tests := []struct {
		value   string
		want    uiMode
		wantErr bool
	}{
		{"", uiModeAuto, false},
		{"auto", uiModeAuto, false},
		{"ON", uiModeOn, false},
		{" off ", uiModeOff, false},
		{"fancy", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			got, err := readUIMode(tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("readUIMode(%q) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("readUIMode(%q) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestShouldUseTUI_ExplicitModes(t *testing.T) {
	if !shouldUseTUI(uiModeOn) {
		t.Errorf("shouldUseTUI(on) = false")
	}
	if shouldUseTUI(uiModeOff) {
		t.Errorf("shouldUseTUI(off) = true")
	}
}
