package config

import "testing"

func TestConstants(t *testing.T) {
	if DefaultWorkDuration <= 0 {
		t.Fatalf("DefaultWorkDuration must be positive")
	}
	if DefaultBreakDuration <= 0 {
		t.Fatalf("DefaultBreakDuration must be positive")
	}
	if MinSessionSeconds != 1 {
		t.Fatalf("MinSessionSeconds must be 1, got %d", MinSessionSeconds)
	}
	if AppName == "" || DBFileName == "" || LogFileName == "" {
		t.Fatalf("file names should not be empty")
	}
	if KeySavedPresets == KeyTimerState {
		t.Fatalf("storage keys must be distinct")
	}
	if MinProgressWidth > ProgressWidth {
		t.Fatalf("MinProgressWidth exceeds ProgressWidth")
	}
}
