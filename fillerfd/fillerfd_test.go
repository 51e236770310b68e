package fillerfd

import (
	"os"
	"testing"
)

func TestReserveForcesNewDescriptorsHigh(t *testing.T) {
	if _, err := Reserve(); err != nil {
		t.Fatalf("Reserve: %v", err)
	}

	f, err := os.Open(os.DevNull)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	if int(f.Fd()) < Count {
		t.Fatalf("expected descriptors opened after Reserve to land at or above %d, got %d", Count, f.Fd())
	}
}

func TestFillRejectsOutOfRangeAndDoubleFill(t *testing.T) {
	r, err := Reserve()
	if err != nil {
		t.Fatalf("Reserve: %v", err)
	}

	tmp, err := os.CreateTemp("", "fillerfd")
	if err != nil {
		t.Fatalf("CreateTemp: %v", err)
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	if err := r.Fill(Count, tmp); err == nil {
		t.Fatal("Fill should reject an out-of-range fd")
	}

	if err := r.Fill(0, tmp); err != nil {
		t.Fatalf("first Fill(0) should succeed: %v", err)
	}
	if err := r.Fill(0, tmp); err == nil {
		t.Fatal("a second Fill(0) should be rejected: each slot is filled exactly once")
	}
}
