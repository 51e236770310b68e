package events

import "testing"

func TestPendingSetAndTestAndClear(t *testing.T) {
	p := New()

	if p.Any() {
		t.Fatal("freshly constructed Pending should have no flags set")
	}

	p.Set(Halt)
	if !p.Halt.Load() {
		t.Fatal("Set(Halt) did not store true")
	}
	if !p.Any() {
		t.Fatal("Any() should report true after Set")
	}

	if !p.TestAndClear(Halt) {
		t.Fatal("TestAndClear should report true on first call")
	}
	if p.TestAndClear(Halt) {
		t.Fatal("TestAndClear should report false once already cleared")
	}
	if p.Halt.Load() {
		t.Fatal("TestAndClear should have cleared the flag")
	}
}

func TestPendingUnknownIsARealFlag(t *testing.T) {
	p := New()
	p.Set(Unknown)
	if !p.Unknown.Load() {
		t.Fatal("Set(Unknown) should raise the unknown flag")
	}
	if !p.TestAndClear(Unknown) {
		t.Fatal("TestAndClear(Unknown) should report true once set")
	}
	if p.Any() {
		t.Fatal("unknown flag should be clear after TestAndClear")
	}
}

func TestPendingAllKindsRoundTrip(t *testing.T) {
	p := New()
	for _, k := range AllKinds {
		p.Set(k)
	}
	for _, k := range AllKinds {
		if !p.TestAndClear(k) {
			t.Fatalf("kind %v was not set", k)
		}
	}
	if p.Any() {
		t.Fatal("all flags should be clear after draining AllKinds")
	}
}
