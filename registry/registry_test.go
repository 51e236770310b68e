package registry

import "testing"

func TestOccupyRejectsDoubleOccupancy(t *testing.T) {
	r := New()
	if err := r.Occupy(Cyclog, 100); err != nil {
		t.Fatalf("first Occupy: %v", err)
	}
	if err := r.Occupy(Cyclog, 200); err == nil {
		t.Fatal("second Occupy into an occupied slot should fail")
	}
	if r.Get(Cyclog).PID() != 100 {
		t.Fatal("failed Occupy must not disturb the existing occupant")
	}
}

func TestClearEmptiesSlot(t *testing.T) {
	r := New()
	_ = r.Occupy(ServiceManager, 42)
	r.Clear(ServiceManager)
	if r.Get(ServiceManager).Present() {
		t.Fatal("Clear should leave the slot empty")
	}
	if r.Get(ServiceManager).PID() != NoProcess {
		t.Fatal("an empty slot's PID should be the sentinel")
	}
}

func TestSlotOfUnknownPID(t *testing.T) {
	r := New()
	_ = r.Occupy(Cyclog, 7)
	if _, ok := r.SlotOf(999); ok {
		t.Fatal("an untracked pid should not resolve to a slot")
	}
	slot, ok := r.SlotOf(7)
	if !ok || slot != Cyclog {
		t.Fatal("SlotOf should resolve a tracked pid to its slot")
	}
}

func TestAnyPresent(t *testing.T) {
	r := New()
	if r.AnyPresent() {
		t.Fatal("a fresh registry should have no children present")
	}
	_ = r.Occupy(RegularSystemControl, 5)
	if !r.AnyPresent() {
		t.Fatal("AnyPresent should report true once a slot is occupied")
	}
	r.Clear(RegularSystemControl)
	if r.AnyPresent() {
		t.Fatal("AnyPresent should report false once every slot is cleared")
	}
}
