package svcmgr

import "testing"

func TestSanitizeEnvironDropsStaleFDNames(t *testing.T) {
	in := []string{"PATH=/bin", "LISTEN_FDS=1", "LISTEN_FDNAMES=old-name", "HOME=/root"}
	out := SanitizeEnviron(in)

	for _, kv := range out {
		if kv == "LISTEN_FDNAMES=old-name" {
			t.Fatal("LISTEN_FDNAMES should be stripped when LISTEN_FDS is present")
		}
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 entries after stripping, got %d: %v", len(out), out)
	}
}

func TestSanitizeEnvironLeavesEnvAloneWithoutListenFDs(t *testing.T) {
	in := []string{"PATH=/bin", "LISTEN_FDNAMES=leftover"}
	out := SanitizeEnviron(in)

	if len(out) != len(in) {
		t.Fatalf("expected env untouched without LISTEN_FDS, got %v", out)
	}
}
