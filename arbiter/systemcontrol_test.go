package arbiter

import (
	"reflect"
	"strings"
	"testing"

	"rootsv/platform"
)

func TestBuildSystemControlArgvStartVerbUserMode(t *testing.T) {
	argv := buildSystemControlArgv(platform.UserSessionRoot, "start", "halt", nil)
	want := []string{
		"move-to-control-group", "../system-control.slice",
		"system-control", "start", "--verbose", "--user", "halt",
	}
	if !reflect.DeepEqual(argv, want) {
		t.Fatalf("argv = %v, want %v", argv, want)
	}
}

func TestBuildSystemControlArgvActivateOption(t *testing.T) {
	argv := buildSystemControlArgv(platform.SystemRoot, "activate", "emergency", nil)
	joined := strings.Join(argv, " ")
	if !strings.HasSuffix(joined, "system-control activate --verbose emergency") {
		t.Fatalf("expected activate subcommand with trailing option, got %q", joined)
	}
	if strings.Contains(joined, "--user") {
		t.Fatalf("SystemRoot must not carry --user, got %q", joined)
	}
}

func TestBuildSystemControlArgvInitAppendsRootArgv(t *testing.T) {
	argv := buildSystemControlArgv(platform.SystemRoot, "init", "", []string{"/sbin/rootsv", "--debug"})
	joined := strings.Join(argv, " ")
	if !strings.HasSuffix(joined, "system-control init /sbin/rootsv --debug") {
		t.Fatalf("expected the root's own argv appended after init, got %q", joined)
	}
	if strings.Contains(joined, "--verbose") {
		t.Fatalf("the init one-shot must not carry --verbose, got %q", joined)
	}
}
