package logpipe

import (
	"reflect"
	"testing"

	"rootsv/config"
	"rootsv/platform"
)

func TestCandidateDirsKeepDirOverridesEverything(t *testing.T) {
	got := candidateDirs(platform.SystemRoot, true, "/run/system-manager/log/previous")
	want := []string{"/run/system-manager/log/previous"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("keepDir should be the sole candidate regardless of tryAll, got %v want %v", got, want)
	}
}

func TestCandidateDirsWithoutKeepDirFallsBackToConfig(t *testing.T) {
	got := candidateDirs(platform.SystemRoot, false, "")
	want := config.LogDirectories(platform.SystemRoot, false)
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected the plain config.LogDirectories result, got %v want %v", got, want)
	}

	gotAll := candidateDirs(platform.SystemRoot, true, "")
	wantAll := config.LogDirectories(platform.SystemRoot, true)
	if !reflect.DeepEqual(gotAll, wantAll) {
		t.Fatalf("tryAll should still widen the search when keepDir is empty, got %v want %v", gotAll, wantAll)
	}
}
