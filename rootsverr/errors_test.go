package rootsverr

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind     ErrorKind
		expected string
	}{
		{ErrNotFound, "not found"},
		{ErrSlotBusy, "slot busy"},
		{ErrInvalidState, "invalid state"},
		{ErrInvalidConfig, "invalid config"},
		{ErrPermission, "permission denied"},
		{ErrResource, "resource error"},
		{ErrMount, "mount error"},
		{ErrCGroup, "cgroup error"},
		{ErrClock, "clock error"},
		{ErrSpawn, "spawn error"},
		{ErrReboot, "reboot error"},
		{ErrInternal, "internal error"},
		{ErrorKind(999), "unknown error"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.expected {
				t.Errorf("ErrorKind.String() = %q, want %q", got, tt.expected)
			}
			if got := tt.kind.Error(); got != tt.expected {
				t.Errorf("ErrorKind.Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestRootErrorError(t *testing.T) {
	tests := []struct {
		name     string
		err      *RootError
		expected string
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: "<nil>",
		},
		{
			name: "full error",
			err: &RootError{
				Op:     "spawn",
				Slot:   "cyclog",
				Kind:   ErrSpawn,
				Detail: "exec failed",
				Err:    fmt.Errorf("no such file"),
			},
			expected: "spawn: slot cyclog: exec failed: no such file",
		},
		{
			name: "without slot",
			err: &RootError{
				Op:     "mount",
				Kind:   ErrMount,
				Detail: "target busy",
			},
			expected: "mount: target busy",
		},
		{
			name: "kind only",
			err: &RootError{
				Kind: ErrPermission,
			},
			expected: "permission denied",
		},
		{
			name: "with underlying error only",
			err: &RootError{
				Op:  "reap",
				Err: fmt.Errorf("ESRCH"),
			},
			expected: "reap: not found: ESRCH",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("RootError.Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestRootErrorUnwrap(t *testing.T) {
	underlying := fmt.Errorf("boom")
	err := Wrap(underlying, ErrInternal, "op")

	if errors.Unwrap(err) != underlying {
		t.Errorf("Unwrap() did not return underlying error")
	}

	var nilErr *RootError
	if nilErr.Unwrap() != nil {
		t.Errorf("nil RootError.Unwrap() should return nil")
	}
}

func TestErrorsIsMatchesBareKind(t *testing.T) {
	err := Wrap(fmt.Errorf("boom"), ErrMount, "mount")

	if !errors.Is(err, ErrMount) {
		t.Errorf("errors.Is should match the wrapped kind directly")
	}
	if errors.Is(err, ErrCGroup) {
		t.Errorf("errors.Is should not match a different kind")
	}

	wrapped := fmt.Errorf("outer: %w", err)
	if !errors.Is(wrapped, ErrMount) {
		t.Errorf("errors.Is should match the kind through further wrapping")
	}
}

func TestIsKind(t *testing.T) {
	err := Wrap(fmt.Errorf("boom"), ErrClock, "align")

	if !IsKind(err, ErrClock) {
		t.Errorf("IsKind() should report true for matching kind")
	}
	if IsKind(err, ErrReboot) {
		t.Errorf("IsKind() should report false for non-matching kind")
	}
	if IsKind(fmt.Errorf("plain"), ErrClock) {
		t.Errorf("IsKind() should report false for an unclassified error")
	}
}

func TestRTCUnsupportedSentinel(t *testing.T) {
	if !IsKind(ErrRTCUnsupported, ErrClock) {
		t.Errorf("ErrRTCUnsupported should carry the clock kind")
	}
}
