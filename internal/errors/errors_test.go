package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	err := New(RootNotFound, "no package root found for /lib/app.jar")
	want := "[ROOT_NOT_FOUND] no package root found for /lib/app.jar"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	wrapped := Wrap(Canceled, "folder resolution canceled", stderrors.New("context canceled"))
	want = "[CANCELED] folder resolution canceled: context canceled"
	if wrapped.Error() != want {
		t.Errorf("Error() = %q, want %q", wrapped.Error(), want)
	}
}

func TestNewf(t *testing.T) {
	err := Newf(UnknownNodeKind, "unknown classpath item type: %d", 99)
	if err.Code != UnknownNodeKind {
		t.Errorf("Code = %s", err.Code)
	}
	if err.Message != "unknown classpath item type: 99" {
		t.Errorf("Message = %q", err.Message)
	}
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("disk gone")
	err := Wrap(IOFailure, "read archive entry", cause)

	if !stderrors.Is(err, cause) {
		t.Error("Expected wrapped cause to be reachable via errors.Is")
	}
	if New(IOFailure, "no cause").Unwrap() != nil {
		t.Error("Expected nil cause")
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"direct", New(RootNotFound, "m"), RootNotFound},
		{"wrapped in fmt", fmt.Errorf("query failed: %w", New(Canceled, "m")), Canceled},
		{"plain error", stderrors.New("plain"), ""},
		{"nil", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Errorf("CodeOf = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsCode(t *testing.T) {
	err := New(UnknownNodeKind, "m")
	if !IsCode(err, UnknownNodeKind) {
		t.Error("Expected matching code")
	}
	if IsCode(err, RootNotFound) {
		t.Error("Expected non-matching code")
	}
}
