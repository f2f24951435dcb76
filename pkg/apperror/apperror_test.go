package apperror

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	cases := []struct {
		err  error
		want Kind
	}{
		{NotFound("task not found"), KindNotFound},
		{Forbidden("nope"), KindForbidden},
		{Conflict("duplicate"), KindConflict},
		{InvalidInput("bad %q", "field"), KindInvalidInput},
		{Unauthenticated("who are you"), KindUnauthenticated},
		{Internal(errors.New("disk"), "boom"), KindInternal},
		{errors.New("plain error"), KindInternal},
	}
	for _, tc := range cases {
		if got := KindOf(tc.err); got != tc.want {
			t.Errorf("KindOf(%v) = %v, want %v", tc.err, got, tc.want)
		}
	}
}

func TestKindOfWrapped(t *testing.T) {
	wrapped := fmt.Errorf("fetch user: %w", NotFound("user not found"))
	if !IsKind(wrapped, KindNotFound) {
		t.Errorf("wrapped error lost its kind: %v", wrapped)
	}
}

func TestIsKindNilError(t *testing.T) {
	if IsKind(nil, KindNotFound) {
		t.Error("nil error must not match any kind")
	}
}

func TestInternalPreservesCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := Internal(cause, "store write failed")
	if !errors.Is(err, cause) {
		t.Error("cause should be reachable through Unwrap")
	}
	if err.Error() != "store write failed: connection reset" {
		t.Errorf("message = %q", err.Error())
	}
}

func TestKindCodes(t *testing.T) {
	if KindNotFound.Code() != "NOT_FOUND" {
		t.Errorf("code = %q", KindNotFound.Code())
	}
	if Kind(99).Code() != "INTERNAL" {
		t.Errorf("unknown kind code = %q", Kind(99).Code())
	}
}
