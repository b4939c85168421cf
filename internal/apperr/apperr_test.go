package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	if got := KindOf(NotFound("region not found")); got != KindNotFound {
		t.Errorf("expected KindNotFound, got %v", got)
	}
	if got := KindOf(errors.New("plain")); got != KindUnknown {
		t.Errorf("expected KindUnknown for plain error, got %v", got)
	}
	if got := KindOf(nil); got != KindUnknown {
		t.Errorf("expected KindUnknown for nil, got %v", got)
	}
}

func TestKindSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("creating alert: %w", Conflict("duplicate risk level within window"))
	if !IsKind(err, KindConflict) {
		t.Errorf("kind lost through wrapping: %v", err)
	}
}

func TestNewf(t *testing.T) {
	err := Newf(KindInvalidArgument, "invalid role: %s", "SUPERUSER")
	if err.Error() != "invalid role: SUPERUSER" {
		t.Errorf("unexpected message: %s", err.Error())
	}
	if KindOf(err) != KindInvalidArgument {
		t.Errorf("unexpected kind: %v", KindOf(err))
	}
}
