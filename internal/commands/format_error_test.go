package commands

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	apierrors "github.com/diogo/folderchat/internal/errors"
)

func TestFormatErrorMessage_Nil(t *testing.T) {
	if got := formatErrorMessage(nil, "ctx"); got != "" {
		t.Fatalf("expected empty for nil error, got %s", got)
	}
}

func TestFormatErrorMessage_APIError(t *testing.T) {
	e := apierrors.NewAPIError(0, "/api/chat/history/f-1", "Folder not found")
	out := formatErrorMessage(e, "Failed")
	if !strings.Contains(out, "Folder not found") {
		t.Fatalf("expected message in output, got: %s", out)
	}
	if !strings.Contains(out, "Endpoint: /api/chat/history/f-1") {
		t.Fatalf("expected endpoint in message, got: %s", out)
	}
	if !strings.Contains(out, "Hint") {
		t.Fatalf("expected hint, got: %s", out)
	}
}

func TestFormatErrorMessage_OtherErrors(t *testing.T) {
	parse := fmt.Errorf("load: %w", apierrors.NewParseError("unknown role", "messages.3.type"))
	if out := formatErrorMessage(parse, "History"); !strings.Contains(out, "At: messages.3.type") {
		t.Fatalf("expected parse path, got: %s", out)
	}

	cfg := apierrors.NewConfigError("to", "bad")
	if out := formatErrorMessage(cfg, "Config"); !strings.Contains(out, "config show") {
		t.Fatalf("expected config hint, got: %s", out)
	}

	empty := fmt.Errorf("%w: nothing", apierrors.ErrEmptyInput)
	if out := formatErrorMessage(empty, "Format"); !strings.Contains(out, "Hint") {
		t.Fatalf("expected hint for empty input, got: %s", out)
	}

	plain := errors.New("boom")
	if out := formatErrorMessage(plain, "Oops"); strings.Contains(out, "Hint") || !strings.Contains(out, "Oops: boom") {
		t.Fatalf("unexpected output for plain error: %s", out)
	}
}
