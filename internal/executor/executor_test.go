package executor

import (
	"context"
	"strings"
	"testing"
)

func TestRunCapturesStdout(t *testing.T) {
	out, err := New().Run(context.Background(), "sh", "-c", "echo hello")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if strings.TrimSpace(out) != "hello" {
		t.Errorf("out = %q", out)
	}
}

func TestRunIncludesStderrInError(t *testing.T) {
	_, err := New().Run(context.Background(), "sh", "-c", "echo broken >&2; exit 3")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "broken") {
		t.Errorf("error = %v, want stderr included", err)
	}
}

func TestRunMissingBinary(t *testing.T) {
	if _, err := New().Run(context.Background(), "definitely-not-a-binary-xyz"); err == nil {
		t.Fatal("expected error for missing binary")
	}
}

func TestRunHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := New().Run(ctx, "sh", "-c", "sleep 5"); err == nil {
		t.Fatal("expected error for canceled context")
	}
}
