package translate

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/22AIML023Hiren/video-summariser/internal/utils"
)

type fakeBackend struct {
	name   string
	out    string
	err    error
	calls  int
	lastIn Request
}

func (f *fakeBackend) Name() string { return f.name }

func (f *fakeBackend) Translate(_ context.Context, req Request) (string, error) {
	f.calls++
	f.lastIn = req
	return f.out, f.err
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestTranslateMissingCredential(t *testing.T) {
	primary := &fakeBackend{name: "primary", out: "ok"}
	fallback := &fakeBackend{name: "fallback", out: "ok"}
	tr := NewTranslator(primary, fallback, quietLogger())

	_, err := tr.Translate(context.Background(), "hi", "hello world", "", "auto")
	if err == nil {
		t.Fatal("expected error for missing credential")
	}
	if !utils.IsCode(err, utils.CodeTranslation) {
		t.Errorf("expected CodeTranslation, got %v", err)
	}
	if !strings.Contains(utils.Detail(err), "Bhashini API key missing") {
		t.Errorf("Detail = %q, want mention of missing key", utils.Detail(err))
	}
	if primary.calls != 0 {
		t.Errorf("primary called %d times, want 0", primary.calls)
	}
	if fallback.calls != 0 {
		t.Errorf("fallback called %d times, want 0 (never a substitute for a missing credential)", fallback.calls)
	}
}

func TestTranslatePrimarySuccess(t *testing.T) {
	primary := &fakeBackend{name: "primary", out: "नमस्ते"}
	fallback := &fakeBackend{name: "fallback", out: "unused"}
	tr := NewTranslator(primary, fallback, quietLogger())

	got, err := tr.Translate(context.Background(), "hi", "hello", "K", "en")
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if got != "नमस्ते" {
		t.Errorf("got %q, want primary result", got)
	}
	if fallback.calls != 0 {
		t.Errorf("fallback called %d times, want 0", fallback.calls)
	}
	if primary.lastIn.Source != "en" || primary.lastIn.Target != "hi" || primary.lastIn.Credential != "K" {
		t.Errorf("primary request = %+v", primary.lastIn)
	}
}

func TestTranslateFallbackOnPrimaryFailure(t *testing.T) {
	primary := &fakeBackend{name: "primary", err: errors.New("status 401")}
	fallback := &fakeBackend{name: "fallback", out: "नमस्ते"}
	tr := NewTranslator(primary, fallback, quietLogger())

	got, err := tr.Translate(context.Background(), "hi", "hello world", "bad-key", "auto")
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if got != "नमस्ते" {
		t.Errorf("got %q, want fallback result", got)
	}
	if fallback.calls != 1 {
		t.Fatalf("fallback called %d times, want exactly 1", fallback.calls)
	}
	if fallback.lastIn.Text != "hello world" || fallback.lastIn.Target != "hi" {
		t.Errorf("fallback request = %+v, want same text and target", fallback.lastIn)
	}
	if fallback.lastIn.Source != "" {
		t.Errorf("fallback source = %q, want no source hint", fallback.lastIn.Source)
	}
	if fallback.lastIn.Credential != "" {
		t.Errorf("fallback credential = %q, want none", fallback.lastIn.Credential)
	}
}

func TestTranslateBothFail(t *testing.T) {
	primary := &fakeBackend{name: "primary", err: errors.New("primary down")}
	fallback := &fakeBackend{name: "fallback", err: errors.New("fallback down")}
	tr := NewTranslator(primary, fallback, quietLogger())

	_, err := tr.Translate(context.Background(), "hi", "hello world", "K", "auto")
	if err == nil {
		t.Fatal("expected error when both backends fail")
	}
	if !utils.IsCode(err, utils.CodeTranslation) {
		t.Errorf("expected CodeTranslation, got %v", err)
	}
	detail := utils.Detail(err)
	if !strings.Contains(detail, "primary down") || !strings.Contains(detail, "fallback down") {
		t.Errorf("Detail = %q, want both causes mentioned", detail)
	}
	if !strings.Contains(detail, "Fallback translation also failed") {
		t.Errorf("Detail = %q, want fallback failure prefix", detail)
	}
}

func TestTranslateTruncatesInput(t *testing.T) {
	primary := &fakeBackend{name: "primary", out: "ok"}
	fallback := &fakeBackend{name: "fallback"}
	tr := NewTranslator(primary, fallback, quietLogger())

	long := strings.Repeat("क", 6000)
	if _, err := tr.Translate(context.Background(), "hi", long, "K", "auto"); err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if n := len([]rune(primary.lastIn.Text)); n != maxInputChars {
		t.Errorf("primary received %d runes, want %d", n, maxInputChars)
	}
}

func TestTranslateDefaultsSourceToAuto(t *testing.T) {
	primary := &fakeBackend{name: "primary", out: "ok"}
	tr := NewTranslator(primary, &fakeBackend{name: "fallback"}, quietLogger())

	if _, err := tr.Translate(context.Background(), "hi", "hello", "K", ""); err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if primary.lastIn.Source != "auto" {
		t.Errorf("source = %q, want auto", primary.lastIn.Source)
	}
}
