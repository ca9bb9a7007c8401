package errors

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestInteractErrorString(t *testing.T) {
	err := &InteractError{
		Op:   "multirange.Slider.Render",
		Kind: KindCallback,
		Err:  fmt.Errorf("formatter failed"),
	}
	got := err.Error()
	want := "multirange.Slider.Render [callback]: formatter failed"
	if got != want {
		t.Errorf("InteractError.Error() = %q, want %q", got, want)
	}
}

func TestInteractErrorWithWidget(t *testing.T) {
	err := &InteractError{
		Op:     "tree.Tree.SelectItem",
		Kind:   KindCallback,
		Widget: "files",
		Err:    fmt.Errorf("boom"),
	}
	want := "widget=files"
	if got := err.Error(); !strings.Contains(got, want) {
		t.Errorf("error string %q should contain %q", got, want)
	}
}

func TestInteractErrorUnwrap(t *testing.T) {
	inner := &DecodeError{Source: "a.yaml", Field: "slider.step", Got: "x"}
	err := &InteractError{Op: "config.Load", Kind: KindConfig, Err: inner}
	if err.Unwrap() != inner {
		t.Error("Unwrap should return the wrapped error")
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindCallback, "callback"},
		{KindConfig, "config"},
		{KindScenario, "scenario"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{Value: "test panic", Timestamp: time.Now()}
	if got, want := err.Error(), "panic: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
	err.Op = "gestures.TrackDrag"
	if got, want := err.Error(), "panic in gestures.TrackDrag: test panic"; got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestDecodeErrorString(t *testing.T) {
	err := &DecodeError{Source: "scenario.yaml", Field: "events[2].x", Got: true}
	want := "cannot decode events[2].x in scenario.yaml: got true (bool)"
	if got := err.Error(); got != want {
		t.Errorf("DecodeError.Error() = %q, want %q", got, want)
	}
}

func TestReport(t *testing.T) {
	var captured *InteractError
	handler := &testHandler{onError: func(err *InteractError) { captured = err }}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	Report(&InteractError{Op: "test.op", Kind: KindConfig, Err: fmt.Errorf("bad")})

	if captured == nil {
		t.Fatal("expected error to be captured")
	}
	if captured.Op != "test.op" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.op")
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestGuardReportsPanic(t *testing.T) {
	var captured *PanicError
	handler := &testHandler{onPanic: func(err *PanicError) { captured = err }}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	Guard("test.guard", func() { panic("intentional test panic") })

	if captured == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	if captured.Value != "intentional test panic" {
		t.Errorf("Value = %v, want %q", captured.Value, "intentional test panic")
	}
	if captured.Op != "test.guard" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.guard")
	}
	if captured.StackTrace == "" {
		t.Error("expected StackTrace to be set")
	}
}

func TestGuard(t *testing.T) {
	var panics int
	handler := &testHandler{onPanic: func(*PanicError) { panics++ }}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	if !Guard("test.ok", func() {}) {
		t.Error("Guard should report success for a normal return")
	}
	if !Guard("test.nil", nil) {
		t.Error("Guard should treat a nil func as success")
	}
	if Guard("test.panic", func() { panic("x") }) {
		t.Error("Guard should report failure for a panic")
	}
	if panics != 1 {
		t.Errorf("panics = %d, want 1", panics)
	}
}

func TestCaptureStack(t *testing.T) {
	stack := CaptureStack()
	if stack == "" {
		t.Error("expected non-empty stack trace")
	}
	if !strings.Contains(stack, "testing") && !strings.Contains(stack, "runtime") {
		t.Errorf("stack trace should contain testing or runtime frames, got: %s", stack)
	}
}

func TestSetHandlerNil(t *testing.T) {
	SetHandler(nil)
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should set LogHandler, got %T", DefaultHandler)
	}
}

func TestLogHandler(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Out: &buf}
	h.HandleError(&InteractError{Op: "config.Load", Err: fmt.Errorf("missing")})
	h.HandlePanic(&PanicError{Op: "tree.Tree.SelectItem", Value: "boom"})

	want := "[interact error] config.Load: missing\n[interact panic] tree.Tree.SelectItem: boom\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestLogHandlerVerbose(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Out: &buf, Verbose: true}
	h.HandleError(&InteractError{Op: "op", Kind: KindCallback, Widget: "w", Err: fmt.Errorf("e"), StackTrace: "frames"})
	got := buf.String()
	for _, want := range []string{"[callback]", "widget=w", "Stack trace:\nframes"} {
		if !strings.Contains(got, want) {
			t.Errorf("verbose output %q should contain %q", got, want)
		}
	}
}

type testHandler struct {
	onError func(*InteractError)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *InteractError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}
