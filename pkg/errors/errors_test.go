package errors

import (
	"errors"
	"strings"
	"testing"
)

// recordingHandler captures reported errors for assertions.
type recordingHandler struct {
	errs   []*Error
	panics []*PanicError
}

func (h *recordingHandler) HandleError(err *Error)      { h.errs = append(h.errs, err) }
func (h *recordingHandler) HandlePanic(err *PanicError) { h.panics = append(h.panics, err) }

func TestErrorFormatting(t *testing.T) {
	underlying := errors.New("boom")
	err := &Error{Op: "engine.RegisterPlugins", Kind: KindEngine, Err: underlying}

	got := err.Error()
	if !strings.Contains(got, "engine.RegisterPlugins") || !strings.Contains(got, "engine") || !strings.Contains(got, "boom") {
		t.Errorf("Unexpected error string: %q", got)
	}

	if !errors.Is(err, underlying) {
		t.Error("Unwrap should expose the underlying error")
	}
}

func TestKindString(t *testing.T) {
	cases := map[Kind]string{
		KindUnknown: "unknown",
		KindEngine:  "engine",
		KindPreset:  "preset",
		KindWatch:   "watch",
		KindPanic:   "panic",
	}
	for kind, want := range cases {
		if kind.String() != want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(kind), kind.String(), want)
		}
	}
}

func TestReportSetsTimestamp(t *testing.T) {
	rec := &recordingHandler{}
	SetHandler(rec)
	defer SetHandler(nil)

	Report(&Error{Op: "op", Kind: KindPreset, Err: errors.New("bad table")})

	if len(rec.errs) != 1 {
		t.Fatalf("Expected 1 reported error, got %d", len(rec.errs))
	}
	if rec.errs[0].Timestamp.IsZero() {
		t.Error("Report should stamp the error time")
	}
}

func TestReportNilIsNoop(t *testing.T) {
	rec := &recordingHandler{}
	SetHandler(rec)
	defer SetHandler(nil)

	Report(nil)
	ReportPanic(nil)

	if len(rec.errs) != 0 || len(rec.panics) != 0 {
		t.Error("Nil reports should be dropped")
	}
}

func TestRecoverReportsPanic(t *testing.T) {
	rec := &recordingHandler{}
	SetHandler(rec)
	defer SetHandler(nil)

	func() {
		defer Recover("test.op")
		panic("kaboom")
	}()

	if len(rec.panics) != 1 {
		t.Fatalf("Expected 1 reported panic, got %d", len(rec.panics))
	}
	p := rec.panics[0]
	if p.Op != "test.op" || p.Value != "kaboom" {
		t.Errorf("Unexpected panic report: %+v", p)
	}
	if p.StackTrace == "" {
		t.Error("Panic report should carry a stack trace")
	}
}

func TestSetHandlerNilRestoresDefault(t *testing.T) {
	SetHandler(&recordingHandler{})
	SetHandler(nil)

	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("Expected default LogHandler, got %T", DefaultHandler)
	}
}
