package log

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestCtxReturnsStoredLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	ctx := WithLogger(context.Background(), logger)

	// Level methods must be chainable straight off Ctx.
	Ctx(ctx).Info().Str("k", "v").Msg("hello")

	out := buf.String()
	if !strings.Contains(out, `"k":"v"`) || !strings.Contains(out, "hello") {
		t.Fatalf("context logger not used, got %q", out)
	}
}

func TestCtxFallsBackToGlobal(t *testing.T) {
	if Ctx(context.Background()) != L() {
		t.Fatal("expected fallback to the global logger")
	}
}

func TestGlobalLoggerIsChainable(t *testing.T) {
	// Must compile and not panic before Init is called.
	L().Debug().Str("k", "v").Msg("startup")
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"debug":   zerolog.DebugLevel,
		"warn":    zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"fatal":   zerolog.FatalLevel,
		"":        zerolog.InfoLevel,
		"bogus":   zerolog.InfoLevel,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
