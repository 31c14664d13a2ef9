package pg

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestCompact_CollapsesWhitespace(t *testing.T) {
	in := "select p.id\n\tfrom   posts\r\nwhere p.modified > $1"
	got := compact(in)
	want := "select p.id from posts where p.modified > $1"
	if got != want {
		t.Fatalf("compact = %q, want %q", got, want)
	}
}

func TestTracer_EmitsQueryLine(t *testing.T) {
	var buf bytes.Buffer
	root := zerolog.New(&buf)
	tr := Tracer(root)

	tr.OnQuery(context.Background(), QueryEvent{
		SQL:       "select 1",
		ElapsedUS: 1500,
		Slow:      false,
	})

	out := buf.String()
	if !strings.Contains(out, "pg query") {
		t.Fatalf("missing message: %s", out)
	}
	if !strings.Contains(out, `"sql":"select 1"`) {
		t.Fatalf("missing sql field: %s", out)
	}
	if !strings.Contains(out, `"elapsed_ms":1.5`) {
		t.Fatalf("missing elapsed field: %s", out)
	}
}

func TestTracer_SlowQueriesWarn(t *testing.T) {
	var buf bytes.Buffer
	root := zerolog.New(&buf)
	tr := Tracer(root)

	tr.OnQuery(context.Background(), QueryEvent{SQL: "select pg_sleep(10)", Slow: true})

	if !strings.Contains(buf.String(), `"level":"warn"`) {
		t.Fatalf("expected warn level: %s", buf.String())
	}
}
