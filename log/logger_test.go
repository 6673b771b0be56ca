package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestFilter(t *testing.T) {
	buf := &bytes.Buffer{}
	SetOutput(buf)
	defer SetOutput(os.Stderr)
	SetMinLevel(LInfo)
	defer SetMinLevel(LStep)

	Printf("[debug] hidden")
	Printf("[warn] shown")
	Println("untagged")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug message not filtered:", out)
	}
	if !strings.Contains(out, "[warn] shown") {
		t.Error("warn message missing:", out)
	}
	if !strings.Contains(out, "untagged") {
		t.Error("untagged message missing:", out)
	}
}

func TestComponentLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	SetOutput(buf)
	defer SetOutput(os.Stderr)
	SetMinLevel(LWarn)
	defer SetMinLevel(LStep)

	l := New("geos")
	l.Printf("[info] hidden")
	l.Printf("[warn] TopologyException")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info message not filtered:", out)
	}
	if !strings.Contains(out, "[geos] [warn] TopologyException") {
		t.Error("component message missing:", out)
	}
}
