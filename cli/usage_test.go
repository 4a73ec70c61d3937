package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestShowUsage_ListsEveryFlag(t *testing.T) {
	var buf bytes.Buffer
	ShowUsage(&buf)
	out := buf.String()
	if !strings.Contains(out, "Usage:") {
		t.Fatalf("expected usage header, got: %s", out)
	}
	for _, def := range flagTable {
		if !strings.Contains(out, "-"+def.names[0]) {
			t.Errorf("usage does not mention -%s", def.names[0])
		}
	}
}

func TestShowUsage_OutputPathPosition(t *testing.T) {
	var buf bytes.Buffer
	ShowUsage(&buf)
	if !strings.Contains(buf.String(), "fourth argument that is not a flag") {
		t.Errorf("usage should say flags may surround the output path:\n%s", buf.String())
	}
}
