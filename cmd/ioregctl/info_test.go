package main

import (
	"context"
	"testing"
)

func TestInfoCommand(t *testing.T) {
	resetFlags(t)
	jsonOut = true

	output, err := captureOutput(t, func() error {
		return runInfo(context.Background())
	})
	if err != nil {
		t.Fatalf("runInfo() error = %v", err)
	}
	assertJSON(t, output)
	assertContains(t, output, []string{`"os":`, `"native_iokit":`})
}
