package main

import (
	"testing"
)

func TestRootCommand_Subcommands(t *testing.T) {
	want := map[string]bool{
		"keys": false, "get": false, "dump": false, "dvfs": false,
		"profiles": false, "info": false, "version": false,
	}
	for _, c := range rootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestRootCommand_ExecuteKeys(t *testing.T) {
	resetFlags(t)
	defer rootCmd.SetArgs(nil)

	rootCmd.SetArgs([]string{"keys", "pmgr", "--match", "name", "--archive", archivePath})
	output, err := captureOutput(t, rootCmd.Execute)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	assertContains(t, output, []string{"Total: 10 keys"})
}

func TestRootCommand_FormatFlag(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		wantErr  bool
		wantJSON bool
	}{
		{name: "text", format: "text"},
		{name: "json", format: "json", wantJSON: true},
		{name: "unknown", format: "reg", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags(t)
			defer rootCmd.SetArgs(nil)

			rootCmd.SetArgs([]string{"keys", "pmgr", "--match", "name", "--archive", archivePath, "--format", tt.format})
			output, err := captureOutput(t, rootCmd.Execute)

			if (err != nil) != tt.wantErr {
				t.Fatalf("Execute() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if tt.wantJSON {
				assertJSON(t, output)
				assertContains(t, output, []string{`"count": 10`})
			} else {
				assertContains(t, output, []string{"Total: 10 keys"})
			}
		})
	}
}
