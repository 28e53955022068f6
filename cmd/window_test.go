package cmd

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestWindowCommand_Run(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantID    uint32
		wantIndex int
		detached  bool
		wantErr   string
	}{
		{name: "index 0", args: []string{"--index", "0"}, wantID: 4, wantIndex: 0},
		{name: "index 3", args: []string{"--index", "3"}, wantID: 1, wantIndex: 3},
		{name: "index out of range", args: []string{"--index", "4"}, wantErr: "out of range"},
		{name: "title regex", args: []string{"--title", "(Main|Login)"}, wantID: 4, wantIndex: 0},
		{name: "title is full match", args: []string{"--title", "Sett"}, wantErr: "no window matches"},
		{name: "scene attached", args: []string{"--scene", "10"}, wantID: 2, wantIndex: 2},
		{name: "scene hex", args: []string{"--scene", "0xa"}, wantID: 2, wantIndex: 2},
		{name: "scene detached", args: []string{"--scene", "11"}, detached: true},
		{name: "unknown scene", args: []string{"--scene", "12"}, wantErr: "not found"},
		{name: "bad scene id", args: []string{"--scene", "ten"}, wantErr: "invalid scene id"},
		{name: "scene with index", args: []string{"--scene", "10", "--index", "0"}, wantErr: "cannot be combined"},
		{name: "no selector", args: nil, wantErr: "specify --index or --title"},
		{name: "both selectors", args: []string{"--index", "0", "--title", "Main"}, wantErr: "only one"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"window", "--fixture", writeFixture(t), "--format", "json"}, tt.args...)
			out, err := runCLI(t, args...)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("got %v, want error containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			var got WindowResult
			if err := json.Unmarshal([]byte(out), &got); err != nil {
				t.Fatalf("decode %q: %v", out, err)
			}
			if got.Detached != tt.detached {
				t.Errorf("detached = %v, want %v", got.Detached, tt.detached)
			}
			if tt.detached {
				if got.Window != nil {
					t.Errorf("detached scene reported window %+v", got.Window)
				}
				return
			}
			if got.Window == nil {
				t.Fatal("no window in result")
			}
			if got.Window.ID != tt.wantID || got.Window.Index != tt.wantIndex {
				t.Errorf("got id=%d index=%d, want id=%d index=%d",
					got.Window.ID, got.Window.Index, tt.wantID, tt.wantIndex)
			}
		})
	}
}

func TestWindowCommand_Attributes(t *testing.T) {
	out, err := runCLI(t, "window", "--fixture", writeFixture(t), "--format", "json", "--index", "1")
	if err != nil {
		t.Fatal(err)
	}
	var got WindowResult
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatal(err)
	}
	w := got.Window
	if w == nil || w.ID != 3 {
		t.Fatalf("window = %+v, want popup 3", w)
	}
	if w.Kind != "popup" {
		t.Errorf("kind = %q, want popup", w.Kind)
	}
	if w.Title != nil {
		t.Errorf("popup has title %q", *w.Title)
	}
	if w.Owner != 2 {
		t.Errorf("owner = %d, want 2", w.Owner)
	}
}
