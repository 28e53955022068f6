package cmd

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestListCommand_Flags(t *testing.T) {
	flags := listCmd.Flags()

	tests := []struct {
		name     string
		flagType string
	}{
		{"ordered", "bool"},
		{"target-id", "string"},
		{"target-title", "string"},
	}

	for _, tt := range tests {
		f := flags.Lookup(tt.name)
		if f == nil {
			t.Errorf("expected flag %q not found", tt.name)
			continue
		}
		if f.Value.Type() != tt.flagType {
			t.Errorf("flag %q: expected type %q, got %q", tt.name, tt.flagType, f.Value.Type())
		}
	}
}

func TestListCommand_IsRegistered(t *testing.T) {
	for _, c := range rootCmd.Commands() {
		if c.Name() == "list" {
			return
		}
	}
	t.Error("list command not registered on root")
}

func decodeListResult(t *testing.T, out string) ListResult {
	t.Helper()
	var got ListResult
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	return got
}

func resultIDs(r ListResult) []uint32 {
	out := make([]uint32, len(r.Windows))
	for i, w := range r.Windows {
		out[i] = w.ID
	}
	return out
}

func TestListCommand_Run(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantIDs    []uint32
		wantTarget uint32
		wantScores []int
	}{
		{
			name:    "newest first",
			args:    nil,
			wantIDs: []uint32{4, 3, 2, 1},
		},
		{
			name:       "ordered without target keeps list order",
			args:       []string{"--ordered"},
			wantIDs:    []uint32{4, 3, 2, 1},
			wantScores: []int{2, 2, 2, 2},
		},
		{
			name:       "ordered against popup",
			args:       []string{"--ordered", "--target-id", "3"},
			wantIDs:    []uint32{3, 2, 1, 4},
			wantTarget: 3,
			wantScores: []int{0, 1, 1, 2},
		},
		{
			name:       "ordered against settings by title",
			args:       []string{"--ordered", "--target-title", "Settings"},
			wantIDs:    []uint32{2, 1, 4, 3},
			wantTarget: 2,
			wantScores: []int{0, 1, 2, 2},
		},
		{
			name:       "hex target id",
			args:       []string{"--target-id", "0x4"},
			wantIDs:    []uint32{4, 3, 2, 1},
			wantTarget: 4,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"list", "--fixture", writeFixture(t), "--format", "json"}, tt.args...)
			out, err := runCLI(t, args...)
			if err != nil {
				t.Fatal(err)
			}
			got := decodeListResult(t, out)
			if !got.OK || got.Action != "list" {
				t.Errorf("ok=%v action=%q", got.OK, got.Action)
			}
			ids := resultIDs(got)
			if len(ids) != len(tt.wantIDs) {
				t.Fatalf("got %v, want %v", ids, tt.wantIDs)
			}
			for i := range ids {
				if ids[i] != tt.wantIDs[i] {
					t.Fatalf("got %v, want %v", ids, tt.wantIDs)
				}
			}
			if got.Target != tt.wantTarget {
				t.Errorf("target = %d, want %d", got.Target, tt.wantTarget)
			}
			for i, w := range got.Windows {
				if w.Target != (w.ID == tt.wantTarget) {
					t.Errorf("window %d: target flag = %v", w.ID, w.Target)
				}
				if tt.wantScores == nil {
					if w.Proximity != nil {
						t.Errorf("window %d: unexpected proximity", w.ID)
					}
					continue
				}
				if w.Proximity == nil || *w.Proximity != tt.wantScores[i] {
					t.Errorf("window %d: proximity = %v, want %d", w.ID, w.Proximity, tt.wantScores[i])
				}
			}
		})
	}
}

func TestListCommand_IndexIsListPosition(t *testing.T) {
	out, err := runCLI(t, "list", "--fixture", writeFixture(t), "--format", "json", "--ordered", "--target-id", "1")
	if err != nil {
		t.Fatal(err)
	}
	want := map[uint32]int{4: 0, 3: 1, 2: 2, 1: 3}
	for _, w := range decodeListResult(t, out).Windows {
		if w.Index != want[w.ID] {
			t.Errorf("window %d: index = %d, want %d", w.ID, w.Index, want[w.ID])
		}
	}
}

func TestListCommand_TargetErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown id", []string{"--target-id", "99"}, "no window matches"},
		{"bad id", []string{"--target-id", "abc"}, "invalid"},
		{"both", []string{"--target-id", "1", "--target-title", "Main"}, "only one"},
		{"bad regex", []string{"--target-title", "("}, "invalid title pattern"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"list", "--fixture", writeFixture(t)}, tt.args...)
			_, err := runCLI(t, args...)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("got %v, want error containing %q", err, tt.want)
			}
		})
	}
}
