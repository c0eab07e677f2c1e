package folio

import (
	"testing"

	"github.com/user-none/folio/achievements"
)

func TestCountLabel(t *testing.T) {
	tests := []struct {
		name     string
		progress achievements.Progress
		want     string
	}{
		{"none unlocked", achievements.Progress{Unlocked: 0, Total: 6}, "0 / 6 Achievements Unlocked"},
		{"partially unlocked", achievements.Progress{Unlocked: 3, Total: 6}, "3 / 6 Achievements Unlocked"},
		{"all unlocked", achievements.Progress{Unlocked: 6, Total: 6}, "6 / 6 Achievements Unlocked"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := countLabel(tt.progress); got != tt.want {
				t.Errorf("countLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestVaultViewMarkDirty(t *testing.T) {
	v := NewVaultView(nil)

	if v.consumeDirty() {
		t.Error("a fresh view should not be dirty")
	}

	v.MarkDirty()
	if !v.consumeDirty() {
		t.Error("MarkDirty should flag a rebuild")
	}
	if v.consumeDirty() {
		t.Error("consuming the flag should clear it")
	}
}

func TestRectAt(t *testing.T) {
	r := rectAt(10, 20, 30, 40)
	if r.Min.X != 10 || r.Min.Y != 20 || r.Max.X != 40 || r.Max.Y != 60 {
		t.Errorf("rectAt(10, 20, 30, 40) = %v", r)
	}
}
