package compositor

import (
	"strings"
	"testing"

	"github.com/pixelbeat/dotmatrix/pkg/atlas"
)

func TestObjectBatchAdd(t *testing.T) {
	b := NewObjectBatch(atlas.Atlas{Cols: 16, Rows: 16})

	if err := b.Add(10, 20, 0); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := b.Add(30, 40, 255); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if b.Len() != 2 {
		t.Errorf("Len() = %d, want 2", b.Len())
	}
}

func TestObjectBatchAddIDOutOfRange(t *testing.T) {
	b := NewObjectBatch(atlas.Atlas{Cols: 16, Rows: 16})

	err := b.Add(0, 0, 256)
	if err == nil {
		t.Fatal("expected error for id past atlas capacity")
	}
	if !strings.Contains(err.Error(), "out of range") {
		t.Errorf("unexpected error: %v", err)
	}
	if b.Len() != 0 {
		t.Errorf("failed Add must not grow the batch, Len() = %d", b.Len())
	}
}

func TestObjectBatchLoad(t *testing.T) {
	b := NewObjectBatch(atlas.Atlas{Cols: 16, Rows: 16})

	xs := []uint32{1, 2, 3}
	ys := []uint32{4, 5, 6}
	ids := []uint32{7, 8, 9}
	if err := b.Load(xs, ys, ids); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if b.Len() != 3 {
		t.Errorf("Len() = %d, want 3", b.Len())
	}

	// Reload replaces, not appends.
	if err := b.Load(xs[:1], ys[:1], ids[:1]); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if b.Len() != 1 {
		t.Errorf("Len() after reload = %d, want 1", b.Len())
	}
}

func TestObjectBatchLoadLengthMismatch(t *testing.T) {
	b := NewObjectBatch(atlas.Atlas{Cols: 16, Rows: 16})

	tests := []struct {
		name        string
		xs, ys, ids []uint32
	}{
		{"short y", []uint32{1, 2}, []uint32{1}, []uint32{1, 2}},
		{"short id", []uint32{1, 2}, []uint32{1, 2}, []uint32{1}},
		{"long x", []uint32{1, 2, 3}, []uint32{1, 2}, []uint32{1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := b.Load(tt.xs, tt.ys, tt.ids); err == nil {
				t.Error("expected length mismatch error")
			}
		})
	}
}

func TestObjectBatchLoadIDOutOfRange(t *testing.T) {
	b := NewObjectBatch(atlas.Atlas{Cols: 8, Rows: 8})

	err := b.Load([]uint32{0}, []uint32{0}, []uint32{64})
	if err == nil {
		t.Fatal("expected error for id past atlas capacity")
	}
	if b.Len() != 0 {
		t.Errorf("failed Load must leave the batch empty, Len() = %d", b.Len())
	}
}

func TestObjectBatchOffScreenPositionsAllowed(t *testing.T) {
	// Positions are never bounds-checked; off-screen sprites are
	// clipped by the rasterizer, not rejected here.
	b := NewObjectBatch(atlas.Atlas{Cols: 16, Rows: 16})
	if err := b.Add(5000, 9000, 1); err != nil {
		t.Errorf("off-screen position rejected: %v", err)
	}
}

func TestObjectBatchInterleave(t *testing.T) {
	b := NewObjectBatch(atlas.Atlas{Cols: 16, Rows: 16})
	if err := b.Load([]uint32{1, 4}, []uint32{2, 5}, []uint32{3, 6}); err != nil {
		t.Fatalf("Load: %v", err)
	}

	got := b.interleave()
	want := []uint32{1, 2, 3, 4, 5, 6}
	if len(got) != len(want) {
		t.Fatalf("interleave length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("interleave[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestObjectBatchZeroInstances(t *testing.T) {
	b := NewObjectBatch(atlas.Atlas{Cols: 16, Rows: 16})
	if b.Len() != 0 {
		t.Errorf("fresh batch Len() = %d, want 0", b.Len())
	}
	if got := b.interleave(); len(got) != 0 {
		t.Errorf("empty batch interleave length = %d, want 0", len(got))
	}
}

func TestObjectBatchReset(t *testing.T) {
	b := NewObjectBatch(atlas.Atlas{Cols: 16, Rows: 16})
	_ = b.Add(1, 2, 3)
	b.Reset()
	if b.Len() != 0 {
		t.Errorf("Len() after Reset = %d, want 0", b.Len())
	}
}
