package compositor

import (
	"fmt"

	"github.com/pixelbeat/dotmatrix/pkg/atlas"
)

// ObjectBatch accumulates per-sprite instance data as parallel arrays
// and validates it before upload, turning a would-be out-of-range GPU
// read into a construction-time error. Positions are pixel units and
// deliberately unchecked: off-screen sprites are clipped, not rejected.
type ObjectBatch struct {
	x  []uint32
	y  []uint32
	id []uint32

	capacity uint32
}

// NewObjectBatch creates a batch whose sprite IDs are checked against
// the atlas capacity.
func NewObjectBatch(a atlas.Atlas) *ObjectBatch {
	return &ObjectBatch{capacity: uint32(a.Capacity())}
}

// Reset clears the batch for reuse, keeping the backing storage.
func (b *ObjectBatch) Reset() {
	b.x = b.x[:0]
	b.y = b.y[:0]
	b.id = b.id[:0]
}

// Add appends one sprite instance. Instances draw in append order;
// later instances overwrite earlier ones at overlapping pixels.
func (b *ObjectBatch) Add(x, y, id uint32) error {
	if id >= b.capacity {
		return fmt.Errorf("sprite id %d out of range (atlas holds %d tiles)", id, b.capacity)
	}
	b.x = append(b.x, x)
	b.y = append(b.y, y)
	b.id = append(b.id, id)
	return nil
}

// Load replaces the batch contents with parallel position and id
// arrays, as rebuilt each frame from object attribute memory. All three
// must be the same length.
func (b *ObjectBatch) Load(xs, ys, ids []uint32) error {
	if len(xs) != len(ys) || len(xs) != len(ids) {
		return fmt.Errorf("parallel arrays differ in length: x=%d y=%d id=%d",
			len(xs), len(ys), len(ids))
	}
	for i, id := range ids {
		if id >= b.capacity {
			return fmt.Errorf("sprite %d: id %d out of range (atlas holds %d tiles)",
				i, id, b.capacity)
		}
	}
	b.Reset()
	b.x = append(b.x, xs...)
	b.y = append(b.y, ys...)
	b.id = append(b.id, ids...)
	return nil
}

// Len returns the instance count.
func (b *ObjectBatch) Len() int {
	return len(b.id)
}

// interleave packs the parallel arrays into x,y,id triplets, the
// per-instance attribute layout the object pipeline uploads.
func (b *ObjectBatch) interleave() []uint32 {
	data := make([]uint32, 0, 3*len(b.id))
	for i := range b.id {
		data = append(data, b.x[i], b.y[i], b.id[i])
	}
	return data
}
