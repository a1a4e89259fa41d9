package screen

import "testing"

func TestQuadVertices(t *testing.T) {
	v := QuadVertices()
	if len(v) != QuadVertexCount*4 {
		t.Fatalf("expected %d floats, got %d", QuadVertexCount*4, len(v))
	}

	for i := 0; i < QuadVertexCount; i++ {
		x, y := v[i*4], v[i*4+1]
		u, tv := v[i*4+2], v[i*4+3]
		if x != -1 && x != 1 || y != -1 && y != 1 {
			t.Errorf("vertex %d position (%v,%v) not a unit-square corner", i, x, y)
		}
		if u != 0 && u != 1 || tv != 0 && tv != 1 {
			t.Errorf("vertex %d texcoord (%v,%v) not a texture corner", i, u, tv)
		}
		// Position and texcoord corners must correspond: +X right pairs
		// with U=1, +Y up pairs with V=0 (top of the image).
		if (x == 1) != (u == 1) {
			t.Errorf("vertex %d X/U mismatch: x=%v u=%v", i, x, u)
		}
		if (y == 1) != (tv == 0) {
			t.Errorf("vertex %d Y/V mismatch: y=%v v=%v", i, y, tv)
		}
	}
}

func TestQuadCoversSquare(t *testing.T) {
	v := QuadVertices()

	// Two triangles, each half the square's area, same winding.
	total := float32(0)
	for tri := 0; tri < 2; tri++ {
		i := tri * 12
		x0, y0 := v[i], v[i+1]
		x1, y1 := v[i+4], v[i+5]
		x2, y2 := v[i+8], v[i+9]
		signed := (x1-x0)*(y2-y0) - (x2-x0)*(y1-y0)
		if signed <= 0 {
			t.Errorf("triangle %d not counter-clockwise (signed area %v)", tri, signed)
		}
		total += signed / 2
	}
	if total != 4 {
		t.Errorf("quad area = %v, want 4", total)
	}
}

func TestQuadVerticesImmutable(t *testing.T) {
	v := QuadVertices()
	v[0] = 42
	if QuadVertices()[0] == 42 {
		t.Error("mutating the returned slice changed the shared quad")
	}
}
