package screen

// Shared unit quad: position X, Y in NDC and texcoord U, V, six
// vertices forming two counter-clockwise triangles that exactly tile
// the [-1,1] square. V is 0 at the top edge so UV (0,0) addresses the
// top-left texel, matching image row order.
var quadVertices = [24]float32{
	// Position   TexCoord
	-1, -1, 0, 1, // bottom-left
	1, -1, 1, 1, // bottom-right
	1, 1, 1, 0, // top-right
	-1, -1, 0, 1, // bottom-left
	1, 1, 1, 0, // top-right
	-1, 1, 0, 0, // top-left
}

const (
	// QuadVertexCount is the number of vertices in the shared quad.
	QuadVertexCount = 6

	// QuadStride is the byte size of one quad vertex.
	QuadStride = 4 * 4
)

// QuadVertices returns a copy of the shared quad's vertex data. The
// backing array is fixed at init; every pipeline uploads the same
// values.
func QuadVertices() []float32 {
	v := quadVertices
	return v[:]
}
