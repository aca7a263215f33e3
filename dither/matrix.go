package dither

// Matrix is a square grid of threshold ranks. A Bayer matrix of size n holds
// a permutation of 0..n²-1; ClusteredDot4x4 holds a halftone ranking with
// the same value range. Matrices are constant and shared read-only across
// concurrent runs.
type Matrix [][]int

// Bayer returns the Bayer matrix of the given size, which must be a power of
// two of at least two. Each doubling tiles the previous matrix into the four
// quadrants with the offsets 0, 2, 3 and 1.
func Bayer(size int) Matrix {
	if size < 2 || size&(size-1) != 0 {
		panic("dither: Bayer size must be a power of two")
	}

	m := Matrix{{0}}
	for n := 1; n < size; n <<= 1 {
		next := make(Matrix, n*2)
		for i := range next {
			next[i] = make([]int, n*2)
		}
		for y := 0; y < n; y++ {
			for x := 0; x < n; x++ {
				v := 4 * m[y][x]
				next[y][x] = v
				next[y][x+n] = v + 2
				next[y+n][x] = v + 3
				next[y+n][x+n] = v + 1
			}
		}
		m = next
	}
	return m
}

// ClusteredDot4x4 ranks thresholds outward from the center so lit pixels
// cluster into halftone-style dots instead of dispersing.
var ClusteredDot4x4 = Matrix{
	{12, 5, 6, 13},
	{4, 0, 1, 7},
	{11, 3, 2, 8},
	{15, 10, 9, 14},
}

// Threshold returns the dither threshold for the pixel at (x, y), tiling the
// matrix across the plane. The half step centers each rank within its
// bucket.
func (m Matrix) Threshold(x, y int) float64 {
	n := len(m)
	return (float64(m[y%n][x%n]) + 0.5) / float64(n*n) * 255
}
