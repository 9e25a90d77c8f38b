// Package zorder converts between N-dimensional coordinates and Z-order curve
// (Morton code) indexes. The index is produced by interleaving the binary
// digits of each coordinate, which preserves spatial locality - nearby points
// map to nearby indexes, making the index a good sort and storage key for
// multi-dimensional data.
//
// The package provides one encode/decode function pair per supported
// combination of coordinate width and dimension count. The output is always
// the smallest unsigned type that fits all interleaved coordinates, so e.g.
// two 16-bit coordinates produce a 32-bit index and two 64-bit coordinates
// produce a Uint128. Combinations which fit no supported type simply do not
// exist - using one is a compile error, not a runtime error.
//
//	idx := zorder.Encode2x16([2]uint16{1, 1}) // 3
//	c := zorder.Decode2x16(idx)               // [2]uint16{1, 1}
//
// All functions are pure: no allocation, no shared state, no failure paths.
// They are safe to call from any number of goroutines concurrently.
//
// On amd64 CPUs with the BMI2 instruction set a hardware-accelerated path is
// available through a Token obtained from AcquireToken:
//
//	if tok, ok := zorder.AcquireToken(); ok {
//		idx := tok.Encode2x16([2]uint16{1, 1})
//		_ = tok.Decode2x16(idx)
//	}
//
// The accelerated functions produce bit-identical results to the portable
// ones on every valid input.
package zorder
