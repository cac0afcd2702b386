// Package icns converts between Apple icon containers (.icns) and iconset
// directories of individually named PNG files.
//
// A container is a 4-byte "icns" magic header, a big-endian uint32 holding
// the total file length, and a sequence of chunks. Each chunk is a 4-byte
// type tag, a big-endian uint32 length counting the 8-byte chunk header,
// and the PNG bytes verbatim. PNG payloads are never inspected or
// re-encoded in either direction.
//
// # Quick Start
//
// Pack an iconset directory into a container:
//
//	out, err := icns.Pack("app.iconset")
//	if err != nil {
//	    return err
//	}
//	// out == "app.icns", written to the working directory
//
// Unpack a container into an iconset directory:
//
//	dir, err := icns.Unpack("app.icns")
//
// List a container's chunks without writing files:
//
//	res, err := icns.Inspect(f)
//	for _, c := range res.Chunks() {
//	    fmt.Println(c.Filename, c.PayloadSize, c.Digest)
//	}
//
// Both Pack and Unpack derive the output name from the basename of the
// input path, so output always lands in the process working directory
// regardless of where the input lives.
package icns
