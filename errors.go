package icns

import "errors"

// Sentinel errors for codec operations.
var (
	// ErrNotIconset is returned when an input path does not name an
	// .iconset directory.
	ErrNotIconset = errors.New("icns: need .iconset directory as input")

	// ErrNotIcns is returned when an input path does not name an .icns file.
	ErrNotIcns = errors.New("icns: need .icns file as input")

	// ErrBadMagic is returned when a container does not start with the
	// icns magic header.
	ErrBadMagic = errors.New("icns: not an icns container")

	// ErrEmptyContainer is returned when a container's total-size field
	// is zero.
	ErrEmptyContainer = errors.New("icns: empty container")

	// ErrInvalidChunkSize is returned when a chunk's size field does not
	// cover its own header.
	ErrInvalidChunkSize = errors.New("icns: invalid chunk size")

	// ErrSizeOverflow is returned when a container or chunk would exceed
	// what the 32-bit size fields can express.
	ErrSizeOverflow = errors.New("icns: size overflow")
)
