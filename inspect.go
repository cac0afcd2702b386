package icns

import (
	"fmt"
	"io"

	"github.com/opencontainers/go-digest"

	"github.com/icnspack/icns/internal/chunk"
)

// ChunkInfo describes one chunk of a container.
type ChunkInfo struct {
	// Tag is the chunk's 4-byte type code.
	Tag Tag

	// Filename is the iconset filename the chunk would decode to,
	// including synthesized names for unknown tags.
	Filename string

	// PayloadSize is the payload byte count (chunk size minus header).
	PayloadSize uint32

	// Digest is the canonical digest of the payload bytes.
	Digest digest.Digest
}

// InspectResult holds container metadata gathered without writing files.
type InspectResult struct {
	totalSize uint32
	chunks    []ChunkInfo
}

// TotalSize returns the container's declared total size in bytes.
func (r *InspectResult) TotalSize() uint32 {
	return r.totalSize
}

// ChunkCount returns the number of chunks in the container.
func (r *InspectResult) ChunkCount() int {
	return len(r.chunks)
}

// Chunks returns chunk metadata in container order.
func (r *InspectResult) Chunks() []ChunkInfo {
	return r.chunks
}

// Inspect reads a full container stream from r and reports each chunk's
// tag, resolved filename, payload size, and payload digest. It applies
// the same header and chunk validation as Decode but writes nothing.
func Inspect(r io.Reader) (*InspectResult, error) {
	total, err := readHeader(r)
	if err != nil {
		return nil, err
	}

	res := &InspectResult{totalSize: total}
	buf := make([]byte, chunk.DefaultBufferSize)
	for {
		tag, err := chunk.ReadTag(r)
		if err == io.EOF {
			return res, nil
		}
		if err != nil {
			return nil, fmt.Errorf("icns: read chunk tag: %w", err)
		}
		size, err := chunk.ReadUint32(r)
		if err != nil {
			return nil, fmt.Errorf("icns: read chunk size: %w", err)
		}
		if size <= chunk.HeaderSize {
			return nil, ErrInvalidChunkSize
		}

		payload := int64(size - chunk.HeaderSize)
		digester := digest.Canonical.Digester()
		if err := chunk.CopyN(digester.Hash(), r, payload, buf); err != nil {
			return nil, fmt.Errorf("icns: read chunk %s: %w", Tag(tag), err)
		}

		res.chunks = append(res.chunks, ChunkInfo{
			Tag:         tag,
			Filename:    filenameFor(tag),
			PayloadSize: size - chunk.HeaderSize,
			Digest:      digester.Digest(),
		})
	}
}
