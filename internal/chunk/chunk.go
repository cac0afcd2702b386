// Package chunk implements the wire framing shared by the encoder and
// decoder: big-endian uint32 fields and bounded payload copies.
package chunk

import (
	"encoding/binary"
	"io"
)

// Magic is the 4-byte container signature.
var Magic = [4]byte{'i', 'c', 'n', 's'}

const (
	// HeaderSize is the byte length of a chunk header (tag + size) and of
	// the container header (magic + total size). Chunk size fields count
	// this header, so a valid chunk size is always greater than it.
	HeaderSize = 8

	// DefaultBufferSize is the copy buffer size used when no option
	// overrides it.
	DefaultBufferSize = 32 * 1024
)

// WriteUint32 writes v in big-endian byte order.
func WriteUint32(w io.Writer, v uint32) error {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	_, err := w.Write(b[:])
	return err
}

// ReadUint32 reads a big-endian uint32. A truncated field reads as
// io.ErrUnexpectedEOF; io.EOF means no bytes were available.
func ReadUint32(r io.Reader) (uint32, error) {
	var b [4]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b[:]), nil
}

// ReadTag reads a 4-byte tag. io.EOF is returned untouched when the
// reader is exhausted at a chunk boundary; a partial tag reads as
// io.ErrUnexpectedEOF.
func ReadTag(r io.Reader) ([4]byte, error) {
	var t [4]byte
	_, err := io.ReadFull(r, t[:])
	return t, err
}

// CopyN copies exactly n bytes from src to dst using buf, failing with
// io.ErrUnexpectedEOF when src runs short and io.ErrShortWrite when dst
// accepts fewer bytes than given. Any buf of at least one byte works.
func CopyN(dst io.Writer, src io.Reader, n int64, buf []byte) error {
	var written int64
	lr := io.LimitReader(src, n)
	for {
		nr, er := lr.Read(buf)
		if nr > 0 {
			nw, ew := dst.Write(buf[:nr])
			written += int64(nw)
			if ew != nil {
				return ew
			}
			if nw != nr {
				return io.ErrShortWrite
			}
		}
		if er != nil {
			if er == io.EOF {
				break
			}
			return er
		}
	}
	if written != n {
		return io.ErrUnexpectedEOF
	}
	return nil
}
