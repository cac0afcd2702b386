package icns

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/icnspack/icns/internal/chunk"
	"github.com/icnspack/icns/internal/pathutil"
)

// Unpack decodes the container file at path into an iconset directory
// named after the file's basename with IcnsExt swapped for IconsetExt.
// The directory is created in the process working directory; the
// directory component of path is not carried over. Unpack returns the
// directory name.
//
// The container header is validated before the directory is created, and
// creation fails if the directory already exists. The first I/O failure
// or malformed chunk aborts the decode and leaves any partially populated
// directory on disk.
func Unpack(path string, opts ...DecodeOption) (string, error) {
	cfg := newDecodeConfig(opts)

	out, ok := pathutil.SwapSuffix(filepath.Base(path), IcnsExt, IconsetExt)
	if !ok {
		return "", ErrNotIcns
	}

	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := decode(f, out, cfg); err != nil {
		return "", err
	}
	return out, nil
}

// Decode reads a full container stream from r and writes its chunks as
// files into a new directory dir. The header is validated before dir is
// created; creating over an existing directory fails.
func Decode(r io.Reader, dir string, opts ...DecodeOption) error {
	return decode(r, dir, newDecodeConfig(opts))
}

func decode(r io.Reader, dir string, cfg decodeConfig) error {
	if _, err := readHeader(r); err != nil {
		return err
	}
	if err := os.Mkdir(dir, 0o777); err != nil {
		return err
	}

	buf := make([]byte, cfg.bufferSize)
	for {
		tag, err := chunk.ReadTag(r)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("icns: read chunk tag: %w", err)
		}
		size, err := chunk.ReadUint32(r)
		if err != nil {
			return fmt.Errorf("icns: read chunk size: %w", err)
		}
		if size <= chunk.HeaderSize {
			return ErrInvalidChunkSize
		}
		name := filenameFor(tag)
		if err := writeIcon(filepath.Join(dir, name), r, int64(size-chunk.HeaderSize), buf); err != nil {
			return err
		}
	}
}

// readHeader validates the magic and total-size fields and returns the
// declared total size.
func readHeader(r io.Reader) (uint32, error) {
	magic, err := chunk.ReadTag(r)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return 0, ErrBadMagic
		}
		return 0, err
	}
	if magic != chunk.Magic {
		return 0, ErrBadMagic
	}
	total, err := chunk.ReadUint32(r)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return 0, ErrEmptyContainer
		}
		return 0, err
	}
	if total == 0 {
		return 0, ErrEmptyContainer
	}
	return total, nil
}

// filenameFor resolves a tag to an iconset filename, synthesizing one for
// tags outside the type table. The raw tag bytes land in the name
// verbatim, so a hostile tag can embed separators or unprintable bytes;
// kept for compatibility with the names existing tools produce.
func filenameFor(tag Tag) string {
	if name, ok := FilenameForTag(tag); ok {
		return name
	}
	return UnknownPrefix + string(tag[:])
}

// writeIcon streams exactly n payload bytes from r into a new file.
func writeIcon(path string, r io.Reader, n int64, buf []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := chunk.CopyN(f, r, n, buf); err != nil {
		f.Close()
		return fmt.Errorf("icns: copy chunk to %s: %w", path, err)
	}
	return f.Close()
}
