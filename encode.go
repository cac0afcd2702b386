package icns

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/icnspack/icns/internal/chunk"
	"github.com/icnspack/icns/internal/pathutil"
)

// Pack encodes the iconset directory at path into a container file named
// after the directory's basename with IconsetExt swapped for IcnsExt. The
// container is created in the process working directory; the directory
// component of path is not carried over. Pack returns the container name.
//
// Directory entries whose names are dot-prefixed or absent from the type
// table are skipped; skipped table misses are reported through
// EncodeWithWarnFunc. The first I/O failure aborts the encode and leaves
// any partially written container on disk.
func Pack(path string, opts ...EncodeOption) (string, error) {
	cfg := newEncodeConfig(opts)

	out, ok := pathutil.SwapSuffix(filepath.Base(path), IconsetExt, IcnsExt)
	if !ok {
		return "", ErrNotIconset
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(out)
	if err != nil {
		return "", err
	}
	if err := encode(path, entries, f, cfg); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return out, nil
}

// Encode writes the iconset directory at dir as a container to w. The
// writer must support seeking: the total-size field is written as zero up
// front and patched once the final length is known.
func Encode(dir string, w io.WriteSeeker, opts ...EncodeOption) error {
	cfg := newEncodeConfig(opts)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	return encode(dir, entries, w, cfg)
}

func encode(dir string, entries []os.DirEntry, w io.WriteSeeker, cfg encodeConfig) error {
	if _, err := w.Write(chunk.Magic[:]); err != nil {
		return err
	}
	// Placeholder total size, patched after the last chunk.
	if err := chunk.WriteUint32(w, 0); err != nil {
		return err
	}

	buf := make([]byte, cfg.bufferSize)
	for _, entry := range entries {
		name := entry.Name()
		if pathutil.Hidden(name) {
			continue
		}
		tag, ok := TagForFilename(name)
		if !ok {
			cfg.warn(name)
			continue
		}
		if err := writeIconChunk(w, tag, filepath.Join(dir, name), buf); err != nil {
			return err
		}
	}

	end, err := w.Seek(0, io.SeekCurrent)
	if err != nil {
		return err
	}
	if end > math.MaxUint32 {
		return ErrSizeOverflow
	}
	if _, err := w.Seek(4, io.SeekStart); err != nil {
		return err
	}
	return chunk.WriteUint32(w, uint32(end))
}

// writeIconChunk frames one file as a chunk: tag, size+8, then the raw
// bytes streamed through buf.
func writeIconChunk(w io.Writer, tag Tag, path string, buf []byte) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}
	size := info.Size()
	if size < 0 || size > math.MaxUint32-chunk.HeaderSize {
		return fmt.Errorf("%w: %s", ErrSizeOverflow, path)
	}

	if _, err := w.Write(tag[:]); err != nil {
		return err
	}
	if err := chunk.WriteUint32(w, uint32(size)+chunk.HeaderSize); err != nil {
		return err
	}
	if err := chunk.CopyN(w, f, size, buf); err != nil {
		return fmt.Errorf("icns: copy %s: %w", path, err)
	}
	return nil
}
