// Package testutil provides fixtures for codec tests.
package testutil

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

// WriteIconset creates dir and fills it with the given files.
func WriteIconset(t *testing.T, dir string, files map[string][]byte) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	for name, data := range files {
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
}

// Chunk is one tag + payload pair for Container.
type Chunk struct {
	Tag     [4]byte
	Payload []byte
}

// Container assembles a well-formed icns container from chunks, with the
// total-size field set to the exact byte length.
func Container(chunks ...Chunk) []byte {
	var buf bytes.Buffer
	buf.WriteString("icns")
	buf.Write([]byte{0, 0, 0, 0})
	for _, c := range chunks {
		buf.Write(c.Tag[:])
		var size [4]byte
		binary.BigEndian.PutUint32(size[:], uint32(len(c.Payload)+8))
		buf.Write(size[:])
		buf.Write(c.Payload)
	}
	out := buf.Bytes()
	binary.BigEndian.PutUint32(out[4:8], uint32(len(out)))
	return out
}

// ReadDirFiles returns the contents of every regular file in dir, keyed
// by name.
func ReadDirFiles(t *testing.T, dir string) map[string][]byte {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir %s: %v", dir, err)
	}
	files := make(map[string][]byte, len(entries))
	for _, e := range entries {
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			t.Fatalf("read %s: %v", e.Name(), err)
		}
		files[e.Name()] = data
	}
	return files
}
