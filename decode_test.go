package icns

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/icnspack/icns/internal/testutil"
)

func tag4(s string) [4]byte {
	var t [4]byte
	copy(t[:], s)
	return t
}

func TestDecode(t *testing.T) {
	t.Parallel()

	payload16 := []byte("sixteen")
	payload32 := []byte("thirty-two")
	container := testutil.Container(
		testutil.Chunk{Tag: tag4("icp4"), Payload: payload16},
		testutil.Chunk{Tag: tag4("icp5"), Payload: payload32},
	)

	dir := filepath.Join(t.TempDir(), "app.iconset")
	require.NoError(t, Decode(bytes.NewReader(container), dir))

	files := testutil.ReadDirFiles(t, dir)
	assert.Equal(t, map[string][]byte{
		"icon_16x16.png": payload16,
		"icon_32x32.png": payload32,
	}, files)
}

func TestDecode_UnknownTag(t *testing.T) {
	t.Parallel()

	container := testutil.Container(
		testutil.Chunk{Tag: tag4("TOC "), Payload: []byte("table of contents")},
	)

	dir := filepath.Join(t.TempDir(), "app.iconset")
	require.NoError(t, Decode(bytes.NewReader(container), dir))

	files := testutil.ReadDirFiles(t, dir)
	assert.Equal(t, map[string][]byte{
		"icon_data_TOC ": []byte("table of contents"),
	}, files)
}

func TestDecode_BadMagic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{name: "wrong magic", data: []byte("PNG\x00\x00\x00\x00\x10")},
		{name: "empty file", data: nil},
		{name: "short file", data: []byte("ic")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := filepath.Join(t.TempDir(), "app.iconset")
			err := Decode(bytes.NewReader(tt.data), dir)
			require.ErrorIs(t, err, ErrBadMagic)

			// No directory is created on a failed header check.
			_, statErr := os.Stat(dir)
			assert.True(t, os.IsNotExist(statErr))
		})
	}
}

func TestDecode_EmptyContainer(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "app.iconset")
	err := Decode(bytes.NewReader([]byte("icns\x00\x00\x00\x00")), dir)
	require.ErrorIs(t, err, ErrEmptyContainer)

	_, statErr := os.Stat(dir)
	assert.True(t, os.IsNotExist(statErr))
}

func TestDecode_InvalidChunkSize(t *testing.T) {
	t.Parallel()

	for _, size := range []byte{0, 7, 8} {
		data := []byte("icns\x00\x00\x00\x10icp4\x00\x00\x00")
		data = append(data, size)

		dir := filepath.Join(t.TempDir(), "app.iconset")
		err := Decode(bytes.NewReader(data), dir)
		require.ErrorIs(t, err, ErrInvalidChunkSize, "chunk size %d", size)
	}
}

func TestDecode_TruncatedPayload(t *testing.T) {
	t.Parallel()

	container := testutil.Container(
		testutil.Chunk{Tag: tag4("icp4"), Payload: []byte("full payload")},
	)
	truncated := container[:len(container)-4]

	dir := filepath.Join(t.TempDir(), "app.iconset")
	err := Decode(bytes.NewReader(truncated), dir)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)

	// The partial file stays on disk.
	_, statErr := os.Stat(filepath.Join(dir, "icon_16x16.png"))
	assert.NoError(t, statErr)
}

func TestDecode_TruncatedChunkHeader(t *testing.T) {
	t.Parallel()

	container := testutil.Container(
		testutil.Chunk{Tag: tag4("icp4"), Payload: []byte("payload")},
	)
	// Cut mid-way through the second chunk's tag.
	data := append([]byte(nil), container...)
	data = append(data, 'i', 'c')

	dir := filepath.Join(t.TempDir(), "app.iconset")
	err := Decode(bytes.NewReader(data), dir)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestDecode_ExistingDirectory(t *testing.T) {
	t.Parallel()

	container := testutil.Container(
		testutil.Chunk{Tag: tag4("icp4"), Payload: []byte("payload")},
	)

	dir := filepath.Join(t.TempDir(), "app.iconset")
	require.NoError(t, os.Mkdir(dir, 0o755))

	err := Decode(bytes.NewReader(container), dir)
	require.Error(t, err)
	assert.True(t, os.IsExist(err))
}

func TestUnpack(t *testing.T) {
	payload := []byte("icon bytes")
	container := testutil.Container(
		testutil.Chunk{Tag: tag4("ic09"), Payload: payload},
	)

	src := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(src, "myapp.icns"), container, 0o644))

	work := t.TempDir()
	t.Chdir(work)

	dir, err := Unpack(filepath.Join(src, "myapp.icns"))
	require.NoError(t, err)
	assert.Equal(t, "myapp.iconset", dir)

	files := testutil.ReadDirFiles(t, filepath.Join(work, "myapp.iconset"))
	assert.Equal(t, map[string][]byte{"icon_512x512.png": payload}, files)
}

func TestUnpack_NotIcns(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := Unpack("myapp.png")
	require.ErrorIs(t, err, ErrNotIcns)
}

func TestRoundTrip(t *testing.T) {
	files := map[string][]byte{
		"icon_16x16.png":      []byte("small"),
		"icon_16x16@2x.png":   []byte("small retina"),
		"icon_128x128.png":    bytes.Repeat([]byte("medium "), 1000),
		"icon_512x512@2x.png": bytes.Repeat([]byte{0x00, 0xff, 0x7f}, 50_000),
	}

	src := t.TempDir()
	iconset := filepath.Join(src, "round.iconset")
	testutil.WriteIconset(t, iconset, files)

	packDir := t.TempDir()
	t.Chdir(packDir)

	out, err := Pack(iconset)
	require.NoError(t, err)

	// Unpack in a fresh working directory so the decoded iconset does
	// not collide with the source name.
	t.Chdir(t.TempDir())
	dir, err := Unpack(filepath.Join(packDir, out))
	require.NoError(t, err)

	// os.ReadDir iteration order is not part of the contract; compare as
	// a name-keyed map.
	got := testutil.ReadDirFiles(t, dir)
	assert.Equal(t, files, got)
}
