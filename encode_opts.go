package icns

import "github.com/icnspack/icns/internal/chunk"

// encodeConfig holds configuration for container encoding.
type encodeConfig struct {
	warn       func(filename string)
	bufferSize int
}

// EncodeOption configures container encoding.
type EncodeOption func(*encodeConfig)

// EncodeWithWarnFunc sets the sink for skipped-entry warnings. The
// function is called once per directory entry whose name has no tag in
// the type table; the entry is then omitted from the container. The
// default discards warnings.
func EncodeWithWarnFunc(fn func(filename string)) EncodeOption {
	return func(cfg *encodeConfig) {
		cfg.warn = fn
	}
}

// EncodeWithBufferSize sets the copy buffer size in bytes. Any size of at
// least one byte produces identical output; larger buffers just reduce
// syscalls. Values below one fall back to the default.
func EncodeWithBufferSize(n int) EncodeOption {
	return func(cfg *encodeConfig) {
		cfg.bufferSize = n
	}
}

func newEncodeConfig(opts []EncodeOption) encodeConfig {
	cfg := encodeConfig{
		warn:       func(string) {},
		bufferSize: chunk.DefaultBufferSize,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.bufferSize < 1 {
		cfg.bufferSize = chunk.DefaultBufferSize
	}
	return cfg
}
