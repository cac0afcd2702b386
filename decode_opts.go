package icns

import "github.com/icnspack/icns/internal/chunk"

// decodeConfig holds configuration for container decoding.
type decodeConfig struct {
	bufferSize int
}

// DecodeOption configures container decoding.
type DecodeOption func(*decodeConfig)

// DecodeWithBufferSize sets the copy buffer size in bytes. Any size of at
// least one byte produces identical output. Values below one fall back to
// the default.
func DecodeWithBufferSize(n int) DecodeOption {
	return func(cfg *decodeConfig) {
		cfg.bufferSize = n
	}
}

func newDecodeConfig(opts []DecodeOption) decodeConfig {
	cfg := decodeConfig{bufferSize: chunk.DefaultBufferSize}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.bufferSize < 1 {
		cfg.bufferSize = chunk.DefaultBufferSize
	}
	return cfg
}
