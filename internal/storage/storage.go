package storage

import (
	"context"
	"io"
	"strings"

	"capmatrix/internal/config"
)

// GCSPrefix marks an output target as a bucket object
const GCSPrefix = "gs://"

// Sink delivers the serialized capability matrix
type Sink interface {
	Write(ctx context.Context, data []byte) error
}

// Uploader copies content to an object in a bucket
type Uploader interface {
	Upload(ctx context.Context, bucket, key string, r io.Reader, size int64) error
}

// Resolve picks the sink for an output target: stdout when empty, a
// bucket upload for gs:// targets, a local file otherwise. Confirmations
// and stdout output go to out.
func Resolve(target string, cfg *config.Config, uploader Uploader, out io.Writer) Sink {
	switch {
	case target == "":
		return NewStdoutSink(out)
	case strings.HasPrefix(target, GCSPrefix):
		return NewGCSSink(cfg, strings.TrimPrefix(target, GCSPrefix), uploader, out)
	default:
		return NewFileSink(target, out)
	}
}
