package storage

import (
	"context"
	"fmt"
	"io"
	"os"

	"capmatrix/internal/config"
	"capmatrix/internal/domain"
	"capmatrix/internal/ui"

	gcs "cloud.google.com/go/storage"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// GCSSink writes the local mirror file and uploads it to the configured bucket
type GCSSink struct {
	mirrorPath string
	bucket     string
	key        string
	url        string
	uploader   Uploader
	out        io.Writer
}

// NewGCSSink returns a Sink that mirrors to cfg.MirrorPath and uploads to
// key in cfg.Bucket
func NewGCSSink(cfg *config.Config, key string, uploader Uploader, out io.Writer) *GCSSink {
	return &GCSSink{
		mirrorPath: cfg.MirrorPath,
		bucket:     cfg.Bucket,
		key:        key,
		url:        cfg.RemoteURL(key),
		uploader:   uploader,
		out:        out,
	}
}

// Write writes the mirror, uploads its content and confirms on out
func (s *GCSSink) Write(ctx context.Context, data []byte) error {
	if err := writeFile(s.mirrorPath, data); err != nil {
		return err
	}

	f, err := os.Open(s.mirrorPath)
	if err != nil {
		return &domain.WriteError{Path: s.mirrorPath, Err: err}
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return &domain.WriteError{Path: s.mirrorPath, Err: err}
	}

	if err := s.uploader.Upload(ctx, s.bucket, s.key, f, info.Size()); err != nil {
		return &domain.UploadError{Bucket: s.bucket, Key: s.key, Err: err}
	}

	fmt.Fprintf(s.out, "Successfully wrote to %s\n", s.url)
	return nil
}

// GCSUploader uploads objects with a Cloud Storage client built from the
// configured credentials file and project
type GCSUploader struct {
	config   *config.Config
	logger   *zap.Logger
	progress io.Writer
}

// NewGCSUploader creates a GCSUploader. The client is created per upload
// so config changes made after flag parsing apply.
func NewGCSUploader(cfg *config.Config, logger *zap.Logger, progress io.Writer) *GCSUploader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GCSUploader{config: cfg, logger: logger, progress: progress}
}

// Upload streams r into bucket/key and waits for the object to be committed
func (u *GCSUploader) Upload(ctx context.Context, bucket, key string, r io.Reader, size int64) error {
	var opts []option.ClientOption
	if u.config.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(u.config.CredentialsFile))
	}
	if u.config.ProjectID != "" {
		opts = append(opts, option.WithQuotaProject(u.config.ProjectID))
	}

	client, err := gcs.NewClient(ctx, opts...)
	if err != nil {
		return fmt.Errorf("create storage client: %w", err)
	}
	defer client.Close()

	u.logger.Debug("Uploading capability matrix",
		zap.String("bucket", bucket),
		zap.String("key", key),
		zap.Int64("bytes", size),
		zap.String("project", u.config.ProjectID))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	w := client.Bucket(bucket).Object(key).NewWriter(ctx)
	w.ContentType = "application/json"

	bar := ui.NewUploadProgress(size, key, u.progress)
	if _, err := io.Copy(io.MultiWriter(w, bar), r); err != nil {
		// cancelling the context aborts the upload
		cancel()
		_ = w.Close()
		return fmt.Errorf("copy object data: %w", err)
	}
	bar.Finish()

	if err := w.Close(); err != nil {
		return fmt.Errorf("finalize object: %w", err)
	}

	u.logger.Info("Uploaded capability matrix", zap.String("url", fmt.Sprintf("gs://%s/%s", bucket, key)))
	return nil
}
