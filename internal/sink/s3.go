package sink

import (
	"context"
	"path"

	"github.com/go-logr/logr"

	"github.com/imamik/stepform/internal/form"
	"github.com/imamik/stepform/internal/platform/s3"
	"github.com/imamik/stepform/internal/util/retry"
)

// ObjectStore is the subset of the storage client the S3 sink uses.
type ObjectStore interface {
	EnsureBucket(ctx context.Context, bucket string) error
	PutObject(ctx context.Context, bucket, key string, data []byte, contentType string) error
}

// S3Options configures the S3 sink.
type S3Options struct {
	Bucket string
	Prefix string
	// CreateBucket creates the bucket before the first upload.
	CreateBucket bool
	Logger       logr.Logger
	Retry        []retry.Option
}

// S3 uploads each submission as a YAML object.
type S3 struct {
	store   ObjectStore
	opts    S3Options
	ensured bool
	stamp
}

// NewS3 creates a sink uploading to opts.Bucket through store.
func NewS3(store ObjectStore, opts S3Options) *S3 {
	if opts.Logger.GetSink() == nil {
		opts.Logger = logr.Discard()
	}
	return &S3{store: store, opts: opts, stamp: defaultStamp()}
}

// Name implements Namer.
func (s *S3) Name() string { return "s3" }

// Key returns the object key for rec.
func (s *S3) Key(rec Record) string {
	return path.Join(s.opts.Prefix, rec.FileName())
}

// Submit implements wizard.Sink. Transient upload failures are retried.
func (s *S3) Submit(ctx context.Context, p form.State) error {
	if s.opts.CreateBucket && !s.ensured {
		if err := s.store.EnsureBucket(ctx, s.opts.Bucket); err != nil {
			return err
		}
		s.ensured = true
	}

	rec := s.record(p)
	data, err := rec.Marshal()
	if err != nil {
		return err
	}
	key := s.Key(rec)

	opts := append([]retry.Option{
		retry.WithOnRetry(func(attempt int, err error) {
			s.opts.Logger.Info("Retrying upload", "key", key, "attempt", attempt, "error", err.Error())
		}),
	}, s.opts.Retry...)

	err = retry.Do(ctx, func(ctx context.Context) error {
		err := s.store.PutObject(ctx, s.opts.Bucket, key, data, "application/yaml")
		if s3.IsPermanent(err) {
			return retry.Permanent(err)
		}
		return err
	}, opts...)
	if err != nil {
		return err
	}

	s.opts.Logger.V(1).Info("Uploaded submission", "bucket", s.opts.Bucket, "key", key)
	return nil
}
