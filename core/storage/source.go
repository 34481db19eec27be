package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/minio/minio-go/v7"
)

// ErrNotFound is returned by a Source when the named document does not exist.
// Callers treat it as a skippable condition rather than a batch failure.
var ErrNotFound = errors.New("document not found")

// Source fetches catalogue documents by name.
type Source interface {
	// Check verifies the source is reachable before a batch run starts.
	Check(ctx context.Context) error
	// Fetch returns the raw bytes of the named document.
	Fetch(ctx context.Context, name string) ([]byte, error)
}

// NewSource builds the configured document source.
func NewSource(cfg Config) (Source, error) {
	switch cfg.Source {
	case SourceBucket:
		client, err := NewClient(cfg)
		if err != nil {
			return nil, err
		}
		return &BucketSource{Client: client, Bucket: cfg.Bucket, Prefix: cfg.Prefix}, nil
	case SourceLocal, "":
		return &LocalSource{Dir: cfg.Path}, nil
	default:
		return nil, fmt.Errorf("unknown document source %q", cfg.Source)
	}
}

// LocalSource reads catalogue documents from a directory.
type LocalSource struct {
	Dir string
}

func (s *LocalSource) Check(_ context.Context) error {
	info, err := os.Stat(s.Dir)
	if err != nil {
		return fmt.Errorf("document directory %s: %w", s.Dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("document path %s is not a directory", s.Dir)
	}
	return nil
}

func (s *LocalSource) Fetch(_ context.Context, name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.Dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read document %s: %w", name, err)
	}
	return data, nil
}

// BucketSource reads catalogue documents from an object storage bucket.
type BucketSource struct {
	Client Client
	Bucket string
	Prefix string
}

func (s *BucketSource) Check(ctx context.Context) error {
	exists, err := s.Client.BucketExists(ctx, s.Bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %s: %w", s.Bucket, err)
	}
	if !exists {
		return fmt.Errorf("bucket %s does not exist", s.Bucket)
	}
	return nil
}

func (s *BucketSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	key := name
	if s.Prefix != "" {
		key = path.Join(s.Prefix, name)
	}

	obj, err := s.Client.GetObject(ctx, s.Bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch document %s: %w", key, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		// Minio surfaces missing keys on first read, not on GetObject.
		resp := minio.ToErrorResponse(err)
		if resp.Code == "NoSuchKey" {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		return nil, fmt.Errorf("failed to read document %s: %w", key, err)
	}
	return data, nil
}
