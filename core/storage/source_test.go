package storage

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"catalog-pipeline/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLocalSource_Check(t *testing.T) {
	t.Run("ExistingDirectory", func(t *testing.T) {
		src := &LocalSource{Dir: t.TempDir()}
		assert.NoError(t, src.Check(context.Background()))
	})

	t.Run("MissingDirectory", func(t *testing.T) {
		src := &LocalSource{Dir: filepath.Join(t.TempDir(), "nope")}
		assert.Error(t, src.Check(context.Background()))
	})

	t.Run("NotADirectory", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "plain.cat")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
		src := &LocalSource{Dir: file}
		assert.Error(t, src.Check(context.Background()))
	})
}

func TestBucketSource_Check(t *testing.T) {
	t.Run("BucketExists", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "catalogues").Return(true, nil)

		src := &BucketSource{Client: client, Bucket: "catalogues"}
		assert.NoError(t, src.Check(context.Background()))
		client.AssertExpectations(t)
	})

	t.Run("BucketMissing", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "catalogues").Return(false, nil)

		src := &BucketSource{Client: client, Bucket: "catalogues"}
		err := src.Check(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "does not exist")
	})

	t.Run("CheckFails", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "catalogues").Return(false, errors.New("access denied"))

		src := &BucketSource{Client: client, Bucket: "catalogues"}
		assert.Error(t, src.Check(context.Background()))
	})
}

func TestLocalSource_Fetch(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.cat"), []byte("<catalogue/>"), 0o644))

	src := &LocalSource{Dir: dir}
	data, err := src.Fetch(context.Background(), "main.cat")
	require.NoError(t, err)
	assert.Equal(t, []byte("<catalogue/>"), data)
}

func TestLocalSource_FetchMissing(t *testing.T) {
	src := &LocalSource{Dir: t.TempDir()}
	_, err := src.Fetch(context.Background(), "gone.cat")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBucketSource_Fetch(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "catalogues", "data/main.cat", mock.Anything).
		Return(io.NopCloser(strings.NewReader("<catalogue/>")), nil)

	src := &BucketSource{Client: client, Bucket: "catalogues", Prefix: "data"}
	data, err := src.Fetch(context.Background(), "main.cat")
	require.NoError(t, err)
	assert.Equal(t, []byte("<catalogue/>"), data)
	client.AssertExpectations(t)
}

func TestBucketSource_FetchNoPrefix(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "catalogues", "main.cat", mock.Anything).
		Return(io.NopCloser(strings.NewReader("x")), nil)

	src := &BucketSource{Client: client, Bucket: "catalogues"}
	_, err := src.Fetch(context.Background(), "main.cat")
	assert.NoError(t, err)
	client.AssertExpectations(t)
}

// errReader surfaces an error on first read, the way minio reports a missing
// key only once the object stream is consumed.
type errReader struct {
	err error
}

func (r *errReader) Read([]byte) (int, error) { return 0, r.err }
func (r *errReader) Close() error             { return nil }

func TestBucketSource_FetchMissingKey(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "catalogues", "gone.cat", mock.Anything).
		Return(&errReader{err: minio.ErrorResponse{Code: "NoSuchKey"}}, nil)

	src := &BucketSource{Client: client, Bucket: "catalogues"}
	_, err := src.Fetch(context.Background(), "gone.cat")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBucketSource_FetchReadError(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "catalogues", "main.cat", mock.Anything).
		Return(&errReader{err: errors.New("connection reset")}, nil)

	src := &BucketSource{Client: client, Bucket: "catalogues"}
	_, err := src.Fetch(context.Background(), "main.cat")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}
