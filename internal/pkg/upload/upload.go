// Package upload stores presentation files on local disk or in an
// S3-compatible bucket, selected once at startup from configuration.
package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/attendly/seminar-api/internal/config"
)

var (
	ErrInvalidFileType  = errors.New("invalid file type, only .pdf, .ppt and .pptx files are allowed")
	ErrIncompleteConfig = errors.New("object storage configuration incomplete")
)

var allowedExtensions = map[string]bool{
	".pdf":  true,
	".ppt":  true,
	".pptx": true,
}

// Uploader persists a file stream and returns a retrievable URL or path.
type Uploader interface {
	Upload(ctx context.Context, r io.Reader, filename, contentType string, size int64) (string, error)
}

func NewFromConfig(conf *config.UploadConfig) (Uploader, error) {
	switch conf.Backend {
	case "s3":
		return NewS3Uploader(conf)
	case "local", "":
		return NewLocalUploader(conf.LocalDir)
	default:
		return nil, fmt.Errorf("unknown upload backend %q", conf.Backend)
	}
}

// UniqueName validates the extension and returns a timestamp-prefixed,
// sanitized name so repeated uploads of the same file never collide.
func UniqueName(filename string, now time.Time) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExtensions[ext] {
		return "", ErrInvalidFileType
	}

	return now.Format("20060102_150405") + "_" + sanitize(filename), nil
}

func sanitize(filename string) string {
	base := filepath.Base(filename)

	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}

	return b.String()
}

type LocalUploader struct {
	dir string
}

func NewLocalUploader(dir string) (*LocalUploader, error) {
	if dir == "" {
		dir = "uploads"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("os.MkdirAll -> %w", err)
	}

	return &LocalUploader{dir: dir}, nil
}

func (u *LocalUploader) Upload(_ context.Context, r io.Reader, filename, _ string, _ int64) (string, error) {
	name, err := UniqueName(filename, time.Now())
	if err != nil {
		return "", err
	}

	f, err := os.Create(filepath.Join(u.dir, name))
	if err != nil {
		return "", fmt.Errorf("os.Create -> %w", err)
	}
	defer f.Close()

	if _, err = io.Copy(f, r); err != nil {
		return "", fmt.Errorf("io.Copy -> %w", err)
	}

	return "/uploads/" + name, nil
}

type S3Uploader struct {
	client *minio.Client
	bucket string
	region string
}

func NewS3Uploader(conf *config.UploadConfig) (*S3Uploader, error) {
	if conf.S3Bucket == "" || conf.S3AccessKey == "" || conf.S3SecretKey == "" {
		return nil, ErrIncompleteConfig
	}

	endpoint := conf.S3Endpoint
	if endpoint == "" {
		endpoint = "s3.amazonaws.com"
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(conf.S3AccessKey, conf.S3SecretKey, ""),
		Secure: true,
		Region: conf.S3Region,
	})
	if err != nil {
		return nil, fmt.Errorf("minio.New -> %w", err)
	}

	return &S3Uploader{
		client: client,
		bucket: conf.S3Bucket,
		region: conf.S3Region,
	}, nil
}

func (u *S3Uploader) Upload(ctx context.Context, r io.Reader, filename, contentType string, size int64) (string, error) {
	name, err := UniqueName(filename, time.Now())
	if err != nil {
		return "", err
	}

	key := "presentations/" + name

	_, err = u.client.PutObject(ctx, u.bucket, key, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("u.client.PutObject -> %w", err)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key), nil
}
