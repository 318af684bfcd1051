package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"

	"github.com/mailtriage/mailtriage/interfaces"
	"github.com/mailtriage/mailtriage/internal/tracing"
)

// LocalStorageService implements StorageService on a local directory. Keys
// map to file paths relative to the base directory.
type LocalStorageService struct {
	baseDir string
}

func NewLocalStorageService(baseDir string) (interfaces.StorageService, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create storage directory")
	}
	return &LocalStorageService{baseDir: baseDir}, nil
}

func (s *LocalStorageService) path(key string) (string, error) {
	cleaned := filepath.Clean(key)
	if strings.HasPrefix(cleaned, "..") || filepath.IsAbs(cleaned) {
		return "", errors.Errorf("invalid storage key: %s", key)
	}
	return filepath.Join(s.baseDir, cleaned), nil
}

func (s *LocalStorageService) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	span, _ := opentracing.StartSpanFromContext(ctx, "LocalStorageService.Upload")
	defer span.Finish()
	tracing.SetDefaultServiceSpanTags(ctx, span)

	path, err := s.path(key)
	if err != nil {
		tracing.TraceErr(span, err)
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		tracing.TraceErr(span, err)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func (s *LocalStorageService) Download(ctx context.Context, key string) ([]byte, error) {
	span, _ := opentracing.StartSpanFromContext(ctx, "LocalStorageService.Download")
	defer span.Finish()
	tracing.SetDefaultServiceSpanTags(ctx, span)

	path, err := s.path(key)
	if err != nil {
		tracing.TraceErr(span, err)
		return nil, err
	}
	return os.ReadFile(path)
}

func (s *LocalStorageService) Delete(ctx context.Context, key string) error {
	span, _ := opentracing.StartSpanFromContext(ctx, "LocalStorageService.Delete")
	defer span.Finish()
	tracing.SetDefaultServiceSpanTags(ctx, span)

	path, err := s.path(key)
	if err != nil {
		tracing.TraceErr(span, err)
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *LocalStorageService) ListKeys(ctx context.Context, prefix string) ([]string, error) {
	span, _ := opentracing.StartSpanFromContext(ctx, "LocalStorageService.ListKeys")
	defer span.Finish()
	tracing.SetDefaultServiceSpanTags(ctx, span)

	var keys []string
	err := filepath.Walk(s.baseDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(s.baseDir, path)
		if err != nil {
			return err
		}
		key := filepath.ToSlash(rel)
		if prefix == "" || strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return keys, nil
}

// BaseDir exposes the root directory for maintenance jobs.
func (s *LocalStorageService) BaseDir() string {
	return s.baseDir
}
