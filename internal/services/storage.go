package services

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

// StorageService hands out short-lived files for libraries that can only
// read documents from disk.
type StorageService interface {
	EnsureTempDir() error
	SaveTemp(data []byte, ext string) (string, error)
	DeleteFile(filePath string) error
	WithTempFile(data []byte, ext string, fn func(filePath string) error) error
}

type storageService struct {
	tempDir string
}

func NewStorageService(tempDir string) StorageService {
	if tempDir == "" {
		tempDir = os.TempDir()
	}

	return &storageService{
		tempDir: tempDir,
	}
}

func (s *storageService) EnsureTempDir() error {
	if err := os.MkdirAll(s.tempDir, 0755); err != nil {
		return errors.Wrap(err, "failed to create temp directory")
	}

	return nil
}

func (s *storageService) SaveTemp(data []byte, ext string) (string, error) {
	filePath := filepath.Join(s.tempDir, fmt.Sprintf("upload_%s%s", uuid.New().String(), ext))

	dst, err := os.OpenFile(filePath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		return "", errors.Wrap(err, "failed to create temp file")
	}

	if _, err := dst.Write(data); err != nil {
		dst.Close()
		os.Remove(filePath)
		return "", errors.Wrap(err, "failed to write temp file")
	}

	if err := dst.Close(); err != nil {
		os.Remove(filePath)
		return "", errors.Wrap(err, "failed to close temp file")
	}

	return filePath, nil
}

func (s *storageService) DeleteFile(filePath string) error {
	if err := os.Remove(filePath); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "failed to delete file")
	}
	return nil
}

// WithTempFile writes data to a temp file, runs fn on it and removes the file
// afterwards, whatever fn returns or panics with.
func (s *storageService) WithTempFile(data []byte, ext string, fn func(filePath string) error) (err error) {
	filePath, err := s.SaveTemp(data, ext)
	if err != nil {
		return err
	}

	defer func() {
		if delErr := s.DeleteFile(filePath); delErr != nil && err == nil {
			err = delErr
		}
	}()

	return fn(filePath)
}
