package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type StorageService interface {
	SaveFile(file *multipart.FileHeader) (string, string, error)
	GetFilePath(filename string) string
	DeleteFile(filename string) error
	Cleanup()
	EnsureUploadDir() error
}

type storageService struct {
	uploadPath string
	logger     *zap.Logger
}

func NewStorageService(uploadPath string, logger *zap.Logger) StorageService {
	return &storageService{
		uploadPath: uploadPath,
		logger:     logger,
	}
}

func (s *storageService) EnsureUploadDir() error {
	if err := os.MkdirAll(s.uploadPath, 0755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}

	return nil
}

// SaveFile stages an uploaded resume under a unique name so two uploads with
// the same filename cannot clobber each other within a batch. Returns the
// staged filename and its full path.
func (s *storageService) SaveFile(file *multipart.FileHeader) (string, string, error) {
	ext := filepath.Ext(file.Filename)
	uniqueFilename := fmt.Sprintf("%s_%s%s", uuid.New().String(), sanitizeBase(file.Filename), ext)
	filePath := filepath.Join(s.uploadPath, uniqueFilename)

	src, err := file.Open()
	if err != nil {
		return "", "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filePath)
	if err != nil {
		return "", "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", "", fmt.Errorf("failed to save file: %w", err)
	}

	return uniqueFilename, filePath, nil
}

func (s *storageService) GetFilePath(filename string) string {
	return filepath.Join(s.uploadPath, filename)
}

func (s *storageService) DeleteFile(filename string) error {
	filePath := s.GetFilePath(filename)
	if err := os.Remove(filePath); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// Cleanup empties the staging directory. Documents only live for one request
// cycle; an undeletable file is logged and skipped, never fatal.
func (s *storageService) Cleanup() {
	entries, err := os.ReadDir(s.uploadPath)
	if err != nil {
		s.logger.Warn("failed to read upload directory", zap.String("path", s.uploadPath), zap.Error(err))
		return
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		filePath := filepath.Join(s.uploadPath, entry.Name())
		if err := os.Remove(filePath); err != nil {
			s.logger.Warn("failed to delete stale upload", zap.String("file", filePath), zap.Error(err))
		}
	}
}

// sanitizeBase strips path separators from a client-supplied filename before
// it is used as part of a name on disk.
func sanitizeBase(filename string) string {
	base := filepath.Base(filename)
	ext := filepath.Ext(base)
	return base[:len(base)-len(ext)]
}
