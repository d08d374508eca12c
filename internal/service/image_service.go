package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image/png"

	"faktor/internal/config"
	"faktor/internal/domain"
	"faktor/internal/port"
)

// ImageService manages the two invoice image slots. Each kind maps to a
// fixed object key, so uploading replaces the previous image.
type ImageService interface {
	Upload(ctx context.Context, kind domain.ImageKind, data []byte) error
	Get(ctx context.Context, kind domain.ImageKind) ([]byte, error)
	Delete(ctx context.Context, kind domain.ImageKind) error
	Exists(ctx context.Context, kind domain.ImageKind) (bool, error)
}

type imageService struct {
	storage port.ObjectStorage
	cfg     config.S3Config
}

// NewImageService creates a new ImageService implementation.
func NewImageService(storage port.ObjectStorage, cfg config.S3Config) ImageService {
	return &imageService{storage: storage, cfg: cfg}
}

func (s *imageService) Upload(ctx context.Context, kind domain.ImageKind, data []byte) error {
	if !kind.Valid() {
		return domain.ErrInvalidImageKind
	}
	maxSize := s.cfg.MaxImageSizeMB * 1024 * 1024
	if int64(len(data)) > maxSize {
		return domain.ErrImageTooLarge
	}
	if _, err := png.DecodeConfig(bytes.NewReader(data)); err != nil {
		return domain.ErrNotPNG
	}

	_, err := s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.cfg.Bucket,
		Key:         domain.ImageObjectKeys[kind],
		Body:        bytes.NewReader(data),
		ContentType: "image/png",
		Size:        int64(len(data)),
	})
	if err != nil {
		return fmt.Errorf("image.Upload: %w", domain.ErrUploadFailed)
	}
	return nil
}

func (s *imageService) Get(ctx context.Context, kind domain.ImageKind) ([]byte, error) {
	if !kind.Valid() {
		return nil, domain.ErrInvalidImageKind
	}
	data, err := s.storage.Download(ctx, s.cfg.Bucket, domain.ImageObjectKeys[kind])
	if err != nil {
		if errors.Is(err, port.ErrObjectNotFound) {
			return nil, domain.ErrImageNotFound
		}
		return nil, fmt.Errorf("image.Get: %w", err)
	}
	return data, nil
}

func (s *imageService) Delete(ctx context.Context, kind domain.ImageKind) error {
	if !kind.Valid() {
		return domain.ErrInvalidImageKind
	}
	if err := s.storage.Delete(ctx, s.cfg.Bucket, domain.ImageObjectKeys[kind]); err != nil {
		return fmt.Errorf("image.Delete: %w", err)
	}
	return nil
}

func (s *imageService) Exists(ctx context.Context, kind domain.ImageKind) (bool, error) {
	if !kind.Valid() {
		return false, domain.ErrInvalidImageKind
	}
	return s.storage.Exists(ctx, s.cfg.Bucket, domain.ImageObjectKeys[kind])
}
