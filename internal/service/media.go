package service

import (
	"context"

	"craftly/internal/model"
)

// MediaScanner produces a media inventory.
type MediaScanner interface {
	Scan(ctx context.Context) (*model.MediaInventory, error)
}

// MediaService serves the media library listing.
type MediaService interface {
	Inventory(ctx context.Context) (*model.MediaInventory, error)
}

type mediaService struct {
	scanner MediaScanner
}

func NewMediaService(scanner MediaScanner) MediaService {
	return &mediaService{scanner: scanner}
}

func (s *mediaService) Inventory(ctx context.Context) (*model.MediaInventory, error) {
	return s.scanner.Scan(ctx)
}
