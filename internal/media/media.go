// Package media builds the media inventory shown by the admin UI from the
// files of a storage source.
package media

import (
	"context"
	"errors"
	"math"
	"path"
	"strconv"
	"strings"
	"time"

	"craftly/internal/model"
	"craftly/internal/storage"
)

var extensions = map[string]model.MediaType{
	"jpg": model.MediaImage, "jpeg": model.MediaImage, "png": model.MediaImage,
	"gif": model.MediaImage, "webp": model.MediaImage, "svg": model.MediaImage,
	"bmp": model.MediaImage,

	"mp4": model.MediaVideo, "mov": model.MediaVideo, "avi": model.MediaVideo,
	"mkv": model.MediaVideo, "webm": model.MediaVideo, "flv": model.MediaVideo,
	"wmv": model.MediaVideo, "m4v": model.MediaVideo,

	"pdf": model.MediaDocument, "doc": model.MediaDocument, "docx": model.MediaDocument,
	"xls": model.MediaDocument, "xlsx": model.MediaDocument, "csv": model.MediaDocument,
	"txt": model.MediaDocument, "ppt": model.MediaDocument, "pptx": model.MediaDocument,
}

// Classify returns the media type for a file name by its lower-cased
// extension. ok is false for extensions outside the known sets.
func Classify(name string) (t model.MediaType, ok bool) {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(name), "."))
	t, ok = extensions[ext]
	return t, ok
}

const (
	mb = 1024 * 1024
	gb = 1024 * mb
)

// FormatMB renders a byte count as "<n> MB" rounded to two decimals.
func FormatMB(bytes int64) string {
	return formatUnit(bytes, mb, "MB")
}

// FormatGB renders a byte count as "<n> GB" rounded to two decimals.
func FormatGB(bytes int64) string {
	return formatUnit(bytes, gb, "GB")
}

func formatUnit(bytes int64, unit float64, suffix string) string {
	v := math.Round(float64(bytes)/unit*100) / 100
	return strconv.FormatFloat(v, 'f', -1, 64) + " " + suffix
}

// Scanner builds inventories from a storage source.
type Scanner struct {
	src       storage.Storage
	urlPrefix string
}

// NewScanner serves files of src under urlPrefix (e.g. "/public").
func NewScanner(src storage.Storage, urlPrefix string) *Scanner {
	return &Scanner{src: src, urlPrefix: strings.TrimRight(urlPrefix, "/")}
}

// Scan lists the source and classifies every file. Ids are assigned in key
// order starting at 1. A missing root yields an empty inventory.
func (s *Scanner) Scan(ctx context.Context) (*model.MediaInventory, error) {
	inv := &model.MediaInventory{
		Data: []model.MediaItem{},
		Stats: model.MediaStats{
			StorageUsed:  FormatMB(0),
			StorageLimit: FormatGB(0),
		},
	}

	objs, err := s.src.List(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrRootNotFound) {
			return inv, nil
		}
		return nil, err
	}

	var used int64
	for _, obj := range objs {
		used += obj.Size

		t, ok := Classify(obj.Key)
		if !ok {
			continue
		}

		url := s.urlPrefix + "/" + obj.Key
		item := model.MediaItem{
			ID:         len(inv.Data) + 1,
			Name:       path.Base(obj.Key),
			Type:       t,
			Size:       FormatMB(obj.Size),
			URL:        url,
			UploadedAt: obj.LastModified.UTC().Format(time.RFC3339),
		}
		switch t {
		case model.MediaImage:
			thumb := url
			item.Thumbnail = &thumb
			inv.Stats.Images++
		case model.MediaVideo:
			inv.Stats.Videos++
		case model.MediaDocument:
			inv.Stats.Documents++
		}
		inv.Data = append(inv.Data, item)
	}

	capacity, err := s.src.Capacity(ctx)
	if err != nil {
		return nil, err
	}

	inv.Stats.Total = len(inv.Data)
	inv.Stats.StorageUsed = FormatMB(used)
	inv.Stats.StorageLimit = FormatGB(capacity)
	return inv, nil
}
