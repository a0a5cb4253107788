package model

type MediaType string

const (
	MediaImage    MediaType = "image"
	MediaVideo    MediaType = "video"
	MediaDocument MediaType = "document"
)

// MediaItem is derived from file metadata on every scan and never persisted.
type MediaItem struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	Type       MediaType `json:"type"`
	Size       string    `json:"size"`
	URL        string    `json:"url"`
	Thumbnail  *string   `json:"thumbnail"`
	UploadedAt string    `json:"uploaded_at"`
}

type MediaStats struct {
	Total        int    `json:"total"`
	Images       int    `json:"images"`
	Videos       int    `json:"videos"`
	Documents    int    `json:"documents"`
	StorageUsed  string `json:"storageUsed"`
	StorageLimit string `json:"storageLimit"`
}

type MediaInventory struct {
	Data  []MediaItem `json:"data"`
	Stats MediaStats  `json:"stats"`
}

func init() {
	RegisterDescriptor(Descriptor{
		Name:   "craftly/model.MediaItem",
		Label:  "Media",
		Fields: []string{"id", "name", "type", "size", "url", "thumbnail", "uploaded_at"},
		Table:  "media",
	})
}
