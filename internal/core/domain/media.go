package domain

// UploadedAsset is the media host's record of a stored binary.
type UploadedAsset struct {
	URL          string `json:"url"`
	PublicID     string `json:"publicId"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	Format       string `json:"format"`
	OriginalName string `json:"originalName,omitempty"`
}

// UploadFile is a temporary on-disk binary queued for upload.
type UploadFile struct {
	Path         string
	OriginalName string
}
