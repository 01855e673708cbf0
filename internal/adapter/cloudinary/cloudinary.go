package cloudinary

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/rubyautoparts/autoparts-catalog-service/internal/core/domain"
	"github.com/rubyautoparts/autoparts-catalog-service/internal/core/ports"
)

const hostingDomain = "cloudinary.com"

type MediaAdapter struct {
	cld    *cloudinary.Cloudinary
	folder string
	logger ports.LoggerPort
}

// NewMediaAdapter configures the client from a CLOUDINARY_URL-style URL when
// given one, otherwise from the individual credentials.
func NewMediaAdapter(url, cloudName, apiKey, apiSecret, folder string, logger ports.LoggerPort) (*MediaAdapter, error) {
	var (
		cld *cloudinary.Cloudinary
		err error
	)
	if cloudName != "" {
		cld, err = cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	} else {
		cld, err = cloudinary.NewFromURL(url)
	}
	if err != nil {
		return nil, fmt.Errorf("cloudinary config: %w", err)
	}

	return &MediaAdapter{cld: cld, folder: folder, logger: logger}, nil
}

func (a *MediaAdapter) Upload(ctx context.Context, filePath string) (*domain.UploadedAsset, error) {
	res, err := a.cld.Upload.Upload(ctx, filePath, uploader.UploadParams{
		Folder:       a.folder,
		ResourceType: "auto",
	})
	if err != nil {
		return nil, fmt.Errorf("cloudinary upload: %w", err)
	}
	if res.Error.Message != "" {
		return nil, fmt.Errorf("cloudinary upload: %s", res.Error.Message)
	}

	a.logger.Info("Image uploaded to Cloudinary", map[string]interface{}{
		"public_id": res.PublicID,
		"bytes":     res.Bytes,
	})

	return &domain.UploadedAsset{
		URL:      res.SecureURL,
		PublicID: res.PublicID,
		Width:    res.Width,
		Height:   res.Height,
		Format:   res.Format,
	}, nil
}

func (a *MediaAdapter) Destroy(ctx context.Context, publicID string) error {
	res, err := a.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("cloudinary destroy: %w", err)
	}
	if res.Result != "ok" && res.Result != "not found" {
		return fmt.Errorf("cloudinary destroy: %s", res.Result)
	}
	return nil
}

// PublicIDFromURL rebuilds the deletion key from a delivery URL: the last two
// path segments are the folder and the file name, minus the format extension.
// URLs not served by the hosting domain report false and are left alone.
func (a *MediaAdapter) PublicIDFromURL(rawURL string) (string, bool) {
	return PublicIDFromURL(rawURL)
}

func PublicIDFromURL(rawURL string) (string, bool) {
	if !strings.Contains(rawURL, hostingDomain) {
		return "", false
	}

	segments := strings.Split(rawURL, "/")
	if len(segments) < 2 {
		return "", false
	}

	folder := segments[len(segments)-2]
	name := segments[len(segments)-1]
	if dot := strings.LastIndex(name, "."); dot > 0 {
		name = name[:dot]
	}
	if folder == "" || name == "" {
		return "", false
	}

	return folder + "/" + name, true
}
