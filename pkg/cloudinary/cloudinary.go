package cloudinary

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// Client wraps the Cloudinary SDK for post image storage.
type Client struct {
	cld *cloudinary.Cloudinary
}

// New creates a Client from a CLOUDINARY_URL-style connection string.
func New(cloudinaryURL string) (*Client, error) {
	if cloudinaryURL == "" {
		return nil, fmt.Errorf("cloudinary URL not provided")
	}
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("error initializing cloudinary client: %w", err)
	}
	log.Println("Cloudinary client initialized successfully!")
	return &Client{cld: cld}, nil
}

// Upload stores the file and returns its delivery URL. An empty URL with a
// nil error means the host accepted the file but returned no URL.
func (c *Client) Upload(ctx context.Context, file io.Reader) (string, error) {
	res, err := c.cld.Upload.Upload(ctx, file, uploader.UploadParams{})
	if err != nil {
		return "", err
	}
	return res.SecureURL, nil
}

// Destroy removes a previously uploaded image by its public ID.
func (c *Client) Destroy(ctx context.Context, publicID string) error {
	res, err := c.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return err
	}
	if res.Result != "ok" && res.Result != "not found" {
		return fmt.Errorf("cloudinary destroy returned %q", res.Result)
	}
	return nil
}
