package services

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"

	"github.com/rlozl15/pypost/internal/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// ImageService stores and removes post image attachments
type ImageService interface {
	UploadImage(file multipart.File, fileName string) (publicID, url string, err error)
	DeleteImage(publicID string) error
}

type cloudinaryService struct {
	cld *cloudinary.Cloudinary
	cfg *config.Config
}

// NewCloudinaryService creates the cloudinary-backed ImageService
func NewCloudinaryService(cfg *config.Config) (ImageService, error) {
	cld, err := cloudinary.NewFromParams(
		cfg.Cloudinary.CloudName,
		cfg.Cloudinary.APIKey,
		cfg.Cloudinary.APISecret,
	)
	if err != nil {
		return nil, err
	}

	return &cloudinaryService{cld: cld, cfg: cfg}, nil
}

// UploadImage uploads an image and returns its public id and URL
func (s *cloudinaryService) UploadImage(file multipart.File, fileName string) (string, string, error) {
	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(file); err != nil {
		return "", "", fmt.Errorf("failed to read upload: %v", err)
	}

	uploadParams := uploader.UploadParams{
		Folder:       s.cfg.Cloudinary.Folder,
		PublicID:     fileName,
		ResourceType: "image",
	}

	result, err := s.cld.Upload.Upload(context.Background(), buf, uploadParams)
	if err != nil {
		return "", "", fmt.Errorf("cloudinary upload failed: %v", err)
	}

	return result.PublicID, result.SecureURL, nil
}

// DeleteImage removes an uploaded image
func (s *cloudinaryService) DeleteImage(publicID string) error {
	if publicID == "" {
		return nil
	}

	_, err := s.cld.Upload.Destroy(context.Background(), uploader.DestroyParams{
		PublicID: publicID,
	})
	if err != nil {
		return fmt.Errorf("cloudinary delete failed: %v", err)
	}

	return nil
}
