package helpers

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"slices"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PublicUploadPrefix is the URL prefix uploaded files are served under.
const PublicUploadPrefix = "/uploads"

type UploadConfig struct {
	MaxSizeBytes     int64
	AllowedMimeTypes []string
	UploadBasePath   string
}

var DefaultImageUploadConfig = UploadConfig{
	MaxSizeBytes: 5 * 1024 * 1024, // 5MB
	AllowedMimeTypes: []string{
		"image/jpeg",
		"image/png",
		"image/gif",
		"image/webp",
	},
	UploadBasePath: "./uploads/",
}

// ImageUploadConfig is the default image configuration rooted at basePath.
func ImageUploadConfig(basePath string) UploadConfig {
	config := DefaultImageUploadConfig
	if basePath != "" {
		config.UploadBasePath = basePath
	}
	return config
}

// UploadFile stores fileHeader under <base>/<uploadType>/ with a random name and
// returns the file path and the public URL it is served at.
func UploadFile(c *gin.Context, fileHeader *multipart.FileHeader, uploadType string, configs ...UploadConfig) (string, string, error) {
	config := DefaultImageUploadConfig
	if len(configs) > 0 {
		config = configs[0]
	}

	if fileHeader.Size > config.MaxSizeBytes {
		return "", "", fmt.Errorf("file size exceeds maximum limit of %d MB", config.MaxSizeBytes/(1024*1024))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", "", err
	}
	defer src.Close()

	buffer := make([]byte, 512)
	n, err := src.Read(buffer)
	if err != nil && err != io.EOF {
		return "", "", err
	}
	mimeType := http.DetectContentType(buffer[:n])

	if !slices.Contains(config.AllowedMimeTypes, mimeType) {
		return "", "", fmt.Errorf("invalid file type. Allowed types: %v", config.AllowedMimeTypes)
	}

	ext := filepath.Ext(fileHeader.Filename)

	uploadPath := filepath.Join(config.UploadBasePath, uploadType)
	if err := os.MkdirAll(uploadPath, os.ModePerm); err != nil {
		return "", "", err
	}

	filename := fmt.Sprintf("%s%s", uuid.New().String(), ext)
	fullFilepath := filepath.Join(uploadPath, filename)

	if err := c.SaveUploadedFile(fileHeader, fullFilepath); err != nil {
		return "", "", err
	}

	return fullFilepath, path.Join(PublicUploadPrefix, uploadType, filename), nil
}

func DeleteFile(filePath string) error {
	return os.Remove(filePath)
}
