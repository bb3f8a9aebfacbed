package utils

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// SaveUploadedImage stores a multipart image under <baseDir>/<subDir> with a
// random filename and returns the public path ("/uploads/…") for the DB.
func SaveUploadedImage(c *gin.Context, file *multipart.FileHeader, baseDir, subDir string) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		return "", fmt.Errorf("unsupported image type %q", ext)
	}

	dir := filepath.Join(baseDir, subDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	filename := uuid.NewString() + ext
	if err := c.SaveUploadedFile(file, filepath.Join(dir, filename)); err != nil {
		return "", fmt.Errorf("save uploaded file: %w", err)
	}

	return "/" + filepath.ToSlash(filepath.Join(baseDir, subDir, filename)), nil
}
