package services

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Room images land under uploads/ and are served statically; a cloud
// image host is out of scope.
const uploadsDir = "uploads"

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// SaveUploadedImages writes multipart image files into uploads/<subdir>
// and returns their URL paths.
func SaveUploadedImages(c *gin.Context, files []*multipart.FileHeader, subdir string) ([]string, error) {
	dir := filepath.Join(uploadsDir, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads dir: %w", err)
	}

	paths := make([]string, 0, len(files))
	for _, file := range files {
		ext := strings.ToLower(filepath.Ext(file.Filename))
		if !allowedImageExts[ext] {
			return nil, fmt.Errorf("unsupported image type %q", ext)
		}
		name := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), uuid.NewString()[:8], ext)
		dest := filepath.Join(dir, name)
		if err := c.SaveUploadedFile(file, dest); err != nil {
			return nil, fmt.Errorf("failed to save image: %w", err)
		}
		paths = append(paths, "/"+filepath.ToSlash(dest))
	}
	return paths, nil
}
