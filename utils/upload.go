package utils

import (
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// Extension allow-lists per upload kind.
var (
	ManuscriptExts = map[string]bool{".doc": true, ".docx": true, ".pdf": true}
	ImageExts      = map[string]bool{".png": true, ".jpg": true, ".jpeg": true, ".gif": true}
)

func AllowedFile(filename string, allowed map[string]bool) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return allowed[ext]
}

// SaveUpload stores an uploaded file under dir with a timestamped name and
// returns the stored path. Rejects disallowed extensions and oversize files.
func SaveUpload(c *gin.Context, fh *multipart.FileHeader, dir string, allowed map[string]bool, maxSize int64) (string, error) {
	if !AllowedFile(fh.Filename, allowed) {
		return "", errors.New("file type not allowed")
	}
	if fh.Size > maxSize {
		return "", errors.New("file too large")
	}

	name := fmt.Sprintf("%s_%s", time.Now().Format("20060102150405"), filepath.Base(fh.Filename))
	path := filepath.Join(dir, name)
	if err := c.SaveUploadedFile(fh, path); err != nil {
		return "", err
	}
	return path, nil
}
