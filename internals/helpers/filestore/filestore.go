// internals/helpers/filestore/filestore.go
package filestore

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Kolaborator penyimpanan file yang dikonsumsi core:
// store(file, folder) -> path, delete(path).
type FileStore interface {
	Store(folder string, fileHeader *multipart.FileHeader) (string, error)
	StoreBytes(folder, filename string, data []byte) (string, error)
	Delete(path string) error
}

// DiskFileStore menyimpan file di disk lokal (atau volume ter-mount).
// Path yang dikembalikan relatif terhadap base dir, misal "courses/20250131-<uuid>-intro.pdf".
type DiskFileStore struct {
	BaseDir string
}

func NewDiskFileStore() *DiskFileStore {
	base := os.Getenv("FILE_STORAGE_DIR")
	if base == "" {
		base = "./uploads"
	}
	return &DiskFileStore{BaseDir: base}
}

func (s *DiskFileStore) Store(folder string, fileHeader *multipart.FileHeader) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("gagal membuka file: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return "", fmt.Errorf("gagal membaca file: %w", err)
	}
	return s.StoreBytes(folder, fileHeader.Filename, data)
}

func (s *DiskFileStore) StoreBytes(folder, filename string, data []byte) (string, error) {
	rel := generateUniqueFilename(folder, filename)
	full := filepath.Join(s.BaseDir, rel)

	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("gagal membuat folder upload: %w", err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return "", fmt.Errorf("gagal menyimpan file: %w", err)
	}
	return rel, nil
}

func (s *DiskFileStore) Delete(path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}
	// jangan pernah keluar dari base dir
	clean := filepath.Clean(path)
	if strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return errors.New("path file tidak valid")
	}
	full := filepath.Join(s.BaseDir, clean)
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("gagal menghapus file: %w", err)
	}
	return nil
}

// ✅ Buat nama unik: <folder>/<tanggal>-<uuid>-<nama-aman>
func generateUniqueFilename(folder, originalFilename string) string {
	timestamp := time.Now().Format("20060102")
	uuidStr := uuid.New().String()
	return fmt.Sprintf("%s/%s-%s-%s", folder, timestamp, uuidStr, sanitizeFilename(originalFilename))
}

func sanitizeFilename(filename string) string {
	// Hapus karakter selain huruf, angka, titik, dash, underscore
	re := regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)
	return re.ReplaceAllString(filename, "_")
}
