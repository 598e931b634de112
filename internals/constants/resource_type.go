package constants

import (
	"path/filepath"
	"strings"
)

// Tipe resource pada curriculum item
const (
	ResourceTypeFile       = "file"
	ResourceTypeURL        = "url"
	ResourceTypeYoutubeURL = "youtube_url"
)

func IsValidResourceType(t string) bool {
	switch t {
	case ResourceTypeFile, ResourceTypeURL, ResourceTypeYoutubeURL:
		return true
	}
	return false
}

// DetectResourceTypeFromValue menebak tipe resource dari nilai yang dikirim frontend.
// Link youtube → youtube_url, link lain → url, sisanya dianggap file path.
func DetectResourceTypeFromValue(v string) string {
	s := strings.ToLower(strings.TrimSpace(v))
	if strings.Contains(s, "youtube.com") || strings.Contains(s, "youtu.be") {
		return ResourceTypeYoutubeURL
	}
	if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
		return ResourceTypeURL
	}
	return ResourceTypeFile
}

func DetectFileTypeFromExt(filename string) int {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".mp4", ".mkv", ".webm":
		return 1 // Video
	case ".mp3", ".wav":
		return 2 // Audio
	case ".doc", ".docx":
		return 3 // DOCX
	case ".pdf":
		return 4 // PDF
	case ".ppt", ".pptx":
		return 5 // PPT
	case ".png", ".jpg", ".jpeg", ".webp":
		return 6 // Image
	default:
		return 99 // Tidak diketahui
	}
}
