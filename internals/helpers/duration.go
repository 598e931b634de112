package helper

import "fmt"

// FormatDuration menampilkan detik sebagai "mm:ss" atau "h:mm:ss",
// dipakai untuk label durasi lecture/document di daftar kurikulum.
func FormatDuration(seconds int) string {
	if seconds <= 0 {
		return "00:00"
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}
