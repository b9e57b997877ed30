package utils

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// ExpiredLabel is shown instead of a countdown once a file is past its expiry
const ExpiredLabel = "Expired"

// FormatFileSize converts bytes to B, KB or MB with one decimal, rounding
// halves up
func FormatFileSize(size int64) string {
	const unit = 1024
	switch {
	case size < unit:
		return fmt.Sprintf("%d B", size)
	case size < unit*unit:
		return fmt.Sprintf("%.1f KB", roundTenth(float64(size)/unit))
	default:
		return fmt.Sprintf("%.1f MB", roundTenth(float64(size)/(unit*unit)))
	}
}

func roundTenth(v float64) float64 {
	return math.Floor(v*10+0.5) / 10
}

// FormatRemaining renders the time left until expiresAt as "5h 12m" or "12m".
// The value is computed against now and does not tick.
func FormatRemaining(expiresAt, now time.Time) string {
	diff := expiresAt.Sub(now)
	if diff < 0 {
		return ExpiredLabel
	}

	hours := int64(diff / time.Hour)
	minutes := int64((diff % time.Hour) / time.Minute)
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}

// FileCategory groups file names by extension
type FileCategory string

const (
	CategoryImage    FileCategory = "image"
	CategoryDocument FileCategory = "document"
	CategoryArchive  FileCategory = "archive"
	CategoryVideo    FileCategory = "video"
	CategoryAudio    FileCategory = "audio"
	CategoryFile     FileCategory = "file"
)

var categoryByExtension = map[string]FileCategory{
	"jpg":  CategoryImage,
	"jpeg": CategoryImage,
	"png":  CategoryImage,
	"gif":  CategoryImage,
	"webp": CategoryImage,
	"pdf":  CategoryDocument,
	"zip":  CategoryArchive,
	"rar":  CategoryArchive,
	"7z":   CategoryArchive,
	"mp4":  CategoryVideo,
	"mov":  CategoryVideo,
	"avi":  CategoryVideo,
	"mp3":  CategoryAudio,
	"wav":  CategoryAudio,
	"ogg":  CategoryAudio,
}

// Extension returns the lowercased text after the last dot.
// A name without a dot is returned whole, which never matches a known category.
func Extension(filename string) string {
	if i := strings.LastIndexByte(filename, '.'); i >= 0 {
		filename = filename[i+1:]
	}
	return strings.ToLower(filename)
}

// ClassifyFile maps a file name to its display category
func ClassifyFile(filename string) FileCategory {
	if category, ok := categoryByExtension[Extension(filename)]; ok {
		return category
	}
	return CategoryFile
}

// Icon returns the glyph rendered next to files of this category
func (c FileCategory) Icon() string {
	switch c {
	case CategoryImage:
		return "🖼"
	case CategoryDocument:
		return "📄"
	case CategoryArchive:
		return "🗜"
	case CategoryVideo:
		return "🎬"
	case CategoryAudio:
		return "🎵"
	default:
		return "📁"
	}
}
