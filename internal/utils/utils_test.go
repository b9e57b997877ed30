package utils_test

import (
	"testing"
	"time"

	"github.com/marianozunino/share/internal/utils"
)

func TestFormatFileSize(t *testing.T) {
	tests := []struct {
		name string
		size int64
		want string
	}{
		{"zero", 0, "0 B"},
		{"bytes", 512, "512 B"},
		{"just below KB", 1023, "1023 B"},
		{"one KB", 1024, "1.0 KB"},
		{"one and a half KB", 1536, "1.5 KB"},
		{"rounds to one decimal", 1100, "1.1 KB"},
		{"rounds a KB tie up", 1280, "1.3 KB"},
		{"rounds an even KB tie up", 2304, "2.3 KB"},
		{"just below MB", 1024*1024 - 1, "1024.0 KB"},
		{"one MB", 1024 * 1024, "1.0 MB"},
		{"two and a half MB", 2.5 * 1024 * 1024, "2.5 MB"},
		{"rounds an MB tie up", 1310720, "1.3 MB"},
		{"stays in MB above GB", 3 * 1024 * 1024 * 1024, "3072.0 MB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := utils.FormatFileSize(tt.size); got != tt.want {
				t.Errorf("FormatFileSize(%d) = %q, want %q", tt.size, got, tt.want)
			}
		})
	}
}

func TestFormatRemaining(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		expiresAt time.Time
		want      string
	}{
		{"already expired", now.Add(-time.Second), utils.ExpiredLabel},
		{"long expired", now.Add(-48 * time.Hour), utils.ExpiredLabel},
		{"expires right now", now, "0m"},
		{"under a minute", now.Add(59 * time.Second), "0m"},
		{"minutes only", now.Add(42*time.Minute + 30*time.Second), "42m"},
		{"exactly one hour", now.Add(time.Hour), "1h 0m"},
		{"hours and minutes", now.Add(5*time.Hour + 12*time.Minute), "5h 12m"},
		{"full day", now.Add(24 * time.Hour), "24h 0m"},
		{"day minus a second", now.Add(24*time.Hour - time.Second), "23h 59m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := utils.FormatRemaining(tt.expiresAt, now); got != tt.want {
				t.Errorf("FormatRemaining() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClassifyFile(t *testing.T) {
	tests := []struct {
		filename string
		want     utils.FileCategory
	}{
		{"photo.PNG", utils.CategoryImage},
		{"cat.jpeg", utils.CategoryImage},
		{"notes.pdf", utils.CategoryDocument},
		{"backup.7z", utils.CategoryArchive},
		{"archive.tar.gz", utils.CategoryFile},
		{"clip.MOV", utils.CategoryVideo},
		{"song.ogg", utils.CategoryAudio},
		{"README", utils.CategoryFile},
		{"", utils.CategoryFile},
		{"trailing.", utils.CategoryFile},
		{".png", utils.CategoryImage},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			if got := utils.ClassifyFile(tt.filename); got != tt.want {
				t.Errorf("ClassifyFile(%q) = %q, want %q", tt.filename, got, tt.want)
			}
		})
	}
}

func TestCategoryIcons(t *testing.T) {
	seen := map[string]utils.FileCategory{}
	for _, c := range []utils.FileCategory{
		utils.CategoryImage, utils.CategoryDocument, utils.CategoryArchive,
		utils.CategoryVideo, utils.CategoryAudio, utils.CategoryFile,
	} {
		icon := c.Icon()
		if icon == "" {
			t.Fatalf("category %q has no icon", c)
		}
		if other, dup := seen[icon]; dup {
			t.Errorf("categories %q and %q share icon %q", c, other, icon)
		}
		seen[icon] = c
	}

	if utils.FileCategory("unknown").Icon() != utils.CategoryFile.Icon() {
		t.Error("unknown category should fall back to the generic file icon")
	}
}
