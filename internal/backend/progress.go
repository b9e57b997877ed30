package backend

import (
	"io"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/marianozunino/share/internal/utils"
)

// ProgressReader wraps an io.Reader and logs upload progress every 10%
type ProgressReader struct {
	reader    io.Reader
	total     int64
	current   int64
	logged    int64
	filename  string
	startTime time.Time
}

// NewProgressReader creates a ProgressReader. A non-positive total disables progress logging.
func NewProgressReader(reader io.Reader, total int64, filename string) *ProgressReader {
	return &ProgressReader{
		reader:    reader,
		total:     total,
		filename:  filename,
		startTime: time.Now(),
	}
}

// Read implements io.Reader
func (pr *ProgressReader) Read(p []byte) (int, error) {
	n, err := pr.reader.Read(p)
	pr.current += int64(n)

	if pr.total > 0 && n > 0 {
		decile := pr.current * 10 / pr.total
		if decile > pr.logged {
			pr.logged = decile
			elapsed := time.Since(pr.startTime).Seconds()
			speed := 0.0
			if elapsed > 0 {
				speed = float64(pr.current) / elapsed / 1024 / 1024
			}
			log.Debug().
				Str("file", pr.filename).
				Float64("percent", float64(pr.current)/float64(pr.total)*100).
				Str("sent", utils.FormatFileSize(pr.current)).
				Str("total", utils.FormatFileSize(pr.total)).
				Float64("mb_per_s", speed).
				Msg("Upload progress")
		}
	}

	return n, err
}

// BytesRead returns how many bytes have passed through the reader
func (pr *ProgressReader) BytesRead() int64 {
	return pr.current
}
