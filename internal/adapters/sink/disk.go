package sink

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"pngexport/internal/adapters/file"
	"pngexport/internal/core/domain"
)

// DiskSink writes encoded images into a directory tree mirroring the input
// root.
type DiskSink struct {
	outRoot string
}

func NewDiskSink(outRoot string) *DiskSink {
	return &DiskSink{outRoot: outRoot}
}

// Write stores data under the output root at the task's relative path with
// the extension replaced by .png. The bytes are staged to a temp file and
// renamed into place, so an aborted run never leaves a half-written file at
// the final path.
func (s *DiskSink) Write(task domain.ImageTask, data []byte) (string, error) {
	rel := strings.TrimSuffix(task.RelPath, filepath.Ext(task.RelPath)) + ".png"
	dst := filepath.Join(s.outRoot, rel)

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	tmp, err := file.StageTemp(filepath.Dir(dst), data)
	if err != nil {
		return "", err
	}

	if err := file.Promote(tmp, dst); err != nil {
		file.Discard(tmp)
		return "", fmt.Errorf("committing output file: %w", err)
	}

	log.Debug().Str("path", dst).Int("bytes", len(data)).Msg("wrote output file")

	return dst, nil
}
