package scanner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"pngexport/internal/core/domain"
)

var imageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".tif":  true,
	".tiff": true,
	".bmp":  true,
	".webp": true,
}

type DirScanner struct {
	root string
}

func NewDirScanner(root string) *DirScanner {
	return &DirScanner{root: root}
}

// Verify checks that the source root exists and is listable. A fully
// unreadable input tree must fail the run up front instead of exiting clean
// after converting nothing.
func (s *DirScanner) Verify() error {
	f, err := os.Open(s.root)
	if err != nil {
		return fmt.Errorf("opening input directory: %w", err)
	}
	defer f.Close()

	if _, err := f.Readdirnames(1); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("reading input directory: %w", err)
	}

	return nil
}

// Images walks the source root and yields a task for every regular file with
// a recognized image extension. Unreadable entries are logged and skipped,
// symlinks are not followed, so link cycles cannot trap the walk.
func (s *DirScanner) Images(ctx context.Context) iter.Seq2[domain.ImageTask, error] {
	return func(yield func(domain.ImageTask, error) bool) {
		err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				log.Warn().Err(err).Str("path", path).Msg("skipping unreadable entry")
				return nil
			}

			if ctx.Err() != nil {
				return ctx.Err()
			}

			if d.IsDir() || !d.Type().IsRegular() {
				return nil
			}

			if !imageExts[strings.ToLower(filepath.Ext(path))] {
				return nil
			}

			info, err := d.Info()
			if err != nil {
				log.Warn().Err(err).Str("path", path).Msg("skipping entry without file info")
				return nil
			}

			rel, err := filepath.Rel(s.root, path)
			if err != nil {
				return err
			}

			task := domain.ImageTask{
				SourcePath: path,
				RelPath:    rel,
				SourceSize: info.Size(),
			}

			if !yield(task, nil) {
				return fs.SkipAll
			}

			return nil
		})
		if err != nil {
			yield(domain.ImageTask{}, err)
		}
	}
}
