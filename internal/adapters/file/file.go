package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/uuid/v5"
	"github.com/rs/zerolog/log"
)

// StageTemp writes data to a uuid-named temp file inside dir and returns its
// path. Staging in the target directory keeps the later rename on one
// filesystem.
func StageTemp(dir string, data []byte) (string, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return "", err
	}

	log.Debug().Int("bytes", len(data)).Str("dir", dir).Msg("staging temp file")

	path := filepath.Join(dir, fmt.Sprintf(".%s.tmp", id.String()))

	f, err := os.Create(path)
	if err != nil {
		err = fmt.Errorf("error creating temp file %w", err)
		log.Error().Err(err).Send()
		return "", err
	}

	defer f.Close()

	if _, err := f.Write(data); err != nil {
		err = fmt.Errorf("error writing temp file %w", err)
		log.Error().Err(err).Send()
		return "", err
	}

	log.Debug().Str("path", f.Name()).Msg("staged file")

	return f.Name(), nil
}

// Promote moves a staged temp file to its final path, replacing any existing
// file there.
func Promote(tmpPath, finalPath string) error {
	if err := os.Rename(tmpPath, finalPath); err != nil {
		return fmt.Errorf("error promoting temp file %w", err)
	}

	return nil
}

// Discard removes a staged temporary file at the given path and logs success
// or failure.
func Discard(path string) {
	err := os.Remove(path)
	if err != nil {
		log.Warn().Str("path", path).Err(err).Msg("could not clean up temp file")
		return
	}
	log.Debug().Str("path", path).Msg("cleaned up temp file")
}
