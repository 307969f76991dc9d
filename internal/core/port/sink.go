package port

import "pngexport/internal/core/domain"

type ImageSink interface {
	// Write stores the encoded image under the output root, mirroring the
	// task's relative path with a .png extension, and returns the final path.
	// An existing file at that path is replaced.
	Write(task domain.ImageTask, data []byte) (string, error)
}
