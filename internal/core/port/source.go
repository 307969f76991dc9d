package port

import (
	"context"
	"iter"

	"pngexport/internal/core/domain"
)

type ImageSource interface {
	// Images returns a lazy, finite sequence of image tasks found under the
	// source root. The sequence is restartable, ranging over it again walks
	// the tree again. A non-nil error element reports a walk-level failure
	// and terminates the sequence.
	Images(ctx context.Context) iter.Seq2[domain.ImageTask, error]
}
