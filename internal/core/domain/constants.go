package domain

import "errors"

var (
	ErrScaleOutOfRange     = errors.New("scale must be greater than zero")
	ErrSizeRatioOutOfRange = errors.New("size ratio must be greater than zero")
	ErrNegativeThreshold   = errors.New("resolution thresholds must not be negative")
)
