package diffsync

import "errors"

var (
	ErrShadowStore   = errors.New("shadow store failure")
	ErrCorruptShadow = errors.New("stored shadow cannot be decoded")
)
