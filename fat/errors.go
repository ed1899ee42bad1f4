package fat

import "errors"

var (
	ErrUnsupportedMedia = errors.New("unsupported media type")
	ErrNotCreatable     = errors.New("media type has no boot sector, disks cannot be created on it")
	ErrImageSize        = errors.New("image size does not match media type")
)
