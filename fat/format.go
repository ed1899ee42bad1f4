package fat

import (
	"fmt"

	"github.com/gokrazy/floppy/media"
)

// erased is the value of data area bytes which were never written to.
const erased = 0xFF

func lookup(t media.Type) (media.Geometry, error) {
	g, ok := media.Lookup(t)
	if !ok {
		return media.Geometry{}, fmt.Errorf("%w: %v", ErrUnsupportedMedia, t)
	}
	return g, nil
}

func checkSize(t media.Type, image []byte) error {
	if got, want := len(image), media.ImageSize(t); got != want {
		return fmt.Errorf("%w: %v needs %d bytes, got %d", ErrImageSize, t, want, got)
	}
	return nil
}

// NewEmptyImage returns a zero-filled, unformatted image for media type t.
func NewEmptyImage(t media.Type) ([]byte, error) {
	if _, err := lookup(t); err != nil {
		return nil, err
	}
	return make([]byte, media.ImageSize(t)), nil
}

// NewFormattedImage returns a formatted image with an empty root directory
// for media type t.
func NewFormattedImage(t media.Type) ([]byte, error) {
	image, err := NewEmptyImage(t)
	if err != nil {
		return nil, err
	}
	if err := Format(t, image); err != nil {
		return nil, err
	}
	return image, nil
}

// Format turns image into an empty FAT12 file system for media type t:
//
//   - the boot sector template of t is written to sector 0 (media types
//     without a template get an all-zero boot sector),
//   - the primary FAT starts with the media descriptor, 0xFF, 0xFF and is
//     copied to the other FATs,
//   - the root directory is cleared,
//   - the data area is filled with 0xFF.
func Format(t media.Type, image []byte) error {
	g, err := lookup(t)
	if err != nil {
		return err
	}
	if err := checkSize(t, image); err != nil {
		return err
	}

	data := g.DataOffset()
	clear(image[:data])
	if boot, ok := media.BootSector(t); ok {
		copy(image, boot)
	}

	fat := g.FATOffset()
	image[fat] = t.Descriptor()
	image[fat+1] = 0xFF
	image[fat+2] = 0xFF
	mirrorFATs(g, image)

	for i := data; i < len(image); i++ {
		image[i] = erased
	}
	return nil
}

// MirrorFATs copies the primary FAT of image over all further FAT copies.
func MirrorFATs(t media.Type, image []byte) error {
	g, err := lookup(t)
	if err != nil {
		return err
	}
	if err := checkSize(t, image); err != nil {
		return err
	}
	mirrorFATs(g, image)
	return nil
}

func mirrorFATs(g media.Geometry, image []byte) {
	size := g.FATSize()
	primary := image[g.FATOffset() : g.FATOffset()+size]
	for i := 1; i < g.FATs; i++ {
		dest := g.FATOffset() + i*size
		copy(image[dest:dest+size], primary)
	}
}
