// Package media contains the parameters of the floppy disk media types
// identified by the FAT media descriptor byte (0xF8 to 0xFF): their
// geometry, total image size and, for the media types on which new
// disks can be created, the boot sector written when formatting.
package media

import (
	"fmt"
	"strconv"
	"strings"
)

// Type identifies one of the eight floppy media types.
type Type int

const (
	F8 Type = iota // 3.5", 80 tracks, 9 sectors, 1 side, 360KB
	F9             // 3.5", 80 tracks, 9 sectors, 2 sides, 720KB
	FA             // 3.5", 80 tracks, 8 sectors, 1 side, 320KB
	FB             // 3.5", 80 tracks, 8 sectors, 2 sides, 640KB
	FC             // 5.25", 40 tracks, 9 sectors, 1 side, 180KB
	FD             // 5.25", 40 tracks, 9 sectors, 2 sides, 360KB
	FE             // 5.25", 40 tracks, 8 sectors, 1 side, 160KB
	FF             // 5.25", 40 tracks, 8 sectors, 2 sides, 320KB

	numTypes
)

const firstDescriptor = 0xF8

// BytesPerSector is the sector size of every media type.
const BytesPerSector = 512

// All returns all media types in descriptor order.
func All() []Type {
	all := make([]Type, 0, numTypes)
	for t := F8; t < numTypes; t++ {
		all = append(all, t)
	}
	return all
}

// FormatOptions returns the media types on which new disks can be
// created, in order of preference.
func FormatOptions() []Type {
	return []Type{F9, F8}
}

// FromDescriptor returns the media type for the FAT media descriptor
// byte b.
func FromDescriptor(b byte) (Type, bool) {
	if b < firstDescriptor {
		return 0, false
	}
	return Type(b - firstDescriptor), true
}

func (t Type) valid() bool { return t >= F8 && t < numTypes }

// Descriptor returns the FAT media descriptor byte of t.
func (t Type) Descriptor() byte { return byte(firstDescriptor + int(t)) }

// Description returns the nominal capacity of t, e.g. "720KB".
func (t Type) Description() string {
	if !t.valid() {
		return ""
	}
	return descriptions[t]
}

func (t Type) String() string {
	if !t.valid() {
		return fmt.Sprintf("media.Type(%d)", int(t))
	}
	return fmt.Sprintf("%s (0x%02X)", descriptions[t], t.Descriptor())
}

// Creatable reports whether new disks can be created on t, i.e. whether t
// has a boot sector template.
func (t Type) Creatable() bool {
	return t.valid() && bootSectors[t] != nil
}

// Lookup returns the geometry of t.
func Lookup(t Type) (Geometry, bool) {
	if !t.valid() {
		return Geometry{}, false
	}
	return geometries[t], true
}

// ImageSize returns the size in bytes of a disk image of media type t, or 0
// if t is not a known media type.
func ImageSize(t Type) int {
	if !t.valid() {
		return 0
	}
	return imageSizes[t]
}

// ValidSize reports whether n is the image size of any media type.
func ValidSize(n int) bool {
	for _, size := range imageSizes {
		if size == n {
			return true
		}
	}
	return false
}

// BootSector returns a copy of the boot sector template of t. Only
// creatable media types have one.
func BootSector(t Type) ([]byte, bool) {
	if !t.Creatable() {
		return nil, false
	}
	return append([]byte(nil), bootSectors[t]...), true
}

// ParseError is returned by Parse for strings which do not name a media
// type.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unknown media type %q (want e.g. 720k, 360KB or 0xF9)", e.Input)
}

// Parse returns the media type named by s. s is either a media descriptor
// in hex (0xF9, F9) or a capacity (720k, 720KB). Capacities shared by two
// media types resolve to the lower descriptor, which is the creatable one
// for 360KB.
func Parse(s string) (Type, error) {
	in := strings.ToUpper(strings.TrimSpace(s))
	if hex := strings.TrimPrefix(in, "0X"); len(hex) == 2 {
		if b, err := strconv.ParseUint(hex, 16, 8); err == nil {
			if t, ok := FromDescriptor(byte(b)); ok {
				return t, nil
			}
		}
	}
	capacity := strings.TrimSuffix(strings.TrimSuffix(in, "B"), "K")
	if capacity != "" {
		for _, t := range All() {
			if descriptions[t] == capacity+"KB" {
				return t, nil
			}
		}
	}
	return 0, &ParseError{Input: s}
}
