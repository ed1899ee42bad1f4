// Package fat implements writing FAT12 floppy disk images, which is
// useful when providing files to emulated disk drives. Images are built
// entirely in memory and use the layout of one of the media types from
// package media.
//
// Files are stored contiguously in the root directory, in the order they
// are added. Files which no longer fit are left out.
//
// Filenames are restricted to 8 characters + 3 characters for the
// file extension. Longer names are shortened using a ~N suffix.
package fat
