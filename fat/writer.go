package fat

import (
	"strings"

	"github.com/gokrazy/floppy/media"
)

// File is a file to be stored in an image.
type File struct {
	Name    string
	Content []byte

	// Size is recorded in the directory entry. It is usually len(Content),
	// but callers may pass content which is padded beyond the file's
	// logical size.
	Size uint32
}

// Writer stores files in a freshly formatted image. Files are laid out in
// the order they are added, each in a contiguous run of clusters.
type Writer struct {
	geo   media.Geometry
	image []byte

	names  nameRegistry
	packed []string

	rootEntry   int
	freeCluster int

	// full is set once a file did not fit. No further files are stored
	// after that, even if they would fit.
	full bool
}

// NewWriter returns a Writer for an empty image of media type t. Only
// creatable media types (see media.Type.Creatable) are supported.
func NewWriter(t media.Type) (*Writer, error) {
	if !t.Creatable() {
		if _, ok := media.Lookup(t); !ok {
			return nil, ErrUnsupportedMedia
		}
		return nil, ErrNotCreatable
	}
	geo, err := lookup(t)
	if err != nil {
		return nil, err
	}
	image, err := NewFormattedImage(t)
	if err != nil {
		return nil, err
	}
	return &Writer{
		geo:         geo,
		image:       image,
		freeCluster: unusableClusters,
	}, nil
}

func (fw *Writer) freeClusters() int {
	return fw.geo.DataClusters - (fw.freeCluster - unusableClusters)
}

// Add stores f in the next root directory entry and the next free
// clusters. It returns false if f was not stored because the image is full;
// all subsequent calls return false, too.
func (fw *Writer) Add(f File) bool {
	if fw.full {
		return false
	}
	bytesPerCluster := fw.geo.BytesPerCluster()
	clusters := (len(f.Content) + bytesPerCluster - 1) / bytesPerCluster
	if clusters > fw.freeClusters() {
		fw.full = true
		return false
	}

	// Empty files point to the next free cluster without taking it; its end
	// of chain marker is overwritten by the next file stored.
	name := fw.names.shortName(f.Name)
	putDirEntry(fw.image, fw.geo.RootDirOffset()+fw.rootEntry*dirEntrySize, dirEntry{
		Name:         name,
		Attr:         attrArchive,
		FirstCluster: uint16(fw.freeCluster),
		Size:         f.Size,
	})
	PutChain(fw.image, fw.geo.FATOffset(), fw.freeCluster, clusters)

	offset := fw.geo.ClusterOffset(fw.freeCluster)
	n := copy(fw.image[offset:], f.Content)
	clear(fw.image[offset+n : offset+clusters*bytesPerCluster])

	fw.packed = append(fw.packed, displayName(name))
	fw.rootEntry++
	fw.freeCluster += clusters
	if fw.rootEntry >= fw.geo.RootDirEntries || fw.freeClusters() <= 0 {
		fw.full = true
	}
	return true
}

// Packed returns the names under which the files stored so far appear in
// the directory, e.g. "AUTOEXEC.BAS".
func (fw *Writer) Packed() []string {
	return append([]string(nil), fw.packed...)
}

// Image copies the primary FAT to the other FAT copies and returns the
// image. The returned slice is shared with the Writer.
func (fw *Writer) Image() []byte {
	mirrorFATs(fw.geo, fw.image)
	return fw.image
}

// CreateFromFiles returns an image of media type t holding as many of files
// as fit, in order. Once a file does not fit, it and all following files
// are left out. The second result is false if disks cannot be created on
// media type t.
func CreateFromFiles(t media.Type, files []File) ([]byte, bool) {
	fw, err := NewWriter(t)
	if err != nil {
		return nil, false
	}
	for _, f := range files {
		if !fw.Add(f) {
			break
		}
	}
	return fw.Image(), true
}

func displayName(name [11]byte) string {
	base := strings.TrimRight(string(name[:nameLen]), " ")
	ext := strings.TrimRight(string(name[nameLen:]), " ")
	if ext == "" {
		return base
	}
	return base + "." + ext
}
