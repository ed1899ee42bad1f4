package fat

import (
	"encoding/binary"
	"fmt"

	"github.com/go-restruct/restruct"
)

const (
	dirEntrySize = 32

	// attrArchive marks a file as modified since the last backup, which is
	// what DOS sets for newly written files.
	attrArchive = 0x20
)

// dirEntry is a root directory record. Time and date stay zero.
type dirEntry struct {
	Name         [11]byte
	Attr         uint8
	Reserved     [14]byte
	FirstCluster uint16
	Size         uint32
}

func (e *dirEntry) marshal() []byte {
	b, err := restruct.Pack(binary.LittleEndian, e)
	if err != nil {
		// dirEntry only has fixed-size fields
		panic(fmt.Sprintf("fat: packing directory entry: %v", err))
	}
	return b
}

func putDirEntry(image []byte, offset int, e dirEntry) {
	copy(image[offset:offset+dirEntrySize], e.marshal())
}
