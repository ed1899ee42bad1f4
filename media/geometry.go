package media

import (
	"encoding/binary"
	"fmt"

	"github.com/go-restruct/restruct"
)

// Geometry describes the layout of a FAT12 floppy disk. Sector numbers are
// absolute, counted from the boot sector.
type Geometry struct {
	BytesPerSector    int
	SectorsPerCluster int
	FATs              int // number of FAT copies
	SectorsPerFAT     int
	FATStart          int // first sector of the primary FAT
	RootDirStart      int // first sector of the root directory
	RootDirEntries    int // capacity of the root directory
	DataStart         int // first sector of cluster 2
	DataClusters      int // number of usable clusters
}

// BytesPerCluster returns the size of one allocation unit.
func (g Geometry) BytesPerCluster() int { return g.SectorsPerCluster * g.BytesPerSector }

// FATOffset returns the byte offset of the primary FAT.
func (g Geometry) FATOffset() int { return g.FATStart * g.BytesPerSector }

// FATSize returns the size in bytes of one FAT copy.
func (g Geometry) FATSize() int { return g.SectorsPerFAT * g.BytesPerSector }

// RootDirOffset returns the byte offset of the root directory.
func (g Geometry) RootDirOffset() int { return g.RootDirStart * g.BytesPerSector }

// DataOffset returns the byte offset of the data area.
func (g Geometry) DataOffset() int { return g.DataStart * g.BytesPerSector }

// ClusterOffset returns the byte offset of data cluster n (n >= 2).
func (g Geometry) ClusterOffset(n int) int {
	return (g.DataStart + (n-2)*g.SectorsPerCluster) * g.BytesPerSector
}

// dpb is the disk parameter block, in the layout the disk driver keeps it
// in memory.
type dpb struct {
	Media          uint8
	BytesPerSector uint16
	DirMask        uint8
	DirShift       uint8
	ClusterMask    uint8 // sectors per cluster - 1
	ClusterShift   uint8
	FATStart       uint16
	FATs           uint8
	RootEntries    uint8
	DataStart      uint16
	MaxCluster     uint16 // highest cluster number, i.e. clusters + 1
	SectorsPerFAT  uint8
	RootDirStart   uint16
}

func (p *dpb) geometry() Geometry {
	return Geometry{
		BytesPerSector:    int(p.BytesPerSector),
		SectorsPerCluster: int(p.ClusterMask) + 1,
		FATs:              int(p.FATs),
		SectorsPerFAT:     int(p.SectorsPerFAT),
		FATStart:          int(p.FATStart),
		RootDirStart:      int(p.RootDirStart),
		RootDirEntries:    int(p.RootEntries),
		DataStart:         int(p.DataStart),
		DataClusters:      int(p.MaxCluster) - 1,
	}
}

var geometries = func() [numTypes]Geometry {
	var result [numTypes]Geometry
	for t, raw := range parameterBlocks {
		var p dpb
		if err := restruct.Unpack(raw[:], binary.LittleEndian, &p); err != nil {
			panic(fmt.Sprintf("media: decoding parameter block of %v: %v", Type(t), err))
		}
		if got, want := p.Media, Type(t).Descriptor(); got != want {
			panic(fmt.Sprintf("media: parameter block of %v has media byte 0x%02X", Type(t), got))
		}
		result[t] = p.geometry()
	}
	return result
}()
