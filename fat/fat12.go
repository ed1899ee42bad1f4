package fat

const (
	// unusableClusters is the number of clusters which are always unusable
	// in a FAT: the first two entries hold the media descriptor and filler.
	unusableClusters = 2

	// endOfChain marks the end of a cluster chain in the FAT.
	endOfChain = uint16(0xFFF)
)

// PutEntry stores the 12-bit value v as entry n of the FAT starting at
// image[fatOffset]. Two entries share three bytes:
//
//	byte 0: n0 bits 0-7
//	byte 1: n1 bits 0-3 << 4 | n0 bits 8-11
//	byte 2: n1 bits 4-11
//
// The nibble belonging to the neighboring entry is preserved. PutEntry does
// not check bounds.
func PutEntry(image []byte, fatOffset, n int, v uint16) {
	p := fatOffset + (n>>1)*3
	if n&1 == 0 {
		image[p] = byte(v)
		image[p+1] = image[p+1]&0xF0 | byte(v>>8)&0x0F
	} else {
		image[p+1] = image[p+1]&0x0F | byte(v<<4)
		image[p+2] = byte(v >> 4)
	}
}

// Entry returns entry n of the FAT starting at image[fatOffset].
func Entry(image []byte, fatOffset, n int) uint16 {
	p := fatOffset + (n>>1)*3
	if n&1 == 0 {
		return uint16(image[p]) | uint16(image[p+1]&0x0F)<<8
	}
	return uint16(image[p+1])>>4 | uint16(image[p+2])<<4
}

// PutChain links count consecutive clusters starting at start, each entry
// pointing to the next cluster and the last one marked as end of chain. A
// count of zero or less marks start alone as end of chain.
func PutChain(image []byte, fatOffset, start, count int) {
	last := start + count - 1
	if last < start {
		last = start
	}
	for n := start; n < last; n++ {
		PutEntry(image, fatOffset, n, uint16(n+1))
	}
	PutEntry(image, fatOffset, last, endOfChain)
}
