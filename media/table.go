package media

// parameterBlocks holds the 18-byte disk parameter block of each media
// type, see dpb for the field layout.
var parameterBlocks = [numTypes][18]byte{
	F8: {0xF8, 0x00, 0x02, 0x0F, 0x04, 0x01, 0x02, 0x01, 0x00, 0x02, 0x70, 0x0C, 0x00, 0x63, 0x01, 0x02, 0x05, 0x00},
	F9: {0xF9, 0x00, 0x02, 0x0F, 0x04, 0x01, 0x02, 0x01, 0x00, 0x02, 0x70, 0x0E, 0x00, 0xCA, 0x02, 0x03, 0x07, 0x00},
	FA: {0xFA, 0x00, 0x02, 0x0F, 0x04, 0x01, 0x02, 0x01, 0x00, 0x02, 0x70, 0x0A, 0x00, 0x3C, 0x01, 0x01, 0x03, 0x00},
	FB: {0xFB, 0x00, 0x02, 0x0F, 0x04, 0x01, 0x02, 0x01, 0x00, 0x02, 0x70, 0x0C, 0x00, 0x7B, 0x02, 0x02, 0x05, 0x00},
	FC: {0xFC, 0x00, 0x02, 0x0F, 0x04, 0x00, 0x01, 0x01, 0x00, 0x02, 0x40, 0x09, 0x00, 0x60, 0x01, 0x02, 0x05, 0x00},
	FD: {0xFD, 0x00, 0x02, 0x0F, 0x04, 0x01, 0x02, 0x01, 0x00, 0x02, 0x70, 0x0C, 0x00, 0x63, 0x01, 0x02, 0x05, 0x00},
	FE: {0xFE, 0x00, 0x02, 0x0F, 0x04, 0x00, 0x01, 0x01, 0x00, 0x02, 0x40, 0x07, 0x00, 0x3A, 0x01, 0x01, 0x03, 0x00},
	FF: {0xFF, 0x00, 0x02, 0x0F, 0x04, 0x01, 0x02, 0x01, 0x00, 0x02, 0x70, 0x0A, 0x00, 0x3C, 0x01, 0x01, 0x03, 0x00},
}

var imageSizes = [numTypes]int{
	F8: 368640,
	F9: 737280,
	FA: 327680,
	FB: 655360,
	FC: 184320,
	FD: 368640,
	FE: 163840,
	FF: 327680,
}

var descriptions = [numTypes]string{
	F8: "360KB",
	F9: "720KB",
	FA: "320KB",
	FB: "640KB",
	FC: "180KB",
	FD: "360KB",
	FE: "160KB",
	FF: "320KB",
}

// bootSectors holds the boot sector templates. The BIOS parameter block
// starts at offset 11; the boot code prints "Boot error" unless MSXDOS.SYS
// can be loaded.
var bootSectors = [numTypes][]byte{
	F8: {
		0xEB, 0xFE, 0x90, 0x57, 0x4D, 0x53, 0x58, 0x20, 0x20, 0x20, 0x20, 0x00,
		0x02, 0x02, 0x01, 0x00, 0x02, 0x70, 0x00, 0xD0, 0x02, 0xF8, 0x02, 0x00,
		0x09, 0x00, 0x01, 0x00, 0x00, 0x00, 0xD0, 0xED, 0x53, 0x59, 0xC0, 0x32,
		0xD0, 0xC0, 0x36, 0x56, 0x23, 0x36, 0xC0, 0x31, 0x1F, 0xF5, 0x11, 0xAB,
		0xC0, 0x0E, 0x0F, 0xCD, 0x7D, 0xF3, 0x3C, 0xCA, 0x63, 0xC0, 0x11, 0x00,
		0x01, 0x0E, 0x1A, 0xCD, 0x7D, 0xF3, 0x21, 0x01, 0x00, 0x22, 0xB9, 0xC0,
		0x21, 0x00, 0x3F, 0x11, 0xAB, 0xC0, 0x0E, 0x27, 0xCD, 0x7D, 0xF3, 0xC3,
		0x00, 0x01, 0x58, 0xC0, 0xCD, 0x00, 0x00, 0x79, 0xE6, 0xFE, 0xFE, 0x02,
		0xC2, 0x6A, 0xC0, 0x3A, 0xD0, 0xC0, 0xA7, 0xCA, 0x22, 0x40, 0x11, 0x85,
		0xC0, 0xCD, 0x77, 0xC0, 0x0E, 0x07, 0xCD, 0x7D, 0xF3, 0x18, 0xB4, 0x1A,
		0xB7, 0xC8, 0xD5, 0x5F, 0x0E, 0x06, 0xCD, 0x7D, 0xF3, 0xD1, 0x13, 0x18,
		0xF2, 0x42, 0x6F, 0x6F, 0x74, 0x20, 0x65, 0x72, 0x72, 0x6F, 0x72, 0x0D,
		0x0A, 0x50, 0x72, 0x65, 0x73, 0x73, 0x20, 0x61, 0x6E, 0x79, 0x20, 0x6B,
		0x65, 0x79, 0x20, 0x66, 0x6F, 0x72, 0x20, 0x72, 0x65, 0x74, 0x72, 0x79,
		0x0D, 0x0A, 0x00, 0x00, 0x4D, 0x53, 0x58, 0x44, 0x4F, 0x53, 0x20, 0x20,
		0x53, 0x59, 0x53, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	},
	F9: {
		0xEB, 0xFE, 0x90, 0x57, 0x4D, 0x53, 0x58, 0x20, 0x20, 0x20, 0x20, 0x00,
		0x02, 0x02, 0x01, 0x00, 0x02, 0x70, 0x00, 0xA0, 0x05, 0xF9, 0x03, 0x00,
		0x09, 0x00, 0x02, 0x00, 0x00, 0x00, 0xD0, 0xED, 0x53, 0x59, 0xC0, 0x32,
		0xD0, 0xC0, 0x36, 0x56, 0x23, 0x36, 0xC0, 0x31, 0x1F, 0xF5, 0x11, 0xAB,
		0xC0, 0x0E, 0x0F, 0xCD, 0x7D, 0xF3, 0x3C, 0xCA, 0x63, 0xC0, 0x11, 0x00,
		0x01, 0x0E, 0x1A, 0xCD, 0x7D, 0xF3, 0x21, 0x01, 0x00, 0x22, 0xB9, 0xC0,
		0x21, 0x00, 0x3F, 0x11, 0xAB, 0xC0, 0x0E, 0x27, 0xCD, 0x7D, 0xF3, 0xC3,
		0x00, 0x01, 0x58, 0xC0, 0xCD, 0x00, 0x00, 0x79, 0xE6, 0xFE, 0xFE, 0x02,
		0xC2, 0x6A, 0xC0, 0x3A, 0xD0, 0xC0, 0xA7, 0xCA, 0x22, 0x40, 0x11, 0x85,
		0xC0, 0xCD, 0x77, 0xC0, 0x0E, 0x07, 0xCD, 0x7D, 0xF3, 0x18, 0xB4, 0x1A,
		0xB7, 0xC8, 0xD5, 0x5F, 0x0E, 0x06, 0xCD, 0x7D, 0xF3, 0xD1, 0x13, 0x18,
		0xF2, 0x42, 0x6F, 0x6F, 0x74, 0x20, 0x65, 0x72, 0x72, 0x6F, 0x72, 0x0D,
		0x0A, 0x50, 0x72, 0x65, 0x73, 0x73, 0x20, 0x61, 0x6E, 0x79, 0x20, 0x6B,
		0x65, 0x79, 0x20, 0x66, 0x6F, 0x72, 0x20, 0x72, 0x65, 0x74, 0x72, 0x79,
		0x0D, 0x0A, 0x00, 0x00, 0x4D, 0x53, 0x58, 0x44, 0x4F, 0x53, 0x20, 0x20,
		0x53, 0x59, 0x53, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	},
}
