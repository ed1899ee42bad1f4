package fat

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"testing"

	"github.com/gokrazy/floppy/media"
	"github.com/google/go-cmp/cmp"
)

type rootEntry struct {
	Name         string
	Attr         uint8
	FirstCluster uint16
	Size         uint32
}

// rootEntries returns all used entries of the root directory of image.
func rootEntries(t *testing.T, typ media.Type, image []byte) []rootEntry {
	t.Helper()
	g, _ := media.Lookup(typ)
	var result []rootEntry
	for i := 0; i < g.RootDirEntries; i++ {
		e := image[g.RootDirOffset()+i*32:]
		if e[0] == 0 {
			continue
		}
		result = append(result, rootEntry{
			Name:         string(e[:11]),
			Attr:         e[11],
			FirstCluster: binary.LittleEndian.Uint16(e[0x1A:]),
			Size:         binary.LittleEndian.Uint32(e[0x1C:]),
		})
	}
	return result
}

// chain follows the FAT from cluster start until the end of chain marker.
func chain(t *testing.T, typ media.Type, image []byte, start uint16) []uint16 {
	t.Helper()
	g, _ := media.Lookup(typ)
	var result []uint16
	for c := start; ; {
		result = append(result, c)
		next := Entry(image, g.FATOffset(), int(c))
		if next == endOfChain {
			return result
		}
		if next < 2 || int(next) >= g.DataClusters+2 || len(result) > g.DataClusters {
			t.Fatalf("broken chain from cluster %d: %v -> %#x", start, result, next)
		}
		c = next
	}
}

func TestSingleFile(t *testing.T) {
	content := bytes.Repeat([]byte("0123456789"), 10)
	image, ok := CreateFromFiles(media.F9, []File{
		{Name: "hello.txt", Content: content, Size: uint32(len(content))},
	})
	if !ok {
		t.Fatal("CreateFromFiles(F9) = _, false")
	}
	if got, want := len(image), 737280; got != want {
		t.Fatalf("len(image) = %d, want %d", got, want)
	}

	want := []rootEntry{
		{Name: "HELLO   TXT", Attr: 0x20, FirstCluster: 2, Size: 100},
	}
	if diff := cmp.Diff(want, rootEntries(t, media.F9, image)); diff != "" {
		t.Fatalf("unexpected root directory: diff (-want +got):\n%s", diff)
	}

	g, _ := media.Lookup(media.F9)
	cluster := image[g.ClusterOffset(2) : g.ClusterOffset(2)+g.BytesPerCluster()]
	wantCluster := append(append([]byte(nil), content...), make([]byte, g.BytesPerCluster()-len(content))...)
	if diff := cmp.Diff(wantCluster, cluster); diff != "" {
		t.Fatalf("unexpected cluster 2: diff (-want +got):\n%s", diff)
	}
	if got, want := chain(t, media.F9, image, 2), []uint16{2}; !cmp.Equal(got, want) {
		t.Fatalf("chain(2) = %v, want %v", got, want)
	}

	rest := image[g.ClusterOffset(3):]
	if !bytes.Equal(rest, bytes.Repeat([]byte{0xFF}, len(rest))) {
		t.Errorf("unused data area is not erased to 0xFF")
	}
	fatCopy := image[g.FATOffset()+g.FATSize() : g.FATOffset()+2*g.FATSize()]
	if !bytes.Equal(image[g.FATOffset():g.FATOffset()+g.FATSize()], fatCopy) {
		t.Errorf("FAT copy differs from primary FAT")
	}
}

func TestMultipleFiles(t *testing.T) {
	g, _ := media.Lookup(media.F8)
	bpc := g.BytesPerCluster()
	files := []File{
		{Name: "one.bin", Content: bytes.Repeat([]byte{1}, bpc)},
		{Name: "two.bin", Content: bytes.Repeat([]byte{2}, 2*bpc+1)},
		{Name: "three.bin", Content: bytes.Repeat([]byte{3}, 1)},
	}
	for i := range files {
		files[i].Size = uint32(len(files[i].Content))
	}
	image, ok := CreateFromFiles(media.F8, files)
	if !ok {
		t.Fatal("CreateFromFiles(F8) = _, false")
	}

	want := []rootEntry{
		{Name: "ONE     BIN", Attr: 0x20, FirstCluster: 2, Size: uint32(bpc)},
		{Name: "TWO     BIN", Attr: 0x20, FirstCluster: 3, Size: uint32(2*bpc + 1)},
		{Name: "THREE   BIN", Attr: 0x20, FirstCluster: 6, Size: 1},
	}
	if diff := cmp.Diff(want, rootEntries(t, media.F8, image)); diff != "" {
		t.Fatalf("unexpected root directory: diff (-want +got):\n%s", diff)
	}

	for _, tt := range []struct {
		start uint16
		want  []uint16
	}{
		{2, []uint16{2}},
		{3, []uint16{3, 4, 5}},
		{6, []uint16{6}},
	} {
		if got := chain(t, media.F8, image, tt.start); !cmp.Equal(got, tt.want) {
			t.Errorf("chain(%d) = %v, want %v", tt.start, got, tt.want)
		}
	}

	two := image[g.ClusterOffset(3) : g.ClusterOffset(3)+3*bpc]
	wantTwo := append(bytes.Repeat([]byte{2}, 2*bpc+1), make([]byte, bpc-1)...)
	if !bytes.Equal(two, wantTwo) {
		t.Errorf("clusters 3-5 do not hold two.bin followed by zero padding")
	}
}

func TestLogicalSize(t *testing.T) {
	// Content padded beyond the logical size, e.g. to a record boundary.
	content := append([]byte("10 PRINT"), make([]byte, 120)...)
	image, ok := CreateFromFiles(media.F9, []File{
		{Name: "prog.bas", Content: content, Size: 8},
	})
	if !ok {
		t.Fatal("CreateFromFiles(F9) = _, false")
	}
	got := rootEntries(t, media.F9, image)
	if len(got) != 1 || got[0].Size != 8 {
		t.Fatalf("root directory = %+v, want one entry of size 8", got)
	}
}

func TestEmptyFile(t *testing.T) {
	image, ok := CreateFromFiles(media.F9, []File{
		{Name: "empty"},
		{Name: "data", Content: []byte("x"), Size: 1},
	})
	if !ok {
		t.Fatal("CreateFromFiles(F9) = _, false")
	}
	want := []rootEntry{
		{Name: "EMPTY      ", Attr: 0x20, FirstCluster: 2, Size: 0},
		{Name: "DATA       ", Attr: 0x20, FirstCluster: 2, Size: 1},
	}
	if diff := cmp.Diff(want, rootEntries(t, media.F9, image)); diff != "" {
		t.Fatalf("unexpected root directory: diff (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]uint16{2}, chain(t, media.F9, image, 2)); diff != "" {
		t.Fatalf("unexpected chain: diff (-want +got):\n%s", diff)
	}
}

func TestEmptyFileAlone(t *testing.T) {
	image, ok := CreateFromFiles(media.F9, []File{{Name: "empty"}})
	if !ok {
		t.Fatal("CreateFromFiles(F9) = _, false")
	}
	want := []rootEntry{
		{Name: "EMPTY      ", Attr: 0x20, FirstCluster: 2, Size: 0},
	}
	if diff := cmp.Diff(want, rootEntries(t, media.F9, image)); diff != "" {
		t.Fatalf("unexpected root directory: diff (-want +got):\n%s", diff)
	}
	g, _ := media.Lookup(media.F9)
	for _, offset := range []int{g.FATOffset(), g.FATOffset() + g.FATSize()} {
		if got, want := Entry(image, offset, 2), endOfChain; got != want {
			t.Errorf("Entry(FAT at %d, 2) = %#x, want %#x", offset, got, want)
		}
	}
	if got, want := image[g.ClusterOffset(2)], byte(0xFF); got != want {
		t.Errorf("first byte of cluster 2 = %#x, want %#x", got, want)
	}
}

func TestTruncateClusters(t *testing.T) {
	g, _ := media.Lookup(media.F8)
	bpc := g.BytesPerCluster()
	half := g.DataClusters / 2
	files := []File{
		{Name: "a", Content: make([]byte, half*bpc)},
		{Name: "b", Content: make([]byte, (half+1)*bpc)}, // does not fit
		{Name: "c", Content: make([]byte, 1)},            // would fit, but follows b
	}
	image, ok := CreateFromFiles(media.F8, files)
	if !ok {
		t.Fatal("CreateFromFiles(F8) = _, false")
	}
	entries := rootEntries(t, media.F8, image)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name)
	}
	if diff := cmp.Diff([]string{"A          "}, names); diff != "" {
		t.Fatalf("unexpected root directory: diff (-want +got):\n%s", diff)
	}
	// b left no trace: the cluster after a is still free and erased.
	if got := Entry(image, g.FATOffset(), 2+half); got != 0 {
		t.Errorf("Entry(%d) = %#x, want 0 (free)", 2+half, got)
	}
	if got := image[g.ClusterOffset(2+half)]; got != 0xFF {
		t.Errorf("first byte of cluster %d = %#x, want 0xFF", 2+half, got)
	}
}

func TestFillDataArea(t *testing.T) {
	g, _ := media.Lookup(media.F9)
	bpc := g.BytesPerCluster()
	fw, err := NewWriter(media.F9)
	if err != nil {
		t.Fatal(err)
	}
	if !fw.Add(File{Name: "all", Content: make([]byte, g.DataClusters*bpc)}) {
		t.Fatal("Add(file filling the disk) = false")
	}
	if fw.Add(File{Name: "empty"}) {
		t.Errorf("Add after disk full = true, want false")
	}
	image := fw.Image()
	if got := chain(t, media.F9, image, 2); len(got) != g.DataClusters {
		t.Errorf("chain(2) has %d clusters, want %d", len(got), g.DataClusters)
	}
}

func TestTruncateDirectory(t *testing.T) {
	g, _ := media.Lookup(media.F9)
	var files []File
	for i := 0; i < g.RootDirEntries+5; i++ {
		files = append(files, File{
			Name:    fmt.Sprintf("f%d.dat", i),
			Content: []byte{byte(i)},
			Size:    1,
		})
	}
	fw, err := NewWriter(media.F9)
	if err != nil {
		t.Fatal(err)
	}
	var added int
	for _, f := range files {
		if !fw.Add(f) {
			break
		}
		added++
	}
	if got, want := added, g.RootDirEntries; got != want {
		t.Fatalf("added %d files, want %d", got, want)
	}
	packed := fw.Packed()
	if got, want := packed[len(packed)-1], fmt.Sprintf("F%d.DAT", g.RootDirEntries-1); got != want {
		t.Errorf("last packed file = %q, want %q", got, want)
	}
	image := fw.Image()
	if got, want := len(rootEntries(t, media.F9, image)), g.RootDirEntries; got != want {
		t.Errorf("root directory has %d entries, want %d", got, want)
	}
	// The first file not stored would have used the next cluster.
	if got := Entry(image, g.FATOffset(), 2+g.RootDirEntries); got != 0 {
		t.Errorf("Entry(%d) = %#x, want 0 (free)", 2+g.RootDirEntries, got)
	}
}

func TestPacked(t *testing.T) {
	fw, err := NewWriter(media.F9)
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"autoexec.bas", "VeryLongName.txt", "verylongname.txt", "noext"} {
		fw.Add(File{Name: name, Content: []byte(name), Size: uint32(len(name))})
	}
	want := []string{"AUTOEXEC.BAS", "VERYLO~1.TXT", "VERYLO~2.TXT", "NOEXT"}
	if diff := cmp.Diff(want, fw.Packed()); diff != "" {
		t.Fatalf("unexpected packed names: diff (-want +got):\n%s", diff)
	}
}

func TestNotCreatable(t *testing.T) {
	for _, typ := range media.All() {
		if typ.Creatable() {
			continue
		}
		image, ok := CreateFromFiles(typ, []File{{Name: "a", Content: []byte("a"), Size: 1}})
		if ok || image != nil {
			t.Errorf("CreateFromFiles(%v) = %d bytes, %v; want nil, false", typ, len(image), ok)
		}
		if _, err := NewWriter(typ); err != ErrNotCreatable {
			t.Errorf("NewWriter(%v) = %v, want ErrNotCreatable", typ, err)
		}
	}
	if _, err := NewWriter(media.Type(-1)); err != ErrUnsupportedMedia {
		t.Errorf("NewWriter(-1) = %v, want ErrUnsupportedMedia", err)
	}
}

func TestDeterministic(t *testing.T) {
	files := func() []File {
		return []File{
			{Name: "VeryLongName.txt", Content: []byte("first"), Size: 5},
			{Name: "VeryLongName.txt", Content: []byte("second"), Size: 6},
			{Name: "", Content: bytes.Repeat([]byte{0xAA}, 3000), Size: 3000},
		}
	}
	first, _ := CreateFromFiles(media.F9, files())
	second, _ := CreateFromFiles(media.F9, files())
	if !bytes.Equal(first, second) {
		t.Fatalf("identical inputs produced different images")
	}
	want := []string{"VERYLO~1TXT", "VERYLO~2TXT", "           "}
	var got []string
	for _, e := range rootEntries(t, media.F9, second) {
		got = append(got, e.Name)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected names in second image: diff (-want +got):\n%s", diff)
	}
}

func TestInputNotModified(t *testing.T) {
	content := []byte("abc")
	files := []File{{Name: "abc", Content: content, Size: 3}}
	CreateFromFiles(media.F9, files)
	if got, want := len(files[0].Content), 3; got != want {
		t.Fatalf("len(Content) = %d after CreateFromFiles, want %d", got, want)
	}
}
