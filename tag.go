package icns

// File name suffixes recognized by Pack and Unpack.
const (
	IconsetExt = ".iconset"
	IcnsExt    = ".icns"
)

// UnknownPrefix is the filename prefix used when a chunk's tag has no
// entry in the type table. The four raw tag bytes are appended to it
// verbatim.
const UnknownPrefix = "icon_data_"

// Tag is a 4-byte chunk type code. Tags are opaque byte sequences; the
// eleven named ones happen to be ASCII, but any value can appear on the
// wire. The array form keeps byte order explicit regardless of platform.
type Tag [4]byte

// String returns the raw tag bytes as a string.
func (t Tag) String() string {
	return string(t[:])
}

// iconTypes maps iconset filenames to their chunk tags. The table covers
// the eleven known PNG resolutions; both columns are unique.
var iconTypes = []struct {
	filename string
	tag      Tag
}{
	{"icon_16x16.png", Tag{'i', 'c', 'p', '4'}},
	{"icon_16x16@2x.png", Tag{'i', 'c', '1', '1'}},
	{"icon_32x32.png", Tag{'i', 'c', 'p', '5'}},
	{"icon_32x32@2x.png", Tag{'i', 'c', '1', '2'}},
	{"icon_64x64.png", Tag{'i', 'c', 'p', '6'}},
	{"icon_128x128.png", Tag{'i', 'c', '0', '7'}},
	{"icon_128x128@2x.png", Tag{'i', 'c', '1', '3'}},
	{"icon_256x256.png", Tag{'i', 'c', '0', '8'}},
	{"icon_256x256@2x.png", Tag{'i', 'c', '1', '4'}},
	{"icon_512x512.png", Tag{'i', 'c', '0', '9'}},
	{"icon_512x512@2x.png", Tag{'i', 'c', '1', '0'}},
}

// TagForFilename returns the chunk tag for an iconset filename.
func TagForFilename(name string) (Tag, bool) {
	for _, it := range iconTypes {
		if it.filename == name {
			return it.tag, true
		}
	}
	return Tag{}, false
}

// FilenameForTag returns the iconset filename for a chunk tag.
func FilenameForTag(tag Tag) (string, bool) {
	for _, it := range iconTypes {
		if it.tag == tag {
			return it.filename, true
		}
	}
	return "", false
}
