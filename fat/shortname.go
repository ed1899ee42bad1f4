package fat

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	nameLen = 8
	extLen  = 3
)

// allowedPunct lists the characters besides A-Z and 0-9 which may appear in
// an 8.3 name.
const allowedPunct = "!#$%&'()-@^_`{}~"

// sanitize upper-cases s and replaces every character which is not allowed
// in an 8.3 name with an underscore. Upper-casing uses full case mappings, so
// "ß" becomes "SS". Characters outside the Basic Multilingual Plane count as
// two characters (a UTF-16 surrogate pair) and become two underscores.
func sanitize(s string) string {
	var b strings.Builder
	for _, r := range cases.Upper(language.Und).String(s) {
		switch {
		case r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9',
			r < unicode.MaxASCII && strings.ContainsRune(allowedPunct, r):
			b.WriteRune(r)
		case r > 0xFFFF:
			b.WriteString("__")
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// pad right-pads s with spaces to n bytes, truncating longer strings.
func pad(s string, n int) string {
	if len(s) >= n {
		return s[:n]
	}
	return s + strings.Repeat(" ", n-len(s))
}

// splitName splits a filename into base (up to the first dot) and extension
// (after the last dot). Names starting with a dot have no extension.
func splitName(name string) (base, ext string) {
	first := strings.IndexByte(name, '.')
	if first < 0 {
		return name, ""
	}
	base = name[:first]
	if first >= 1 {
		ext = name[strings.LastIndexByte(name, '.')+1:]
	}
	return base, ext
}

// nameRegistry hands out unique 8.3 names. Its zero value is ready to use.
// A nameRegistry lives as long as the image it names files for.
type nameRegistry struct {
	taken map[string]bool
}

// shortName returns the 11-byte directory name for name: base padded to 8
// characters followed by the extension padded to 3 characters. Bases longer
// than 8 characters, and names already handed out, get a ~N suffix with
// the smallest N which makes them unique.
func (r *nameRegistry) shortName(name string) [11]byte {
	base, ext := splitName(name)
	base = sanitize(base)
	ext = pad(sanitize(ext), extLen)

	final := pad(base, nameLen) + ext
	if len(base) > nameLen || r.taken[final] {
		for index := 1; ; index++ {
			suffix := "~" + strconv.Itoa(index)
			keep := nameLen - len(suffix)
			if keep > len(base) {
				keep = len(base)
			}
			final = pad(base[:keep]+suffix, nameLen) + ext
			if !r.taken[final] {
				break
			}
		}
	}

	if r.taken == nil {
		r.taken = make(map[string]bool)
	}
	r.taken[final] = true

	var result [11]byte
	copy(result[:], final)
	return result
}
