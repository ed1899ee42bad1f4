// Package humanize formats sizes for log and command output.
package humanize

import (
	"fmt"
	"strconv"
)

var units = []string{"B", "KiB", "MiB", "GiB"}

// Bytes returns bytes in the largest unit it reaches, e.g. "720 KiB".
// Fractions are shown with one decimal unless the size is a whole multiple
// of the unit.
func Bytes(bytes uint64) string {
	unit := 0
	div := uint64(1)
	for unit < len(units)-1 && bytes >= div*1024 {
		div *= 1024
		unit++
	}
	if bytes%div == 0 {
		return strconv.FormatUint(bytes/div, 10) + " " + units[unit]
	}
	return fmt.Sprintf("%.1f %s", float64(bytes)/float64(div), units[unit])
}
