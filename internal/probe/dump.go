package probe

import (
	"fmt"
	"strings"
)

const bytesPerLine = 16

// Dump renders data as offset-prefixed hex lines of 16 bytes, two bytes per
// group.
func Dump(data []byte) string {
	var b strings.Builder
	for off := 0; off < len(data); off += bytesPerLine {
		if off > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "  %08x:", off)

		end := min(off+bytesPerLine, len(data))
		for i := off; i < end; i++ {
			if (i-off)%2 == 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%02x", data[i])
		}
	}
	return b.String()
}
