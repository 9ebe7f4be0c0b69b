package main

import (
	"fmt"

	"github.com/fatih/color"
)

/* hexdump renders 16 byte rows with an ASCII gutter. Bytes flagged in
   mark are drawn in red. */
func hexdump(offset int, data []byte, mark []bool) string {
	var result string
	red := color.New(color.FgRed)

	for base := 0; base < len(data); base += 16 {
		row := data[base:]
		if len(row) > 16 {
			row = row[:16]
		}

		var rowHex string
		var rowAscii string
		for i := 0; i < 16; i++ {
			if i >= len(row) {
				rowHex += "   "
				rowAscii += " "
				if i%8 == 7 {
					rowHex += " "
				}
				continue
			}

			m := row[i]
			delta := mark != nil && mark[base+i]

			if delta {
				rowHex += red.Sprintf("%02x ", m)
			} else {
				rowHex += fmt.Sprintf("%02x ", m)
			}

			if m < 32 || m > 126 {
				m = '.'
			}
			if delta {
				rowAscii += red.Sprintf("%c", m)
			} else {
				rowAscii += fmt.Sprintf("%c", m)
			}

			if i%8 == 7 {
				rowHex += " "
			}
		}

		result += fmt.Sprintf("%08x  %s|%s|\n", offset+base, rowHex, rowAscii)
	}

	return result
}
