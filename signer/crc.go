package signer

import "github.com/sigurn/crc16"

var crcTable = crc16.MakeTable(crc16.CRC16_XMODEM)

/* Sum is the CRC16/XMODEM of a section. Sections store no checksum of
   their own, the sum is only used in reports to tell revisions apart. */
func Sum(section []byte) uint16 {
	return crc16.Checksum(section, crcTable)
}
