package signer

import "bytes"

/* Samsung images carry their signing metadata in a fixed 128 byte section
   that starts with the marker below. The section sits at an arbitrary
   offset, it is found by searching for the marker. */
const Marker = "SignerVer02"

const SectionSize = 128

/* Field layout inside a section. Byte 15 and the gaps between the named
   ranges are reserved, a rewrite must carry them over verbatim. That is
   why sections are always replaced as a whole block: the padding and NUL
   placement of the reserved bytes cannot be rebuilt from decoded text. */
const (
	versionOffset = 0x00
	versionLen    = 15

	numberOffset = 0x10
	numberLen    = 15

	deviceModelOffset = 0x20
	deviceModelLen    = 31

	dateOffset = 0x40
	dateLen    = 14

	softwareModelOffset = 0x50
	softwareModelLen    = 31

	softwareVersionOffset = 0x70
	softwareVersionLen    = 15
)

/* Reported instead of a blank software version, so that "present but
   empty" can be told apart from a failed decode. */
const EmptyVersion = "<empty>"

type Record struct {
	Version         string `json:"signer_version"`
	Number          string `json:"number"`
	DeviceModel     string `json:"device_model"`
	Date            string `json:"date"`
	SoftwareModel   string `json:"software_model"`
	SoftwareVersion string `json:"software_version"`
}

type Field struct {
	Name  string
	Value string
}

/* Fields returns the record in layout order for rendering. */
func (r Record) Fields() []Field {
	return []Field{
		{"signer_version", r.Version},
		{"number", r.Number},
		{"device_model", r.DeviceModel},
		{"date", r.Date},
		{"software_model", r.SoftwareModel},
		{"software_version", r.SoftwareVersion},
	}
}

/* Decode parses a raw section. Size is the only thing that can be wrong
   with one, field content never fails to decode. */
func Decode(section []byte) (Record, error) {
	if len(section) != SectionSize {
		return Record{}, ErrorSectionSize
	}

	rec := Record{
		Version:         cstring(section[versionOffset : versionOffset+versionLen]),
		Number:          cstring(section[numberOffset : numberOffset+numberLen]),
		DeviceModel:     cstring(section[deviceModelOffset : deviceModelOffset+deviceModelLen]),
		Date:            cstring(section[dateOffset : dateOffset+dateLen]),
		SoftwareModel:   cstring(section[softwareModelOffset : softwareModelOffset+softwareModelLen]),
		SoftwareVersion: cstring(section[softwareVersionOffset : softwareVersionOffset+softwareVersionLen]),
	}

	if rec.SoftwareVersion == "" {
		rec.SoftwareVersion = EmptyVersion
	}

	return rec, nil
}

/* cstring reads b as a NUL terminated string. Bytes outside printable
   ASCII become '.'. */
func cstring(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}

	out := make([]byte, len(b))
	for i, m := range b {
		if m < 32 || m > 126 {
			m = '.'
		}
		out[i] = m
	}
	return string(out)
}
