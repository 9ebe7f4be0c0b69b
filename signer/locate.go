package signer

import "bytes"

var markerBytes = []byte(Marker)

/* Locate returns the offset of the first signer section in an image.
   Later occurrences, if any exist, are ignored. */
func Locate(image []byte) (int, error) {
	pos := bytes.Index(image, markerBytes)
	if pos < 0 {
		return 0, ErrorMarkerNotFound
	}
	if pos+SectionSize > len(image) {
		return 0, ErrorSectionTruncated
	}
	return pos, nil
}

/* Section returns the offset and the raw 128 byte section of an image. */
func Section(image []byte) (int, []byte, error) {
	pos, err := Locate(image)
	if err != nil {
		return 0, nil, err
	}
	return pos, image[pos : pos+SectionSize], nil
}
