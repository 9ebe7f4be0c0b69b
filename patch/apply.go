package patch

import "github.com/morosakubek2/sm-gsi-binary-rev-changer/signer"

/* Apply overwrites the 128 bytes at pos with a replacement signer section
   and returns the rewritten image, same length, every other byte
   identical. The input image is not modified. Applying the same section
   twice gives the same image as applying it once. */
func Apply(image []byte, pos int, section []byte) ([]byte, error) {
	if len(section) != signer.SectionSize {
		return nil, signer.ErrorSectionSize
	}
	if pos < 0 || pos+signer.SectionSize > len(image) {
		return nil, signer.ErrorSectionTruncated
	}

	out := make([]byte, len(image))
	copy(out, image)
	copy(out[pos:], section)
	return out, nil
}
