package signer

import "errors"

var (
	ErrorMarkerNotFound   = errors.New("No SignerVer02 marker found")
	ErrorSectionTruncated = errors.New("Signer section extends past the end of the image")
	ErrorSectionSize      = errors.New("Signer section must be exactly 128 bytes")
)
