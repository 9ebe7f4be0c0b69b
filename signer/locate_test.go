package signer

import (
	"bytes"
	"errors"
	"testing"
)

func imageWithSection(size, pos int, section []byte) []byte {
	image := make([]byte, size)
	copy(image[pos:], section)
	return image
}

func TestLocate(t *testing.T) {
	section := buildSection("SignerVer02", "1", "F711BXXS8HXF2", "20240115", "M", "SW1")

	tests := []struct {
		name    string
		image   []byte
		wantPos int
		wantErr error
	}{
		{
			name:    "marker at start",
			image:   imageWithSection(SectionSize, 0, section),
			wantPos: 0,
		},
		{
			name:    "marker mid image",
			image:   imageWithSection(200, 50, section),
			wantPos: 50,
		},
		{
			name:    "section ends exactly at end of image",
			image:   imageWithSection(178, 50, section),
			wantPos: 50,
		},
		{
			name:    "no marker",
			image:   make([]byte, 200),
			wantErr: ErrorMarkerNotFound,
		},
		{
			name:    "empty image",
			image:   nil,
			wantErr: ErrorMarkerNotFound,
		},
		{
			name:    "marker too close to the end",
			image:   append(make([]byte, 50), []byte(Marker)...),
			wantErr: ErrorSectionTruncated,
		},
		{
			name:    "first of two markers wins",
			image:   append(imageWithSection(200, 20, section), section...),
			wantPos: 20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := Locate(tt.image)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Locate = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Locate: %v", err)
			}
			if pos != tt.wantPos {
				t.Errorf("Locate = %d, want %d", pos, tt.wantPos)
			}
		})
	}
}

func TestSection(t *testing.T) {
	want := buildSection("SignerVer02", "77", "F711BXXS8HXF2", "20240115", "M", "")
	image := imageWithSection(512, 130, want)

	pos, section, err := Section(image)
	if err != nil {
		t.Fatalf("Section: %v", err)
	}
	if pos != 130 {
		t.Errorf("pos = %d, want 130", pos)
	}
	if !bytes.Equal(section, want) {
		t.Error("section bytes differ from what was embedded")
	}

	if _, _, err := Section(make([]byte, 64)); !errors.Is(err, ErrorMarkerNotFound) {
		t.Errorf("Section on blank image = %v, want ErrorMarkerNotFound", err)
	}
}

func TestDecodeEmbeddedSection(t *testing.T) {
	image := make([]byte, 200)
	copy(image[50:], buildSection("SignerVer02", "", "F711BXXS8HXF2", "", "", ""))

	pos, section, err := Section(image)
	if err != nil {
		t.Fatalf("Section: %v", err)
	}
	if pos != 50 {
		t.Errorf("pos = %d, want 50", pos)
	}

	rec, err := Decode(section)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if rec.DeviceModel != "F711BXXS8HXF2" {
		t.Errorf("DeviceModel = %q, want F711BXXS8HXF2", rec.DeviceModel)
	}
}
