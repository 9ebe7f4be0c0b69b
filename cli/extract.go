package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/morosakubek2/sm-gsi-binary-rev-changer/signer"
)

type ExtractCmd struct {
	Image        string `arg name:"image" help:"Source image (misc.bin, boot.img, ...)."`
	OutputJSON   string `optional name:"output-json" help:"Write the decoded metadata to this JSON file."`
	OutputSigner string `optional name:"output-signer" help:"Write the raw 128 byte signer section to this file."`
}

func (l *ExtractCmd) Run(c *Context) error {
	data, err := os.ReadFile(l.Image)
	if err != nil {
		return err
	}

	pos, section, err := signer.Section(data)
	if err != nil {
		return err
	}

	rec, err := signer.Decode(section)
	if err != nil {
		return err
	}

	fmt.Printf("Found SignerVer02 section at 0x%06X (CRC16 %04X):\n", pos, signer.Sum(section))
	for _, f := range rec.Fields() {
		fmt.Printf("   %s: %s\n", f.Name, f.Value)
	}

	if l.OutputJSON != "" {
		blob, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			return err
		}
		if err := writeOutput(l.OutputJSON, append(blob, '\n')); err != nil {
			return err
		}
		fmt.Println("Wrote metadata to", l.OutputJSON)
	}

	if l.OutputSigner != "" {
		if err := writeOutput(l.OutputSigner, section); err != nil {
			return err
		}
		fmt.Printf("Wrote signer section to %s (%d bytes)\n", l.OutputSigner, len(section))
	}

	return nil
}

/* writeOutput creates the parent directory when needed, so output paths
   like out/meta.json work without preparation. */
func writeOutput(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}
