package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/morosakubek2/sm-gsi-binary-rev-changer/patch"
	"github.com/morosakubek2/sm-gsi-binary-rev-changer/signer"
)

type UpdateFileCmd struct {
	File string `arg name:"file" help:"Image to update in place (e.g. boot.img)."`

	SignerSection  string `optional name:"signer-section" help:"File holding the replacement 128 byte SignerVer02 section."`
	NewModel       string `optional name:"new-model" help:"New device model (e.g. F711BXXSFJYGB)."`
	OldModel       string `optional name:"old-model" help:"Device model to replace (e.g. F711BXXS8HXF2)."`
	PreferredModel string `optional name:"preferred-model" help:"Model to prefer when detecting the old model."`

	AutoDetectOldModel       bool `optional name:"auto-detect-old-model" help:"Detect the old device model from the image."`
	ExperimentalModelReplace bool `optional name:"experimental-model-replace" help:"Rewrite the device model outside the SignerVer02 section too."`
}

func (w *UpdateFileCmd) Run(c *Context) error {
	if w.SignerSection == "" && w.NewModel == "" {
		return errors.New("Nothing to do, pass --signer-section and/or --new-model")
	}

	var section []byte
	if w.SignerSection != "" {
		var err error
		section, err = os.ReadFile(w.SignerSection)
		if err != nil {
			return err
		}
		if len(section) != signer.SectionSize {
			return fmt.Errorf("%s holds %d bytes, a signer section has exactly %d", w.SignerSection, len(section), signer.SectionSize)
		}
	}

	data, err := os.ReadFile(w.File)
	if err != nil {
		return err
	}

	fmt.Println("Processing:", w.File)

	oldModel := w.OldModel
	if w.AutoDetectOldModel && oldModel == "" {
		if models := c.editor.DetectModels(data, w.PreferredModel); len(models) > 0 {
			oldModel = models[0]
		}
	}

	res, err := c.editor.Update(data, patch.UpdateOptions{
		Section:      section,
		OldModel:     oldModel,
		NewModel:     w.NewModel,
		ModelReplace: w.ExperimentalModelReplace,
	})
	if err != nil {
		return err
	}

	if len(res.Mutations) == 0 {
		return errors.New("No changes applied")
	}

	/* The rewritten image is complete at this point, write-back is a
	   single whole-file write. */
	if err := os.WriteFile(w.File, res.Image, 0644); err != nil {
		return err
	}

	fmt.Printf("Updated %s: %s\n", w.File, describeMutations(res.Mutations))
	return nil
}

func describeMutations(muts []patch.Mutation) string {
	var parts []string
	for _, m := range muts {
		switch m.Kind {
		case patch.MutationSection:
			parts = append(parts, fmt.Sprintf("SignerVer02 at 0x%06X", m.Offset))
		case patch.MutationModel:
			parts = append(parts, fmt.Sprintf("device model %dx", m.Count))
		}
	}
	return strings.Join(parts, ", ")
}
