package patch

import "github.com/morosakubek2/sm-gsi-binary-rev-changer/signer"

type LogFunc func(level int, format string, param ...interface{})

type Config struct {
	LogFunc LogFunc
}

type Editor struct {
	config Config
}

func New(config Config) *Editor {
	return &Editor{config: config}
}

func (e *Editor) logf(level int, format string, param ...interface{}) {
	if e.config.LogFunc != nil {
		e.config.LogFunc(level, format, param...)
	}
}

type MutationKind string

const (
	MutationSection MutationKind = "signer-section"
	MutationModel   MutationKind = "device-model"
)

/* Mutation describes one applied change. Offset is set for section
   writes, Count for model substitutions. */
type Mutation struct {
	Kind   MutationKind
	Offset int
	Count  int
}

type UpdateOptions struct {
	/* Replacement signer section, nil leaves the image's section alone. */
	Section []byte

	OldModel     string
	NewModel     string
	ModelReplace bool
}

type Result struct {
	Image     []byte
	Mutations []Mutation
}

/* Update computes a fully rewritten image before anything gets written
   back, so a crash can never leave a half updated file on disk. The image
   that was passed in stays untouched.

   A replacement section of the wrong size is an error. An image without a
   locatable section is not: the section step is skipped and the model
   replacement may still apply. */
func (e *Editor) Update(image []byte, opts UpdateOptions) (Result, error) {
	if opts.Section != nil && len(opts.Section) != signer.SectionSize {
		return Result{}, signer.ErrorSectionSize
	}

	out := make([]byte, len(image))
	copy(out, image)
	res := Result{Image: out}

	if opts.Section != nil {
		pos, err := signer.Locate(out)
		if err != nil {
			e.logf(0, "Not updating signer section: %v", err)
		} else {
			copy(out[pos:pos+signer.SectionSize], opts.Section)
			e.logf(0, "Wrote signer section at 0x%06X (CRC16 %04X)", pos, signer.Sum(opts.Section))
			res.Mutations = append(res.Mutations, Mutation{Kind: MutationSection, Offset: pos})
		}
	}

	if opts.ModelReplace {
		if opts.OldModel == "" || opts.NewModel == "" || opts.OldModel == opts.NewModel {
			e.logf(0, "Old and new device model are missing or identical, nothing to replace")
		} else {
			e.logf(0, "Replacing device model '%s' with '%s'", opts.OldModel, opts.NewModel)
			if n := replaceAll(out, opts.OldModel, opts.NewModel, e.logf); n > 0 {
				res.Mutations = append(res.Mutations, Mutation{Kind: MutationModel, Count: n})
			}
		}
	}

	return res, nil
}

/* DetectModels lists the device model candidates of an image and reports
   which signal picked the head of the list. */
func (e *Editor) DetectModels(image []byte, preferred string) []string {
	models, source := detectModels(image, preferred)

	switch source {
	case detectPreferred:
		e.logf(0, "Detected preferred device model: %s", models[0])
	case detectSigner:
		e.logf(0, "Detected device model from signer section: %s", models[0])
	case detectFirst:
		e.logf(0, "Detected device model from pattern scan: %s", models[0])
	default:
		e.logf(0, "No device model candidates found")
	}

	return models
}
