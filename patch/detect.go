package patch

import (
	"regexp"
	"sort"

	"github.com/morosakubek2/sm-gsi-binary-rev-changer/signer"
)

/* Device models look like F711BXXS8HXF2: one letter, three digits, two
   letters, then 6 to 12 more letters or digits. */
var modelPattern = regexp.MustCompile(`[A-Z][0-9]{3}[A-Z]{2}[A-Z0-9]{6,12}`)

const (
	modelMinLen = 10
	modelMaxLen = 20
)

type detectSource int

const (
	detectNone detectSource = iota
	detectPreferred
	detectSigner
	detectFirst
)

/* DetectModels lists the device model candidates found in an image, best
   candidate first. The head of the list is chosen by an ordered fallback:
   the preferred model when the scan saw it, else the model recorded in
   the signer section, else the lexicographically first match. The rest
   follows in sorted order. Detection never fails, an image without
   candidates gives an empty list. */
func DetectModels(image []byte, preferred string) []string {
	models, _ := detectModels(image, preferred)
	return models
}

func detectModels(image []byte, preferred string) ([]string, detectSource) {
	seen := make(map[string]bool)
	var models []string
	for _, m := range modelPattern.FindAll(image, -1) {
		if len(m) < modelMinLen || len(m) > modelMaxLen {
			continue
		}
		s := string(m)
		if !seen[s] {
			seen[s] = true
			models = append(models, s)
		}
	}
	if len(models) == 0 {
		return nil, detectNone
	}
	sort.Strings(models)

	if preferred != "" && seen[preferred] {
		return promote(models, preferred), detectPreferred
	}

	/* Best effort: a missing or truncated section only means this signal
	   is not available. */
	if _, section, err := signer.Section(image); err == nil {
		if rec, err := signer.Decode(section); err == nil && rec.DeviceModel != "" && seen[rec.DeviceModel] {
			return promote(models, rec.DeviceModel), detectSigner
		}
	}

	return models, detectFirst
}

/* promote moves head to the front, the others keep their sorted order. */
func promote(models []string, head string) []string {
	out := make([]string, 0, len(models))
	out = append(out, head)
	for _, m := range models {
		if m != head {
			out = append(out, m)
		}
	}
	return out
}
