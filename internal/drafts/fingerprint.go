package drafts

import (
	"strings"

	"github.com/inful/mdfp"

	"git.home.luguber.info/inful/docnav/internal/frontmatter"
)

// fingerprintExcluded lists fields that never feed the fingerprint: the
// fingerprint itself and values the scanner derives.
var fingerprintExcluded = map[string]struct{}{
	mdfp.FingerprintField: {},
	FieldLink:             {},
	FieldLastmod:          {},
}

// ComputeFingerprint returns the canonical content fingerprint of a document.
// Fields are serialized with sorted keys and LF newlines, and a single
// trailing newline is trimmed before hashing.
func ComputeFingerprint(fields map[string]any, body []byte) (string, error) {
	hashed := make(map[string]any, len(fields))
	for k, v := range fields {
		if _, skip := fingerprintExcluded[k]; skip {
			continue
		}
		hashed[k] = v
	}

	fm := ""
	if len(hashed) > 0 {
		serialized, err := frontmatter.SerializeYAML(hashed, frontmatter.Style{Newline: "\n"})
		if err != nil {
			return "", err
		}
		fm = strings.TrimSuffix(string(serialized), "\n")
	}
	return mdfp.CalculateFingerprintFromParts(fm, string(body)), nil
}
