package classifier

import (
	"path/filepath"

	"github.com/lingust/lingust/internal/registry"
	"github.com/lingust/lingust/internal/sample"
	"github.com/lingust/lingust/internal/types"
)

// ClassifyFile resolves the language label for a single file. It never fails;
// every failure degrades to a sentinel label:
//
//  1. A registered opaque extension short-circuits to Binary without any read.
//  2. A read failure yields Error, an undecodable prefix yields Binary.
//  3. Decodable text goes through the content classifier.
//
// Each call is independent, no state crosses file boundaries.
func ClassifyFile(p types.Provider, path string) string {
	name := filepath.Base(path)

	if registry.IsBinaryExtension(name) {
		return types.LabelBinary
	}

	s, err := sample.Extract(p, path)
	if err != nil {
		return types.LabelError
	}
	if s.Verdict == sample.VerdictBinary {
		return types.LabelBinary
	}

	return Classify(name, s.Text)
}
