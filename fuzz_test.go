//go:build go1.18

package yahtml_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yuusoft-org/yahtml"
	"gopkg.in/yaml.v3"
)

func FuzzConvert(f *testing.F) {
	// Seed the corpus with the golden YAML documents. This gives the
	// fuzzer good starting points for the declaration syntax.
	seedFiles, err := filepath.Glob("testdata/*.yaml")
	if err != nil {
		f.Fatalf("failed to find seed files: %v", err)
	}
	for _, file := range seedFiles {
		data, err := os.ReadFile(file)
		if err != nil {
			f.Fatalf("failed to read seed file %s: %v", file, err)
		}
		f.Add(data)
	}

	// Simple but important edge cases.
	f.Add([]byte("- br:"))
	f.Add([]byte(`- h1: "x"`))
	f.Add([]byte("- div#a.b c=d:"))
	f.Add([]byte("- '#no-tag: x'"))
	f.Add([]byte("[]"))

	f.Fuzz(func(t *testing.T, data []byte) {
		var doc any
		if yaml.Unmarshal(data, &doc) != nil {
			// Invalid YAML is not our concern; the fuzzer's job here is
			// to find trees that make Convert panic.
			return
		}

		html, err := yahtml.Convert(doc)
		if err != nil {
			// Malformed trees must fail loudly but cleanly, with no
			// partial output.
			require.Empty(t, html)
			return
		}

		// Conversion is a pure function: a second pass over the same
		// tree must produce identical output.
		again, err := yahtml.Convert(doc)
		require.NoError(t, err, "Convert failed on a tree it just converted")
		require.Equal(t, html, again, "Convert is not deterministic")
	})
}
