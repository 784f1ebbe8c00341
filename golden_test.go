package yahtml_test

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/yuusoft-org/yahtml"
	"gopkg.in/yaml.v3"
)

var update = flag.Bool("update", false, "update golden files")

func TestGolden(t *testing.T) {
	files, err := filepath.Glob("testdata/*.yaml")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			src, err := os.ReadFile(file)
			require.NoError(t, err)

			var doc any
			require.NoError(t, yaml.Unmarshal(src, &doc))

			var actual []byte
			html, err := yahtml.Convert(doc)
			if err != nil {
				// For documents that are expected to fail conversion,
				// the golden file holds the error message.
				actual = []byte(err.Error())
			} else {
				actual = []byte(html)
			}

			goldenFile := strings.TrimSuffix(file, ".yaml") + ".golden"
			if *update {
				require.NoError(t, os.WriteFile(goldenFile, actual, 0o644))
			}

			expected, err := os.ReadFile(goldenFile)
			require.NoError(t, err, "Golden file not found. Run with -update to create it.")

			require.Equal(t, string(expected), string(actual))
		})
	}
}
