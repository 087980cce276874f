// Copyright 2024-2026 Parser Kit, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package report_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/parserkit/treestream/internal/corpora"
	"github.com/parserkit/treestream/report"
	"github.com/parserkit/treestream/source"
	"github.com/parserkit/treestream/token"
)

// rendererCase is the YAML shape of one renderer test case: a source file
// plus the diagnostics to render against it.
type rendererCase struct {
	Path string `yaml:"path"`
	Text string `yaml:"text"`

	// Whether to lex the text and attach a group index to the renderer.
	Groups bool `yaml:"groups"`

	Diagnostics []struct {
		Message  string   `yaml:"message"`
		Severity string   `yaml:"severity"`
		Start    int      `yaml:"start"`
		End      int      `yaml:"end"`
		Notes    []string `yaml:"notes"`
	} `yaml:"diagnostics"`
}

func TestRenderCorpus(t *testing.T) {
	t.Parallel()

	corpora.Corpus{
		Root:      "testdata",
		Refresh:   "TREESTREAM_REFRESH",
		Extension: "yaml",
		Outputs:   []corpora.Output{{Extension: "stderr"}},
		Test: func(t *testing.T, path, text string) []string {
			var tc rendererCase
			require.NoError(t, yaml.Unmarshal([]byte(text), &tc))

			f := source.NewFile(tc.Path, tc.Text)
			renderer := &report.Renderer{}
			if tc.Groups {
				root, diags := token.Parse(f)
				require.Empty(t, diags)
				renderer.Groups = token.NewIndex(root)
			}

			diags := make([]report.Diagnostic, 0, len(tc.Diagnostics))
			for _, d := range tc.Diagnostics {
				span := f.Span(d.Start, d.End)
				diag := report.Errorf(span, "%s", d.Message)
				if d.Severity == "warning" {
					diag = report.Warningf(span, "%s", d.Message)
				}
				for _, note := range d.Notes {
					diag = diag.With(note)
				}
				diags = append(diags, diag)
			}

			var out strings.Builder
			require.NoError(t, renderer.RenderAll(&out, diags))
			return []string{out.String()}
		},
	}.Run(t)
}
