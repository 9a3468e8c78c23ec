package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func testdataPath(parts ...string) string {
	return filepath.Join(append([]string{"testdata"}, parts...)...)
}

func TestParseYAML(t *testing.T) {
	data := []byte(`
title: Sample
levels:
  - title: Faces
    images:
      - src: /a.png
        ai: true
        explanation: generated
        hint: look at the ears
      - src: /b.jpg
        explanation: real
`)

	src, err := ParseYAML(data)
	require.NoError(t, err)

	assert.Equal(t, "Sample", src.Title)
	require.Len(t, src.Levels, 1)
	lvl := src.Levels[0]
	assert.Equal(t, "Faces", lvl.Title)
	require.Len(t, lvl.Images, 2)
	assert.Equal(t, Image{Src: "/a.png", IsAI: true, Explanation: "generated", Hint: "look at the ears"}, lvl.Images[0])
	assert.False(t, lvl.Images[1].IsAI)
	assert.False(t, lvl.Images[1].HasHint())
}

func TestParseYAMLValidation(t *testing.T) {
	tests := []struct {
		name string
		data string
		code string
	}{
		{
			name: "no levels",
			data: "title: empty\n",
			code: CodeNoLevels,
		},
		{
			name: "one image",
			data: `
levels:
  - title: Lonely
    images:
      - {src: /a.png, ai: true, explanation: x}
`,
			code: CodeInvalidLayout,
		},
		{
			name: "seven images",
			data: `
levels:
  - title: Crowded
    images:
      - {src: /1.png, explanation: x}
      - {src: /2.png, explanation: x}
      - {src: /3.png, explanation: x}
      - {src: /4.png, explanation: x}
      - {src: /5.png, explanation: x}
      - {src: /6.png, explanation: x}
      - {src: /7.png, explanation: x}
`,
			code: CodeInvalidLayout,
		},
		{
			name: "missing src",
			data: `
levels:
  - title: No source
    images:
      - {src: /a.png, explanation: x}
      - {explanation: y}
`,
			code: CodeMissingField,
		},
		{
			name: "missing title",
			data: `
levels:
  - images:
      - {src: /a.png, explanation: x}
      - {src: /b.png, explanation: y}
`,
			code: CodeMissingField,
		},
		{
			name: "blank title",
			data: `
levels:
  - title: "   "
    images:
      - {src: /a.png, explanation: x}
      - {src: /b.png, explanation: y}
`,
			code: CodeEmptyTitle,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseYAML([]byte(tc.data))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidLevelConfiguration)

			var verr ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.code, verr.Code, verr.Message)
		})
	}
}

func TestParseYAMLErrorNamesField(t *testing.T) {
	_, err := ParseYAML([]byte(`
levels:
  - title: x
    images:
      - {src: /a.png}
      - {src: /b.png, explanation: y}
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "levels[0].images[0].explanation")
}

func TestParseYAMLSyntaxError(t *testing.T) {
	_, err := ParseYAML([]byte("levels: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "yaml unmarshal")
}

func TestSourceMarshalYAMLParsesBack(t *testing.T) {
	src := Source{
		Title: "Export",
		Levels: []LevelSpec{
			{Title: "Pair", Images: makeImages(2, 1)},
		},
	}
	src.Levels[0].Images[1].Hint = "shadows"

	data, err := yaml.Marshal(src)
	require.NoError(t, err)

	back, err := ParseYAML(data)
	require.NoError(t, err)
	assert.Equal(t, src, back)
}

func TestLoaderLoadDirectory(t *testing.T) {
	src, err := NewLoader(testdataPath("levels")).Load()
	require.NoError(t, err)

	assert.Equal(t, "levels", src.Title)
	require.Len(t, src.Levels, 2)
	// Lexical file order: 01-basics.yaml before 02-streets.yml
	assert.Equal(t, "Pair", src.Levels[0].Title)
	assert.Equal(t, "Streets", src.Levels[1].Title)
	assert.Equal(t, "Check the hands.", src.Levels[0].Images[0].Hint)
}

func TestLoaderLoadFile(t *testing.T) {
	src, err := NewLoader(testdataPath("levels", "02-streets.yml")).Load()
	require.NoError(t, err)

	assert.Equal(t, "02-streets", src.Title, "untitled files take their name from the file")
	require.Len(t, src.Levels, 1)
	assert.Len(t, src.Levels[0].Images, 3)
}

func TestLoaderRejectsInvalidFile(t *testing.T) {
	_, err := NewLoader(testdataPath("invalid")).Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidLevelConfiguration)
	assert.Contains(t, err.Error(), "one-image.yaml")
}

func TestLoaderErrors(t *testing.T) {
	_, err := NewLoader(testdataPath("does-not-exist")).Load()
	assert.Error(t, err)

	empty := t.TempDir()
	_, err = NewLoader(empty).Load()
	assert.ErrorIs(t, err, ErrInvalidLevelConfiguration)

	txt := filepath.Join(empty, "levels.txt")
	require.NoError(t, os.WriteFile(txt, []byte("title: x"), 0o600))
	_, err = NewLoader(txt).Load()
	assert.ErrorContains(t, err, "unsupported extension")
}

func TestLoaderFiles(t *testing.T) {
	files, err := NewLoader(testdataPath("levels")).Files()
	require.NoError(t, err)
	assert.Equal(t, []string{
		testdataPath("levels", "01-basics.yaml"),
		testdataPath("levels", "02-streets.yml"),
	}, files, "notes.txt is skipped")

	single := testdataPath("invalid", "one-image.yaml")
	files, err = NewLoader(single).Files()
	require.NoError(t, err)
	assert.Equal(t, []string{single}, files)

	_, err = NewLoader(testdataPath("missing")).Files()
	assert.Error(t, err)
}
