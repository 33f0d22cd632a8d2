package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericlevine/barcodelogic"
)

// run executes barcodegen with args in an empty working directory.
func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	chdir(t, t.TempDir())
	var out, errOut bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err = root.Execute()
	return out.String(), errOut.String(), err
}

func TestFormats(t *testing.T) {
	out, _, err := run(t, "formats")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, len(barcodelogic.Formats()))
	assert.Equal(t, "UPC_A", lines[0])
	assert.Contains(t, lines, "ROYAL_MAIL_CBC")
	assert.Contains(t, lines, "PDF_417")

	out, _, err = run(t, "formats", "--json")
	require.NoError(t, err)
	var names []string
	require.NoError(t, json.Unmarshal([]byte(out), &names))
	assert.Equal(t, lines, names)
}

func TestEncodeText(t *testing.T) {
	out, _, err := run(t, "encode", "kix", "1")
	require.NoError(t, err)
	want := `barcode "1" "1"
  message-character "1"
    bar T
    space 1
    bar D
    space 1
    bar A
    space 1
    bar F
`
	assert.Equal(t, want, out)

	out, _, err = run(t, "encode", "itf", "12")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "barcode \"12\" \"12\"\n  start-character\n    bar 1\n    space 1\n"), out)
}

func TestEncodeJSON(t *testing.T) {
	out, _, err := run(t, "encode", "royal-mail-cbc", "SN34RD1A", "--json")
	require.NoError(t, err)

	var enc encodedJSON
	require.NoError(t, json.Unmarshal([]byte(out), &enc))
	assert.Equal(t, "ROYAL_MAIL_CBC", enc.Format)
	assert.Equal(t, "SN34RD1A", enc.Message)
	assert.Equal(t, "SN34RD1AK", enc.Display)
	assert.Len(t, enc.Codewords, 9)
	require.NotEmpty(t, enc.Events)
	assert.Equal(t, "start-barcode", enc.Events[0].Kind)
	assert.Equal(t, "end-barcode", enc.Events[len(enc.Events)-1].Kind)

	bars := 0
	for _, ev := range enc.Events {
		switch ev.Kind {
		case "bar":
			bars++
			assert.Len(t, ev.State, 1)
			assert.Nil(t, ev.Width)
		case "space":
			require.NotNil(t, ev.Width)
			assert.Equal(t, 1, *ev.Width)
		}
	}
	assert.Equal(t, 2+9*4, bars)
}

func TestEncodeJSONTwoDim(t *testing.T) {
	out, _, err := run(t, "encode", "datamatrix", "12", "--output", "json")
	require.NoError(t, err)

	var enc encodedJSON
	require.NoError(t, json.Unmarshal([]byte(out), &enc))
	assert.Equal(t, "DATA_MATRIX", enc.Format)
	assert.Equal(t, 10, enc.Rows)
	assert.Equal(t, 10, enc.Columns)
	assert.Equal(t, 142, enc.Codewords[0])
}

func TestEncodePreview(t *testing.T) {
	out, _, err := run(t, "encode", "kix", "1", "-o", "preview")
	require.NoError(t, err)
	assert.Equal(t, "    █ █\n█ █ █ █\n  █   █\n", out)

	out, _, err = run(t, "encode", "datamatrix", "12", "-o", "preview")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 10)
	assert.Equal(t, strings.Repeat("██  ", 5), lines[0])
	assert.Equal(t, strings.Repeat("██", 10), lines[9])

	out, _, err = run(t, "encode", "ean-8", "9638507", "-o", "preview")
	require.NoError(t, err)
	lines = strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, linearPreviewHeight)
	assert.Equal(t, 67, len([]rune(lines[0])))
	assert.True(t, strings.HasPrefix(lines[0], "█ █"), lines[0])
}

func TestDimensions(t *testing.T) {
	out, _, err := run(t, "dimensions", "kix", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "width: 3.800\n")
	assert.Contains(t, out, "height: 5.220\n")
	assert.Contains(t, out, "x_offset: 2.000\n")

	out, _, err = run(t, "dimensions", "kix", "1", "--module-width", "1", "--quiet-zone", "0", "--json")
	require.NoError(t, err)
	var dim dimensionJSON
	require.NoError(t, json.Unmarshal([]byte(out), &dim))
	assert.Equal(t, "KIX", dim.Format)
	assert.InDelta(t, 5.8, dim.Width, 1e-9)
	assert.InDelta(t, 5.8, dim.WidthPlusQuiet, 1e-9)
	assert.Zero(t, dim.XOffset)
}

func TestConfigFileAndFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "barcodegen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
output: json
symbologies:
  rm4scc:
    checksum: ignore
`), 0o600))

	out, _, err := run(t, "--config", path, "encode", "royal-mail-cbc", "SN34RD1A")
	require.NoError(t, err)
	var enc encodedJSON
	require.NoError(t, json.Unmarshal([]byte(out), &enc))
	assert.Equal(t, "SN34RD1A", enc.Display)

	out, _, err = run(t, "--config", path, "encode", "royal-mail-cbc", "SN34RD1A", "--checksum", "add")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &enc))
	assert.Equal(t, "SN34RD1AK", enc.Display)

	out, _, err = run(t, "--config", path, "-o", "text", "encode", "kix", "1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "barcode "), out)
}

func TestDebugLogging(t *testing.T) {
	_, stderr, err := run(t, "--log-level", "debug", "--log-format", "json", "encode", "kix", "1")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"msg":"encoded message"`)
	assert.Contains(t, stderr, `"symbology":"KIX"`)

	_, stderr, err = run(t, "encode", "kix", "1")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"unknown format", []string{"encode", "qr-code", "x"}, barcodelogic.ErrInvalidOption},
		{"bad character", []string{"encode", "ean-13", "12AB"}, barcodelogic.ErrInvalidCharacter},
		{"bad checksum", []string{"encode", "upc-a", "036000291453", "--checksum", "check"}, barcodelogic.ErrChecksumMismatch},
		{"bad checksum flag", []string{"encode", "upc-a", "03600029145", "--checksum", "maybe"}, barcodelogic.ErrInvalidOption},
		{"negative width", []string{"dimensions", "code-39", "A", "--module-width", "-1"}, barcodelogic.ErrInvalidOption},
		{"bad log level", []string{"--log-level", "trace", "formats"}, barcodelogic.ErrInvalidOption},
		{"unsupported", []string{"encode", "kix", "1", "--checksum", "add"}, barcodelogic.ErrUnsupported},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.args...)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, _, err := run(t, "encode", "kix")
	assert.Error(t, err)
}

// chdir changes the working directory for the duration of the test
// (equivalent to testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
