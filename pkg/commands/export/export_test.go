// pkg/commands/export/export_test.go
// TEST TYPE: Business Logic Integration
// DEPENDENCIES: Memory FS, RecordingFS
// PURPOSE: Test exporting the directory listing to text, writers and files

package export_test

import (
	"bytes"
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/retitle/pkg/commands/export"
	"github.com/arthur-debert/retitle/pkg/errors"
	"github.com/arthur-debert/retitle/pkg/filesystem"
	"github.com/arthur-debert/retitle/pkg/listing"
	"github.com/arthur-debert/retitle/pkg/pairs"
	"github.com/arthur-debert/retitle/pkg/testutil"
	"github.com/arthur-debert/retitle/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportText_IdentityPairs(t *testing.T) {
	fs := testutil.NewTestFS()
	testutil.CreateFilesT(t, fs, ".", "a.txt", "b.txt", ".hidden")

	text, err := export.ExportText(export.ExportOptions{FS: fs, Listing: listing.DefaultOptions()})
	require.NoError(t, err)

	parsed, err := pairs.Parse(text)
	require.NoError(t, err)
	assert.ElementsMatch(t, []types.RenamePair{
		types.NewIdentityPair("a.txt"),
		types.NewIdentityPair("b.txt"),
		types.NewIdentityPair(".hidden"),
	}, parsed)
}

func TestExportText_ExcludeHidden(t *testing.T) {
	fs := testutil.NewTestFS()
	testutil.CreateFilesT(t, fs, ".", "a.txt", ".hidden")

	text, err := export.ExportText(export.ExportOptions{FS: fs, Listing: listing.Options{IncludeHidden: false}})
	require.NoError(t, err)
	assert.Equal(t, "a.txt|a.txt\n", text)
}

func TestExportText_EmptyDirectory(t *testing.T) {
	text, err := export.ExportText(export.ExportOptions{FS: testutil.NewTestFS()})
	require.NoError(t, err)
	assert.Empty(t, text)
}

func TestExportText_ListFailure(t *testing.T) {
	fs := testutil.NewRecordingFS(testutil.NewTestFS()).FailReadDir(stderrors.New("denied"))

	_, err := export.ExportText(export.ExportOptions{FS: fs})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrListDir))
}

func TestExportToWriter(t *testing.T) {
	fs := testutil.NewTestFS()
	testutil.CreateFilesT(t, fs, ".", "only")

	var buf bytes.Buffer
	require.NoError(t, export.ExportToWriter(&buf, export.ExportOptions{FS: fs}))
	assert.Equal(t, "only|only\n", buf.String())

	// Nothing is renamed
	assert.Equal(t, []string{"only"}, testutil.DirNamesT(t, fs, "."))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, stderrors.New("closed") }

func TestExportToWriter_WriteFailure(t *testing.T) {
	fs := testutil.NewTestFS()
	testutil.CreateFilesT(t, fs, ".", "only")

	err := export.ExportToWriter(failingWriter{}, export.ExportOptions{FS: fs})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrWriteFile))
}

func TestExportToFile(t *testing.T) {
	work := testutil.NewTestFS()
	testutil.CreateFilesT(t, work, ".", "x", "y")
	out := testutil.NewTestFS()

	require.NoError(t, export.ExportToFile(out, "list.txt", export.ExportOptions{FS: work}))

	parsed, err := pairs.Parse(testutil.ReadFileT(t, out, "list.txt"))
	require.NoError(t, err)
	assert.ElementsMatch(t, []types.RenamePair{
		types.NewIdentityPair("x"),
		types.NewIdentityPair("y"),
	}, parsed)
}

func TestExportToFile_WriteFailure(t *testing.T) {
	work := testutil.NewTestFS()
	testutil.CreateFilesT(t, work, ".", "x")
	readOnly := filesystem.NewAferoFS(afero.NewReadOnlyFs(afero.NewMemMapFs()))

	err := export.ExportToFile(readOnly, "list.txt", export.ExportOptions{FS: work})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrWriteFile))
	assert.Equal(t, "list.txt", errors.GetErrorDetails(err)["path"])
}
