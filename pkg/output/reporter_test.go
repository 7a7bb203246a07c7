// pkg/output/reporter_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test report lines and color decisions

package output_test

import (
	"bytes"
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/retitle/pkg/errors"
	"github.com/arthur-debert/retitle/pkg/output"
	"github.com/arthur-debert/retitle/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReporter_PlainLines(t *testing.T) {
	var buf bytes.Buffer
	r := output.NewReporter(&buf, output.ColorNever)

	r.Renamed(types.RenamePair{From: "a.txt", To: "b.txt"})
	r.RenameFailed(types.RenamePair{From: "c.txt", To: "d.txt"}, stderrors.New("file exists"))
	r.RollbackStarted()
	r.RolledBack(types.RenamePair{From: "b.txt", To: "a.txt"})
	r.RollbackFailed(types.RenamePair{From: "x", To: "y"}, stderrors.New("busy"))
	r.WouldRename(types.RenamePair{From: "p", To: "q"})

	assert.Equal(t, "Renamed a.txt to b.txt\n"+
		"Failed to rename c.txt to d.txt: file exists\n"+
		"Rolling back renames due to errors\n"+
		"Rolled back b.txt to a.txt\n"+
		"Failed to roll back x to y: busy\n"+
		"Would rename p to q\n", buf.String())
}

func TestReporter_AutoModeOnBufferIsPlain(t *testing.T) {
	var buf bytes.Buffer
	r := output.NewReporter(&buf, output.ColorAuto)

	r.Renamed(types.RenamePair{From: "a", To: "b"})

	assert.Equal(t, "Renamed a to b\n", buf.String())
}

func TestReporter_AlwaysModeStyles(t *testing.T) {
	var buf bytes.Buffer
	r := output.NewReporter(&buf, output.ColorAlways)

	r.RenameFailed(types.RenamePair{From: "a", To: "b"}, stderrors.New("boom"))

	assert.Contains(t, buf.String(), "Failed to rename a to b: boom")
	assert.Contains(t, buf.String(), "\x1b[")
}

func TestReporter_Summary(t *testing.T) {
	tests := []struct {
		name   string
		result *types.ApplyResult
		dryRun bool
		want   string
	}{
		{
			name:   "nothing changed",
			result: &types.ApplyResult{Outcome: types.OutcomeCompleted},
			want:   output.MsgNoChanges + "\n",
		},
		{
			name: "renames applied",
			result: &types.ApplyResult{
				Outcome: types.OutcomeCompleted,
				Applied: []types.RenamePair{{From: "a", To: "b"}},
			},
			want: "",
		},
		{
			name:   "rolled back",
			result: &types.ApplyResult{Outcome: types.OutcomeRolledBack},
			want:   "",
		},
		{
			name:   "dry run",
			result: &types.ApplyResult{Outcome: types.OutcomeCompleted},
			dryRun: true,
			want:   output.MsgDryRunNotice + "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			output.NewReporter(&buf, output.ColorNever).Summary(tt.result, tt.dryRun)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		in   string
		want output.ColorMode
	}{
		{"", output.ColorAuto},
		{"auto", output.ColorAuto},
		{"ALWAYS", output.ColorAlways},
		{"force", output.ColorAlways},
		{"never", output.ColorNever},
		{"off", output.ColorNever},
	}
	for _, tt := range tests {
		got, err := output.ParseColorMode(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := output.ParseColorMode("rainbow")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	assert.Equal(t, "rainbow", errors.GetErrorDetails(err)["value"])
}

func TestShouldColor(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, output.ShouldColor(&buf, output.ColorAlways))
	assert.False(t, output.ShouldColor(&buf, output.ColorNever))
	assert.False(t, output.ShouldColor(&buf, output.ColorAuto), "non-file writers are never colored")

	t.Setenv("NO_COLOR", "1")
	assert.True(t, output.ShouldColor(&buf, output.ColorAlways), "explicit mode wins over NO_COLOR")
}
