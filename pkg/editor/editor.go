// Package editor hands text to an external editor program and returns
// what the user saved.
package editor

import (
	"context"
	"io"
	"os"
	"os/exec"
	"runtime"

	"github.com/arthur-debert/retitle/pkg/errors"
	"github.com/arthur-debert/retitle/pkg/logging"
	"github.com/google/shlex"
	"github.com/rs/zerolog"
)

// DefaultSuffix is the temp file suffix when none is configured
const DefaultSuffix = ".txt"

// Editor runs an external editor on a temporary file
type Editor struct {
	command string
	suffix  string
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
	logger  zerolog.Logger
}

// New creates an Editor. command may hold arguments ("code --wait"); an
// empty command resolves through ResolveCommand. The editor is attached to
// the process's standard streams.
func New(command, suffix string) *Editor {
	if suffix == "" {
		suffix = DefaultSuffix
	}
	return &Editor{
		command: ResolveCommand(command),
		suffix:  suffix,
		stdin:   os.Stdin,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		logger:  logging.GetLogger("editor"),
	}
}

// WithIO replaces the streams the editor process is attached to
func (e *Editor) WithIO(stdin io.Reader, stdout, stderr io.Writer) *Editor {
	e.stdin = stdin
	e.stdout = stdout
	e.stderr = stderr
	return e
}

// Command returns the resolved editor command line
func (e *Editor) Command() string {
	return e.command
}

// ResolveCommand picks the editor command: configured, then $VISUAL,
// then $EDITOR, then the platform default
func ResolveCommand(configured string) string {
	if configured != "" {
		return configured
	}
	for _, name := range []string{"VISUAL", "EDITOR"} {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	if runtime.GOOS == "windows" {
		return "notepad"
	}
	return "vi"
}

// Edit writes text to a temp file, runs the editor on it and returns the
// saved content. The temp file is removed afterwards.
func (e *Editor) Edit(ctx context.Context, text string) (string, error) {
	argv, err := shlex.Split(e.command)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrEditor, "invalid editor command %q", e.command)
	}
	if len(argv) == 0 {
		return "", errors.New(errors.ErrEditor, "editor command is empty")
	}

	path, err := e.writeTemp(text)
	if err != nil {
		return "", err
	}
	defer func() {
		if err := os.Remove(path); err != nil {
			e.logger.Warn().Err(err).Str("path", path).Msg("Failed to remove temp file")
		}
	}()

	args := append(argv[1:], path)
	logging.LogCommand(argv[0], args)

	cmd := exec.CommandContext(ctx, argv[0], args...)
	cmd.Stdin = e.stdin
	cmd.Stdout = e.stdout
	cmd.Stderr = e.stderr

	if err := cmd.Run(); err != nil {
		return "", errors.Wrapf(err, errors.ErrEditor, "editor %s failed", argv[0]).
			WithDetail("command", e.command)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrEditor, "failed to read edited file %s", path)
	}

	e.logger.Debug().Int("bytes", len(data)).Msg("Editor session finished")
	return string(data), nil
}

func (e *Editor) writeTemp(text string) (string, error) {
	f, err := os.CreateTemp("", "retitle-*"+e.suffix)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrEditor, "failed to create temp file")
	}
	path := f.Name()

	if _, err := f.WriteString(text); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", errors.Wrapf(err, errors.ErrEditor, "failed to write temp file %s", path)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", errors.Wrapf(err, errors.ErrEditor, "failed to write temp file %s", path)
	}
	return path, nil
}
