package pipeline

import (
	"context"
	"io"
	"os/exec"

	"github.com/kballard/go-shellquote"

	"github.com/teranos/confgen/errors"
	"github.com/teranos/confgen/logger"
)

// RunHook runs a shell-quoted command in dir, without a shell. Output goes to
// stdout and stderr.
func RunHook(ctx context.Context, dir, command string, stdout, stderr io.Writer) error {
	args, err := shellquote.Split(command)
	if err != nil {
		return errors.Wrapf(err, "invalid command %q", command)
	}
	if len(args) == 0 {
		return nil
	}

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Dir = dir
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	logger.Infow("Running hook",
		"command", command,
		"dir", dir)
	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "command %q failed", command)
	}
	return nil
}
