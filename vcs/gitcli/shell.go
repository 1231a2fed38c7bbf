package gitcli

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// CommandContext builds the git process. Tests replace it.
var CommandContext = exec.CommandContext

func (g *Git) call(ctx context.Context, args []string) ([]byte, error) {
	log := g.cfg.Log().With(zap.String("dir", g.wd))
	log.Debug("exec", zap.String("cmd", "git "+ArgsString(args)))

	var stdout, stderr bytes.Buffer
	cmd := CommandContext(ctx, "git", args...)
	cmd.Dir = g.wd
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		log.Debug("exec failed", zap.String("stderr", msg), zap.Error(err))
		return nil, fmt.Errorf("gitcli: git %q failed: %s (%w)", args, msg, err)
	}
	return stdout.Bytes(), nil
}

// ArgsString returns a string suitable for copy/paste into the terminal.
func ArgsString(args []string) string {
	quoted := make([]string, len(args))
	for i, arg := range args {
		if strings.ContainsAny(arg, " |%") {
			arg = strconv.Quote(arg)
		}
		quoted[i] = arg
	}
	return strings.Join(quoted, " ")
}
