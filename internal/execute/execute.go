package execute

import (
	"os/exec"
	"syscall"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Command starts command through sh in its own session and returns once it
// has been started, so the child outlives the caller. An empty command is a
// no-op.
func Command(log logrus.FieldLogger, command string) error {
	if command == "" {
		return nil
	}

	cmd := exec.Command("sh", "-c", command)
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setsid: true,
	}
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil

	if err := cmd.Start(); err != nil {
		return errors.Wrapf(err, "start %q", command)
	}
	log.WithField("pid", cmd.Process.Pid).Infof("Executed: %s", command)
	go func() {
		// Reap the child so it does not linger as a zombie.
		_ = cmd.Wait()
	}()
	return nil
}
