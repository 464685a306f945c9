//go:build windows

package frontend

import (
	"os"
	"os/exec"
)

func configureProcess(_ *exec.Cmd) {}

func killProcess(p *os.Process) error {
	return p.Kill()
}
