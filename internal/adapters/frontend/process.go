package frontend

import (
	"io"
	"os/exec"

	"go.trai.ch/frame/internal/core/domain"
	"go.trai.ch/zerr"
)

// LaunchSpec describes the child process to start.
type LaunchSpec struct {
	Path string
	Args []string
	Dir  string
	Env  []string
}

// Process is a running frontend child.
type Process interface {
	Pid() int
	Stdout() io.Reader
	Stderr() io.Reader
	// Wait blocks until the process exits. It is called once, after both
	// output streams reached EOF.
	Wait() error
	// Kill terminates the process and anything it spawned.
	Kill() error
}

// Launcher starts frontend processes.
type Launcher interface {
	Launch(spec LaunchSpec) (Process, error)
}

// LauncherFunc adapts a function to the Launcher interface.
type LauncherFunc func(spec LaunchSpec) (Process, error)

// Launch calls f(spec).
func (f LauncherFunc) Launch(spec LaunchSpec) (Process, error) {
	return f(spec)
}

// ExecLauncher starts processes with os/exec and separate stdout and stderr pipes.
type ExecLauncher struct{}

// Launch starts the process described by spec.
func (ExecLauncher) Launch(spec LaunchSpec) (Process, error) {
	//nolint:gosec // G204: the command comes from the embedded manifest or an extracted artifact
	cmd := exec.Command(spec.Path, spec.Args...)
	cmd.Dir = spec.Dir
	cmd.Env = spec.Env
	configureProcess(cmd)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrChildSpawnFailed.Error()), "executable", spec.Path)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrChildSpawnFailed.Error()), "executable", spec.Path)
	}

	if err := cmd.Start(); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrChildSpawnFailed.Error()), "executable", spec.Path)
	}

	return &execProcess{cmd: cmd, stdout: stdout, stderr: stderr}, nil
}

type execProcess struct {
	cmd    *exec.Cmd
	stdout io.Reader
	stderr io.Reader
}

func (p *execProcess) Pid() int          { return p.cmd.Process.Pid }
func (p *execProcess) Stdout() io.Reader { return p.stdout }
func (p *execProcess) Stderr() io.Reader { return p.stderr }
func (p *execProcess) Wait() error       { return p.cmd.Wait() }
func (p *execProcess) Kill() error       { return killProcess(p.cmd.Process) }
