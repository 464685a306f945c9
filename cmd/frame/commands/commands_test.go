package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/frame/cmd/frame/commands"
	"go.trai.ch/frame/internal/build"
)

type mockApp struct {
	serveFunc func(ctx context.Context) error
	calls     int
}

func (m *mockApp) Serve(ctx context.Context) error {
	m.calls++
	if m.serveFunc != nil {
		return m.serveFunc(ctx)
	}
	return nil
}

func TestCommands_Serve(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "root command", args: []string{}},
		{name: "serve subcommand", args: []string{"serve"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			type ctxKey struct{}
			ctx := context.WithValue(context.Background(), ctxKey{}, "marker")

			var seen any
			mock := &mockApp{serveFunc: func(ctx context.Context) error {
				seen = ctx.Value(ctxKey{})
				return nil
			}}

			cli := commands.New(mock)
			cli.SetArgs(tt.args)

			require.NoError(t, cli.Execute(ctx))
			assert.Equal(t, 1, mock.calls)
			assert.Equal(t, "marker", seen, "serve receives the command context")
		})
	}
}

func TestCommands_ServeError(t *testing.T) {
	mock := &mockApp{serveFunc: func(context.Context) error {
		return errors.New("frontend did not become ready")
	}}

	cli := commands.New(mock)
	cli.SetArgs(nil)
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

	err := cli.Execute(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "frontend did not become ready")
}

func TestCommands_RejectsArguments(t *testing.T) {
	mock := &mockApp{}

	cli := commands.New(mock)
	cli.SetArgs([]string{"extra"})
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

	require.Error(t, cli.Execute(context.Background()))
	assert.Zero(t, mock.calls)
}

func TestCommands_Version(t *testing.T) {
	want := "frame version " + build.Version + " (commit: " + build.Commit + ", date: " + build.Date + ")\n"

	tests := []struct {
		name string
		args []string
	}{
		{name: "subcommand", args: []string{"version"}},
		{name: "flag", args: []string{"--version"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockApp{}
			cli := commands.New(mock)
			buf := new(bytes.Buffer)
			cli.SetOutput(buf, buf)
			cli.SetArgs(tt.args)

			require.NoError(t, cli.Execute(context.Background()))
			assert.Equal(t, want, buf.String())
			assert.Zero(t, mock.calls)
		})
	}
}
