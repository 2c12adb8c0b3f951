package commands_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/lintcfg/cmd/lintcfg/commands"
	"go.trai.ch/lintcfg/internal/app"
	"go.trai.ch/lintcfg/internal/build"
	"go.trai.ch/lintcfg/internal/core/domain"
)

type mockApp struct {
	buildFunc        func(ctx context.Context, dir string, flags *pflag.FlagSet) (*app.BuildResult, error)
	watchFunc        func(ctx context.Context, dir string, flags *pflag.FlagSet, fn func(*app.BuildResult) error) error
	renderFunc       func(w io.Writer, res *app.BuildResult) error
	checkVersionFunc func(declared, floor string) (bool, error)
	overridesCalled  bool
	jsonLogs         bool
}

func (m *mockApp) Build(ctx context.Context, dir string, flags *pflag.FlagSet) (*app.BuildResult, error) {
	if m.buildFunc != nil {
		return m.buildFunc(ctx, dir, flags)
	}
	return result(), nil
}

func (m *mockApp) Watch(
	ctx context.Context,
	dir string,
	flags *pflag.FlagSet,
	fn func(*app.BuildResult) error,
) error {
	if m.watchFunc != nil {
		return m.watchFunc(ctx, dir, flags, fn)
	}
	return nil
}

func (m *mockApp) Render(w io.Writer, res *app.BuildResult) error {
	if m.renderFunc != nil {
		return m.renderFunc(w, res)
	}
	_, err := fmt.Fprintln(w, "rendered", res.Profile.Format)
	return err
}

func (m *mockApp) RenderOverrides(w io.Writer, res *app.BuildResult) error {
	m.overridesCalled = true
	_, err := fmt.Fprintf(w, "%d overrides\n", len(res.Config.Overrides))
	return err
}

func (m *mockApp) CheckVersion(declared, floor string) (bool, error) {
	if m.checkVersionFunc != nil {
		return m.checkVersionFunc(declared, floor)
	}
	return true, nil
}

func (m *mockApp) SetJSONLogs(enable bool) {
	m.jsonLogs = enable
}

func result() *app.BuildResult {
	return &app.BuildResult{
		Config: &domain.Config{
			Overrides: []domain.Fragment{{OverrideType: domain.OverrideReact}, {OverrideType: domain.OverrideJest}},
		},
		Profile: &domain.Profile{Format: "yaml"},
		Fresh:   true,
	}
}

func execute(t *testing.T, m *mockApp, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(m)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return buf.String(), err
}

func TestCommands_Build(t *testing.T) {
	t.Run("defaults to the current directory", func(t *testing.T) {
		var capturedDir string
		mock := &mockApp{
			buildFunc: func(_ context.Context, dir string, _ *pflag.FlagSet) (*app.BuildResult, error) {
				capturedDir = dir
				return result(), nil
			},
		}

		out, err := execute(t, mock, "build")
		require.NoError(t, err)
		assert.Equal(t, ".", capturedDir)
		assert.Equal(t, "rendered yaml\n", out)
	})

	t.Run("passes directory and flags", func(t *testing.T) {
		var capturedDir string
		var capturedFlags *pflag.FlagSet
		mock := &mockApp{
			buildFunc: func(_ context.Context, dir string, flags *pflag.FlagSet) (*app.BuildResult, error) {
				capturedDir = dir
				capturedFlags = flags
				return result(), nil
			},
		}

		_, err := execute(t, mock, "build", "web", "--format", "json", "--internal", "--no-cache", "--cache-ttl", "5m")
		require.NoError(t, err)
		assert.Equal(t, "web", capturedDir)
		require.NotNil(t, capturedFlags)

		format, _ := capturedFlags.GetString("format")
		assert.Equal(t, "json", format)
		assert.True(t, capturedFlags.Changed("internal"))
		assert.True(t, capturedFlags.Changed("no-cache"))
		ttl, _ := capturedFlags.GetDuration("cache-ttl")
		assert.Equal(t, 5*time.Minute, ttl)
	})

	t.Run("unset flags are not marked changed", func(t *testing.T) {
		var capturedFlags *pflag.FlagSet
		mock := &mockApp{
			buildFunc: func(_ context.Context, _ string, flags *pflag.FlagSet) (*app.BuildResult, error) {
				capturedFlags = flags
				return result(), nil
			},
		}

		_, err := execute(t, mock, "build")
		require.NoError(t, err)
		assert.False(t, capturedFlags.Changed("format"))
		assert.False(t, capturedFlags.Changed("no-cache"))
	})

	t.Run("returns error on build failure", func(t *testing.T) {
		mock := &mockApp{
			buildFunc: func(_ context.Context, _ string, _ *pflag.FlagSet) (*app.BuildResult, error) {
				return nil, errors.New("simulated error")
			},
		}

		_, err := execute(t, mock, "build")
		require.ErrorContains(t, err, "simulated error")
	})

	t.Run("rejects more than one directory", func(t *testing.T) {
		_, err := execute(t, &mockApp{}, "build", "a", "b")
		require.Error(t, err)
	})
}

func TestCommands_Overrides(t *testing.T) {
	mock := &mockApp{}
	out, err := execute(t, mock, "overrides")
	require.NoError(t, err)
	assert.True(t, mock.overridesCalled)
	assert.Equal(t, "2 overrides\n", out)
}

func TestCommands_Watch(t *testing.T) {
	t.Run("renders every result with a heading", func(t *testing.T) {
		mock := &mockApp{
			watchFunc: func(_ context.Context, dir string, _ *pflag.FlagSet, fn func(*app.BuildResult) error) error {
				assert.Equal(t, "app", dir)
				if err := fn(result()); err != nil {
					return err
				}
				return fn(result())
			},
		}

		out, err := execute(t, mock, "watch", "app")
		require.NoError(t, err)
		assert.Equal(t, 2, bytes.Count([]byte(out), []byte("composed 2 overrides")))
		assert.Equal(t, 2, bytes.Count([]byte(out), []byte("rendered yaml")))
	})

	t.Run("stops on render failure", func(t *testing.T) {
		mock := &mockApp{
			watchFunc: func(_ context.Context, _ string, _ *pflag.FlagSet, fn func(*app.BuildResult) error) error {
				return fn(result())
			},
			renderFunc: func(_ io.Writer, _ *app.BuildResult) error {
				return domain.ErrRenderFailed
			},
		}

		_, err := execute(t, mock, "watch")
		require.ErrorIs(t, err, domain.ErrRenderFailed)
	})
}

func TestCommands_CheckVersion(t *testing.T) {
	t.Run("satisfied", func(t *testing.T) {
		out, err := execute(t, &mockApp{}, "check-version", "^17.0.2", "17")
		require.NoError(t, err)
		assert.Contains(t, out, "^17.0.2 satisfies 17")
	})

	t.Run("not satisfied", func(t *testing.T) {
		mock := &mockApp{
			checkVersionFunc: func(_, _ string) (bool, error) { return false, nil },
		}
		_, err := execute(t, mock, "check-version", "16.0.0", "17")
		require.ErrorContains(t, err, domain.ErrVersionNotSatisfied.Error())
	})

	t.Run("invalid floor", func(t *testing.T) {
		mock := &mockApp{
			checkVersionFunc: func(_, _ string) (bool, error) { return false, domain.ErrInvalidVersionFloor },
		}
		_, err := execute(t, mock, "check-version", "16.0.0", "x")
		require.ErrorIs(t, err, domain.ErrInvalidVersionFloor)
	})

	t.Run("requires two arguments", func(t *testing.T) {
		_, err := execute(t, &mockApp{}, "check-version", "16.0.0")
		require.Error(t, err)
	})
}

func TestCommands_LogJSON(t *testing.T) {
	mock := &mockApp{}
	_, err := execute(t, mock, "--log-json", "overrides")
	require.NoError(t, err)
	assert.True(t, mock.jsonLogs)

	mock = &mockApp{}
	_, err = execute(t, mock, "overrides")
	require.NoError(t, err)
	assert.False(t, mock.jsonLogs)
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "version")
	require.NoError(t, err)
	assert.Contains(t, out, build.Version)
	assert.Contains(t, out, "lintcfg version")

	out, err = execute(t, &mockApp{}, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "commit: "+build.Commit)
}
