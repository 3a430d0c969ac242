package renpy

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"gamedock/internal/services"
	"gamedock/internal/source"
)

const (
	distSuffix = "-dists"
	baseJoiner = "-"
)

// BuildResult points at the directory holding the web build output, ready
// to copy into the game destination.
type BuildResult struct {
	WebRoot     string
	FromArchive bool
}

// Executor abstracts command execution for testability.
type Executor interface {
	Run(ctx context.Context, binary string, args []string) (output string, err error)
}

// Option configures the client.
type Option func(*Client)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec Executor) Option {
	return func(c *Client) {
		if exec != nil {
			c.exec = exec
		}
	}
}

// Client drives the SDK's distribute command for one project at a time.
type Client struct {
	sdk          SDK
	platform     string
	buildTimeout time.Duration
	stagingDir   string
	exec         Executor
	logger       *slog.Logger
}

// New constructs a build client. stagingDir receives temporary extractions
// of archived build outputs.
func New(sdk SDK, platform string, buildTimeoutSeconds int, stagingDir string, logger *slog.Logger, opts ...Option) *Client {
	if strings.TrimSpace(platform) == "" {
		platform = "web"
	}
	if logger == nil {
		logger = slog.Default()
	}
	client := &Client{
		sdk:          sdk,
		platform:     platform,
		buildTimeout: time.Duration(buildTimeoutSeconds) * time.Second,
		stagingDir:   stagingDir,
		exec:         commandExecutor{},
		logger:       logger.With("component", "renpy"),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// Distribute prepares the project, runs the external build with a bounded
// timeout, and resolves its output to a directory.
func (c *Client) Distribute(ctx context.Context, projectPath string) (BuildResult, error) {
	if err := EnsureSigningKey(projectPath); err != nil {
		return BuildResult{}, services.Wrap(services.ErrExternalTool, "build", "prepare", "signing key", err)
	}

	restoreIcons, err := stashIcons(projectPath)
	if err != nil {
		return BuildResult{}, services.Wrap(services.ErrExternalTool, "build", "prepare", "icon files", err)
	}
	defer restoreIcons()

	buildCtx := ctx
	if c.buildTimeout > 0 {
		var cancel context.CancelFunc
		buildCtx, cancel = context.WithTimeout(ctx, c.buildTimeout)
		defer cancel()
	}

	args := []string{c.sdk.Root, "distribute", "--package", c.platform, projectPath}
	c.logger.Info("running distribute", "launcher", c.sdk.Launcher, "project", filepath.Base(projectPath), "platform", c.platform)

	started := time.Now()
	output, err := c.exec.Run(buildCtx, c.sdk.Launcher, args)
	if err != nil {
		message := "distribute failed"
		if errors.Is(buildCtx.Err(), context.DeadlineExceeded) {
			message = fmt.Sprintf("distribute timed out after %s", c.buildTimeout)
		}
		if trimmed := tail(output, 2000); trimmed != "" {
			message = message + "; tool output:\n" + trimmed
		}
		return BuildResult{}, services.Wrap(services.ErrExternalTool, "build", "distribute", message, err)
	}
	c.logger.Info("distribute finished", "elapsed", time.Since(started).Round(time.Second))

	return c.locateOutput(projectPath)
}

// locateOutput finds the build output by convention: a sibling directory of
// the project named <base>-dists (case-insensitive, spaces normalized),
// containing an entry whose name includes the platform marker.
func (c *Client) locateOutput(projectPath string) (BuildResult, error) {
	parent := filepath.Dir(projectPath)
	base := normalizeBase(filepath.Base(projectPath))

	entries, err := os.ReadDir(parent)
	if err != nil {
		return BuildResult{}, services.Wrap(services.ErrExternalTool, "build", "locate output", "read project parent", err)
	}

	var distDir string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := strings.ToLower(entry.Name())
		if strings.HasSuffix(name, distSuffix) && strings.HasPrefix(name, base) {
			distDir = filepath.Join(parent, entry.Name())
			break
		}
	}
	if distDir == "" {
		return BuildResult{}, services.Wrap(services.ErrExternalTool, "build", "locate output",
			fmt.Sprintf("no %s*%s directory beside the project; the build produced nothing", base, distSuffix), nil)
	}

	distEntries, err := os.ReadDir(distDir)
	if err != nil {
		return BuildResult{}, services.Wrap(services.ErrExternalTool, "build", "locate output", "read dists directory", err)
	}
	for _, entry := range distEntries {
		if !strings.Contains(strings.ToLower(entry.Name()), strings.ToLower(c.platform)) {
			continue
		}
		full := filepath.Join(distDir, entry.Name())
		if entry.IsDir() {
			return BuildResult{WebRoot: full}, nil
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".zip") {
			webRoot, err := c.extractArchive(full)
			if err != nil {
				return BuildResult{}, err
			}
			return BuildResult{WebRoot: webRoot, FromArchive: true}, nil
		}
	}
	return BuildResult{}, services.Wrap(services.ErrExternalTool, "build", "locate output",
		fmt.Sprintf("no %s entry inside %s", c.platform, distDir), nil)
}

func (c *Client) extractArchive(archivePath string) (string, error) {
	acc, err := source.OpenZip(archivePath)
	if err != nil {
		return "", services.Wrap(services.ErrExternalTool, "build", "locate output", "open output archive", err)
	}
	defer acc.Close()

	tempDir, err := os.MkdirTemp(c.stagingDir, "build-*")
	if err != nil {
		return "", services.Wrap(services.ErrExternalTool, "build", "locate output", "create staging directory", err)
	}
	if err := acc.ExtractAll(tempDir); err != nil {
		_ = os.RemoveAll(tempDir)
		return "", services.Wrap(services.ErrExternalTool, "build", "locate output", "extract output archive", err)
	}
	return tempDir, nil
}

func normalizeBase(name string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", baseJoiner))
}

func tail(s string, max int) string {
	s = strings.TrimSpace(s)
	if len(s) <= max {
		return s
	}
	return "..." + s[len(s)-max:]
}

type commandExecutor struct{}

func (commandExecutor) Run(ctx context.Context, binary string, args []string) (string, error) {
	cmd := exec.CommandContext(ctx, binary, args...) //nolint:gosec
	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf
	err := cmd.Run()
	return buf.String(), err
}
