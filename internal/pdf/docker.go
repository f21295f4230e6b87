// docker.go runs the TeX compile inside a TeX Live container via the
// Docker Engine SDK: create a one-shot container with the work directory
// bind-mounted, wait for it to exit, collect its logs on failure, and
// always remove it.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/pkg/stdcopy"

	"github.com/mmr-tortoise/resumake/internal/model"
)

// LabelManagedBy marks containers created by resumake so that leftover
// compile containers are identifiable (e.g., after a killed process).
const LabelManagedBy = "resumake.managed-by"

// ManagedByValue is the value for the LabelManagedBy label.
const ManagedByValue = "resumake"

// containerWorkDir is where the host work directory is mounted inside
// the TeX Live container.
const containerWorkDir = "/work"

// CompileDocker compiles texFile inside workDir using a TeX Live
// container. The work directory is bind-mounted read-write, so the
// produced PDF lands next to the .tex file exactly as with the local
// engine.
func CompileDocker(ctx context.Context, workDir, texFile, imageName string) error {
	cli, err := NewClient()
	if err != nil {
		return err
	}
	defer func() { _ = cli.Close() }()

	if err := cli.Ping(ctx); err != nil {
		return err
	}

	// Two passes for .aux resolution, same as the local engine, folded
	// into one shell invocation so a single container suffices.
	compile := fmt.Sprintf(
		"pdflatex -interaction=nonstopmode -halt-on-error %[1]s && pdflatex -interaction=nonstopmode -halt-on-error %[1]s",
		texFile,
	)

	cfg := &container.Config{
		Image:      imageName,
		Cmd:        []string{"sh", "-c", compile},
		WorkingDir: containerWorkDir,
		Labels: map[string]string{
			LabelManagedBy: ManagedByValue,
		},
	}
	hostCfg := &container.HostConfig{
		Binds:      []string{workDir + ":" + containerWorkDir},
		AutoRemove: false, // removed explicitly after logs are collected
	}

	created, err := cli.Inner().ContainerCreate(ctx, cfg, hostCfg, nil, nil, "")
	if err != nil {
		// The image may simply not be present yet; pull and retry once.
		if !isNoSuchImage(err) {
			return model.WrapCLIError(model.ExitDockerNotRunning, "failed to create TeX container", err)
		}
		if pullErr := pullImage(ctx, cli, imageName); pullErr != nil {
			return pullErr
		}
		created, err = cli.Inner().ContainerCreate(ctx, cfg, hostCfg, nil, nil, "")
		if err != nil {
			return model.WrapCLIError(model.ExitDockerNotRunning, "failed to create TeX container", err)
		}
	}
	containerID := created.ID
	defer removeContainer(cli, containerID)

	if err := cli.Inner().ContainerStart(ctx, containerID, container.StartOptions{}); err != nil {
		return model.WrapCLIError(model.ExitDockerNotRunning, "failed to start TeX container", err)
	}

	status, err := waitContainer(ctx, cli, containerID)
	if err != nil {
		return err
	}
	if status != 0 {
		logs := containerLogs(ctx, cli, containerID)
		return model.NewCLIError(
			model.ExitTeXFailed,
			fmt.Sprintf("TeX compile failed in container (exit %d):\n%s", status, logTail(logs, texLogTailLines)),
		)
	}
	return nil
}

// pullImage pulls the TeX Live image, draining the progress stream.
func pullImage(ctx context.Context, cli *Client, imageName string) error {
	reader, err := cli.Inner().ImagePull(ctx, imageName, image.PullOptions{})
	if err != nil {
		return model.WrapCLIError(
			model.ExitDockerNotRunning,
			fmt.Sprintf("failed to pull image %q", imageName),
			err,
		)
	}
	defer func() { _ = reader.Close() }()

	// The pull reports progress as a JSON stream; it must be consumed
	// for the pull to complete.
	if _, err := io.Copy(io.Discard, reader); err != nil {
		return model.WrapCLIError(
			model.ExitDockerNotRunning,
			fmt.Sprintf("failed while pulling image %q", imageName),
			err,
		)
	}
	return nil
}

// waitContainer blocks until the container exits and returns its status
// code.
func waitContainer(ctx context.Context, cli *Client, containerID string) (int64, error) {
	waitCh, errCh := cli.Inner().ContainerWait(ctx, containerID, container.WaitConditionNotRunning)
	select {
	case err := <-errCh:
		return 0, model.WrapCLIError(model.ExitDockerNotRunning, "failed waiting for TeX container", err)
	case resp := <-waitCh:
		if resp.Error != nil {
			return 0, model.NewCLIError(
				model.ExitDockerNotRunning,
				fmt.Sprintf("TeX container wait error: %s", resp.Error.Message),
			)
		}
		return resp.StatusCode, nil
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}

// containerLogs fetches the container's combined output. The Docker log
// stream multiplexes stdout/stderr; stdcopy demultiplexes it. Errors are
// swallowed — logs are best-effort diagnostics for an already-failed
// compile.
func containerLogs(ctx context.Context, cli *Client, containerID string) string {
	reader, err := cli.Inner().ContainerLogs(ctx, containerID, container.LogsOptions{
		ShowStdout: true,
		ShowStderr: true,
	})
	if err != nil {
		return ""
	}
	defer func() { _ = reader.Close() }()

	var buf bytes.Buffer
	_, _ = stdcopy.StdCopy(&buf, &buf, reader)
	return buf.String()
}

// removeContainer force-removes the compile container. Run via defer;
// a failed removal leaves a labeled container behind, which is why the
// LabelManagedBy label exists.
func removeContainer(cli *Client, containerID string) {
	// A fresh context: the parent may already be cancelled, and cleanup
	// should still run.
	ctx := context.Background()
	_ = cli.Inner().ContainerRemove(ctx, containerID, container.RemoveOptions{Force: true})
}

// isNoSuchImage detects the daemon's missing-image error without
// depending on the SDK's errdefs internals.
func isNoSuchImage(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "no such image") || strings.Contains(msg, "not found")
}
