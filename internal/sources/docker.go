package sources

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/client"
	"github.com/docker/docker/pkg/stdcopy"

	"github.com/vladamatena/twisted/internal/resolve"
)

// Docker follows a container's stdout/stderr and re-publishes every line
// through the bridge.
type Docker struct {
	System      string
	ContainerID string
	Resolver    resolve.Resolver
}

func (d *Docker) Run(ctx context.Context, pub Publisher) error {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return err
	}
	defer cli.Close()

	options := container.LogsOptions{
		ShowStdout: true,
		ShowStderr: true,
		Follow:     true,
		Timestamps: false,
	}

	reader, err := cli.ContainerLogs(ctx, d.ContainerID, options)
	if err != nil {
		return err
	}
	defer reader.Close()

	system := systemTag(ctx, d.System, d.Resolver, d.ContainerID, "docker")
	slog.Info("docker source started", "container", d.ContainerID, "system", system)

	// Container logs are multiplexed; demux both streams onto one pipe.
	lineReader, lineWriter := io.Pipe()
	go func() {
		_, err := stdcopy.StdCopy(lineWriter, lineWriter, reader)
		lineWriter.CloseWithError(err)
	}()

	scanner := bufio.NewScanner(lineReader)
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return nil
		default:
		}
		emit(pub, system, scanner.Text())
	}

	if err := scanner.Err(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
