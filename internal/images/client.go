// Where: cli/internal/images/client.go
// What: Docker client constructor.
// Why: Centralize Docker SDK initialization.
package images

import "github.com/docker/docker/client"

// NewDockerClient constructs a Docker SDK client using environment defaults.
func NewDockerClient() (DockerClient, error) {
	return client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
}
