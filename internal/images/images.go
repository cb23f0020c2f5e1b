// Where: cli/internal/images/images.go
// What: Container image maintenance via the Docker SDK.
// Why: Refresh latest-tagged suite images and clear dangling leftovers.
package images

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/api/types/image"
)

// DockerClient defines the subset of Docker SDK methods used by this package.
// This interface enables mocking the Docker client in tests.
type DockerClient interface {
	ImageList(ctx context.Context, options image.ListOptions) ([]image.Summary, error)
	ImagePull(ctx context.Context, refStr string, options image.PullOptions) (io.ReadCloser, error)
	ImageRemove(ctx context.Context, imageID string, options image.RemoveOptions) ([]image.DeleteResponse, error)
}

// Maintainer refreshes and cleans locally cached suite images. All
// operations are best effort: individual failures are logged and skipped.
type Maintainer struct {
	Client DockerClient
	Log    *slog.Logger
}

// RefreshLatest re-pulls every local image under the given registry prefix
// that carries the latest tag.
func (m Maintainer) RefreshLatest(ctx context.Context, prefix string) ([]string, error) {
	refs, err := m.listTags(ctx, prefix, false)
	if err != nil {
		return nil, err
	}

	var pulled []string
	for _, ref := range refs {
		if !strings.HasSuffix(ref, ":latest") {
			continue
		}
		m.Log.Debug("pulling image", "ref", ref)
		reader, err := m.Client.ImagePull(ctx, ref, image.PullOptions{})
		if err != nil {
			m.Log.Warn("image pull failed", "ref", ref, "error", err)
			continue
		}
		// The pull only completes once the progress stream is drained.
		_, _ = io.Copy(io.Discard, reader)
		_ = reader.Close()
		pulled = append(pulled, ref)
	}
	return pulled, nil
}

// RemoveDangling deletes untagged leftovers under the given registry prefix.
func (m Maintainer) RemoveDangling(ctx context.Context, prefix string) ([]string, error) {
	listFilters := filters.NewArgs(filters.Arg("dangling", "true"))
	summaries, err := m.Client.ImageList(ctx, image.ListOptions{Filters: listFilters})
	if err != nil {
		return nil, fmt.Errorf("list dangling images: %w", err)
	}

	var removed []string
	for _, summary := range summaries {
		if !matchesPrefix(summary, prefix) {
			continue
		}
		m.Log.Debug("removing image", "id", summary.ID)
		if _, err := m.Client.ImageRemove(ctx, summary.ID, image.RemoveOptions{PruneChildren: true}); err != nil {
			m.Log.Warn("image remove failed", "id", summary.ID, "error", err)
			continue
		}
		removed = append(removed, summary.ID)
	}
	return removed, nil
}

// listTags returns the repo tags of local images matching the prefix.
func (m Maintainer) listTags(ctx context.Context, prefix string, all bool) ([]string, error) {
	listFilters := filters.NewArgs(filters.Arg("reference", prefix+"*"))
	summaries, err := m.Client.ImageList(ctx, image.ListOptions{All: all, Filters: listFilters})
	if err != nil {
		return nil, fmt.Errorf("list images: %w", err)
	}

	var refs []string
	for _, summary := range summaries {
		for _, tag := range summary.RepoTags {
			if tag == "<none>:<none>" {
				continue
			}
			refs = append(refs, tag)
		}
	}
	return refs, nil
}

// matchesPrefix reports whether a dangling image still carries a repo
// digest under the maintained registry prefix.
func matchesPrefix(summary image.Summary, prefix string) bool {
	if len(summary.RepoTags) == 0 && len(summary.RepoDigests) == 0 {
		// Fully untagged layers cannot be attributed; leave them to a
		// broader docker image prune.
		return false
	}
	for _, tag := range summary.RepoTags {
		if strings.HasPrefix(tag, prefix) {
			return true
		}
	}
	for _, digest := range summary.RepoDigests {
		if strings.HasPrefix(digest, prefix) {
			return true
		}
	}
	return false
}
