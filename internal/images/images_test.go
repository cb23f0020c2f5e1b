// Where: cli/internal/images/images_test.go
// What: Tests for image maintenance behavior.
// Why: Only prefixed latest images refresh; only prefixed dangling ones go.
package images

import (
	"context"
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/devbox/runtests/cli/internal/logging"
	"github.com/docker/docker/api/types/image"
)

type fakeDockerClient struct {
	summaries []image.Summary
	listErr   error
	pulled    []string
	pullErr   map[string]error
	removed   []string
	removeErr map[string]error
}

func (f *fakeDockerClient) ImageList(_ context.Context, _ image.ListOptions) ([]image.Summary, error) {
	return f.summaries, f.listErr
}

func (f *fakeDockerClient) ImagePull(_ context.Context, ref string, _ image.PullOptions) (io.ReadCloser, error) {
	if err := f.pullErr[ref]; err != nil {
		return nil, err
	}
	f.pulled = append(f.pulled, ref)
	return io.NopCloser(strings.NewReader("{}")), nil
}

func (f *fakeDockerClient) ImageRemove(_ context.Context, id string, _ image.RemoveOptions) ([]image.DeleteResponse, error) {
	if err := f.removeErr[id]; err != nil {
		return nil, err
	}
	f.removed = append(f.removed, id)
	return []image.DeleteResponse{{Deleted: id}}, nil
}

func testMaintainer(client DockerClient) Maintainer {
	return Maintainer{Client: client, Log: logging.New(io.Discard, false)}
}

func TestRefreshLatestPullsOnlyLatestTags(t *testing.T) {
	client := &fakeDockerClient{
		summaries: []image.Summary{
			{RepoTags: []string{"ghcr.io/runtests/style:latest", "ghcr.io/runtests/style:php81"}},
			{RepoTags: []string{"ghcr.io/runtests/lint:latest"}},
			{RepoTags: []string{"<none>:<none>"}},
		},
	}

	pulled, err := testMaintainer(client).RefreshLatest(context.Background(), "ghcr.io/runtests/")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	expected := []string{"ghcr.io/runtests/style:latest", "ghcr.io/runtests/lint:latest"}
	if !reflect.DeepEqual(pulled, expected) {
		t.Fatalf("unexpected pulls:\ngot:  %v\nwant: %v", pulled, expected)
	}
}

func TestRefreshLatestSkipsFailedPulls(t *testing.T) {
	client := &fakeDockerClient{
		summaries: []image.Summary{
			{RepoTags: []string{"ghcr.io/runtests/style:latest"}},
			{RepoTags: []string{"ghcr.io/runtests/lint:latest"}},
		},
		pullErr: map[string]error{"ghcr.io/runtests/style:latest": errors.New("registry down")},
	}

	pulled, err := testMaintainer(client).RefreshLatest(context.Background(), "ghcr.io/runtests/")
	if err != nil {
		t.Fatalf("expected best-effort refresh, got %v", err)
	}
	if !reflect.DeepEqual(pulled, []string{"ghcr.io/runtests/lint:latest"}) {
		t.Fatalf("unexpected pulls: %v", pulled)
	}
}

func TestRemoveDanglingFiltersByPrefix(t *testing.T) {
	client := &fakeDockerClient{
		summaries: []image.Summary{
			{ID: "sha256:aaa", RepoDigests: []string{"ghcr.io/runtests/style@sha256:1"}},
			{ID: "sha256:bbb", RepoDigests: []string{"docker.io/library/php@sha256:2"}},
			{ID: "sha256:ccc"},
		},
	}

	removed, err := testMaintainer(client).RemoveDangling(context.Background(), "ghcr.io/runtests/")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !reflect.DeepEqual(removed, []string{"sha256:aaa"}) {
		t.Fatalf("unexpected removals: %v", removed)
	}
}

func TestListErrorIsFatal(t *testing.T) {
	client := &fakeDockerClient{listErr: errors.New("daemon unreachable")}
	if _, err := testMaintainer(client).RefreshLatest(context.Background(), "ghcr.io/runtests/"); err == nil {
		t.Fatalf("expected error when listing fails")
	}
}
