// Package resolver finds the current version among tracked manifests.
package resolver

import (
	"context"
	"fmt"

	"github.com/lerenn/bumped/pkg/manifest"
	"github.com/lerenn/bumped/pkg/semver"
	"golang.org/x/sync/errgroup"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=resolver.go -destination=mocks/resolver.gen.go -package=mocks

// Resolver returns the highest version declared by a set of files.
type Resolver interface {
	// Resolve returns the semver maximum of the version fields, or "" when no file declares one.
	Resolve(ctx context.Context, files []string) (string, error)
}

type realResolver struct {
	manifest manifest.Manifest
}

// New creates a Resolver reading manifests through m.
func New(m manifest.Manifest) Resolver {
	return &realResolver{manifest: m}
}

func (r *realResolver) Resolve(ctx context.Context, files []string) (string, error) {
	versions := make([]string, len(files))

	// Reads are independent; the reduction waits for all of them.
	g, ctx := errgroup.WithContext(ctx)
	for i, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			version, found, err := r.manifest.ReadVersion(file)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrResolution, err)
			}
			if !found {
				return nil
			}
			cleaned, ok := semver.Clean(version)
			if !ok {
				return fmt.Errorf("%w: %s declares %q which is not a semantic version", ErrResolution, file, version)
			}

			versions[i] = cleaned
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	declared := versions[:0]
	for _, v := range versions {
		if v != "" {
			declared = append(declared, v)
		}
	}
	return semver.Max(declared...), nil
}
