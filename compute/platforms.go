package compute

import (
	"github.com/gomlx/clwrap/driver"
	"github.com/gomlx/clwrap/wrapper"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"
)

// Platforms is the list of all platforms of a native runtime, with their devices enumerated.
type Platforms struct {
	platforms []*Platform
}

// NewPlatforms enumerates the platforms of api, and the devices of each platform (concurrently).
// The caller must call Destroy, which destroys all platforms.
func NewPlatforms(api *driver.API) (*Platforms, error) {
	handles, code := api.PlatformIDs()
	if !code.Ok() {
		return nil, wrapper.NewError("NewPlatforms", code, "unable to get platform ids")
	}
	ps := &Platforms{platforms: make([]*Platform, 0, len(handles))}
	for _, h := range handles {
		p, err := WrapPlatform(api, h)
		if err != nil {
			if destroyErr := ps.Destroy(); destroyErr != nil {
				klog.Errorf("NewPlatforms: failed to destroy platforms: %+v", destroyErr)
			}
			return nil, err
		}
		ps.platforms = append(ps.platforms, p)
	}

	var g errgroup.Group
	for _, p := range ps.platforms {
		g.Go(func() error {
			_, err := p.Devices()
			return err
		})
	}
	if err := g.Wait(); err != nil {
		if destroyErr := ps.Destroy(); destroyErr != nil {
			klog.Errorf("NewPlatforms: failed to destroy platforms: %+v", destroyErr)
		}
		return nil, err
	}
	return ps, nil
}

// Count returns the number of platforms.
func (ps *Platforms) Count() int {
	return len(ps.platforms)
}

// Get returns the platform at index idx, or nil if out of range. It is owned by ps.
func (ps *Platforms) Get(idx int) *Platform {
	if idx < 0 || idx >= len(ps.platforms) {
		return nil
	}
	return ps.platforms[idx]
}

// All returns all platforms. They are owned by ps.
func (ps *Platforms) All() []*Platform {
	return ps.platforms
}

// Destroy destroys every platform. Failures don't stop the teardown and are all returned.
func (ps *Platforms) Destroy() error {
	var err error
	for _, p := range ps.platforms {
		err = multierr.Append(err, p.Destroy())
	}
	ps.platforms = nil
	return err
}
