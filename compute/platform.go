package compute

import (
	"strings"
	"sync"

	"github.com/gomlx/clwrap/driver"
	"github.com/gomlx/clwrap/status"
	"github.com/gomlx/clwrap/wrapper"
	"github.com/pkg/errors"
)

// Platform wraps a native platform. Platforms are owned by the runtime, so destroying the last
// reference only drops the Go side (cache and devices).
type Platform struct {
	object

	muDevices sync.Mutex
	devices   []*Device
}

// WrapPlatform returns the Platform for the native handle, creating it on first use.
// The caller owns one reference and must call Destroy.
func WrapPlatform(api *driver.API, handle driver.Handle) (*Platform, error) {
	return wrapper.AcquireAs(wrapper.Default, wrapper.Handle(handle), func(w *wrapper.Wrapper) *Platform {
		return &Platform{object: newObject(w, api, "Platform", api.GetPlatformInfo)}
	})
}

// Destroy releases one reference to the platform. The last one also destroys the devices
// returned by Devices.
func (p *Platform) Destroy() error {
	_, err := p.Release(nil, func(*wrapper.Wrapper) {
		p.muDevices.Lock()
		defer p.muDevices.Unlock()
		destroyAll(p, p.devices)
		p.devices = nil
	})
	return err
}

// Name of the platform.
func (p *Platform) Name() (string, error) { return p.InfoString(driver.PlatformName) }

// Vendor of the platform.
func (p *Platform) Vendor() (string, error) { return p.InfoString(driver.PlatformVendor) }

// Version of the platform, as "OpenCL <major>.<minor> <vendor info>".
func (p *Platform) Version() (string, error) { return p.InfoString(driver.PlatformVersion) }

// Profile is either FULL_PROFILE or EMBEDDED_PROFILE.
func (p *Platform) Profile() (string, error) { return p.InfoString(driver.PlatformProfile) }

// Extensions supported by the platform.
func (p *Platform) Extensions() ([]string, error) {
	extensions, err := p.InfoString(driver.PlatformExtensions)
	if err != nil {
		return nil, err
	}
	return strings.Fields(extensions), nil
}

// Devices returns all devices of the platform. They are enumerated on the first call and are owned
// by the platform: the caller must not Destroy them, and Retain them to use them after the platform
// is destroyed.
//
// A platform without devices returns an empty list.
func (p *Platform) Devices() ([]*Device, error) {
	p.muDevices.Lock()
	defer p.muDevices.Unlock()
	if p.devices != nil {
		return p.devices, nil
	}
	handles, code := p.api.DeviceIDs(p.Handle(), driver.DeviceTypeAll)
	if code == status.DeviceNotFound {
		p.devices = []*Device{}
		return p.devices, nil
	}
	if !code.Ok() {
		return nil, wrapper.NewError("Platform.Devices", code, "unable to get devices of %s", p)
	}
	devices := make([]*Device, 0, len(handles))
	for _, h := range handles {
		d, err := WrapDevice(p.api, h)
		if err != nil {
			destroyAll(p, devices)
			return nil, err
		}
		devices = append(devices, d)
	}
	p.devices = devices
	return devices, nil
}

// NumDevices returns the number of devices of the platform.
func (p *Platform) NumDevices() (int, error) {
	devices, err := p.Devices()
	return len(devices), err
}

// Device returns the device at index idx. See Devices about ownership.
func (p *Platform) Device(idx int) (*Device, error) {
	devices, err := p.Devices()
	if err != nil {
		return nil, err
	}
	if idx < 0 || idx >= len(devices) {
		return nil, errors.Errorf("device index %d out of range, %s has %d devices", idx, p, len(devices))
	}
	return devices[idx], nil
}
