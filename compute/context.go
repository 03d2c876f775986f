package compute

import (
	"sync"

	"github.com/gomlx/clwrap/driver"
	"github.com/gomlx/clwrap/wrapper"
	"github.com/pkg/errors"
)

// Context wraps a native context: the environment where queues and programs of a set of devices live.
type Context struct {
	object

	muDevices sync.Mutex
	devices   []*Device
}

// NewContext creates a native context for the given devices. All of them must be available.
// The caller owns the returned Context and must call Destroy.
func NewContext(api *driver.API, devices ...*Device) (*Context, error) {
	if len(devices) == 0 {
		return nil, errors.New("NewContext: no devices given")
	}
	handles := make([]driver.Handle, len(devices))
	for ii, d := range devices {
		if d == nil {
			return nil, errors.Errorf("NewContext: device #%d is nil", ii)
		}
		handles[ii] = d.Handle()
	}
	h, code := api.CreateContext(handles)
	if !code.Ok() {
		return nil, wrapper.NewError("NewContext", code, "unable to create context for %d devices", len(devices))
	}
	return WrapContext(api, h)
}

// NewContextForType creates a native context with all the devices of platform of the given type.
func NewContextForType(platform *Platform, deviceType driver.DeviceType) (*Context, error) {
	devices, err := platform.Devices()
	if err != nil {
		return nil, err
	}
	var selected []*Device
	for _, d := range devices {
		dType, err := d.Type()
		if err != nil {
			return nil, err
		}
		available, err := d.Available()
		if err != nil {
			return nil, err
		}
		if dType&deviceType != 0 && available {
			selected = append(selected, d)
		}
	}
	if len(selected) == 0 {
		return nil, errors.Errorf("NewContextForType: %s has no available device of type %#x", platform, uint64(deviceType))
	}
	return NewContext(platform.api, selected...)
}

// WrapContext returns the Context for the native handle, creating it on first use. The Context takes
// over the native reference of the handle: the last Destroy releases it.
func WrapContext(api *driver.API, handle driver.Handle) (*Context, error) {
	return wrapper.AcquireAs(wrapper.Default, wrapper.Handle(handle), func(w *wrapper.Wrapper) *Context {
		return &Context{object: newObject(w, api, "Context", api.GetContextInfo)}
	})
}

// Destroy releases one reference to the context. The last one releases the native context and
// destroys the devices returned by Devices.
func (c *Context) Destroy() error {
	_, err := c.Release(releaser(c.api.ReleaseContext), func(*wrapper.Wrapper) {
		c.muDevices.Lock()
		defer c.muDevices.Unlock()
		destroyAll(c, c.devices)
		c.devices = nil
	})
	return err
}

// Devices returns the devices of the context. They are owned by the context, see Platform.Devices.
func (c *Context) Devices() ([]*Device, error) {
	c.muDevices.Lock()
	defer c.muDevices.Unlock()
	if c.devices != nil {
		return c.devices, nil
	}
	handles, err := c.infoHandles(driver.ContextDevices)
	if err != nil {
		return nil, err
	}
	devices := make([]*Device, 0, len(handles))
	for _, h := range handles {
		d, err := WrapDevice(c.api, h)
		if err != nil {
			destroyAll(c, devices)
			return nil, err
		}
		devices = append(devices, d)
	}
	c.devices = devices
	return devices, nil
}

// NumDevices returns the number of devices in the context.
func (c *Context) NumDevices() (uint32, error) { return c.InfoUint32(driver.ContextNumDevices) }
