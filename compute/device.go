package compute

import (
	"strings"

	"github.com/gomlx/clwrap/driver"
	"github.com/gomlx/clwrap/wrapper"
)

// Device wraps a native device.
type Device struct {
	object
}

// WrapDevice returns the Device for the native handle, creating it on first use.
// The caller owns one reference and must call Destroy.
func WrapDevice(api *driver.API, handle driver.Handle) (*Device, error) {
	return wrapper.AcquireAs(wrapper.Default, wrapper.Handle(handle), func(w *wrapper.Wrapper) *Device {
		return &Device{object: newObject(w, api, "Device", api.GetDeviceInfo)}
	})
}

// Destroy releases one reference to the device.
func (d *Device) Destroy() error {
	_, err := d.Release(releaser(d.api.ReleaseDevice), nil)
	return err
}

// Name of the device.
func (d *Device) Name() (string, error) { return d.InfoString(driver.DeviceName) }

// Vendor of the device.
func (d *Device) Vendor() (string, error) { return d.InfoString(driver.DeviceVendor) }

// Type of the device.
func (d *Device) Type() (driver.DeviceType, error) {
	v, err := d.InfoUint64(driver.DeviceTypeParam)
	return driver.DeviceType(v), err
}

// ComputeUnits returns the number of parallel compute units of the device.
func (d *Device) ComputeUnits() (uint32, error) { return d.InfoUint32(driver.DeviceMaxComputeUnits) }

// GlobalMemSize returns the size of the global memory of the device, in bytes.
func (d *Device) GlobalMemSize() (uint64, error) { return d.InfoUint64(driver.DeviceGlobalMemSize) }

// MaxWorkItemSizes returns the maximum number of work-items per dimension of a work-group.
func (d *Device) MaxWorkItemSizes() ([]uint64, error) {
	return d.InfoSizeTSlice(driver.DeviceMaxWorkItemSizes)
}

// Available returns whether the device can be used.
func (d *Device) Available() (bool, error) { return d.InfoBool(driver.DeviceAvailable) }

// CompilerAvailable returns whether the device can build programs.
func (d *Device) CompilerAvailable() (bool, error) { return d.InfoBool(driver.DeviceCompilerAvailable) }

// Extensions supported by the device.
func (d *Device) Extensions() ([]string, error) {
	extensions, err := d.InfoString(driver.DeviceExtensions)
	if err != nil {
		return nil, err
	}
	return strings.Fields(extensions), nil
}

// PlatformHandle returns the native handle of the platform of the device. Use WrapPlatform
// to get the Platform.
func (d *Device) PlatformHandle() (driver.Handle, error) {
	handles, err := d.infoHandles(driver.DevicePlatform)
	if err != nil || len(handles) == 0 {
		return 0, err
	}
	return handles[0], nil
}
