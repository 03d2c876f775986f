package driver

import (
	"encoding/binary"
	"slices"
	"strings"
	"unsafe"

	"github.com/gomlx/clwrap/status"
	"github.com/pbnjay/memory"
)

// Attribute values are laid out as the native ABI does: integers in host byte order, sizes as
// pointer-sized integers, booleans as 32-bit integers and strings NUL-terminated.

func encodeString(s string) []byte {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return b
}

func encodeUint32(v uint32) []byte {
	return binary.NativeEndian.AppendUint32(nil, v)
}

func encodeInt32(v int32) []byte {
	return encodeUint32(uint32(v))
}

func encodeUint64(v uint64) []byte {
	return binary.NativeEndian.AppendUint64(nil, v)
}

func encodeBool(v bool) []byte {
	if v {
		return encodeUint32(1)
	}
	return encodeUint32(0)
}

func encodeSizeT(values ...uint64) []byte {
	var b []byte
	for _, v := range values {
		if unsafe.Sizeof(uintptr(0)) == 8 {
			b = binary.NativeEndian.AppendUint64(b, v)
		} else {
			b = binary.NativeEndian.AppendUint32(b, uint32(v))
		}
	}
	return b
}

func encodeHandles(handles ...Handle) []byte {
	values := make([]uint64, len(handles))
	for ii, h := range handles {
		values[ii] = uint64(h)
	}
	b := encodeSizeT(values...)
	if b == nil {
		// An empty list is a present-but-empty attribute.
		b = []byte{}
	}
	return b
}

// globalMemSize of a CPU device defaults to the memory of the host.
func (d *DeviceSpec) globalMemSize() uint64 {
	if d.GlobalMemSize == 0 && d.deviceType() == DeviceTypeCPU {
		return memory.TotalMemory()
	}
	return d.GlobalMemSize
}

// copyInfo implements the two-call protocol: with a nil value only the size is reported.
func copyInfo(attr []byte, value []byte, sizeRet *int) status.Code {
	if value != nil {
		if len(value) < len(attr) {
			return status.InvalidValue
		}
		copy(value, attr)
	}
	if sizeRet != nil {
		*sizeRet = len(attr)
	}
	return status.Success
}

// GetPlatformInfo queries an attribute of a platform.
func (api *API) GetPlatformInfo(platform Handle, param uint32, value []byte, sizeRet *int) status.Code {
	api.mu.Lock()
	defer api.mu.Unlock()
	if code := api.enter("GetPlatformInfo"); !code.Ok() {
		return code
	}
	obj, found := api.lookup(platform, kindPlatform)
	if !found {
		return status.InvalidPlatform
	}
	p := obj.platform
	var attr []byte
	switch param {
	case PlatformProfile:
		attr = encodeString(p.Profile)
	case PlatformVersion:
		attr = encodeString(p.Version)
	case PlatformName:
		attr = encodeString(p.Name)
	case PlatformVendor:
		attr = encodeString(p.Vendor)
	case PlatformExtensions:
		attr = encodeString(strings.Join(p.Extensions, " "))
	default:
		return status.InvalidValue
	}
	return copyInfo(attr, value, sizeRet)
}

// GetDeviceInfo queries an attribute of a device.
func (api *API) GetDeviceInfo(device Handle, param uint32, value []byte, sizeRet *int) status.Code {
	api.mu.Lock()
	defer api.mu.Unlock()
	if code := api.enter("GetDeviceInfo"); !code.Ok() {
		return code
	}
	obj, found := api.lookup(device, kindDevice)
	if !found {
		return status.InvalidDevice
	}
	d := obj.device
	var attr []byte
	switch param {
	case DeviceTypeParam:
		attr = encodeUint64(uint64(d.deviceType()))
	case DeviceVendorID:
		attr = encodeUint32(d.VendorID)
	case DeviceMaxComputeUnits:
		attr = encodeUint32(d.ComputeUnits)
	case DeviceMaxWorkItemDimensions:
		attr = encodeUint32(uint32(len(d.MaxWorkItemSizes)))
	case DeviceMaxWorkGroupSize:
		attr = encodeSizeT(d.MaxWorkGroupSize)
	case DeviceMaxWorkItemSizes:
		attr = encodeSizeT(d.MaxWorkItemSizes...)
	case DeviceMaxClockFrequency:
		attr = encodeUint32(d.MaxClockMHz)
	case DeviceAddressBits:
		attr = encodeUint32(d.AddressBits)
	case DeviceMaxMemAllocSize:
		attr = encodeUint64(d.MaxMemAllocSize)
	case DeviceGlobalMemSize:
		attr = encodeUint64(d.globalMemSize())
	case DeviceLocalMemSize:
		attr = encodeUint64(d.LocalMemSize)
	case DeviceEndianLittle:
		attr = encodeBool(binary.NativeEndian.Uint16([]byte{1, 0}) == 1)
	case DeviceAvailable:
		attr = encodeBool(d.Available)
	case DeviceCompilerAvailable:
		attr = encodeBool(d.CompilerAvailable)
	case DeviceName:
		attr = encodeString(d.Name)
	case DeviceVendor:
		attr = encodeString(d.Vendor)
	case DeviceDriverVersion:
		attr = encodeString(d.DriverVersion)
	case DeviceProfile:
		attr = encodeString(api.objects[obj.parent].platform.Profile)
	case DeviceVersion:
		attr = encodeString(d.Version)
	case DeviceExtensions:
		attr = encodeString(strings.Join(d.Extensions, " "))
	case DevicePlatform:
		attr = encodeHandles(obj.parent)
	case DeviceOpenCLCVersion:
		attr = encodeString(d.OpenCLCVersion)
	default:
		return status.InvalidValue
	}
	return copyInfo(attr, value, sizeRet)
}

// GetContextInfo queries an attribute of a context.
//
// ContextProperties of a context created without properties is empty (size 0).
func (api *API) GetContextInfo(context Handle, param uint32, value []byte, sizeRet *int) status.Code {
	api.mu.Lock()
	defer api.mu.Unlock()
	if code := api.enter("GetContextInfo"); !code.Ok() {
		return code
	}
	obj, found := api.lookup(context, kindContext)
	if !found {
		return status.InvalidContext
	}
	var attr []byte
	switch param {
	case ContextReferenceCount:
		attr = encodeUint32(uint32(obj.refCount))
	case ContextDevices:
		attr = encodeHandles(obj.devices...)
	case ContextProperties:
		attr = []byte{}
	case ContextNumDevices:
		attr = encodeUint32(uint32(len(obj.devices)))
	default:
		return status.InvalidValue
	}
	return copyInfo(attr, value, sizeRet)
}

// GetCommandQueueInfo queries an attribute of a command queue.
func (api *API) GetCommandQueueInfo(queue Handle, param uint32, value []byte, sizeRet *int) status.Code {
	api.mu.Lock()
	defer api.mu.Unlock()
	if code := api.enter("GetCommandQueueInfo"); !code.Ok() {
		return code
	}
	obj, found := api.lookup(queue, kindQueue)
	if !found {
		return status.InvalidCommandQueue
	}
	var attr []byte
	switch param {
	case QueueContext:
		attr = encodeHandles(obj.parent)
	case QueueDevice:
		attr = encodeHandles(obj.queueDev)
	case QueueReferenceCount:
		attr = encodeUint32(uint32(obj.refCount))
	case QueueProperties:
		attr = encodeUint64(obj.properties)
	default:
		return status.InvalidValue
	}
	return copyInfo(attr, value, sizeRet)
}

// GetProgramInfo queries an attribute of a program.
func (api *API) GetProgramInfo(program Handle, param uint32, value []byte, sizeRet *int) status.Code {
	api.mu.Lock()
	defer api.mu.Unlock()
	if code := api.enter("GetProgramInfo"); !code.Ok() {
		return code
	}
	obj, found := api.lookup(program, kindProgram)
	if !found {
		return status.InvalidProgram
	}
	var attr []byte
	switch param {
	case ProgramReferenceCount:
		attr = encodeUint32(uint32(obj.refCount))
	case ProgramContext:
		attr = encodeHandles(obj.parent)
	case ProgramNumDevices:
		attr = encodeUint32(uint32(len(obj.devices)))
	case ProgramDevices:
		attr = encodeHandles(obj.devices...)
	case ProgramSource:
		attr = encodeString(obj.source)
	default:
		return status.InvalidValue
	}
	return copyInfo(attr, value, sizeRet)
}

// GetProgramBuildInfo queries a build attribute of a program for one of its devices.
// Before BuildProgram, the build status is BuildNone and the log and options are empty strings.
func (api *API) GetProgramBuildInfo(program, device Handle, param uint32, value []byte, sizeRet *int) status.Code {
	api.mu.Lock()
	defer api.mu.Unlock()
	if code := api.enter("GetProgramBuildInfo"); !code.Ok() {
		return code
	}
	obj, found := api.lookup(program, kindProgram)
	if !found {
		return status.InvalidProgram
	}
	if !slices.Contains(obj.devices, device) {
		return status.InvalidDevice
	}
	build, built := obj.builds[device]
	if !built {
		build = &buildResult{status: BuildNone}
	}
	var attr []byte
	switch param {
	case ProgramBuildStatus:
		attr = encodeInt32(int32(build.status))
	case ProgramBuildOptions:
		attr = encodeString(build.options)
	case ProgramBuildLog:
		attr = encodeString(build.log)
	default:
		return status.InvalidValue
	}
	return copyInfo(attr, value, sizeRet)
}
