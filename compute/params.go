package compute

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gomlx/clwrap/driver"
	"github.com/gomlx/clwrap/wrapper"
	"github.com/pkg/errors"
)

// ValueKind is how the bytes of an attribute value are decoded and formatted.
type ValueKind int

//go:generate go tool enumer -type=ValueKind -trimprefix=Kind params.go

const (
	KindString ValueKind = iota
	KindUint32
	KindUint64
	KindSizeT
	KindSizeTList
	KindBool
	KindMemSize
	KindDeviceType
	KindHandle
)

// DeviceParam describes one device attribute for inspection tools.
type DeviceParam struct {
	// Name is the attribute name without the CL_DEVICE_ prefix, e.g. "MAX_COMPUTE_UNITS".
	Name        string
	Param       uint32
	Kind        ValueKind
	Basic       bool
	Description string
}

// DeviceParams is the catalog of known device attributes, sorted by name.
var DeviceParams = []DeviceParam{
	{"ADDRESS_BITS", driver.DeviceAddressBits, KindUint32, false, "Address space size in bits"},
	{"AVAILABLE", driver.DeviceAvailable, KindBool, true, "Is device available"},
	{"COMPILER_AVAILABLE", driver.DeviceCompilerAvailable, KindBool, false, "Is a compiler available for device"},
	{"DRIVER_VERSION", driver.DeviceDriverVersion, KindString, false, "Driver version"},
	{"ENDIAN_LITTLE", driver.DeviceEndianLittle, KindBool, false, "Is device little endian"},
	{"EXTENSIONS", driver.DeviceExtensions, KindString, false, "Extensions supported by the device"},
	{"GLOBAL_MEM_SIZE", driver.DeviceGlobalMemSize, KindMemSize, true, "Global memory size"},
	{"LOCAL_MEM_SIZE", driver.DeviceLocalMemSize, KindMemSize, true, "Local memory size"},
	{"MAX_CLOCK_FREQUENCY", driver.DeviceMaxClockFrequency, KindUint32, true, "Maximum clock frequency (MHz)"},
	{"MAX_COMPUTE_UNITS", driver.DeviceMaxComputeUnits, KindUint32, true, "Number of compute units in device"},
	{"MAX_MEM_ALLOC_SIZE", driver.DeviceMaxMemAllocSize, KindMemSize, false, "Max size of memory object allocation"},
	{"MAX_WORK_GROUP_SIZE", driver.DeviceMaxWorkGroupSize, KindSizeT, true, "Maximum work-items in a work-group"},
	{"MAX_WORK_ITEM_DIMENSIONS", driver.DeviceMaxWorkItemDimensions, KindUint32, false, "Maximum work-item dimensions"},
	{"MAX_WORK_ITEM_SIZES", driver.DeviceMaxWorkItemSizes, KindSizeTList, false, "Maximum work-items in each dimension of a work-group"},
	{"NAME", driver.DeviceName, KindString, true, "Name of device"},
	{"OPENCL_C_VERSION", driver.DeviceOpenCLCVersion, KindString, false, "Highest OpenCL C version supported by the compiler"},
	{"PLATFORM", driver.DevicePlatform, KindHandle, false, "The platform of the device"},
	{"PROFILE", driver.DeviceProfile, KindString, false, "Profile name supported by the device"},
	{"TYPE", driver.DeviceTypeParam, KindDeviceType, true, "Type of device"},
	{"VENDOR", driver.DeviceVendor, KindString, true, "Vendor of device"},
	{"VENDOR_ID", driver.DeviceVendorID, KindUint32, false, "Unique device vendor identifier"},
	{"VERSION", driver.DeviceVersion, KindString, true, "OpenCL software driver version"},
}

// BasicDeviceParams returns the catalog entries flagged as basic.
func BasicDeviceParams() []DeviceParam {
	var basic []DeviceParam
	for _, p := range DeviceParams {
		if p.Basic {
			basic = append(basic, p)
		}
	}
	return basic
}

// FindDeviceParams returns the catalog entries whose name starts with prefix, case-insensitive.
// The CL_DEVICE_ prefix is optional.
func FindDeviceParams(prefix string) []DeviceParam {
	prefix = strings.ToUpper(strings.TrimSpace(prefix))
	prefix = strings.TrimPrefix(prefix, "CL_DEVICE_")
	if prefix == "" {
		return nil
	}
	var found []DeviceParam
	for _, p := range DeviceParams {
		if strings.HasPrefix(p.Name, prefix) {
			found = append(found, p)
		}
	}
	return found
}

// LookupDeviceParam returns the catalog entry with exactly the given name (case-insensitive,
// CL_DEVICE_ prefix optional).
func LookupDeviceParam(name string) (DeviceParam, bool) {
	name = strings.TrimPrefix(strings.ToUpper(strings.TrimSpace(name)), "CL_DEVICE_")
	idx, found := slices.BinarySearchFunc(DeviceParams, name, func(p DeviceParam, name string) int {
		return strings.Compare(p.Name, name)
	})
	if !found {
		return DeviceParam{}, false
	}
	return DeviceParams[idx], true
}

// Format decodes and formats the value of an attribute according to the Kind of the parameter.
func (p DeviceParam) Format(info *wrapper.Info) (string, error) {
	switch p.Kind {
	case KindString:
		return wrapper.StringOf(info), nil
	case KindUint32:
		v, err := wrapper.ValueAs[uint32](info)
		return fmt.Sprint(v), err
	case KindUint64:
		v, err := wrapper.ValueAs[uint64](info)
		return fmt.Sprint(v), err
	case KindSizeT:
		v, err := wrapper.ValueAs[uintptr](info)
		return fmt.Sprint(v), err
	case KindSizeTList:
		sizes, err := sizeTs(info)
		if err != nil {
			return "", err
		}
		parts := make([]string, len(sizes))
		for ii, s := range sizes {
			parts[ii] = fmt.Sprint(s)
		}
		return strings.Join(parts, ", "), nil
	case KindBool:
		v, err := wrapper.ValueAs[uint32](info)
		if v != 0 {
			return "Yes", err
		}
		return "No", err
	case KindMemSize:
		v, err := wrapper.ValueAs[uint64](info)
		return FormatMemSize(v), err
	case KindDeviceType:
		v, err := wrapper.ValueAs[uint64](info)
		return FormatDeviceType(driver.DeviceType(v)), err
	case KindHandle:
		handles, err := handlesOf(info)
		if err != nil || len(handles) == 0 {
			return "", err
		}
		return fmt.Sprintf("%#x", uintptr(handles[0])), nil
	}
	return "", errors.Errorf("unknown value kind %s for %s", p.Kind, p.Name)
}

// FormatMemSize formats a number of bytes with a binary unit, e.g. "16.0 GiB".
func FormatMemSize(bytes uint64) string {
	const units = "KMGTPE"
	if bytes < 1024 {
		return fmt.Sprintf("%d B", bytes)
	}
	value := float64(bytes) / 1024
	unit := 0
	for value >= 1024 && unit < len(units)-1 {
		value /= 1024
		unit++
	}
	return fmt.Sprintf("%.1f %ciB", value, units[unit])
}

// FormatDeviceType lists the type names set in deviceType, e.g. "GPU" or "CPU|DEFAULT".
func FormatDeviceType(deviceType driver.DeviceType) string {
	if deviceType == driver.DeviceTypeAll {
		return "ALL"
	}
	var names []string
	for _, t := range []struct {
		bit  driver.DeviceType
		name string
	}{
		{driver.DeviceTypeCPU, "CPU"},
		{driver.DeviceTypeGPU, "GPU"},
		{driver.DeviceTypeAccelerator, "ACCELERATOR"},
		{driver.DeviceTypeDefault, "DEFAULT"},
	} {
		if deviceType&t.bit != 0 {
			names = append(names, t.name)
		}
	}
	if len(names) == 0 {
		return fmt.Sprintf("UNKNOWN(%#x)", uint64(deviceType))
	}
	return strings.Join(names, "|")
}
