package driver

// Attribute parameter ids, numbered as in OpenCL. They are the param values passed to the Get*Info
// entry points, and the keys under which wrappers cache the attributes.
const (
	PlatformProfile    uint32 = 0x0900
	PlatformVersion    uint32 = 0x0901
	PlatformName       uint32 = 0x0902
	PlatformVendor     uint32 = 0x0903
	PlatformExtensions uint32 = 0x0904
)

// Device attributes.
const (
	DeviceTypeParam             uint32 = 0x1000
	DeviceVendorID              uint32 = 0x1001
	DeviceMaxComputeUnits       uint32 = 0x1002
	DeviceMaxWorkItemDimensions uint32 = 0x1003
	DeviceMaxWorkGroupSize      uint32 = 0x1004
	DeviceMaxWorkItemSizes      uint32 = 0x1005
	DeviceMaxClockFrequency     uint32 = 0x100C
	DeviceAddressBits           uint32 = 0x100D
	DeviceMaxMemAllocSize       uint32 = 0x1010
	DeviceGlobalMemSize         uint32 = 0x101F
	DeviceLocalMemSize          uint32 = 0x1023
	DeviceEndianLittle          uint32 = 0x1026
	DeviceAvailable             uint32 = 0x1027
	DeviceCompilerAvailable     uint32 = 0x1028
	DeviceName                  uint32 = 0x102B
	DeviceVendor                uint32 = 0x102C
	DeviceDriverVersion         uint32 = 0x102D
	DeviceProfile               uint32 = 0x102E
	DeviceVersion               uint32 = 0x102F
	DeviceExtensions            uint32 = 0x1030
	DevicePlatform              uint32 = 0x1031
	DeviceOpenCLCVersion        uint32 = 0x103D
)

// Context attributes.
const (
	ContextReferenceCount uint32 = 0x1080
	ContextDevices        uint32 = 0x1081
	ContextProperties     uint32 = 0x1082
	ContextNumDevices     uint32 = 0x1083
)

// Command queue attributes.
const (
	QueueContext        uint32 = 0x1090
	QueueDevice         uint32 = 0x1091
	QueueReferenceCount uint32 = 0x1092
	QueueProperties     uint32 = 0x1093
)

// Program attributes.
const (
	ProgramReferenceCount uint32 = 0x1160
	ProgramContext        uint32 = 0x1161
	ProgramNumDevices     uint32 = 0x1162
	ProgramDevices        uint32 = 0x1163
	ProgramSource         uint32 = 0x1164
)

// Program build attributes, queried for a (program, device) pair with GetProgramBuildInfo.
const (
	ProgramBuildStatus  uint32 = 0x1181
	ProgramBuildOptions uint32 = 0x1182
	ProgramBuildLog     uint32 = 0x1183
)

// DeviceType is a bit field of device types.
type DeviceType uint64

const (
	DeviceTypeDefault     DeviceType = 1 << 0
	DeviceTypeCPU         DeviceType = 1 << 1
	DeviceTypeGPU         DeviceType = 1 << 2
	DeviceTypeAccelerator DeviceType = 1 << 3
	DeviceTypeAll         DeviceType = 0xFFFFFFFF
)

// BuildStatus is the value of the ProgramBuildStatus attribute (a 32-bit signed integer).
type BuildStatus int32

const (
	BuildSuccess    BuildStatus = 0
	BuildNone       BuildStatus = -1
	BuildError      BuildStatus = -2
	BuildInProgress BuildStatus = -3
)

// String implements fmt.Stringer.
func (s BuildStatus) String() string {
	switch s {
	case BuildSuccess:
		return "Success"
	case BuildNone:
		return "None"
	case BuildError:
		return "Error"
	case BuildInProgress:
		return "InProgress"
	}
	return "Unknown"
}

// QueueProfilingEnable is the queue property bit that enables profiling.
const QueueProfilingEnable uint64 = 1 << 1
