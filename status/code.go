// Package status enumerates the status codes reported by the native compute API.
//
// Codes follow the OpenCL numbering: Success is 0 and every failure is negative.
// Their String() method returns the Go constant name (generated by enumer), which is also
// used as the human-readable description of the code in error messages.
package status

import "fmt"

// Code is a status code returned by every native API entry point.
type Code int32

//go:generate go tool enumer -type=Code code.go

const (
	Success                            Code = 0
	DeviceNotFound                     Code = -1
	DeviceNotAvailable                 Code = -2
	CompilerNotAvailable               Code = -3
	MemObjectAllocationFailure         Code = -4
	OutOfResources                     Code = -5
	OutOfHostMemory                    Code = -6
	ProfilingInfoNotAvailable          Code = -7
	MemCopyOverlap                     Code = -8
	ImageFormatMismatch                Code = -9
	ImageFormatNotSupported            Code = -10
	BuildProgramFailure                Code = -11
	MapFailure                         Code = -12
	MisalignedSubBufferOffset          Code = -13
	ExecStatusErrorForEventsInWaitList Code = -14
	InvalidValue                       Code = -30
	InvalidDeviceType                  Code = -31
	InvalidPlatform                    Code = -32
	InvalidDevice                      Code = -33
	InvalidContext                     Code = -34
	InvalidQueueProperties             Code = -35
	InvalidCommandQueue                Code = -36
	InvalidHostPtr                     Code = -37
	InvalidMemObject                   Code = -38
	InvalidImageFormatDescriptor       Code = -39
	InvalidImageSize                   Code = -40
	InvalidSampler                     Code = -41
	InvalidBinary                      Code = -42
	InvalidBuildOptions                Code = -43
	InvalidProgram                     Code = -44
	InvalidProgramExecutable           Code = -45
	InvalidKernelName                  Code = -46
	InvalidKernelDefinition            Code = -47
	InvalidKernel                      Code = -48
	InvalidArgIndex                    Code = -49
	InvalidArgValue                    Code = -50
	InvalidArgSize                     Code = -51
	InvalidKernelArgs                  Code = -52
	InvalidWorkDimension               Code = -53
	InvalidWorkGroupSize               Code = -54
	InvalidWorkItemSize                Code = -55
	InvalidGlobalOffset                Code = -56
	InvalidEventWaitList               Code = -57
	InvalidEvent                       Code = -58
	InvalidOperation                   Code = -59
	InvalidGLObject                    Code = -60
	InvalidBufferSize                  Code = -61
	InvalidMipLevel                    Code = -62
	InvalidGlobalWorkSize              Code = -63
	InvalidProperty                    Code = -64
)

// Ok returns whether the code reports success.
func (i Code) Ok() bool {
	return i == Success
}

// Describe returns "<name> (<value>)", e.g. "InvalidValue (-30)". Unknown codes are still
// printed with their numeric value.
func (i Code) Describe() string {
	if !i.IsACode() {
		return fmt.Sprintf("unknown status (%d)", int32(i))
	}
	return fmt.Sprintf("%s (%d)", i, int32(i))
}
