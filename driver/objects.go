package driver

import (
	"slices"
	"strings"

	"github.com/gomlx/clwrap/status"
	"k8s.io/klog/v2"
)

// ReleasePlatform is a no-op for valid platforms: platforms are owned by the runtime.
func (api *API) ReleasePlatform(platform Handle) status.Code {
	api.mu.Lock()
	defer api.mu.Unlock()
	if code := api.enter("ReleasePlatform"); !code.Ok() {
		return code
	}
	if _, found := api.lookup(platform, kindPlatform); !found {
		return status.InvalidPlatform
	}
	return status.Success
}

// ReleaseDevice is a no-op for valid devices: root devices are owned by the runtime.
func (api *API) ReleaseDevice(device Handle) status.Code {
	api.mu.Lock()
	defer api.mu.Unlock()
	if code := api.enter("ReleaseDevice"); !code.Ok() {
		return code
	}
	if _, found := api.lookup(device, kindDevice); !found {
		return status.InvalidDevice
	}
	return status.Success
}

// CreateContext creates a context for the given devices, with a native reference count of 1.
// All devices must be available.
func (api *API) CreateContext(devices []Handle) (Handle, status.Code) {
	api.mu.Lock()
	defer api.mu.Unlock()
	if code := api.enter("CreateContext"); !code.Ok() {
		return 0, code
	}
	if len(devices) == 0 {
		return 0, status.InvalidValue
	}
	for _, d := range devices {
		dObj, found := api.lookup(d, kindDevice)
		if !found {
			return 0, status.InvalidDevice
		}
		if !dObj.device.Available {
			return 0, status.DeviceNotAvailable
		}
	}
	h := newHandle()
	api.objects[h] = &object{kind: kindContext, refCount: 1, devices: slices.Clone(devices)}
	klog.V(2).Infof("driver: created context %#x with %d devices", uintptr(h), len(devices))
	return h, status.Success
}

// RetainContext increments the native reference count of a context.
func (api *API) RetainContext(context Handle) status.Code {
	return api.retain("RetainContext", context, kindContext, status.InvalidContext)
}

// ReleaseContext decrements the native reference count of a context, destroying it at 0.
func (api *API) ReleaseContext(context Handle) status.Code {
	return api.release("ReleaseContext", context, kindContext, status.InvalidContext)
}

// CreateCommandQueue creates a command queue for device, which must be one of the devices of context.
// The queue holds a reference to its context.
func (api *API) CreateCommandQueue(context, device Handle, properties uint64) (Handle, status.Code) {
	api.mu.Lock()
	defer api.mu.Unlock()
	if code := api.enter("CreateCommandQueue"); !code.Ok() {
		return 0, code
	}
	cObj, found := api.lookup(context, kindContext)
	if !found {
		return 0, status.InvalidContext
	}
	if !slices.Contains(cObj.devices, device) {
		return 0, status.InvalidDevice
	}
	if properties&^QueueProfilingEnable != 0 {
		return 0, status.InvalidQueueProperties
	}
	h := newHandle()
	api.objects[h] = &object{kind: kindQueue, refCount: 1, parent: context, queueDev: device, properties: properties}
	cObj.refCount++
	return h, status.Success
}

// RetainCommandQueue increments the native reference count of a command queue.
func (api *API) RetainCommandQueue(queue Handle) status.Code {
	return api.retain("RetainCommandQueue", queue, kindQueue, status.InvalidCommandQueue)
}

// ReleaseCommandQueue decrements the native reference count of a command queue, destroying it at 0.
func (api *API) ReleaseCommandQueue(queue Handle) status.Code {
	return api.release("ReleaseCommandQueue", queue, kindQueue, status.InvalidCommandQueue)
}

// CreateProgramWithSource creates a program for all devices of context. The program holds a
// reference to its context.
func (api *API) CreateProgramWithSource(context Handle, source string) (Handle, status.Code) {
	api.mu.Lock()
	defer api.mu.Unlock()
	if code := api.enter("CreateProgramWithSource"); !code.Ok() {
		return 0, code
	}
	cObj, found := api.lookup(context, kindContext)
	if !found {
		return 0, status.InvalidContext
	}
	if source == "" {
		return 0, status.InvalidValue
	}
	h := newHandle()
	api.objects[h] = &object{
		kind:     kindProgram,
		refCount: 1,
		parent:   context,
		devices:  slices.Clone(cObj.devices),
		source:   source,
		builds:   make(map[Handle]*buildResult),
	}
	cObj.refCount++
	return h, status.Success
}

// BuildProgram "compiles" the program for the given devices (all devices of the program if empty).
//
// The simulated compiler fails on any source line starting with "#error", reporting the line in the
// build log. It returns status.BuildProgramFailure if the build failed for any device, and
// status.CompilerNotAvailable if a device has no compiler.
func (api *API) BuildProgram(program Handle, devices []Handle, options string) status.Code {
	api.mu.Lock()
	defer api.mu.Unlock()
	if code := api.enter("BuildProgram"); !code.Ok() {
		return code
	}
	pObj, found := api.lookup(program, kindProgram)
	if !found {
		return status.InvalidProgram
	}
	if len(devices) == 0 {
		devices = pObj.devices
	}
	for _, d := range devices {
		if !slices.Contains(pObj.devices, d) {
			return status.InvalidDevice
		}
		if !api.objects[d].device.CompilerAvailable {
			return status.CompilerNotAvailable
		}
	}

	var errorLines []string
	for _, line := range strings.Split(pObj.source, "\n") {
		if trimmed := strings.TrimSpace(line); strings.HasPrefix(trimmed, "#error") {
			errorLines = append(errorLines, trimmed)
		}
	}
	result := status.Success
	for _, d := range devices {
		build := &buildResult{status: BuildSuccess, options: options}
		deviceName := api.objects[d].device.Name
		if len(errorLines) > 0 {
			build.status = BuildError
			build.log = deviceName + ": error: " + strings.Join(errorLines, "\n"+deviceName+": error: ")
			result = status.BuildProgramFailure
		} else {
			build.log = deviceName + ": build succeeded"
		}
		pObj.builds[d] = build
	}
	return result
}

// RetainProgram increments the native reference count of a program.
func (api *API) RetainProgram(program Handle) status.Code {
	return api.retain("RetainProgram", program, kindProgram, status.InvalidProgram)
}

// ReleaseProgram decrements the native reference count of a program, destroying it at 0.
func (api *API) ReleaseProgram(program Handle) status.Code {
	return api.release("ReleaseProgram", program, kindProgram, status.InvalidProgram)
}

func (api *API) retain(entryPoint string, h Handle, kind objectKind, invalid status.Code) status.Code {
	api.mu.Lock()
	defer api.mu.Unlock()
	if code := api.enter(entryPoint); !code.Ok() {
		return code
	}
	obj, found := api.lookup(h, kind)
	if !found {
		return invalid
	}
	obj.refCount++
	return status.Success
}

func (api *API) release(entryPoint string, h Handle, kind objectKind, invalid status.Code) status.Code {
	api.mu.Lock()
	defer api.mu.Unlock()
	if code := api.enter(entryPoint); !code.Ok() {
		return code
	}
	obj, found := api.lookup(h, kind)
	if !found {
		return invalid
	}
	api.decRef(h, obj)
	return status.Success
}

// decRef decrements the native reference count of obj, destroying it (and releasing its reference
// to its context, for queues and programs) when it reaches 0. api.mu must be locked.
func (api *API) decRef(h Handle, obj *object) {
	obj.refCount--
	if obj.refCount > 0 {
		return
	}
	delete(api.objects, h)
	klog.V(2).Infof("driver: destroyed object %#x", uintptr(h))
	if obj.kind == kindQueue || obj.kind == kindProgram {
		if parent, found := api.objects[obj.parent]; found {
			api.decRef(obj.parent, parent)
		}
	}
}
