/*
 *	Copyright 2024 Jan Pfeifer
 *
 *	Licensed under the Apache License, Version 2.0 (the "License");
 *	you may not use this file except in compliance with the License.
 *	You may obtain a copy of the License at
 *
 *	http://www.apache.org/licenses/LICENSE-2.0
 *
 *	Unless required by applicable law or agreed to in writing, software
 *	distributed under the License is distributed on an "AS IS" BASIS,
 *	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *	See the License for the specific language governing permissions and
 *	limitations under the License.
 */

// Package driver is an in-process simulation of a native compute runtime (an OpenCL-like ICD).
//
// It hands out opaque handles for platforms, devices, contexts, command queues and programs,
// answers attribute queries with the native two-call protocol (probe the size with a nil buffer,
// then fill a buffer of that size), and keeps native reference counts for the objects it creates.
// Every entry point returns a status.Code.
//
// The platforms and devices it exposes are described by a Topology, by default the built-in one,
// or the YAML file named by the CLWRAP_TOPOLOGY environment variable.
//
// For tests, InjectFault makes the next call to an entry point fail, and Calls counts the calls
// made to each entry point.
package driver

import (
	"os"
	"sync"
	"sync/atomic"

	"github.com/gomlx/clwrap/status"
	"k8s.io/klog/v2"
)

// TopologyEnv is the name of the environment variable with the path to the YAML topology used by
// Default.
const TopologyEnv = "CLWRAP_TOPOLOGY"

// Handle is an opaque native object handle. 0 is never a valid handle.
type Handle uintptr

// nextHandle is shared by all API instances, so handles are unique in the process.
var nextHandle atomic.Uintptr

func newHandle() Handle {
	// Spaced like pointers to 16-byte aligned objects, it makes them easier to tell apart from counts.
	return Handle(0x1000 + nextHandle.Add(1)*0x10)
}

type objectKind int

const (
	kindPlatform objectKind = iota
	kindDevice
	kindContext
	kindQueue
	kindProgram
)

// object is the native side of a handle.
type object struct {
	kind     objectKind
	refCount int

	platform *PlatformSpec
	device   *DeviceSpec
	parent   Handle // Platform of a device; context of a queue or program.

	devices    []Handle // Devices of a context, a program or a platform.
	queueDev   Handle
	properties uint64
	source     string
	builds     map[Handle]*buildResult
}

type buildResult struct {
	status  BuildStatus
	options string
	log     string
}

// API is one simulated native runtime. It is safe for concurrent use.
type API struct {
	mu        sync.Mutex
	objects   map[Handle]*object
	platforms []Handle
	faults    map[string]status.Code
	calls     map[string]int
}

// New creates a simulated runtime exposing the platforms and devices of topology.
func New(topology *Topology) *API {
	api := &API{
		objects: make(map[Handle]*object),
		faults:  make(map[string]status.Code),
		calls:   make(map[string]int),
	}
	for pIdx := range topology.Platforms {
		pSpec := &topology.Platforms[pIdx]
		pHandle := newHandle()
		pObj := &object{kind: kindPlatform, platform: pSpec}
		api.objects[pHandle] = pObj
		api.platforms = append(api.platforms, pHandle)
		for dIdx := range pSpec.Devices {
			dHandle := newHandle()
			api.objects[dHandle] = &object{kind: kindDevice, device: &pSpec.Devices[dIdx], parent: pHandle}
			pObj.devices = append(pObj.devices, dHandle)
		}
	}
	return api
}

var (
	defaultAPI     *API
	defaultAPIOnce sync.Once
)

// Default returns the process-wide simulated runtime. It is created on first use, from the topology
// file named by $CLWRAP_TOPOLOGY if set, or from the built-in topology otherwise.
// If the topology file can't be loaded, the error is logged and the built-in topology is used.
func Default() *API {
	defaultAPIOnce.Do(func() {
		topology := DefaultTopology()
		if path, found := os.LookupEnv(TopologyEnv); found && path != "" {
			loaded, err := LoadTopology(path)
			if err != nil {
				klog.Errorf("Using built-in driver topology: %+v", err)
			} else {
				topology = loaded
			}
		}
		defaultAPI = New(topology)
	})
	return defaultAPI
}

// enter records a call to the entry point and returns the injected fault for it, if any.
// It must be called with api.mu locked.
func (api *API) enter(entryPoint string) status.Code {
	api.calls[entryPoint]++
	if code, found := api.faults[entryPoint]; found {
		delete(api.faults, entryPoint)
		klog.V(1).Infof("driver: injected fault %s in %s", code.Describe(), entryPoint)
		return code
	}
	return status.Success
}

// InjectFault makes the next call to entryPoint (e.g. "GetDeviceInfo" or "ReleaseContext") fail
// with code.
func (api *API) InjectFault(entryPoint string, code status.Code) {
	api.mu.Lock()
	defer api.mu.Unlock()
	api.faults[entryPoint] = code
}

// Calls returns the number of calls made to entryPoint so far.
func (api *API) Calls(entryPoint string) int {
	api.mu.Lock()
	defer api.mu.Unlock()
	return api.calls[entryPoint]
}

// LiveObjects returns the number of contexts, queues and programs not yet released.
func (api *API) LiveObjects() int {
	api.mu.Lock()
	defer api.mu.Unlock()
	count := 0
	for _, obj := range api.objects {
		if obj.kind != kindPlatform && obj.kind != kindDevice {
			count++
		}
	}
	return count
}

// lookup returns the object for h if it exists and is of the given kind.
func (api *API) lookup(h Handle, kind objectKind) (*object, bool) {
	obj, found := api.objects[h]
	if !found || obj.kind != kind {
		return nil, false
	}
	return obj, true
}

// PlatformIDs returns the handles of all platforms.
func (api *API) PlatformIDs() ([]Handle, status.Code) {
	api.mu.Lock()
	defer api.mu.Unlock()
	if code := api.enter("PlatformIDs"); !code.Ok() {
		return nil, code
	}
	return append([]Handle(nil), api.platforms...), status.Success
}

// DeviceIDs returns the handles of the devices of the platform matching the typeMask.
// It returns status.DeviceNotFound if no device matches.
func (api *API) DeviceIDs(platform Handle, typeMask DeviceType) ([]Handle, status.Code) {
	api.mu.Lock()
	defer api.mu.Unlock()
	if code := api.enter("DeviceIDs"); !code.Ok() {
		return nil, code
	}
	pObj, found := api.lookup(platform, kindPlatform)
	if !found {
		return nil, status.InvalidPlatform
	}
	if typeMask == 0 {
		return nil, status.InvalidDeviceType
	}
	var devices []Handle
	for _, d := range pObj.devices {
		dObj := api.objects[d]
		// The first device of a platform is its default device.
		if typeMask == DeviceTypeAll || typeMask&dObj.device.deviceType() != 0 ||
			(typeMask&DeviceTypeDefault != 0 && d == pObj.devices[0]) {
			devices = append(devices, d)
		}
	}
	if len(devices) == 0 {
		return nil, status.DeviceNotFound
	}
	return devices, status.Success
}
