package compute

import (
	"github.com/gomlx/clwrap/driver"
	"github.com/gomlx/clwrap/status"
	"github.com/gomlx/clwrap/wrapper"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Program wraps a native program, created from source for all devices of a context.
//
// It holds a reference to its Context, released when the program is destroyed.
type Program struct {
	object
	ctx        *Context
	source     string
	buildQuery wrapper.BinaryQuery
}

// NewProgram creates a program from source for the devices of ctx. It still needs to be built.
// The caller owns the returned Program and must call Destroy.
func NewProgram(ctx *Context, source string) (*Program, error) {
	if ctx == nil {
		return nil, errors.New("NewProgram: nil context")
	}
	api := ctx.api
	h, code := api.CreateProgramWithSource(ctx.Handle(), source)
	if !code.Ok() {
		return nil, wrapper.NewError("NewProgram", code, "unable to create program in %s", ctx)
	}
	if err := ctx.Retain(); err != nil {
		api.ReleaseProgram(h)
		return nil, err
	}
	p, err := wrapper.AcquireAs(wrapper.Default, wrapper.Handle(h), func(w *wrapper.Wrapper) *Program {
		return &Program{
			object: newObject(w, api, "Program", api.GetProgramInfo),
			ctx:    ctx,
			source: source,
			buildQuery: func(h1, h2 wrapper.Handle, param uint32, value []byte, sizeRet *int) status.Code {
				return api.GetProgramBuildInfo(driver.Handle(h1), driver.Handle(h2), param, value, sizeRet)
			},
		}
	})
	if err != nil {
		api.ReleaseProgram(h)
		undo("NewProgram", ctx)
		return nil, err
	}
	return p, nil
}

// Destroy releases one reference to the program. The last one releases the native program and then
// the program's reference to its context.
func (p *Program) Destroy() error {
	_, err := p.Release(releaser(p.api.ReleaseProgram), func(*wrapper.Wrapper) {
		if err := p.ctx.Destroy(); err != nil {
			klog.Errorf("Failed to destroy %s of %s: %+v", p.ctx, p, err)
		}
		p.ctx = nil
		p.source = ""
	})
	return err
}

// Context of the program. It is owned by the program.
func (p *Program) Context() *Context { return p.ctx }

// Source the program was created from.
func (p *Program) Source() string { return p.source }

// Build compiles the program for the given devices, or for all devices of its context if none is given.
// On failure, the error carries the native status code (see wrapper.CodeOf), and the reason is in
// BuildLog.
func (p *Program) Build(options string, devices ...*Device) error {
	handles := make([]driver.Handle, len(devices))
	for ii, d := range devices {
		if d == nil {
			return errors.Errorf("Program.Build: device #%d is nil", ii)
		}
		handles[ii] = d.Handle()
	}
	if code := p.api.BuildProgram(p.Handle(), handles, options); !code.Ok() {
		return wrapper.NewError("Program.Build", code, "unable to build %s", p)
	}
	return nil
}

// BuildInfo returns the build attribute param of the program for dev.
//
// Build attributes change when the program is (re)built, so use useCache=false to read their
// current value.
func (p *Program) BuildInfo(dev *Device, param uint32, useCache bool) (*wrapper.Info, error) {
	var w2 *wrapper.Wrapper
	if dev != nil {
		w2 = dev.Wrapper
	}
	return wrapper.GetInfo(p.Wrapper, w2, param, p.buildQuery, useCache)
}

// BuildLog returns the current build log of the program for dev.
func (p *Program) BuildLog(dev *Device) (string, error) {
	info, err := p.BuildInfo(dev, driver.ProgramBuildLog, false)
	if err != nil {
		return "", err
	}
	return wrapper.StringOf(info), nil
}

// BuildStatus returns the current build status of the program for dev.
func (p *Program) BuildStatus(dev *Device) (driver.BuildStatus, error) {
	info, err := p.BuildInfo(dev, driver.ProgramBuildStatus, false)
	if err != nil {
		return driver.BuildNone, err
	}
	v, err := wrapper.ValueAs[int32](info)
	return driver.BuildStatus(v), err
}

// NumDevices returns the number of devices the program is associated with.
func (p *Program) NumDevices() (uint32, error) { return p.InfoUint32(driver.ProgramNumDevices) }
