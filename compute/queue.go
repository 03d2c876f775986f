package compute

import (
	"github.com/gomlx/clwrap/driver"
	"github.com/gomlx/clwrap/wrapper"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Queue wraps a native command queue of one device of a context.
//
// It holds a reference to its Context and Device, released when the queue is destroyed.
type Queue struct {
	object
	ctx *Context
	dev *Device
}

// NewQueue creates a command queue for dev, which must be a device of ctx. properties is a bit field,
// currently only driver.QueueProfilingEnable is supported.
// The caller owns the returned Queue and must call Destroy.
func NewQueue(ctx *Context, dev *Device, properties uint64) (*Queue, error) {
	if ctx == nil || dev == nil {
		return nil, errors.New("NewQueue: context and device must be given")
	}
	api := ctx.api
	h, code := api.CreateCommandQueue(ctx.Handle(), dev.Handle(), properties)
	if !code.Ok() {
		return nil, wrapper.NewError("NewQueue", code, "unable to create queue for %s in %s", dev, ctx)
	}
	if err := ctx.Retain(); err != nil {
		api.ReleaseCommandQueue(h)
		return nil, err
	}
	if err := dev.Retain(); err != nil {
		api.ReleaseCommandQueue(h)
		undo("NewQueue", ctx)
		return nil, err
	}
	q, err := wrapper.AcquireAs(wrapper.Default, wrapper.Handle(h), func(w *wrapper.Wrapper) *Queue {
		return &Queue{object: newObject(w, api, "Queue", api.GetCommandQueueInfo), ctx: ctx, dev: dev}
	})
	if err != nil {
		api.ReleaseCommandQueue(h)
		undo("NewQueue", dev, ctx)
		return nil, err
	}
	return q, nil
}

// Destroy releases one reference to the queue. The last one releases the native queue, and then
// the queue's references to its context and device.
func (q *Queue) Destroy() error {
	_, err := q.Release(releaser(q.api.ReleaseCommandQueue), func(*wrapper.Wrapper) {
		if err := q.dev.Destroy(); err != nil {
			klog.Errorf("Failed to destroy %s of %s: %+v", q.dev, q, err)
		}
		if err := q.ctx.Destroy(); err != nil {
			klog.Errorf("Failed to destroy %s of %s: %+v", q.ctx, q, err)
		}
		q.dev, q.ctx = nil, nil
	})
	return err
}

// Context of the queue. It is owned by the queue.
func (q *Queue) Context() *Context { return q.ctx }

// Device of the queue. It is owned by the queue.
func (q *Queue) Device() *Device { return q.dev }

// Properties returns the properties bit field the queue was created with.
func (q *Queue) Properties() (uint64, error) { return q.InfoUint64(driver.QueueProperties) }

// ProfilingEnabled returns whether the queue was created with driver.QueueProfilingEnable.
func (q *Queue) ProfilingEnabled() (bool, error) {
	props, err := q.Properties()
	return props&driver.QueueProfilingEnable != 0, err
}
