//go:build !nogpu

// Package gpu moves MSDF atlases and glyph instances onto a wgpu/hal device.
//
// [Device] implements [atlas.TextureUploader], so a cache created with it
// uploads every atlas as a linear RGBA8 texture with its full mipmap chain:
//
//	dev, err := gpu.NewDeviceFromProvider(provider)
//	if err != nil {
//	    return err
//	}
//	cache, err := atlas.New(atlas.DefaultConfig(), dev)
//
// [InstanceBuffer] keeps the per-frame glyph instances in a grow-only
// vertex buffer laid out as described by [InstanceLayout]. Pipelines,
// shaders and draw submission belong to the caller.
//
// Build with -tags nogpu to exclude this package.
package gpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/msdftext"
)

// ErrNoDevice is returned when a Device has no hal device or queue.
var ErrNoDevice = errors.New("gpu: no device")

// Device wraps the hal device and queue used for uploads.
// Device does not own them and never destroys them.
type Device struct {
	device hal.Device
	queue  hal.Queue
}

// NewDevice wraps an existing hal device and queue.
func NewDevice(device hal.Device, queue hal.Queue) (*Device, error) {
	if device == nil || queue == nil {
		return nil, ErrNoDevice
	}
	return &Device{device: device, queue: queue}, nil
}

// NewDeviceFromProvider uses the device shared by an external provider
// (e.g., gogpu). The provider must also implement HalDevice() any and
// HalQueue() any returning hal.Device and hal.Queue.
func NewDeviceFromProvider(provider gpucontext.DeviceProvider) (*Device, error) {
	if provider == nil {
		return nil, fmt.Errorf("gpu: nil device provider")
	}
	return fromHalProvider(provider)
}

func fromHalProvider(provider any) (*Device, error) {
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, fmt.Errorf("gpu: provider does not expose HAL types")
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("gpu: provider HalDevice is not hal.Device")
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, fmt.Errorf("gpu: provider HalQueue is not hal.Queue")
	}
	msdftext.Logger().Info("gpu: using shared device")
	return &Device{device: device, queue: queue}, nil
}

// HalDevice returns the wrapped hal.Device.
func (d *Device) HalDevice() hal.Device {
	return d.device
}

// HalQueue returns the wrapped hal.Queue.
func (d *Device) HalQueue() hal.Queue {
	return d.queue
}
