//go:build !nogpu

package gpu

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/msdftext"
	"github.com/gogpu/msdftext/layout"
)

// InstanceStride is the encoded size of one glyph instance in bytes:
// position f32x2, size f32x2, uv f32x4, color f32x4.
const InstanceStride = 48

// Attribute offsets inside one encoded instance.
const (
	offsetPosition = 0
	offsetSize     = 8
	offsetUV       = 16
	offsetColor    = 32
)

// minInstanceCapacity is the smallest buffer allocated, in instances.
const minInstanceCapacity = 64

// InstanceLayout describes the encoding written by InstanceBuffer, one
// element per instance, starting at shader location base.
func InstanceLayout(base uint32) gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: InstanceStride,
		StepMode:    gputypes.VertexStepModeInstance,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x2, Offset: offsetPosition, ShaderLocation: base + 0}, // position
			{Format: gputypes.VertexFormatFloat32x2, Offset: offsetSize, ShaderLocation: base + 1},     // size
			{Format: gputypes.VertexFormatFloat32x4, Offset: offsetUV, ShaderLocation: base + 2},       // uv rect
			{Format: gputypes.VertexFormatFloat32x4, Offset: offsetColor, ShaderLocation: base + 3},    // color
		},
	}
}

// InstanceBuffer is a vertex buffer of glyph instances that only grows.
// Update rewrites the whole buffer; it reallocates only when the new
// instance count exceeds the capacity, doubling it.
//
// InstanceBuffer is NOT safe for concurrent use.
type InstanceBuffer struct {
	dev      *Device
	label    string
	buf      hal.Buffer
	capacity int
	count    int
	scratch  []byte
	grows    int
}

// NewInstanceBuffer creates an empty instance buffer. No device memory is
// allocated until the first non-empty Update.
func NewInstanceBuffer(dev *Device, label string) *InstanceBuffer {
	if label == "" {
		label = "msdf_glyph_instances"
	}
	return &InstanceBuffer{dev: dev, label: label}
}

// Update uploads instances, replacing the previous contents.
func (b *InstanceBuffer) Update(instances []layout.GlyphInstance) error {
	if b.dev == nil || b.dev.device == nil {
		return ErrNoDevice
	}
	b.count = 0
	if len(instances) == 0 {
		return nil
	}

	if len(instances) > b.capacity {
		if err := b.grow(len(instances)); err != nil {
			return err
		}
	}

	b.scratch = encodeInstances(b.scratch[:0], instances)
	b.dev.queue.WriteBuffer(b.buf, 0, b.scratch)
	b.count = len(instances)
	return nil
}

// grow replaces the buffer with one holding at least n instances.
func (b *InstanceBuffer) grow(n int) error {
	newCap := max(b.capacity*2, minInstanceCapacity)
	for newCap < n {
		newCap *= 2
	}

	buf, err := b.dev.device.CreateBuffer(&hal.BufferDescriptor{
		Label: b.label,
		Size:  uint64(newCap) * InstanceStride, //nolint:gosec // capacity is positive
		Usage: gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("gpu: create %s: %w", b.label, err)
	}
	if b.buf != nil {
		b.dev.device.DestroyBuffer(b.buf)
	}

	msdftext.Logger().Debug("gpu: instance buffer grown",
		"label", b.label, "from", b.capacity, "to", newCap)

	b.buf = buf
	b.capacity = newCap
	b.grows++
	return nil
}

// Count returns the number of instances written by the last Update.
func (b *InstanceBuffer) Count() int {
	return b.count
}

// Capacity returns the number of instances the buffer holds without
// reallocating.
func (b *InstanceBuffer) Capacity() int {
	return b.capacity
}

// Buffer returns the hal buffer, or nil before the first non-empty Update.
func (b *InstanceBuffer) Buffer() hal.Buffer {
	return b.buf
}

// Destroy releases the device buffer. The InstanceBuffer may be reused;
// the next Update allocates again.
func (b *InstanceBuffer) Destroy() {
	if b.buf != nil && b.dev != nil && b.dev.device != nil {
		b.dev.device.DestroyBuffer(b.buf)
	}
	b.buf = nil
	b.capacity = 0
	b.count = 0
}

// encodeInstances appends the little-endian encoding of instances to dst.
func encodeInstances(dst []byte, instances []layout.GlyphInstance) []byte {
	need := len(instances) * InstanceStride
	if cap(dst)-len(dst) < need {
		grown := make([]byte, len(dst), len(dst)+need)
		copy(grown, dst)
		dst = grown
	}
	start := len(dst)
	dst = dst[:start+need]

	for i := range instances {
		inst := &instances[i]
		buf := dst[start+i*InstanceStride : start+(i+1)*InstanceStride]
		putFloats(buf[offsetPosition:],
			inst.Position.X, inst.Position.Y)
		putFloats(buf[offsetSize:],
			inst.Size.X, inst.Size.Y)
		putFloats(buf[offsetUV:],
			inst.UV.UMin, inst.UV.VMin, inst.UV.UMax, inst.UV.VMax)
		putFloats(buf[offsetColor:],
			inst.Color.R, inst.Color.G, inst.Color.B, inst.Color.A)
	}
	return dst
}

func putFloats(buf []byte, vs ...float32) {
	for i, v := range vs {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
}
