package ffi

import (
	"encoding/binary"
	"fmt"
	"math"
)

// ParamsVersion is the EffectParams schema version blur_lib expects.
const ParamsVersion uint32 = 1

// EffectParamsSize is the packed size of EffectParams_V1 on the wire.
const EffectParamsSize = 25

// Byte offsets inside the packed struct. These must match blur_lib.h exactly.
const (
	offStructVersion   = 0
	offIntensity       = 4
	offColorARGB       = 8
	offAnimate         = 12
	offAnimationMs     = 13
	offReservedFlags   = 17
	offReservedPadding = 21
)

// Default parameter values
const (
	DefaultIntensity float32 = 1.0
	DefaultColorARGB uint32  = 0x80000000 // half-transparent black
)

// EffectParams describes one blur request. The Go struct is never handed to
// native code directly; Encode produces the packed byte image instead, so the
// compiler's alignment rules cannot leak into the ABI.
type EffectParams struct {
	StructVersion uint32
	Intensity     float32
	ColorARGB     uint32
	Animate       bool
	AnimationMs   uint32
}

// DefaultEffectParams returns the parameters used when a caller overrides nothing.
func DefaultEffectParams() EffectParams {
	return EffectParams{
		StructVersion: ParamsVersion,
		Intensity:     DefaultIntensity,
		ColorARGB:     DefaultColorARGB,
	}
}

// NewEffectParams returns default parameters with intensity and color overridden.
func NewEffectParams(intensity float32, colorARGB uint32) EffectParams {
	p := DefaultEffectParams()
	p.Intensity = intensity
	p.ColorARGB = colorARGB
	return p
}

// Encode returns the packed little-endian representation of p.
// Reserved flags and padding are always zero.
func (p EffectParams) Encode() [EffectParamsSize]byte {
	var buf [EffectParamsSize]byte
	binary.LittleEndian.PutUint32(buf[offStructVersion:], p.StructVersion)
	binary.LittleEndian.PutUint32(buf[offIntensity:], math.Float32bits(p.Intensity))
	binary.LittleEndian.PutUint32(buf[offColorARGB:], p.ColorARGB)
	if p.Animate {
		buf[offAnimate] = 1
	}
	binary.LittleEndian.PutUint32(buf[offAnimationMs:], p.AnimationMs)
	return buf
}

// DecodeEffectParams parses a packed EffectParams image. Reserved bytes are
// checked but not interpreted.
func DecodeEffectParams(b []byte) (EffectParams, error) {
	if len(b) < EffectParamsSize {
		return EffectParams{}, fmt.Errorf("effect params: need %d bytes, got %d", EffectParamsSize, len(b))
	}
	p := EffectParams{
		StructVersion: binary.LittleEndian.Uint32(b[offStructVersion:]),
		Intensity:     math.Float32frombits(binary.LittleEndian.Uint32(b[offIntensity:])),
		ColorARGB:     binary.LittleEndian.Uint32(b[offColorARGB:]),
		Animate:       b[offAnimate] != 0,
		AnimationMs:   binary.LittleEndian.Uint32(b[offAnimationMs:]),
	}
	for _, r := range b[offReservedFlags:EffectParamsSize] {
		if r != 0 {
			return p, fmt.Errorf("effect params: reserved bytes must be zero")
		}
	}
	return p, nil
}
