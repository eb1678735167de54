package fsp

import (
	"github.com/firmworks/fspkit/internal/buf"
	"github.com/firmworks/fspkit/internal/format"
)

// GraphicsInfo is the decoded graphics payload published by the module after
// silicon init when it brought up the display.
type GraphicsInfo struct {
	FrameBufferBase      uint64
	FrameBufferSize      uint32
	HorizontalResolution uint32
	VerticalResolution   uint32
	PixelsPerScanLine    uint32
}

// Graphics payload layout (EFI_PEI_GRAPHICS_INFO_HOB):
//
//	Offset  Size  Field
//	0x00    8     FrameBufferBase
//	0x08    4     FrameBufferSize
//	0x0C    4     GraphicsMode.Version
//	0x10    4     GraphicsMode.HorizontalResolution
//	0x14    4     GraphicsMode.VerticalResolution
//	0x18    4     GraphicsMode.PixelFormat
//	0x1C    16    GraphicsMode.PixelInformation
//	0x2C    4     GraphicsMode.PixelsPerScanLine
const (
	gfxFrameBufferBaseOff = 0x00
	gfxFrameBufferSizeOff = 0x08
	gfxHorizontalResOff   = 0x10
	gfxVerticalResOff     = 0x14
	gfxPixelsPerLineOff   = 0x2C

	gfxMinSize = 0x30
)

// SiliconInit runs the silicon init stage: configuration resolution and
// copy, customization hooks, module invocation, and graphics payload lookup.
// The hand-off records located after memory init remain owned by the module;
// any records the silicon phase publishes appear in the same list.
//
// Any returned error is a *HaltError; boot must not continue past one.
func (s *Stage) SiliconInit() error {
	if s.Image == nil || s.Module == nil {
		return haltf(PostHWInitFailure, "silicon init: stage not fully wired")
	}

	defaults, err := s.Image.SiliconInitUPD()
	if err != nil {
		return err
	}

	upd := make([]byte, len(defaults))
	copy(upd, defaults)

	if s.Hooks.SoCSiliconInit != nil {
		s.Hooks.SoCSiliconInit(upd)
	}
	if s.Hooks.BoardSiliconInit != nil {
		s.Hooks.BoardSiliconInit(upd)
	}

	s.post(PostSiliconInit)
	status := s.Module.SiliconInit(upd)
	if !status.Success() {
		return haltf(PostHWInitFailure, "silicon init failed with status %#08x", uint32(status))
	}

	s.graphics = nil
	if s.Image.Header().GraphicsSupported() {
		if g, ok := s.locateGraphics(); ok {
			s.graphics = &g
		}
	}
	return nil
}

// Graphics returns the framebuffer description published by silicon init.
// ok is false when the module advertised no graphics support or published no
// usable payload; that only degrades display bring-up, never boot.
func (s *Stage) Graphics() (GraphicsInfo, bool) {
	if s.graphics == nil {
		return GraphicsInfo{}, false
	}
	return *s.graphics, true
}

func (s *Stage) locateGraphics() (GraphicsInfo, bool) {
	p, ok, err := s.hobs.FindPayload(format.GraphicsInfoGUID)
	if err != nil || !ok {
		return GraphicsInfo{}, false
	}
	data := p.Data()
	if len(data) < gfxMinSize {
		return GraphicsInfo{}, false
	}
	return GraphicsInfo{
		FrameBufferBase:      buf.U64LE(data[gfxFrameBufferBaseOff:]),
		FrameBufferSize:      buf.U32LE(data[gfxFrameBufferSizeOff:]),
		HorizontalResolution: buf.U32LE(data[gfxHorizontalResOff:]),
		VerticalResolution:   buf.U32LE(data[gfxVerticalResOff:]),
		PixelsPerScanLine:    buf.U32LE(data[gfxPixelsPerLineOff:]),
	}, true
}
