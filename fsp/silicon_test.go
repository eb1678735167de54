package fsp_test

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firmworks/fspkit/fsp"
	"github.com/firmworks/fspkit/internal/format"
	"github.com/firmworks/fspkit/internal/testutil"
)

func graphicsPayload() []byte {
	p := make([]byte, 0x30)
	binary.LittleEndian.PutUint64(p[0x00:], 0xC0000000) // framebuffer base
	binary.LittleEndian.PutUint32(p[0x08:], 0x7E9000)   // framebuffer size
	binary.LittleEndian.PutUint32(p[0x10:], 1920)
	binary.LittleEndian.PutUint32(p[0x14:], 1080)
	binary.LittleEndian.PutUint32(p[0x2C:], 1920)
	return p
}

func graphicsStage(t *testing.T, mod *fakeModule) *fsp.Stage {
	t.Helper()
	spec := testutil.DefaultImageSpec()
	spec.ImageAttribute = format.FIHAttrGraphicsSupport
	im, err := fsp.OpenImage(testutil.BuildImage(spec))
	require.NoError(t, err)
	s, _, _ := newTestStage(t, mod)
	s.Image = im
	return s
}

func TestSiliconInit(t *testing.T) {
	data := testutil.NewListBuilder().
		Resource(format.FSPReservedMemoryGUID, format.ResTypeMemoryReserved, fspBase, reservedSize).
		Resource(format.BootloaderTolumGUID, format.ResTypeMemoryReserved, tolumBase, 0x1000).
		Payload(format.SMBIOSMemoryInfoGUID, make([]byte, 64)).
		Payload(format.NonVolatileStorageGUID, make([]byte, 24)).
		Payload(format.GraphicsInfoGUID, graphicsPayload()).
		End()
	mod := &fakeModule{hobData: data, hobBase: fspBase}
	s := graphicsStage(t, mod)

	var order []string
	s.Hooks.SoCSiliconInit = func(upd []byte) { order = append(order, "soc"); upd[0] = 0x33 }
	s.Hooks.BoardSiliconInit = func(upd []byte) { order = append(order, "board") }

	require.NoError(t, s.RamInit(&fsp.BootContext{}))
	require.NoError(t, s.SiliconInit())

	assert.Equal(t, []string{"soc", "board"}, order)
	require.Len(t, mod.silUPD, format.SiliconInitUPDSize)
	assert.Equal(t, byte(0x33), mod.silUPD[0])

	g, ok := s.Graphics()
	require.True(t, ok)
	assert.Equal(t, uint64(0xC0000000), g.FrameBufferBase)
	assert.Equal(t, uint32(0x7E9000), g.FrameBufferSize)
	assert.Equal(t, uint32(1920), g.HorizontalResolution)
	assert.Equal(t, uint32(1080), g.VerticalResolution)
	assert.Equal(t, uint32(1920), g.PixelsPerScanLine)
}

func TestSiliconInitFailureHalts(t *testing.T) {
	mod := &fakeModule{
		hobData:   goodHOBData(make([]byte, 24)),
		hobBase:   fspBase,
		silStatus: fsp.Status(0x80000003),
	}
	s, _, posts := newTestStage(t, mod)

	require.NoError(t, s.RamInit(&fsp.BootContext{}))
	err := s.SiliconInit()
	require.Error(t, err)
	halt, ok := fsp.AsHalt(err)
	require.True(t, ok)
	assert.Equal(t, fsp.PostHWInitFailure, halt.Code)
	assert.Contains(t, *posts, fsp.PostSiliconInit)
}

func TestSiliconInitNoGraphicsSupport(t *testing.T) {
	// Payload present but the header does not advertise graphics: the
	// lookup is skipped entirely.
	data := testutil.NewListBuilder().
		Resource(format.FSPReservedMemoryGUID, format.ResTypeMemoryReserved, fspBase, reservedSize).
		Resource(format.BootloaderTolumGUID, format.ResTypeMemoryReserved, tolumBase, 0x1000).
		Payload(format.SMBIOSMemoryInfoGUID, make([]byte, 64)).
		Payload(format.NonVolatileStorageGUID, make([]byte, 24)).
		Payload(format.GraphicsInfoGUID, graphicsPayload()).
		End()
	mod := &fakeModule{hobData: data, hobBase: fspBase}
	s, _, _ := newTestStage(t, mod)

	require.NoError(t, s.RamInit(&fsp.BootContext{}))
	require.NoError(t, s.SiliconInit())

	_, ok := s.Graphics()
	assert.False(t, ok)
}

func TestSiliconInitAbsentGraphicsPayload(t *testing.T) {
	// Header advertises graphics but the module published nothing usable;
	// that degrades display bring-up, never boot.
	mod := &fakeModule{hobData: goodHOBData(make([]byte, 24)), hobBase: fspBase}
	s := graphicsStage(t, mod)

	require.NoError(t, s.RamInit(&fsp.BootContext{}))
	require.NoError(t, s.SiliconInit())

	_, ok := s.Graphics()
	assert.False(t, ok)
}

func TestSiliconInitUnwiredStage(t *testing.T) {
	var s fsp.Stage
	err := s.SiliconInit()
	require.Error(t, err)
	halt, ok := fsp.AsHalt(err)
	require.True(t, ok)
	assert.Equal(t, fsp.PostHWInitFailure, halt.Code)
}
