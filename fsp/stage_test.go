package fsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firmworks/fspkit/cbmem"
	"github.com/firmworks/fspkit/fsp"
	"github.com/firmworks/fspkit/hob"
	"github.com/firmworks/fspkit/internal/format"
	"github.com/firmworks/fspkit/internal/testutil"
)

const (
	topOfRAM     = uint64(0x80000000)
	tolumBase    = uint64(0x7FFFF000)
	fspBase      = uint64(0x7FBFF000)
	reservedSize = uint64(0x400000)
)

// fakeModule is a scriptable stand-in for the external vendor binary.
type fakeModule struct {
	memStatus fsp.Status
	silStatus fsp.Status
	hobData   []byte // raw hand-off buffer produced on memory init success
	hobBase   uint64

	memParams *fsp.MemoryInitParams
	silUPD    []byte
}

func (m *fakeModule) MemoryInit(p *fsp.MemoryInitParams) fsp.Status {
	m.memParams = p
	if m.memStatus.Success() {
		p.HOBList = hob.NewList(m.hobData, m.hobBase)
	}
	return m.memStatus
}

func (m *fakeModule) SiliconInit(upd []byte) fsp.Status {
	m.silUPD = upd
	return m.silStatus
}

// goodHOBData builds the hand-off buffer a well-behaved module produces when
// its reserved block was carved at fspBase.
func goodHOBData(nvs []byte) []byte {
	return testutil.NewListBuilder().
		Resource(format.FSPReservedMemoryGUID, format.ResTypeMemoryReserved, fspBase, reservedSize).
		Resource(format.BootloaderTolumGUID, format.ResTypeMemoryReserved, tolumBase, 0x1000).
		Payload(format.SMBIOSMemoryInfoGUID, make([]byte, 64)).
		Payload(format.NonVolatileStorageGUID, nvs).
		End()
}

func newTestStage(t *testing.T, mod *fakeModule) (*fsp.Stage, *cbmem.Table, *[]fsp.PostCode) {
	t.Helper()
	im, err := fsp.OpenImage(testutil.BuildImage(testutil.DefaultImageSpec()))
	require.NoError(t, err)

	tbl := cbmem.New(topOfRAM)
	var posts []fsp.PostCode
	s := &fsp.Stage{
		Image:  im,
		Module: mod,
		Acct:   tbl,
		Post:   func(c fsp.PostCode) { posts = append(posts, c) },
	}
	return s, tbl, &posts
}

func TestRamInitCleanBoot(t *testing.T) {
	nvs := make([]byte, 24)
	for i := range nvs {
		nvs[i] = byte(i)
	}
	mod := &fakeModule{hobData: goodHOBData(nvs), hobBase: fspBase}
	s, tbl, posts := newTestStage(t, mod)

	ctx := &fsp.BootContext{PrevSleepState: fsp.SleepS0}
	require.NoError(t, s.RamInit(ctx))

	// The module saw a full-config invocation with the bookkeeping overhead
	// reported as the reserved-region size and no saved data.
	require.NotNil(t, mod.memParams)
	assert.Equal(t, fsp.ModeFullConfig, mod.memParams.Runtime.BootMode)
	assert.Equal(t, tbl.Overhead(), mod.memParams.Runtime.BootLoaderTolumSize)
	assert.Nil(t, mod.memParams.NvsBuffer)

	// Accounting tracked the reserved block exactly where the module
	// reported it.
	addr, ok := tbl.Find(fsp.ReservedMemoryBlockID)
	require.True(t, ok)
	assert.Equal(t, fspBase, addr)

	// Persistence: payload passes through by reference, size rounded up to
	// the 16-byte write granularity.
	assert.Equal(t, nvs, ctx.DataToSave)
	assert.Equal(t, 32, ctx.DataToSaveSize)
	p, ok, err := s.HOBs().FindPayload(format.NonVolatileStorageGUID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, p.DataAddr(), ctx.DataToSaveAddr)

	assert.Equal(t, []fsp.PostCode{fsp.PostMemoryInit, fsp.PostMemoryInitDone}, *posts)
}

func TestRamInitFastBoot(t *testing.T) {
	saved := []byte{0xCA, 0xFE}
	mod := &fakeModule{hobData: goodHOBData(make([]byte, 24)), hobBase: fspBase}
	s, _, _ := newTestStage(t, mod)

	ctx := &fsp.BootContext{PrevSleepState: fsp.SleepS0, SavedData: saved}
	require.NoError(t, s.RamInit(ctx))

	assert.Equal(t, fsp.ModeNoConfigChange, mod.memParams.Runtime.BootMode)
	assert.Equal(t, saved, mod.memParams.NvsBuffer)
}

func TestRamInitResume(t *testing.T) {
	nvs := make([]byte, 32)
	mod := &fakeModule{hobData: goodHOBData(nvs), hobBase: fspBase}
	s, tbl, _ := newTestStage(t, mod)

	// The retained table from the suspended boot still tracks the block.
	_, err := tbl.Add(fsp.ReservedMemoryBlockID, reservedSize)
	require.NoError(t, err)

	ctx := &fsp.BootContext{PrevSleepState: fsp.SleepS3, SavedData: []byte{1}}
	require.NoError(t, s.RamInit(ctx))

	// Resume dominates the fast path even with saved data present.
	assert.Equal(t, fsp.ModeResumeFromSleep, mod.memParams.Runtime.BootMode)

	// The retained block was recovered, not rebuilt.
	addr, ok := tbl.Find(fsp.ReservedMemoryBlockID)
	require.True(t, ok)
	assert.Equal(t, fspBase, addr)

	// An already-aligned payload persists at its exact size.
	assert.Equal(t, nvs, ctx.DataToSave)
	assert.Equal(t, 32, ctx.DataToSaveSize)
}

func TestRamInitResumeRecoveryLost(t *testing.T) {
	mod := &fakeModule{hobData: goodHOBData(make([]byte, 24)), hobBase: fspBase}
	s, _, _ := newTestStage(t, mod)

	// Nothing retained: recovery must fail and the boot must halt rather
	// than rebuild memory under a resume.
	ctx := &fsp.BootContext{PrevSleepState: fsp.SleepS3}
	err := s.RamInit(ctx)
	require.Error(t, err)
	halt, ok := fsp.AsHalt(err)
	require.True(t, ok)
	assert.Equal(t, fsp.PostRAMFailure, halt.Code)
}

func TestRamInitModuleFailure(t *testing.T) {
	// A corrupt hand-off buffer alongside the failure status proves the
	// consistency checks never ran: the halt is the module's status, not a
	// verification verdict.
	mod := &fakeModule{
		memStatus: fsp.Status(0x80000007),
		hobData:   testutil.NewListBuilder().Raw(format.HOBTypeGUIDExtension, 4, nil).Bytes(),
		hobBase:   fspBase,
	}
	s, _, posts := newTestStage(t, mod)

	err := s.RamInit(&fsp.BootContext{})
	require.Error(t, err)
	halt, ok := fsp.AsHalt(err)
	require.True(t, ok)
	assert.Equal(t, fsp.PostRAMFailure, halt.Code)
	assert.Contains(t, halt.Msg, "0x80000007")

	assert.Nil(t, s.HOBs())
	assert.Equal(t, []fsp.PostCode{fsp.PostMemoryInit, fsp.PostMemoryInitDone}, *posts)
}

func TestRamInitSuccessWithoutHOBList(t *testing.T) {
	// Success status but no hand-off list is a contract violation in its
	// own right.
	mod := &fakeModule{hobData: nil, hobBase: fspBase}
	s, _, _ := newTestStage(t, mod)

	err := s.RamInit(&fsp.BootContext{})
	require.Error(t, err)
	halt, ok := fsp.AsHalt(err)
	require.True(t, ok)
	assert.Equal(t, fsp.PostRAMFailure, halt.Code)
}

func TestRamInitVerificationFailure(t *testing.T) {
	// Leave out the boundary descriptor and the topology payload: both
	// findings must surface in one aggregate halt message.
	data := testutil.NewListBuilder().
		Resource(format.FSPReservedMemoryGUID, format.ResTypeMemoryReserved, fspBase, reservedSize).
		Payload(format.NonVolatileStorageGUID, make([]byte, 16)).
		End()
	mod := &fakeModule{hobData: data, hobBase: fspBase}
	s, _, _ := newTestStage(t, mod)

	err := s.RamInit(&fsp.BootContext{})
	require.Error(t, err)
	halt, ok := fsp.AsHalt(err)
	require.True(t, ok)
	assert.Equal(t, fsp.PostInvalidVendorBinary, halt.Code)
	assert.Contains(t, halt.Msg, "boundary")
	assert.Contains(t, halt.Msg, "memory-info")
}

func TestRamInitHooksSeeWorkingCopy(t *testing.T) {
	mod := &fakeModule{hobData: goodHOBData(make([]byte, 24)), hobBase: fspBase}
	s, _, _ := newTestStage(t, mod)

	var order []string
	s.Hooks.SoCMemoryInit = func(ctx *fsp.BootContext, upd []byte) {
		order = append(order, "soc")
		upd[0] = 0x11
	}
	s.Hooks.BoardMemoryInit = func(ctx *fsp.BootContext, upd []byte) {
		order = append(order, "board")
		assert.Equal(t, byte(0x11), upd[0])
		upd[0] = 0x22
	}

	require.NoError(t, s.RamInit(&fsp.BootContext{}))
	assert.Equal(t, []string{"soc", "board"}, order)

	// The module saw the customized copy; the image defaults are untouched.
	assert.Equal(t, byte(0x22), mod.memParams.Runtime.UPDData[0])
	defaults, err := s.Image.MemoryInitUPD()
	require.NoError(t, err)
	assert.Equal(t, byte(0xA5), defaults[0])
}

func TestRamInitUnwiredStage(t *testing.T) {
	var s fsp.Stage
	err := s.RamInit(&fsp.BootContext{})
	require.Error(t, err)
	halt, ok := fsp.AsHalt(err)
	require.True(t, ok)
	assert.Equal(t, fsp.PostRAMFailure, halt.Code)

	err = (&fsp.Stage{}).RamInit(nil)
	require.Error(t, err)
}

func TestPersistAbsentPayload(t *testing.T) {
	data := testutil.NewListBuilder().
		Resource(format.FSPReservedMemoryGUID, format.ResTypeMemoryReserved, fspBase, reservedSize).
		Resource(format.BootloaderTolumGUID, format.ResTypeMemoryReserved, tolumBase, 0x1000).
		Payload(format.SMBIOSMemoryInfoGUID, make([]byte, 64)).
		End()
	mod := &fakeModule{hobData: data, hobBase: fspBase}
	s, _, _ := newTestStage(t, mod)

	// Saved data supplied, so the missing payload is tolerated by the
	// checks; persistence then has nothing to expose.
	ctx := &fsp.BootContext{SavedData: []byte{1}}
	require.NoError(t, s.RamInit(ctx))
	assert.Nil(t, ctx.DataToSave)
	assert.Zero(t, ctx.DataToSaveAddr)
	assert.Zero(t, ctx.DataToSaveSize)
}
