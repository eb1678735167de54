package hob_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firmworks/fspkit/hob"
	"github.com/firmworks/fspkit/internal/format"
	"github.com/firmworks/fspkit/internal/testutil"
)

func TestFindResourceFound(t *testing.T) {
	data := testutil.NewListBuilder().
		Resource(format.BootloaderTolumGUID, format.ResTypeMemoryReserved, 0x7FFFF000, 0x1000).
		Resource(format.FSPReservedMemoryGUID, format.ResTypeMemoryReserved, 0x7FBFF000, 0x400000).
		End()
	l := hob.NewList(data, listBase)

	d, ok, err := l.FindResource(format.FSPReservedMemoryGUID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, uint64(0x7FBFF000), d.PhysicalStart)
	assert.Equal(t, uint64(0x400000), d.ResourceLength)
}

func TestFindResourceAbsent(t *testing.T) {
	data := testutil.NewListBuilder().
		Resource(format.BootloaderTolumGUID, format.ResTypeMemoryReserved, 0x7FFFF000, 0x1000).
		End()
	l := hob.NewList(data, listBase)

	// Absence is a normal outcome, not an error.
	_, ok, err := l.FindResource(format.FSPReservedMemoryGUID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFindOnNilList(t *testing.T) {
	var l *hob.List
	_, ok, err := l.FindResource(format.FSPReservedMemoryGUID)
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = l.FindPayload(format.NonVolatileStorageGUID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFindOnCorruptList(t *testing.T) {
	// A corrupt record before the target makes the search fail; absence and
	// corruption must stay distinguishable.
	data := testutil.NewListBuilder().
		Raw(format.HOBTypeGUIDExtension, 4, nil).
		Bytes()
	l := hob.NewList(data, listBase)

	_, ok, err := l.FindResource(format.FSPReservedMemoryGUID)
	require.Error(t, err)
	assert.False(t, ok)
	assert.ErrorIs(t, err, format.ErrListCorrupt)

	_, _, err = l.FindPayload(format.NonVolatileStorageGUID)
	require.Error(t, err)
	assert.ErrorIs(t, err, format.ErrListCorrupt)
}

func TestFindPayloadFirstMatchWins(t *testing.T) {
	data := testutil.NewListBuilder().
		Payload(format.NonVolatileStorageGUID, []byte{0x11}).
		Payload(format.NonVolatileStorageGUID, []byte{0x22}).
		End()
	l := hob.NewList(data, listBase)

	p, ok, err := l.FindPayload(format.NonVolatileStorageGUID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte{0x11}, p.Data())
}

func TestFindPayloadSkipsOtherTypes(t *testing.T) {
	data := testutil.NewListBuilder().
		Resource(format.FSPReservedMemoryGUID, format.ResTypeMemoryReserved, 0x1000, 0x1000).
		Payload(format.SMBIOSMemoryInfoGUID, make([]byte, 16)).
		Payload(format.GraphicsInfoGUID, make([]byte, 0x30)).
		End()
	l := hob.NewList(data, listBase)

	p, ok, err := l.FindPayload(format.GraphicsInfoGUID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 0x30, p.DataLen())
}
