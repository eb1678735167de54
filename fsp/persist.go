package fsp

import "github.com/firmworks/fspkit/internal/format"

// Persist locates the saved configuration payload one more time after a
// validated invocation and exposes it through the boot context for an
// external collaborator to write to durable storage before the next boot.
//
// The payload bytes pass through untransformed: the exposed pointer is the
// payload's own address in the hand-off buffer and only the size is rounded
// up to the backing store's 16-byte write granularity. An absent payload is
// not an error; the persisted size is simply zero and later boots fall back
// to full configuration.
func (s *Stage) Persist(ctx *BootContext) {
	p, ok, err := s.hobs.FindPayload(format.NonVolatileStorageGUID)
	if err != nil || !ok {
		ctx.DataToSave = nil
		ctx.DataToSaveAddr = 0
		ctx.DataToSaveSize = 0
		return
	}
	ctx.DataToSave = p.Data()
	ctx.DataToSaveAddr = p.DataAddr()
	ctx.DataToSaveSize = format.Align16(p.DataLen())
}
