package fsp

// SleepState is the platform sleep state the current boot is coming out of.
type SleepState uint8

const (
	// SleepS0 is a cold or warm boot with no retained memory.
	SleepS0 SleepState = 0
	// SleepS3 is suspend-to-RAM: memory contents were retained and must
	// not be re-trained.
	SleepS3 SleepState = 3
	// SleepS5 is soft-off; equivalent to a cold boot for memory purposes.
	SleepS5 SleepState = 5
)

// BootContext carries prior-boot facts into one stage invocation and the
// persistence instructions back out. It is constructed by the caller,
// consumed once, and its data-to-persist fields are populated as outputs.
type BootContext struct {
	// PrevSleepState is the sleep state the platform is waking from.
	PrevSleepState SleepState

	// SavedData is the configuration payload persisted by a previous boot,
	// or nil when none is available. Supplying it enables the fast path
	// that reuses prior training results.
	SavedData []byte

	// DataToSave is set after a validated invocation to the saved
	// configuration payload the next boot should persist, aliasing the
	// hand-off buffer. Nil when the module published none.
	DataToSave []byte

	// DataToSaveAddr is the physical address of DataToSave's first byte.
	DataToSaveAddr uint64

	// DataToSaveSize is len(DataToSave) rounded up to a 16-byte boundary,
	// the granularity the backing store writes in. Zero when there is
	// nothing to persist; that is not an error, the next boot simply runs
	// full configuration.
	DataToSaveSize int
}

// Resuming reports whether this boot must preserve memory contents.
func (c *BootContext) Resuming() bool {
	return c.PrevSleepState == SleepS3
}

// HasSavedData reports whether a prior boot's configuration payload was
// supplied. An empty slice counts as absent: there is nothing for the module
// to reuse, so mode selection and the saved-config check must agree on it.
func (c *BootContext) HasSavedData() bool {
	return len(c.SavedData) > 0
}
