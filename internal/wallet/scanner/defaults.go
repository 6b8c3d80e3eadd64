package scanner

const (
	defaultWorkerCount = 8
	// DefaultSpendableAge is the number of blocks an output waits before it can be spent.
	DefaultSpendableAge uint64 = 10
	// unlockTimeHeightLimit separates height-based unlock times from timestamps.
	unlockTimeHeightLimit uint64 = 500_000_000
)
