package txbuilder

const (
	// maxFeeRounds bounds re-selection while the fee grows with the input count.
	maxFeeRounds = 8
	txVersion    = 1
)
