package daemon

import "time"

const (
	methodGetHeight       = "get_height"
	methodGetBlocks       = "get_blocks_by_height"
	methodGetBlockHash    = "get_block_hash"
	methodSendRawTx       = "send_raw_transaction"
	methodGetFeeEstimate  = "get_fee_estimate"
	defaultCallTimeout    = 30 * time.Second
	defaultRPS            = 50
	defaultBreakerTrips   = 5
	defaultBreakerTimeout = 10 * time.Second
	// maxBlocksPerRequest bounds get_blocks_by_height.
	maxBlocksPerRequest = 1000
)
