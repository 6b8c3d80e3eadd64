// Package chain tracks how far the wallet has scanned and detects when the
// daemon's chain diverged from the blocks already scanned.
package chain

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/model"
)

// DefaultMaxRollbackDepth bounds how many scanned blocks a reorg may undo.
const DefaultMaxRollbackDepth = 100

// ErrHeightGap is returned when a block is recorded out of sequence.
var ErrHeightGap = errors.New("cursor height gap")

// HashLookup returns the daemon's block hash at height.
type HashLookup func(ctx context.Context, height uint64) (chainhash.Hash, error)

// Cursor is the wallet's scan position. Mutations must come from the single
// scanning goroutine; reads are safe from anywhere.
type Cursor struct {
	mu            sync.RWMutex
	restoreHeight uint64
	maxDepth      uint64
	// refs holds the last maxDepth+1 scanned blocks, contiguous and ascending.
	refs         []model.BlockRef
	daemonHeight uint64
}

// NewCursor creates a cursor that starts scanning at restoreHeight.
func NewCursor(restoreHeight, maxRollbackDepth uint64) *Cursor {
	if maxRollbackDepth == 0 {
		maxRollbackDepth = DefaultMaxRollbackDepth
	}
	return &Cursor{
		restoreHeight: restoreHeight,
		maxDepth:      maxRollbackDepth,
		daemonHeight:  restoreHeight,
	}
}

// Height is the number of blocks covered: the next height to scan.
func (c *Cursor) Height() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.height()
}

func (c *Cursor) height() uint64 {
	if len(c.refs) == 0 {
		return c.restoreHeight
	}
	return c.refs[len(c.refs)-1].Height + 1
}

// RestoreHeight is the first height the wallet ever scans.
func (c *Cursor) RestoreHeight() uint64 {
	return c.restoreHeight
}

// Tip returns the last scanned block.
func (c *Cursor) Tip() (model.BlockRef, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.refs) == 0 {
		return model.BlockRef{}, false
	}
	return c.refs[len(c.refs)-1], true
}

// DaemonHeight is the last chain height reported by the daemon.
func (c *Cursor) DaemonHeight() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.daemonHeight
}

// SetDaemonHeight records the daemon's chain height.
func (c *Cursor) SetDaemonHeight(h uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.daemonHeight = h
}

// Recent returns a copy of the retained block window.
func (c *Cursor) Recent() []model.BlockRef {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]model.BlockRef(nil), c.refs...)
}

// HashAt returns the recorded hash for a retained height.
func (c *Cursor) HashAt(height uint64) (chainhash.Hash, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i, ok := c.index(height)
	if !ok {
		return chainhash.Hash{}, false
	}
	return c.refs[i].Hash, true
}

func (c *Cursor) index(height uint64) (int, bool) {
	if len(c.refs) == 0 || height < c.refs[0].Height {
		return 0, false
	}
	i := height - c.refs[0].Height
	if i >= uint64(len(c.refs)) {
		return 0, false
	}
	return int(i), true
}

// AdvanceTo records hash as the block at height. Re-recording the same
// block is a no-op; a different hash for a recorded height is a mismatch.
func (c *Cursor) AdvanceTo(height uint64, hash chainhash.Hash) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i, ok := c.index(height); ok {
		if c.refs[i].Hash != hash {
			return fmt.Errorf("height %d recorded as %s, got %s: %w", height, c.refs[i].Hash, hash, model.ErrChainMismatch)
		}
		return nil
	}
	if next := c.height(); height != next {
		return fmt.Errorf("advance to %d, next height is %d: %w", height, next, ErrHeightGap)
	}

	c.refs = append(c.refs, model.BlockRef{Height: height, Hash: hash})
	if keep := int(c.maxDepth) + 1; len(c.refs) > keep {
		c.refs = append(c.refs[:0:0], c.refs[len(c.refs)-keep:]...)
	}
	if c.daemonHeight < height+1 {
		c.daemonHeight = height + 1
	}
	return nil
}

// DetectReorg checks whether the daemon still agrees with the scanned tip.
// daemonHashAtTip is the daemon's hash at the tip height and is ignored when
// the daemon chain no longer reaches that height. On divergence it walks the
// retained window downwards through hashAt and returns the height to resume
// scanning from, i.e. one past the highest block both sides agree on.
func (c *Cursor) DetectReorg(
	ctx context.Context,
	daemonHeight uint64,
	daemonHashAtTip chainhash.Hash,
	hashAt HashLookup,
) (target uint64, reorg bool, err error) {
	c.mu.RLock()
	refs := append([]model.BlockRef(nil), c.refs...)
	height := c.height()
	c.mu.RUnlock()

	if len(refs) == 0 {
		return height, false, nil
	}
	tip := refs[len(refs)-1]
	if daemonHeight > tip.Height && daemonHashAtTip == tip.Hash {
		return height, false, nil
	}

	target = refs[0].Height
	found := false
	for i := len(refs) - 1; i >= 0; i-- {
		ref := refs[i]
		if ref.Height >= daemonHeight {
			continue
		}
		h := daemonHashAtTip
		if ref.Height != tip.Height {
			if h, err = hashAt(ctx, ref.Height); err != nil {
				return 0, false, fmt.Errorf("daemon hash at %d: %w", ref.Height, err)
			}
		}
		if h == ref.Hash {
			target = ref.Height + 1
			found = true
			break
		}
	}
	if !found && refs[0].Height != c.restoreHeight {
		return 0, true, fmt.Errorf("no common block within %d retained blocks: %w", len(refs), model.ErrRollbackTooDeep)
	}
	if depth := height - target; depth > c.maxDepth {
		return 0, true, fmt.Errorf("rollback of %d blocks exceeds %d: %w", depth, c.maxDepth, model.ErrRollbackTooDeep)
	}
	return target, true, nil
}

// Rollback forgets every block at or above height.
func (c *Cursor) Rollback(height uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := sort.Search(len(c.refs), func(i int) bool { return c.refs[i].Height >= height })
	c.refs = c.refs[:n]
}

// Restore replaces the window with refs, typically loaded from storage.
func (c *Cursor) Restore(refs []model.BlockRef) error {
	sorted := append([]model.BlockRef(nil), refs...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Height < sorted[j].Height })
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Height != sorted[i-1].Height+1 {
			return fmt.Errorf("restore refs not contiguous at %d: %w", sorted[i].Height, ErrHeightGap)
		}
	}
	if len(sorted) > 0 && sorted[0].Height < c.restoreHeight {
		return fmt.Errorf("restore ref %d below restore height %d", sorted[0].Height, c.restoreHeight)
	}
	if keep := int(c.maxDepth) + 1; len(sorted) > keep {
		sorted = sorted[len(sorted)-keep:]
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.refs = sorted
	if h := c.height(); c.daemonHeight < h {
		c.daemonHeight = h
	}
	return nil
}
