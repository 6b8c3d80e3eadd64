// Package notify fans wallet events out to registered listeners.
package notify

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/model"
	"github.com/lightningnetwork/lnd/queue"
	"go.uber.org/zap"
)

var (
	// ErrDuplicateListener is returned when a listener subscribes twice.
	ErrDuplicateListener = errors.New("listener already subscribed")
	// ErrUncomparableListener is returned for listeners that cannot be identified for Unsubscribe.
	ErrUncomparableListener = errors.New("listener type is not comparable")
)

const outBufferSize = 64

type eventKind uint8

const (
	syncProgress eventKind = iota
	outputReceived
	outputSpent
	newBlock
	balancesChanged
	syncError
)

func (k eventKind) String() string {
	switch k {
	case syncProgress:
		return "sync_progress"
	case outputReceived:
		return "output_received"
	case outputSpent:
		return "output_spent"
	case newBlock:
		return "new_block"
	case balancesChanged:
		return "balances_changed"
	case syncError:
		return "sync_error"
	default:
		return fmt.Sprintf("event(%d)", uint8(k))
	}
}

type event struct {
	kind     eventKind
	progress model.SyncProgress
	output   model.Output
	height   uint64
	account  uint32
	balance  uint64
	unlocked uint64
	err      error
}

// Hub queues events without bound and delivers them from a single
// dispatcher goroutine, in subscription order. Notify calls never wait for
// listeners.
type Hub struct {
	logger *zap.Logger

	mu        sync.RWMutex
	listeners []Listener
	stopped   bool

	queue *queue.ConcurrentQueue
	done  chan struct{}
	once  sync.Once
}

// NewHub starts the dispatcher. Call Stop to release it.
func NewHub(logger *zap.Logger) *Hub {
	h := &Hub{
		logger: logger.Named("notify"),
		queue:  queue.NewConcurrentQueue(outBufferSize),
		done:   make(chan struct{}),
	}
	h.queue.Start()
	go h.dispatch()
	return h
}

// Subscribe appends l to the delivery order.
func (h *Hub) Subscribe(l Listener) error {
	if l == nil || !reflect.TypeOf(l).Comparable() {
		return ErrUncomparableListener
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, existing := range h.listeners {
		if existing == l {
			return ErrDuplicateListener
		}
	}
	h.listeners = append(h.listeners, l)
	return nil
}

// Unsubscribe removes l and reports whether it was subscribed. Events queued
// before the call may still reach l.
func (h *Hub) Unsubscribe(l Listener) bool {
	if l == nil || !reflect.TypeOf(l).Comparable() {
		return false
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	for i, existing := range h.listeners {
		if existing == l {
			h.listeners = append(h.listeners[:i:i], h.listeners[i+1:]...)
			return true
		}
	}
	return false
}

func (h *Hub) NotifySyncProgress(p model.SyncProgress) {
	h.enqueue(event{kind: syncProgress, progress: p})
}

func (h *Hub) NotifyOutputReceived(out model.Output) {
	h.enqueue(event{kind: outputReceived, output: out})
}

func (h *Hub) NotifyOutputSpent(out model.Output) {
	h.enqueue(event{kind: outputSpent, output: out})
}

func (h *Hub) NotifyNewBlock(height uint64) {
	h.enqueue(event{kind: newBlock, height: height})
}

func (h *Hub) NotifyBalancesChanged(account uint32, balance, unlocked uint64) {
	h.enqueue(event{kind: balancesChanged, account: account, balance: balance, unlocked: unlocked})
}

func (h *Hub) NotifySyncError(err error) {
	h.enqueue(event{kind: syncError, err: err})
}

// Stop delivers every queued event and then stops the dispatcher. Events
// notified after Stop are dropped.
func (h *Hub) Stop() {
	h.once.Do(func() {
		h.mu.Lock()
		h.stopped = true
		close(h.queue.ChanIn())
		h.mu.Unlock()
	})
	<-h.done
}

func (h *Hub) enqueue(ev event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.stopped {
		h.logger.Debug("event dropped after stop", zap.Stringer("event", ev.kind))
		return
	}
	h.queue.ChanIn() <- ev
}

func (h *Hub) dispatch() {
	defer close(h.done)

	for item := range h.queue.ChanOut() {
		ev, ok := item.(event)
		if !ok {
			continue
		}
		h.mu.RLock()
		listeners := append([]Listener(nil), h.listeners...)
		h.mu.RUnlock()

		for _, l := range listeners {
			h.deliver(l, ev)
		}
	}
}

func (h *Hub) deliver(l Listener, ev event) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("listener panicked",
				zap.Stringer("event", ev.kind),
				zap.String("listener", fmt.Sprintf("%T", l)),
				zap.Any("panic", r),
			)
		}
	}()

	var err error
	switch ev.kind {
	case syncProgress:
		err = l.OnSyncProgress(ev.progress)
	case outputReceived:
		err = l.OnOutputReceived(ev.output)
	case outputSpent:
		err = l.OnOutputSpent(ev.output)
	case newBlock:
		err = l.OnNewBlock(ev.height)
	case balancesChanged:
		err = l.OnBalancesChanged(ev.account, ev.balance, ev.unlocked)
	case syncError:
		err = l.OnSyncError(ev.err)
	}
	if err != nil {
		h.logger.Warn("listener failed",
			zap.Stringer("event", ev.kind),
			zap.String("listener", fmt.Sprintf("%T", l)),
			zap.Error(err),
		)
	}
}
