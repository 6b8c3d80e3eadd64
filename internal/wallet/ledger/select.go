package ledger

import (
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/model"
)

// SelectOutputsForSpend picks outputs of account that cover amount at the
// given chain height. Older outputs are preferred; the oldest-first prefix
// that covers amount is then thinned from the newest end while it still
// covers amount. Locked and reserved outputs are never selected.
func (l *Ledger) SelectOutputsForSpend(account uint32, amount, height uint64) ([]model.Output, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var candidates []model.Output
	for _, out := range l.outputs {
		if out.Subaddress.Account == account && out.Spendable(height) {
			candidates = append(candidates, out)
		}
	}
	sortByAge(candidates)

	var (
		sum  uint64
		take int
	)
	for take < len(candidates) && sum < amount {
		sum += candidates[take].Amount
		take++
	}
	if sum < amount {
		return nil, fmt.Errorf("account %d has %d unlocked, need %d: %w", account, sum, amount, model.ErrInsufficientFunds)
	}

	selected := candidates[:take:take]
	for i := len(selected) - 1; i >= 0; i-- {
		if sum-selected[i].Amount >= amount {
			sum -= selected[i].Amount
			selected = append(selected[:i], selected[i+1:]...)
		}
	}
	return selected, nil
}
