package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/model"
)

const loadOutputsQuery = `
SELECT
	tx_hash,
	output_index,
	account,
	minor,
	amount,
	state,
	height,
	unlock_height,
	output_key,
	key_image,
	tx_public_key,
	spent_by,
	spent_height
FROM wallet_outputs FINAL
WHERE wallet_id = ? AND is_deleted = 0
ORDER BY tx_hash ASC, output_index ASC`

// LoadOutputs returns the live outputs of a wallet.
func (r *Repository) LoadOutputs(ctx context.Context, walletID string) ([]model.Output, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("load_outputs", err, start)
	}()

	rows, err := r.conn.Query(ctx, loadOutputsQuery, walletID)
	if err != nil {
		return nil, fmt.Errorf("query outputs: %w", err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", cerr)
		}
	}()

	var outputs []model.Output
	for rows.Next() {
		var (
			out                                          model.Output
			txHash, state, key, keyImage, txKey, spentBy string
		)
		if err = rows.Scan(
			&txHash,
			&out.ID.Index,
			&out.Subaddress.Account,
			&out.Subaddress.Minor,
			&out.Amount,
			&state,
			&out.Height,
			&out.UnlockHeight,
			&key,
			&keyImage,
			&txKey,
			&spentBy,
			&out.SpentHeight,
		); err != nil {
			return nil, fmt.Errorf("scan output: %w", err)
		}
		if err = decodeOutput(&out, txHash, state, key, keyImage, txKey, spentBy); err != nil {
			return nil, err
		}
		outputs = append(outputs, out)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate outputs: %w", err)
	}
	return outputs, nil
}

func decodeOutput(out *model.Output, txHash, state, key, keyImage, txKey, spentBy string) error {
	var err error
	if out.ID.TxHash, err = parseHash(txHash); err != nil {
		return fmt.Errorf("output tx hash: %w", err)
	}
	if out.State, err = model.ParseSpentState(state); err != nil {
		return fmt.Errorf("output %s: %w", out.ID, err)
	}
	var k [model.PublicKeySize]byte
	if k, err = parseKey(key); err != nil {
		return fmt.Errorf("output %s key: %w", out.ID, err)
	}
	out.Key = model.PublicKey(k)
	if k, err = parseKey(keyImage); err != nil {
		return fmt.Errorf("output %s key image: %w", out.ID, err)
	}
	out.KeyImage = model.KeyImage(k)
	if k, err = parseKey(txKey); err != nil {
		return fmt.Errorf("output %s tx key: %w", out.ID, err)
	}
	out.TxPublicKey = model.PublicKey(k)
	if out.SpentBy, err = parseHash(spentBy); err != nil {
		return fmt.Errorf("output %s spender: %w", out.ID, err)
	}
	return nil
}
