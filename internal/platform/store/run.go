package store

import "context"

// RunInScan wraps ctx with the scan run id and calls fn inside the provided TxRunner
func RunInScan(ctx context.Context, tx TxRunner, runID string, fn func(ctx context.Context, q RowQuerier) error) error {
	ctx = WithRun(ctx, runID)
	return tx.Tx(ctx, func(q RowQuerier) error {
		return fn(ctx, q)
	})
}
