// Package repokit carries the seams module repos are built against. Repos
// take a Queryer so the same code runs on a pool, a transaction, or a test
// fake
package repokit

import "handoff/internal/platform/store"

// Queryer is the read and write surface SQL repos run their statements on
type Queryer = store.RowQuerier

// TxRunner runs a function inside a transaction
type TxRunner = store.TxRunner
