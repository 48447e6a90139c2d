// Package cart keeps an in-memory cart list eventually consistent with the
// server's cart while reflecting user actions as soon as the server has
// confirmed them.
//
// Every mutation is server-confirm-then-apply: the local list changes only
// after the remote call succeeds, so it never shows a state the server has
// not agreed to and no rollback logic exists. Reconciliation after Add uses
// a single rule: replace the line whose id matches the server's response,
// or append it. That tolerates the server merging quantities into an
// existing line without the client guessing the merge policy.
//
// Derived values (TotalQuantity, TotalAmount) are recomputed on every read
// and can never go stale relative to the list.
//
//	manager := cart.New(client)
//	if err := manager.Fetch(ctx); err != nil {
//	    // previous list intact
//	}
//	line, err := manager.Add(ctx, productID, 2, nil)
package cart
