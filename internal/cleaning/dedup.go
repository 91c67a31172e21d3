package cleaning

import "github.com/JonMunkholm/OrderClean/internal/orders"

// removeDuplicates drops rows identical to an earlier row in every column,
// keeping the first occurrence.
func removeDuplicates(t *orders.Table, _ Env) (*orders.Table, int) {
	keys := t.RowKeys()
	seen := make(map[string]struct{}, len(keys))

	kept := t.Orders[:0]
	for i, key := range keys {
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, t.Orders[i])
	}

	removed := len(t.Orders) - len(kept)
	clear(t.Orders[len(kept):])
	t.Orders = kept
	return t, removed
}
