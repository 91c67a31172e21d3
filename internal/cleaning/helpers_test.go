package cleaning

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/JonMunkholm/OrderClean/internal/orders"
)

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func testEnv() Env {
	return Env{Now: fixedNow}
}

func mustDecode(t *testing.T, data string) *orders.Table {
	t.Helper()
	tbl, err := orders.Decode(strings.NewReader(data))
	require.NoError(t, err)
	return tbl
}

// column returns the rendered values of one column.
func column(tbl *orders.Table, name string) []string {
	out := make([]string, tbl.Len())
	for i := range tbl.Orders {
		out[i] = tbl.Cell(i, name)
	}
	return out
}
