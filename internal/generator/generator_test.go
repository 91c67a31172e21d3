package generator

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JonMunkholm/OrderClean/internal/cleaning"
	"github.com/JonMunkholm/OrderClean/internal/orders"
)

var refNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func testConfig() Config {
	return Config{Rows: 250, Seed: 42, Now: refNow}
}

func encode(t *testing.T, tbl *orders.Table) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, orders.Encode(&buf, tbl))
	return buf.String()
}

func TestGenerate_Deterministic(t *testing.T) {
	a := Generate(testConfig())
	b := Generate(testConfig())

	assert.Equal(t, encode(t, a), encode(t, b))

	cfg := testConfig()
	cfg.Seed = 7
	assert.NotEqual(t, encode(t, a), encode(t, Generate(cfg)))
}

func TestGenerate_Shape(t *testing.T) {
	tbl := Generate(testConfig())

	require.Equal(t, 250, tbl.Len())
	assert.Len(t, tbl.Header, len(orders.Columns))
	assert.Empty(t, tbl.ExtraColumns())

	for i, o := range tbl.Orders {
		assert.True(t, o.OrderID.Valid, "row %d order_id", i)
		assert.True(t, o.CustomerName.Valid, "row %d customer_name", i)
		assert.True(t, o.Category.Valid, "row %d category", i)
		assert.False(t, o.OrderDate.Valid, "row %d date should be raw text", i)
	}
}

func TestGenerate_InjectsDefects(t *testing.T) {
	tbl := Generate(testConfig())
	is := Inspect(tbl)

	assert.Positive(t, is.MissingEmails)
	assert.Positive(t, is.MissingPhones)
	assert.Positive(t, is.DuplicateRows)
	assert.Greater(t, is.CategoryVariants, 4)
	assert.Greater(t, is.StatusVariants, 4)
	assert.Greater(t, is.ProductVariants, 11)

	// Every defect class gives the pipeline work to do.
	res := cleaning.New(cleaning.WithClock(func() time.Time { return refNow })).
		Run(context.Background(), tbl.Clone())

	for _, step := range []cleaning.StepName{
		cleaning.StepRemoveDuplicates,
		cleaning.StepCleanWhitespace,
		cleaning.StepStandardizeEmails,
		cleaning.StepStandardizeDates,
		cleaning.StepCleanQuantities,
		cleaning.StepStandardizeCategories,
		cleaning.StepStandardizeStatus,
	} {
		assert.Positive(t, res.Log.Count(step), "step %s", step)
	}
	assert.Less(t, res.Table.Len(), tbl.Len())
}

func TestGenerate_RoundTripsThroughCSV(t *testing.T) {
	tbl := Generate(Config{Rows: 40, Seed: 1, Now: refNow})

	data := encode(t, tbl)
	reloaded, err := orders.Decode(bytes.NewBufferString(data))
	require.NoError(t, err)

	assert.Equal(t, data, encode(t, reloaded))
}

func TestInspect(t *testing.T) {
	tbl, err := orders.Decode(bytes.NewBufferString(
		"order_id,email,phone,product_name,category,status\n" +
			"1,a@x.com,,Lamp,home,P\n" +
			"1,a@x.com,,Lamp,home,P\n" +
			"2,,555,lamp,Home,Pending\n"))
	require.NoError(t, err)

	is := Inspect(tbl)

	assert.Equal(t, Issues{
		MissingEmails:    1,
		MissingPhones:    2,
		MissingPrices:    3,
		MissingDates:     3,
		DuplicateRows:    1,
		ProductVariants:  2,
		CategoryVariants: 2,
		StatusVariants:   2,
	}, is)
}
