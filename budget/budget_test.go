package budget

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var dec = decimal.NewFromFloat

func TestNew(t *testing.T) {
	assert.Equal(t, Limits{}, New())
}

func TestSetGet(t *testing.T) {
	l := New()
	_, ok := l.Get("Food")
	assert.False(t, ok)

	l.Set("Food", dec(1000))
	limit, ok := l.Get("Food")
	require.True(t, ok)
	assert.True(t, dec(1000).Equal(limit))

	l.Set("Food", dec(500))
	limit, _ = l.Get("Food")
	assert.True(t, dec(500).Equal(limit))

	_, ok = l.Get("food")
	assert.False(t, ok, "category names are case sensitive")

	l.Remove("Food")
	_, ok = l.Get("Food")
	assert.False(t, ok)
}

func TestSnapshot(t *testing.T) {
	l := New()
	assert.Nil(t, l.Snapshot("Rent"))

	l.Set("Rent", dec(150))
	snapshot := l.Snapshot("Rent")
	require.NotNil(t, snapshot)
	l.Set("Rent", dec(50))
	assert.True(t, dec(150).Equal(*snapshot), "snapshot must not follow later changes")
}

func TestExceeds(t *testing.T) {
	l := Limits{"Rent": dec(150)}
	for _, tc := range []struct {
		description string
		category    string
		amount      decimal.Decimal
		expected    bool
	}{
		{"under", "Rent", dec(100), false},
		{"equal", "Rent", dec(150), false},
		{"over", "Rent", dec(150.01), true},
		{"unconstrained", "Food", dec(1e6), false},
	} {
		t.Run(tc.description, func(t *testing.T) {
			assert.Equal(t, tc.expected, l.Exceeds(tc.category, tc.amount))
		})
	}
}

func TestAlert(t *testing.T) {
	a := Alert{Scope: CategoryScope, Category: "Food", Limit: dec(1000), Amount: dec(1700)}
	assert.Equal(t, "You have exceeded your budget of 1000 for Food expenses.", a.String())
	assert.True(t, dec(700).Equal(a.Over()))
}
