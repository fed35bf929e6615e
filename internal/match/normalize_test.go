package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"OrderID", "orderid"},
		{"order_id", "orderid"},
		{"order-id", "orderid"},
		{"orderId", "orderid"},
		{"ORDERID", "orderid"},
		{"XMLParser", "xmlparser"},
		{"ns:ShipTo", "nsshipto"},
		{"", ""},
		{"ID", "id"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestTokens(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"order", "id"}, Tokens("OrderID"))
	assert.Equal(t, []string{"ship", "to", "name"}, Tokens("ship_to-Name"))
	assert.Equal(t, []string{"get", "http", "response"}, Tokens("getHTTPResponse"))
	assert.Nil(t, Tokens(""))
}

func TestClosest(t *testing.T) {
	t.Parallel()

	keys := []string{"id", "shipTo", "lines", "billTo"}

	got, ok := Closest("ship_to", keys, DefaultThreshold)
	assert.True(t, ok)
	assert.Equal(t, "shipTo", got)

	got, ok = Closest("line", keys, DefaultThreshold)
	assert.True(t, ok)
	assert.Equal(t, "lines", got)

	_, ok = Closest("currency", keys, DefaultThreshold)
	assert.False(t, ok)

	_, ok = Closest("id", []string{"id"}, DefaultThreshold)
	assert.False(t, ok, "exact match is not a suggestion")

	_, ok = Closest("x", nil, DefaultThreshold)
	assert.False(t, ok)
}
