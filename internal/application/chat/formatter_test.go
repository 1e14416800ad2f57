package chat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vstock/ventas-api/internal/application/chat"
)

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1234.5", "$1,234.50"},
		{"0", "$0.00"},
		{"3", "$3.00"},
		{"999.999", "$1,000.00"}, // redondeo a dos decimales
		{"1234567.891", "$1,234,567.89"},
		{"15", "$15.00"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, chat.FormatMoney(amt(tc.in)), "monto: %s", tc.in)
	}
}
