package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundCurrency(t *testing.T) {
	assert.Equal(t, 166.67, RoundCurrency(500.0/3))
	assert.Equal(t, 100.0, RoundCurrency(100.004))
	assert.Equal(t, 0.0, RoundCurrency(0))
}

func TestFormatBRL(t *testing.T) {
	assert.Equal(t, "R$ 100.00", FormatBRL(100))
	assert.Equal(t, "R$ 166.67", FormatBRL(500.0/3))
}
