package services_test

import (
	"testing"

	"mozdelivery/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
)

func TestDeliveryFeeCalculator_Fee(t *testing.T) {
	calculator := services.NewDeliveryFeeCalculator(60)

	testCases := []struct {
		neighborhood string
		expected     int
	}{
		{"Central", 50},
		{"muhala", 80},
		{" Muatala ", 70},
		{"Napipine", 90},
		{"Natikiri", 120},
		{"Carrupeia", 60},
		{"", 60},
	}

	for _, tc := range testCases {
		t.Run(tc.neighborhood, func(t *testing.T) {
			assert.Equal(t, tc.expected, calculator.Fee(tc.neighborhood))
		})
	}
}

func TestNewDeliveryFeeCalculator_NegativeDefault(t *testing.T) {
	calculator := services.NewDeliveryFeeCalculator(-1)

	assert.Equal(t, services.DefaultDeliveryFee, calculator.Fee("Anywhere"))
}
