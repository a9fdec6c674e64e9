package services

import "strings"

// DefaultDeliveryFee applies to any neighborhood missing from the fee table.
const DefaultDeliveryFee = 50

// Neighborhood is a delivery zone with its base fee in meticais.
type Neighborhood struct {
	Name    string
	BaseFee int
}

// Neighborhoods lists the zones with a dedicated fee.
func Neighborhoods() []Neighborhood {
	return []Neighborhood{
		{Name: "Central", BaseFee: 50},
		{Name: "Muhala", BaseFee: 80},
		{Name: "Muatala", BaseFee: 70},
		{Name: "Napipine", BaseFee: 90},
		{Name: "Natikiri", BaseFee: 120},
	}
}

// DeliveryFeeCalculator prices delivery by neighborhood.
type DeliveryFeeCalculator struct {
	defaultFee int
	fees       map[string]int
}

// NewDeliveryFeeCalculator builds a calculator over Neighborhoods. A negative defaultFee
// falls back to DefaultDeliveryFee.
func NewDeliveryFeeCalculator(defaultFee int) DeliveryFeeCalculator {
	if defaultFee < 0 {
		defaultFee = DefaultDeliveryFee
	}

	fees := make(map[string]int)
	for _, n := range Neighborhoods() {
		fees[strings.ToLower(n.Name)] = n.BaseFee
	}

	return DeliveryFeeCalculator{defaultFee: defaultFee, fees: fees}
}

// Fee returns the fee for neighborhood, matched case-insensitively.
func (c DeliveryFeeCalculator) Fee(neighborhood string) int {
	if fee, ok := c.fees[strings.ToLower(strings.TrimSpace(neighborhood))]; ok {
		return fee
	}
	return c.defaultFee
}
