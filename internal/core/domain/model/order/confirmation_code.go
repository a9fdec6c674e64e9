package order

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"sync"

	"mozdelivery/internal/pkg/errs"
	"mozdelivery/internal/pkg/guard"
)

const (
	// ConfirmationCodeMin is the smallest code ever issued.
	ConfirmationCodeMin = 1000
	// ConfirmationCodeMax is the largest code ever issued.
	ConfirmationCodeMax = 9999
)

var ErrConfirmationCodeIsNotConstructed = errs.NewValueIsRequiredError("confirmationCode")

// ConfirmationCode is the 4-digit secret the customer reads to the driver on arrival.
// Dispatch can see it. It is compared by plain string equality with no expiry or lockout.
type ConfirmationCode struct {
	value string
	guard guard.ConstructorGuard
}

// NewConfirmationCode accepts exactly four digits within [1000, 9999].
func NewConfirmationCode(value string) (ConfirmationCode, error) {
	if len(value) != 4 {
		return ConfirmationCode{}, errs.NewValueIsInvalidErrorWithCause(
			"confirmationCode",
			fmt.Errorf("%q is not a 4-digit code", value),
		)
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return ConfirmationCode{}, errs.NewValueIsInvalidErrorWithCause(
				"confirmationCode",
				fmt.Errorf("%q is not a 4-digit code", value),
			)
		}
	}

	n, _ := strconv.Atoi(value)
	if n < ConfirmationCodeMin || n > ConfirmationCodeMax {
		return ConfirmationCode{}, errs.NewValueIsOutOfRangeError(
			"confirmationCode", value, ConfirmationCodeMin, ConfirmationCodeMax,
		)
	}

	return ConfirmationCode{value: value, guard: guard.NewConstructorGuard()}, nil
}

func (c ConfirmationCode) Validate() error {
	return c.guard.Validate(ErrConfirmationCodeIsNotConstructed)
}

// Matches compares the customer's input with the stored code, character for character.
func (c ConfirmationCode) Matches(input string) bool {
	return c.Validate() == nil && c.value == input
}

func (c ConfirmationCode) String() string {
	return c.value
}

// CodeGenerator issues confirmation codes for new orders.
type CodeGenerator interface {
	Generate() ConfirmationCode
}

// RandomCodeGenerator draws codes uniformly from [1000, 9999] using a seeded PCG source,
// so a fixed seed reproduces the same sequence.
type RandomCodeGenerator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandomCodeGenerator builds a generator from seed. A zero seed picks a random one.
func NewRandomCodeGenerator(seed uint64) *RandomCodeGenerator {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &RandomCodeGenerator{
		rnd: rand.New(rand.NewPCG(seed, seed>>1|1)),
	}
}

func (g *RandomCodeGenerator) Generate() ConfirmationCode {
	g.mu.Lock()
	n := ConfirmationCodeMin + g.rnd.IntN(ConfirmationCodeMax-ConfirmationCodeMin+1)
	g.mu.Unlock()

	return ConfirmationCode{value: strconv.Itoa(n), guard: guard.NewConstructorGuard()}
}
