package payment

import (
	"fmt"

	"dealership/internal/pkg/errs"
)

// Kind classifies what part of the order total a payment settles.
type Kind int

const (
	// KindUnknown represents an invalid or undefined kind.
	KindUnknown Kind = iota

	// Deposit is the up-front payment securing the order.
	Deposit

	// Balance settles the remainder of the order total.
	Balance

	// Finance is an instalment paid out by the financing partner.
	Finance
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		KindUnknown: "unknown",
		Deposit:     "deposit",
		Balance:     "balance",
		Finance:     "finance",
	}
}

func getValidKindStrings() map[Kind]string {
	//nolint:exhaustive // KindUnknown is intentionally excluded as it's invalid
	return map[Kind]string{
		Deposit: "deposit",
		Balance: "balance",
		Finance: "finance",
	}
}

// KindFromString parses a kind from its wire representation.
func KindFromString(s string) (Kind, error) {
	for kind, str := range getValidKindStrings() {
		if str == s {
			return kind, nil
		}
	}
	return KindUnknown, errs.NewValueIsInvalidErrorWithCause(
		"kind is invalid",
		fmt.Errorf("%q is not a valid payment kind", s),
	)
}

// Validate checks if the Kind value is valid.
func (k Kind) Validate() error {
	if _, ok := getValidKindStrings()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"kind is invalid",
			fmt.Errorf("%d is not a valid payment kind", k),
		)
	}
	return nil
}

// String returns the wire name of the kind. Implements fmt.Stringer.
func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "unknown"
}
