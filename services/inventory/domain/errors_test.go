package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors_NonNil(t *testing.T) {
	sentinels := []error{
		ErrItemNotFound,
		ErrParentNotFound,
		ErrDuplicateCode,
		ErrProductNotFound,
		ErrDuplicateProduct,
		ErrProductInUse,
		ErrValidation,
		ErrCycle,
		ErrEmptySearch,
		ErrTransactionState,
		ErrStorage,
	}
	for _, err := range sentinels {
		if err == nil {
			t.Fatal("sentinel must not be nil")
		}
	}
}

func TestSentinelErrors_Distinct(t *testing.T) {
	if errors.Is(ErrItemNotFound, ErrParentNotFound) {
		t.Fatal("item and parent not-found must be distinct")
	}
	if errors.Is(ErrDuplicateCode, ErrDuplicateProduct) {
		t.Fatal("code and product duplicates must be distinct")
	}
	if errors.Is(ErrStorage, ErrTransactionState) {
		t.Fatal("storage and transaction state errors must be distinct")
	}
}

func TestSentinelErrors_WrappedIdentity(t *testing.T) {
	wrapped := fmt.Errorf("get subtree: %w", ErrItemNotFound)
	if !errors.Is(wrapped, ErrItemNotFound) {
		t.Fatal("errors.Is must match wrapped ErrItemNotFound")
	}

	wrapped2 := fmt.Errorf("%w: %w", ErrValidation, errors.New("value too long"))
	if !errors.Is(wrapped2, ErrValidation) {
		t.Fatal("errors.Is must match double-wrapped ErrValidation")
	}
}
