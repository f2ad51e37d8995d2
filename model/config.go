package model

import (
	"fmt"

	"github.com/katalvlaran/lvlearn/truncation"
)

// TruncationConfig returns the current truncation policy.
func (m *Model[L]) TruncationConfig() truncation.Config {
	return m.trunc
}

// SetTruncationPeriod sets the truncation period; 0 disables truncation.
func (m *Model[L]) SetTruncationPeriod(period int) error {
	if err := truncation.ValidatePeriod(period); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	m.trunc.Period = period

	return nil
}

// SetTruncationThreshold sets the magnitude band shrunk by truncation.
func (m *Model[L]) SetTruncationThreshold(threshold float64) error {
	if err := truncation.ValidateThreshold(threshold); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	m.trunc.Threshold = threshold

	return nil
}

// SetTruncationUpdate sets the shrink step scale.
func (m *Model[L]) SetTruncationUpdate(rate float64) error {
	if err := truncation.ValidateUpdateRate(rate); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	m.trunc.UpdateRate = rate

	return nil
}
