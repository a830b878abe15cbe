// Package config carries the explicit configuration passed into every
// component constructor at service startup. Nothing in the service reads
// configuration through package-level state.
package config

import (
	"time"
)

type Config struct {
	// Payer identity printed on every invoice.
	CompanyName    string
	CompanyEmail   string
	CompanyAddress string

	// Currency code carried through unchanged onto documents that have no
	// currency of their own.
	Currency string
	Locale   string

	// DueDays is the payment term added to the issue date.
	DueDays int

	// Invoice numbering. Numbers are formatted
	// {NumberPrefix}-{YYYYMM}-{sequence zero-padded to SequenceWidth}.
	NumberPrefix       string
	SequenceWidth      int
	SequenceMaxRetries int

	// OvertimeMultiplier is applied to the regular rate when no overtime
	// rate is stored anywhere.
	OvertimeMultiplier float64

	// Retrieval and claim tuning.
	SignedURLTTL      time.Duration
	GenerateTimeout   time.Duration
	ClaimStaleAfter   time.Duration
	ClaimPollInterval time.Duration
	ClaimPollTimeout  time.Duration

	// SweepBatchSize bounds each batch of the proactive generation sweep.
	SweepBatchSize int
}

func Default() Config {
	return Config{
		CompanyName:        "Aurora Labs Inc.",
		CompanyEmail:       "billing@auroralabs.example",
		CompanyAddress:     "2261 Market Street, San Francisco, CA 94114, USA",
		Currency:           "USD",
		Locale:             "en",
		DueDays:            14,
		NumberPrefix:       "INV",
		SequenceWidth:      6,
		SequenceMaxRetries: 3,
		OvertimeMultiplier: 1.5,
		SignedURLTTL:       5 * time.Minute,
		GenerateTimeout:    30 * time.Second,
		ClaimStaleAfter:    2 * time.Minute,
		ClaimPollInterval:  250 * time.Millisecond,
		ClaimPollTimeout:   15 * time.Second,
		SweepBatchSize:     50,
	}
}
