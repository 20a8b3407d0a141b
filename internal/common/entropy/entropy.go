package entropy

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/bits"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_source.go github.com/KirkDiggler/fairdice/internal/common/entropy Source

const (
	// KeySize is the secret key length in bytes (256 bits)
	KeySize = 32

	// maxRange keeps the sampled space inside a uint64 draw and the
	// constant inside int on 32-bit platforms
	maxRange = 1 << 30
)

// Define errors
var (
	ErrEntropyUnavailable = errors.New("secure entropy source unavailable")
	ErrInvalidRange       = errors.New("range must be a positive integer")
)

// Source produces the secret keys and unbiased draws the commit-reveal rounds
// are built on. Every implementation must be backed by a cryptographically
// secure generator; falling back to a seeded PRNG would let the computer's
// contribution be predicted.
type Source interface {
	// GenerateKey returns KeySize fresh random bytes, never reused
	GenerateKey() ([]byte, error)

	// UniformInRange returns an integer in [0, rangeSize) with every value
	// equally likely
	UniformInRange(rangeSize int) (int, error)
}

// Config holds configuration for the crypto-backed source
type Config struct {
	// Reader overrides the random byte stream, used by tests. Defaults to
	// crypto/rand.Reader.
	Reader io.Reader
}

// CryptoSource implements Source on top of crypto/rand
type CryptoSource struct {
	reader io.Reader
}

// New creates a new crypto-backed entropy source
func New(cfg *Config) *CryptoSource {
	reader := rand.Reader
	if cfg != nil && cfg.Reader != nil {
		reader = cfg.Reader
	}

	return &CryptoSource{
		reader: reader,
	}
}

// GenerateKey returns a fresh 256-bit key
func (s *CryptoSource) GenerateKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(s.reader, key); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEntropyUnavailable, err)
	}

	return key, nil
}

// UniformInRange draws an unbiased integer in [0, rangeSize) by rejection
// sampling. The draw space is the smallest whole number of random bytes
// covering the range; draws at or above the largest multiple of rangeSize in
// that space are discarded and redrawn, so the result carries no modulo bias.
func (s *CryptoSource) UniformInRange(rangeSize int) (int, error) {
	if rangeSize < 1 || rangeSize > maxRange {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidRange, rangeSize)
	}

	if rangeSize == 1 {
		return 0, nil
	}

	byteCount := (bits.Len(uint(rangeSize-1)) + 7) / 8
	space := uint64(1) << (8 * byteCount)
	limit := space - space%uint64(rangeSize)

	buf := make([]byte, byteCount)
	for {
		if _, err := io.ReadFull(s.reader, buf); err != nil {
			return 0, fmt.Errorf("%w: %v", ErrEntropyUnavailable, err)
		}

		var draw uint64
		for _, b := range buf {
			draw = draw<<8 | uint64(b)
		}

		if draw < limit {
			return int(draw % uint64(rangeSize)), nil
		}
	}
}
