package washrequests

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	washCodeMin = 10000
	washCodeMax = 99999
)

// NewWashCode returns a random five digit code.
func NewWashCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(washCodeMax-washCodeMin+1))
	if err != nil {
		return "", fmt.Errorf("failed to generate wash code: %w", err)
	}
	return fmt.Sprintf("%d", n.Int64()+washCodeMin), nil
}
