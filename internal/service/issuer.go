package service

import "sync/atomic"

// Issuer hands out strictly increasing identifiers for the lifetime of the process.
//
// The counter starts at zero, so the first identifier is 1. It is only
// ever touched through a single atomic add: concurrent callers always get
// distinct values with no gaps.
type Issuer struct {
	counter atomic.Int64
}

// NewIssuer returns an Issuer whose counter starts at zero.
func NewIssuer() *Issuer {
	return &Issuer{}
}

// Next returns the next identifier.
func (i *Issuer) Next() int64 {
	return i.counter.Add(1)
}
