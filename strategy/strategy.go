// Package strategy demonstrates the Strategy (policy) pattern: the pricing
// algorithm of a Bar is selected at runtime and can be swapped without
// changing the Bar.
//
// Strategies are plain functions; Go's first-class functions make a
// one-method interface unnecessary here.
package strategy

import (
	"errors"
	"fmt"
)

// ErrBadPercent is the panic value of Discount for a percent outside 0..100.
var ErrBadPercent = errors.New("strategy: discount percent must be within [0,100]")

// Strategy computes the price to charge for a list price.
type Strategy func(price int) int

// NormalPrice charges the list price.
func NormalPrice() Strategy {
	return func(price int) int { return price }
}

// HappyHourPrice charges half, rounded toward zero.
func HappyHourPrice() Strategy {
	return func(price int) int { return int(float64(price) * 0.5) }
}

// Discount takes percent off the list price, rounded toward zero.
// Panics with ErrBadPercent when percent is outside [0,100].
func Discount(percent int) Strategy {
	if percent < 0 || percent > 100 {
		panic(fmt.Errorf("%w: %d", ErrBadPercent, percent))
	}
	return func(price int) int { return price * (100 - percent) / 100 }
}

// Bar charges customers according to its current Strategy.
type Bar struct {
	strategy Strategy
}

// NewBar returns a Bar using s; nil means NormalPrice.
func NewBar(s Strategy) *Bar {
	b := &Bar{}
	b.SetStrategy(s)
	return b
}

// SetStrategy swaps the pricing strategy; nil means NormalPrice.
func (b *Bar) SetStrategy(s Strategy) {
	if s == nil {
		s = NormalPrice()
	}
	b.strategy = s
}

// PriceFor returns what the Bar charges for price.
func (b *Bar) PriceFor(price int) int {
	if b.strategy == nil {
		return price
	}
	return b.strategy(price)
}
