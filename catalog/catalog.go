// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package catalog holds the fixed topping and size options.
package catalog

// Topping ids are the decimal strings "1" through "5".
const (
	MinToppingID = 1
	MaxToppingID = 5
)

type Topping struct {
	ID    string `json:"topping_id"`
	Label string `json:"text"`
}

type Size struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

var toppings = [...]Topping{
	{ID: "1", Label: "Pepperoni"},
	{ID: "2", Label: "Green Peppers"},
	{ID: "3", Label: "Pineapple"},
	{ID: "4", Label: "Mushrooms"},
	{ID: "5", Label: "Ham"},
}

var sizes = [...]Size{
	{Code: "S", Label: "Small"},
	{Code: "M", Label: "Medium"},
	{Code: "L", Label: "Large"},
}

// Toppings returns the topping catalog in display order.
// The returned slice is a copy.
func Toppings() []Topping {
	out := make([]Topping, len(toppings))
	copy(out, toppings[:])
	return out
}

// LookupTopping finds a topping by id
func LookupTopping(id string) (Topping, bool) {
	for _, t := range toppings {
		if t.ID == id {
			return t, true
		}
	}
	return Topping{}, false
}

// Sizes returns the size options in display order.
func Sizes() []Size {
	out := make([]Size, len(sizes))
	copy(out, sizes[:])
	return out
}

// SizeCodes returns "S", "M", "L".
func SizeCodes() []string {
	codes := make([]string, len(sizes))
	for i, s := range sizes {
		codes[i] = s.Code
	}
	return codes
}

func ValidSize(code string) bool {
	for _, s := range sizes {
		if s.Code == code {
			return true
		}
	}
	return false
}
