// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package schema

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/bloom-pizza/models"
)

func TestValidateFieldFullNameLength(t *testing.T) {
	s := New()

	// Every length from 0 to 25, with and without surrounding whitespace
	for n := 0; n <= 25; n++ {
		for _, pad := range []string{"", "  ", "\t"} {
			name := pad + strings.Repeat("a", n) + pad

			msgs, err := s.ValidateField(models.FieldFullName, name)
			require.NoError(t, err)

			switch {
			case n < 3:
				assert.Equal(t, []string{MsgFullNameTooShort}, msgs, "len %d", n)
			case n > 20:
				assert.Equal(t, []string{MsgFullNameTooLong}, msgs, "len %d", n)
			default:
				assert.Empty(t, msgs, "len %d", n)
			}
		}
	}
}

func TestValidateFieldFullNameCountsCharacters(t *testing.T) {
	s := New()

	msgs, err := s.ValidateField(models.FieldFullName, "Zoë")
	require.NoError(t, err)
	assert.Empty(t, msgs)

	msgs, err = s.ValidateField(models.FieldFullName, strings.Repeat("é", 21))
	require.NoError(t, err)
	assert.Equal(t, []string{MsgFullNameTooLong}, msgs)
}

func TestValidateFieldFullNameType(t *testing.T) {
	s := New()

	msgs, err := s.ValidateField(models.FieldFullName, 42)
	require.NoError(t, err)
	assert.Equal(t, []string{MsgFullNameType}, msgs)
}

func TestValidateFieldSize(t *testing.T) {
	s := New()

	tests := []struct {
		name  string
		value any
		want  []string
	}{
		{"small", "S", nil},
		{"medium", "M", nil},
		{"large", "L", nil},
		{"trimmed", " L ", nil},
		{"empty", "", []string{MsgSizeRequired}},
		{"whitespace", "   ", []string{MsgSizeRequired}},
		{"lowercase", "m", []string{MsgSizeIncorrect}},
		{"extra large", "XL", []string{MsgSizeIncorrect}},
		{"label instead of code", "Medium", []string{MsgSizeIncorrect}},
		{"not a string", 3, []string{MsgSizeIncorrect}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msgs, err := s.ValidateField(models.FieldSize, tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, msgs)
		})
	}
}

func TestValidateFieldToppings(t *testing.T) {
	s := New()

	tests := []struct {
		name  string
		value any
		want  []string
	}{
		{"nil", nil, nil},
		{"empty", []string{}, nil},
		{"all", []string{"1", "2", "3", "4", "5"}, nil},
		{"integer valued decimal", []string{"2.0"}, nil},
		{"ints", []int{1, 5}, nil},
		{"decoded json", []any{"1", float64(3)}, nil},
		{"zero", []string{"0"}, []string{MsgToppingInvalid}},
		{"six", []string{"1", "6"}, []string{MsgToppingInvalid}},
		{"negative", []int{-1}, []string{MsgToppingInvalid}},
		{"fraction", []string{"2.5"}, []string{MsgToppingsType}},
		{"word", []string{"ham"}, []string{MsgToppingsType}},
		{"hex float", []string{"0x1p0"}, []string{MsgToppingsType}},
		{"hex int", []string{"0x2"}, []string{MsgToppingsType}},
		{"exponent", []string{"1e0"}, []string{MsgToppingsType}},
		{"underscore", []string{"1_0"}, []string{MsgToppingsType}},
		{"trailing dot", []string{"3."}, []string{MsgToppingsType}},
		{"duplicate", []string{"1", "1"}, []string{MsgToppingRepeated}},
		{"not a list", "1", []string{MsgToppingsType}},
		{"list of bools", []any{true}, []string{MsgToppingsType}},
		{"several invalid", []string{"7", "8"}, []string{MsgToppingInvalid}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msgs, err := s.ValidateField(models.FieldToppings, tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, msgs)
		})
	}
}

func TestValidateFieldUnknown(t *testing.T) {
	s := New()

	_, err := s.ValidateField("crust", "thin")
	require.ErrorIs(t, err, ErrUnknownField)
}

func TestValidateDraft(t *testing.T) {
	s := New()

	tests := []struct {
		name  string
		draft models.Draft
		want  map[string][]string
	}{
		{
			name:  "valid",
			draft: models.Draft{FullName: "Alice Smith", Size: "L", Toppings: []string{"1", "3"}},
			want:  map[string][]string{},
		},
		{
			name:  "valid without toppings",
			draft: models.Draft{FullName: "Alice", Size: "S", Toppings: []string{}},
			want:  map[string][]string{},
		},
		{
			name:  "short name",
			draft: models.Draft{FullName: "Al", Size: "M", Toppings: []string{}},
			want:  map[string][]string{models.FieldFullName: {MsgFullNameTooShort}},
		},
		{
			name:  "missing size",
			draft: models.Draft{FullName: "Alice", Size: "", Toppings: []string{"1"}},
			want:  map[string][]string{models.FieldSize: {MsgSizeRequired}},
		},
		{
			name:  "bad topping",
			draft: models.Draft{FullName: "Alice", Size: "M", Toppings: []string{"1", "9"}},
			want:  map[string][]string{models.FieldToppings: {MsgToppingInvalid}},
		},
		{
			name:  "everything wrong",
			draft: models.Draft{FullName: " ", Size: "XL", Toppings: []string{"2", "2"}},
			want: map[string][]string{
				models.FieldFullName: {MsgFullNameTooShort},
				models.FieldSize:     {MsgSizeIncorrect},
				models.FieldToppings: {MsgToppingRepeated},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.ValidateDraft(tt.draft))
			assert.Equal(t, len(tt.want) == 0, s.Valid(tt.draft))
		})
	}
}

// Whole-draft validity must agree with the three single-field checks.
func TestValidMatchesFieldChecks(t *testing.T) {
	s := New()

	names := []string{"", "Al", "Bob", "   Bob   ", strings.Repeat("x", 20), strings.Repeat("x", 21)}
	sizes := []string{"", "S", "M", "L", "X"}
	toppingSets := [][]string{{}, {"1"}, {"1", "5"}, {"0"}, {"3", "3"}}

	for _, name := range names {
		for _, size := range sizes {
			for _, tops := range toppingSets {
				d := models.Draft{FullName: name, Size: size, Toppings: tops}

				fieldsOK := true
				for field, value := range map[string]any{
					models.FieldFullName: name,
					models.FieldSize:     size,
					models.FieldToppings: tops,
				} {
					msgs, err := s.ValidateField(field, value)
					require.NoError(t, err)
					if len(msgs) > 0 {
						fieldsOK = false
					}
				}

				assert.Equal(t, fieldsOK, s.Valid(d), "draft %+v", d)
			}
		}
	}
}

func TestFirst(t *testing.T) {
	assert.Equal(t, "", First(nil))
	assert.Equal(t, "a", First([]string{"a", "b"}))
}
