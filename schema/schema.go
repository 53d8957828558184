// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package schema

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/danielhkuo/bloom-pizza/catalog"
	"github.com/danielhkuo/bloom-pizza/models"
)

var ErrUnknownField = errors.New("unknown field")

// Validation messages shown next to the offending field
const (
	MsgFullNameType     = "fullName must be a string"
	MsgFullNameTooShort = "full name must be at least 3 characters"
	MsgFullNameTooLong  = "full name must be at most 20 characters"
	MsgSizeRequired     = "size is required"
	MsgSizeIncorrect    = "size must be S or M or L"
	MsgToppingsType     = "toppings must be an array of IDs"
	MsgToppingInvalid   = "topping ID invalid"
	MsgToppingRepeated  = "topping IDs cannot be repeated"
)

// order is the normalized draft the struct rules run against.
// Tags must stay in sync with fieldTags.
type order struct {
	FullName string   `json:"fullName" validate:"min=3,max=20"`
	Size     string   `json:"size" validate:"required,oneof=S M L"`
	Toppings []string `json:"toppings" validate:"unique,dive,topping_int,topping_range"`
}

var fieldTags = map[string]string{
	models.FieldFullName: "min=3,max=20",
	models.FieldSize:     "required,oneof=S M L",
	models.FieldToppings: "unique,dive,topping_int,topping_range",
}

// field -> validator tag -> message
var tagMessages = map[string]map[string]string{
	models.FieldFullName: {
		"min": MsgFullNameTooShort,
		"max": MsgFullNameTooLong,
	},
	models.FieldSize: {
		"required": MsgSizeRequired,
		"oneof":    MsgSizeIncorrect,
	},
	models.FieldToppings: {
		"unique":        MsgToppingRepeated,
		"topping_int":   MsgToppingsType,
		"topping_range": MsgToppingInvalid,
	},
}

// Schema checks order drafts. The same rules serve single-field checks and
// whole-draft checks. A Schema is safe for concurrent use.
type Schema struct {
	v *validator.Validate
}

func New() *Schema {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		return name
	})

	// Registration only fails on empty tags or nil funcs.
	_ = v.RegisterValidation("topping_int", func(fl validator.FieldLevel) bool {
		_, ok := parseToppingID(fl.Field().String())
		return ok
	})
	_ = v.RegisterValidation("topping_range", func(fl validator.FieldLevel) bool {
		n, ok := parseToppingID(fl.Field().String())
		return ok && n >= catalog.MinToppingID && n <= catalog.MaxToppingID
	})

	return &Schema{v: v}
}

// ValidateField checks one field value. It returns the violated-constraint
// messages in rule order; an empty slice means the value is valid.
//
// fullName and size must be strings and are trimmed before checking.
// toppings accepts []string or a decoded JSON array of strings and numbers.
func (s *Schema) ValidateField(name string, value any) ([]string, error) {
	switch name {
	case models.FieldFullName:
		str, ok := value.(string)
		if !ok {
			return []string{MsgFullNameType}, nil
		}
		return s.check(name, strings.TrimSpace(str)), nil

	case models.FieldSize:
		str, ok := value.(string)
		if !ok {
			return []string{MsgSizeIncorrect}, nil
		}
		return s.check(name, strings.TrimSpace(str)), nil

	case models.FieldToppings:
		ids, ok := toppingIDs(value)
		if !ok {
			return []string{MsgToppingsType}, nil
		}
		return s.check(name, ids), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// ValidateDraft checks the whole draft and returns messages keyed by field.
// Fields without violations are absent from the map.
func (s *Schema) ValidateDraft(d models.Draft) map[string][]string {
	in := order{
		FullName: strings.TrimSpace(d.FullName),
		Size:     strings.TrimSpace(d.Size),
		Toppings: d.Toppings,
	}

	out := make(map[string][]string)
	err := s.v.Struct(in)
	if err == nil {
		return out
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// Only reachable on programmer error (non-struct input).
		out[""] = []string{err.Error()}
		return out
	}

	for _, fe := range verrs {
		field, _, _ := strings.Cut(fe.Field(), "[")
		out[field] = appendUnique(out[field], messageFor(field, fe.Tag()))
	}
	return out
}

// Valid reports whether the whole draft passes.
func (s *Schema) Valid(d models.Draft) bool {
	return len(s.ValidateDraft(d)) == 0
}

func (s *Schema) check(field string, value any) []string {
	err := s.v.Var(value, fieldTags[field])
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}

	var msgs []string
	for _, fe := range verrs {
		msgs = appendUnique(msgs, messageFor(field, fe.Tag()))
	}
	return msgs
}

// First returns the first message, or "" when there are none.
func First(msgs []string) string {
	if len(msgs) == 0 {
		return ""
	}
	return msgs[0]
}

func messageFor(field, tag string) string {
	if msg, ok := tagMessages[field][tag]; ok {
		return msg
	}
	return field + " is invalid"
}

func appendUnique(msgs []string, msg string) []string {
	for _, m := range msgs {
		if m == msg {
			return msgs
		}
	}
	return append(msgs, msg)
}

// parseToppingID accepts base-10 integers, optionally with an all-zero
// fraction ("3", "3.0"). Hex, exponent and underscore forms are rejected.
func parseToppingID(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if whole, frac, ok := strings.Cut(s, "."); ok {
		if frac == "" || strings.Trim(frac, "0") != "" {
			return 0, false
		}
		s = whole
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

func toppingIDs(value any) ([]string, bool) {
	switch v := value.(type) {
	case nil:
		return []string{}, true
	case []string:
		return v, true
	case []int:
		ids := make([]string, len(v))
		for i, n := range v {
			ids[i] = strconv.Itoa(n)
		}
		return ids, true
	case []any:
		ids := make([]string, len(v))
		for i, el := range v {
			switch e := el.(type) {
			case string:
				ids[i] = e
			case float64:
				ids[i] = strconv.FormatFloat(e, 'f', -1, 64)
			case int:
				ids[i] = strconv.Itoa(e)
			default:
				return nil, false
			}
		}
		return ids, true
	}
	return nil, false
}
