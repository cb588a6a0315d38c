// Package numeric provides tolerant parsing of monetary amounts and
// account references at the JSON boundary. Clients send amounts as bare
// numbers or as formatted strings ("$1,234.50"), and account ids as
// numbers, numeric strings, or null; the types here normalise all of that
// parse-or-fail instead of letting loosely typed input leak inward.
package numeric

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/fintrack-labs/expense_tracker_api/internal/apperrors"
	"github.com/shopspring/decimal"
)

// currencyCleaner strips thousands separators and common currency glyphs
// before parsing a textual amount.
var currencyCleaner = strings.NewReplacer(",", "", "$", "", "€", "", "£", "")

// Amount is a monetary value that unmarshals from either a JSON number or
// a formatted string. Present reports whether the field appeared in the
// request at all.
type Amount struct {
	Value   decimal.Decimal
	Present bool
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *Amount) UnmarshalJSON(data []byte) error {
	a.Present = true
	v, err := ParseAmount(data)
	if err != nil {
		return err
	}
	a.Value = v
	return nil
}

// MarshalJSON implements json.Marshaler.
func (a Amount) MarshalJSON() ([]byte, error) {
	return a.Value.MarshalJSON()
}

// ParseAmount converts a raw JSON value into a decimal amount. Textual
// input is cleaned of separators, currency glyphs and surrounding
// whitespace first. Anything that is not a number or a parseable string
// fails wrapping apperrors.ErrInvalidAmount.
func ParseAmount(data []byte) (decimal.Decimal, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return decimal.Zero, fmt.Errorf("%w: value is null", apperrors.ErrInvalidAmount)
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return decimal.Zero, fmt.Errorf("%w: %s", apperrors.ErrInvalidAmount, data)
		}
		cleaned := strings.TrimSpace(currencyCleaner.Replace(s))
		d, err := decimal.NewFromString(cleaned)
		if err != nil {
			return decimal.Zero, fmt.Errorf("%w: %q", apperrors.ErrInvalidAmount, s)
		}
		return d, nil
	}

	// Bare JSON token: only numbers are acceptable.
	d, err := decimal.NewFromString(string(data))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s", apperrors.ErrInvalidAmount, data)
	}
	return d, nil
}

// AccountRef is an optional account reference that unmarshals from a JSON
// number, a numeric string, or null. Present reports whether the field
// appeared in the request; a present ref with a nil ID means "no account"
// (detach on update).
type AccountRef struct {
	ID      *int64
	Present bool
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *AccountRef) UnmarshalJSON(data []byte) error {
	r.Present = true
	id, err := ParseReference(data)
	if err != nil {
		return err
	}
	r.ID = id
	return nil
}

// MarshalJSON implements json.Marshaler.
func (r AccountRef) MarshalJSON() ([]byte, error) {
	if r.ID == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*r.ID)
}

// ParseReference converts a raw JSON value into an account id. Null passes
// through as nil (no reference). Strings must parse as base-10 integers;
// numbers are converted best-effort (fractional parts truncated). Anything
// else fails wrapping apperrors.ErrInvalidReference.
func ParseReference(data []byte) (*int64, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidReference, data)
		}
		id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidReference, s)
		}
		return &id, nil
	}

	if id, err := strconv.ParseInt(string(data), 10, 64); err == nil {
		return &id, nil
	}

	// Numbers with a fractional part are truncated toward zero.
	if f, err := strconv.ParseFloat(string(data), 64); err == nil {
		id := int64(f)
		return &id, nil
	}

	return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidReference, data)
}
