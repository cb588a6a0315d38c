package numeric_test

import (
	"encoding/json"
	"testing"

	"github.com/fintrack-labs/expense_tracker_api/internal/apperrors"
	"github.com/fintrack-labs/expense_tracker_api/internal/utils/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "bare number", input: `42.5`, want: "42.5"},
		{name: "bare integer", input: `100`, want: "100"},
		{name: "zero", input: `0`, want: "0"},
		{name: "negative number", input: `-12.3`, want: "-12.3"},
		{name: "plain string", input: `"99.95"`, want: "99.95"},
		{name: "currency string with separators", input: `"$1,234.50"`, want: "1234.5"},
		{name: "euro glyph", input: `"€250"`, want: "250"},
		{name: "pound glyph with spaces", input: `"  £1,000 "`, want: "1000"},
		{name: "garbage text", input: `"abc"`, wantErr: true},
		{name: "empty string", input: `""`, wantErr: true},
		{name: "null", input: `null`, wantErr: true},
		{name: "boolean", input: `true`, wantErr: true},
		{name: "object", input: `{"v":1}`, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := numeric.ParseAmount([]byte(tc.input))
			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.String())
		})
	}
}

func TestParseReference(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    *int64
		wantErr bool
	}{
		{name: "null passes through", input: `null`, want: nil},
		{name: "bare integer", input: `7`, want: ptr(7)},
		{name: "numeric string", input: `"12"`, want: ptr(12)},
		{name: "numeric string with spaces", input: `" 3 "`, want: ptr(3)},
		{name: "float truncates", input: `3.7`, want: ptr(3)},
		{name: "non-numeric string", input: `"abc"`, wantErr: true},
		{name: "boolean", input: `true`, wantErr: true},
		{name: "array", input: `[1]`, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := numeric.ParseReference([]byte(tc.input))
			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrInvalidReference)
				return
			}
			require.NoError(t, err)
			if tc.want == nil {
				assert.Nil(t, got)
			} else {
				require.NotNil(t, got)
				assert.Equal(t, *tc.want, *got)
			}
		})
	}
}

func TestAmountUnmarshalTracksPresence(t *testing.T) {
	var body struct {
		Amount numeric.Amount `json:"amount"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"amount":"1,250.00"}`), &body))
	assert.True(t, body.Amount.Present)
	assert.Equal(t, "1250", body.Amount.Value.String())

	var empty struct {
		Amount numeric.Amount `json:"amount"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{}`), &empty))
	assert.False(t, empty.Amount.Present)
}

func TestAccountRefUnmarshal(t *testing.T) {
	var body struct {
		AccountID numeric.AccountRef `json:"account_id"`
	}

	// Explicit null means "present, no account".
	require.NoError(t, json.Unmarshal([]byte(`{"account_id":null}`), &body))
	assert.True(t, body.AccountID.Present)
	assert.Nil(t, body.AccountID.ID)

	// Absent key leaves the zero value.
	var absent struct {
		AccountID numeric.AccountRef `json:"account_id"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{}`), &absent))
	assert.False(t, absent.AccountID.Present)
}

func ptr(v int64) *int64 { return &v }
