package jwt

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"
)

// NumericDate represents a JSON numeric date value as specified in RFC 7519.
// It stores time as Unix timestamp (seconds since epoch) for JWT compatibility.
type NumericDate struct {
	time.Time
}

// maxNumericDate is 9999-12-31T23:59:59Z.
const maxNumericDate = 253402300799

// NewNumericDate creates a new NumericDate from time.Time, truncated to
// whole seconds.
func NewNumericDate(t time.Time) *NumericDate {
	return &NumericDate{Time: t.Truncate(time.Second).UTC()}
}

// MarshalJSON implements json.Marshaler interface
func (date NumericDate) MarshalJSON() ([]byte, error) {
	if date.IsZero() {
		return []byte("null"), nil
	}
	return strconv.AppendInt(nil, date.Unix(), 10), nil
}

// UnmarshalJSON accepts integer or fractional seconds since the epoch.
func (date *NumericDate) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		date.Time = time.Time{}
		return nil
	}

	var number json.Number
	if err := json.Unmarshal(b, &number); err != nil {
		return fmt.Errorf("invalid time format: expected unix timestamp, got %s", b)
	}

	seconds, err := number.Float64()
	if err != nil || math.IsNaN(seconds) {
		return fmt.Errorf("invalid time format: expected unix timestamp, got %s", b)
	}
	if seconds < 0 || seconds > maxNumericDate {
		return fmt.Errorf("invalid unix timestamp: %s", number)
	}

	whole, frac := math.Modf(seconds)
	date.Time = time.Unix(int64(whole), int64(frac*1e9)).UTC()
	return nil
}
