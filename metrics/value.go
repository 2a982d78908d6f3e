package metrics

import (
	"encoding/json"
	"errors"
	"strconv"
)

// ErrUndefinedRatio is returned when a ratio or mean has a zero denominator.
var ErrUndefinedRatio = errors.New("undefined ratio: zero denominator")

// Value is a metric result that may be "not applicable". Zero is a valid
// defined value and never stands in for missing data.
type Value struct {
	V       float64
	Defined bool
}

// NA is the not-applicable sentinel.
var NA = Value{}

func Defined(v float64) Value {
	return Value{V: v, Defined: true}
}

// Of converts a calculator result into a Value. Any error, ErrUndefinedRatio
// included, produces NA.
func Of(v float64, err error) Value {
	if err != nil {
		return NA
	}
	return Defined(v)
}

func (v Value) String() string {
	if !v.Defined {
		return "N/A"
	}
	return strconv.FormatFloat(v.V, 'f', -1, 64)
}

func (v Value) MarshalJSON() ([]byte, error) {
	if !v.Defined {
		return []byte("null"), nil
	}
	return json.Marshal(v.V)
}

func (v *Value) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*v = NA
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*v = Defined(f)
	return nil
}
