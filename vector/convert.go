package vector

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
)

// ErrNotRational is returned when a value cannot be converted losslessly to
// an exact rational.
var ErrNotRational = errors.New("cannot convert value to an exact rational")

// FromInterface converts a numeric literal to an exact rational. Accepted
// types are the built-in integers, big.Int, big.Rat, floats and strings.
// Floats convert through their shortest decimal representation, so 0.4 means
// exactly 2/5, not the nearest binary fraction. Strings accept both rational
// ("2/5") and decimal ("0.4", "4e-1") notation.
func FromInterface(i interface{}) (*big.Rat, error) {
	r := new(big.Rat)

	switch v := i.(type) {
	case int:
		r.SetInt64(int64(v))
	case int8:
		r.SetInt64(int64(v))
	case int16:
		r.SetInt64(int64(v))
	case int32:
		r.SetInt64(int64(v))
	case int64:
		r.SetInt64(v)
	case uint:
		r.SetUint64(uint64(v))
	case uint8:
		r.SetUint64(uint64(v))
	case uint16:
		r.SetUint64(uint64(v))
	case uint32:
		r.SetUint64(uint64(v))
	case uint64:
		r.SetUint64(v)
	case big.Int:
		r.SetInt(&v)
	case *big.Int:
		if v == nil {
			return nil, fmt.Errorf("%w: nil *big.Int", ErrNotRational)
		}
		r.SetInt(v)
	case big.Rat:
		r.Set(&v)
	case *big.Rat:
		if v == nil {
			return nil, fmt.Errorf("%w: nil *big.Rat", ErrNotRational)
		}
		r.Set(v)
	case float32:
		return fromDecimal(strconv.FormatFloat(float64(v), 'g', -1, 32))
	case float64:
		return fromDecimal(strconv.FormatFloat(v, 'g', -1, 64))
	case string:
		return fromDecimal(v)
	default:
		return nil, fmt.Errorf("%w: unsupported type %T", ErrNotRational, i)
	}

	return r, nil
}

func fromDecimal(s string) (*big.Rat, error) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotRational, s)
	}
	return r, nil
}
