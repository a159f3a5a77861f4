package column

import (
	"math"

	"github.com/buger/jsonparser"
	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
)

// FromJSON builds a column of physical type pt from a JSON array such as
// [1, null, 3]. Lists are unsupported at this surface, since JSON carries
// no element type annotation. Integers must fit the target width; decimals
// accept number and string tokens so exact digits survive.
func FromJSON(pt PhysicalType, data []byte) (Column, error) {
	switch pt {
	case TypeInvalid, TypeList:
		return nil, errors.Errorf("cannot build a %s column from JSON", pt)
	}
	b := pt.NewBuilder(0)
	var cbErr error
	_, err := jsonparser.ArrayEach(data, func(value []byte, dataType jsonparser.ValueType, offset int, err error) {
		if cbErr != nil {
			return
		}
		if err != nil {
			cbErr = err
			return
		}
		if dataType == jsonparser.Null {
			b.AppendNull()
			return
		}
		v, err := parseJSONScalar(pt, value, dataType)
		if err != nil {
			cbErr = err
			return
		}
		b.AppendValue(v)
	})
	if err != nil {
		return nil, errors.Wrap(err, "malformed JSON array")
	}
	if cbErr != nil {
		return nil, cbErr
	}
	return b.Finish(), nil
}

func parseJSONScalar(pt PhysicalType, value []byte, dataType jsonparser.ValueType) (Value, error) {
	switch pt {
	case TypeInt16, TypeInt32, TypeInt64:
		if dataType != jsonparser.Number {
			return Value{}, errors.Errorf("cannot decode %s as %s", dataType, pt)
		}
		n, err := jsonparser.ParseInt(value)
		if err != nil {
			return Value{}, errors.Wrapf(err, "cannot decode %q as %s", value, pt)
		}
		switch pt {
		case TypeInt16:
			if n < math.MinInt16 || n > math.MaxInt16 {
				return Value{}, errors.Errorf("%d overflows %s", n, pt)
			}
			return NewInt16Value(int16(n)), nil
		case TypeInt32:
			if n < math.MinInt32 || n > math.MaxInt32 {
				return Value{}, errors.Errorf("%d overflows %s", n, pt)
			}
			return NewInt32Value(int32(n)), nil
		default:
			return NewInt64Value(n), nil
		}

	case TypeFloat32, TypeFloat64:
		if dataType != jsonparser.Number {
			return Value{}, errors.Errorf("cannot decode %s as %s", dataType, pt)
		}
		f, err := jsonparser.ParseFloat(value)
		if err != nil {
			return Value{}, errors.Wrapf(err, "cannot decode %q as %s", value, pt)
		}
		if pt == TypeFloat32 {
			return NewFloat32Value(float32(f)), nil
		}
		return NewFloat64Value(f), nil

	case TypeBool:
		if dataType != jsonparser.Boolean {
			return Value{}, errors.Errorf("cannot decode %s as %s", dataType, pt)
		}
		v, err := jsonparser.ParseBoolean(value)
		if err != nil {
			return Value{}, err
		}
		return NewBoolValue(v), nil

	case TypeString:
		if dataType != jsonparser.String {
			return Value{}, errors.Errorf("cannot decode %s as %s", dataType, pt)
		}
		s, err := jsonparser.ParseString(value)
		if err != nil {
			return Value{}, err
		}
		return NewStringValue(s), nil

	case TypeDecimal:
		var src string
		switch dataType {
		case jsonparser.Number:
			src = string(value)
		case jsonparser.String:
			s, err := jsonparser.ParseString(value)
			if err != nil {
				return Value{}, err
			}
			src = s
		default:
			return Value{}, errors.Errorf("cannot decode %s as %s", dataType, pt)
		}
		d, err := decimal.NewFromString(src)
		if err != nil {
			return Value{}, errors.Wrapf(err, "cannot decode %q as %s", src, pt)
		}
		return NewDecimalValue(d), nil
	}

	return Value{}, errors.Errorf("cannot build a %s column from JSON", pt)
}
