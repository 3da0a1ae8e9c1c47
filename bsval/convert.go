package bsval

import "fmt"

// DetectDatatype mirrors atypeconvert.DetectType's shape (a type switch
// returning a normalized tag) but targets the seven BACnet primitives
// instead of generic JSON-ish types, guessing a ScheduleValue variant
// from a decoded Go value. cmd/bsdemo's fixture loader does not call it:
// there the fixture's explicit "datatype" field selects the variant.
func DetectDatatype(value interface{}) Datatype {
	switch value.(type) {
	case bool:
		return DATATYPE_BOOLEAN
	case string:
		return DATATYPE_CHARSTR
	case int, int8, int16, int32, int64:
		return DATATYPE_INTEGER
	case uint, uint8, uint16, uint32, uint64:
		return DATATYPE_UNSIGNED
	case float32:
		return DATATYPE_REAL
	case float64:
		return DATATYPE_DOUBLE
	default:
		return DATATYPE_NONE
	}
}

// FromInterface builds a ScheduleValue from a decoded fixture value and
// an explicit target datatype, returning an error if the decoded value
// cannot be represented as that datatype.
func FromInterface(value interface{}, datatype Datatype) (ScheduleValue, error) {
	if value == nil {
		return Null(), nil
	}
	switch datatype {
	case DATATYPE_BOOLEAN:
		if b, ok := value.(bool); ok {
			return NewBoolean(b), nil
		}
	case DATATYPE_UNSIGNED:
		if n, ok := asInt64(value); ok && n >= 0 {
			return NewUnsigned(uint32(n)), nil
		}
	case DATATYPE_INTEGER:
		if n, ok := asInt64(value); ok {
			return NewInteger(int32(n)), nil
		}
	case DATATYPE_REAL:
		if f, ok := asFloat64(value); ok {
			return NewReal(float32(f)), nil
		}
	case DATATYPE_DOUBLE:
		if f, ok := asFloat64(value); ok {
			return NewDouble(f), nil
		}
	case DATATYPE_ENUM:
		if n, ok := asInt64(value); ok && n >= 0 {
			return NewEnumerated(uint32(n)), nil
		}
	case DATATYPE_CHARSTR:
		if s, ok := value.(string); ok {
			return NewCharacterString(s), nil
		}
	}
	return ScheduleValue{}, fmt.Errorf("cannot represent %v (%T) as datatype %q", value, value, datatype)
}

func asInt64(value interface{}) (int64, bool) {
	switch n := value.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return int64(n), true
	case float64:
		if n == float64(int64(n)) {
			return int64(n), true
		}
	}
	return 0, false
}

func asFloat64(value interface{}) (float64, bool) {
	switch n := value.(type) {
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
