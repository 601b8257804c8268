package filters

import (
	"encoding/json"
	"math"
	"reflect"
	"strconv"
)

// Scalar is the type set a filter value may have: text, a number of any
// width, or a boolean. The constraint is enforced at compile time, so a
// collection can never hold a non-scalar element.
type Scalar interface {
	~string |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 |
		~bool
}

// formatScalar renders a value for query-string flattening.
//
// Concrete types take the strconv fast path; named scalar types fall through
// to reflection. No fmt-based stringification.
func formatScalar[V Scalar](v V) string {
	switch x := any(v).(type) {
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 64)
	default:
		// Unreachable: the Scalar type set admits no other kind.
		return ""
	}
}

// scalarFromAny converts a decoded document value (string, bool, json.Number,
// or one of the numeric types the YAML decoder produces) into V.
//
// A shape mismatch is the one runtime failure class this module has; it is
// reported as *ErrScalarType, never coerced silently.
func scalarFromAny[V Scalar](x any) (V, error) {
	var v V
	rv := reflect.ValueOf(&v).Elem()
	target := reflect.TypeFor[V]().String()

	switch rv.Kind() {
	case reflect.String:
		s, ok := x.(string)
		if !ok {
			return v, &ErrScalarType{Value: x, Target: target}
		}
		rv.SetString(s)

	case reflect.Bool:
		b, ok := x.(bool)
		if !ok {
			return v, &ErrScalarType{Value: x, Target: target}
		}
		rv.SetBool(b)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := toInt64(x, target)
		if err != nil {
			return v, err
		}
		if rv.OverflowInt(n) {
			return v, &ErrScalarType{Value: x, Target: target}
		}
		rv.SetInt(n)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := toUint64(x, target)
		if err != nil {
			return v, err
		}
		if rv.OverflowUint(n) {
			return v, &ErrScalarType{Value: x, Target: target}
		}
		rv.SetUint(n)

	case reflect.Float32, reflect.Float64:
		f, err := toFloat64(x, target)
		if err != nil {
			return v, err
		}
		if rv.OverflowFloat(f) {
			return v, &ErrScalarType{Value: x, Target: target}
		}
		rv.SetFloat(f)
	}

	return v, nil
}

func toInt64(x any, target string) (int64, error) {
	switch n := x.(type) {
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, &ErrScalarType{Value: x, Target: target, cause: err}
		}
		return i, nil
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	case uint64:
		if n > math.MaxInt64 {
			return 0, &ErrScalarType{Value: x, Target: target}
		}
		return int64(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, &ErrScalarType{Value: x, Target: target}
		}
		return int64(n), nil
	default:
		return 0, &ErrScalarType{Value: x, Target: target}
	}
}

// toUint64 is separate from toInt64 so uint targets keep the full uint64
// range; values above MaxInt64 are valid here but not for int targets.
func toUint64(x any, target string) (uint64, error) {
	switch n := x.(type) {
	case json.Number:
		u, err := strconv.ParseUint(n.String(), 10, 64)
		if err != nil {
			return 0, &ErrScalarType{Value: x, Target: target, cause: err}
		}
		return u, nil
	case int:
		if n < 0 {
			return 0, &ErrScalarType{Value: x, Target: target}
		}
		return uint64(n), nil
	case int64:
		if n < 0 {
			return 0, &ErrScalarType{Value: x, Target: target}
		}
		return uint64(n), nil
	case uint64:
		return n, nil
	case float64:
		if n < 0 || n != math.Trunc(n) {
			return 0, &ErrScalarType{Value: x, Target: target}
		}
		return uint64(n), nil
	default:
		return 0, &ErrScalarType{Value: x, Target: target}
	}
}

func toFloat64(x any, target string) (float64, error) {
	switch n := x.(type) {
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, &ErrScalarType{Value: x, Target: target, cause: err}
		}
		return f, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case float64:
		return n, nil
	default:
		return 0, &ErrScalarType{Value: x, Target: target}
	}
}
