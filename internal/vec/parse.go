package vec

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FromSlice builds a vector from the first two elements of arr.
func FromSlice(arr []any) (Vec2, error) {
	if len(arr) < 2 {
		return Vec2{}, fmt.Errorf("%w: missing element (got %d)", ErrInvalidVector, len(arr))
	}
	x, err := toFloat(arr[0])
	if err != nil {
		return Vec2{}, fmt.Errorf("%w: x: %v", ErrInvalidVector, err)
	}
	y, err := toFloat(arr[1])
	if err != nil {
		return Vec2{}, fmt.Errorf("%w: y: %v", ErrInvalidVector, err)
	}
	return checkNaN(x, y)
}

// FromMap builds a vector from the "x" and "y" keys of obj.
func FromMap(obj map[string]any) (Vec2, error) {
	rx, okX := obj["x"]
	ry, okY := obj["y"]
	if !okX || !okY {
		return Vec2{}, fmt.Errorf("%w: missing key", ErrInvalidVector)
	}
	x, err := toFloat(rx)
	if err != nil {
		return Vec2{}, fmt.Errorf("%w: x: %v", ErrInvalidVector, err)
	}
	y, err := toFloat(ry)
	if err != nil {
		return Vec2{}, fmt.Errorf("%w: y: %v", ErrInvalidVector, err)
	}
	return checkNaN(x, y)
}

// Parse accepts either form produced by a YAML or JSON decoder.
func Parse(raw any) (Vec2, error) {
	switch v := raw.(type) {
	case []any:
		return FromSlice(v)
	case []float64:
		if len(v) < 2 {
			return Vec2{}, fmt.Errorf("%w: missing element (got %d)", ErrInvalidVector, len(v))
		}
		return checkNaN(v[0], v[1])
	case map[string]any:
		return FromMap(v)
	case Vec2:
		return v, nil
	case nil:
		return Vec2{}, fmt.Errorf("%w: empty value", ErrInvalidVector)
	default:
		return Vec2{}, fmt.Errorf("%w: unsupported type %T", ErrInvalidVector, raw)
	}
}

func checkNaN(x, y float64) (Vec2, error) {
	if math.IsNaN(x) || math.IsNaN(y) {
		return Vec2{}, fmt.Errorf("%w: value is NaN", ErrInvalidVector)
	}
	return Vec2{X: x, Y: y}, nil
}

// toFloat converts loosely typed input the way a permissive number cast
// would: numeric kinds pass through, strings are parsed, booleans map to 0/1.
func toFloat(raw any) (float64, error) {
	switch v := raw.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int8:
		return float64(v), nil
	case int16:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint:
		return float64(v), nil
	case uint8:
		return float64(v), nil
	case uint16:
		return float64(v), nil
	case uint32:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("not a number: %q", v)
		}
		return f, nil
	case nil:
		return 0, fmt.Errorf("missing value")
	default:
		return 0, fmt.Errorf("unsupported type %T", raw)
	}
}
