package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ToInt converts numeric and numeric-string values to int.
// JSON decodes numbers as float64 and TOML as int64, so both are accepted;
// fractional floats are rejected.
func ToInt(val any) (int, error) {
	switch v := val.(type) {
	case nil:
		return 0, nil
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case int32:
		return int(v), nil
	case int16:
		return int(v), nil
	case int8:
		return int(v), nil
	case uint:
		return int(v), nil
	case uint64:
		return int(v), nil
	case uint32:
		return int(v), nil
	case uint16:
		return int(v), nil
	case uint8:
		return int(v), nil
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("cannot convert %v to int: fractional value", v)
		}
		return int(v), nil
	case float32:
		return ToInt(float64(v))
	case string:
		if v == "" {
			return 0, nil
		}
		i, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("cannot convert %q to int: %w", v, err)
		}
		return i, nil
	case []byte:
		return ToInt(string(v))
	default:
		return 0, fmt.Errorf("cannot convert %T to int", val)
	}
}

// ToString converts scalar values to string.
func ToString(val any) (string, error) {
	switch v := val.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case fmt.Stringer:
		return v.String(), nil
	case int, int64, int32, uint, uint64, uint32, float64, bool:
		return fmt.Sprintf("%v", v), nil
	default:
		return "", fmt.Errorf("cannot convert %T to string", val)
	}
}

// ToBool converts bool, numeric (1 = true) and string ("1", "true") values.
func ToBool(val any) (bool, error) {
	switch v := val.(type) {
	case nil:
		return false, nil
	case bool:
		return v, nil
	case int, int64, int32, int16, int8, uint, uint64, uint32, uint16, uint8, float64:
		i, err := ToInt(v)
		if err != nil {
			return false, err
		}
		return i == 1, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "yes":
			return true, nil
		case "", "0", "false", "no":
			return false, nil
		}
		return false, fmt.Errorf("cannot convert %q to bool", v)
	case []byte:
		return ToBool(string(v))
	default:
		return false, fmt.Errorf("cannot convert %T to bool", val)
	}
}
