package user

import (
	"encoding/json"
	"math"
)

// IsUser reports whether v, a value produced by decoding JSON, has the shape
// of a User: an object whose "id" and "age" are numbers and whose "name" is a
// string. No coercion or range checks are applied, so negative ages and
// fractional ids pass.
func IsUser(v any) bool {
	obj, ok := v.(map[string]any)
	if !ok {
		return false
	}
	return isNumber(obj["id"]) && isString(obj["name"]) && isNumber(obj["age"])
}

// ToUser narrows a decoded value into a User. Fractional numbers are
// truncated toward zero. Values outside the int64 range are rejected.
func ToUser(v any) (User, bool) {
	if !IsUser(v) {
		return User{}, false
	}
	obj := v.(map[string]any)

	id, ok := toInt64(obj["id"])
	if !ok {
		return User{}, false
	}
	age, ok := toInt64(obj["age"])
	if !ok {
		return User{}, false
	}
	return User{ID: id, Name: obj["name"].(string), Age: age}, true
}

func isNumber(v any) bool {
	switch n := v.(type) {
	case float64:
		return true
	case json.Number:
		_, err := n.Float64()
		return err == nil
	default:
		return false
	}
}

func isString(v any) bool {
	_, ok := v.(string)
	return ok
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case float64:
		return floatToInt64(n)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return floatToInt64(f)
	default:
		return 0, false
	}
}

// floatToInt64 truncates f, failing when the result does not fit in an int64.
func floatToInt64(f float64) (int64, bool) {
	t := math.Trunc(f)
	if t < math.MinInt64 || t >= math.MaxInt64 {
		return 0, false
	}
	return int64(t), true
}
