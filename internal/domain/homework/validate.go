// internal/domain/homework/validate.go
package homework

import (
	"encoding/json"
	"fmt"
	"math"
)

// Validate checks that payload is an object holding a homeworks list and returns its typed view.
// The payload itself is not modified.
func Validate(payload any) (*Response, error) {
	if _, isList := payload.([]any); isList {
		return nil, &ShapeError{Reason: "response is a list, expected an object"}
	}
	obj, isObject := payload.(map[string]any)
	if !isObject {
		return nil, &ShapeError{Reason: fmt.Sprintf("response is %T, expected an object", payload)}
	}

	raw, present := obj["homeworks"]
	if !present {
		return nil, &MissingFieldError{Field: "homeworks"}
	}
	list, isList := raw.([]any)
	if !isList {
		return nil, &ShapeError{Reason: fmt.Sprintf("homeworks is %T, expected a list", raw)}
	}

	resp := &Response{Homeworks: list}

	if rawDate, ok := obj["current_date"]; ok {
		date, err := asTimestamp(rawDate)
		if err != nil {
			return nil, err
		}
		resp.CurrentDate = date
	}
	return resp, nil
}

func asTimestamp(v any) (int64, error) {
	switch n := v.(type) {
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, &ShapeError{Reason: fmt.Sprintf("current_date %q is not an integer", n.String())}
		}
		return i, nil
	case float64:
		if n != math.Trunc(n) {
			return 0, &ShapeError{Reason: fmt.Sprintf("current_date %v is not an integer", n)}
		}
		return int64(n), nil
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	default:
		return 0, &ShapeError{Reason: fmt.Sprintf("current_date is %T, expected an integer", v)}
	}
}
