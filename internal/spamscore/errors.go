package spamscore

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrInvalidArgument marks input that was rejected before any scoring began.
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError reports rejected input with a fixed human-readable message.
type ArgumentError struct {
	Message string
}

func (e *ArgumentError) Error() string {
	return e.Message
}

// Is reports whether target is ErrInvalidArgument.
func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

type absent struct{}

// Absent stands for an argument the caller never supplied. It is rejected
// like any other non-sequence and reported as "undefined", keeping it
// distinct from an explicit JSON null.
var Absent any = absent{}

func errNotSequence(input any) error {
	return &ArgumentError{
		Message: "mails should be an array and should contain text bodies. Found " + typeName(input),
	}
}

func errTooFew() error {
	return &ArgumentError{Message: "There should be at least 2 mails in the array called mails."}
}

// typeName names the observed input type. Values decoded from JSON use the
// JSON kind names; anything else uses its Go type.
func typeName(input any) string {
	switch v := input.(type) {
	case absent:
		return "undefined"
	case nil:
		return "object"
	case map[string]any:
		return "object"
	case string:
		return "string"
	case float64, int, int64:
		return "number"
	case bool:
		return "boolean"
	case []any:
		for _, elem := range v {
			if _, ok := elem.(string); !ok {
				return "array containing " + typeName(elem)
			}
		}
		return "array"
	default:
		if rv := reflect.ValueOf(input); rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
			return fmt.Sprintf("array of %s", rv.Type().Elem())
		}
		return fmt.Sprintf("%T", input)
	}
}
