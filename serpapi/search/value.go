package search

import (
	"errors"

	"github.com/tidwall/gjson"
)

var errInvalidJson = errors.New("body is not valid json")

// Value is a parsed json document returned by serpapi. No schema is imposed on it, callers
// index into it with gjson paths such as "organic_results" or "local_results.places".
type Value struct {
	res gjson.Result
}

func ParseValue(body string) (Value, error) {
	if !gjson.Valid(body) {
		return Value{}, newMalformedResponseError("", body, errInvalidJson)
	}
	return Value{res: gjson.Parse(body)}, nil
}

func (v Value) Get(path string) Value {
	return Value{res: v.res.Get(path)}
}

func (v Value) Index(i int) Value {
	if !v.res.IsArray() || i < 0 {
		return Value{}
	}
	arr := v.res.Array()
	if i >= len(arr) {
		return Value{}
	}
	return Value{res: arr[i]}
}

func (v Value) Array() []Value {
	if !v.res.IsArray() {
		return nil
	}
	items := v.res.Array()
	values := make([]Value, 0, len(items))
	for _, item := range items {
		values = append(values, Value{res: item})
	}
	return values
}

// Len is the number of elements of an array, or the number of keys of an object.
func (v Value) Len() int {
	switch {
	case v.res.IsArray():
		return len(v.res.Array())
	case v.res.IsObject():
		return len(v.res.Map())
	}
	return 0
}

func (v Value) Exists() bool {
	return v.res.Exists()
}

func (v Value) IsArray() bool {
	return v.res.IsArray()
}

func (v Value) IsObject() bool {
	return v.res.IsObject()
}

func (v Value) String() string {
	return v.res.String()
}

func (v Value) Float() float64 {
	return v.res.Float()
}

func (v Value) Int() int64 {
	return v.res.Int()
}

func (v Value) Raw() string {
	return v.res.Raw
}

func (v Value) Interface() any {
	return v.res.Value()
}

func (v Value) MarshalJSON() ([]byte, error) {
	if v.res.Raw == "" {
		return []byte("null"), nil
	}
	return []byte(v.res.Raw), nil
}
