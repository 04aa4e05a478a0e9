package models

import (
	"encoding/json"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Flag is a checkbox value. HTML forms post "on" or "true" for a ticked box
// and nothing for an unticked one; JSON clients may send either a bool or a
// string. Older documents store it as the string "true" or "false".
type Flag bool

func ParseFlag(s string) Flag {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "on", "1", "yes":
		return true
	}
	return false
}

// UnmarshalParam lets gin's form binding decode checkbox values.
func (f *Flag) UnmarshalParam(param string) error {
	*f = ParseFlag(param)
	return nil
}

func (f *Flag) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch t := v.(type) {
	case bool:
		*f = Flag(t)
	case string:
		*f = ParseFlag(t)
	default:
		*f = false
	}
	return nil
}

// UnmarshalBSONValue accepts booleans and the legacy string form. Flags are
// always written back as booleans.
func (f *Flag) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.Boolean:
		*f = Flag(raw.Boolean())
	case bsontype.String:
		*f = ParseFlag(raw.StringValue())
	case bsontype.Null, bsontype.Undefined:
		*f = false
	default:
		return fmt.Errorf("cannot decode %s into a flag", t)
	}
	return nil
}
