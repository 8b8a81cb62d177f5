package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IDKind tells which representation a FlexID holds.
type IDKind uint8

const (
	IDNone IDKind = iota
	IDInt
	IDString
	IDObjectID
)

// FlexID is an identifier that is stored either as a number, a string or an
// ObjectID. Legacy documents mix all three, so the original representation is
// kept on round trips.
type FlexID struct {
	kind IDKind
	i    int64
	s    string
	oid  primitive.ObjectID
}

func IntID(v int64) FlexID { return FlexID{kind: IDInt, i: v} }
func StringID(v string) FlexID { return FlexID{kind: IDString, s: v} }
func ObjectIDOf(v primitive.ObjectID) FlexID { return FlexID{kind: IDObjectID, oid: v} }

// ParseFlexID canonicalises raw input: integers become numeric ids, 24-char
// hex strings become ObjectIDs, anything else stays a trimmed string.
func ParseFlexID(raw string) FlexID {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return FlexID{}
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return IntID(n)
	}
	if len(raw) == 24 {
		if oid, err := primitive.ObjectIDFromHex(raw); err == nil {
			return ObjectIDOf(oid)
		}
	}
	return StringID(raw)
}

func (id FlexID) Kind() IDKind { return id.kind }

func (id FlexID) IsZero() bool { return id.kind == IDNone }

func (id FlexID) Int() (int64, bool) { return id.i, id.kind == IDInt }

func (id FlexID) ObjectID() (primitive.ObjectID, bool) { return id.oid, id.kind == IDObjectID }

func (id FlexID) String() string {
	switch id.kind {
	case IDInt:
		return strconv.FormatInt(id.i, 10)
	case IDString:
		return id.s
	case IDObjectID:
		return id.oid.Hex()
	}
	return ""
}

func (id FlexID) Equal(other FlexID) bool {
	return id.kind == other.kind && id.i == other.i && id.s == other.s && id.oid == other.oid
}

// Candidates lists every stored form the id may have been written with, for
// use inside an $in filter.
func (id FlexID) Candidates() []any {
	switch id.kind {
	case IDInt:
		return []any{id.i, strconv.FormatInt(id.i, 10)}
	case IDString:
		return []any{id.s}
	case IDObjectID:
		return []any{id.oid, id.oid.Hex()}
	}
	return nil
}

// MatchFilter builds a filter matching the id in any stored form.
func (id FlexID) MatchFilter(field string) bson.M {
	return bson.M{field: bson.M{"$in": id.Candidates()}}
}

func (id FlexID) MarshalBSONValue() (bsontype.Type, []byte, error) {
	switch id.kind {
	case IDInt:
		return bson.MarshalValue(id.i)
	case IDString:
		return bson.MarshalValue(id.s)
	case IDObjectID:
		return bson.MarshalValue(id.oid)
	}
	return bson.TypeNull, nil, nil
}

func (id *FlexID) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}
	switch t {
	case bson.TypeInt32:
		*id = IntID(int64(rv.Int32()))
	case bson.TypeInt64:
		*id = IntID(rv.Int64())
	case bson.TypeDouble:
		n, err := intFromFloat(rv.Double())
		if err != nil {
			return err
		}
		*id = IntID(n)
	case bson.TypeString:
		*id = StringID(rv.StringValue())
	case bson.TypeObjectID:
		*id = ObjectIDOf(rv.ObjectID())
	case bson.TypeNull, bson.TypeUndefined:
		*id = FlexID{}
	default:
		return fmt.Errorf("flexid: unsupported bson type %s", t)
	}
	return nil
}

func (id FlexID) MarshalJSON() ([]byte, error) {
	switch id.kind {
	case IDInt:
		return json.Marshal(id.i)
	case IDString:
		return json.Marshal(id.s)
	case IDObjectID:
		return json.Marshal(id.oid.Hex())
	}
	return []byte("null"), nil
}

func (id *FlexID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*id = FlexID{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ParseFlexID(s)
		return nil
	}
	var num json.Number
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&num); err != nil {
		return fmt.Errorf("flexid: %w", err)
	}
	if n, err := strconv.ParseInt(num.String(), 10, 64); err == nil {
		*id = IntID(n)
		return nil
	}
	// "7.0" or "7e2" style numbers
	f, err := num.Float64()
	if err != nil {
		return fmt.Errorf("flexid: %w", err)
	}
	n, err := intFromFloat(f)
	if err != nil {
		return err
	}
	*id = IntID(n)
	return nil
}

// maxExactFloat is the largest magnitude at which every integer is exactly
// representable as a float64.
const maxExactFloat = 1 << 53

// intFromFloat accepts only integral values that a float64 holds exactly.
func intFromFloat(f float64) (int64, error) {
	if f != math.Trunc(f) || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, fmt.Errorf("flexid: non-integral number %v", f)
	}
	if math.Abs(f) > maxExactFloat {
		return 0, fmt.Errorf("flexid: number %v out of exact integer range", f)
	}
	return int64(f), nil
}
