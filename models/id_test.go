package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseFlexID(t *testing.T) {
	oid := primitive.NewObjectID()

	tests := []struct {
		name string
		raw  string
		kind IDKind
		want string
	}{
		{name: "numeric string becomes number", raw: "12345", kind: IDInt, want: "12345"},
		{name: "padded numeric", raw: "  42 ", kind: IDInt, want: "42"},
		{name: "object id hex", raw: oid.Hex(), kind: IDObjectID, want: oid.Hex()},
		{name: "plain string", raw: "SKU-9", kind: IDString, want: "SKU-9"},
		{name: "empty", raw: "", kind: IDNone, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := ParseFlexID(tt.raw)
			assert.Equal(t, tt.kind, id.Kind())
			assert.Equal(t, tt.want, id.String())
		})
	}
}

func TestFlexID_BSONKeepsRepresentation(t *testing.T) {
	type doc struct {
		ID FlexID `bson:"id"`
	}

	for _, id := range []FlexID{IntID(7), StringID("abc"), ObjectIDOf(primitive.NewObjectID())} {
		data, err := bson.Marshal(doc{ID: id})
		require.NoError(t, err)

		var out doc
		require.NoError(t, bson.Unmarshal(data, &out))
		assert.True(t, id.Equal(out.ID), "round trip of %s", id)
	}
}

func TestFlexID_DecodesLegacyNumbers(t *testing.T) {
	data, err := bson.Marshal(bson.M{"id": int32(99)})
	require.NoError(t, err)

	var out struct {
		ID FlexID `bson:"id"`
	}
	require.NoError(t, bson.Unmarshal(data, &out))
	n, ok := out.ID.Int()
	assert.True(t, ok)
	assert.Equal(t, int64(99), n)

	data, err = bson.Marshal(bson.M{"id": 12.5})
	require.NoError(t, err)
	assert.Error(t, bson.Unmarshal(data, &out))
}

func TestFlexID_JSON(t *testing.T) {
	b, err := json.Marshal(IntID(10))
	require.NoError(t, err)
	assert.Equal(t, "10", string(b))

	b, err = json.Marshal(StringID("x"))
	require.NoError(t, err)
	assert.Equal(t, `"x"`, string(b))

	var id FlexID
	require.NoError(t, json.Unmarshal([]byte(`"77"`), &id))
	assert.Equal(t, IDInt, id.Kind())

	require.NoError(t, json.Unmarshal([]byte(`null`), &id))
	assert.True(t, id.IsZero())
}

func TestFlexID_Candidates(t *testing.T) {
	assert.Equal(t, []any{int64(5), "5"}, IntID(5).Candidates())
	assert.Equal(t, []any{"a"}, StringID("a").Candidates())
	assert.Nil(t, FlexID{}.Candidates())
}

func TestFlexID_JSONNumbersKeepPrecision(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int64
	}{
		{name: "above 2^53", raw: "9007199254740993", want: 9007199254740993},
		{name: "max int64", raw: "9223372036854775807", want: 9223372036854775807},
		{name: "negative", raw: "-42", want: -42},
		{name: "integral float", raw: "7.0", want: 7},
		{name: "exponent", raw: "1e3", want: 1000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id FlexID
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &id))
			n, ok := id.Int()
			require.True(t, ok)
			assert.Equal(t, tt.want, n)
		})
	}
}

func TestFlexID_JSONRejectsInexactNumbers(t *testing.T) {
	for _, raw := range []string{"1e300", "9223372036854775808", "-1e19", "12.5"} {
		t.Run(raw, func(t *testing.T) {
			var id FlexID
			assert.Error(t, json.Unmarshal([]byte(raw), &id))
		})
	}
}

func TestFlexID_BSONRejectsInexactDoubles(t *testing.T) {
	var out struct {
		ID FlexID `bson:"id"`
	}

	data, err := bson.Marshal(bson.M{"id": float64(1 << 53)})
	require.NoError(t, err)
	require.NoError(t, bson.Unmarshal(data, &out))
	n, _ := out.ID.Int()
	assert.Equal(t, int64(1<<53), n)

	for _, f := range []float64{1e300, -1e19, float64(1<<53) * 2} {
		data, err := bson.Marshal(bson.M{"id": f})
		require.NoError(t, err)
		assert.Error(t, bson.Unmarshal(data, &out), f)
	}
}
