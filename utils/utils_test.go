package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestEmailFilter(t *testing.T) {
	assert.Equal(t, bson.M{}, EmailFilter(""))
	assert.Equal(t, bson.M{"email": "x@y.z"}, EmailFilter("x@y.z"))
}

func TestParseObjectID(t *testing.T) {
	oid, err := ParseObjectID("68b47bf1f191cd70bd0a0ebb")
	require.NoError(t, err)
	assert.Equal(t, "68b47bf1f191cd70bd0a0ebb", oid.Hex())

	_, err = ParseObjectID("not-an-object-id")
	assert.Error(t, err)

	_, err = ParseObjectID("")
	assert.Error(t, err)
}

func TestRespondWithMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondWithMessage(rec, 404, "User not found")

	assert.Equal(t, 404, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message":"User not found"}`, rec.Body.String())
}

func TestRespondWithError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondWithError(rec, 500, "gateway unreachable")

	assert.Equal(t, 500, rec.Code)
	assert.JSONEq(t, `{"error":"gateway unreachable"}`, rec.Body.String())
}
