package cart

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"souk/db"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestListCartItems(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("sorted by id descending", func(mt *mtest.T) {
		db.CartsCollection = mt.Coll

		item := bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "email", Value: "buyer@example.com"},
			{Key: "payment_status", Value: "pending"},
		}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "ordersDB.carts", mtest.FirstBatch, item))

		req := httptest.NewRequest(http.MethodGet, "/carts?email=buyer@example.com", nil)
		rec := httptest.NewRecorder()

		ListCartItems(rec, req, nil)

		assert.Equal(mt.T, http.StatusOK, rec.Code)

		evt := mt.GetStartedEvent()
		require.Equal(mt.T, "find", evt.CommandName)
		assert.Equal(mt.T, "buyer@example.com", evt.Command.Lookup("filter").Document().Lookup("email").StringValue())
		assert.EqualValues(mt.T, -1, evt.Command.Lookup("sort").Document().Lookup("_id").AsInt64())
	})
}

func TestAddCartItem(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("item inserted verbatim", func(mt *mtest.T) {
		db.CartsCollection = mt.Coll

		mt.AddMockResponses(mtest.CreateSuccessResponse())

		req := httptest.NewRequest(http.MethodPost, "/carts",
			strings.NewReader(`{"email":"buyer@example.com","productId":"p1","payment_status":"pending"}`))
		rec := httptest.NewRecorder()

		AddCartItem(rec, req, nil)

		assert.Equal(mt.T, http.StatusOK, rec.Code)

		var body map[string]interface{}
		require.NoError(mt.T, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(mt.T, true, body["acknowledged"])
		assert.NotEmpty(mt.T, body["insertedId"])
	})

	mt.Run("malformed body is rejected", func(mt *mtest.T) {
		db.CartsCollection = mt.Coll

		req := httptest.NewRequest(http.MethodPost, "/carts", strings.NewReader(`{`))
		rec := httptest.NewRecorder()

		AddCartItem(rec, req, nil)

		assert.Equal(mt.T, http.StatusBadRequest, rec.Code)
		assert.Nil(mt.T, mt.GetStartedEvent())
	})
}

func TestDeleteCartItem(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("missing id deletes nothing", func(mt *mtest.T) {
		db.CartsCollection = mt.Coll

		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		oid := primitive.NewObjectID()
		req := httptest.NewRequest(http.MethodDelete, "/carts/"+oid.Hex(), nil)
		rec := httptest.NewRecorder()

		DeleteCartItem(rec, req, httprouter.Params{{Key: "id", Value: oid.Hex()}})

		assert.Equal(mt.T, http.StatusOK, rec.Code)
		assert.JSONEq(mt.T, `{"acknowledged":true,"deletedCount":0}`, rec.Body.String())
	})

	mt.Run("malformed id is rejected", func(mt *mtest.T) {
		db.CartsCollection = mt.Coll

		req := httptest.NewRequest(http.MethodDelete, "/carts/bogus", nil)
		rec := httptest.NewRecorder()

		DeleteCartItem(rec, req, httprouter.Params{{Key: "id", Value: "bogus"}})

		assert.Equal(mt.T, http.StatusBadRequest, rec.Code)
		assert.Nil(mt.T, mt.GetStartedEvent())
	})
}
