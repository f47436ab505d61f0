package products

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"souk/db"
	"souk/globals"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestListProducts(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("sorted by date descending with optional email filter", func(mt *mtest.T) {
		db.ProductsCollection = mt.Coll

		first := bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "name", Value: "Newer"},
			{Key: "email", Value: "seller@example.com"},
		}
		second := bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "name", Value: "Older"},
			{Key: "email", Value: "seller@example.com"},
		}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "productsDB.products", mtest.FirstBatch, first, second))

		req := httptest.NewRequest(http.MethodGet, "/products?email=seller@example.com", nil)
		rec := httptest.NewRecorder()

		ListProducts(rec, req, nil)

		assert.Equal(mt.T, http.StatusOK, rec.Code)

		var products []map[string]interface{}
		require.NoError(mt.T, json.Unmarshal(rec.Body.Bytes(), &products))
		require.Len(mt.T, products, 2)
		assert.Equal(mt.T, "Newer", products[0]["name"])

		evt := mt.GetStartedEvent()
		require.Equal(mt.T, "find", evt.CommandName)
		assert.Equal(mt.T, "seller@example.com", evt.Command.Lookup("filter").Document().Lookup("email").StringValue())
		assert.EqualValues(mt.T, -1, evt.Command.Lookup("sort").Document().Lookup("date").AsInt64())
	})

	mt.Run("no filter matches everything", func(mt *mtest.T) {
		db.ProductsCollection = mt.Coll

		mt.AddMockResponses(mtest.CreateCursorResponse(0, "productsDB.products", mtest.FirstBatch))

		req := httptest.NewRequest(http.MethodGet, "/products", nil)
		rec := httptest.NewRecorder()

		ListProducts(rec, req, nil)

		assert.Equal(mt.T, http.StatusOK, rec.Code)
		assert.JSONEq(mt.T, `[]`, rec.Body.String())

		evt := mt.GetStartedEvent()
		require.Equal(mt.T, "find", evt.CommandName)
		elems, err := evt.Command.Lookup("filter").Document().Elements()
		require.NoError(mt.T, err)
		assert.Empty(mt.T, elems)
	})
}

func TestProductIDValidation(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	handlers := map[string]func(http.ResponseWriter, *http.Request, httprouter.Params){
		"get":      GetProduct,
		"update":   UpdateProduct,
		"adStatus": UpdateProductAdStatus,
		"delete":   DeleteProduct,
	}

	for name, handler := range handlers {
		mt.Run(name+" rejects a malformed id", func(mt *mtest.T) {
			db.ProductsCollection = mt.Coll

			req := httptest.NewRequest(http.MethodGet, "/products/oops",
				strings.NewReader(`{"adStatus":"active"}`))
			rec := httptest.NewRecorder()

			handler(rec, req, httprouter.Params{{Key: "id", Value: "oops"}})

			assert.Equal(mt.T, http.StatusBadRequest, rec.Code)
			assert.Nil(mt.T, mt.GetStartedEvent())
		})
	}
}

func TestUpdateProductAdStatus(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("only the adStatus field is set", func(mt *mtest.T) {
		db.ProductsCollection = mt.Coll

		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		oid := primitive.NewObjectID()
		req := httptest.NewRequest(http.MethodPatch, "/products/"+oid.Hex()+"/adStatus",
			strings.NewReader(`{"adStatus":"running","name":"should be ignored"}`))
		rec := httptest.NewRecorder()

		UpdateProductAdStatus(rec, req, httprouter.Params{{Key: "id", Value: oid.Hex()}})

		assert.Equal(mt.T, http.StatusOK, rec.Code)

		evt := mt.GetStartedEvent()
		require.Equal(mt.T, "update", evt.CommandName)
		set := evt.Command.Lookup("updates").Array().Index(0).Value().Document().
			Lookup("u").Document().Lookup("$set").Document()
		assert.Equal(mt.T, "running", set.Lookup("adStatus").StringValue())
		elems, err := set.Elements()
		require.NoError(mt.T, err)
		assert.Len(mt.T, elems, 1)
	})
}

func TestDeleteProduct(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("deleting a missing id is not an error", func(mt *mtest.T) {
		db.ProductsCollection = mt.Coll

		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		oid := primitive.NewObjectID()
		req := httptest.NewRequest(http.MethodDelete, "/products/"+oid.Hex(), nil)
		rec := httptest.NewRecorder()

		DeleteProduct(rec, req, httprouter.Params{{Key: "id", Value: oid.Hex()}})

		assert.Equal(mt.T, http.StatusOK, rec.Code)
		assert.JSONEq(mt.T, `{"acknowledged":true,"deletedCount":0}`, rec.Body.String())
	})
}

func TestListProductCategories(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("only children of the root parent are listed", func(mt *mtest.T) {
		db.ProductCategoriesCollection = mt.Coll

		category := bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "name", Value: "Electronics"},
			{Key: "parentId", Value: globals.CategoryRootID},
		}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "productsDB.productCategories", mtest.FirstBatch, category))

		req := httptest.NewRequest(http.MethodGet, "/productCategories", nil)
		rec := httptest.NewRecorder()

		ListProductCategories(rec, req, nil)

		assert.Equal(mt.T, http.StatusOK, rec.Code)

		evt := mt.GetStartedEvent()
		require.Equal(mt.T, "find", evt.CommandName)
		assert.Equal(mt.T, globals.CategoryRootID,
			evt.Command.Lookup("filter").Document().Lookup("parentId").StringValue())
	})
}
