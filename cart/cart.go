package cart

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"souk/db"
	"souk/models"
	"souk/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListCartItems returns cart items newest first (descending _id), optionally
// filtered by ?email=.
func ListCartItems(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	filter := utils.EmailFilter(r.URL.Query().Get("email"))
	opts := options.Find().SetSort(bson.M{"_id": -1})

	cursor, err := db.CartsCollection.Find(ctx, filter, opts)
	if err != nil {
		log.Println("ListCartItems Find error:", err)
		utils.RespondWithMessage(w, http.StatusInternalServerError, "Failed to get carts.")
		return
	}
	defer cursor.Close(ctx)

	var items []bson.M
	if err := cursor.All(ctx, &items); err != nil {
		log.Println("ListCartItems cursor.All error:", err)
		utils.RespondWithMessage(w, http.StatusInternalServerError, "Failed to get carts.")
		return
	}
	if items == nil {
		items = []bson.M{}
	}

	utils.RespondWithJSON(w, http.StatusOK, items)
}

// GetCartItem looks up a single cart item by id.
func GetCartItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	oid, err := utils.ParseObjectID(ps.ByName("id"))
	if err != nil {
		utils.RespondWithMessage(w, http.StatusBadRequest, "Invalid cart id")
		return
	}

	var item bson.M
	err = db.CartsCollection.FindOne(ctx, bson.M{"_id": oid}).Decode(&item)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithJSON(w, http.StatusOK, nil)
		return
	}
	if err != nil {
		log.Println("GetCartItem FindOne error:", err)
		utils.RespondWithMessage(w, http.StatusInternalServerError, "Failed to get cart item.")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, item)
}

// AddCartItem inserts the posted item verbatim.
func AddCartItem(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var item bson.M
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		utils.RespondWithMessage(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	result, err := db.CartsCollection.InsertOne(ctx, item)
	if err != nil {
		log.Println("AddCartItem InsertOne error:", err)
		utils.RespondWithMessage(w, http.StatusInternalServerError, "Failed to add to cart.")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, models.InsertAck{
		Acknowledged: true,
		InsertedID:   result.InsertedID,
	})
}

// DeleteCartItem removes one item from the cart.
func DeleteCartItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	oid, err := utils.ParseObjectID(ps.ByName("id"))
	if err != nil {
		utils.RespondWithMessage(w, http.StatusBadRequest, "Invalid cart id")
		return
	}

	result, err := db.CartsCollection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		log.Println("DeleteCartItem DeleteOne error:", err)
		utils.RespondWithMessage(w, http.StatusInternalServerError, "Failed to delete cart item.")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, models.DeleteAck{
		Acknowledged: true,
		DeletedCount: result.DeletedCount,
	})
}
