package products

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

// ListProducts returns products newest first, optionally filtered by ?email=.
func ListProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	filter := utils.EmailFilter(r.URL.Query().Get("email"))
	opts := options.Find().SetSort(bson.M{"date": -1})

	cursor, err := db.ProductsCollection.Find(ctx, filter, opts)
	if err != nil {
		log.Println("ListProducts Find error:", err)
		utils.RespondWithMessage(w, http.StatusInternalServerError, "Failed to get products.")
		return
	}
	defer cursor.Close(ctx)

	var products []bson.M
	if err := cursor.All(ctx, &products); err != nil {
		log.Println("ListProducts cursor.All error:", err)
		utils.RespondWithMessage(w, http.StatusInternalServerError, "Failed to get products.")
		return
	}
	if products == nil {
		products = []bson.M{}
	}

	utils.RespondWithJSON(w, http.StatusOK, products)
}

// GetProduct looks up a single product by id.
func GetProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	oid, err := utils.ParseObjectID(ps.ByName("id"))
	if err != nil {
		utils.RespondWithMessage(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	var product bson.M
	err = db.ProductsCollection.FindOne(ctx, bson.M{"_id": oid}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithJSON(w, http.StatusOK, nil)
		return
	}
	if err != nil {
		log.Println("GetProduct FindOne error:", err)
		utils.RespondWithMessage(w, http.StatusInternalServerError, "Failed to get product.")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, product)
}

// CreateProduct inserts the posted listing verbatim.
func CreateProduct(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var product bson.M
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		utils.RespondWithMessage(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	result, err := db.ProductsCollection.InsertOne(ctx, product)
	if err != nil {
		log.Println("CreateProduct InsertOne error:", err)
		utils.RespondWithMessage(w, http.StatusInternalServerError, "Failed to create product")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, models.InsertAck{
		Acknowledged: true,
		InsertedID:   result.InsertedID,
	})
}

// UpdateProduct merges the posted fields into the listing. Fields absent
// from the body are preserved.
func UpdateProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	oid, err := utils.ParseObjectID(ps.ByName("id"))
	if err != nil {
		utils.RespondWithMessage(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	var fields bson.M
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		utils.RespondWithMessage(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	result, err := db.ProductsCollection.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": fields},
	)
	if err != nil {
		log.Println("UpdateProduct UpdateOne error:", err)
		utils.RespondWithMessage(w, http.StatusInternalServerError, "Failed to update product")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, models.UpdateAck{
		Acknowledged:  true,
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
	})
}

// UpdateProductAdStatus sets only the adStatus field, independently of the
// rest of the document.
func UpdateProductAdStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	oid, err := utils.ParseObjectID(ps.ByName("id"))
	if err != nil {
		utils.RespondWithMessage(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	var body struct {
		AdStatus string `json:"adStatus"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithMessage(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	result, err := db.ProductsCollection.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"adStatus": body.AdStatus}},
	)
	if err != nil {
		log.Println("UpdateProductAdStatus UpdateOne error:", err)
		utils.RespondWithMessage(w, http.StatusInternalServerError, "Failed to update product")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, models.UpdateAck{
		Acknowledged:  true,
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
	})
}

// DeleteProduct removes a listing. Deleting an id that no longer exists is
// not an error; the ack carries a zero count.
func DeleteProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	oid, err := utils.ParseObjectID(ps.ByName("id"))
	if err != nil {
		utils.RespondWithMessage(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	result, err := db.ProductsCollection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		log.Println("DeleteProduct DeleteOne error:", err)
		utils.RespondWithMessage(w, http.StatusInternalServerError, "Failed to delete product")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, models.DeleteAck{
		Acknowledged: true,
		DeletedCount: result.DeletedCount,
	})
}
