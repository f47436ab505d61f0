package ads

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
)

// ListAds returns advertisements, optionally filtered by ?email=.
func ListAds(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	filter := utils.EmailFilter(r.URL.Query().Get("email"))

	cursor, err := db.AdsCollection.Find(ctx, filter)
	if err != nil {
		log.Println("ListAds Find error:", err)
		utils.RespondWithMessage(w, http.StatusInternalServerError, "Failed to get advertisements.")
		return
	}
	defer cursor.Close(ctx)

	var ads []bson.M
	if err := cursor.All(ctx, &ads); err != nil {
		log.Println("ListAds cursor.All error:", err)
		utils.RespondWithMessage(w, http.StatusInternalServerError, "Failed to get advertisements.")
		return
	}
	if ads == nil {
		ads = []bson.M{}
	}

	utils.RespondWithJSON(w, http.StatusOK, ads)
}

// GetAd looks up a single advertisement by id.
func GetAd(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	oid, err := utils.ParseObjectID(ps.ByName("id"))
	if err != nil {
		utils.RespondWithMessage(w, http.StatusBadRequest, "Invalid advertisement id")
		return
	}

	var ad bson.M
	err = db.AdsCollection.FindOne(ctx, bson.M{"_id": oid}).Decode(&ad)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithJSON(w, http.StatusOK, nil)
		return
	}
	if err != nil {
		log.Println("GetAd FindOne error:", err)
		utils.RespondWithMessage(w, http.StatusInternalServerError, "Failed to get advertisement.")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, ad)
}

// CreateAd inserts the posted advertisement verbatim.
func CreateAd(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var ad bson.M
	if err := json.NewDecoder(r.Body).Decode(&ad); err != nil {
		utils.RespondWithMessage(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	result, err := db.AdsCollection.InsertOne(ctx, ad)
	if err != nil {
		log.Println("CreateAd InsertOne error:", err)
		utils.RespondWithMessage(w, http.StatusInternalServerError, "Failed to create advertisement.")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, models.InsertAck{
		Acknowledged: true,
		InsertedID:   result.InsertedID,
	})
}

// UpdateAd merges the posted fields into the advertisement.
func UpdateAd(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	oid, err := utils.ParseObjectID(ps.ByName("id"))
	if err != nil {
		utils.RespondWithMessage(w, http.StatusBadRequest, "Invalid advertisement id")
		return
	}

	var fields bson.M
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		utils.RespondWithMessage(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	result, err := db.AdsCollection.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": fields},
	)
	if err != nil {
		log.Println("UpdateAd UpdateOne error:", err)
		utils.RespondWithMessage(w, http.StatusInternalServerError, "Failed to update advertisement.")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, models.UpdateAck{
		Acknowledged:  true,
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
	})
}

// UpdateAdStatus sets only the status field.
func UpdateAdStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	oid, err := utils.ParseObjectID(ps.ByName("id"))
	if err != nil {
		utils.RespondWithMessage(w, http.StatusBadRequest, "Invalid advertisement id")
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithMessage(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	result, err := db.AdsCollection.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"status": body.Status}},
	)
	if err != nil {
		log.Println("UpdateAdStatus UpdateOne error:", err)
		utils.RespondWithMessage(w, http.StatusInternalServerError, "Failed to update advertisement.")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, models.UpdateAck{
		Acknowledged:  true,
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
	})
}

// DeleteAd removes an advertisement.
func DeleteAd(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	oid, err := utils.ParseObjectID(ps.ByName("id"))
	if err != nil {
		utils.RespondWithMessage(w, http.StatusBadRequest, "Invalid advertisement id")
		return
	}

	result, err := db.AdsCollection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		log.Println("DeleteAd DeleteOne error:", err)
		utils.RespondWithMessage(w, http.StatusInternalServerError, "Failed to delete advertisement.")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, models.DeleteAck{
		Acknowledged: true,
		DeletedCount: result.DeletedCount,
	})
}
