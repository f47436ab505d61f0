package users

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

// ListUsers returns all users, optionally filtered by ?email=.
// The route is gated by the auth middleware.
func ListUsers(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if caller := utils.GetEmailFromRequest(r); caller != "" {
		log.Println("ListUsers requested by", caller)
	}

	filter := utils.EmailFilter(r.URL.Query().Get("email"))

	cursor, err := db.UsersCollection.Find(ctx, filter)
	if err != nil {
		log.Println("ListUsers Find error:", err)
		utils.RespondWithMessage(w, http.StatusInternalServerError, "Failed to get users.")
		return
	}
	defer cursor.Close(ctx)

	var users []bson.M
	if err := cursor.All(ctx, &users); err != nil {
		log.Println("ListUsers cursor.All error:", err)
		utils.RespondWithMessage(w, http.StatusInternalServerError, "Failed to get users.")
		return
	}
	if users == nil {
		users = []bson.M{}
	}

	utils.RespondWithJSON(w, http.StatusOK, users)
}

// GetUser looks up a single user by id. A missing document is passed
// through as a null body.
func GetUser(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	oid, err := utils.ParseObjectID(ps.ByName("id"))
	if err != nil {
		utils.RespondWithMessage(w, http.StatusBadRequest, "Invalid user id")
		return
	}

	var user bson.M
	err = db.UsersCollection.FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithJSON(w, http.StatusOK, nil)
		return
	}
	if err != nil {
		log.Println("GetUser FindOne error:", err)
		utils.RespondWithMessage(w, http.StatusInternalServerError, "Failed to get user.")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, user)
}

// GetUserRole returns the role stored for the given email.
func GetUserRole(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	email := ps.ByName("email")
	if email == "" {
		utils.RespondWithMessage(w, http.StatusBadRequest, "Email is required")
		return
	}

	var user struct {
		Role string `bson:"role"`
	}
	err := db.UsersCollection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithMessage(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		log.Println("GetUserRole FindOne error:", err)
		utils.RespondWithMessage(w, http.StatusInternalServerError, "Failed to get role")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"role": user.Role})
}

// CreateUser inserts the posted profile unless a user with the same email
// already exists. The email check and the insert are separate operations,
// so concurrent first sign-ins for one email can still race.
func CreateUser(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var user bson.M
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		utils.RespondWithMessage(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	email, _ := user["email"].(string)

	err := db.UsersCollection.FindOne(ctx, bson.M{"email": email}).Err()
	if err == nil {
		utils.RespondWithJSON(w, http.StatusOK, utils.M{
			"message":  "User already exists.",
			"inserted": false,
		})
		return
	}
	if err != mongo.ErrNoDocuments {
		log.Println("CreateUser FindOne error:", err)
		utils.RespondWithMessage(w, http.StatusInternalServerError, "Failed to insert the user.")
		return
	}

	result, err := db.UsersCollection.InsertOne(ctx, user)
	if err != nil {
		log.Println("CreateUser InsertOne error:", err)
		utils.RespondWithMessage(w, http.StatusInternalServerError, "Failed to insert the user.")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, models.InsertAck{
		Acknowledged: true,
		InsertedID:   result.InsertedID,
	})
}

// UpdateUserRole sets the role field for the user addressed by email.
func UpdateUserRole(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	email := ps.ByName("email")

	var body struct {
		Role string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithMessage(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	result, err := db.UsersCollection.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"role": body.Role}},
	)
	if err != nil {
		log.Println("UpdateUserRole UpdateOne error:", err)
		utils.RespondWithMessage(w, http.StatusInternalServerError, "Failed to update role.")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, models.UpdateAck{
		Acknowledged:  true,
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
	})
}
