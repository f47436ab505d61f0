package pay

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
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListPayments returns payment history latest first, optionally filtered
// by ?email=.
func ListPayments(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	filter := utils.EmailFilter(r.URL.Query().Get("email"))
	opts := options.Find().SetSort(bson.M{"paid_at": -1})

	cursor, err := db.PaymentsCollection.Find(ctx, filter, opts)
	if err != nil {
		log.Println("ListPayments Find error:", err)
		utils.RespondWithMessage(w, http.StatusInternalServerError, "Failed to get payment.")
		return
	}
	defer cursor.Close(ctx)

	var payments []models.Payment
	if err := cursor.All(ctx, &payments); err != nil {
		log.Println("ListPayments cursor.All error:", err)
		utils.RespondWithMessage(w, http.StatusInternalServerError, "Failed to get payment.")
		return
	}
	if payments == nil {
		payments = []models.Payment{}
	}

	utils.RespondWithJSON(w, http.StatusOK, payments)
}

// RecordPayment marks a cart paid and inserts the payment record, in that
// order. The cart update only matches when payment_status is not already
// "paid", so a concurrent duplicate submission loses the race and gets a
// 400 instead of producing a second record. The two writes are still not
// transactional: a crash between them leaves a paid cart with no payment
// document.
func RecordPayment(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req models.PaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithMessage(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	oid, err := utils.ParseObjectID(req.CartID)
	if err != nil {
		utils.RespondWithMessage(w, http.StatusBadRequest, "Invalid cart id")
		return
	}

	updateResult, err := db.CartsCollection.UpdateOne(ctx,
		bson.M{"_id": oid, "payment_status": bson.M{"$ne": "paid"}},
		bson.M{"$set": bson.M{"payment_status": "paid"}},
	)
	if err != nil {
		log.Println("RecordPayment UpdateOne error:", err)
		utils.RespondWithMessage(w, http.StatusInternalServerError, "Failed to post payment.")
		return
	}
	if updateResult.ModifiedCount == 0 {
		utils.RespondWithMessage(w, http.StatusBadRequest, "Cart not found or already paid.")
		return
	}

	now := time.Now().UTC()
	payment := models.Payment{
		CartID:        req.CartID,
		Email:         req.Email,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		TransactionID: req.TransactionID,
		PaidAtString:  now.Format(time.RFC3339Nano),
		PaidAt:        now,
	}

	insertResult, err := db.PaymentsCollection.InsertOne(ctx, payment)
	if err != nil {
		log.Println("RecordPayment InsertOne error:", err)
		utils.RespondWithMessage(w, http.StatusInternalServerError, "Failed to post payment.")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"message":    "Payment recorded and cart marked as paid",
		"insertedId": insertResult.InsertedID,
	})
}
