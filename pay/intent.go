package pay

import (
	"encoding/json"
	"net/http"

	"souk/models"
	"souk/stripepay"
	"souk/utils"

	"github.com/julienschmidt/httprouter"
)

// CreatePaymentIntent asks the gateway for a card payment intent and hands
// the client secret back for client-side confirmation.
func CreatePaymentIntent(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req models.PaymentIntentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	clientSecret, err := stripepay.CreatePaymentIntent(req.AmountInCents)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"clientSecret": clientSecret})
}
