package stripepay

import (
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/paymentintent"
)

// Init sets the gateway API key. Called once in main.
func Init(apiKey string) {
	stripe.Key = apiKey
}

// CreatePaymentIntent opens a card payment intent for the given amount in
// the smallest currency unit and returns the client-side secret used to
// confirm it.
func CreatePaymentIntent(amountInCents int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amountInCents),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", err
	}
	return intent.ClientSecret, nil
}
