package utils

import (
	"net/http"

	"souk/globals"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetEmailFromRequest returns the verified email of the authenticated
// request, or "" when there is none.
func GetEmailFromRequest(r *http.Request) string {
	email, ok := r.Context().Value(globals.EmailKey).(string)
	if !ok {
		return ""
	}
	return email
}

// EmailFilter builds the equality filter used by the list endpoints:
// empty email matches everything.
func EmailFilter(email string) bson.M {
	if email == "" {
		return bson.M{}
	}
	return bson.M{"email": email}
}

// ParseObjectID validates an id path parameter before it reaches the store.
// A malformed id must fail here rather than silently match nothing.
func ParseObjectID(id string) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(id)
}
