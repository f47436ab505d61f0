package products

import (
	"context"
	"log"
	"net/http"
	"time"

	"souk/db"
	"souk/globals"
	"souk/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// ListProductCategories returns the categories nested under the storefront's
// root parent. The collection is read-only through this surface.
func ListProductCategories(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	cursor, err := db.ProductCategoriesCollection.Find(ctx, bson.M{"parentId": globals.CategoryRootID})
	if err != nil {
		log.Println("ListProductCategories Find error:", err)
		utils.RespondWithMessage(w, http.StatusInternalServerError, "Failed to get product categories.")
		return
	}
	defer cursor.Close(ctx)

	var categories []bson.M
	if err := cursor.All(ctx, &categories); err != nil {
		log.Println("ListProductCategories cursor.All error:", err)
		utils.RespondWithMessage(w, http.StatusInternalServerError, "Failed to get product categories.")
		return
	}
	if categories == nil {
		categories = []bson.M{}
	}

	utils.RespondWithJSON(w, http.StatusOK, categories)
}
