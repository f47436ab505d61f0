package db

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	UsersCollection             *mongo.Collection
	ProductsCollection          *mongo.Collection
	ProductCategoriesCollection *mongo.Collection
	AdsCollection               *mongo.Collection
	CartsCollection             *mongo.Collection
	PaymentsCollection          *mongo.Collection
	Client                      *mongo.Client
)

// Init connects to MongoDB and binds the collection handles. It must be
// called once in main before any route is installed.
func Init(ctx context.Context, uri string) error {
	clientOptions := options.Client().ApplyURI(uri).SetServerAPIOptions(
		options.ServerAPI(options.ServerAPIVersion1))

	var err error
	Client, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		return err
	}

	UsersCollection = Client.Database("usersDB").Collection("users")
	ProductsCollection = Client.Database("productsDB").Collection("products")
	ProductCategoriesCollection = Client.Database("productsDB").Collection("productCategories")
	AdsCollection = Client.Database("adsDB").Collection("ads")
	CartsCollection = Client.Database("ordersDB").Collection("carts")
	PaymentsCollection = Client.Database("ordersDB").Collection("payments")

	return nil
}

// Close disconnects the client. Only called at process shutdown.
func Close(ctx context.Context) error {
	if Client == nil {
		return nil
	}
	return Client.Disconnect(ctx)
}
