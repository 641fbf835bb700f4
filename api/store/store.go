/* store.go
 * Contains the store struct and NewStore function. The methods for this package were split into three files:
 * picks, game_results and reports. Each of these files contain methods for interacting with that
 * part of the database
 * Authors: Zachary Bower
 */

package store

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	Client      *mongo.Client
	Database    *mongo.Database
	Collections struct {
		Picks       *mongo.Collection
		GameResults *mongo.Collection
		Reports     *mongo.Collection
	}
}

// Function for initialising Store. Initialises the db connection and collection handles
// Preconditions: Receives strings containing the database name and mongo URI
// Postconditions: Returns pointer to the Store object, or error if it occurs
func NewStore(dbName string, mongoURI string) (*Store, error) {
	client, err := mongo.Connect(context.TODO(), options.Client().ApplyURI(mongoURI))
	if err != nil {
		return nil, err
	}
	db := client.Database(dbName)

	return &Store{
		Client:   client,
		Database: db,
		Collections: struct {
			Picks       *mongo.Collection
			GameResults *mongo.Collection
			Reports     *mongo.Collection
		}{
			Picks:       db.Collection("picks"),
			GameResults: db.Collection("game_results"),
			Reports:     db.Collection("reports"),
		},
	}, nil
}
