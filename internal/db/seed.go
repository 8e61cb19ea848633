package db

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/mergington/highschool-gobackend/internal/models"
)

// seedTeachers are the accounts created on first run so a fresh deployment
// has someone who can sign in.
var seedTeachers = []struct {
	Username    string
	DisplayName string
	Role        string
	Password    string
}{
	{"mrodriguez", "Ms. Rodriguez", "teacher", "art123"},
	{"mchen", "Mr. Chen", "teacher", "chess456"},
	{"principal", "Principal Martinez", "admin", "admin789"},
}

// SeedTeachers inserts the default teacher accounts when the teachers
// collection is empty. Existing data is never touched.
func SeedTeachers(ctx context.Context, database *mongo.Database) error {
	collection := database.Collection("teachers")

	count, err := collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(seedTeachers))
	for _, seed := range seedTeachers {
		hash, err := bcrypt.GenerateFromPassword([]byte(seed.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		docs = append(docs, models.Teacher{
			Username:    seed.Username,
			DisplayName: seed.DisplayName,
			HPassword:   string(hash),
			Role:        seed.Role,
		})
	}

	if _, err := collection.InsertMany(ctx, docs); err != nil {
		return err
	}

	log.Printf("Seeded %d teacher accounts", len(docs))
	return nil
}
