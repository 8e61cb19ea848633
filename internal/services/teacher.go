package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/mergington/highschool-gobackend/internal/models"
)

type TeacherService struct {
	collection *mongo.Collection
}

func NewTeacherService(db *mongo.Database) *TeacherService {
	return &TeacherService{collection: db.Collection("teachers")}
}

// RequireSignedIn resolves a teacher by username. Existence in the teachers
// collection is the whole authorization check; there are no roles.
func (s *TeacherService) RequireSignedIn(ctx context.Context, username string) (*models.Teacher, error) {
	if username == "" {
		return nil, ErrAuthRequired
	}

	var teacher models.Teacher
	if err := s.collection.FindOne(ctx, bson.M{"_id": username}).Decode(&teacher); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrAuthRequired
		}
		return nil, err
	}

	return &teacher, nil
}

func (s *TeacherService) Login(ctx context.Context, username, password string) (*models.Teacher, error) {
	var teacher models.Teacher
	if err := s.collection.FindOne(ctx, bson.M{"_id": username}).Decode(&teacher); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(teacher.HPassword), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &teacher, nil
}
