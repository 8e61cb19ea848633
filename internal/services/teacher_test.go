package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
	"golang.org/x/crypto/bcrypt"
)

func teacherDoc(username, displayName, passwordHash string) bson.D {
	return bson.D{
		{Key: "_id", Value: username},
		{Key: "display_name", Value: displayName},
		{Key: "password", Value: passwordHash},
		{Key: "role", Value: "teacher"},
	}
}

func TestTeacherService(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("empty username is rejected without a lookup", func(mt *mtest.T) {
		svc := NewTeacherService(mt.DB)

		_, err := svc.RequireSignedIn(mt.Context(), "")
		require.ErrorIs(mt.T, err, ErrAuthRequired)
	})

	mt.Run("unknown username is rejected", func(mt *mtest.T) {
		svc := NewTeacherService(mt.DB)
		ns := mt.DB.Name() + ".teachers"

		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))
		_, err := svc.RequireSignedIn(mt.Context(), "nobody")
		require.ErrorIs(mt.T, err, ErrAuthRequired)
	})

	mt.Run("known username resolves the teacher", func(mt *mtest.T) {
		svc := NewTeacherService(mt.DB)
		ns := mt.DB.Name() + ".teachers"

		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			teacherDoc("mrodriguez", "Ms. Rodriguez", "irrelevant")))

		teacher, err := svc.RequireSignedIn(mt.Context(), "mrodriguez")
		require.NoError(mt.T, err)
		assert.Equal(mt.T, "mrodriguez", teacher.Username)
		assert.Equal(mt.T, "Ms. Rodriguez", teacher.DisplayName)
	})

	mt.Run("login verifies the password hash", func(mt *mtest.T) {
		svc := NewTeacherService(mt.DB)
		ns := mt.DB.Name() + ".teachers"

		hash, err := bcrypt.GenerateFromPassword([]byte("art123"), bcrypt.MinCost)
		require.NoError(mt.T, err)

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
				teacherDoc("mrodriguez", "Ms. Rodriguez", string(hash))),
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
				teacherDoc("mrodriguez", "Ms. Rodriguez", string(hash))),
		)

		teacher, err := svc.Login(mt.Context(), "mrodriguez", "art123")
		require.NoError(mt.T, err)
		assert.Equal(mt.T, "mrodriguez", teacher.Username)

		_, err = svc.Login(mt.Context(), "mrodriguez", "wrong")
		require.ErrorIs(mt.T, err, ErrInvalidCredentials)
	})

	mt.Run("login with unknown username fails the same way", func(mt *mtest.T) {
		svc := NewTeacherService(mt.DB)
		ns := mt.DB.Name() + ".teachers"

		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))
		_, err := svc.Login(mt.Context(), "nobody", "art123")
		require.ErrorIs(mt.T, err, ErrInvalidCredentials)
	})
}
