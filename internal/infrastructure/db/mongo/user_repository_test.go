package mongo

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/todoapp/task-manager/internal/core/domain"
)

func TestUserRepository_Create(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("success", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		user, err := repo.Create(context.Background(), &domain.User{Username: "alice", PasswordHash: "hash"})
		if err != nil {
			mt.Fatalf("unexpected error: %v", err)
		}
		if _, err := primitive.ObjectIDFromHex(user.ID); err != nil {
			mt.Fatalf("expected hex ObjectID, got %q", user.ID)
		}
		if user.Username != "alice" || user.PasswordHash != "hash" {
			mt.Fatalf("unexpected user: %+v", user)
		}
	})

	mt.Run("duplicate username", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: todo.users index: username_1",
		}))

		_, err := repo.Create(context.Background(), &domain.User{Username: "alice", PasswordHash: "hash"})
		if !errors.Is(err, domain.ErrUserExists) {
			mt.Fatalf("expected ErrUserExists, got %v", err)
		}
	})
}

func TestUserRepository_FindByUsername(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("found", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "todo.users", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: id},
			{Key: "username", Value: "bob"},
			{Key: "password", Value: "$2a$10$hash"},
		}))

		user, err := repo.FindByUsername(context.Background(), "bob")
		if err != nil {
			mt.Fatalf("unexpected error: %v", err)
		}
		if user.ID != id.Hex() || user.Username != "bob" || user.PasswordHash != "$2a$10$hash" {
			mt.Fatalf("unexpected user: %+v", user)
		}
	})

	mt.Run("not found", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "todo.users", mtest.FirstBatch))
		mt.ClearEvents()

		if _, err := repo.FindByUsername(context.Background(), "ghost"); !errors.Is(err, domain.ErrUserNotFound) {
			mt.Fatalf("expected ErrUserNotFound, got %v", err)
		}
		if got := sentCommand(mt, "find").Lookup("filter", "username").StringValue(); got != "ghost" {
			mt.Fatalf("expected filter on username ghost, got %q", got)
		}
	})
}

func TestUserRepository_EnsureIndexes(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("unique username index", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		mt.ClearEvents()

		if err := repo.EnsureIndexes(context.Background()); err != nil {
			mt.Fatalf("unexpected error: %v", err)
		}

		index := firstIndex(mt, sentCommand(mt, "createIndexes"))
		if number(index.Lookup("key", "username")) != 1 {
			mt.Fatalf("expected index on username, got %s", index.Lookup("key"))
		}
		if unique, ok := index.Lookup("unique").BooleanOK(); !ok || !unique {
			mt.Fatalf("expected unique index, got %s", index)
		}
	})
}
