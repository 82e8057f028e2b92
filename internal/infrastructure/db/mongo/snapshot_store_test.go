package mongo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/homeservices/directory/internal/core/domain"
)

func TestSnapshotStore(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("missing document is not found", func(mt *mtest.T) {
		s := NewSnapshotStore(mt.DB, "")
		mt.AddMockResponses(mtest.CreateCursorResponse(0, mt.DB.Name()+"."+defaultCollection, mtest.FirstBatch))

		_, err := s.Load(ctx, domain.KeyReminders)
		assert.ErrorIs(mt, err, domain.ErrSnapshotNotFound)
	})

	mt.Run("load returns stored blob", func(mt *mtest.T) {
		s := NewSnapshotStore(mt.DB, "snapshots")
		mt.AddMockResponses(mtest.CreateCursorResponse(1, mt.DB.Name()+".snapshots", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: domain.KeyReminders},
			{Key: "data", Value: []byte(`[{"id":"r1"}]`)},
			{Key: "updated_at", Value: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)},
		}))

		got, err := s.Load(ctx, domain.KeyReminders)
		require.NoError(mt, err)
		assert.JSONEq(mt, `[{"id":"r1"}]`, string(got))
	})

	mt.Run("command error is not not-found", func(mt *mtest.T) {
		s := NewSnapshotStore(mt.DB, "")
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    13,
			Name:    "Unauthorized",
			Message: "not authorized",
		}))

		_, err := s.Load(ctx, domain.KeyUser)
		require.Error(mt, err)
		assert.NotErrorIs(mt, err, domain.ErrSnapshotNotFound)
	})

	mt.Run("save and delete", func(mt *mtest.T) {
		s := NewSnapshotStore(mt.DB, "")
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}, bson.E{Key: "nModified", Value: 1}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}),
		)

		require.NoError(mt, s.Save(ctx, domain.KeyUser, []byte(`{"id":"u"}`)))
		require.NoError(mt, s.Delete(ctx, domain.KeyUser))
	})
}
