/* picks_test.go
 * Contains unit tests for picks.go
 * Authors: Zachary Bower
 */

package store

import (
	"testing"

	"bet-tracker/api/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

// newMockStore builds a Store whose picks collection is the mtest mock collection
func newMockStore(mt *mtest.T) *Store {
	return &Store{
		Client:   mt.Client,
		Database: mt.DB,
		Collections: struct {
			Picks       *mongo.Collection
			GameResults *mongo.Collection
			Reports     *mongo.Collection
		}{
			Picks:       mt.Coll,
			GameResults: mt.Coll,
			Reports:     mt.Coll,
		},
	}
}

func TestStoreBet_Insert(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("successfully inserts new bet", func(mt *mtest.T) {
		store := newMockStore(mt)

		// Mock InsertOne success
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		id, err := store.StoreBet(CreateSampleBet("Big Smokey Picks", "2025-09-18"))
		assert.NoError(t, err)
		assert.NotEqual(t, primitive.NilObjectID, id)
	})
}

func TestGetBetsByDate_ReturnsMatches(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns bets for the date", func(mt *mtest.T) {
		store := newMockStore(mt)

		first := mtest.CreateCursorResponse(1, "test.picks", mtest.FirstBatch, bson.D{
			{Key: "expert_name", Value: "Big Smokey Picks"},
			{Key: "sport", Value: "MLB"},
			{Key: "bet_type", Value: "SPREAD"},
			{Key: "subject", Value: "Toronto Blue Jays"},
			{Key: "line", Value: -1.5},
			{Key: "has_line", Value: true},
			{Key: "game_date", Value: "2025-09-18"},
			{Key: "outcome", Value: "PENDING"},
		})
		killCursors := mtest.CreateCursorResponse(0, "test.picks", mtest.NextBatch)
		mt.AddMockResponses(first, killCursors)

		bets, err := store.GetBetsByDate("2025-09-18")
		require.NoError(t, err)
		require.Len(t, bets, 1)
		assert.Equal(t, "Big Smokey Picks", bets[0].ExpertName)
		assert.Equal(t, shared.BetSpread, bets[0].BetType)
		assert.Equal(t, shared.OutcomePending, bets[0].Outcome)
	})
}

func TestGetUnsettledBets_EmptyResult(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("returns empty slice when everything is settled", func(mt *mtest.T) {
		store := newMockStore(mt)

		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.picks", mtest.FirstBatch))

		bets, err := store.GetUnsettledBets("2025-09-18")
		require.NoError(t, err)
		assert.Empty(t, bets)
	})
}

func TestUpdateBetOutcome_Success(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("successfully updates outcome", func(mt *mtest.T) {
		store := newMockStore(mt)

		mt.AddMockResponses(bson.D{
			{Key: "ok", Value: 1},
			{Key: "n", Value: 1},
			{Key: "nModified", Value: 1},
		})

		err := store.UpdateBetOutcome(primitive.NewObjectID(), shared.OutcomeWin, "note", "MLB/2025-09-18/Toronto Blue Jays@Baltimore Orioles")
		assert.NoError(t, err)
	})
}

func TestUpdateBetOutcome_NotFound(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("errors when no bet matches the id", func(mt *mtest.T) {
		store := newMockStore(mt)

		mt.AddMockResponses(bson.D{
			{Key: "ok", Value: 1},
			{Key: "n", Value: 0},
			{Key: "nModified", Value: 0},
		})

		err := store.UpdateBetOutcome(primitive.NewObjectID(), shared.OutcomeWin, "note", "ref")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no bet found")
	})
}
