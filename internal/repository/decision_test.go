package repository

import (
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDecision() *entity.Decision {
	return &entity.Decision{
		Agent: "exhaustive",
		Board: "X../.../...",
		Mark:  entity.PlayerO,
		Move:  entity.Move{Row: 1, Col: 1},
	}
}

func TestDecisionRepository_Save(t *testing.T) {
	ctx, st := suite.New(t)

	decisionRepo := NewDecisionRepository(st.Storage, 0)

	// When: Save is called
	err := decisionRepo.Save(ctx, newDecision())

	// Then: no error should be returned, and the decision is stored without expiry
	require.NoError(t, err)

	ttl, err := st.Storage.TTL(ctx, newDecision().Key()).Result()
	require.NoError(t, err)
	assert.Equal(t, time.Duration(-1), ttl)
}

func TestDecisionRepository_GetByKey(t *testing.T) {
	t.Run("GetByKey_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		decisionRepo := NewDecisionRepository(st.Storage, time.Hour)

		// Given: a stored decision
		decision := newDecision()
		require.NoError(t, decisionRepo.Save(ctx, decision))

		// When: GetByKey is called with its key
		retrieved, err := decisionRepo.GetByKey(ctx, decision.Key())

		// Then: the retrieved decision matches the saved one
		require.NoError(t, err)
		assert.Equal(t, decision, retrieved)
	})

	t.Run("GetByKey_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		decisionRepo := NewDecisionRepository(st.Storage, 0)

		// When: GetByKey is called with an unknown key
		retrieved, err := decisionRepo.GetByKey(ctx, "decision:nobody:X:.../.../...")

		// Then: ErrDecisionNotFound is returned
		require.ErrorIs(t, err, apperror.ErrDecisionNotFound)
		assert.Nil(t, retrieved)
	})
}

func TestDecisionRepository_DeleteByKey(t *testing.T) {
	t.Run("DeleteByKey_Success", func(t *testing.T) {
		ctx, st := suite.New(t)

		decisionRepo := NewDecisionRepository(st.Storage, 0)

		// Given: a stored decision
		decision := newDecision()
		require.NoError(t, decisionRepo.Save(ctx, decision))

		// When: DeleteByKey is called
		err := decisionRepo.DeleteByKey(ctx, decision.Key())

		// Then: the decision is gone
		require.NoError(t, err)

		_, err = decisionRepo.GetByKey(ctx, decision.Key())
		require.ErrorIs(t, err, apperror.ErrDecisionNotFound)
	})

	t.Run("DeleteByKey_NotFound", func(t *testing.T) {
		ctx, st := suite.New(t)

		decisionRepo := NewDecisionRepository(st.Storage, 0)

		err := decisionRepo.DeleteByKey(ctx, "decision:nobody:X:.../.../...")

		require.ErrorIs(t, err, apperror.ErrDecisionNotFound)
	})
}
