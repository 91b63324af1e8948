package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	mockedAgent "github.com/rocketscienceinc/tictactoe-engine/mocks/agent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var errRedisDown = errors.New("redis down")

func TestCached_ChooseMove(t *testing.T) {
	ctx := context.Background()
	key := entity.DecisionKey("stub", entity.PlayerO, "X../.../...")

	t.Run("Returns the cached decision without searching", func(t *testing.T) {
		// Given: a store holding a decision for the board
		store := mockedAgent.NewMockDecisionStore(t)
		inner := &stubAgent{}
		agent := NewCached(nil, inner, store)

		store.EXPECT().
			GetByKey(mock.Anything, key).
			Return(&entity.Decision{Move: entity.Move{Row: 1, Col: 1}}, nil).
			Once()

		// When: O chooses a move
		move, ok := agent.ChooseMove(ctx, mustParse(t, "X..", "...", "..."), entity.PlayerO)

		// Then: the cached move is played and the agent is not asked
		require.True(t, ok)
		assert.Equal(t, entity.Move{Row: 1, Col: 1}, move)
		assert.Equal(t, 0, inner.calls)
	})

	t.Run("Searches and saves on a miss", func(t *testing.T) {
		// Given: an empty store
		store := mockedAgent.NewMockDecisionStore(t)
		inner := &stubAgent{move: entity.Move{Row: 2, Col: 2}, ok: true}
		agent := NewCached(nil, inner, store)

		store.EXPECT().
			GetByKey(mock.Anything, key).
			Return(nil, apperror.ErrDecisionNotFound).
			Once()

		store.EXPECT().
			Save(mock.Anything, &entity.Decision{
				Agent: "stub",
				Board: "X../.../...",
				Mark:  entity.PlayerO,
				Move:  entity.Move{Row: 2, Col: 2},
			}).
			Return(nil).
			Once()

		// When: O chooses a move
		move, ok := agent.ChooseMove(ctx, mustParse(t, "X..", "...", "..."), entity.PlayerO)

		// Then: the inner agent decides once
		require.True(t, ok)
		assert.Equal(t, entity.Move{Row: 2, Col: 2}, move)
		assert.Equal(t, 1, inner.calls)
	})

	t.Run("Ignores store failures", func(t *testing.T) {
		// Given: a store that is down
		store := mockedAgent.NewMockDecisionStore(t)
		inner := &stubAgent{move: entity.Move{Row: 0, Col: 1}, ok: true}
		agent := NewCached(nil, inner, store)

		store.EXPECT().
			GetByKey(mock.Anything, key).
			Return(nil, errRedisDown).
			Once()

		store.EXPECT().
			Save(mock.Anything, mock.AnythingOfType("*entity.Decision")).
			Return(errRedisDown).
			Once()

		// When: O chooses a move
		move, ok := agent.ChooseMove(ctx, mustParse(t, "X..", "...", "..."), entity.PlayerO)

		// Then: the move still comes from the inner agent
		require.True(t, ok)
		assert.Equal(t, entity.Move{Row: 0, Col: 1}, move)
	})

	t.Run("Discards a decision that is not playable", func(t *testing.T) {
		// Given: a stored move pointing at an occupied cell
		store := mockedAgent.NewMockDecisionStore(t)
		inner := &stubAgent{move: entity.Move{Row: 1, Col: 1}, ok: true}
		agent := NewCached(nil, inner, store)

		store.EXPECT().
			GetByKey(mock.Anything, key).
			Return(&entity.Decision{Move: entity.Move{Row: 0, Col: 0}}, nil).
			Once()

		store.EXPECT().
			Save(mock.Anything, mock.AnythingOfType("*entity.Decision")).
			Return(nil).
			Once()

		// When: O chooses a move
		move, ok := agent.ChooseMove(ctx, mustParse(t, "X..", "...", "..."), entity.PlayerO)

		// Then: the inner agent decides again
		require.True(t, ok)
		assert.Equal(t, entity.Move{Row: 1, Col: 1}, move)
		assert.Equal(t, 1, inner.calls)
	})

	t.Run("Nothing is saved without a move", func(t *testing.T) {
		store := mockedAgent.NewMockDecisionStore(t)
		agent := NewCached(nil, &stubAgent{}, store)

		store.EXPECT().
			GetByKey(mock.Anything, mock.Anything).
			Return(nil, apperror.ErrDecisionNotFound).
			Once()

		_, ok := agent.ChooseMove(ctx, mustParse(t, "XOX", "XOO", "OXX"), entity.PlayerO)

		assert.False(t, ok)
	})
}

func TestNew_WrapsSearchAgentsWithStore(t *testing.T) {
	store := mockedAgent.NewMockDecisionStore(t)

	exhaustive, err := New(KindExhaustive, Options{Store: store})
	require.NoError(t, err)
	assert.IsType(t, &Cached{}, exhaustive)

	traced, err := New(KindExhaustive, Options{Store: store, Trace: &traceCollector{}})
	require.NoError(t, err)
	assert.IsType(t, &Search{}, traced)

	random, err := New(KindRandom, Options{Store: store})
	require.NoError(t, err)
	assert.IsType(t, &Random{}, random)
}
