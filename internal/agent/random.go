package agent

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Random plays a uniformly random legal move.
type Random struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandom - rng may be nil, in which case a time-seeded source is used.
func NewRandom(rng *rand.Rand) *Random {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano())) //nolint: gosec // it's ok
	}

	return &Random{rng: rng}
}

func (that *Random) Name() string {
	return KindRandom
}

func (that *Random) ChooseMove(_ context.Context, board *entity.Board, _ entity.Mark) (entity.Move, bool) {
	availableCells := board.LegalMoves()
	if len(availableCells) == 0 {
		return entity.Move{}, false
	}

	that.mu.Lock()
	index := that.rng.Intn(len(availableCells))
	that.mu.Unlock()

	return availableCells[index], true
}
