package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type DecisionRepository interface {
	Save(ctx context.Context, decision *entity.Decision) error
	GetByKey(ctx context.Context, key string) (*entity.Decision, error)
	DeleteByKey(ctx context.Context, key string) error
}

type dbDecision struct {
	client *redis.Client
	ttl    time.Duration
}

// NewDecisionRepository - ttl of zero keeps decisions forever.
func NewDecisionRepository(client *redis.Client, ttl time.Duration) DecisionRepository {
	return &dbDecision{
		client: client,
		ttl:    ttl,
	}
}

func (that *dbDecision) Save(ctx context.Context, decision *entity.Decision) error {
	decisionJSON, err := json.Marshal(decision)
	if err != nil {
		return fmt.Errorf("could not marshal decision: %w", err)
	}

	err = that.client.Set(ctx, decision.Key(), decisionJSON, that.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to set decision: %w", err)
	}

	return nil
}

func (that *dbDecision) GetByKey(ctx context.Context, key string) (*entity.Decision, error) {
	response, err := that.client.Get(ctx, key).Result()

	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrDecisionNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get decision by key: %w", err)
	}

	var decision entity.Decision
	if err = json.Unmarshal([]byte(response), &decision); err != nil {
		return nil, fmt.Errorf("failed to unmarshal decision: %w", err)
	}

	return &decision, nil
}

func (that *dbDecision) DeleteByKey(ctx context.Context, key string) error {
	deleted, err := that.client.Del(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("failed to delete decision by key: %w", err)
	}

	if deleted == 0 {
		return apperror.ErrDecisionNotFound
	}

	return nil
}
