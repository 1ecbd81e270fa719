package group

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/KirkDiggler/betabeer/internal/models"
	"github.com/redis/go-redis/v9"
)

func drinkKey(transactionID string) string {
	return fmt.Sprintf("%s%s", drinkKeyPrefix, transactionID)
}

func playerDrinksFromKey(userID string) string {
	return fmt.Sprintf("%s%s:from", playerDrinksKeyPrefix, userID)
}

func playerDrinksToKey(userID string) string {
	return fmt.Sprintf("%s%s:to", playerDrinksKeyPrefix, userID)
}

// addDrinkRecords queues audit records and their sender/recipient indexes
func addDrinkRecords(ctx context.Context, pipe redis.Pipeliner, transactions []*models.DrinkTransaction) error {
	for _, tx := range transactions {
		if tx.ID == "" {
			return errors.New("drink transaction ID cannot be empty")
		}

		recordJSON, err := json.Marshal(tx)
		if err != nil {
			return fmt.Errorf("failed to marshal drink transaction: %w", err)
		}

		pipe.Set(ctx, drinkKey(tx.ID), recordJSON, 0)

		score := float64(tx.Timestamp.Unix())
		pipe.ZAdd(ctx, playerDrinksFromKey(tx.FromUserID), redis.Z{Score: score, Member: tx.ID})
		pipe.ZAdd(ctx, playerDrinksToKey(tx.ToUserID), redis.Z{Score: score, Member: tx.ID})
	}
	return nil
}

// removeDrinkRecords queues deletion of audit records and their index entries
func removeDrinkRecords(ctx context.Context, pipe redis.Pipeliner, transactions []*models.DrinkTransaction) {
	for _, tx := range transactions {
		pipe.Del(ctx, drinkKey(tx.ID))
		pipe.ZRem(ctx, playerDrinksFromKey(tx.FromUserID), tx.ID)
		pipe.ZRem(ctx, playerDrinksToKey(tx.ToUserID), tx.ID)
	}
}

// GetUserTransactions retrieves every audit record a user sent or received
func (r *redisRepository) GetUserTransactions(ctx context.Context, input *GetUserTransactionsInput) (*GetUserTransactionsOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	// Use a pipeline to get both sets of IDs
	pipe := r.client.Pipeline()
	fromCmd := pipe.ZRange(ctx, playerDrinksFromKey(input.UserID), 0, -1)
	toCmd := pipe.ZRange(ctx, playerDrinksToKey(input.UserID), 0, -1)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to get drink IDs for user: %w", err)
	}

	// Combine and deduplicate drink IDs
	drinkIDs := make(map[string]struct{})
	for _, id := range fromCmd.Val() {
		drinkIDs[id] = struct{}{}
	}
	for _, id := range toCmd.Val() {
		drinkIDs[id] = struct{}{}
	}

	if len(drinkIDs) == 0 {
		return &GetUserTransactionsOutput{
			Transactions: []*models.DrinkTransaction{},
		}, nil
	}

	pipe = r.client.Pipeline()
	drinkCommands := make(map[string]*redis.StringCmd, len(drinkIDs))
	for id := range drinkIDs {
		drinkCommands[id] = pipe.Get(ctx, drinkKey(id))
	}

	// redis.Nil for a missing record surfaces here; it is handled per command below
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get drink records: %w", err)
	}

	transactions := make([]*models.DrinkTransaction, 0, len(drinkIDs))
	for id, cmd := range drinkCommands {
		recordJSON, err := cmd.Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				// Record was deleted between reading the index and fetching it
				continue
			}
			return nil, fmt.Errorf("failed to get drink record %s: %w", id, err)
		}

		var tx models.DrinkTransaction
		if err := json.Unmarshal(recordJSON, &tx); err != nil {
			return nil, fmt.Errorf("failed to unmarshal drink record %s: %w", id, err)
		}
		transactions = append(transactions, &tx)
	}

	sort.Slice(transactions, func(i, j int) bool {
		if !transactions[i].Timestamp.Equal(transactions[j].Timestamp) {
			return transactions[i].Timestamp.Before(transactions[j].Timestamp)
		}
		return transactions[i].ID < transactions[j].ID
	})

	return &GetUserTransactionsOutput{Transactions: transactions}, nil
}
