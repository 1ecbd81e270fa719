package group

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/betabeer/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	groupKeyPrefix         = "group:"
	userGroupsKeyPrefix    = "user_groups:"
	balanceKeyPrefix       = "balance:"
	groupBalancesKeyPrefix = "group_balances:"
	drinkKeyPrefix         = "drink:"
	playerDrinksKeyPrefix  = "player_drinks:"
)

var (
	// ErrGroupNotFound is returned when a group is not found
	ErrGroupNotFound = errors.New("group not found")

	// ErrGroupExists is returned when creating a group whose ID is taken
	ErrGroupExists = errors.New("group already exists")

	// ErrVersionConflict is returned when a group changed since it was read
	ErrVersionConflict = errors.New("group version conflict")
)

// Config holds configuration for the Redis group repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed group repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func groupKey(groupID string) string {
	return fmt.Sprintf("%s%s", groupKeyPrefix, groupID)
}

func userGroupsKey(userID string) string {
	return fmt.Sprintf("%s%s", userGroupsKeyPrefix, userID)
}

// CreateGroup stores a new group record at version 1 and indexes its members
func (r *redisRepository) CreateGroup(ctx context.Context, input *CreateGroupInput) (*CreateGroupOutput, error) {
	if input == nil || input.Group == nil {
		return nil, errors.New("input and group cannot be nil")
	}
	if input.Group.ID == "" {
		return nil, errors.New("group ID cannot be empty")
	}

	stored := input.Group.Clone()
	stored.Version = 1

	groupJSON, err := json.Marshal(stored)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal group: %w", err)
	}

	created, err := r.client.SetNX(ctx, groupKey(stored.ID), groupJSON, 0).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to save group: %w", err)
	}
	if !created {
		return nil, ErrGroupExists
	}

	pipe := r.client.Pipeline()
	for _, userID := range stored.Members {
		pipe.SAdd(ctx, userGroupsKey(userID), stored.ID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to index group members: %w", err)
	}

	return &CreateGroupOutput{Group: stored}, nil
}

// GetGroup retrieves a group by ID
func (r *redisRepository) GetGroup(ctx context.Context, input *GetGroupInput) (*GetGroupOutput, error) {
	if input == nil || input.GroupID == "" {
		return nil, errors.New("input and group ID cannot be empty")
	}

	group, err := readGroup(ctx, r.client, input.GroupID)
	if err != nil {
		return nil, err
	}

	return &GetGroupOutput{Group: group}, nil
}

// getter is satisfied by both the client and a watching transaction
type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func readGroup(ctx context.Context, c getter, groupID string) (*models.Group, error) {
	groupJSON, err := c.Get(ctx, groupKey(groupID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	var group models.Group
	if err := json.Unmarshal(groupJSON, &group); err != nil {
		return nil, fmt.Errorf("failed to unmarshal group: %w", err)
	}

	return &group, nil
}

// CommitGroup writes the group, balance deltas and audit records in one MULTI.
// The group key and every touched balance key are watched, so a concurrent
// writer makes the transaction fail instead of interleaving.
func (r *redisRepository) CommitGroup(ctx context.Context, input *CommitGroupInput) (*CommitGroupOutput, error) {
	if input == nil || input.Group == nil {
		return nil, errors.New("input and group cannot be nil")
	}
	if input.Group.ID == "" {
		return nil, errors.New("group ID cannot be empty")
	}

	group := input.Group
	watched := []string{groupKey(group.ID)}
	for _, userID := range deltaUsers(input.Deltas) {
		watched = append(watched, balanceKey(group.ID, userID))
	}

	next := group.Clone()
	next.Version = group.Version + 1

	groupJSON, err := json.Marshal(next)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal group: %w", err)
	}

	txf := func(tx *redis.Tx) error {
		stored, err := readGroup(ctx, tx, group.ID)
		if err != nil {
			return err
		}
		if stored.Version != group.Version {
			return ErrVersionConflict
		}

		if err := checkBalances(ctx, tx, group.ID, input.Deltas); err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, groupKey(group.ID), groupJSON, 0)

			for _, userID := range next.Members {
				if !stored.IsMember(userID) {
					pipe.SAdd(ctx, userGroupsKey(userID), group.ID)
				}
			}
			for _, userID := range stored.Members {
				if !next.IsMember(userID) {
					pipe.SRem(ctx, userGroupsKey(userID), group.ID)
				}
			}

			applyBalanceDeltas(ctx, pipe, group.ID, input.Deltas)

			return addDrinkRecords(ctx, pipe, input.Transactions)
		})
		return err
	}

	if err := r.client.Watch(ctx, txf, watched...); err != nil {
		if errors.Is(err, redis.TxFailedErr) {
			return nil, ErrVersionConflict
		}
		var negative *NegativeBalanceError
		if errors.Is(err, ErrGroupNotFound) || errors.Is(err, ErrVersionConflict) || errors.As(err, &negative) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to commit group: %w", err)
	}

	return &CommitGroupOutput{Version: next.Version}, nil
}

// DeleteGroup removes the group record, every balance in it, the member
// indexes and the group's distribution audit records
func (r *redisRepository) DeleteGroup(ctx context.Context, input *DeleteGroupInput) error {
	if input == nil || input.GroupID == "" {
		return errors.New("input and group ID cannot be empty")
	}

	balancesKey := groupBalancesKey(input.GroupID)

	txf := func(tx *redis.Tx) error {
		group, err := readGroup(ctx, tx, input.GroupID)
		if err != nil {
			return err
		}

		balanceUsers, err := tx.SMembers(ctx, balancesKey).Result()
		if err != nil {
			return fmt.Errorf("failed to get group balances: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Del(ctx, groupKey(group.ID))

			for _, userID := range group.Members {
				pipe.SRem(ctx, userGroupsKey(userID), group.ID)
			}

			for _, userID := range balanceUsers {
				pipe.Del(ctx, balanceKey(group.ID, userID))
			}
			pipe.Del(ctx, balancesKey)

			removeDrinkRecords(ctx, pipe, group.DistributionHistory)
			return nil
		})
		return err
	}

	if err := r.client.Watch(ctx, txf, groupKey(input.GroupID), balancesKey); err != nil {
		if errors.Is(err, redis.TxFailedErr) {
			return ErrVersionConflict
		}
		if errors.Is(err, ErrGroupNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete group: %w", err)
	}

	return nil
}

// GetGroupIDsForUser lists the groups a user belongs to
func (r *redisRepository) GetGroupIDsForUser(ctx context.Context, input *GetGroupIDsForUserInput) (*GetGroupIDsForUserOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	groupIDs, err := r.client.SMembers(ctx, userGroupsKey(input.UserID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get groups for user: %w", err)
	}

	return &GetGroupIDsForUserOutput{GroupIDs: sortedStrings(groupIDs)}, nil
}
