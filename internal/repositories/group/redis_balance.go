package group

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/KirkDiggler/betabeer/internal/models"
	"github.com/redis/go-redis/v9"
)

// NegativeBalanceError is returned when a commit would leave a balance below zero
type NegativeBalanceError struct {
	UserID  string
	Field   models.BalanceField
	Unit    models.DrinkUnit
	Current int
	Delta   int
}

// Error implements the error interface
func (e *NegativeBalanceError) Error() string {
	return fmt.Sprintf("balance of %s would go negative: %d %s to %s %+d",
		e.UserID, e.Current, e.Unit, e.Field, e.Delta)
}

func balanceKey(groupID, userID string) string {
	return fmt.Sprintf("%s%s:%s", balanceKeyPrefix, groupID, userID)
}

func groupBalancesKey(groupID string) string {
	return fmt.Sprintf("%s%s", groupBalancesKeyPrefix, groupID)
}

// balanceHashField names the hash field holding one unit of one balance field
func balanceHashField(field models.BalanceField, unit models.DrinkUnit) string {
	return fmt.Sprintf("%s:%s:%s", field, unit.DrinkType, unit.MeasureType)
}

func parseBalanceHashField(hashField string) (models.BalanceField, models.DrinkUnit, error) {
	parts := strings.Split(hashField, ":")
	if len(parts) != 3 {
		return "", models.DrinkUnit{}, fmt.Errorf("malformed balance field %q", hashField)
	}

	field := models.BalanceField(parts[0])
	if field != models.BalanceFieldConsume && field != models.BalanceFieldDistribute {
		return "", models.DrinkUnit{}, fmt.Errorf("unknown balance field %q", parts[0])
	}

	unit := models.DrinkUnit{
		DrinkType:   models.DrinkType(parts[1]),
		MeasureType: models.MeasureType(parts[2]),
	}
	if !unit.Valid() {
		return "", models.DrinkUnit{}, fmt.Errorf("unknown drink unit in balance field %q", hashField)
	}

	return field, unit, nil
}

// deltaUsers returns the distinct users touched by deltas, sorted
func deltaUsers(deltas []models.BalanceDelta) []string {
	seen := make(map[string]struct{})
	var users []string
	for _, d := range deltas {
		if _, ok := seen[d.UserID]; ok {
			continue
		}
		seen[d.UserID] = struct{}{}
		users = append(users, d.UserID)
	}
	sort.Strings(users)
	return users
}

// checkBalances reads the watched balances and rejects any delta that would
// take a count below zero. Deltas for the same key are summed first.
func checkBalances(ctx context.Context, tx *redis.Tx, groupID string, deltas []models.BalanceDelta) error {
	type slot struct {
		userID string
		field  string
	}
	sums := make(map[slot]int)
	var order []slot
	first := make(map[slot]models.BalanceDelta)
	for _, d := range deltas {
		s := slot{userID: d.UserID, field: balanceHashField(d.Field, d.Unit())}
		if _, ok := sums[s]; !ok {
			order = append(order, s)
			first[s] = d
		}
		sums[s] += d.Amount
	}

	for _, s := range order {
		if sums[s] >= 0 {
			continue
		}

		current, err := tx.HGet(ctx, balanceKey(groupID, s.userID), s.field).Int()
		if err != nil && !errors.Is(err, redis.Nil) {
			return fmt.Errorf("failed to read balance: %w", err)
		}

		if current+sums[s] < 0 {
			d := first[s]
			return &NegativeBalanceError{
				UserID:  s.userID,
				Field:   d.Field,
				Unit:    d.Unit(),
				Current: current,
				Delta:   sums[s],
			}
		}
	}

	return nil
}

// applyBalanceDeltas queues the increments for a commit and keeps the
// group's balance index current. Fields that reach zero stay as "0".
func applyBalanceDeltas(ctx context.Context, pipe redis.Pipeliner, groupID string, deltas []models.BalanceDelta) {
	for _, d := range deltas {
		key := balanceKey(groupID, d.UserID)
		pipe.HIncrBy(ctx, key, balanceHashField(d.Field, d.Unit()), int64(d.Amount))
		pipe.SAdd(ctx, groupBalancesKey(groupID), d.UserID)
	}
}

// GetBalance retrieves the persisted ledger balance of one member
func (r *redisRepository) GetBalance(ctx context.Context, input *GetBalanceInput) (*GetBalanceOutput, error) {
	if input == nil || input.GroupID == "" || input.UserID == "" {
		return nil, errors.New("input, group ID and user ID cannot be empty")
	}

	values, err := r.client.HGetAll(ctx, balanceKey(input.GroupID, input.UserID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get balance: %w", err)
	}

	balance := models.NewBalance(input.GroupID, input.UserID)
	for hashField, raw := range values {
		field, unit, err := parseBalanceHashField(hashField)
		if err != nil {
			return nil, err
		}

		amount, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse balance field %s: %w", hashField, err)
		}

		if err := balance.Field(field).Add(unit.DrinkType, unit.MeasureType, amount); err != nil {
			return nil, fmt.Errorf("stored balance field %s is negative: %w", hashField, err)
		}
	}

	return &GetBalanceOutput{Balance: balance}, nil
}

func sortedStrings(values []string) []string {
	out := append([]string(nil), values...)
	sort.Strings(out)
	return out
}
