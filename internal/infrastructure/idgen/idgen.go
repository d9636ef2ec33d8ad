// Package idgen provides the identifier strategies behind ports.IDGenerator.
package idgen

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"

	"github.com/hotelhub/account-service/internal/core/ports"
)

const (
	StrategyUUID = "uuid"
	StrategyULID = "ulid"
)

// UUID yields random version 4 UUIDs.
type UUID struct{}

func (UUID) Next() string { return uuid.NewString() }

// ULID yields lexicographically sortable identifiers. Ids created within the
// same millisecond stay monotonic.
type ULID struct{}

func (ULID) Next() string { return ulid.Make().String() }

// New returns the generator for strategy, defaulting to UUID.
func New(strategy string) (ports.IDGenerator, error) {
	switch strings.ToLower(strategy) {
	case "", StrategyUUID:
		return UUID{}, nil
	case StrategyULID:
		return ULID{}, nil
	default:
		return nil, fmt.Errorf("unknown id strategy %q", strategy)
	}
}
