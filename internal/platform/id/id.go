package id

import (
	"fmt"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
)

// Generator creates opaque identifiers.
type Generator interface {
	New() string
}

// UUID issues random v4 identifiers, used for sessions.
type UUID struct{}

func (UUID) New() string {
	return uuid.NewString()
}

// Snowflake issues time-ordered identifiers, used for draw batches.
type Snowflake struct {
	node *snowflake.Node
}

func NewSnowflake(nodeID int64) (*Snowflake, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("new snowflake node: %w", err)
	}
	return &Snowflake{node: node}, nil
}

func (s *Snowflake) New() string {
	return s.node.Generate().String()
}
