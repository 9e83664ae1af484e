package pkguid

import (
	"crypto/rand"
	"encoding/binary"

	"github.com/bwmarrin/snowflake"
)

// Snowflake generates numeric IDs using the Snowflake algorithm.
type Snowflake struct {
	node *snowflake.Node
}

func generateRandomNodeID() (int64, error) {
	var nodeID int64
	err := binary.Read(rand.Reader, binary.BigEndian, &nodeID)
	if err != nil {
		return 0, err
	}

	return nodeID & (1<<10 - 1), nil // Limiting to 10 bits for node ID
}

// Epoch is the snowflake epoch in milliseconds: Mon Jan 01 2024 00:00:00 UTC.
const Epoch int64 = 1704067200000

// NewSnowflake constructs a Snowflake generator. A negative nodeID picks a
// random node so single-instance deployments need no configuration.
func NewSnowflake(nodeID int64) (*Snowflake, error) {
	if nodeID < 0 {
		var err error
		nodeID, err = generateRandomNodeID()
		if err != nil {
			return nil, err
		}
	}

	snowflake.Epoch = Epoch

	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, err
	}

	return &Snowflake{node: node}, nil
}

// Generate returns a new unique numeric ID.
func (s *Snowflake) Generate() int64 {
	return s.node.Generate().Int64()
}
