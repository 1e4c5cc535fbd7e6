package codegen

import (
	"fmt"

	"github.com/thellimist/nodehub/internal/schema"
)

// CheckCollisions rejects a batch in which two distinct tool names
// derive the same node type. Identifier derivation is lossy ("a-b" and
// "a_b" both slug to "a-b"), so without this check the second bundle
// would silently overwrite the first. Runs before any file writes.
func CheckCollisions(schemas []schema.ToolSchema) error {
	byNodeType := make(map[string]string, len(schemas))
	for _, ts := range schemas {
		if prev, ok := byNodeType[ts.NodeType]; ok && prev != ts.Name {
			return fmt.Errorf("tools %q and %q both derive node type %q; rename one of them",
				prev, ts.Name, ts.NodeType)
		}
		byNodeType[ts.NodeType] = ts.Name
	}
	return nil
}
