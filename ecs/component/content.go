package component

import "github.com/milk9111/spacezoom/procgen"

// Content marks an entity mirrored from a procedural record.
type Content struct {
	Category procgen.Category
	Index    int
}

var ContentComponent = NewComponent[Content]()
