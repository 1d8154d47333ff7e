package engine

import (
	"fmt"
	"sort"

	"github.com/scuttlehq/scuttle/internal/topology"
)

// kindOrder is the deletion sequence. It is dictated by deletion
// preconditions, not by the registry's display order: the function goes
// first so nothing still references the buckets, role, layer or log group
// when they are removed, buckets are purged and deleted while their keys
// still exist, and free-standing resources close out the run.
var kindOrder = []topology.Kind{
	topology.KindFunction,
	topology.KindLayer,
	topology.KindBucket,
	topology.KindTable,
	topology.KindKeyAlias,
	topology.KindRole,
	topology.KindUser,
	topology.KindLogGroup,
	topology.KindParameter,
}

// preconditions lists, per kind, the kinds that must already be gone when it
// is deleted. These are the constraints behind kindOrder; validateOrder
// checks the two against each other.
var preconditions = map[topology.Kind][]topology.Kind{
	topology.KindLayer:    {topology.KindFunction},
	topology.KindBucket:   {topology.KindFunction},
	topology.KindKeyAlias: {topology.KindBucket},
	topology.KindRole:     {topology.KindFunction},
	topology.KindLogGroup: {topology.KindFunction},
}

var kindRank = buildRank(kindOrder)

func init() {
	if err := validateOrder(kindOrder, preconditions); err != nil {
		panic("engine: invalid deletion order: " + err.Error())
	}
}

func buildRank(order []topology.Kind) map[topology.Kind]int {
	rank := make(map[topology.Kind]int, len(order))
	for i, k := range order {
		rank[k] = i
	}
	return rank
}

// DeletionOrder returns the kind sequence deletions follow.
func DeletionOrder() []topology.Kind {
	out := make([]topology.Kind, len(kindOrder))
	copy(out, kindOrder)
	return out
}

// validateOrder checks that order contains every kind exactly once and that
// every precondition edge points backwards in it.
func validateOrder(order []topology.Kind, pre map[topology.Kind][]topology.Kind) error {
	pos := make(map[topology.Kind]int, len(order))
	for i, k := range order {
		if _, dup := pos[k]; dup {
			return fmt.Errorf("kind %s appears twice in deletion order", k)
		}
		pos[k] = i
	}
	for _, k := range topology.Kinds() {
		if _, ok := pos[k]; !ok {
			return fmt.Errorf("kind %s missing from deletion order", k)
		}
	}
	for k, deps := range pre {
		for _, dep := range deps {
			if pos[dep] >= pos[k] {
				return fmt.Errorf("%s must be deleted before %s", dep, k)
			}
		}
	}
	return nil
}

// orderForDeletion regroups manifest resources by kindOrder. Within a kind,
// manifest order is preserved.
func orderForDeletion(resources []topology.Resource) []topology.Resource {
	ordered := make([]topology.Resource, len(resources))
	copy(ordered, resources)
	sort.SliceStable(ordered, func(i, j int) bool {
		return kindRank[ordered[i].Kind] < kindRank[ordered[j].Kind]
	})
	return ordered
}
