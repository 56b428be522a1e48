package engine

import (
	"sort"

	"monopoly-engine/platform/board"
)

// Group and even-building predicates are recomputed on demand rather than
// cached; the property map is small and this avoids invalidation bugs.

func (g *Game) requireOwner(playerId, propertyId int) error {
	state, ok := g.Properties[propertyId]
	if !ok {
		return ruleErr("unknown property %d", propertyId)
	}
	if state.OwnerId != playerId {
		return ruleErr("player %d does not own property %d", playerId, propertyId)
	}
	return nil
}

func (g *Game) ownsGroup(playerId int, group string) bool {
	if group == "" {
		return false
	}
	for _, id := range board.Groups[group] {
		if g.Properties[id].OwnerId != playerId {
			return false
		}
	}
	return true
}

func (g *Game) groupHasHouses(propertyId int) bool {
	group := board.Properties[propertyId].Group
	if group == "" {
		return false
	}
	for _, id := range board.Groups[group] {
		if g.Properties[id].Houses > 0 {
			return true
		}
	}
	return false
}

func (g *Game) groupHasMortgage(group string) bool {
	if group == "" {
		return false
	}
	for _, id := range board.Groups[group] {
		if g.Properties[id].Mortgaged {
			return true
		}
	}
	return false
}

// canBuildEvenly holds when this property is at (or below) the group minimum,
// keeping the house spread across the group within 1 after the build.
func (g *Game) canBuildEvenly(propertyId int) bool {
	group := board.Properties[propertyId].Group
	if group == "" {
		return false
	}
	target := g.Properties[propertyId].Houses
	for _, id := range board.Groups[group] {
		if target > g.Properties[id].Houses {
			return false
		}
	}
	return true
}

// canSellEvenly is the mirror constraint: only a property at the group
// maximum may lose a house.
func (g *Game) canSellEvenly(propertyId int) bool {
	group := board.Properties[propertyId].Group
	if group == "" {
		return false
	}
	target := g.Properties[propertyId].Houses
	for _, id := range board.Groups[group] {
		if target < g.Properties[id].Houses {
			return false
		}
	}
	return true
}

// countOwnedUnmortgaged counts how many of the given properties the owner
// holds free of mortgage; feeds the railroad and utility rent tables.
func (g *Game) countOwnedUnmortgaged(ownerId int, propertyIds []int) int {
	count := 0
	for _, id := range propertyIds {
		state := g.Properties[id]
		if state.OwnerId == ownerId && !state.Mortgaged {
			count++
		}
	}
	return count
}

func (g *Game) countHousesHotels(playerId int) (int, int) {
	houses, hotels := 0, 0
	for _, state := range g.Properties {
		if state.OwnerId != playerId {
			continue
		}
		if state.Houses == 5 {
			hotels++
		} else {
			houses += state.Houses
		}
	}
	return houses, hotels
}

// sortedPropertyIds gives a stable iteration order over the property map so
// multi-property effects behave identically across runs.
func (g *Game) sortedPropertyIds() []int {
	ids := make([]int, 0, len(g.Properties))
	for id := range g.Properties {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
