package board

import "testing"

func TestBoardHasFortySpaces(t *testing.T) {
	if len(Spaces) != Size {
		t.Fatalf("expected %d spaces, got %d", Size, len(Spaces))
	}
	if Spaces[0].Type != Go {
		t.Fatal("position 0 must be GO")
	}
	if Spaces[JailPosition].Type != Jail {
		t.Fatalf("position %d must be the jail", JailPosition)
	}
}

func TestSpacePropertyIdsMatchRegistry(t *testing.T) {
	seen := make(map[int]bool)
	for pos, space := range Spaces {
		if space.PropertyId < 0 {
			continue
		}
		if space.PropertyId != pos {
			t.Fatalf("space %d carries property id %d", pos, space.PropertyId)
		}
		data, ok := Properties[space.PropertyId]
		if !ok {
			t.Fatalf("space %d references missing property %d", pos, space.PropertyId)
		}
		if data.Name != space.Name {
			t.Fatalf("name mismatch at %d: %q vs %q", pos, data.Name, space.Name)
		}
		if data.Type != space.Type {
			t.Fatalf("type mismatch at %d: %s vs %s", pos, data.Type, space.Type)
		}
		seen[space.PropertyId] = true
	}
	if len(seen) != len(Properties) {
		t.Fatalf("registry has %d entries but board exposes %d", len(Properties), len(seen))
	}
}

func TestGroupMembersAreConsistent(t *testing.T) {
	for group, members := range Groups {
		for _, id := range members {
			data, ok := Properties[id]
			if !ok {
				t.Fatalf("group %s references missing property %d", group, id)
			}
			if data.Group != group {
				t.Fatalf("property %d claims group %q, listed under %q", id, data.Group, group)
			}
			if data.Type != Property {
				t.Fatalf("group member %d is not a street", id)
			}
			if len(data.Rents) != 6 {
				t.Fatalf("street %d needs a 6-step rent table, has %d", id, len(data.Rents))
			}
			if data.HouseCost <= 0 {
				t.Fatalf("street %d has no house cost", id)
			}
		}
	}
	grouped := 0
	for _, members := range Groups {
		grouped += len(members)
	}
	if grouped != 22 {
		t.Fatalf("expected 22 streets across groups, got %d", grouped)
	}
}

func TestRailroadsAndUtilities(t *testing.T) {
	for _, id := range Railroads {
		if Properties[id].Type != Railroad {
			t.Fatalf("property %d should be a railroad", id)
		}
		if len(Properties[id].Rents) != 4 {
			t.Fatalf("railroad %d needs a 4-step rent table", id)
		}
	}
	for _, id := range Utilities {
		if Properties[id].Type != Utility {
			t.Fatalf("property %d should be a utility", id)
		}
	}
}

func TestDecksHoldSixteenCards(t *testing.T) {
	for name, deck := range map[string][]Card{
		"chance":    ChanceCards(),
		"community": CommunityChestCards(),
	} {
		if len(deck) != 16 {
			t.Fatalf("%s deck has %d cards", name, len(deck))
		}
		jailFree := 0
		for _, card := range deck {
			if card.Description == "" {
				t.Fatalf("%s deck has a card without description", name)
			}
			if card.Action == ActionGetOutOfJail {
				jailFree++
			}
		}
		if jailFree != 1 {
			t.Fatalf("%s deck should hold exactly one Get Out of Jail Free card, has %d", name, jailFree)
		}
	}
}

func TestLookupHelpers(t *testing.T) {
	if _, err := GetByPos(-1); err == nil {
		t.Fatal("negative position must fail")
	}
	if _, err := GetByPos(Size); err == nil {
		t.Fatal("out-of-range position must fail")
	}
	space, err := GetByPos(39)
	if err != nil || space.Name != "Boardwalk" {
		t.Fatalf("expected Boardwalk, got %+v (%v)", space, err)
	}
	if _, err := GetById(2); err == nil {
		t.Fatal("non-ownable id must fail")
	}
	data, err := GetById(39)
	if err != nil || data.Price != 400 {
		t.Fatalf("expected Boardwalk data, got %+v (%v)", data, err)
	}
}
