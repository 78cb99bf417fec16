package game

import "fmt"

// PlayerID identifies one of the two players. The zero value means "no
// player" and doubles as the tie marker for Game.Winner.
type PlayerID int

const NoPlayer PlayerID = 0

// Resource is one of the five producible resource kinds. ResourceNone marks
// the desert hex, which never produces.
type Resource int

const (
	Brick Resource = iota
	Wood
	Sheep
	Wheat
	Ore

	numResources

	ResourceNone Resource = -1
)

// Resources lists every producible kind in a fixed order.
var Resources = [...]Resource{Brick, Wood, Sheep, Wheat, Ore}

var resourceNames = map[Resource]string{
	Brick:        "brick",
	Wood:         "wood",
	Sheep:        "sheep",
	Wheat:        "wheat",
	Ore:          "ore",
	ResourceNone: "desert",
}

func (r Resource) String() string {
	if name, ok := resourceNames[r]; ok {
		return name
	}
	return fmt.Sprintf("resource(%d)", int(r))
}

func (r Resource) Valid() bool {
	return r >= 0 && r < numResources
}

func (r Resource) MarshalText() ([]byte, error) {
	name, ok := resourceNames[r]
	if !ok {
		return nil, fmt.Errorf("unknown resource %d", int(r))
	}
	return []byte(name), nil
}

func (r *Resource) UnmarshalText(text []byte) error {
	for kind, name := range resourceNames {
		if name == string(text) {
			*r = kind
			return nil
		}
	}
	return fmt.Errorf("unknown resource %q", string(text))
}

// Port is a harbor attached to a board position. A generic port trades any
// resource at 3:1; a resource port trades its own resource at 2:1.
type Port int

const (
	PortNone Port = iota
	PortGeneric
	PortBrick
	PortWood
	PortSheep
	PortWheat
	PortOre
)

var portNames = map[Port]string{
	PortNone:    "",
	PortGeneric: "generic",
	PortBrick:   "brick",
	PortWood:    "wood",
	PortSheep:   "sheep",
	PortWheat:   "wheat",
	PortOre:     "ore",
}

// PortFor returns the resource-specific port for a resource kind.
func PortFor(r Resource) Port {
	switch r {
	case Brick:
		return PortBrick
	case Wood:
		return PortWood
	case Sheep:
		return PortSheep
	case Wheat:
		return PortWheat
	case Ore:
		return PortOre
	}
	return PortNone
}

// Resource returns the resource a specific port trades, and whether the port
// is resource-specific at all.
func (p Port) Resource() (Resource, bool) {
	switch p {
	case PortBrick:
		return Brick, true
	case PortWood:
		return Wood, true
	case PortSheep:
		return Sheep, true
	case PortWheat:
		return Wheat, true
	case PortOre:
		return Ore, true
	}
	return ResourceNone, false
}

func (p Port) String() string {
	if name, ok := portNames[p]; ok {
		return name
	}
	return fmt.Sprintf("port(%d)", int(p))
}

func (p Port) MarshalText() ([]byte, error) {
	name, ok := portNames[p]
	if !ok {
		return nil, fmt.Errorf("unknown port %d", int(p))
	}
	return []byte(name), nil
}

func (p *Port) UnmarshalText(text []byte) error {
	for port, name := range portNames {
		if name == string(text) {
			*p = port
			return nil
		}
	}
	return fmt.Errorf("unknown port %q", string(text))
}
