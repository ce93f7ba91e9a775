package ast

// ElementID is a handle into the tree's element arena (1-based).
type ElementID uint32

// NoElementID marks an absent child or a missing parent.
const NoElementID ElementID = 0

func (id ElementID) IsValid() bool { return id != NoElementID }

// Class separates the four element variants.
type Class uint8

const (
	ClassNode Class = iota
	ClassToken
	ClassList
	ClassSeparatedList
)

func (c Class) String() string {
	switch c {
	case ClassNode:
		return "Node"
	case ClassToken:
		return "Token"
	case ClassList:
		return "List"
	case ClassSeparatedList:
		return "SeparatedList"
	default:
		return "Class(?)"
	}
}
