package cloudview

import "slices"

// nodeIDCounter is only touched from the game loop goroutine.
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is the scene graph element hosting the cloud view and its sprites.
// A single flat struct is used for both node types.
type Node struct {
	// Identity
	ID   uint32
	Name string
	Type NodeType

	// Hierarchy
	Parent   *Node
	children []*Node

	// Local position relative to the parent's top-left corner.
	X, Y float64

	// Measured size. Sprites are drawn scaled to this box. A node with
	// FillParent set is re-measured to its parent's size on every draw.
	Width, Height float64
	FillParent    bool

	// Computed (unexported, updated during traversal)
	worldX, worldY float64
	worldAlpha     float64
	transformDirty bool

	// Visibility
	Alpha   float64
	Visible bool

	// Container fields: Fill paints Color over the measured box, Clip
	// restricts the subtree's drawing to it.
	Fill  bool
	Clip  bool
	Color Color

	// Image drawn by sprite nodes, scaled to Width×Height.
	Source *ImageSource

	// Metadata
	UserData any

	// Lifecycle hooks (nil by default).
	//
	// OnUpdate is called once per Scene.Update with the tick length in
	// seconds. OnDraw is called after the node and its subtree were drawn,
	// with the measured size known. OnDetach is called after the node has
	// been removed from its parent.
	OnUpdate func(dt float64)
	OnDraw   func()
	OnDetach func()

	disposed bool
}

// nodeDefaults fills in the fields every constructor shares.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.Alpha = 1
	n.Color = ColorWhite
	n.Visible = true
	n.transformDirty = true
}

// NewContainer creates a group node. It draws nothing unless Fill is set.
func NewContainer(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeContainer}
	nodeDefaults(n)
	return n
}

// NewSprite creates a sprite node that renders src scaled to size×size.
func NewSprite(name string, src *ImageSource, size float64) *Node {
	n := &Node{Name: name, Type: NodeTypeSprite, Source: src, Width: size, Height: size}
	nodeDefaults(n)
	return n
}

// --- Tree manipulation ---

// AddChild appends child as the last (topmost) child, moving it from its
// current parent if it has one. Panics on a nil child or a cycle.
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("cloudview: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("cloudview: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	markSubtreeDirty(child)
	if globalDebug {
		debugCheckChildCount(n)
	}
}

// RemoveChild detaches child from this node and fires its OnDetach hook.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("cloudview: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	markSubtreeDirty(child)
	if child.OnDetach != nil {
		child.OnDetach()
	}
}

// RemoveFromParent detaches n from its parent, if any.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the children in draw order. The slice MUST NOT be
// mutated.
func (n *Node) Children() []*Node {
	return n.children
}

func (n *Node) NumChildren() int {
	return len(n.children)
}

// --- Disposal ---

// Dispose detaches n and releases it and its whole subtree. A disposed node
// must not be reused.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	n.Source = nil
	n.UserData = nil
	n.OnUpdate = nil
	n.OnDraw = nil
	n.OnDetach = nil
}

// IsDisposed reports whether Dispose has been called on n or an ancestor.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is node or one of its ancestors.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr drops child from n.children. child.Parent is left for
// the caller to reset.
func (n *Node) removeChildByPtr(child *Node) {
	if i := slices.Index(n.children, child); i >= 0 {
		n.children = slices.Delete(n.children, i, i+1)
	}
}

// markSubtreeDirty forces a world transform refresh below and at n.
func markSubtreeDirty(n *Node) {
	n.transformDirty = true
	for _, c := range n.children {
		markSubtreeDirty(c)
	}
}
