package cloudview

import "fmt"

// CloudID addresses a cloud in its view's pool. An ID resolves only while the
// pool generation that issued it is current; rebuilding the pool invalidates
// every outstanding ID at once.
type CloudID struct {
	gen  uint32
	slot int32
}

// String returns "gen:slot".
func (id CloudID) String() string {
	return fmt.Sprintf("%d:%d", id.gen, id.slot)
}

// Cloud is one drifting sprite.
type Cloud struct {
	ID     CloudID
	Size   int
	Source *ImageSource

	node *Node
}

// Node returns the sprite node drawing this cloud.
func (c *Cloud) Node() *Node {
	return c.node
}

// Position returns the cloud's top-left corner relative to its view.
func (c *Cloud) Position() (x, y float64) {
	return c.node.X, c.node.Y
}

// cloudPool is an arena of clouds. Slots are dense; a rebuild bumps the
// generation and replaces every slot.
type cloudPool struct {
	gen    uint32
	clouds []*Cloud
}

// resolve returns the cloud for id, or nil if it belongs to an older
// generation.
func (p *cloudPool) resolve(id CloudID) *Cloud {
	if id.gen != p.gen || id.slot < 0 || int(id.slot) >= len(p.clouds) {
		return nil
	}
	return p.clouds[id.slot]
}

// clear disposes every cloud node and invalidates all IDs.
func (p *cloudPool) clear() {
	for i, c := range p.clouds {
		c.node.Dispose()
		p.clouds[i] = nil
	}
	p.clouds = p.clouds[:0]
	p.gen++
}

// rebuild clears the pool and fills it with n clouds made by spawn, each
// already attached to parent.
func (p *cloudPool) rebuild(n int, parent *Node, spawn func(id CloudID) *Cloud) {
	p.clear()
	for i := 0; i < n; i++ {
		c := spawn(CloudID{gen: p.gen, slot: int32(i)})
		parent.AddChild(c.node)
		p.clouds = append(p.clouds, c)
	}
}

func (p *cloudPool) len() int {
	return len(p.clouds)
}
