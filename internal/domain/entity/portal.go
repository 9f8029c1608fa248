package entity

// Portal ends the level when the player touches it
type Portal struct {
	Body
	id        EntityID
	Triggered bool
}

// NewPortal creates a portal at the given position
func NewPortal(id EntityID, x, y, w, h, radius float64) *Portal {
	return &Portal{
		Body: Body{X: x, Y: y, W: w, H: h, Radius: radius},
		id:   id,
	}
}

// ID returns the portal's entity ID
func (p *Portal) ID() EntityID { return p.id }

// Kind returns KindPortal
func (p *Portal) Kind() Kind { return KindPortal }

// Physics returns the portal's body
func (p *Portal) Physics() *Body { return &p.Body }

// Trigger marks the portal as used. Returns false if it already was.
func (p *Portal) Trigger() bool {
	if p.Triggered {
		return false
	}
	p.Triggered = true
	return true
}
