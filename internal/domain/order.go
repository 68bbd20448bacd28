package domain

// Length is a nominal beam length in metres.
type Length float64

const (
	// LengthBase is the catalog reference length.
	LengthBase Length = 12
	// LengthHalf is the short length; two of them pair into one slot.
	LengthHalf Length = 6
)

// Valid reports whether l is one of the supported nominal lengths.
func (l Length) Valid() bool { return l == LengthBase || l == LengthHalf }

// Represents one line of a customer order.
// Priority follows LIFO semantics: a lower value is loaded last and
// therefore unloaded first.
type OrderLine struct {
	BeamID        string
	Length        Length
	Quantity      int
	Priority      int
	FromOrderList bool
}
