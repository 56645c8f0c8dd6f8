package der

import (
	"encoding/json"
	"math/big"
)

// Kind discriminates how a Node represents its decoded content.
type Kind int

const (
	// KindConstructed holds an ordered sequence of child nodes.
	KindConstructed Kind = iota
	// KindInteger holds an arbitrary-precision integer.
	KindInteger
	// KindHex holds a lowercase hex rendering of the raw content.
	KindHex
	// KindBits holds a binary rendering of the raw content.
	KindBits
	// KindOID holds a dotted-decimal object identifier.
	KindOID
	// KindNull marks an absent value.
	KindNull
)

// Node is one decoded TLV unit. Length is the content length in bytes as
// declared in the TLV header, independent of the value representation.
// Each node exclusively owns its children; the tree is immutable after
// decoding.
type Node struct {
	Tag      Tag
	Length   int
	Kind     Kind
	Children []Node   // KindConstructed
	Int      *big.Int // KindInteger
	Str      string   // KindHex, KindBits, KindOID
}

// MarshalJSON renders the node with its tag name, declared length and a
// kind-appropriate value field.
func (n Node) MarshalJSON() ([]byte, error) {
	out := struct {
		Tag      string `json:"tag"`
		Length   int    `json:"length"`
		Value    any    `json:"value,omitempty"`
		Children []Node `json:"children,omitempty"`
	}{
		Tag:    n.Tag.String(),
		Length: n.Length,
	}

	switch n.Kind {
	case KindConstructed:
		out.Children = n.Children
	case KindInteger:
		out.Value = n.Int.String()
	case KindNull:
		// value stays absent
	default:
		out.Value = n.Str
	}

	return json.Marshal(out)
}
