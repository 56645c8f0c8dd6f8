package der

import (
	"encoding/hex"
	"fmt"
	"math"
	"math/big"
	"strings"
)

// Decode decodes the entire buffer as an ordered sequence of sibling TLV
// units. For the key material this package targets there is normally
// exactly one: a root SEQUENCE.
//
// Decoding is a pure depth-first pass over the buffer. The buffer is
// never mutated and all value bytes are copied out, so the same buffer
// may be decoded concurrently; each call owns its own cursor. Any
// structural error aborts the whole decode and no partial tree is
// returned.
func Decode(buf []byte) ([]Node, error) {
	d := &decoder{data: buf}
	return d.decodeTree(len(buf))
}

// decoder is a cursor over an immutable byte buffer.
type decoder struct {
	data   []byte
	offset int
}

func (d *decoder) remaining() int {
	return len(d.data) - d.offset
}

func (d *decoder) readByte(what string) (byte, error) {
	if d.offset >= len(d.data) {
		return 0, newDecodeError(d.offset, "cannot read "+what, ErrTruncated)
	}
	b := d.data[d.offset]
	d.offset++
	return b, nil
}

// readBytes copies n content bytes out of the buffer so decoded values
// never alias the source slice.
func (d *decoder) readBytes(n int, what string) ([]byte, error) {
	if n > d.remaining() {
		return nil, newDecodeError(d.offset, "truncated "+what, ErrTruncated)
	}
	out := make([]byte, n)
	copy(out, d.data[d.offset:d.offset+n])
	d.offset += n
	return out, nil
}

// decodeTree repeatedly decodes TLV units until the cursor reaches limit
// or the buffer is exhausted. Insertion order is encoding order.
func (d *decoder) decodeTree(limit int) ([]Node, error) {
	nodes := []Node{}
	for d.offset < limit && d.offset < len(d.data) {
		node, err := d.decodeNode()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

// decodeNode decodes one full TLV unit and leaves the cursor just past
// it.
func (d *decoder) decodeNode() (Node, error) {
	start := d.offset

	raw, err := d.readByte("tag")
	if err != nil {
		return Node{}, err
	}
	tag := Tag(raw)

	length, err := d.readLength()
	if err != nil {
		return Node{}, err
	}

	node := Node{Tag: tag, Length: length}

	if tag.Constructed() {
		if length > d.remaining() {
			return Node{}, newDecodeError(d.offset, "truncated constructed content", ErrTruncated)
		}
		end := d.offset + length
		children, err := d.decodeTree(end)
		if err != nil {
			return Node{}, err
		}
		if d.offset != end {
			return Node{}, newDecodeError(start, fmt.Sprintf("children end at %d, declared boundary is %d", d.offset, end), ErrMalformedNesting)
		}
		node.Kind = KindConstructed
		node.Children = children
		return node, nil
	}

	content, err := d.readBytes(length, tag.String()+" value")
	if err != nil {
		return Node{}, err
	}

	switch tag {
	case TagInteger:
		node.Kind = KindInteger
		node.Int = decodeInteger(content)
	case TagObjectIdentifier:
		node.Kind = KindOID
		node.Str = DecodeOID(content)
	case TagBitString:
		node.Kind = KindBits
		node.Str = bitString(content)
	case TagNull:
		if length != 0 {
			return Node{}, newDecodeError(start, "null must have length 0", ErrInvalidNull)
		}
		node.Kind = KindNull
	default:
		// OCTET STRING, the string types, UTCTime and unrecognized tags
		// are all captured as opaque hex.
		node.Kind = KindHex
		node.Str = hex.EncodeToString(content)
	}

	return node, nil
}

// readLength reads a DER length field (short or long form) and advances
// past all length octets consumed.
func (d *decoder) readLength() (int, error) {
	start := d.offset

	first, err := d.readByte("length")
	if err != nil {
		return 0, err
	}

	// Short form: bit 8 clear, bits 1-7 are the length.
	if first&0x80 == 0 {
		return int(first), nil
	}

	// Long form: bits 1-7 give the count of big-endian length octets.
	size := int(first & 0x7F)
	if size == 0 {
		return 0, newDecodeError(start, "indefinite length encoding", ErrIndefiniteLength)
	}

	length := 0
	for i := 0; i < size; i++ {
		b, err := d.readByte("length octet")
		if err != nil {
			return 0, err
		}
		if length > math.MaxInt>>8 {
			return 0, newDecodeError(start, "length does not fit in int", ErrLengthOverflow)
		}
		length = length<<8 | int(b)
	}

	return length, nil
}

// decodeInteger interprets content as a DER integer. A single octet is
// decoded as unsigned 0-255, a retained simplification from strict
// two's-complement semantics; wider values are signed big-endian two's
// complement.
func decodeInteger(content []byte) *big.Int {
	if len(content) == 0 {
		return new(big.Int)
	}
	if len(content) == 1 {
		return big.NewInt(int64(content[0]))
	}
	v := new(big.Int).SetBytes(content)
	if content[0]&0x80 != 0 {
		v.Sub(v, new(big.Int).Lsh(big.NewInt(1), uint(len(content))*8))
	}
	return v
}

// bitString renders every content octet as eight binary digits. The
// leading unused-bits count octet is rendered as data like the rest;
// callers that care about it can still read it off the front.
func bitString(content []byte) string {
	var b strings.Builder
	b.Grow(len(content) * 8)
	for _, octet := range content {
		fmt.Fprintf(&b, "%08b", octet)
	}
	return b.String()
}
