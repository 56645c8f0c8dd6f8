// Package der implements decoding of ASN.1 DER (Distinguished Encoding
// Rules) structures as specified in ITU-T X.690.
//
// The package targets the encoding subset found in PEM-wrapped RSA and
// EC private keys: a fixed table of universal tags plus the [0] and [1]
// context-specific wrappers those key formats use. It is not a general
// BER/DER/CER codec — unrecognized tag octets are captured as opaque
// hex blobs rather than rejected, and no schema checking or key
// validation is performed.
//
// # Decoding
//
// Decode parses a DER byte buffer into a tree of tagged nodes:
//
//	nodes, err := der.Decode(buf)
//	if err != nil {
//	    // handle error
//	}
//	root := nodes[0] // normally a SEQUENCE
//
// Constructed tags (SEQUENCE, SET, [0], [1]) carry their children in
// Node.Children; primitive tags carry a decoded value: a *big.Int for
// INTEGER, a dotted-decimal string for OBJECT IDENTIFIER, a binary
// rendering for BIT STRING, lowercase hex for everything else, and
// nothing for NULL.
//
// # Errors
//
// Structural failures abort the whole decode: ErrTruncated when a read
// runs past the buffer, ErrLengthOverflow when a long-form length does
// not fit in an int, ErrMalformedNesting when constructed children
// overrun their declared boundary, and ErrIndefiniteLength for the BER
// indefinite-length marker, which DER forbids. All are wrapped in a
// *DecodeError carrying the byte offset.
package der
