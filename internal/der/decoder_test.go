package der

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLength_ShortForm(t *testing.T) {
	for _, l := range []byte{0, 1, 42, 119, 127} {
		d := &decoder{data: []byte{l, 0xFF, 0xFF}}
		got, err := d.readLength()
		require.NoError(t, err)
		assert.Equal(t, int(l), got)
		assert.Equal(t, 1, d.offset, "short form must consume exactly one octet")
	}
}

func TestReadLength_LongForm(t *testing.T) {
	tests := []struct {
		name       string
		data       []byte
		want       int
		wantOctets int
	}{
		{"one length octet", []byte{0x81, 0x81}, 129, 2},
		{"two length octets", []byte{0x82, 0x02, 0x5E}, 606, 3},
		{"three length octets", []byte{0x83, 0x01, 0x00, 0x00}, 65536, 4},
		{"short form sanity", []byte{0x77}, 119, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &decoder{data: tt.data}
			got, err := d.readLength()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOctets, d.offset)
		})
	}
}

func TestReadLength_Errors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"empty buffer", []byte{}, ErrTruncated},
		{"missing length octets", []byte{0x82, 0x02}, ErrTruncated},
		{"indefinite length marker", []byte{0x80}, ErrIndefiniteLength},
		{"nine length octets", []byte{0x89, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, ErrLengthOverflow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &decoder{data: tt.data}
			_, err := d.readLength()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDecode_Integer(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want *big.Int
	}{
		{"zero", []byte{0x02, 0x01, 0x00}, big.NewInt(0)},
		{"one", []byte{0x02, 0x01, 0x01}, big.NewInt(1)},
		// Single octets decode as unsigned 0-255, not signed.
		{"single octet high bit", []byte{0x02, 0x01, 0xFF}, big.NewInt(255)},
		{"two octets positive", []byte{0x02, 0x02, 0x01, 0x00}, big.NewInt(256)},
		{"two octets negative", []byte{0x02, 0x02, 0xFF, 0x7F}, big.NewInt(-129)},
		{"empty content", []byte{0x02, 0x00}, big.NewInt(0)},
		{
			"wider than a word",
			[]byte{0x02, 0x09, 0x00, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF},
			new(big.Int).SetBytes([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nodes, err := Decode(tt.data)
			require.NoError(t, err)
			require.Len(t, nodes, 1)
			assert.Equal(t, TagInteger, nodes[0].Tag)
			assert.Equal(t, KindInteger, nodes[0].Kind)
			assert.Zero(t, tt.want.Cmp(nodes[0].Int), "want %s, got %s", tt.want, nodes[0].Int)
		})
	}
}

func TestDecode_OctetString(t *testing.T) {
	nodes, err := Decode([]byte{0x04, 0x03, 0xDE, 0xAD, 0x0F})
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.Equal(t, TagOctetString, nodes[0].Tag)
	assert.Equal(t, KindHex, nodes[0].Kind)
	assert.Equal(t, "dead0f", nodes[0].Str)
	assert.Equal(t, 3, nodes[0].Length)
}

func TestDecode_BitString(t *testing.T) {
	// The leading unused-bits octet is rendered as data like the rest.
	nodes, err := Decode([]byte{0x03, 0x02, 0x00, 0xA5})
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.Equal(t, TagBitString, nodes[0].Tag)
	assert.Equal(t, KindBits, nodes[0].Kind)
	assert.Equal(t, "0000000010100101", nodes[0].Str)
}

func TestDecode_Null(t *testing.T) {
	nodes, err := Decode([]byte{0x05, 0x00})
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.Equal(t, TagNull, nodes[0].Tag)
	assert.Equal(t, KindNull, nodes[0].Kind)

	_, err = Decode([]byte{0x05, 0x01, 0x00})
	assert.ErrorIs(t, err, ErrInvalidNull)
}

func TestDecode_UnknownTag(t *testing.T) {
	// Tag 0x42 is not in the table; content is captured as hex and
	// decoding continues with the next sibling.
	nodes, err := Decode([]byte{0x42, 0x02, 0xBE, 0xEF, 0x02, 0x01, 0x07})
	require.NoError(t, err)
	require.Len(t, nodes, 2)
	assert.False(t, nodes[0].Tag.Known())
	assert.Equal(t, KindHex, nodes[0].Kind)
	assert.Equal(t, "beef", nodes[0].Str)
	assert.Equal(t, "UNKNOWN(0x42)", nodes[0].Tag.String())
	assert.Equal(t, TagInteger, nodes[1].Tag)
}

func TestDecode_EmptySequence(t *testing.T) {
	// A zero-length SEQUENCE yields an empty child list and must not
	// swallow the following sibling.
	nodes, err := Decode([]byte{0x30, 0x00, 0x02, 0x01, 0x05})
	require.NoError(t, err)
	require.Len(t, nodes, 2)
	assert.Equal(t, TagSequence, nodes[0].Tag)
	assert.Equal(t, KindConstructed, nodes[0].Kind)
	assert.Empty(t, nodes[0].Children)
	assert.Equal(t, TagInteger, nodes[1].Tag)
	assert.Zero(t, big.NewInt(5).Cmp(nodes[1].Int))
}

func TestDecode_NestedSequence(t *testing.T) {
	// SEQUENCE { SEQUENCE { INTEGER 1 }, NULL }
	data := []byte{0x30, 0x07, 0x30, 0x03, 0x02, 0x01, 0x01, 0x05, 0x00}
	nodes, err := Decode(data)
	require.NoError(t, err)
	require.Len(t, nodes, 1)

	root := nodes[0]
	require.Len(t, root.Children, 2)
	assert.Equal(t, TagSequence, root.Children[0].Tag)
	require.Len(t, root.Children[0].Children, 1)
	assert.Zero(t, big.NewInt(1).Cmp(root.Children[0].Children[0].Int))
	assert.Equal(t, TagNull, root.Children[1].Tag)
}

func TestDecode_Set(t *testing.T) {
	nodes, err := Decode([]byte{0x31, 0x03, 0x02, 0x01, 0x2A})
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.Equal(t, TagSet, nodes[0].Tag)
	require.Len(t, nodes[0].Children, 1)
	assert.Zero(t, big.NewInt(42).Cmp(nodes[0].Children[0].Int))
}

func TestDecode_Truncated(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"value shorter than declared", []byte{0x04, 0x05, 0x01, 0x02}},
		{"missing length", []byte{0x02}},
		{"constructed shorter than declared", []byte{0x30, 0x10, 0x02, 0x01, 0x01}},
		{"integer declared past end", []byte{0x02, 0x7F, 0x01}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nodes, err := Decode(tt.data)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrTruncated)
			assert.Nil(t, nodes, "no partial tree on failure")
		})
	}
}

func TestDecode_MalformedNesting(t *testing.T) {
	// The SEQUENCE declares 2 content bytes but its only child is a
	// 3-byte TLV, so the cursor overruns the declared boundary.
	_, err := Decode([]byte{0x30, 0x02, 0x02, 0x01, 0x01})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedNesting)

	var decErr *DecodeError
	require.ErrorAs(t, err, &decErr)
	assert.Equal(t, 0, decErr.Offset)
}

func TestDecode_Idempotent(t *testing.T) {
	data := ecPrivateKeyDER(t)
	first, err := Decode(data)
	require.NoError(t, err)
	second, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDecode_DoesNotAliasInput(t *testing.T) {
	data := []byte{0x04, 0x02, 0xAA, 0xBB}
	nodes, err := Decode(data)
	require.NoError(t, err)

	data[2], data[3] = 0x00, 0x00
	assert.Equal(t, "aabb", nodes[0].Str)
}

// ecPrivateKeyDER builds the RFC 5915 EC private key layout:
// SEQUENCE { INTEGER 1, OCTET STRING privateKey(32),
// [0] { OID prime256v1 }, [1] { BIT STRING publicKey } }.
func ecPrivateKeyDER(t *testing.T) []byte {
	t.Helper()

	priv := make([]byte, 32)
	for i := range priv {
		priv[i] = byte(i + 1)
	}
	pub := make([]byte, 65)
	pub[0] = 0x04
	for i := 1; i < len(pub); i++ {
		pub[i] = byte(i)
	}

	var body []byte
	body = append(body, 0x02, 0x01, 0x01)
	body = append(body, 0x04, byte(len(priv)))
	body = append(body, priv...)
	oid := []byte{0x2A, 0x86, 0x48, 0xCE, 0x3D, 0x03, 0x01, 0x07}
	body = append(body, 0xA0, byte(len(oid)+2), 0x06, byte(len(oid)))
	body = append(body, oid...)
	body = append(body, 0xA1, byte(len(pub)+3), 0x03, byte(len(pub)+1), 0x00)
	body = append(body, pub...)

	return append([]byte{0x30, byte(len(body))}, body...)
}

func TestDecode_ECPrivateKey(t *testing.T) {
	nodes, err := Decode(ecPrivateKeyDER(t))
	require.NoError(t, err)
	require.Len(t, nodes, 1)

	root := nodes[0]
	assert.Equal(t, TagSequence, root.Tag)
	require.Len(t, root.Children, 4)

	version := root.Children[0]
	assert.Equal(t, TagInteger, version.Tag)
	assert.Zero(t, big.NewInt(1).Cmp(version.Int))

	key := root.Children[1]
	assert.Equal(t, TagOctetString, key.Tag)
	assert.Equal(t, 32, key.Length)

	params := root.Children[2]
	assert.Equal(t, TagContext0, params.Tag)
	require.Len(t, params.Children, 1)
	assert.Equal(t, TagObjectIdentifier, params.Children[0].Tag)
	assert.Equal(t, "1.2.840.10045.3.1.7", params.Children[0].Str)

	pubKey := root.Children[3]
	assert.Equal(t, TagContext1, pubKey.Tag)
	require.Len(t, pubKey.Children, 1)
	assert.Equal(t, TagBitString, pubKey.Children[0].Tag)
	assert.Equal(t, 66, pubKey.Children[0].Length)
}

func BenchmarkDecode(b *testing.B) {
	priv := make([]byte, 32)
	pub := make([]byte, 65)
	var body []byte
	body = append(body, 0x02, 0x01, 0x01)
	body = append(body, 0x04, byte(len(priv)))
	body = append(body, priv...)
	oid := []byte{0x2A, 0x86, 0x48, 0xCE, 0x3D, 0x03, 0x01, 0x07}
	body = append(body, 0xA0, byte(len(oid)+2), 0x06, byte(len(oid)))
	body = append(body, oid...)
	body = append(body, 0xA1, byte(len(pub)+3), 0x03, byte(len(pub)+1), 0x00)
	body = append(body, pub...)
	data := append([]byte{0x30, byte(len(body))}, body...)

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Decode(data); err != nil {
			b.Fatal(err)
		}
	}
}
