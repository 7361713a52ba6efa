package contract

import (
	"github.com/nspcc-dev/neo-go/pkg/io"
)

// Limits applied when decoding untrusted wire data.
const (
	maxStringSize    = 1 << 16
	maxPublicKeySize = 65
)

// EncodeBinary implements io.Serializable. It writes the canonical versioned
// record: length-prefixed strings and byte blobs, fixed-width little-endian
// integers. This is the wire form of version 2+ contracts.
func (c *Contract) EncodeBinary(w *io.BinWriter) {
	c.encodeHashable(w)
	w.WriteVarBytes(c.Signature.Bytes())
}

// DecodeBinary implements io.Serializable.
func (c *Contract) DecodeBinary(r *io.BinReader) {
	c.Version = int(r.ReadU32LE())
	c.Type = ParseType(r.ReadString(maxStringSize))
	c.Action = ParseAction(r.ReadString(maxStringSize))
	c.Key = r.ReadString(maxStringSize)
	c.Value = r.ReadString(maxStringSize)

	pub, err := publicKeyFromBytes(r.ReadVarBytes(maxPublicKeySize))
	if err != nil && r.Err == nil {
		r.Err = err
	}
	c.PublicKey = pub

	c.Nonce = r.ReadU32LE()
	c.Timestamp = int64(r.ReadU64LE())
	c.TxTimestamp = int64(r.ReadU64LE())
	c.Signature = NewSignature(r.ReadVarBytes(maxSignatureSize))

	c.invalidateHash()
}

// encodeHashable writes every field except the signature: the input of the
// version 2+ contract hash. The signature cannot cover itself, so it is
// appended separately by EncodeBinary.
func (c *Contract) encodeHashable(w *io.BinWriter) {
	w.WriteU32LE(uint32(c.Version))
	w.WriteString(c.Type.String())
	w.WriteString(c.Action.String())
	w.WriteString(c.Key)
	w.WriteString(c.Value)
	w.WriteVarBytes(c.PublicKey.Bytes())
	w.WriteU32LE(c.Nonce)
	w.WriteU64LE(uint64(c.Timestamp))
	w.WriteU64LE(uint64(c.TxTimestamp))
}

func (c *Contract) hashableBytes() []byte {
	w := io.NewBufBinWriter()
	c.encodeHashable(w.BinWriter)

	return w.Bytes()
}

// Bytes returns the full wire encoding of the contract.
func (c *Contract) Bytes() ([]byte, error) {
	w := io.NewBufBinWriter()
	c.EncodeBinary(w.BinWriter)
	if w.Err != nil {
		return nil, w.Err
	}

	return w.Bytes(), nil
}

// FromBytes decodes a contract from its full wire encoding.
func FromBytes(b []byte) (Contract, error) {
	var c Contract

	r := io.NewBinReaderFromBuf(b)
	c.DecodeBinary(r)
	if r.Err != nil {
		return Contract{}, r.Err
	}

	return c, nil
}
