package lightning

import (
	"encoding/binary"
	"fmt"
)

// WireSignature is the fixed-width record signatures travel in between
// implementations: r and s each split high-to-low into four 8-byte
// big-endian words. The field order and widths are a frozen interop
// contract; never reorder them.
type WireSignature struct {
	R1, R2, R3, R4 uint64
	S1, S2, S3, S4 uint64
}

// Wire encodes the signature into its eight-word wire record. It is total
// and lossless.
func (sig *Signature) Wire() *WireSignature {
	return &WireSignature{
		R1: binary.BigEndian.Uint64(sig.R[0:8]),
		R2: binary.BigEndian.Uint64(sig.R[8:16]),
		R3: binary.BigEndian.Uint64(sig.R[16:24]),
		R4: binary.BigEndian.Uint64(sig.R[24:32]),
		S1: binary.BigEndian.Uint64(sig.S[0:8]),
		S2: binary.BigEndian.Uint64(sig.S[8:16]),
		S3: binary.BigEndian.Uint64(sig.S[16:24]),
		S4: binary.BigEndian.Uint64(sig.S[24:32]),
	}
}

// ParseWireSignature reassembles a signature from its wire record. A record
// whose s comes out odd is rejected with ErrNonCanonicalS rather than
// letting a non-canonical signature into the rest of the system.
func ParseWireSignature(w *WireSignature) (*Signature, error) {
	var sig Signature
	binary.BigEndian.PutUint64(sig.R[0:8], w.R1)
	binary.BigEndian.PutUint64(sig.R[8:16], w.R2)
	binary.BigEndian.PutUint64(sig.R[16:24], w.R3)
	binary.BigEndian.PutUint64(sig.R[24:32], w.R4)
	binary.BigEndian.PutUint64(sig.S[0:8], w.S1)
	binary.BigEndian.PutUint64(sig.S[8:16], w.S2)
	binary.BigEndian.PutUint64(sig.S[16:24], w.S3)
	binary.BigEndian.PutUint64(sig.S[24:32], w.S4)

	if sig.S[31]&1 == 1 {
		return nil, fmt.Errorf("parse wire signature: %w", ErrNonCanonicalS)
	}
	return &sig, nil
}
