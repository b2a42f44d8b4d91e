// Package lightning implements the ECDSA signature core used to authorize
// spending channel transaction inputs: sighash digest construction, signing
// with the historical even-S canonical form, verification (including the
// 2-of-2 joint check for commitment spends), and the fixed eight-word wire
// encoding of signatures.
package lightning

import (
	"fmt"

	"github.com/decred/dcrd/chaincfg/chainhash"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/decred/dcrd/wire"
)

// Signature is an ECDSA signature with r and s stored as 32-byte big-endian
// unsigned magnitudes. Canonical signatures always carry the even one of the
// two valid s values (see https://github.com/sipa/bitcoin/commit/a81cd9680);
// SignDigest only produces canonical signatures and the verifier rejects
// everything else. Note this is the even-S rule, not the low-S rule common
// elsewhere: peers compare signatures byte for byte, so it must not change.
type Signature struct {
	R [32]byte
	S [32]byte
}

// SignDigest signs the 32-byte digest with the given private key and returns
// the canonical signature. Nonces are deterministic per RFC6979, but callers
// must not rely on that: the only promise is that the result verifies
// against the matching public key and has even s.
func SignDigest(digest *chainhash.Hash, priv *secp256k1.PrivateKey) (*Signature, error) {
	if priv == nil || priv.Key.IsZero() {
		return nil, fmt.Errorf("sign digest: unusable private key: %w", ErrSignFailed)
	}

	// Compact form is header || r(32) || s(32), which is exactly the raw
	// magnitudes needed here.
	compact := ecdsa.SignCompact(priv, digest[:], true)
	if len(compact) != 65 {
		return nil, fmt.Errorf("sign digest: bad compact signature length %d: %w",
			len(compact), ErrSignFailed)
	}

	var sig Signature
	copy(sig.R[:], compact[1:33])
	copy(sig.S[:], compact[33:65])

	// There can only be one signature with an even s, so make sure we
	// produce that one: s and order-s are equally valid for the same r.
	if sig.S[31]&1 == 1 {
		var s secp256k1.ModNScalar
		s.SetByteSlice(sig.S[:])
		s.Negate()
		sb := s.Bytes()
		copy(sig.S[:], sb[:])
	}
	return &sig, nil
}

// SignInput computes the input's sighash digest with the given subscript and
// signs it. The transaction is not modified.
func SignInput(tx *wire.MsgTx, idx int, subscript []byte, priv *secp256k1.PrivateKey) (*Signature, error) {
	digest, err := InputDigest(tx, idx, subscript)
	if err != nil {
		return nil, err
	}
	return SignDigest(&digest, priv)
}
