package lightning

import (
	"fmt"

	"github.com/decred/dcrd/chaincfg/chainhash"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/decred/dcrd/txscript/v4/stdscript"
	"github.com/decred/dcrd/wire"
)

// CheckSignedDigest verifies sig over digest with the serialized public key
// and reports the exact failure kind:
//
//	ErrNonCanonicalS      — sig.S is odd (caller contract violation)
//	ErrInvalidPubKey      — pubKey does not decode to a curve point
//	ErrInvalidSigEncoding — r or s is not a usable scalar
//	ErrSigInvalid         — well-formed inputs that simply do not validate
//
// A nil return means the signature is valid.
func CheckSignedDigest(digest *chainhash.Hash, sig *Signature, pubKey []byte) error {
	if sig == nil {
		return fmt.Errorf("nil signature: %w", ErrInvalidSigEncoding)
	}
	if sig.S[31]&1 == 1 {
		return fmt.Errorf("check signature: %w", ErrNonCanonicalS)
	}

	pub, err := secp256k1.ParsePubKey(pubKey)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPubKey, err)
	}

	var r, s secp256k1.ModNScalar
	if overflow := r.SetByteSlice(sig.R[:]); overflow || r.IsZero() {
		return fmt.Errorf("r: %w", ErrInvalidSigEncoding)
	}
	if overflow := s.SetByteSlice(sig.S[:]); overflow || s.IsZero() {
		return fmt.Errorf("s: %w", ErrInvalidSigEncoding)
	}

	if !ecdsa.NewSignature(&r, &s).Verify(digest[:], pub) {
		return ErrSigInvalid
	}
	return nil
}

// VerifySignedDigest is the boolean surface of CheckSignedDigest for
// callers that only care whether the signature is valid.
func VerifySignedDigest(digest *chainhash.Hash, sig *Signature, pubKey []byte) bool {
	return CheckSignedDigest(digest, sig, pubKey) == nil
}

// Check2of2 authorizes a joint spend of output out by input idx of tx: both
// parties must have signed the identical digest computed with out's script
// as the subscript. The output must be pay-to-script-hash, which is the
// shape commitment transaction funding outputs take.
func Check2of2(tx *wire.MsgTx, idx int, out *wire.TxOut,
	keyA, keyB []byte, sigA, sigB *Signature) bool {

	if out == nil || !stdscript.IsScriptHashScript(out.Version, out.PkScript) {
		return false
	}
	digest, err := InputDigest(tx, idx, out.PkScript)
	if err != nil {
		return false
	}
	return VerifySignedDigest(&digest, sigA, keyA) &&
		VerifySignedDigest(&digest, sigB, keyB)
}
