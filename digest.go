package lightning

import (
	"encoding/binary"
	"fmt"

	"github.com/decred/dcrd/chaincfg/chainhash"
	"github.com/decred/dcrd/crypto/blake256"
	"github.com/decred/dcrd/txscript/v4"
	"github.com/decred/dcrd/wire"
)

// InputDigest returns the digest committing the given input to all outputs
// (SigHashAll, the only supported mode): the transaction is serialized with
// subscript installed as the signature script of input idx and every other
// script empty, a 4-byte little-endian sighash tag is appended, and the
// result is hashed twice.
//
// The subscript is overlaid on a private copy, so the caller's transaction
// is never touched and concurrent calls on a shared transaction are fine.
// Every input of tx must arrive with an empty signature script; a non-empty
// one reports ErrScriptsNotEmpty instead of hashing a transaction the
// caller has half-signed already.
func InputDigest(tx *wire.MsgTx, idx int, subscript []byte) (chainhash.Hash, error) {
	var digest chainhash.Hash
	if tx == nil || idx < 0 || idx >= len(tx.TxIn) {
		n := 0
		if tx != nil {
			n = len(tx.TxIn)
		}
		return digest, fmt.Errorf("input %d of %d: %w", idx, n, ErrInputIndex)
	}
	for i, ti := range tx.TxIn {
		if len(ti.SignatureScript) != 0 {
			return digest, fmt.Errorf("input %d: %w", i, ErrScriptsNotEmpty)
		}
	}

	txCopy := tx.Copy()
	txCopy.TxIn[idx].SignatureScript = subscript

	h := blake256.New()
	if err := txCopy.Serialize(h); err != nil {
		return digest, fmt.Errorf("serialize tx for digest: %w", err)
	}
	var tag [4]byte
	binary.LittleEndian.PutUint32(tag[:], uint32(txscript.SigHashAll))
	h.Write(tag[:])

	first := h.Sum(nil)
	digest = chainhash.Hash(blake256.Sum256(first))
	return digest, nil
}
