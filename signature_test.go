package lightning

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/decred/dcrd/chaincfg/chainhash"
	"github.com/decred/dcrd/crypto/blake256"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/wire"
)

func testDigest(i int) chainhash.Hash {
	return chainhash.Hash(blake256.Sum256([]byte(fmt.Sprintf("test digest %d", i))))
}

func testTx(numIn int) *wire.MsgTx {
	tx := wire.NewMsgTx()
	tx.Version = 1
	for i := 0; i < numIn; i++ {
		prev := wire.OutPoint{Index: uint32(i)}
		tx.AddTxIn(&wire.TxIn{PreviousOutPoint: prev, ValueIn: 100000})
	}
	tx.AddTxOut(&wire.TxOut{Value: 90000, PkScript: []byte{}})
	return tx
}

func TestSignDigestCanonicalAndVerifies(t *testing.T) {
	for i := 0; i < 16; i++ {
		priv, err := secp256k1.GeneratePrivateKey()
		if err != nil {
			t.Fatalf("gen key: %v", err)
		}
		digest := testDigest(i)
		sig, err := SignDigest(&digest, priv)
		if err != nil {
			t.Fatalf("sign: %v", err)
		}
		if sig.S[31]&1 != 0 {
			t.Fatalf("iteration %d: produced odd s: %x", i, sig.S)
		}
		pub := priv.PubKey().SerializeCompressed()
		if err := CheckSignedDigest(&digest, sig, pub); err != nil {
			t.Fatalf("iteration %d: own signature did not verify: %v", i, err)
		}
	}
}

func TestSignDigestUnusableKey(t *testing.T) {
	digest := testDigest(0)
	zero := secp256k1.PrivKeyFromBytes(make([]byte, 32))
	if _, err := SignDigest(&digest, zero); !errors.Is(err, ErrSignFailed) {
		t.Fatalf("want ErrSignFailed for zero key, got %v", err)
	}
	if _, err := SignDigest(&digest, nil); !errors.Is(err, ErrSignFailed) {
		t.Fatalf("want ErrSignFailed for nil key, got %v", err)
	}
}

func TestSignInputMatchesSignDigest(t *testing.T) {
	priv, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		t.Fatalf("gen key: %v", err)
	}
	tx := testTx(1)
	subscript := []byte{0x51} // OP_TRUE placeholder

	sigA, err := SignInput(tx, 0, subscript, priv)
	if err != nil {
		t.Fatalf("SignInput: %v", err)
	}
	digest, err := InputDigest(tx, 0, subscript)
	if err != nil {
		t.Fatalf("InputDigest: %v", err)
	}
	sigB, err := SignDigest(&digest, priv)
	if err != nil {
		t.Fatalf("SignDigest: %v", err)
	}
	// RFC6979 nonces make both paths produce the identical signature.
	if !bytes.Equal(sigA.R[:], sigB.R[:]) || !bytes.Equal(sigA.S[:], sigB.S[:]) {
		t.Fatalf("SignInput and SignDigest disagree:\n%x%x\n%x%x",
			sigA.R, sigA.S, sigB.R, sigB.S)
	}
}

func TestTamperedSignatureRejected(t *testing.T) {
	priv, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		t.Fatalf("gen key: %v", err)
	}
	digest := testDigest(7)
	sig, err := SignDigest(&digest, priv)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	pub := priv.PubKey().SerializeCompressed()

	for i := 0; i < 32; i++ {
		bad := *sig
		bad.R[i] ^= 0xff
		if err := CheckSignedDigest(&digest, &bad, pub); err == nil {
			t.Fatalf("tampered r byte %d accepted", i)
		}
		bad = *sig
		bad.S[i] ^= 0xff
		if err := CheckSignedDigest(&digest, &bad, pub); err == nil {
			t.Fatalf("tampered s byte %d accepted", i)
		}
	}
}

func TestNegatedSRejectedAsNonCanonical(t *testing.T) {
	priv, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		t.Fatalf("gen key: %v", err)
	}
	digest := testDigest(9)
	sig, err := SignDigest(&digest, priv)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	// order - s is the other mathematically valid s, but it is odd and the
	// canonicality precondition must reject it before any curve math runs.
	var s secp256k1.ModNScalar
	if overflow := s.SetByteSlice(sig.S[:]); overflow {
		t.Fatalf("s overflow")
	}
	s.Negate()
	nb := s.Bytes()
	bad := *sig
	copy(bad.S[:], nb[:])
	if bad.S[31]&1 != 1 {
		t.Fatalf("expected negated s to be odd")
	}

	pub := priv.PubKey().SerializeCompressed()
	err = CheckSignedDigest(&digest, &bad, pub)
	if !errors.Is(err, ErrNonCanonicalS) {
		t.Fatalf("want ErrNonCanonicalS, got %v", err)
	}
}
