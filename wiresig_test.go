package lightning

import (
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/stretchr/testify/assert"
)

func TestWireRoundTrip(t *testing.T) {
	for i := 0; i < 8; i++ {
		priv, err := secp256k1.GeneratePrivateKey()
		if err != nil {
			t.Fatalf("gen key: %v", err)
		}
		digest := testDigest(i + 100)
		sig, err := SignDigest(&digest, priv)
		if err != nil {
			t.Fatalf("sign: %v", err)
		}

		got, err := ParseWireSignature(sig.Wire())
		assert.NoError(t, err)
		assert.Equal(t, sig, got)
	}
}

func TestWireZeroSignature(t *testing.T) {
	var zero Signature
	w := zero.Wire()
	assert.Equal(t, &WireSignature{}, w)

	got, err := ParseWireSignature(w)
	assert.NoError(t, err)
	assert.Equal(t, &zero, got)
}

func TestWireWordLayout(t *testing.T) {
	var sig Signature
	for i := 0; i < 32; i++ {
		sig.R[i] = byte(i)
		sig.S[i] = byte(2 * i) // keeps the last byte even
	}

	w := sig.Wire()
	assert.Equal(t, uint64(0x0001020304050607), w.R1)
	assert.Equal(t, uint64(0x08090a0b0c0d0e0f), w.R2)
	assert.Equal(t, uint64(0x1011121314151617), w.R3)
	assert.Equal(t, uint64(0x18191a1b1c1d1e1f), w.R4)
	assert.Equal(t, uint64(0x00020406080a0c0e), w.S1)
	assert.Equal(t, uint64(0x10121416181a1c1e), w.S2)
	assert.Equal(t, uint64(0x20222426282a2c2e), w.S3)
	assert.Equal(t, uint64(0x30323436383a3c3e), w.S4)

	got, err := ParseWireSignature(w)
	assert.NoError(t, err)
	assert.Equal(t, &sig, got)
}

func TestWireRejectsOddS(t *testing.T) {
	var sig Signature
	sig.S[31] = 0x03
	w := sig.Wire()

	got, err := ParseWireSignature(w)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrNonCanonicalS)
}
