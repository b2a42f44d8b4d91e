package lightning

import "errors"

var (
	// ErrSignFailed means the signing primitive could not produce a
	// signature, e.g. the private key scalar is unusable.
	ErrSignFailed = errors.New("signing primitive failed")

	// ErrInvalidPubKey means the public key bytes do not decode to a
	// point on the curve.
	ErrInvalidPubKey = errors.New("invalid public key")

	// ErrInvalidSigEncoding means the signature's r or s magnitude does
	// not decode to a usable curve-order scalar.
	ErrInvalidSigEncoding = errors.New("invalid signature encoding")

	// ErrNonCanonicalS means a supplied or decoded signature carries an
	// odd s value. Every signature exchanged here must use the even one
	// of the two valid s values.
	ErrNonCanonicalS = errors.New("signature s value is not canonical (odd)")

	// ErrScriptsNotEmpty means the transaction handed to the digest
	// builder already has a signature script attached to some input.
	ErrScriptsNotEmpty = errors.New("transaction input scripts must be empty")

	// ErrInputIndex means the requested input does not exist.
	ErrInputIndex = errors.New("input index out of range")

	// ErrSigInvalid means the inputs were well formed but the signature
	// does not validate. Callers should treat this as a normal negative
	// outcome, not a fault.
	ErrSigInvalid = errors.New("signature verification failed")
)
