package lightning

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/decred/dcrd/chaincfg/chainhash"
	"github.com/decred/dcrd/dcrutil/v4"
	"github.com/decred/dcrd/txscript/v4"
	"github.com/decred/dcrd/txscript/v4/stdaddr"
	"github.com/decred/dcrd/wire"
)

// Build2of2RedeemScript builds the redeem script both channel parties
// commit funds to: 2 <A> <B> 2 OP_CHECKMULTISIG. Spending it requires the
// joint authorization Check2of2 verifies.
func Build2of2RedeemScript(compA, compB []byte) ([]byte, error) {
	if len(compA) != 33 || len(compB) != 33 {
		return nil, fmt.Errorf("need 33-byte compressed pubkeys")
	}
	b := txscript.NewScriptBuilder()
	b.AddOp(txscript.OP_2).
		AddData(compA).
		AddData(compB).
		AddOp(txscript.OP_2).
		AddOp(txscript.OP_CHECKMULTISIG)
	return b.Script()
}

// P2SHPkScript wraps a redeem script in the standard pay-to-script-hash
// output script: OP_HASH160 <Hash160(redeem)> OP_EQUAL.
func P2SHPkScript(redeem []byte) ([]byte, error) {
	sh := dcrutil.Hash160(redeem)
	return txscript.NewScriptBuilder().
		AddOp(txscript.OP_HASH160).
		AddData(sh).
		AddOp(txscript.OP_EQUAL).
		Script()
}

// P2SHAddressAndPkScript returns the P2SH address for a redeem script on
// the given network along with its payment script.
// NOTE: stdaddr wants (scriptVersion, redeem, params), then use
// addr.PaymentScript().
func P2SHAddressAndPkScript(redeem []byte, params stdaddr.AddressParams) (string, []byte, error) {
	a, err := stdaddr.NewAddressScriptHash(0, redeem, params)
	if err != nil {
		return "", nil, err
	}
	_, pk := a.PaymentScript()
	return a.String(), pk, nil
}

// Spend2of2ScriptSig assembles the signature script redeeming a 2-of-2
// funding output: both raw signatures (with the sighash tag appended) and
// the redeem script itself. Assembly only; it does not run the script.
func Spend2of2ScriptSig(sigA, sigB *Signature, redeem []byte) ([]byte, error) {
	if sigA == nil || sigB == nil {
		return nil, fmt.Errorf("need both signatures")
	}
	b := txscript.NewScriptBuilder()
	b.AddData(taggedSig(sigA)).
		AddData(taggedSig(sigB)).
		AddData(redeem)
	return b.Script()
}

// taggedSig returns r || s || sighash tag, the 65-byte form signatures take
// inside a signature script.
func taggedSig(sig *Signature) []byte {
	out := make([]byte, 0, 65)
	out = append(out, sig.R[:]...)
	out = append(out, sig.S[:]...)
	out = append(out, byte(txscript.SigHashAll))
	return out
}

// FindInputIndex resolves an "txid:vout" input reference against the
// transaction's inputs. Exactly one input must match.
func FindInputIndex(tx *wire.MsgTx, inputID string) (int, error) {
	parts := strings.Split(inputID, ":")
	if len(parts) != 2 {
		return -1, fmt.Errorf("bad input id %q: want txid:vout", inputID)
	}
	voutU64, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil {
		return -1, fmt.Errorf("bad input id %q: %w", inputID, err)
	}
	var h chainhash.Hash
	if err := chainhash.Decode(&h, parts[0]); err != nil {
		return -1, fmt.Errorf("bad txid %q: %w", parts[0], err)
	}
	vout := uint32(voutU64)

	matchCount := 0
	matchIdx := -1
	for i, ti := range tx.TxIn {
		if ti.PreviousOutPoint.Hash == h && ti.PreviousOutPoint.Index == vout {
			matchCount++
			matchIdx = i
		}
	}
	if matchCount == 0 {
		return -1, fmt.Errorf("input %s not found", inputID)
	}
	if matchCount > 1 {
		return -1, fmt.Errorf("input %s matches %d inputs (ambiguous)", inputID, matchCount)
	}
	return matchIdx, nil
}
