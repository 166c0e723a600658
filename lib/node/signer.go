// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package node

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ChainSafe/tanssi-tools/lib/common"
	"github.com/centrifuge/go-substrate-rpc-client/v4/signature"
	"github.com/cosmos/go-bip39"
)

// SS58Prefix is the generic Substrate address prefix.
const SS58Prefix = 42

var (
	ErrSecretEmpty       = errors.New("secret is empty")
	ErrSeedLength        = errors.New("seed must be 32 bytes")
	ErrMnemonicInvalid   = errors.New("mnemonic is invalid")
	ErrKeyringPairCreate = errors.New("cannot create sr25519 key pair")
)

// NewSigner creates an sr25519 key pair from a secret, which can be a
// 0x prefixed hex seed, a BIP39 mnemonic or a development secret such
// as //Alice, optionally followed by a derivation path.
func NewSigner(secret string) (signer signature.KeyringPair, err error) {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return signer, ErrSecretEmpty
	}

	phrase := secret
	if i := strings.Index(secret, "//"); i >= 0 {
		phrase = strings.TrimSpace(secret[:i])
	}

	switch {
	case phrase == "":
		// development secret such as //Alice
	case strings.HasPrefix(phrase, "0x"):
		seed, err := common.HexToBytes(phrase)
		if err != nil {
			return signer, fmt.Errorf("decoding seed: %w", err)
		}
		if len(seed) != 32 {
			return signer, fmt.Errorf("%w: got %d bytes", ErrSeedLength, len(seed))
		}
	case !bip39.IsMnemonicValid(phrase):
		return signer, ErrMnemonicInvalid
	}

	signer, err = signature.KeyringPairFromSecret(secret, SS58Prefix)
	if err != nil {
		return signer, fmt.Errorf("%w: %s", ErrKeyringPairCreate, err)
	}
	return signer, nil
}
