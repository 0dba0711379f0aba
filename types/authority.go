package types

import (
	fmt "fmt"

	"github.com/cometbft/cometbft/crypto"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
)

// Domain separation tags for authority derivation. The vault's custody
// authority and the share mint's issuing authority are derived from the same
// base-asset denom but must never collide, so each gets its own tag.
const (
	VaultAuthorityTag = "vault"
	MintAuthorityTag  = "mint"

	// MaxAuthoritySalt is the first salt tried during derivation. Salts are
	// enumerated downward so a stored salt can be checked against a single
	// recomputed hash without replaying the search.
	MaxAuthoritySalt = uint8(255)
)

// authorityAddress computes the candidate address for a single (tag, denom, salt)
// triple. It is the one-way mapping underneath the derivation scheme; no
// private key exists for the result because the preimage is a structured
// string, not a public key.
func authorityAddress(domainTag, baseDenom string, salt uint8) sdk.AccAddress {
	return sdk.AccAddress(crypto.AddressHash([]byte(fmt.Sprintf("%s/%s/%s/%d", ModuleName, domainTag, baseDenom, salt))))
}

// DeriveAuthority derives the self-owned authority identity for a domain tag
// and base-asset denom, returning the address and the salt that produced it.
//
// Salts are tried from MaxAuthoritySalt downward. A candidate is rejected if
// it collides with the module's own root account, since that address has a
// well-known preimage and therefore a competing claim to control. The result
// is fully deterministic: identical inputs always yield the identical
// (address, salt) pair.
//
// Callers must derive once at vault creation, persist both outputs, and use
// VerifyAuthority afterwards. Re-deriving on every call would silently move
// funds to a new authority if the enumeration logic ever changed.
func DeriveAuthority(domainTag, baseDenom string) (sdk.AccAddress, uint8, error) {
	if domainTag == "" {
		return nil, 0, ErrInvalidRequest.Wrap("domain tag cannot be empty")
	}
	if err := sdk.ValidateDenom(baseDenom); err != nil {
		return nil, 0, ErrInvalidRequest.Wrapf("invalid base denom %q: %s", baseDenom, err)
	}

	moduleRoot := authtypes.NewModuleAddress(ModuleName)
	for salt := MaxAuthoritySalt; ; salt-- {
		candidate := authorityAddress(domainTag, baseDenom, salt)
		if !candidate.Equals(moduleRoot) {
			return candidate, salt, nil
		}
		if salt == 0 {
			break
		}
	}
	return nil, 0, ErrInvalidRequest.Wrapf("unable to derive %s authority for %q", domainTag, baseDenom)
}

// VerifyAuthority recomputes the authority address from a stored salt and
// compares it to the expected identity. A mismatch means the caller supplied a
// spoofed vault or mint record and is surfaced as ErrBindingMismatch.
func VerifyAuthority(domainTag, baseDenom string, salt uint8, expected sdk.AccAddress) error {
	derived := authorityAddress(domainTag, baseDenom, salt)
	if !derived.Equals(expected) {
		return ErrBindingMismatch.Wrapf("%s authority for %q does not match: derived %s, expected %s",
			domainTag, baseDenom, derived.String(), expected.String())
	}
	return nil
}

// GetVaultAddress returns the derived custody address for the given base-asset denom.
func GetVaultAddress(baseDenom string) sdk.AccAddress {
	addr, _, err := DeriveAuthority(VaultAuthorityTag, baseDenom)
	if err != nil {
		panic(err)
	}
	return addr
}

// GetMintAddress returns the derived share-mint address for the given base-asset denom.
func GetMintAddress(baseDenom string) sdk.AccAddress {
	addr, _, err := DeriveAuthority(MintAuthorityTag, baseDenom)
	if err != nil {
		panic(err)
	}
	return addr
}
