package types

import (
	"cosmossdk.io/collections"
)

const (
	// ModuleName defines the module name
	ModuleName = "xstake"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// ShareDenomPrefix is prepended to a base-asset denom to form the denom of
	// the shares issued against it, e.g. "ustep" -> "x/ustep".
	ShareDenomPrefix = "x/"
)

var (
	// ParamsKeyPrefix is the prefix to retrieve all Params
	ParamsKeyPrefix = collections.NewPrefix(0)
	// ParamsName is a human-readable name for the params collection.
	ParamsName = "params"
	// VaultsKeyPrefix is the prefix to retrieve all Vaults
	VaultsKeyPrefix = collections.NewPrefix(1)
	// VaultsName is a human-readable name for the vaults collection.
	VaultsName = "vaults"
)

// ShareDenom returns the share denom bound to the given base-asset denom.
func ShareDenom(baseDenom string) string {
	return ShareDenomPrefix + baseDenom
}
