package types

import context "context"

// QueryServer is the read-only query surface of the module.
type QueryServer interface {
	// Vault returns the configuration of a specific vault.
	Vault(goCtx context.Context, req *QueryVaultRequest) (*QueryVaultResponse, error)
	// Vaults returns all vaults.
	Vaults(goCtx context.Context, req *QueryVaultsRequest) (*QueryVaultsResponse, error)
	// Price returns the current price snapshot for a vault.
	Price(goCtx context.Context, req *QueryPriceRequest) (*QueryPriceResponse, error)
}

type QueryVaultRequest struct {
	Denom string `json:"denom"`
}

type QueryVaultResponse struct {
	Vault Vault `json:"vault"`
}

type QueryVaultsRequest struct{}

type QueryVaultsResponse struct {
	Vaults []Vault `json:"vaults"`
}

type QueryPriceRequest struct {
	Denom string `json:"denom"`
}

type QueryPriceResponse struct {
	Price PriceSnapshot `json:"price"`
}
