package types

// SalesCopy is templated marketing copy derived from a Product. It is
// stateless and recomputable; headline and call-to-action are picked at
// random from fixed template pools, so repeated calls may differ.
type SalesCopy struct {
	Headline     string   `json:"headline"`
	Description  string   `json:"description"`
	Benefits     []string `json:"benefits"`
	CallToAction string   `json:"callToAction"`
}
