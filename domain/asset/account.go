package asset

import "github.com/x-xyz/gosea/domain"

// OpenSeaAccount is an account as the orderbook reports it: the on-chain
// address plus off-chain profile data. Anywhere a bare address suffices the
// sdk keeps using domain.Address instead.
type OpenSeaAccount struct {
	Address       domain.Address `json:"address"`
	Config        string         `json:"config,omitempty"`
	ProfileImgUrl string         `json:"profile_img_url,omitempty"`
	User          *OpenSeaUser   `json:"user,omitempty"`
}

type OpenSeaUser struct {
	Username string `json:"username"`
}
