package admin

type KYCRequest struct {
	UserID int    `json:"userId"`
	Status string `json:"status"` // pending | verified
}
