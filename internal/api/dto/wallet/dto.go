package wallet

type AmountRequest struct {
	Amount float64 `json:"amount"`
}

type CouponRequest struct {
	Code string `json:"code"`
}

type BalanceResponse struct {
	Wallet         float64 `json:"wallet"`
	BonusWallet    float64 `json:"bonusWallet"`
	RolloverTarget float64 `json:"rolloverTarget"`
	ProfitLoss     float64 `json:"profitLoss"`
	TotalBetsMade  int     `json:"totalBetsMade"`
	KYCStatus      string  `json:"kycStatus"`
	ReferralCode   string  `json:"referralCode"`
}

type RedeemResponse struct {
	Credited float64 `json:"credited"`
}
