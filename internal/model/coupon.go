package model

// Типы купонов: manual выдаётся промо-кодом, deposit активируется депозитом
const (
	CouponManual  = "manual"
	CouponDeposit = "deposit"
)

type Coupon struct {
	ID                 int
	Code               string
	Amount             float64
	Type               string
	MinDepositRequired float64
	MaxUses            int
	CurrentUses        int
	Active             bool
}
