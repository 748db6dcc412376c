package converter

import (
	"github.com/gkratosBR/Glitch-Arena/internal/api/dto/wallet"
	"github.com/gkratosBR/Glitch-Arena/internal/model"
)

func ToBalanceResponse(user model.User) wallet.BalanceResponse {
	return wallet.BalanceResponse{
		Wallet:         user.Wallet,
		BonusWallet:    user.BonusWallet,
		RolloverTarget: user.RolloverTarget,
		ProfitLoss:     user.ProfitLoss,
		TotalBetsMade:  user.TotalBetsMade,
		KYCStatus:      user.KYCStatus,
		ReferralCode:   user.ReferralCode,
	}
}
