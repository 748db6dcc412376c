package wallet

import (
	"context"
	"testing"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gkratosBR/Glitch-Arena/internal/config"
	"github.com/gkratosBR/Glitch-Arena/internal/model"
	"github.com/gkratosBR/Glitch-Arena/internal/repository"
)

type txManagerStub struct{}

func (txManagerStub) Do(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

func (txManagerStub) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(context.Context) error) error {
	return fn(ctx)
}

type fakeUserRepo struct {
	repository.UserRepository

	user      *model.User
	converted bool
	deposits  []float64
}

func (f *fakeUserRepo) GetUserByID(_ context.Context, _ int) (*model.User, error) {
	u := *f.user
	return &u, nil
}

func (f *fakeUserRepo) AdjustBalances(_ context.Context, _ int, walletDelta, bonusDelta, rolloverDelta float64) error {
	f.user.Wallet += walletDelta
	f.user.BonusWallet += bonusDelta
	f.user.RolloverTarget += rolloverDelta
	return nil
}

func (f *fakeUserRepo) ConvertBonus(_ context.Context, _ int) error {
	f.converted = true
	f.user.Wallet += f.user.BonusWallet
	f.user.BonusWallet = 0
	f.user.RolloverTarget = 0
	return nil
}

func (f *fakeUserRepo) RecordDeposit(_ context.Context, _ int, amount float64) error {
	f.user.Wallet += amount
	f.user.TotalDeposited += amount
	f.deposits = append(f.deposits, amount)
	return nil
}

type fakeCouponRepo struct {
	repository.CouponRepository

	coupon     *model.Coupon
	used       bool
	increments int
	usages     []float64
}

func (f *fakeCouponRepo) GetByCode(_ context.Context, _ string) (*model.Coupon, error) {
	return f.coupon, nil
}

func (f *fakeCouponRepo) HasUsage(_ context.Context, _ int, _ string) (bool, error) {
	return f.used, nil
}

func (f *fakeCouponRepo) IncrementUses(_ context.Context, _ string) error {
	f.increments++
	return nil
}

func (f *fakeCouponRepo) RegisterUsage(_ context.Context, _ int, _ string, amount float64) error {
	f.usages = append(f.usages, amount)
	return nil
}

type fakePaymentRepo struct {
	repository.PaymentRepository

	withdrawals []float64
	deposits    []float64
}

func (f *fakePaymentRepo) CreateWithdrawal(_ context.Context, _ int, amount float64) error {
	f.withdrawals = append(f.withdrawals, amount)
	return nil
}

func (f *fakePaymentRepo) CreateDeposit(_ context.Context, _ int, amount float64) error {
	f.deposits = append(f.deposits, amount)
	return nil
}

type fakePlatformRepo struct {
	repository.PlatformRepository
}

func (fakePlatformRepo) GetConfig(_ context.Context) (config.Platform, error) {
	return config.DefaultPlatform(), nil
}

func newTestService(user *model.User, coupon *model.Coupon) (*serv, *fakeUserRepo, *fakeCouponRepo, *fakePaymentRepo) {
	userRepo := &fakeUserRepo{user: user}
	couponRepo := &fakeCouponRepo{coupon: coupon}
	paymentRepo := &fakePaymentRepo{}

	return NewService(txManagerStub{}, userRepo, fakePlatformRepo{}, couponRepo, paymentRepo), userRepo, couponRepo, paymentRepo
}

func TestDeposit(t *testing.T) {
	user := &model.User{ID: 1}
	s, userRepo, _, paymentRepo := newTestService(user, nil)

	require.NoError(t, s.Deposit(context.Background(), 1, 50))
	assert.InDelta(t, 50.0, userRepo.user.Wallet, 1e-9)
	assert.InDelta(t, 50.0, userRepo.user.TotalDeposited, 1e-9)
	require.Len(t, paymentRepo.deposits, 1)

	// Минимальный депозит 20
	err := s.Deposit(context.Background(), 1, 10)
	assert.ErrorIs(t, err, ErrBelowMinimum)
}

func TestWithdraw(t *testing.T) {
	user := &model.User{ID: 1, Wallet: 100, BonusWallet: 500}
	s, userRepo, _, paymentRepo := newTestService(user, nil)

	require.NoError(t, s.Withdraw(context.Background(), 1, 60))
	assert.InDelta(t, 40.0, userRepo.user.Wallet, 1e-9)
	require.Len(t, paymentRepo.withdrawals, 1)

	// Бонусный баланс недоступен для вывода
	err := s.Withdraw(context.Background(), 1, 200)
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	err = s.Withdraw(context.Background(), 1, 10)
	assert.ErrorIs(t, err, ErrBelowMinimum)
}

func TestConvertBonus(t *testing.T) {
	user := &model.User{ID: 1, BonusWallet: 30, RolloverTarget: 12}
	s, userRepo, _, _ := newTestService(user, nil)

	// Роловер не закрыт
	err := s.ConvertBonus(context.Background(), 1)
	require.ErrorIs(t, err, ErrRolloverPending)
	assert.False(t, userRepo.converted)

	// Хвост роловера меньше допуска - конвертация проходит
	userRepo.user.RolloverTarget = 0.40
	require.NoError(t, s.ConvertBonus(context.Background(), 1))
	assert.True(t, userRepo.converted)
	assert.InDelta(t, 30.0, userRepo.user.Wallet, 1e-9)
	assert.InDelta(t, 0.0, userRepo.user.BonusWallet, 1e-9)
}

func TestConvertBonus_NoBonus(t *testing.T) {
	user := &model.User{ID: 1}
	s, _, _, _ := newTestService(user, nil)

	err := s.ConvertBonus(context.Background(), 1)
	assert.ErrorIs(t, err, ErrNoBonus)
}

func TestRedeemCoupon(t *testing.T) {
	user := &model.User{ID: 1}
	coupon := &model.Coupon{Code: "GLITCH10", Amount: 10, Type: model.CouponManual, MaxUses: 100, Active: true}
	s, userRepo, couponRepo, _ := newTestService(user, coupon)

	credited, err := s.RedeemCoupon(context.Background(), 1, "glitch10")
	require.NoError(t, err)

	assert.InDelta(t, 10.0, credited, 1e-9)
	assert.InDelta(t, 10.0, userRepo.user.BonusWallet, 1e-9)
	// Роловер = сумма купона × множитель (20 по умолчанию)
	assert.InDelta(t, 200.0, userRepo.user.RolloverTarget, 1e-9)
	assert.Equal(t, 1, couponRepo.increments)
	require.Len(t, couponRepo.usages, 1)
}

func TestRedeemCoupon_Rejections(t *testing.T) {
	user := &model.User{ID: 1}

	t.Run("unknown code", func(t *testing.T) {
		s, _, _, _ := newTestService(user, nil)
		_, err := s.RedeemCoupon(context.Background(), 1, "NOPE")
		assert.ErrorIs(t, err, ErrCouponInvalid)
	})

	t.Run("inactive", func(t *testing.T) {
		s, _, _, _ := newTestService(user, &model.Coupon{Code: "X", Amount: 5, Type: model.CouponManual})
		_, err := s.RedeemCoupon(context.Background(), 1, "X")
		assert.ErrorIs(t, err, ErrCouponInvalid)
	})

	t.Run("deposit-type is not redeemable by code", func(t *testing.T) {
		s, _, _, _ := newTestService(user, &model.Coupon{Code: "X", Amount: 5, Type: model.CouponDeposit, Active: true})
		_, err := s.RedeemCoupon(context.Background(), 1, "X")
		assert.ErrorIs(t, err, ErrCouponInvalid)
	})

	t.Run("exhausted", func(t *testing.T) {
		s, _, _, _ := newTestService(user, &model.Coupon{Code: "X", Amount: 5, Type: model.CouponManual, Active: true, MaxUses: 2, CurrentUses: 2})
		_, err := s.RedeemCoupon(context.Background(), 1, "X")
		assert.ErrorIs(t, err, ErrCouponExhausted)
	})

	t.Run("already used", func(t *testing.T) {
		userRepo := &fakeUserRepo{user: user}
		couponRepo := &fakeCouponRepo{
			coupon: &model.Coupon{Code: "X", Amount: 5, Type: model.CouponManual, Active: true},
			used:   true,
		}
		s := NewService(txManagerStub{}, userRepo, fakePlatformRepo{}, couponRepo, &fakePaymentRepo{})
		_, err := s.RedeemCoupon(context.Background(), 1, "X")
		assert.ErrorIs(t, err, ErrCouponUsed)
	})
}
