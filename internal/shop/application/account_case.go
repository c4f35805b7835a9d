package application

import (
	"context"

	"github.com/digivend/credit-shop/internal/shop/domain"
)

type AccountCase struct {
	accountFetcher domain.AccountFetcher
}

func NewAccountCase(accountFetcher domain.AccountFetcher) *AccountCase {
	return &AccountCase{
		accountFetcher: accountFetcher,
	}
}

func (ac *AccountCase) GetAccount(ctx context.Context, userId int) (domain.TotalAccountInfo, error) {
	accountInfo, err := ac.accountFetcher.FetchAccountInfo(ctx, userId)
	if err != nil {
		return domain.TotalAccountInfo{}, err
	}

	purchases, err := ac.accountFetcher.FetchUserPurchases(ctx, userId)
	if err != nil {
		return domain.TotalAccountInfo{}, err
	}

	return domain.TotalAccountInfo{
		AccountInfo: accountInfo,
		Purchases:   purchases,
	}, nil
}
