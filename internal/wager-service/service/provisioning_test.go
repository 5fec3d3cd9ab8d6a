package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCreateWalletFundsFromHouse(t *testing.T) {
	gw := &fakeGateway{}
	s := NewProvisioning(zap.NewNop(), gw, houseAdminKey, 1)

	wallet, funded, err := s.CreateWallet(context.Background(), "alice")
	require.NoError(t, err)
	require.True(t, funded)
	require.Equal(t, "wallet-1", wallet.ID)

	created := gw.created()
	require.Len(t, created, 1)
	require.Equal(t, wallet.InKey, created[0].WalletKey)
	require.Equal(t, int64(1), created[0].AmountSats)
	require.Equal(t, "Initial funding", created[0].Memo)

	paid := gw.paid()
	require.Len(t, paid, 1)
	require.Equal(t, houseAdminKey, paid[0].AdminKey)
}

func TestCreateWalletSurvivesFundingFailure(t *testing.T) {
	gw := &fakeGateway{
		payInvoiceErr: func(string, string) error { return errors.New("house wallet empty") },
	}
	s := NewProvisioning(zap.NewNop(), gw, houseAdminKey, 1)

	wallet, funded, err := s.CreateWallet(context.Background(), "bob")
	require.NoError(t, err)
	require.False(t, funded)
	require.NotEmpty(t, wallet.AdminKey)
	require.NotEmpty(t, wallet.InKey)
}
