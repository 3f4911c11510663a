package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/shopbooks/chartops/internal/core/domain"
	"github.com/shopbooks/chartops/internal/core/services"
)

func TestVerifier_CleanClear(t *testing.T) {
	accounts := new(MockAccountSnapshotReader)
	accounts.On("SnapshotByShop", mock.Anything, "shop-a").Return(snapshotOf(
		mainAccount("1100", "Cash", "shop-a"),
		mainAccount("4100", "Sales", "shop-a"),
	), nil)

	verifier := services.NewVerifier(accounts)
	report, err := verifier.VerifyClear(context.Background(), "shop-a",
		[]string{"4101", "1301"}, []string{"1100", "4100"})

	require.NoError(t, err)
	assert.True(t, report.Clean())
	assert.Equal(t, []string{"1100", "4100"}, report.Preserved)
	assert.Equal(t, []string{"1301", "4101"}, report.Deleted)
	assert.Empty(t, report.UnexpectedRemaining)
}

func TestVerifier_ResidueIsWarningNotError(t *testing.T) {
	// 4101 should be gone but the re-read still sees it.
	accounts := new(MockAccountSnapshotReader)
	accounts.On("SnapshotByShop", mock.Anything, "shop-a").Return(snapshotOf(
		mainAccount("1100", "Cash", "shop-a"),
		subAccount("4101", "4100", "General Sales", "shop-a"),
	), nil)

	verifier := services.NewVerifier(accounts)
	report, err := verifier.VerifyClear(context.Background(), "shop-a",
		[]string{"4101", "1301"}, []string{"1100"})

	require.NoError(t, err, "residue never turns into a hard failure")
	assert.False(t, report.Clean())
	assert.Equal(t, []string{"4101"}, report.UnexpectedRemaining)
	assert.Equal(t, []string{"1301"}, report.Deleted)
	assert.Equal(t, []string{"1100"}, report.Preserved)
}

func TestVerifier_ReReadFailure(t *testing.T) {
	readErr := errors.New("unavailable")
	accounts := new(MockAccountSnapshotReader)
	accounts.On("SnapshotByShop", mock.Anything, "shop-a").Return(nil, readErr)

	verifier := services.NewVerifier(accounts)
	report, err := verifier.VerifyClear(context.Background(), "shop-a", []string{"4101"}, nil)

	assert.Nil(t, report)
	assert.ErrorIs(t, err, readErr)
}

func TestVerifier_EmptyExpectations(t *testing.T) {
	accounts := new(MockAccountSnapshotReader)
	accounts.On("SnapshotByShop", mock.Anything, "shop-a").Return(map[string]domain.Account{}, nil)

	verifier := services.NewVerifier(accounts)
	report, err := verifier.VerifyClear(context.Background(), "shop-a", nil, nil)

	require.NoError(t, err)
	assert.True(t, report.Clean())
}
