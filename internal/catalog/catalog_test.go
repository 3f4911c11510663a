package catalog_test

import (
	"testing"

	"github.com/shopbooks/chartops/internal/catalog"
	"github.com/shopbooks/chartops/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := catalog.Default()

	mains := c.MainAccounts()
	require.Len(t, mains, 8)

	codes := make([]string, 0, len(mains))
	for _, m := range mains {
		codes = append(codes, m.AccountCode)
		assert.True(t, m.IsMain(), "main definition %s must not carry a parent", m.AccountCode)
	}
	assert.Equal(t, []string{"1100", "1200", "1300", "1400", "2100", "4100", "5100", "5200"}, codes)

	protected := c.ProtectedCodes()
	assert.Len(t, protected, 8)
	for _, code := range codes {
		assert.Contains(t, protected, code)
	}
}

func TestSubAccounts(t *testing.T) {
	c := catalog.Default()

	subs := c.SubAccounts("5200")
	require.Len(t, subs, 4)
	for _, s := range subs {
		assert.Equal(t, "5200", s.ParentAccountCode)
		assert.Equal(t, domain.Expenses, s.Classification)
	}

	assert.Empty(t, c.SubAccounts("1300"), "customers has no default sub-accounts")
	assert.Empty(t, c.SubAccounts("9999"), "unknown parent yields empty, not error")
}

func TestParentCodesFollowsMainOrder(t *testing.T) {
	c := catalog.Default()
	assert.Equal(t, []string{"1100", "1200", "1400", "4100", "5200"}, c.ParentCodes())
}

func TestNewRejectsOrphanSub(t *testing.T) {
	mains := []domain.AccountDefinition{
		{AccountCode: "1100", Name: "Cash", Classification: domain.Assets, Nature: domain.Debit},
	}
	subs := []domain.AccountDefinition{
		{AccountCode: "4101", Name: "Orphan", ParentAccountCode: "4100", Classification: domain.Revenue, Nature: domain.Credit},
	}

	_, err := catalog.New(mains, subs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown parent")
}

func TestNewRejectsDuplicateCodes(t *testing.T) {
	mains := []domain.AccountDefinition{
		{AccountCode: "1100", Name: "Cash", Classification: domain.Assets, Nature: domain.Debit},
		{AccountCode: "1100", Name: "Cash Again", Classification: domain.Assets, Nature: domain.Debit},
	}

	_, err := catalog.New(mains, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestNewRejectsMainWithParent(t *testing.T) {
	mains := []domain.AccountDefinition{
		{AccountCode: "1101", Name: "Not a main", ParentAccountCode: "1100", Classification: domain.Assets, Nature: domain.Debit},
	}

	_, err := catalog.New(mains, nil)
	require.Error(t, err)
}

func TestAccessorsReturnCopies(t *testing.T) {
	c := catalog.Default()

	mains := c.MainAccounts()
	mains[0].Name = "mutated"

	assert.Equal(t, "Cash", c.MainAccounts()[0].Name)
}
