package intake

import (
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"reddybook/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubSites struct {
	sites []models.ReferralSite
	err   error
}

func (s *stubSites) ListActive() ([]models.ReferralSite, error) { return s.sites, s.err }

type stubLedger struct {
	created []models.Submission
	err     error
}

func (l *stubLedger) Create(sub *models.Submission) error {
	if l.err != nil {
		return l.err
	}
	l.created = append(l.created, *sub)
	return nil
}

type stubNumber string

func (n stubNumber) WhatsAppNumber() (string, error) { return string(n), nil }

func readyFlow(t *testing.T) *Flow {
	f := NewFlow()
	require.NoError(t, f.SubmitName("  Ravi Kumar "))
	require.NoError(t, f.SubmitMobile("9876543210"))
	return f
}

func TestService_SitesFallback(t *testing.T) {
	svc := NewService(&stubSites{err: errors.New("db down")}, &stubLedger{}, stubNumber(""), "91", zap.NewNop())
	sites, fallback := svc.Sites()
	assert.True(t, fallback)
	require.Len(t, sites, 6)
	assert.Equal(t, "CricBet99", sites[0].DisplayName)
	assert.Equal(t, "cricindia99.com (CricBet99)", sites[0].Name)
	assert.Equal(t, "Fairplay", sites[5].DisplayName)

	svc = NewService(&stubSites{sites: []models.ReferralSite{{ID: 9, Name: "x", DisplayName: "X"}}}, &stubLedger{}, stubNumber(""), "91", zap.NewNop())
	sites, fallback = svc.Sites()
	assert.False(t, fallback)
	assert.Len(t, sites, 1)
}

func TestService_FindSite(t *testing.T) {
	svc := NewService(&stubSites{sites: []models.ReferralSite{
		{ID: 1, Name: "lagan365.com (Lotus365)", DisplayName: "Lotus365"},
		{ID: 2, Name: "plain-name"},
	}}, &stubLedger{}, stubNumber(""), "91", zap.NewNop())

	site, ok := svc.FindSite("Lotus365")
	require.True(t, ok)
	assert.Equal(t, uint(1), site.ID)

	site, ok = svc.FindSite("plain-name")
	require.True(t, ok)
	assert.Equal(t, uint(2), site.ID)

	_, ok = svc.FindSite("nope")
	assert.False(t, ok)
}

func TestService_CommitWritesAndResets(t *testing.T) {
	ledger := &stubLedger{}
	svc := NewService(&stubSites{}, ledger, stubNumber("919999999999"), "91", zap.NewNop())
	fixed := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	f := readyFlow(t)
	link, err := svc.Commit(f, &models.ReferralSite{Name: "reddybook247.com (ReddyBook)", DisplayName: "ReddyBook"})
	require.NoError(t, err)

	require.Len(t, ledger.created, 1)
	sub := ledger.created[0]
	assert.Equal(t, "Ravi Kumar", sub.Name)
	assert.Equal(t, "9876543210", sub.MobileNumber)
	assert.Equal(t, "ReddyBook", sub.SelectedWebsite)
	assert.Equal(t, "pending", sub.StatusValue())
	assert.Equal(t, fixed, sub.SubmittedAt)

	require.True(t, strings.HasPrefix(link, "https://wa.me/919999999999?text="))
	u, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, "NAME: Ravi Kumar\nMOBILE NUMBER: +91 9876543210\nWEBSITE: ReddyBook", u.Query().Get("text"))

	assert.Equal(t, &Flow{Step: StepName}, f)
}

func TestService_CommitUsesNameWithoutDisplayName(t *testing.T) {
	ledger := &stubLedger{}
	svc := NewService(&stubSites{}, ledger, stubNumber("1"), "91", zap.NewNop())
	_, err := svc.Commit(readyFlow(t), &models.ReferralSite{Name: "only-name"})
	require.NoError(t, err)
	assert.Equal(t, "only-name", ledger.created[0].SelectedWebsite)
}

func TestService_CommitFailureKeepsFlow(t *testing.T) {
	svc := NewService(&stubSites{}, &stubLedger{err: errors.New("insert failed")}, stubNumber("1"), "91", zap.NewNop())
	f := readyFlow(t)

	link, err := svc.Commit(f, &models.ReferralSite{DisplayName: "ReddyBook"})
	assert.Error(t, err)
	assert.Empty(t, link)
	assert.Equal(t, StepSite, f.Step)
	assert.Equal(t, "9876543210", f.Mobile)
}

func TestService_CommitRequiresSiteStep(t *testing.T) {
	svc := NewService(&stubSites{}, &stubLedger{}, stubNumber("1"), "91", zap.NewNop())
	f := NewFlow()
	_, err := svc.Commit(f, &models.ReferralSite{DisplayName: "x"})
	assert.ErrorIs(t, err, ErrNotReady)

	_, err = svc.Commit(readyFlow(t), nil)
	assert.ErrorIs(t, err, ErrUnknownSite)
}
