package harness

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"ui_automation/domain/entities"
	"ui_automation/domain/interfaces"
	"ui_automation/domain/interfaces/mocks"
	"ui_automation/infrastructure/config"
	"ui_automation/infrastructure/storage"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const appURL = "https://example.test/login"

type fixture struct {
	harness    *Harness
	factory    *mocks.MockSessionFactory
	session    *mocks.MockSession
	reports    *storage.ReportStore
	resultsDir string
}

func newFixture(t *testing.T, browser string) *fixture {
	t.Helper()
	logger, _ := test.NewNullLogger()
	dir := t.TempDir()

	cfgPath := filepath.Join(dir, "config.ini")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[basic info]\nbrowser = "+browser+"\napp_url = "+appURL+"\n"), 0o644))

	resultsDir := filepath.Join(dir, "allure-results")
	reports, err := storage.NewReportStore(resultsDir, logger)
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	f := &fixture{
		factory:    mocks.NewMockSessionFactory(ctrl),
		session:    mocks.NewMockSession(ctrl),
		reports:    reports,
		resultsDir: resultsDir,
	}
	f.harness = NewHarness(config.NewReader(cfgPath, logger), f.factory, reports, logger)
	return f
}

func (f *fixture) expectSetUp(browser entities.Browser) *gomock.Call {
	return f.session.EXPECT().Navigate(gomock.Any(), appURL).Return(nil).After(
		f.session.EXPECT().MaximizeWindow(gomock.Any()).Return(nil).After(
			f.factory.EXPECT().Open(gomock.Any(), browser).Return(f.session, nil),
		),
	)
}

func (f *fixture) savedResult(t *testing.T) *entities.TestResult {
	t.Helper()
	results, err := f.reports.LoadResults()
	require.NoError(t, err)
	require.Len(t, results, 1)
	return results[0]
}

func TestRunPassingCase(t *testing.T) {
	f := newFixture(t, "chrome")
	navigated := f.expectSetUp(entities.BrowserChrome)
	f.session.EXPECT().Close().Return(nil).After(navigated)

	called := false
	result, err := f.harness.Run(context.Background(), Case{
		Name:       "test_login_with_valid_credentials[row2]",
		Parameters: []entities.Parameter{{Name: "email_address", Value: "user@x.com"}},
	}, func(ctx context.Context, s interfaces.Session) error {
		called = true
		assert.Same(t, f.session, s)
		return nil
	})

	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, entities.StatusPassed, result.Status)
	assert.Empty(t, result.Attachments)

	saved := f.savedResult(t)
	assert.Equal(t, result.UUID, saved.UUID)
	assert.Equal(t, "test_login_with_valid_credentials[row2]", saved.FullName)
	assert.Equal(t, result.Parameters, saved.Parameters)
	assert.GreaterOrEqual(t, saved.Stop, saved.Start)
}

func TestRunFailingCaseCapturesScreenshotBeforeTeardown(t *testing.T) {
	f := newFixture(t, "chrome")
	png := []byte{0x89, 'P', 'N', 'G'}
	boom := errors.New("element not found")

	gomock.InOrder(
		f.expectSetUp(entities.BrowserChrome),
		f.session.EXPECT().Screenshot(gomock.Any()).Return(png, nil),
		f.session.EXPECT().Close().Return(nil),
	)

	result, err := f.harness.Run(context.Background(), Case{Name: "failing"}, func(ctx context.Context, s interfaces.Session) error {
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, entities.StatusFailed, result.Status)
	assert.Equal(t, "element not found", result.StatusDetails.Message)
	require.Len(t, result.Attachments, 1)
	assert.Equal(t, FailureAttachmentName, result.Attachments[0].Name)
	assert.Equal(t, "image/png", result.Attachments[0].Type)

	data, err := os.ReadFile(filepath.Join(f.resultsDir, result.Attachments[0].Source))
	require.NoError(t, err)
	assert.Equal(t, png, data)
	assert.Equal(t, result.Attachments, f.savedResult(t).Attachments)
}

func TestRunPanickingCaseCapturesScreenshotAndRepanics(t *testing.T) {
	f := newFixture(t, "firefox")

	gomock.InOrder(
		f.expectSetUp(entities.BrowserFirefox),
		f.session.EXPECT().Screenshot(gomock.Any()).Return([]byte("png"), nil),
		f.session.EXPECT().Close().Return(nil),
	)

	assert.PanicsWithValue(t, "index out of range", func() {
		_, _ = f.harness.Run(context.Background(), Case{Name: "panics"}, func(ctx context.Context, s interfaces.Session) error {
			panic("index out of range")
		})
	})

	saved := f.savedResult(t)
	assert.Equal(t, entities.StatusFailed, saved.Status)
	assert.Equal(t, "panic: index out of range", saved.StatusDetails.Message)
	assert.Len(t, saved.Attachments, 1)
}

func TestRunScreenshotFailureKeepsCaseError(t *testing.T) {
	f := newFixture(t, "edge")
	boom := errors.New("assertion failed")

	gomock.InOrder(
		f.expectSetUp(entities.BrowserEdge),
		f.session.EXPECT().Screenshot(gomock.Any()).Return(nil, errors.New("no such window")),
		f.session.EXPECT().Close().Return(nil),
	)

	result, err := f.harness.Run(context.Background(), Case{Name: "no screenshot"}, func(ctx context.Context, s interfaces.Session) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, entities.StatusFailed, result.Status)
	assert.Empty(t, result.Attachments)
}

func TestRunUnsupportedBrowserIsBroken(t *testing.T) {
	f := newFixture(t, "safari")

	result, err := f.harness.Run(context.Background(), Case{Name: "safari"}, func(ctx context.Context, s interfaces.Session) error {
		t.Fatal("case body must not run")
		return nil
	})
	assert.ErrorIs(t, err, entities.ErrUnsupportedBrowser)
	assert.Equal(t, entities.StatusBroken, result.Status)
	assert.Equal(t, entities.StatusBroken, f.savedResult(t).Status)
}

func TestRunMissingConfigIsBroken(t *testing.T) {
	logger, _ := test.NewNullLogger()
	ctrl := gomock.NewController(t)
	reports, err := storage.NewReportStore(t.TempDir(), logger)
	require.NoError(t, err)

	h := NewHarness(config.NewReader(filepath.Join(t.TempDir(), "config.ini"), logger), mocks.NewMockSessionFactory(ctrl), reports, logger)
	_, err = h.Run(context.Background(), Case{Name: "no config"}, func(ctx context.Context, s interfaces.Session) error {
		return nil
	})
	assert.ErrorIs(t, err, entities.ErrConfigNotFound)
}

func TestRunNavigationFailureClosesSession(t *testing.T) {
	f := newFixture(t, "chrome")
	unreachable := errors.New("net::ERR_NAME_NOT_RESOLVED")

	gomock.InOrder(
		f.factory.EXPECT().Open(gomock.Any(), entities.BrowserChrome).Return(f.session, nil),
		f.session.EXPECT().MaximizeWindow(gomock.Any()).Return(nil),
		f.session.EXPECT().Navigate(gomock.Any(), appURL).Return(unreachable),
		f.session.EXPECT().Close().Return(nil),
	)

	result, err := f.harness.Run(context.Background(), Case{Name: "unreachable"}, func(ctx context.Context, s interfaces.Session) error {
		t.Fatal("case body must not run")
		return nil
	})
	assert.ErrorIs(t, err, unreachable)
	assert.Equal(t, entities.StatusBroken, result.Status)
}

func TestRunTeardownFailureMarksPassedCaseBroken(t *testing.T) {
	f := newFixture(t, "chrome")
	quit := errors.New("session already closed")

	gomock.InOrder(
		f.expectSetUp(entities.BrowserChrome),
		f.session.EXPECT().Close().Return(quit),
	)

	result, err := f.harness.Run(context.Background(), Case{Name: "teardown"}, func(ctx context.Context, s interfaces.Session) error {
		return nil
	})
	assert.ErrorIs(t, err, quit)
	assert.Equal(t, entities.StatusBroken, result.Status)
	assert.Equal(t, entities.StatusBroken, f.savedResult(t).Status)
}
