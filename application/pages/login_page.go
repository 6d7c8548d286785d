package pages

import (
	"context"

	"ui_automation/domain/entities"
	"ui_automation/domain/interfaces"
)

// Login page locators
var (
	emailAddressField = entities.ByID("user-name")
	passwordField     = entities.ByID("password")
	loginButton       = entities.ByXPath("//*[@id='login-button']")
	warningMessage    = entities.ByXPath("//*[@id='login_button_container']/div/form/div[3]/h3")
)

// LoginPage binds the login screen locators to semantic actions.
// LoginToApplication does not verify the outcome, callers query
// RetrieveWarningMessage or the next page themselves.
type LoginPage struct {
	page interfaces.Interactor
}

func NewLoginPage(page interfaces.Interactor) *LoginPage {
	return &LoginPage{page: page}
}

func (l *LoginPage) EnterEmailAddress(ctx context.Context, email string) error {
	return l.page.TypeInto(ctx, email, emailAddressField)
}

func (l *LoginPage) EnterPassword(ctx context.Context, password string) error {
	return l.page.TypeInto(ctx, password, passwordField)
}

func (l *LoginPage) ClickOnLoginButton(ctx context.Context) error {
	return l.page.Click(ctx, loginButton)
}

// LoginToApplication - enters email and password, then submits
func (l *LoginPage) LoginToApplication(ctx context.Context, email string, password string) error {
	if err := l.EnterEmailAddress(ctx, email); err != nil {
		return err
	}
	if err := l.EnterPassword(ctx, password); err != nil {
		return err
	}
	return l.ClickOnLoginButton(ctx)
}

// RetrieveWarningMessage - returns the error banner text shown after a failed login
func (l *LoginPage) RetrieveWarningMessage(ctx context.Context) (string, error) {
	return l.page.Text(ctx, warningMessage)
}

// IsWarningDisplayed - reports whether the error banner is visible
func (l *LoginPage) IsWarningDisplayed(ctx context.Context) (bool, error) {
	return l.page.IsDisplayed(ctx, warningMessage)
}
