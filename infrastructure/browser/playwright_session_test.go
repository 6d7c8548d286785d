package browser

import (
	"testing"

	"ui_automation/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tebeka/selenium"
)

func TestSelectorFor(t *testing.T) {
	cases := []struct {
		by    string
		value string
		want  string
	}{
		{selenium.ByID, "user-name", `[id="user-name"]`},
		{selenium.ByName, "password", `[name="password"]`},
		{selenium.ByClassName, "error-button", `[class~="error-button"]`},
		{selenium.ByClassName, "col:6.5", `[class~="col:6.5"]`},
		{selenium.ByClassName, `a"b`, `[class~="a\"b"]`},
		{selenium.ByLinkText, `Say "hi"`, `a:text-is("Say \"hi\"")`},
		{selenium.ByXPATH, "//*[@id='login-button']", "xpath=//*[@id='login-button']"},
		{selenium.ByCSSSelector, "form > input[type=submit]", "css=form > input[type=submit]"},
	}

	for _, tc := range cases {
		got, err := selectorFor(tc.by, tc.value)
		require.NoError(t, err, tc.by)
		assert.Equal(t, tc.want, got)
	}

	_, err := selectorFor(selenium.ByTagName, "input")
	assert.ErrorIs(t, err, entities.ErrInvalidLocatorKind)
}
