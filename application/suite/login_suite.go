package suite

import (
	"context"
	"fmt"

	"ui_automation/application/harness"
	"ui_automation/application/pages"
	"ui_automation/domain/entities"
	"ui_automation/domain/interfaces"

	"github.com/sirupsen/logrus"
)

const loginCaseName = "test_login_with_valid_credentials"

// Summary counts case outcomes of a suite run
type Summary struct {
	Passed  int
	Failed  int
	Broken  int
	Results []*entities.TestResult
}

// OK reports whether every case passed
func (s *Summary) OK() bool {
	return s.Failed == 0 && s.Broken == 0
}

func (s *Summary) add(result *entities.TestResult) {
	s.Results = append(s.Results, result)
	switch result.Status {
	case entities.StatusPassed:
		s.Passed++
	case entities.StatusBroken:
		s.Broken++
	default:
		s.Failed++
	}
}

// LoginSuite runs the login scenario once per data row
type LoginSuite struct {
	harness  *harness.Harness
	data     interfaces.DataSource
	redactor interfaces.Redactor
	logger   *logrus.Logger
	path     string
	sheet    string
}

// NewLoginSuite - creates a suite reading credentials from sheet of the workbook at path
func NewLoginSuite(h *harness.Harness, data interfaces.DataSource, redactor interfaces.Redactor, logger *logrus.Logger, path string, sheet string) *LoginSuite {
	return &LoginSuite{
		harness:  h,
		data:     data,
		redactor: redactor,
		logger:   logger,
		path:     path,
		sheet:    sheet,
	}
}

// Run - runs one case per row. A failing row does not stop the rows after it;
// a data source error or a cancelled ctx aborts the run. On cancellation the
// summary of the rows already run is returned with the error.
func (s *LoginSuite) Run(ctx context.Context) (*Summary, error) {
	rows, err := s.data.LoadTable(s.path, s.sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to load login test data: %w", err)
	}

	summary := &Summary{}
	for i, row := range rows {
		if err := ctx.Err(); err != nil {
			s.logger.Warnf("Login suite interrupted, %d of %d rows not run", len(rows)-i, len(rows))
			return summary, fmt.Errorf("login suite interrupted before row %d: %w", i+2, err)
		}

		// sheet row numbers are 1-based and row 1 is the header
		rowNum := i + 2
		name := fmt.Sprintf("%s[row%d]", loginCaseName, rowNum)

		result, err := s.harness.Run(ctx, harness.Case{
			Name:     name,
			FullName: "LoginSuite." + name,
			Parameters: []entities.Parameter{
				{Name: "email_address", Value: row.Cell(0)},
				{Name: "password", Value: s.redactor.Mask("password", row.Cell(1))},
			},
		}, s.loginWithValidCredentials(row, rowNum))
		if err != nil {
			s.logger.Warnf("%s: %v", name, err)
		}
		summary.add(result)
	}

	s.logger.Infof("Login suite finished: %d passed, %d failed, %d broken", summary.Passed, summary.Failed, summary.Broken)
	return summary, nil
}

// loginWithValidCredentials - logs in with the email address and password of row
func (s *LoginSuite) loginWithValidCredentials(row entities.DataRow, rowNum int) harness.CaseFunc {
	return func(ctx context.Context, session interfaces.Session) error {
		if len(row) < 2 {
			return fmt.Errorf("%w: row %d has %d columns, expected email address and password", entities.ErrMalformedRow, rowNum, len(row))
		}

		login := pages.NewLoginPage(pages.NewBasePage(session, s.redactor, s.logger))
		return login.LoginToApplication(ctx, row.Cell(0), row.Cell(1))
	}
}
