package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"ui_automation/application/harness"
	"ui_automation/application/suite"
	"ui_automation/domain/entities"
	"ui_automation/infrastructure/config"
	"ui_automation/infrastructure/security"
	"ui_automation/infrastructure/storage"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

// loginColumns is the header a fresh login workbook starts with
var loginColumns = []string{"email_address", "password"}

func (a *App) runCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the login scenario once per test data row",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reports, err := storage.NewReportStore(a.resultsDir, a.logger)
			if err != nil {
				return err
			}

			h := harness.NewHarness(config.NewReader(a.configPath, a.logger), a.sessionFactory(), reports, a.logger)
			logins := suite.NewLoginSuite(h, storage.NewWorkbook(a.logger), security.NewRedactor(a.logger), a.logger, a.dataPath, a.sheet)

			summary, err := logins.Run(cmd.Context())
			if summary == nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, result := range summary.Results {
				fmt.Fprintf(out, "%s %s\n", statusLabel(result.Status), result.Name)
				if result.Status != entities.StatusPassed {
					fmt.Fprintf(out, "       %s\n", dimStyle.Render(result.StatusDetails.Message))
				}
			}
			fmt.Fprintf(out, "\n%d passed, %d failed, %d broken. Results in %s\n",
				summary.Passed, summary.Failed, summary.Broken, reports.Dir())

			if err != nil {
				return err
			}
			if !summary.OK() {
				return ErrCasesFailed
			}
			return nil
		},
	}
}

func (a *App) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the ini config file",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "get <section> <key>",
		Short: "Print one value of the config file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := config.NewReader(a.configPath, a.logger).Read(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	})
	return cmd
}

func (a *App) dataCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "data",
		Short: "Inspect and edit the test data workbook",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the data rows with sensitive columns masked",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				wb := storage.NewWorkbook(a.logger)
				header, err := wb.Header(a.dataPath, a.sheet)
				if err != nil {
					return err
				}
				rows, err := wb.LoadTable(a.dataPath, a.sheet)
				if err != nil {
					return err
				}

				redactor := security.NewRedactor(a.logger)
				masked := make([][]string, 0, len(rows))
				for _, row := range rows {
					line := make([]string, len(row))
					for i, value := range row {
						line[i] = redactor.Mask(header[i], value)
					}
					masked = append(masked, line)
				}

				t := table.New().
					Border(lipgloss.NormalBorder()).
					Headers(header...).
					Rows(masked...)
				fmt.Fprintln(cmd.OutOrStdout(), t.Render())
				fmt.Fprintf(cmd.OutOrStdout(), "%d data rows, %d columns\n", len(rows), len(header))
				return nil
			},
		},
		&cobra.Command{
			Use:   "get <row> <col>",
			Short: "Print one cell, both coordinates 1-based",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				row, col, err := parseCell(args[0], args[1])
				if err != nil {
					return err
				}
				value, err := storage.NewWorkbook(a.logger).CellValue(a.dataPath, a.sheet, row, col)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), value)
				return nil
			},
		},
		&cobra.Command{
			Use:   "set <row> <col> <value>",
			Short: "Write one cell and save the workbook",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				row, col, err := parseCell(args[0], args[1])
				if err != nil {
					return err
				}
				return storage.NewWorkbook(a.logger).SetCellValue(a.dataPath, a.sheet, row, col, args[2])
			},
		},
		&cobra.Command{
			Use:   "init",
			Short: "Create an empty login workbook with its header row",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := storage.NewWorkbook(a.logger).Create(a.dataPath, a.sheet, loginColumns); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", a.dataPath)
				return nil
			},
		},
	)
	return cmd
}

func (a *App) reportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Summarize the results of previous runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if _, err := os.Stat(a.resultsDir); errors.Is(err, os.ErrNotExist) {
				fmt.Fprintf(out, "no results in %s\n", a.resultsDir)
				return nil
			}

			reports, err := storage.NewReportStore(a.resultsDir, a.logger)
			if err != nil {
				return err
			}
			results, err := reports.LoadResults()
			if err != nil {
				return err
			}

			counts := map[entities.Status]int{}
			fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("%d results in %s", len(results), a.resultsDir)))
			for _, result := range results {
				counts[result.Status]++
				elapsed := time.Duration(result.Stop-result.Start) * time.Millisecond
				fmt.Fprintf(out, "%s %s %s\n", statusLabel(result.Status), result.FullName, dimStyle.Render(elapsed.String()))
				for _, attachment := range result.Attachments {
					fmt.Fprintf(out, "       %s\n", dimStyle.Render(attachment.Name+": "+attachment.Source))
				}
			}
			fmt.Fprintf(out, "\n%d passed, %d failed, %d broken\n",
				counts[entities.StatusPassed], counts[entities.StatusFailed], counts[entities.StatusBroken])
			return nil
		},
	}
}

func parseCell(rowArg string, colArg string) (int, int, error) {
	row, err := strconv.Atoi(rowArg)
	if err != nil {
		return 0, 0, fmt.Errorf("row must be a number, got %q", rowArg)
	}
	col, err := strconv.Atoi(colArg)
	if err != nil {
		return 0, 0, fmt.Errorf("column must be a number, got %q", colArg)
	}
	return row, col, nil
}
