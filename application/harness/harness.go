// Package harness runs test cases inside a browser session it owns, capturing
// a screenshot into the report whenever a case fails.
package harness

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ui_automation/domain/entities"
	"ui_automation/domain/interfaces"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// FailureAttachmentName names the screenshot attached to failed cases
const FailureAttachmentName = "failed_test"

// Configuration section and keys read before every case
const (
	SectionBasicInfo = "basic info"
	KeyBrowser       = "browser"
	KeyAppURL        = "app_url"
)

// Case describes one test case run
type Case struct {
	Name       string
	FullName   string
	Parameters []entities.Parameter
}

// CaseFunc is the body of a case; it receives the session the harness opened
type CaseFunc func(ctx context.Context, session interfaces.Session) error

type Harness struct {
	config   interfaces.ConfigSource
	sessions interfaces.SessionFactory
	reports  interfaces.ReportStore
	logger   *logrus.Logger
	now      func() time.Time
}

// NewHarness - creates a harness reading browser settings from cfg
func NewHarness(cfg interfaces.ConfigSource, sessions interfaces.SessionFactory, reports interfaces.ReportStore, logger *logrus.Logger) *Harness {
	return &Harness{
		config:   cfg,
		sessions: sessions,
		reports:  reports,
		logger:   logger,
		now:      time.Now,
	}
}

// Run - opens a session, runs fn and closes the session on every path.
// A failing or panicking fn gets a screenshot attached before its error is
// returned or its panic resumes.
func (h *Harness) Run(ctx context.Context, c Case, fn CaseFunc) (result *entities.TestResult, err error) {
	fullName := c.FullName
	if fullName == "" {
		fullName = c.Name
	}
	result = &entities.TestResult{
		UUID:       uuid.NewString(),
		HistoryID:  uuid.NewSHA1(uuid.NameSpaceURL, []byte(fullName)).String(),
		Name:       c.Name,
		FullName:   fullName,
		Stage:      "finished",
		Parameters: c.Parameters,
		Start:      h.now().UnixMilli(),
	}
	log := h.logger.WithField("case", c.Name)
	log.Info("Case started")

	defer func() {
		result.Stop = h.now().UnixMilli()
		if saveErr := h.reports.SaveResult(result); saveErr != nil {
			log.Warnf("Failed to save result: %v", saveErr)
		}
		log.WithField("status", result.Status).Info("Case finished")
	}()

	session, err := h.setUp(ctx)
	if err != nil {
		h.mark(result, entities.StatusBroken, err)
		return result, err
	}

	defer func() {
		if closeErr := session.Close(); closeErr != nil {
			log.Warnf("Failed to close session: %v", closeErr)
			if err == nil {
				err = fmt.Errorf("teardown: %w", closeErr)
				h.mark(result, entities.StatusBroken, err)
			}
		}
	}()

	err = h.call(ctx, session, fn, result, log)
	if err != nil {
		h.mark(result, entities.StatusFailed, err)
		return result, err
	}

	result.Status = entities.StatusPassed
	return result, nil
}

// setUp - opens the configured browser, maximizes it and loads the application URL
func (h *Harness) setUp(ctx context.Context) (interfaces.Session, error) {
	name, err := h.config.Read(SectionBasicInfo, KeyBrowser)
	if err != nil {
		return nil, err
	}
	browser, err := entities.ParseBrowser(name)
	if err != nil {
		return nil, err
	}
	url, err := h.config.Read(SectionBasicInfo, KeyAppURL)
	if err != nil {
		return nil, err
	}

	session, err := h.sessions.Open(ctx, browser)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s session: %w", browser, err)
	}

	if err := session.MaximizeWindow(ctx); err != nil {
		return nil, errors.Join(fmt.Errorf("failed to maximize window: %w", err), session.Close())
	}
	if err := session.Navigate(ctx, url); err != nil {
		return nil, errors.Join(fmt.Errorf("failed to open %s: %w", url, err), session.Close())
	}
	return session, nil
}

// call - runs fn, capturing a screenshot if it fails or panics
func (h *Harness) call(ctx context.Context, session interfaces.Session, fn CaseFunc, result *entities.TestResult, log *logrus.Entry) (err error) {
	defer func() {
		if p := recover(); p != nil {
			h.mark(result, entities.StatusFailed, fmt.Errorf("panic: %v", p))
			h.captureFailure(ctx, session, result, log)
			panic(p)
		}
	}()

	if err = fn(ctx, session); err != nil {
		log.Errorf("Case failed: %v", err)
		h.captureFailure(ctx, session, result, log)
	}
	return err
}

// captureFailure - attaches a screenshot of the current page to result
func (h *Harness) captureFailure(ctx context.Context, session interfaces.Session, result *entities.TestResult, log *logrus.Entry) {
	png, err := session.Screenshot(ctx)
	if err != nil {
		log.Warnf("Failed to take screenshot: %v", err)
		return
	}

	attachment, err := h.reports.SaveAttachment(FailureAttachmentName, "image/png", png)
	if err != nil {
		log.Warnf("Failed to save screenshot: %v", err)
		return
	}
	result.Attachments = append(result.Attachments, attachment)
	log.Infof("Screenshot attached: %s", attachment.Source)
}

func (h *Harness) mark(result *entities.TestResult, status entities.Status, err error) {
	result.Status = status
	result.StatusDetails.Message = err.Error()
}
