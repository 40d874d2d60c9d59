package commands

import (
	"context"
	"errors"
	"log/slog"

	"savesphere/internal/infra/metrics"
	"savesphere/internal/pkg/errs"
	"savesphere/internal/pkg/task"
)

// Verification kinds accepted by Run. Each mirrors one of the submission
// form's simulated checks.
const (
	VerifyLocation  = "location"
	VerifyImage     = "image"
	VerifyPromoCode = "promo-code"
)

// VerificationResult reports a completed simulated check. The checks
// always pass today; the shape leaves room for real verdicts later.
type VerificationResult struct {
	Kind     string `json:"kind"`
	Subject  string `json:"subject"`
	Verified bool   `json:"verified"`
}

// AffiliateDetails is the auto-filled deal form content for an affiliate
// link. The lookup is simulated and returns a canned listing.
type AffiliateDetails struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Discount    string `json:"discount"`
	Platform    string `json:"platform"`
}

type VerificationCommands interface {
	Run(ctx context.Context, kind, subject, userID string) (*VerificationResult, error)
	FetchAffiliateDetails(ctx context.Context, url, userID string) (*AffiliateDetails, error)
}

type verificationCommandsImpl struct {
	runner  *task.Runner
	metrics *metrics.CatalogMetrics
	logger  *slog.Logger
}

func NewVerificationCommands(runner *task.Runner, m *metrics.CatalogMetrics, logger *slog.Logger) VerificationCommands {
	return &verificationCommandsImpl{runner: runner, metrics: m, logger: logger}
}

// Run schedules the simulated check and waits for its single completion.
// A duplicate request for the same user and kind while one is pending is
// rejected rather than queued.
func (c *verificationCommandsImpl) Run(ctx context.Context, kind, subject, userID string) (*VerificationResult, error) {
	switch kind {
	case VerifyLocation, VerifyImage, VerifyPromoCode:
	default:
		return nil, errs.ErrUnknownVerification
	}

	ch, err := c.runner.Schedule(ctx, userID+"/"+kind, func() (any, error) {
		return &VerificationResult{Kind: kind, Subject: subject, Verified: true}, nil
	})
	if err != nil {
		if errors.Is(err, task.ErrInFlight) {
			return nil, errs.ErrVerificationPending
		}
		return nil, errs.Wrap(err, "schedule verification")
	}

	done := <-ch
	if done.Err != nil {
		c.metrics.RecordVerification(kind, "error")
		return nil, errs.Wrap(done.Err, "verification task")
	}

	result := done.Payload.(*VerificationResult)
	c.metrics.RecordVerification(kind, "verified")
	c.logger.Info("verification completed",
		"kind", kind, "subject", subject, "user_id", userID)
	return result, nil
}

// FetchAffiliateDetails simulates the partner catalog lookup that
// pre-fills the submission form from an affiliate link.
func (c *verificationCommandsImpl) FetchAffiliateDetails(ctx context.Context, url, userID string) (*AffiliateDetails, error) {
	ch, err := c.runner.Schedule(ctx, userID+"/affiliate-fetch", func() (any, error) {
		return &AffiliateDetails{
			Title:       "40% off on Zomato orders",
			Description: "Get 40% off on your first 5 orders with Zomato",
			Discount:    "40%",
			Platform:    "Zomato",
		}, nil
	})
	if err != nil {
		if errors.Is(err, task.ErrInFlight) {
			return nil, errs.ErrVerificationPending
		}
		return nil, errs.Wrap(err, "schedule affiliate fetch")
	}

	done := <-ch
	if done.Err != nil {
		c.metrics.RecordVerification("affiliate-fetch", "error")
		return nil, errs.Wrap(done.Err, "affiliate fetch")
	}

	details := done.Payload.(*AffiliateDetails)
	c.metrics.RecordVerification("affiliate-fetch", "fetched")
	c.logger.Info("affiliate details fetched", "url", url, "user_id", userID)
	return details, nil
}
