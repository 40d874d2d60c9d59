package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"savesphere/internal/domain/deal"
	"savesphere/internal/domain/notification"
	"savesphere/internal/domain/redemption"
	"savesphere/internal/domain/user"
	"savesphere/internal/infra"
	"savesphere/internal/infra/metrics"
	"savesphere/internal/pkg/clock"
	"savesphere/internal/pkg/errs"
)

// PostDealInput carries the submission form. Fields beyond the common set
// are required per deal type: promo code and platform for online deals,
// an affiliate link and platform for affiliate deals, and a physical
// address for in-store deals.
type PostDealInput struct {
	Title          string
	Description    string
	Discount       string
	Store          string
	Category       string
	DealType       deal.Type
	PromoCode      string
	AffiliateURL   string
	Platform       string
	Address        string
	Lat            float64
	Lng            float64
	ExpiresAt      time.Time
	Image          string
	UserCategories []deal.UserCategory
}

type PostDealResult struct {
	DealID      string
	PointsDelta int
	TotalPoints int
}

type EngagementResult struct {
	DealID      string
	Count       int
	Counted     bool
	PointsDelta int
	TotalPoints int
}

type DealCommands interface {
	Post(ctx context.Context, userID string, in PostDealInput) (*PostDealResult, error)
	Verify(ctx context.Context, dealID, userID string) (*EngagementResult, error)
	Flag(ctx context.Context, dealID, userID string) (*EngagementResult, error)
}

type dealCommandsImpl struct {
	deals         DealStore
	users         UserStore
	notifications NotificationStore
	clock         clock.Clock
	metrics       *metrics.CatalogMetrics
	logger        *slog.Logger
}

func NewDealCommands(
	deals DealStore,
	users UserStore,
	notifications NotificationStore,
	clk clock.Clock,
	m *metrics.CatalogMetrics,
	logger *slog.Logger,
) DealCommands {
	return &dealCommandsImpl{
		deals:         deals,
		users:         users,
		notifications: notifications,
		clock:         clk,
		metrics:       m,
		logger:        logger,
	}
}

// Post publishes a new deal and credits the posting reward.
func (c *dealCommandsImpl) Post(ctx context.Context, userID string, in PostDealInput) (*PostDealResult, error) {
	if err := validateTypeFields(in); err != nil {
		return nil, err
	}

	poster, err := c.users.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, errs.Wrap(err, "find poster")
	}

	now := c.clock.Now()
	d, err := deal.New(uuid.New().String(), deal.Draft{
		Title:        in.Title,
		Description:  in.Description,
		Discount:     in.Discount,
		Store:        in.Store,
		Category:     in.Category,
		DealType:     in.DealType,
		PromoCode:    in.PromoCode,
		AffiliateURL: in.AffiliateURL,
		Platform:     in.Platform,
		Location: deal.Location{
			Address:     in.Address,
			Coordinates: deal.Coordinates{Lat: in.Lat, Lng: in.Lng},
		},
		ExpiresAt:      in.ExpiresAt,
		Image:          in.Image,
		UserCategories: in.UserCategories,
	}, poster.Snapshot(), now)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidationFailure)
	}

	if err := c.deals.Create(ctx, d); err != nil {
		return nil, errs.Wrap(err, "create deal")
	}
	c.metrics.RecordDealPosted(d.DealType().String())

	updated, err := c.users.Mutate(ctx, userID, func(u *user.User) error {
		u.AwardPoints(redemption.PointsPostDeal)
		u.RecordDealPosted()
		return nil
	})
	if err != nil {
		return nil, errs.Wrap(err, "credit poster")
	}
	c.metrics.RecordPointsAwarded("post_deal", redemption.PointsPostDeal)

	if err := c.notify(ctx, userID, notification.KindPointsEarned,
		"Points Earned",
		fmt.Sprintf("You earned %d points for posting a new deal!", redemption.PointsPostDeal),
		d.ID()); err != nil {
		return nil, err
	}

	c.logger.Info("deal posted",
		"deal_id", d.ID(), "deal_type", d.DealType().String(), "user_id", userID)

	return &PostDealResult{
		DealID:      d.ID(),
		PointsDelta: redemption.PointsPostDeal,
		TotalPoints: updated.Points(),
	}, nil
}

// Verify counts a community confirmation, at most once per user per deal.
// Only a counting verification pays the reward and notifies the poster.
func (c *dealCommandsImpl) Verify(ctx context.Context, dealID, userID string) (*EngagementResult, error) {
	d, err := c.deals.FindByID(ctx, dealID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrDealNotFound
		}
		return nil, errs.Wrap(err, "find deal")
	}

	count, counted, err := c.deals.Verify(ctx, dealID, userID)
	if err != nil {
		return nil, errs.Wrap(err, "verify deal")
	}

	res := &EngagementResult{DealID: dealID, Count: count, Counted: counted}
	if !counted {
		u, err := c.users.FindByID(ctx, userID)
		if err == nil {
			res.TotalPoints = u.Points()
		}
		return res, nil
	}

	updated, err := c.users.Mutate(ctx, userID, func(u *user.User) error {
		u.AwardPoints(redemption.PointsVerifyDeal)
		u.RecordDealVerified()
		return nil
	})
	if err != nil {
		return nil, errs.Wrap(err, "credit verifier")
	}
	c.metrics.RecordPointsAwarded("verify_deal", redemption.PointsVerifyDeal)
	res.PointsDelta = redemption.PointsVerifyDeal
	res.TotalPoints = updated.Points()

	if poster := d.PostedBy().UserID; poster != "" && poster != userID {
		if err := c.notify(ctx, poster, notification.KindDealVerified,
			"Deal Verified",
			fmt.Sprintf("Someone verified your %s deal!", d.Store()),
			dealID); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// Flag reports a stale or bogus deal. No reward; one count per user.
func (c *dealCommandsImpl) Flag(ctx context.Context, dealID, userID string) (*EngagementResult, error) {
	count, counted, err := c.deals.Flag(ctx, dealID, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrDealNotFound
		}
		return nil, errs.Wrap(err, "flag deal")
	}
	if counted {
		c.logger.Info("deal flagged", "deal_id", dealID, "user_id", userID, "flagged", count)
	}
	return &EngagementResult{DealID: dealID, Count: count, Counted: counted}, nil
}

func (c *dealCommandsImpl) notify(ctx context.Context, userID string, kind notification.Kind, title, message, dealID string) error {
	n, err := notification.New(uuid.New().String(), userID, kind, title, message, c.clock.Now(), dealID)
	if err != nil {
		return errs.Wrap(err, "build notification")
	}
	if err := c.notifications.Create(ctx, n); err != nil {
		return errs.Wrap(err, "create notification")
	}
	return nil
}

func validateTypeFields(in PostDealInput) error {
	switch in.DealType {
	case deal.TypeOnline:
		if in.PromoCode == "" {
			return errs.Mark(errs.New("promo code is required for online deals"), errs.ErrValidationFailure)
		}
		if in.Platform == "" {
			return errs.Mark(errs.New("platform is required for online deals"), errs.ErrValidationFailure)
		}
	case deal.TypeAffiliate:
		if in.AffiliateURL == "" {
			return errs.Mark(errs.New("affiliate link is required for affiliate deals"), errs.ErrValidationFailure)
		}
		if in.Platform == "" {
			return errs.Mark(errs.New("platform is required for affiliate deals"), errs.ErrValidationFailure)
		}
	case deal.TypeInStore:
		if in.Address == "" {
			return errs.Mark(errs.New("address is required for in-store deals"), errs.ErrValidationFailure)
		}
	}
	return nil
}
