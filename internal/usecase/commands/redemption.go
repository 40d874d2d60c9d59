package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"

	"savesphere/internal/domain/deal"
	"savesphere/internal/domain/notification"
	"savesphere/internal/domain/redemption"
	"savesphere/internal/domain/user"
	"savesphere/internal/infra"
	"savesphere/internal/infra/metrics"
	"savesphere/internal/pkg/clock"
	"savesphere/internal/pkg/errs"
)

const (
	codePrefix   = "SS-"
	codeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	codeLength   = 6
)

// RedemptionResult is the outcome of a lifecycle action. PointsDelta is
// zero when the action was an idempotent repeat.
type RedemptionResult struct {
	DealID      string
	UserID      string
	State       redemption.State
	Code        string
	PointsDelta int
	TotalPoints int
}

type DealStore interface {
	FindByID(ctx context.Context, id string) (*deal.Deal, error)
	Create(ctx context.Context, d *deal.Deal) error
	Verify(ctx context.Context, dealID, userID string) (int, bool, error)
	Flag(ctx context.Context, dealID, userID string) (int, bool, error)
	EnsureRedemptionCode(ctx context.Context, dealID string, mint func() string) (string, error)
}

type RedemptionStore interface {
	Mutate(ctx context.Context, dealID, userID string, dealType deal.Type, fn func(*redemption.Redemption) error) (*redemption.Redemption, error)
}

type UserStore interface {
	FindByID(ctx context.Context, id string) (*user.User, error)
	Mutate(ctx context.Context, id string, fn func(*user.User) error) (*user.User, error)
}

type NotificationStore interface {
	Create(ctx context.Context, n *notification.Notification) error
}

type RedemptionCommands interface {
	ShowCode(ctx context.Context, dealID, userID string) (*RedemptionResult, error)
	Redeem(ctx context.Context, dealID, userID string) (*RedemptionResult, error)
	UploadReceipt(ctx context.Context, dealID, userID string) (*RedemptionResult, error)
}

type redemptionCommandsImpl struct {
	deals         DealStore
	redemptions   RedemptionStore
	users         UserStore
	notifications NotificationStore
	clock         clock.Clock
	metrics       *metrics.CatalogMetrics
	logger        *slog.Logger
	mintCode      func() string
}

func NewRedemptionCommands(
	deals DealStore,
	redemptions RedemptionStore,
	users UserStore,
	notifications NotificationStore,
	clk clock.Clock,
	m *metrics.CatalogMetrics,
	logger *slog.Logger,
) RedemptionCommands {
	return &redemptionCommandsImpl{
		deals:         deals,
		redemptions:   redemptions,
		users:         users,
		notifications: notifications,
		clock:         clk,
		metrics:       m,
		logger:        logger,
		mintCode:      newCodeMinter(),
	}
}

func newCodeMinter() func() string {
	gen, err := nanoid.CustomASCII(codeAlphabet, codeLength)
	if err != nil {
		panic(err) // static alphabet, cannot fail
	}
	return func() string { return codePrefix + gen() }
}

// ShowCode binds the deal's shared redemption code to the viewer's record.
// The code is minted once per deal so every shopper presents the same one.
func (c *redemptionCommandsImpl) ShowCode(ctx context.Context, dealID, userID string) (*RedemptionResult, error) {
	d, err := c.findDeal(ctx, dealID)
	if err != nil {
		return nil, err
	}
	if d.DealType() != deal.TypeInStore {
		return nil, errs.ErrWrongDealType
	}

	code, err := c.deals.EnsureRedemptionCode(ctx, dealID, c.mintCode)
	if err != nil {
		return nil, errs.Wrap(err, "ensure redemption code")
	}

	now := c.clock.Now()
	r, err := c.redemptions.Mutate(ctx, dealID, userID, d.DealType(), func(r *redemption.Redemption) error {
		return r.ShowCode(code, now)
	})
	if err != nil {
		if errors.Is(err, redemption.ErrInvalidTransition) {
			c.logNoOp("show_code", dealID, userID, r.State())
			return c.result(ctx, r, 0)
		}
		return nil, errs.Wrap(err, "show code")
	}

	c.metrics.RecordRedemption(d.DealType().String(), "show_code")
	return c.result(ctx, r, 0)
}

// Redeem consumes the deal and credits the channel's fixed reward.
// Repeats from a settled state return the current position with no points.
func (c *redemptionCommandsImpl) Redeem(ctx context.Context, dealID, userID string) (*RedemptionResult, error) {
	d, err := c.findDeal(ctx, dealID)
	if err != nil {
		return nil, err
	}

	now := c.clock.Now()
	var delta int
	r, err := c.redemptions.Mutate(ctx, dealID, userID, d.DealType(), func(r *redemption.Redemption) error {
		var txErr error
		delta, txErr = r.Redeem(now)
		return txErr
	})
	if err != nil {
		if errors.Is(err, redemption.ErrInvalidTransition) {
			c.logNoOp("redeem", dealID, userID, r.State())
			return c.result(ctx, r, 0)
		}
		return nil, errs.Wrap(err, "redeem")
	}

	c.metrics.RecordRedemption(d.DealType().String(), "redeem")
	if delta > 0 {
		if err := c.award(ctx, userID, delta, redeemReason(d.DealType()), d); err != nil {
			return nil, err
		}
	}
	return c.result(ctx, r, delta)
}

// UploadReceipt closes the in-store path with the receipt bonus.
func (c *redemptionCommandsImpl) UploadReceipt(ctx context.Context, dealID, userID string) (*RedemptionResult, error) {
	d, err := c.findDeal(ctx, dealID)
	if err != nil {
		return nil, err
	}
	if d.DealType() != deal.TypeInStore {
		return nil, errs.ErrWrongDealType
	}

	now := c.clock.Now()
	var delta int
	r, err := c.redemptions.Mutate(ctx, dealID, userID, d.DealType(), func(r *redemption.Redemption) error {
		var txErr error
		delta, txErr = r.UploadReceipt(now)
		return txErr
	})
	if err != nil {
		if errors.Is(err, redemption.ErrInvalidTransition) {
			c.logNoOp("upload_receipt", dealID, userID, r.State())
			return c.result(ctx, r, 0)
		}
		return nil, errs.Wrap(err, "upload receipt")
	}

	c.metrics.RecordRedemption(d.DealType().String(), "upload_receipt")
	if delta > 0 {
		if err := c.award(ctx, userID, delta, "upload_receipt", d); err != nil {
			return nil, err
		}
	}
	return c.result(ctx, r, delta)
}

func (c *redemptionCommandsImpl) findDeal(ctx context.Context, dealID string) (*deal.Deal, error) {
	d, err := c.deals.FindByID(ctx, dealID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrDealNotFound
		}
		return nil, errs.Wrap(err, "find deal")
	}
	return d, nil
}

func (c *redemptionCommandsImpl) award(ctx context.Context, userID string, points int, reason string, d *deal.Deal) error {
	_, err := c.users.Mutate(ctx, userID, func(u *user.User) error {
		u.AwardPoints(points)
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrUserNotFound
		}
		return errs.Wrap(err, "award points")
	}
	c.metrics.RecordPointsAwarded(reason, points)

	n, err := notification.New(
		uuid.New().String(), userID, notification.KindPointsEarned,
		"Points Earned",
		fmt.Sprintf("You earned %d points for redeeming %s!", points, d.Title()),
		c.clock.Now(), d.ID(),
	)
	if err != nil {
		return errs.Wrap(err, "build notification")
	}
	if err := c.notifications.Create(ctx, n); err != nil {
		return errs.Wrap(err, "create notification")
	}
	return nil
}

func (c *redemptionCommandsImpl) result(ctx context.Context, r *redemption.Redemption, delta int) (*RedemptionResult, error) {
	u, err := c.users.FindByID(ctx, r.UserID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, errs.Wrap(err, "find user")
	}
	return &RedemptionResult{
		DealID:      r.DealID(),
		UserID:      r.UserID(),
		State:       r.State(),
		Code:        r.Code(),
		PointsDelta: delta,
		TotalPoints: u.Points(),
	}, nil
}

func (c *redemptionCommandsImpl) logNoOp(action, dealID, userID string, state redemption.State) {
	c.logger.Warn("ignoring redemption action from settled state",
		"action", action, "deal_id", dealID, "user_id", userID, "state", state.String())
}

func redeemReason(t deal.Type) string {
	if t == deal.TypeInStore {
		return "redeem_in_store"
	}
	return "redeem_online"
}
