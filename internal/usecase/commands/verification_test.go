//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"savesphere/internal/infra/metrics"
	"savesphere/internal/pkg/errs"
	"savesphere/internal/pkg/task"
	"savesphere/internal/usecase/commands"
)

func newVerificationCommands(delay time.Duration) commands.VerificationCommands {
	return commands.NewVerificationCommands(
		task.NewRunner(delay),
		metrics.NewCatalogMetrics(prometheus.NewRegistry()),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
}

func TestRunVerification(t *testing.T) {
	ctx := context.Background()

	t.Run("known kinds verify the subject", func(t *testing.T) {
		cmds := newVerificationCommands(time.Millisecond)

		for _, kind := range []string{
			commands.VerifyLocation, commands.VerifyImage, commands.VerifyPromoCode,
		} {
			res, err := cmds.Run(ctx, kind, "some subject", "u1")
			require.NoError(t, err)
			assert.Equal(t, kind, res.Kind)
			assert.Equal(t, "some subject", res.Subject)
			assert.True(t, res.Verified)
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		cmds := newVerificationCommands(time.Millisecond)

		_, err := cmds.Run(ctx, "dna-sample", "x", "u1")
		assert.ErrorIs(t, err, errs.ErrUnknownVerification)
	})

	t.Run("duplicate request while pending", func(t *testing.T) {
		cmds := newVerificationCommands(time.Minute)
		runCtx, cancel := context.WithCancel(context.Background())
		defer cancel()

		go func() {
			_, _ = cmds.Run(runCtx, commands.VerifyImage, "photo", "u1")
		}()
		time.Sleep(50 * time.Millisecond)

		_, err := cmds.Run(ctx, commands.VerifyImage, "photo", "u1")
		assert.ErrorIs(t, err, errs.ErrVerificationPending)
	})
}

func TestFetchAffiliateDetails(t *testing.T) {
	ctx := context.Background()
	cmds := newVerificationCommands(time.Millisecond)

	details, err := cmds.FetchAffiliateDetails(ctx, "https://partner.example/offer", "u1")
	require.NoError(t, err)
	assert.Equal(t, "40% off on Zomato orders", details.Title)
	assert.Equal(t, "40%", details.Discount)
	assert.Equal(t, "Zomato", details.Platform)
}
