package notification_test

import (
	"testing"
	"time"

	"mozdelivery/internal/core/domain/model/kernel"
	"mozdelivery/internal/core/domain/model/notification"
	"mozdelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNotification(t *testing.T) {
	at := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

	t.Run("should create notification", func(t *testing.T) {
		n, err := notification.NewNotification(
			kernel.NewUUID(), kernel.Customer, "Order accepted", "Ready in 20 min", notification.Success, at,
		)

		require.NoError(t, err)
		require.NoError(t, n.Validate())
		assert.Equal(t, kernel.Customer, n.TargetRole())
		assert.Equal(t, "Order accepted", n.Title())
		assert.Equal(t, "Ready in 20 min", n.Message())
		assert.Equal(t, notification.Success, n.Severity())
		assert.Equal(t, at, n.CreatedAt())
	})

	t.Run("should join validation errors", func(t *testing.T) {
		n, err := notification.NewNotification(kernel.UUID{}, kernel.UnknownRole, " ", "", 0, time.Time{})

		require.Error(t, err)
		assert.Nil(t, n)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "title")
		assert.Contains(t, err.Error(), "message")
		assert.Contains(t, err.Error(), "severity")
		assert.Contains(t, err.Error(), "role")
	})
}

func TestNotification_IsVisibleTo(t *testing.T) {
	n, err := notification.NewNotification(
		kernel.NewUUID(), kernel.Driver, "New delivery", "Order ready", notification.Warning, time.Now(),
	)
	require.NoError(t, err)

	assert.True(t, n.IsVisibleTo(kernel.Driver))
	assert.True(t, n.IsVisibleTo(kernel.Owner))
	assert.False(t, n.IsVisibleTo(kernel.Customer))
	assert.False(t, n.IsVisibleTo(kernel.Manager))
}

func TestSeverity(t *testing.T) {
	severity, err := notification.SeverityFromString("warning")
	require.NoError(t, err)
	assert.Equal(t, notification.Warning, severity)
	assert.Equal(t, "WARNING", severity.String())

	_, err = notification.SeverityFromString("ERROR")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, "UNKNOWN", notification.UnknownSeverity.String())
}
