package gesture

import (
	"io"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"gathering/internal/app/navigation"
	"gathering/internal/app/registry"
	"gathering/internal/config"
	"gathering/internal/config/logger"
)

func newTestLogger(ctrl *gomock.Controller) *logger.MockLogger {
	mockLog := logger.NewMockLogger(ctrl)
	noopLogger := zerolog.New(io.Discard)
	mockLog.EXPECT().Debug().DoAndReturn(noopLogger.Debug).AnyTimes()
	mockLog.EXPECT().Info().DoAndReturn(noopLogger.Info).AnyTimes()
	mockLog.EXPECT().Warn().DoAndReturn(noopLogger.Warn).AnyTimes()
	mockLog.EXPECT().Error().DoAndReturn(noopLogger.Error).AnyTimes()
	mockLog.EXPECT().WithComponent(gomock.Any()).Return(mockLog).AnyTimes()

	return mockLog
}

func newTestNavigator(t *testing.T, ctrl *gomock.Controller) navigation.Navigator {
	t.Helper()

	reg, err := registry.New(config.DefaultSections())
	require.NoError(t, err)

	return navigation.NewNavigator(reg, newTestLogger(ctrl))
}

// fakeClock is a manually advanced clock
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 11, 22, 13, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}
