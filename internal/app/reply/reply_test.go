package reply

import (
	"io"

	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"

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
