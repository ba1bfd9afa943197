package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"genftype/internal/common"
)

func TestSetupLevels(t *testing.T) {
	tests := []struct {
		level string
		want  logrus.Level
	}{
		{"trace", logrus.TraceLevel},
		{"DEBUG", logrus.DebugLevel},
		{"info", logrus.InfoLevel},
		{"warn", logrus.WarnLevel},
		{"", logrus.WarnLevel},
		{"error", logrus.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Setup(&buf, tt.level))
			assert.Equal(t, tt.want, logrus.GetLevel())
		})
	}
}

func TestSetupOutput(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Setup(&buf, "warn"))

	logrus.Info("hidden")
	logrus.WithField("position", 14).Error("collision")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `level=error msg=collision position=14`)
	assert.NotContains(t, buf.String(), "time=")
}

func TestSetupOff(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Setup(&buf, "off"))

	logrus.Error("discarded")
	assert.Zero(t, buf.Len())
}

func TestSetupUnknownLevel(t *testing.T) {
	var buf bytes.Buffer
	err := Setup(&buf, "loud")
	assert.True(t, errors.Is(err, common.ErrUsage))
	assert.True(t, common.IsUsageError(err))
}
