package logging_test

import (
	"bytes"
	"testing"

	"github.com/joacominatel/tablepeek/internal/logging"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New("", &buf)
	require.NoError(t, err)
	require.Equal(t, logrus.WarnLevel, log.GetLevel())

	log.Info("hidden")
	log.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	_, err = logging.New("loud", &buf)
	require.Error(t, err)
}

func TestSession(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New("debug", &buf)
	require.NoError(t, err)

	a := logging.Session(log)
	b := logging.Session(log)
	require.NotEqual(t, a.Data["session"], b.Data["session"])

	a.Debug("hello")
	assert.Contains(t, buf.String(), "session=")
}
