package log

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()

	buf := &bytes.Buffer{}
	logrus.SetOutput(buf)
	t.Cleanup(func() { logrus.SetOutput(os.Stderr) })
	logrus.SetFormatter(&logrus.TextFormatter{DisableColors: true, DisableTimestamp: true})
	logrus.SetLevel(logrus.DebugLevel)
	L = &logger{entry: logrus.NewEntry(logrus.StandardLogger())}

	return buf
}

func TestWithFields_DevelopmentFilter(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	buf := captureOutput(t)

	L.WithFields(Fields{
		"campaign_id": "camp-1",
		"remote_addr": "127.0.0.1",
	}).Info("mensagem")

	assert.Contains(t, buf.String(), "campaign_id=camp-1")
	assert.NotContains(t, buf.String(), "remote_addr")
}

func TestWithFields_Production(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	buf := captureOutput(t)

	L.WithField("remote_addr", "127.0.0.1").Info("mensagem")

	assert.Contains(t, buf.String(), "remote_addr=127.0.0.1")
}

func TestCorrelationID(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	buf := captureOutput(t)

	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))

	ForContext(ctx).Info("com correlação")
	assert.Contains(t, buf.String(), "correlation_id="+id)
}
