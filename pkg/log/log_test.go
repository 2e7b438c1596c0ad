package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func captureLogger(t *testing.T) (*bytes.Buffer, Logger) {
	t.Helper()
	buf := &bytes.Buffer{}
	base := logrus.New()
	base.SetOutput(buf)
	base.SetLevel(logrus.DebugLevel)
	base.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})
	return buf, &logger{entry: logrus.NewEntry(base)}
}

func TestWithFields_FiltraEmDesenvolvimento(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	buf, l := captureLogger(t)

	l.WithFields(Fields{"cache_key": "tableData", "remote_addr": "10.0.0.1", "user_email": "ana@example.com"}).Info("ok")

	out := buf.String()
	assert.Contains(t, out, "cache_key=tableData")
	assert.Contains(t, out, "user_email=ana@example.com")
	assert.NotContains(t, out, "remote_addr")
}

func TestWithFields_MantemTudoEmProducao(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	buf, l := captureLogger(t)

	l.WithField("remote_addr", "10.0.0.1").Info("ok")

	assert.Contains(t, buf.String(), "remote_addr=10.0.0.1")
}

func TestCorrelationID(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	buf, l := captureLogger(t)

	ctx, id := WithCorrelationID(context.Background())
	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))

	l.WithContext(ctx).Info("ok")
	assert.Contains(t, buf.String(), "correlation_id="+id)
}

func TestSetup_NivelInvalido(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)

	assert.Equal(t, logrus.WarnLevel, Setup("warn"))
	assert.Equal(t, logrus.InfoLevel, Setup("barulhento"))
}
