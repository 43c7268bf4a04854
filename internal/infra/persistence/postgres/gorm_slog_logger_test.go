package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"identity/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedLogger(debug bool) (*gormSlogLogger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	base := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return newGormSlogLogger(base, cfg), buf
}

func sqlFn(sql string) func() (string, int64) {
	return func() (string, int64) { return sql, 1 }
}

func TestGormSlogLogger_LevelFromConfig(t *testing.T) {
	l, _ := newBufferedLogger(false)
	assert.Equal(t, logger.Warn, l.level)

	l, _ = newBufferedLogger(true)
	assert.Equal(t, logger.Info, l.level)
}

func TestGormSlogLogger_TraceError(t *testing.T) {
	l, buf := newBufferedLogger(false)

	l.Trace(context.Background(), time.Now(), sqlFn("SELECT 1"), errors.New("boom"))
	assert.Contains(t, buf.String(), "GORM query failed")
	assert.Contains(t, buf.String(), "boom")
}

func TestGormSlogLogger_IgnoresRecordNotFound(t *testing.T) {
	l, buf := newBufferedLogger(false)

	l.Trace(context.Background(), time.Now(), sqlFn("SELECT 1"), gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_SlowQuery(t *testing.T) {
	l, buf := newBufferedLogger(false)

	l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn("SELECT 1"), nil)
	assert.Contains(t, buf.String(), "GORM slow query")
}

func TestGormSlogLogger_QueriesOnlyInDebug(t *testing.T) {
	l, buf := newBufferedLogger(false)
	l.Trace(context.Background(), time.Now(), sqlFn("SELECT 1"), nil)
	assert.Empty(t, buf.String())

	l, buf = newBufferedLogger(true)
	l.Trace(context.Background(), time.Now(), sqlFn("SELECT 1"), nil)
	assert.Contains(t, buf.String(), "GORM query")
}

func TestGormSlogLogger_Silent(t *testing.T) {
	l, buf := newBufferedLogger(true)
	silent := l.LogMode(logger.Silent)

	silent.Trace(context.Background(), time.Now(), sqlFn("SELECT 1"), errors.New("boom"))
	silent.Info(context.Background(), "hello %s", "world")
	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_ParamsFilterDropsValues(t *testing.T) {
	l, _ := newBufferedLogger(true)

	sql, params := l.ParamsFilter(context.Background(), "INSERT INTO users VALUES ($1)", "secret-hash")
	assert.Equal(t, "INSERT INTO users VALUES ($1)", sql)
	assert.Empty(t, params)
}
