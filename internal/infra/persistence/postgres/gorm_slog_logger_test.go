package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"todoapi/config"
	deliverycontext "todoapi/internal/delivery/context"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestGormSlogLogger_Trace(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	l := newGormSlogLogger(base, &config.Config{})
	sqlFn := func() (string, int64) { return `SELECT 1`, 1 }

	// Not-found errors are expected control flow and stay quiet.
	l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String())

	// Fast successful queries are below the warn level.
	l.Trace(context.Background(), time.Now(), sqlFn, nil)
	assert.Empty(t, buf.String())

	l.Trace(context.Background(), time.Now(), sqlFn, assert.AnError)
	assert.Contains(t, buf.String(), "GORM query failed")

	buf.Reset()
	l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)
	assert.Contains(t, buf.String(), "GORM slow query")

	buf.Reset()
	l.LogMode(logger.Silent).Trace(context.Background(), time.Now(), sqlFn, assert.AnError)
	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	var baseBuf, reqBuf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&baseBuf, nil))
	reqLogger := slog.New(slog.NewTextHandler(&reqBuf, nil)).With(slog.String("request_id", "req-1"))

	l := newGormSlogLogger(base, &config.Config{})
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

	l.Trace(ctx, time.Now(), func() (string, int64) { return `SELECT 1`, 0 }, assert.AnError)

	assert.Empty(t, baseBuf.String())
	assert.Contains(t, reqBuf.String(), "request_id=req-1")
}

func TestGormSlogLogger_ParamsFilterDropsValues(t *testing.T) {
	l := newGormSlogLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)), &config.Config{})

	sql, vars := l.ParamsFilter(context.Background(), `INSERT INTO "identity_tokens" ("token") VALUES ($1)`, "secret-token")

	assert.Equal(t, `INSERT INTO "identity_tokens" ("token") VALUES ($1)`, sql)
	assert.Empty(t, vars)
}

func TestGormSlogLogger_InfoFollowsLevel(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))

	newGormSlogLogger(base, &config.Config{}).Info(context.Background(), "migrated %d tables", 3)
	assert.Empty(t, buf.String())

	debugCfg := &config.Config{}
	debugCfg.Env.Debug = true
	newGormSlogLogger(base, debugCfg).Info(context.Background(), "migrated %d tables", 3)
	assert.Contains(t, buf.String(), "migrated 3 tables")
}
