package postgres

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"bloodlink/config"
	deliverycontext "bloodlink/internal/delivery/context"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestLikeEscaper(t *testing.T) {
	tests := []struct {
		prefix string
		want   string
	}{
		{prefix: "notification:42:", want: "notification:42:"},
		{prefix: "blood_request:", want: `blood\_request:`},
		{prefix: `100%\`, want: `100\%\\`},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, likeEscaper.Replace(tt.prefix), tt.prefix)
	}
}

func TestConstraintClassification(t *testing.T) {
	assert.True(t, isInvalidJSONValue(errors.New(`ERROR: invalid input syntax for type json (SQLSTATE 22P02)`)))
	assert.True(t, isNotNullConstraintViolation(errors.New(`ERROR: null value in column "value" violates not-null constraint (SQLSTATE 23502)`)))
	assert.True(t, isCheckConstraintViolation(gorm.ErrCheckConstraintViolated))

	connErr := errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")
	assert.False(t, isInvalidJSONValue(connErr))
	assert.False(t, isNotNullConstraintViolation(connErr))
	assert.False(t, isCheckConstraintViolation(connErr))
}

func TestNewKVStore_WithoutMigrationNeedsNoLifecycle(t *testing.T) {
	store := NewKVStore(KVStoreParams{Config: &config.Config{}})

	assert.NotNil(t, store)
}

func TestGormSlogLogger_Trace(t *testing.T) {
	sqlFn := func() (string, int64) { return `SELECT * FROM "kv_entries" WHERE key = 'a'`, 1 }

	tests := []struct {
		name    string
		debug   bool
		begin   time.Time
		err     error
		want    string
		wantOut bool
	}{
		{name: "failed query", begin: time.Now(), err: errors.New("syntax error"), want: "GORM query failed", wantOut: true},
		{name: "missing row is expected", begin: time.Now(), err: gorm.ErrRecordNotFound},
		{name: "slow query", begin: time.Now().Add(-time.Second), want: "GORM slow query", wantOut: true},
		{name: "fast query outside debug"},
		{name: "fast query in debug", debug: true, begin: time.Now(), want: "GORM query", wantOut: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug

			begin := tt.begin
			if begin.IsZero() {
				begin = time.Now()
			}

			newGormSlogLogger(base, cfg).Trace(context.Background(), begin, sqlFn, tt.err)

			if !tt.wantOut {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.want)
			assert.Contains(t, buf.String(), "kv_entries")
		})
	}
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	var base, scoped bytes.Buffer
	l := newGormSlogLogger(slog.New(slog.NewTextHandler(&base, nil)), &config.Config{})

	ctx := deliverycontext.WithLogger(context.Background(),
		slog.New(slog.NewTextHandler(&scoped, nil)).With(slog.String("request_id", "req-9")))

	l.Warn(ctx, "slow migration on %s", "kv_entries")

	assert.Empty(t, base.String())
	assert.Contains(t, scoped.String(), "request_id=req-9")
	assert.Contains(t, scoped.String(), "slow migration on kv_entries")
}

func TestGormSlogLogger_LogModeSilences(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)), &config.Config{}).LogMode(logger.Silent)

	l.Error(context.Background(), "boom")
	l.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 0 }, errors.New("boom"))

	assert.Empty(t, buf.String())
}
