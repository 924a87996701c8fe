// file: internals/configs/config_test.go
package configs

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gormLogger "gorm.io/gorm/logger"
)

func TestGetEnvInt(t *testing.T) {
	t.Setenv("X_ANGKA", "42")
	assert.Equal(t, 42, GetEnvInt("X_ANGKA", 10))

	t.Setenv("X_ANGKA", "bukan-angka")
	assert.Equal(t, 10, GetEnvInt("X_ANGKA", 10))

	assert.Equal(t, 10, GetEnvInt("X_TIDAK_ADA", 10))
}

// Logger yang dipasang ke gorm.Open harus aman di ketiga cabang Trace.
func TestGormLoggerTrace(t *testing.T) {
	l := NewGormLogger()
	assert.NotNil(t, l.LogMode(gormLogger.Warn))

	ctx := context.Background()
	fc := func() (string, int64) { return "SELECT 1", 1 }

	l.Trace(ctx, time.Now(), fc, nil)                                 // query biasa
	l.Trace(ctx, time.Now().Add(-300*time.Millisecond), fc, nil)      // slow query
	l.Trace(ctx, time.Now(), fc, assert.AnError)                      // query error
}
