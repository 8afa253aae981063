package logger_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/medverify/pkg/logger"
)

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	assert.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestRecordID(t *testing.T) {
	attr := logger.RecordID("17")
	assert.Equal(t, "record_id", attr.Key)
	assert.Equal(t, "17", attr.Value.String())

	assert.True(t, logger.RecordID("").Equal(slog.Attr{}))
}

func TestScoringAttrs(t *testing.T) {
	assert.Equal(t, int64(80), logger.Confidence(80).Value.Int64())
	assert.Equal(t, []string{"Invalid phone format"}, logger.Issues([]string{"Invalid phone format"}).Value.Any())
	assert.Equal(t, "flagged", logger.Outcome("flagged").Value.String())
	assert.Equal(t, "fields", logger.Fields([]string{"phone"}).Key)
	assert.Equal(t, []string{"phone"}, logger.Fields([]string{"phone"}).Value.Any())
	assert.Equal(t, time.Millisecond, logger.Duration(time.Millisecond).Value.Duration())
	assert.Equal(t, "scoring", logger.Component("scoring").Value.String())
	assert.Equal(t, "/tmp/t.yaml", logger.Path("/tmp/t.yaml").Value.String())
}
