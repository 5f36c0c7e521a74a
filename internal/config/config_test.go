package config

import (
	"bytes"
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func TestCreateLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := CreateLogger(&buf, false)
	logger.Debug("hidden", log.Int("column", 1))
	assert.Equal(t, "", buf.String())

	logger = CreateLogger(&buf, true)
	logger.Debug("shown", log.Int("column", 1))
	assert.True(t, strings.Contains(buf.String(), "shown"))
	assert.True(t, strings.Contains(buf.String(), "column"))
}
