package bombelog_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forcedentropy/enigma/internal/bombelog"
)

func TestNew_DefaultsEmptyLevelToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger, err := bombelog.New(&buf, "")
	require.NoError(t, err)

	logger.Info().Msg("hello")
	assert.Contains(t, buf.String(), "hello")
}

func TestNew_RejectsUnknownLevel(t *testing.T) {
	var buf bytes.Buffer
	_, err := bombelog.New(&buf, "nonsense")
	assert.Error(t, err)
}

func TestNew_DebugMessagesSuppressedAtInfoLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := bombelog.New(&buf, "info")
	require.NoError(t, err)

	logger.Debug().Msg("should not appear")
	assert.Empty(t, buf.String())
}
