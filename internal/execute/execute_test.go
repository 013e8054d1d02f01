package execute

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandEmpty(t *testing.T) {
	log, hook := test.NewNullLogger()
	require.NoError(t, Command(log, ""))
	assert.Empty(t, hook.AllEntries())
}

func TestCommandRuns(t *testing.T) {
	marker := filepath.Join(t.TempDir(), "ran")
	log, hook := test.NewNullLogger()

	require.NoError(t, Command(log, "touch "+marker))

	assert.Eventually(t, func() bool {
		_, err := os.Stat(marker)
		return err == nil
	}, 5*time.Second, 10*time.Millisecond)

	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, logrus.InfoLevel, hook.LastEntry().Level)
	assert.Contains(t, hook.LastEntry().Message, "touch")
}
