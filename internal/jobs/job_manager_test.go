package jobs_test

import (
	"testing"

	"clinicmeals/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobManager_StartAndStop(t *testing.T) {
	manager := jobs.NewJobManager(new(MockDispatcher), "@every 1h", 10, discardLogger())

	require.NoError(t, manager.StartAll())
	manager.StopAll()
}

func TestJobManager_StartFailsOnBadSchedule(t *testing.T) {
	manager := jobs.NewJobManager(new(MockDispatcher), "whenever", 10, discardLogger())

	err := manager.StartAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "notification relay")
}
