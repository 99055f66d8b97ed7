package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunPassesEmbeddedTemplatesToCLI(t *testing.T) {
	original := executeCLI
	defer func() { executeCLI = original }()

	called := false
	executeCLI = func(version string, gotDashboard, gotIndex []byte) error {
		called = true
		assert.Equal(t, strings.TrimSpace(versionFile), version)
		assert.Equal(t, dashboardTemplate, gotDashboard)
		assert.Equal(t, indexTemplate, gotIndex)
		return nil
	}

	require.NoError(t, run())
	assert.True(t, called)
}

func TestRunPropagatesExecuteError(t *testing.T) {
	original := executeCLI
	defer func() { executeCLI = original }()

	executeCLI = func(version string, dashboard, index []byte) error {
		return errors.New("boom")
	}

	err := run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}
