//go:build !dev

package trace

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReleaseStubs(t *testing.T) {
	t.Setenv(EnvVar, t.TempDir()+"/trace.out")

	stop := Init()
	defer stop()

	assert.False(t, IsEnabled())

	ctx := context.Background()
	taskCtx, end := Task(ctx, "completion")
	assert.Equal(t, ctx, taskCtx)
	assert.NotPanics(t, end)

	ran := false
	WithRegion(ctx, "region", func() { ran = true })
	assert.True(t, ran)

	assert.NotPanics(t, func() { Region(ctx, "r")() })
}
