package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jsonschema-bean-generator/internal/gen"
)

type outcome struct {
	res *Result
	err error
}

func TestWatch_RegeneratesOnChange(t *testing.T) {
	opts := setup(t)
	sink := gen.NewMemorySink()
	opts.Sink = sink

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	outcomes := make(chan outcome, 8)
	done := make(chan error, 1)

	go func() {
		done <- Watch(ctx, opts, 100*time.Millisecond, func(res *Result, err error) {
			outcomes <- outcome{res: res, err: err}
		})
	}()

	first := waitOutcome(t, outcomes)
	require.NoError(t, first.err)

	content, ok := sink.File("com/example/model/Person.java")
	require.True(t, ok)
	assert.NotContains(t, content, "nickname")

	writeFile(t, opts.Schemas[0], `{"type": "object", "properties": {"nickname": {"type": "string"}}}`)

	second := waitOutcome(t, outcomes)
	require.NoError(t, second.err)

	content, ok = sink.File("com/example/model/Person.java")
	require.True(t, ok)
	assert.Contains(t, content, "private String nickname;")

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}

func TestWatch_IgnoresOtherFiles(t *testing.T) {
	opts := setup(t)
	opts.Sink = gen.NewMemorySink()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	outcomes := make(chan outcome, 8)

	go func() {
		_ = Watch(ctx, opts, 20*time.Millisecond, func(res *Result, err error) {
			outcomes <- outcome{res: res, err: err}
		})
	}()

	waitOutcome(t, outcomes)

	require.NoError(t, os.WriteFile(filepath.Join(opts.BaseDirectory, "notes.txt"), []byte("x"), 0o644))

	select {
	case <-outcomes:
		t.Fatal("unexpected run")
	case <-time.After(300 * time.Millisecond):
	}
}

func waitOutcome(t *testing.T, outcomes <-chan outcome) outcome {
	t.Helper()

	select {
	case o := <-outcomes:
		return o
	case <-time.After(5 * time.Second):
		t.Fatal("no run reported")
		return outcome{}
	}
}

func TestIsWithin(t *testing.T) {
	assert.True(t, isWithin("/a/b", "/a/b"))
	assert.True(t, isWithin("/a/b/c.json", "/a/b"))
	assert.False(t, isWithin("/a/bc", "/a/b"))
	assert.False(t, isWithin("/a", "/a/b"))
	assert.False(t, isWithin("/a/b", ""))
}
