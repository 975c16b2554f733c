package glsink

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeErrors replaces glGetError with a queue of flags. Pushing onto the
// returned slice raises a flag.
func fakeErrors(t *testing.T, flags ...uint32) *[]uint32 {
	t.Helper()
	queue := append([]uint32(nil), flags...)
	prev := getError
	getError = func() uint32 {
		if len(queue) == 0 {
			return gl.NO_ERROR
		}
		e := queue[0]
		queue = queue[1:]
		return e
	}
	t.Cleanup(func() { getError = prev })
	return &queue
}

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestErrorString(t *testing.T) {
	assert.Equal(t, "GL_ERROR: GL_OUT_OF_MEMORY", Error(0x505).Error())
	assert.Equal(t, "GL_ERROR: GL_CONTEXT_LOST", Error(0x507).Error())
	assert.Equal(t, "GL_ERROR UNKNOWN: 4660", Error(0x1234).Error())
}

func TestCheckErrorDrains(t *testing.T) {
	queue := fakeErrors(t, 0x502, 0x505)

	err := CheckError()
	require.Error(t, err)
	var glerr Error
	require.ErrorAs(t, err, &glerr)
	assert.Equal(t, Error(0x502), glerr)
	assert.Empty(t, *queue)

	assert.NoError(t, CheckError())
}

func TestCheckCallIgnoresEarlierErrors(t *testing.T) {
	logs := captureLogs(t)
	fakeErrors(t, 0x501)

	ran := false
	err := checkCall("upload view", func() { ran = true })
	assert.NoError(t, err)
	assert.True(t, ran)
	assert.Contains(t, logs.String(), "GL_INVALID_VALUE")
	assert.Contains(t, logs.String(), "upload view")
}

func TestCheckCallReportsOwnError(t *testing.T) {
	captureLogs(t)
	queue := fakeErrors(t)

	err := checkCall("load projection", func() {
		*queue = append(*queue, 0x502)
	})
	assert.Equal(t, Error(0x502), err)
	assert.NoError(t, CheckError())
}
