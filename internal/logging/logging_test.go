package logging

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfoWritesFormattedMessage(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel("info")
	defer func() { SetOutput(os.Stderr); SetLevel("info") }()

	Info("crawled %d pages", 3)

	assert.Contains(t, buf.String(), "crawled 3 pages")
}

func TestSetLevelFiltersBelowThreshold(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel("warn")
	defer func() { SetOutput(os.Stderr); SetLevel("info") }()

	Info("should not appear")
	Warn("should appear")

	out := buf.String()
	assert.NotContains(t, out, "should not appear")
	assert.Contains(t, out, "should appear")
}
