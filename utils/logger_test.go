package utils

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogLevels(t *testing.T) {
	var buf bytes.Buffer
	oldOutput, oldLevel := LogOutput, GlobalLogLevel
	defer func() {
		LogOutput, GlobalLogLevel = oldOutput, oldLevel
	}()
	LogOutput = &buf
	GlobalLogLevel = LogLevelError | LogLevelInfo

	Debugf("ECB", "hidden %d", 1)
	if buf.Len() != 0 {
		t.Fatalf("debug line written at info level: %q", buf.String())
	}

	Logf("ECB", "blocks = %d", 4)
	line := buf.String()
	if !strings.Contains(line, "[ECB] INFO blocks = 4") {
		t.Errorf("Logf() wrote %q", line)
	}
	if !strings.HasSuffix(line, "\n") {
		t.Errorf("Logf() line not newline terminated: %q", line)
	}

	buf.Reset()
	GlobalLogLevel |= LogLevelDebug
	if !IsLogLevelDebug() {
		t.Fatal("IsLogLevelDebug() = false")
	}
	Debugf("ECB", "shown")
	if !strings.Contains(buf.String(), "[ECB] DEBUG shown") {
		t.Errorf("Debugf() wrote %q", buf.String())
	}
}
