package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestLogrusLoggerLevels(t *testing.T) {
	tests := []struct {
		name        string
		verbose     bool
		log         func(l Logger)
		wantOutput  bool
		wantContain []string
	}{
		{
			name:       "debug hidden by default",
			log:        func(l Logger) { l.Debug("discovering skills") },
			wantOutput: false,
		},
		{
			name:        "debug shown when verbose",
			verbose:     true,
			log:         func(l Logger) { l.Debug("discovering skills", Field{Key: "root", Value: "skills"}) },
			wantOutput:  true,
			wantContain: []string{"discovering skills", "root=skills"},
		},
		{
			name:        "warn always shown",
			log:         func(l Logger) { l.Warn("link probe failed", Field{Key: "url", Value: "x"}) },
			wantOutput:  true,
			wantContain: []string{"level=warning", "link probe failed"},
		},
		{
			name:        "error carries error field",
			log:         func(l Logger) { l.Error("read failed", errors.New("boom")) },
			wantOutput:  true,
			wantContain: []string{"level=error", "error=boom"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(New(&buf, tt.verbose))

			out := buf.String()
			if (out != "") != tt.wantOutput {
				t.Fatalf("output = %q, want output: %v", out, tt.wantOutput)
			}
			for _, s := range tt.wantContain {
				if !strings.Contains(out, s) {
					t.Errorf("output %q does not contain %q", out, s)
				}
			}
		})
	}
}

func TestNoOpLogger(t *testing.T) {
	var l Logger = NoOpLogger{}
	l.Debug("x")
	l.Info("x")
	l.Warn("x")
	l.Error("x", errors.New("y"))
}
