package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  []string
	}{
		{"single value", "/home/me/docs", []string{"/home/me/docs"}},
		{"comma separated", "tmp,log", []string{"tmp", "log"}},
		{"whitespace trimmed", " tmp , .log ,bak ", []string{"tmp", ".log", "bak"}},
		{"empty items dropped", "tmp,,log,", []string{"tmp", "log"}},
		{"empty value", "", []string{}},
		{"only separators", " , ,", []string{}},
		{"quotes are literal", `"a,b"`, []string{`"a`, `b"`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitList(tt.value))
		})
	}
}
