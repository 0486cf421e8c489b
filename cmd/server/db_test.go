package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"  yes  \n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
		{"y", true},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		got, err := confirm(strings.NewReader(tt.input), &out, "Drop all tables")
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
		assert.Contains(t, out.String(), "Drop all tables")
	}
}

func TestDBTasksRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range dbCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"init", "drop", "reset", "seed", "reseed", "init-all"} {
		assert.True(t, names[want], "missing db %s", want)
	}
}
