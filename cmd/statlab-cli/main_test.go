package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitStatlabApp(t *testing.T) {
	app := initStatlabApp()
	names := []string{}
	for _, c := range app.Commands {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"serve", "describe", "anscombe", "generate", "shape"}, names)
}
