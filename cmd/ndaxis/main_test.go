package main

import (
	"testing"

	"github.com/born-ml/ndaxis/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseShape(t *testing.T) {
	shape, err := parseShape("2, 3,4")
	require.NoError(t, err)
	assert.Equal(t, tensor.Shape{2, 3, 4}, shape)

	_, err = parseShape("2,x")
	assert.Error(t, err)

	_, err = parseShape("2,-1")
	assert.Error(t, err)
}

func TestRunSum(t *testing.T) {
	assert.NoError(t, runSum([]string{"-shape", "3,4", "-axis", "1"}))
	assert.Error(t, runSum([]string{"-shape", "3,4", "-axis", "2"}))
}

func TestRunDFT(t *testing.T) {
	assert.NoError(t, runDFT([]string{"-n", "4", "-impulse"}))
	assert.NoError(t, runDFT([]string{"-signal", "1,2,3", "-n", "4", "-inverse"}))
	assert.Error(t, runDFT([]string{"-impulse"}))
	assert.Error(t, runDFT([]string{"-signal", "1,a"}))
}

func TestRun(t *testing.T) {
	assert.Equal(t, 0, run(nil))
	assert.Equal(t, 0, run([]string{"version"}))
	assert.Equal(t, 0, run([]string{"info"}))
	assert.Equal(t, 1, run([]string{"sum", "-shape", "2,x"}))
	assert.Equal(t, 2, run([]string{"bogus"}))
}
