package fileutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()

	file := filepath.Join(dir, "exists.xml")
	require.NoError(t, os.WriteFile(file, []byte("data"), 0644))

	assert.True(t, FileExists(file))
	assert.False(t, FileExists(filepath.Join(dir, "missing.xml")))
	assert.False(t, FileExists(dir), "directories are not files")
}

func TestReadWriteRoundtrip(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "nested", "out.xml")

	require.NoError(t, WriteFile(file, []byte("<Document/>"), 0644))

	data, err := ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, []byte("<Document/>"), data)
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.xml"))
	assert.Error(t, err)
}

func TestDeriveOutputPath(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Plain file", "statement.xml", "statement_08.xml"},
		{"With directory", filepath.Join("data", "june.xml"), filepath.Join("data", "june_08.xml")},
		{"No extension", "statement", "statement_08.xml"},
		{"Other extension", "statement.camt", "statement_08.xml"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, DeriveOutputPath(tc.input))
		})
	}
}
