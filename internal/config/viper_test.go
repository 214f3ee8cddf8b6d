package config

import (
	"testing"

	"github.com/samvdst/camtconvert/internal/camtwriter"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPlaceholdersOverrides(t *testing.T) {
	data := []byte("recipient_bic: ABCDEF12\nservicer_name: Test Bank\n")

	placeholders, err := LoadPlaceholders(data)
	require.NoError(t, err)

	assert.Equal(t, "ABCDEF12", placeholders.RecipientBIC)
	assert.Equal(t, "Test Bank", placeholders.ServicerName)

	defaults := camtwriter.DefaultPlaceholders()
	assert.Equal(t, defaults.ServicerBIC, placeholders.ServicerBIC)
	assert.Equal(t, defaults.ServicerOtherID, placeholders.ServicerOtherID)
	assert.Equal(t, defaults.AdditionalInfo, placeholders.AdditionalInfo)
}

func TestLoadPlaceholdersEmptyFile(t *testing.T) {
	placeholders, err := LoadPlaceholders(nil)
	require.NoError(t, err)
	assert.Equal(t, camtwriter.DefaultPlaceholders(), placeholders)
}

func TestLoadPlaceholdersEmptyValuesKeepDefaults(t *testing.T) {
	placeholders, err := LoadPlaceholders([]byte("servicer_name: \"\"\n"))
	require.NoError(t, err)
	assert.Equal(t, camtwriter.DefaultPlaceholders().ServicerName, placeholders.ServicerName)
}

func TestLoadPlaceholdersInvalidYAML(t *testing.T) {
	_, err := LoadPlaceholders([]byte(": not yaml ["))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "placeholders")
}

func TestValidateConfig(t *testing.T) {
	valid := &Config{}
	valid.Log.Level = "debug"
	valid.Log.Format = "json"
	assert.NoError(t, validateConfig(valid))

	badLevel := &Config{}
	badLevel.Log.Level = "verbose"
	badLevel.Log.Format = "text"
	assert.Error(t, validateConfig(badLevel))

	badFormat := &Config{}
	badFormat.Log.Level = "info"
	badFormat.Log.Format = "xml"
	assert.Error(t, validateConfig(badFormat))
}
