package config

import (
	"io/ioutil"
	"log"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitialize(t *testing.T) {
	tempDir := t.TempDir()
	cfg, err := Initialize(tempDir, log.New(ioutil.Discard, "", 0))
	if err != nil {
		t.Fatal(err)
	}

	// Check that the written config is valid
	loaded, err := Load(filepath.Join(tempDir, ConfigurationName))
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, cfg.Prompt, loaded.Prompt)

	t.Run("Reinitialize", func(t *testing.T) {
		_, err := Initialize(tempDir, log.New(ioutil.Discard, "", 0))
		assert.Nil(t, err)
	})

	t.Run("OpenEventLog", func(t *testing.T) {
		fd, err := cfg.OpenEventLog()
		assert.Nil(t, err)
		fd.Close()
	})

	t.Run("ReadEventLog", func(t *testing.T) {
		fd, err := cfg.ReadEventLog()
		assert.Nil(t, err)
		fd.Close()
	})

	t.Run("HistoryPath", func(t *testing.T) {
		assert.Equal(t, filepath.Join(tempDir, "history"), cfg.HistoryPath())
	})
}
