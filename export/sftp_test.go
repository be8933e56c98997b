package export

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUploadCSV_MissingCredentials(t *testing.T) {
	err := UploadCSV(context.Background(), SFTPConfig{}, "out.csv", testLogger())
	assert.ErrorContains(t, err, "missing SFTP_HOST")
}

func TestSFTPConfigFromEnv_Defaults(t *testing.T) {
	t.Setenv("SFTP_HOST", "drop.example.com")
	t.Setenv("SFTP_PORT", "")
	t.Setenv("SFTP_USER", "exports")
	t.Setenv("SFTP_PASS", "secret")
	t.Setenv("SFTP_REMOTE_DIR", "")

	cfg := SFTPConfigFromEnv()
	assert.Equal(t, "drop.example.com", cfg.Host)
	assert.Equal(t, 22, cfg.Port)
	assert.Equal(t, "exports", cfg.User)
}
