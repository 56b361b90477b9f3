package configs

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()

	tmpfile, err := os.CreateTemp("", "test_config_*.yml")
	require.NoError(t, err)
	t.Cleanup(func() { os.Remove(tmpfile.Name()) })

	_, err = tmpfile.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())
	return tmpfile.Name()
}

func TestLoadConfig_ValidConfig(t *testing.T) {
	validConfig := `log:
  level: debug
  error_file: ./osgflockingreport.log
elasticsearch:
  addresses:
    - https://gracc.opensciencegrid.org/q
  username: reader
  timeout: 60
report:
  index_pattern: gracc.osg.raw-*
  probe_list: condor:flock.opensciencegrid.org, condor:login.osgconnect.net
  template_file: ./template_flocking.html
email:
  smtp_host: smtp.example.org
  smtp_port: 587
  from: reports@example.org
  to:
    - ops@example.org
  test_to:
    - dev@example.org
archive:
  root_dir: ./data
`

	cfg, err := LoadConfig(writeTempConfig(t, validConfig))
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "./osgflockingreport.log", cfg.Log.ErrorFile)
	assert.Equal(t, []string{"https://gracc.opensciencegrid.org/q"}, cfg.Elasticsearch.Addresses)
	assert.Equal(t, "reader", cfg.Elasticsearch.Username)
	assert.Equal(t, 60, cfg.Elasticsearch.Timeout)
	assert.Equal(t, 3, cfg.Elasticsearch.MaxRetries)
	assert.Equal(t, "gracc.osg.raw-*", cfg.Report.IndexPattern)
	assert.Equal(t, "condor:flock.opensciencegrid.org, condor:login.osgconnect.net", cfg.Report.ProbeList)
	assert.Equal(t, "./template_flocking.html", cfg.Report.TemplateFile)
	assert.False(t, cfg.Report.SortRecords)
	assert.Equal(t, 587, cfg.Email.SMTPPort)
	assert.Equal(t, []string{"ops@example.org"}, cfg.Email.To)
	assert.Equal(t, []string{"dev@example.org"}, cfg.Email.TestTo)
	assert.Equal(t, "./data", cfg.Archive.RootDir)
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("FLOCKING_ELASTICSEARCH_PASSWORD", "s3cret")

	minimalConfig := `elasticsearch:
  addresses:
    - http://localhost:9200
report:
  index_pattern: gracc.osg.raw-*
`

	cfg, err := LoadConfig(writeTempConfig(t, minimalConfig))
	require.NoError(t, err)
	assert.Equal(t, "s3cret", cfg.Elasticsearch.Password)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 120, cfg.Elasticsearch.Timeout)
	assert.Equal(t, "", cfg.Report.ProbeList)
}

func TestLoadConfig_MissingIndexPattern(t *testing.T) {
	invalidConfig := `elasticsearch:
  addresses:
    - http://localhost:9200
report:
  probe_list: a,b
`

	cfg, err := LoadConfig(writeTempConfig(t, invalidConfig))
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "report.index_pattern (required)")
}

func TestLoadConfig_MissingAddresses(t *testing.T) {
	invalidConfig := `report:
  index_pattern: gracc.osg.raw-*
`

	cfg, err := LoadConfig(writeTempConfig(t, invalidConfig))
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "elasticsearch.addresses (required)")
}

func TestLoadConfig_InvalidEmailRecipient(t *testing.T) {
	invalidConfig := `elasticsearch:
  addresses:
    - http://localhost:9200
report:
  index_pattern: gracc.osg.raw-*
email:
  to:
    - not-an-address
`

	cfg, err := LoadConfig(writeTempConfig(t, invalidConfig))
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Contains(t, err.Error(), "email.to[0] (email)")
}

func TestLoadConfig_InvalidPortRange(t *testing.T) {
	invalidConfig := `elasticsearch:
  addresses:
    - http://localhost:9200
report:
  index_pattern: gracc.osg.raw-*
server:
  port: 70000
`

	cfg, err := LoadConfig(writeTempConfig(t, invalidConfig))
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.port (max=65535)")
}

func TestLoadConfig_LogFormat(t *testing.T) {
	base := `elasticsearch:
  addresses:
    - http://localhost:9200
report:
  index_pattern: gracc.osg.raw-*
log:
  level: info
`

	cfg, err := LoadConfig(writeTempConfig(t, base+"  format: console\n"))
	require.NoError(t, err)
	assert.Equal(t, "console", cfg.Log.Format)

	cfg, err = LoadConfig(writeTempConfig(t, base+"  format: xml\n"))
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log.format (oneof=json console)")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	cfg, err := LoadConfig("./does-not-exist.yml")
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}
