package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/caarlos0/env/v11"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) TestParse_Defaults() {
	cfg, err := parse(env.Options{Environment: map[string]string{
		"DISCORD_TOKEN": "token",
	}})
	s.Require().NoError(err)

	s.Equal("token", cfg.DiscordToken)
	s.Equal("localhost:6379", cfg.RedisAddr)
	s.Equal(0, cfg.RedisDB)
	s.Equal("betabeer", cfg.NATSSubjectPrefix)
	s.Equal("info", cfg.LogLevel)
	s.False(cfg.EventsEnabled())
	s.NoError(cfg.Validate())
}

func (s *ConfigTestSuite) TestParse_Overrides() {
	cfg, err := parse(env.Options{Environment: map[string]string{
		"DISCORD_TOKEN": "token",
		"REDIS_ADDR":    "redis:6379",
		"REDIS_DB":      "2",
		"NATS_URL":      "nats://nats:4222",
		"LOG_LEVEL":     "debug",
		"LOG_FORMAT":    "json",
	}})
	s.Require().NoError(err)

	s.Equal("redis:6379", cfg.RedisAddr)
	s.Equal(2, cfg.RedisDB)
	s.True(cfg.EventsEnabled())

	logger := log.New()
	s.Require().NoError(cfg.ConfigureLogger(logger))
	s.Equal(log.DebugLevel, logger.GetLevel())
	s.IsType(&log.JSONFormatter{}, logger.Formatter)
}

func (s *ConfigTestSuite) TestParse_BadInt() {
	_, err := parse(env.Options{Environment: map[string]string{"REDIS_DB": "two"}})
	s.Error(err)
}

func (s *ConfigTestSuite) TestValidate() {
	testCases := []struct {
		name string
		cfg  Config
	}{
		{name: "missing token", cfg: Config{RedisAddr: "x", LogLevel: "info", LogFormat: "text"}},
		{name: "missing redis", cfg: Config{DiscordToken: "t", LogLevel: "info", LogFormat: "text"}},
		{name: "negative db", cfg: Config{DiscordToken: "t", RedisAddr: "x", RedisDB: -1, LogLevel: "info", LogFormat: "text"}},
		{name: "bad level", cfg: Config{DiscordToken: "t", RedisAddr: "x", LogLevel: "loud", LogFormat: "text"}},
		{name: "bad format", cfg: Config{DiscordToken: "t", RedisAddr: "x", LogLevel: "info", LogFormat: "xml"}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Error(tc.cfg.Validate())
		})
	}
}

func (s *ConfigTestSuite) TestLoad_ReadsEnvFile() {
	dir := s.T().TempDir()
	path := filepath.Join(dir, ".env")
	s.Require().NoError(os.WriteFile(path, []byte("GUILD_ID=guild-from-file\n"), 0o600))
	s.T().Setenv("GUILD_ID", "")
	s.Require().NoError(os.Unsetenv("GUILD_ID"))

	cfg, err := Load(path, filepath.Join(dir, "missing.env"))
	s.Require().NoError(err)
	s.Equal("guild-from-file", cfg.GuildID)
}
