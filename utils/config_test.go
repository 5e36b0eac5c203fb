package utils

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/Fantom-foundation/Statlab/logger"
	"github.com/c2h5oh/datasize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
	"golang.org/x/text/language"
)

func prepareMockCliContext(t *testing.T, set map[string]string) *cli.Context {
	flagSet := flag.NewFlagSet("utils_config_test", 0)
	flagSet.String(PortFlag.Name, PortFlag.Value, "port")
	flagSet.Uint64(RandomSeedFlag.Name, 0, "seed")
	flagSet.Int(MaxSessionsFlag.Name, MaxSessionsFlag.Value, "sessions")
	flagSet.String(MaxInputFlag.Name, MaxInputFlag.Value, "max input")
	flagSet.String(LangFlag.Name, LangFlag.Value, "language")
	flagSet.String(ConfigFileFlag.Name, "", "config file")
	flagSet.Int(SampleSizeFlag.Name, SampleSizeFlag.Value, "sample size")
	flagSet.String(logger.LogLevelFlag.Name, "info", "log level")
	for name, value := range set {
		require.NoError(t, flagSet.Set(name, value))
	}

	ctx := cli.NewContext(cli.NewApp(), flagSet, nil)
	ctx.Command = &cli.Command{Name: "test_command"}
	return ctx
}

func writeConfigFile(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "statlab.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestUtilsConfig_Defaults(t *testing.T) {
	cfg, err := NewConfig(prepareMockCliContext(t, nil))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, uint64(0), cfg.Seed)
	assert.Equal(t, 1024, cfg.MaxSessions)
	assert.Equal(t, 64*datasize.KB, cfg.MaxInput)
	assert.Equal(t, language.English, cfg.Lang)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 150, cfg.SampleSize)
}

func TestUtilsConfig_FileAndFlagPrecedence(t *testing.T) {
	path := writeConfigFile(t, `
port = "9000"
seed = 42
max-sessions = 10
max-input = "1KB"
lang = "pt-BR"
log = "debug"
sample-size = 300
`)
	cfg, err := NewConfig(prepareMockCliContext(t, map[string]string{
		ConfigFileFlag.Name: path,
		PortFlag.Name:       "9100",
		SampleSizeFlag.Name: "50",
	}))
	require.NoError(t, err)

	// explicit flags win over the file
	assert.Equal(t, "9100", cfg.Port)
	assert.Equal(t, 50, cfg.SampleSize)

	// the file wins over defaults
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, 10, cfg.MaxSessions)
	assert.Equal(t, datasize.KB, cfg.MaxInput)
	assert.Equal(t, language.MustParse("pt-BR"), cfg.Lang)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestUtilsConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		set  map[string]string
	}{
		{"port", map[string]string{PortFlag.Name: "http"}},
		{"port range", map[string]string{PortFlag.Name: "70000"}},
		{"sessions", map[string]string{MaxSessionsFlag.Name: "0"}},
		{"sample size", map[string]string{SampleSizeFlag.Name: "1"}},
		{"max input", map[string]string{MaxInputFlag.Name: "lots"}},
		{"language", map[string]string{LangFlag.Name: "not a language!"}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := NewConfig(prepareMockCliContext(t, test.set))
			assert.Error(t, err)
		})
	}
}

func TestUtilsConfig_MissingFile(t *testing.T) {
	_, err := NewConfig(prepareMockCliContext(t, map[string]string{
		ConfigFileFlag.Name: filepath.Join(t.TempDir(), "missing.toml"),
	}))
	assert.Error(t, err)
}

func TestUtilsConfig_MalformedFile(t *testing.T) {
	path := writeConfigFile(t, `port = 9000`) // must be a string
	_, err := NewConfig(prepareMockCliContext(t, map[string]string{ConfigFileFlag.Name: path}))
	assert.Error(t, err)
}
