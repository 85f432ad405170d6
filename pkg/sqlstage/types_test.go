package sqlstage

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExecutionMode(t *testing.T) {
	tests := []struct {
		input string
		want  ExecutionMode
	}{
		{"docker", ModeContainerized},
		{"DOCKER", ModeContainerized},
		{" container ", ModeContainerized},
		{"containerized", ModeContainerized},
		{"pure", ModeDirect},
		{"direct", ModeDirect},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseExecutionMode(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseExecutionMode_Invalid(t *testing.T) {
	for _, input := range []string{"", "podman", "mysql"} {
		mode, err := ParseExecutionMode(input)
		assert.Equal(t, ModeInvalid, mode)
		assert.True(t, errors.Is(err, ErrInvalidConfig), "input %q: expected ErrInvalidConfig, got %v", input, err)
	}
}

func TestExecutionMode_StringRoundTrip(t *testing.T) {
	for _, mode := range []ExecutionMode{ModeDirect, ModeContainerized} {
		parsed, err := ParseExecutionMode(mode.String())
		require.NoError(t, err)
		assert.Equal(t, mode, parsed)
	}
	assert.Equal(t, "Unknown(42)", ExecutionMode(42).String())
}

func TestFormatTag(t *testing.T) {
	assert.Equal(t, "pure", FormatPure.String())
	assert.Equal(t, "quoted", FormatQuoted.String())
	assert.Equal(t, "invalid", FormatInvalid.String())
	assert.True(t, FormatPure.IsValid())
	assert.True(t, FormatQuoted.IsValid())
	assert.False(t, FormatInvalid.IsValid())
	assert.False(t, FormatTag(9).IsValid())
}

func TestConnectionConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  ConnectionConfig
		wantErr bool
	}{
		{"direct", ConnectionConfig{Mode: ModeDirect, Database: "shop"}, false},
		{"containerized", ConnectionConfig{Mode: ModeContainerized, Database: "shop", Container: "db1"}, false},
		{"containerized without container", ConnectionConfig{Mode: ModeContainerized, Database: "shop"}, true},
		{"invalid mode", ConnectionConfig{Mode: ModeInvalid, Database: "shop"}, true},
		{"missing database", ConnectionConfig{Mode: ModeDirect}, true},
		{"direct ignores container", ConnectionConfig{Mode: ModeDirect, Database: "shop", Container: "db1"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, ErrInvalidConfig), "expected ErrInvalidConfig, got %v", err)
		})
	}
}

func TestConnectionConfig_ValidateJoinsErrors(t *testing.T) {
	cfg := ConnectionConfig{Mode: ModeContainerized}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "container name is required")
	assert.Contains(t, err.Error(), "database name is required")
}

func TestConnectionConfig_WithDefaults(t *testing.T) {
	cfg := ConnectionConfig{Mode: ModeDirect, Database: "shop"}.WithDefaults()
	assert.Equal(t, DefaultUsername, cfg.Username)
	assert.Equal(t, DefaultClient, cfg.Client)
	assert.Equal(t, DefaultRuntime, cfg.Runtime)

	custom := ConnectionConfig{Username: "app", Client: "mariadb", Runtime: "podman"}.WithDefaults()
	assert.Equal(t, "app", custom.Username)
	assert.Equal(t, "mariadb", custom.Client)
	assert.Equal(t, "podman", custom.Runtime)
}

func TestCommand_ArgvAndRedacted(t *testing.T) {
	cmd := Command{Name: "docker", Args: []string{"exec", "db1", "mysql", "-uroot", "-psecret", "shop"}}

	assert.Equal(t, []string{"docker", "exec", "db1", "mysql", "-uroot", "-psecret", "shop"}, cmd.Argv())
	assert.Equal(t, "docker exec db1 mysql -uroot -p**** shop", cmd.Redacted())
	assert.Equal(t, "-psecret", cmd.Args[4], "Redacted must not modify the command")
}

func TestCommand_RedactedMasksOnlyCredential(t *testing.T) {
	pure := Command{Name: "mysql", Args: []string{"-uroot", "-psecret", "-prod"}}
	assert.Equal(t, "mysql -uroot -p**** -prod", pure.Redacted())

	docker := Command{Name: "docker", Args: []string{"exec", "-i", "-pdb", "mysql", "-uroot", "-psecret", "-prod"}}
	assert.Equal(t, "docker exec -i -pdb mysql -uroot -p**** -prod", docker.Redacted())

	empty := Command{Name: "mysql", Args: []string{"-uroot", "-p", "shop"}}
	assert.Equal(t, "mysql -uroot -p shop", empty.Redacted())
}

func TestCleanConfig_Validate(t *testing.T) {
	ok := CleanConfig{InputDir: "./csv", OutputDir: "./data"}
	assert.NoError(t, ok.Validate())

	bad := CleanConfig{}
	err := bad.Validate()
	assert.True(t, errors.Is(err, ErrInvalidConfig))
	assert.Contains(t, err.Error(), "InputDir")
	assert.Contains(t, err.Error(), "OutputDir")
}

func TestLoadConfig_Validate(t *testing.T) {
	ok := LoadConfig{Dir: "./data", Connection: ConnectionConfig{Mode: ModeDirect, Database: "shop"}}
	assert.NoError(t, ok.Validate())

	bad := LoadConfig{Connection: ConnectionConfig{Mode: ModeInvalid, Database: "shop"}}
	err := bad.Validate()
	assert.True(t, errors.Is(err, ErrInvalidConfig))
	assert.Contains(t, err.Error(), "Dir is required")
	assert.Contains(t, err.Error(), "execution mode is invalid")
}

func TestDumpFile_NormalizedName(t *testing.T) {
	assert.Equal(t, "users.sql", DumpFile{Name: "users.csv", Stem: "users"}.NormalizedName())
	assert.Equal(t, "orders.sql", DumpFile{Name: "orders.sql", Stem: "orders"}.NormalizedName())
}
