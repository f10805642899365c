package steamworks

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// 76561197960287930 is a well-known public individual account.
const knownSteamID SteamId = 76561197960287930

func TestSteamIdFields(t *testing.T) {
	id := knownSteamID

	assert.Equal(t, uint32(22202), id.AccountId())
	assert.Equal(t, uint32(1), id.Instance())
	assert.Equal(t, AccountTypeIndividual, id.AccountType())
	assert.Equal(t, UniversePublic, id.Universe())
	assert.True(t, id.IsValid())
}

func TestSteamIdRenderings(t *testing.T) {
	id := knownSteamID

	assert.Equal(t, "STEAM_1:0:11101", id.Steam2())
	assert.Equal(t, "[U:1:22202]", id.Steam3())
	assert.Equal(t, "76561197960287930", id.String())
}

func TestSteamIdInvalid(t *testing.T) {
	assert.False(t, SteamId(0).IsValid())
	// Valid account id but invalid universe.
	assert.False(t, SteamId(22202).IsValid())
}

func TestGameIdAppId(t *testing.T) {
	// App id lives in the low 24 bits.
	g := GameId(uint64(1)<<32 | 480)
	assert.Equal(t, AppId(480), g.AppId())
}

func TestSteamIdJSON(t *testing.T) {
	data, err := json.Marshal(knownSteamID)
	require.NoError(t, err)
	assert.Equal(t, "76561197960287930", string(data))

	var id SteamId
	require.NoError(t, json.Unmarshal(data, &id))
	assert.Equal(t, knownSteamID, id)
}

func TestSteamIdYAML(t *testing.T) {
	data, err := yaml.Marshal(knownSteamID)
	require.NoError(t, err)
	assert.Equal(t, "76561197960287930\n", string(data))

	var id SteamId
	require.NoError(t, yaml.Unmarshal(data, &id))
	assert.Equal(t, knownSteamID, id)
}

func TestGameIdJSON(t *testing.T) {
	var g GameId
	require.NoError(t, json.Unmarshal([]byte("480"), &g))
	assert.Equal(t, AppId(480), g.AppId())
}
