package steamworks

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// AppId identifies a Steam application.
type AppId uint32

// SteamId is the 64-bit identifier of a Steam account.
type SteamId uint64

// GameId is the 64-bit identifier of a game, encoding app id and mod data.
type GameId uint64

// Universe describes which Steam universe an account belongs to.
type Universe int32

const (
	UniverseInvalid  Universe = 0
	UniversePublic   Universe = 1
	UniverseBeta     Universe = 2
	UniverseInternal Universe = 3
	UniverseDev      Universe = 4
)

// AccountType describes the kind of account a SteamId refers to.
type AccountType int32

const (
	AccountTypeInvalid        AccountType = 0
	AccountTypeIndividual     AccountType = 1
	AccountTypeMultiseat      AccountType = 2
	AccountTypeGameServer     AccountType = 3
	AccountTypeAnonGameServer AccountType = 4
	AccountTypePending        AccountType = 5
	AccountTypeContentServer  AccountType = 6
	AccountTypeClan           AccountType = 7
	AccountTypeChat           AccountType = 8
	AccountTypeConsoleUser    AccountType = 9
	AccountTypeAnonUser       AccountType = 10
)

// Raw returns the packed 64-bit representation.
func (id SteamId) Raw() uint64 { return uint64(id) }

// AccountId returns the low 32 bits identifying the account within its
// universe.
func (id SteamId) AccountId() uint32 { return uint32(id & 0xFFFFFFFF) }

// Instance returns the 20-bit instance field.
func (id SteamId) Instance() uint32 { return uint32((id >> 32) & 0xFFFFF) }

// AccountType returns the 4-bit account type field.
func (id SteamId) AccountType() AccountType { return AccountType((id >> 52) & 0xF) }

// Universe returns the 8-bit universe field.
func (id SteamId) Universe() Universe { return Universe(id >> 56) }

// IsValid reports whether the id has a plausible universe and account type.
func (id SteamId) IsValid() bool {
	return id != 0 && id.Universe() != UniverseInvalid && id.AccountType() != AccountTypeInvalid
}

// Steam2 renders the id in the legacy STEAM_X:Y:Z textual form.
func (id SteamId) Steam2() string {
	acct := id.AccountId()
	return fmt.Sprintf("STEAM_%d:%d:%d", id.Universe(), acct&1, acct>>1)
}

// Steam3 renders the id in the [U:1:xxxxxx] textual form.
func (id SteamId) Steam3() string {
	return fmt.Sprintf("[U:%d:%d]", id.Universe(), id.AccountId())
}

func (id SteamId) String() string { return strconv.FormatUint(uint64(id), 10) }

// AppId extracts the application id from a GameId.
func (g GameId) AppId() AppId { return AppId(g & 0xFFFFFF) }

// Raw returns the packed 64-bit representation.
func (g GameId) Raw() uint64 { return uint64(g) }

func (g GameId) String() string { return strconv.FormatUint(uint64(g), 10) }

// The ID types serialize as plain integers so they can round-trip through
// config files and tooling output.

func (id SteamId) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatUint(uint64(id), 10)), nil
}

func (id *SteamId) UnmarshalJSON(data []byte) error {
	v, err := strconv.ParseUint(string(data), 10, 64)
	if err != nil {
		return err
	}
	*id = SteamId(v)
	return nil
}

func (id SteamId) MarshalYAML() (any, error) { return uint64(id), nil }

func (id *SteamId) UnmarshalYAML(node *yaml.Node) error {
	var v uint64
	if err := node.Decode(&v); err != nil {
		return err
	}
	*id = SteamId(v)
	return nil
}

func (g GameId) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatUint(uint64(g), 10)), nil
}

func (g *GameId) UnmarshalJSON(data []byte) error {
	v, err := strconv.ParseUint(string(data), 10, 64)
	if err != nil {
		return err
	}
	*g = GameId(v)
	return nil
}

func (g GameId) MarshalYAML() (any, error) { return uint64(g), nil }

func (g *GameId) UnmarshalYAML(node *yaml.Node) error {
	var v uint64
	if err := node.Decode(&v); err != nil {
		return err
	}
	*g = GameId(v)
	return nil
}
