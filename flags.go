package steamworks

import "strings"

// FriendFlags filter which relationships are considered by the friends
// interface. Values match EFriendFlags in the native headers.
type FriendFlags uint16

const (
	FriendFlagNone                 FriendFlags = 0x0000
	FriendFlagBlocked              FriendFlags = 0x0001
	FriendFlagFriendshipRequested  FriendFlags = 0x0002
	FriendFlagImmediate            FriendFlags = 0x0004
	FriendFlagClanMember           FriendFlags = 0x0008
	FriendFlagOnGameServer         FriendFlags = 0x0010
	FriendFlagRequestingFriendship FriendFlags = 0x0080
	FriendFlagRequestingInfo       FriendFlags = 0x0100
	FriendFlagIgnored              FriendFlags = 0x0200
	FriendFlagIgnoredFriend        FriendFlags = 0x0400
	FriendFlagChatMember           FriendFlags = 0x1000
	FriendFlagAll                  FriendFlags = 0xFFFF
)

// Has reports whether every bit of other is set in f.
func (f FriendFlags) Has(other FriendFlags) bool { return f&other == other }

// Set returns f with every bit of other set.
func (f FriendFlags) Set(other FriendFlags) FriendFlags { return f | other }

var friendFlagNames = []struct {
	flag FriendFlags
	name string
}{
	{FriendFlagBlocked, "Blocked"},
	{FriendFlagFriendshipRequested, "FriendshipRequested"},
	{FriendFlagImmediate, "Immediate"},
	{FriendFlagClanMember, "ClanMember"},
	{FriendFlagOnGameServer, "OnGameServer"},
	{FriendFlagRequestingFriendship, "RequestingFriendship"},
	{FriendFlagRequestingInfo, "RequestingInfo"},
	{FriendFlagIgnored, "Ignored"},
	{FriendFlagIgnoredFriend, "IgnoredFriend"},
	{FriendFlagChatMember, "ChatMember"},
}

func (f FriendFlags) String() string {
	if f == FriendFlagNone {
		return "None"
	}
	if f == FriendFlagAll {
		return "All"
	}
	var parts []string
	for _, e := range friendFlagNames {
		if f.Has(e.flag) {
			parts = append(parts, e.name)
		}
	}
	return strings.Join(parts, "|")
}

// PersonaState describes a user's online status.
type PersonaState int32

const (
	PersonaStateOffline        PersonaState = 0
	PersonaStateOnline         PersonaState = 1
	PersonaStateBusy           PersonaState = 2
	PersonaStateAway           PersonaState = 3
	PersonaStateSnooze         PersonaState = 4
	PersonaStateLookingToTrade PersonaState = 5
	PersonaStateLookingToPlay  PersonaState = 6
)

func (s PersonaState) String() string {
	switch s {
	case PersonaStateOffline:
		return "Offline"
	case PersonaStateOnline:
		return "Online"
	case PersonaStateBusy:
		return "Busy"
	case PersonaStateAway:
		return "Away"
	case PersonaStateSnooze:
		return "Snooze"
	case PersonaStateLookingToTrade:
		return "LookingToTrade"
	case PersonaStateLookingToPlay:
		return "LookingToPlay"
	default:
		return "Unknown"
	}
}

// PersonaChange bits describe what changed in a PersonaStateChange callback.
type PersonaChange int32

const (
	PersonaChangeName         PersonaChange = 0x0001
	PersonaChangeStatus       PersonaChange = 0x0002
	PersonaChangeComeOnline   PersonaChange = 0x0004
	PersonaChangeGoneOffline  PersonaChange = 0x0008
	PersonaChangeGamePlayed   PersonaChange = 0x0010
	PersonaChangeGameServer   PersonaChange = 0x0020
	PersonaChangeAvatar       PersonaChange = 0x0040
	PersonaChangeJoinedSource PersonaChange = 0x0080
	PersonaChangeLeftSource   PersonaChange = 0x0100
	PersonaChangeRelationship PersonaChange = 0x0200
	PersonaChangeNameFirstSet PersonaChange = 0x0400
	PersonaChangeFacebookInfo PersonaChange = 0x0800
	PersonaChangeNickname     PersonaChange = 0x1000
	PersonaChangeSteamLevel   PersonaChange = 0x2000
	PersonaChangeRichPresence PersonaChange = 0x4000
)

// Has reports whether every bit of other is set in c.
func (c PersonaChange) Has(other PersonaChange) bool { return c&other == other }

// OverlayToStoreFlag controls store page behavior when opening the overlay.
type OverlayToStoreFlag int32

const (
	OverlayToStoreNone             OverlayToStoreFlag = 0
	OverlayToStoreAddToCart        OverlayToStoreFlag = 1
	OverlayToStoreAddToCartAndShow OverlayToStoreFlag = 2
)

// NotificationPosition selects the corner used for overlay popups.
type NotificationPosition int32

const (
	NotificationPositionTopLeft     NotificationPosition = 0
	NotificationPositionTopRight    NotificationPosition = 1
	NotificationPositionBottomLeft  NotificationPosition = 2
	NotificationPositionBottomRight NotificationPosition = 3
)
