package sys

// CallbackLayout captures the fields of the dispatch callback structs whose
// packed shape differs between platforms. The native headers pack callback
// structs to 4 bytes on Linux and macOS and to 8 bytes on Windows, which
// moves 8-byte members past padding and grows the sizes the dispatch pump
// verifies call results against.
type CallbackLayout struct {
	// UserStatsReceivedSize is sizeof(UserStatsReceived_t).
	UserStatsReceivedSize int
	// UserStatsReceivedUserOffset is offsetof(UserStatsReceived_t, m_steamIDUser).
	UserStatsReceivedUserOffset int
	// GlobalAchievementPercentagesReadySize is
	// sizeof(GlobalAchievementPercentagesReady_t).
	GlobalAchievementPercentagesReadySize int
}

// LayoutPack4 is the 4-byte packing used on Linux and macOS.
var LayoutPack4 = CallbackLayout{
	UserStatsReceivedSize:                 20,
	UserStatsReceivedUserOffset:           12,
	GlobalAchievementPercentagesReadySize: 12,
}

// LayoutPack8 is the 8-byte packing used on Windows. The CSteamID member of
// UserStatsReceived_t aligns up to the next 8-byte boundary there, and the
// trailing padding grows both structs by 4 bytes.
var LayoutPack8 = CallbackLayout{
	UserStatsReceivedSize:                 24,
	UserStatsReceivedUserOffset:           16,
	GlobalAchievementPercentagesReadySize: 16,
}
