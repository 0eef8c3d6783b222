package upgrade

// ==================== Error Messages ====================

const (
	ErrMsgLoadWeaponFailed    = "failed to look up weapon '%s': %w"
	ErrMsgLoadUpgradeFailed   = "failed to load upgrade %s level %d: %w"
	ErrMsgInsertUpgradeFailed = "failed to insert upgrade %s level %d: %w"
	ErrMsgUpdateUpgradeFailed = "failed to update upgrade %s level %d: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgWeaponNotStored = "Skip upgrades: weapon not found"
	LogMsgUnmappedPerks   = "Unmapped upgrade perks"
	LogMsgLevelFailed     = "Upgrade level failed"
	LogMsgUpgradesDone    = "Upgrades processed"
)
