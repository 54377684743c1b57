package models

// PayoutTier maps the duration bracket of a service to a fixed payout amount.
type PayoutTier struct {
	Hours4 float64 `bson:"hours4" json:"hours4"` // Services up to 4 hours.
	Hours6 float64 `bson:"hours6" json:"hours6"` // Services up to 6 hours.
	Hours8 float64 `bson:"hours8" json:"hours8"` // Anything longer.
}

// PayoutMatrix holds the per-experience-level payout tiers.
type PayoutMatrix struct {
	Junior PayoutTier `bson:"junior" json:"junior"`
	Senior PayoutTier `bson:"senior" json:"senior"`
	Master PayoutTier `bson:"master" json:"master"`
}

// PlatformSettings is the singleton operational configuration, replaced
// wholesale on admin save.
type PlatformSettings struct {
	ID              string       `bson:"id" json:"id"`
	Payouts         PayoutMatrix `bson:"payouts" json:"payouts"`
	HourlyRate      float64      `bson:"hourly_rate" json:"hourlyRate"`           // Reference value shown in the admin UI.
	MinDisplacement float64      `bson:"min_displacement" json:"minDisplacement"` // Minimum displacement fee, reference only.
}

// DefaultPlatformSettings seeds the settings document on first read.
func DefaultPlatformSettings() PlatformSettings {
	return PlatformSettings{
		ID: "platform",
		Payouts: PayoutMatrix{
			Junior: PayoutTier{Hours4: 60, Hours6: 80, Hours8: 100},
			Senior: PayoutTier{Hours4: 80, Hours6: 100, Hours8: 120},
			Master: PayoutTier{Hours4: 100, Hours6: 130, Hours8: 160},
		},
		HourlyRate:      35,
		MinDisplacement: 20,
	}
}
