package confluence

// Thresholds is the declarative rule table the evaluators consult. Keeping
// the trigger levels here rather than inlined in control flow lets each rule
// be unit-tested and tuned in isolation.
type Thresholds struct {
	// Momentum
	RSIOversold   float64 // bullish below (strict)
	RSIOverbought float64 // bearish above (strict)
	RSINeutralLo  float64 // neutral band, inclusive
	RSINeutralHi  float64
	StochOversold   float64 // both %K and %D below (strict)
	StochOverbought float64 // both %K and %D above (strict)
	WilliamsOversold   float64 // bullish below (strict)
	WilliamsOverbought float64 // bearish above (strict)

	// Trend
	ADXTrending float64 // trend-strength signal above (strict)
	ADXStrong   float64 // Strong instead of Medium above (strict)
	ADXRanging  float64 // neutral ranging signal below (strict)

	// Volatility
	BBLowerZone      float64 // bullish below (strict)
	BBUpperZone      float64 // bearish above (strict)
	BBSqueezeWidth   float64 // neutral squeeze below (strict), percent
	BBExpansionWidth float64 // neutral expansion above (strict), percent
	ATRElevatedPct   float64 // neutral elevated-volatility above (strict)

	// Volume
	VolumeHighRatio  float64 // neutral above-average above (strict)
	VolumeSurgeRatio float64 // Strong instead of Medium above (strict)
	VolumeLowRatio   float64 // neutral below-average below (strict)
	CMFBullish       float64 // bullish above (strict)
	CMFStrongBullish float64
	CMFBearish       float64 // bearish below (strict)
	CMFStrongBearish float64

	// Price action
	LargeBodyPct     float64 // directional signal above (strict), percent
	StrongBodyPct    float64 // Strong instead of Medium above (strict)
	WickBodyMultiple float64 // rejection/support wick vs body multiple
}

// DefaultThresholds returns the standard rule table.
func DefaultThresholds() Thresholds {
	return Thresholds{
		RSIOversold:   30,
		RSIOverbought: 70,
		RSINeutralLo:  45,
		RSINeutralHi:  55,

		StochOversold:   20,
		StochOverbought: 80,

		WilliamsOversold:   -80,
		WilliamsOverbought: -20,

		ADXTrending: 25,
		ADXStrong:   40,
		ADXRanging:  20,

		BBLowerZone:      0.1,
		BBUpperZone:      0.9,
		BBSqueezeWidth:   2,
		BBExpansionWidth: 8,
		ATRElevatedPct:   3,

		VolumeHighRatio:  1.5,
		VolumeSurgeRatio: 2,
		VolumeLowRatio:   0.7,
		CMFBullish:       0.2,
		CMFStrongBullish: 0.3,
		CMFBearish:       -0.2,
		CMFStrongBearish: -0.3,

		LargeBodyPct:     2,
		StrongBodyPct:    3,
		WickBodyMultiple: 2,
	}
}
