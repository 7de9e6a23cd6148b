// Package calories estimates the energy spent on a logged exercise with the
// MET formula kcal/min = MET * 3.5 * kg / 200.
package calories

import (
	"errors"
	"fmt"

	"github.com/Dustin-Locke/HealthAndwellness/pkg/entity"
)

const (
	// DefaultWeightLbs is used when the profile carries no usable weight (~70 kg).
	DefaultWeightLbs = 154.0
	// KgPerLb converts pounds to kilograms.
	KgPerLb = 0.453592
	// MinutesPerRep is the time credited to one repetition.
	MinutesPerRep = 0.5
)

// ErrUnknownExerciseType is returned for types missing from the MET table.
var ErrUnknownExerciseType = errors.New("unknown exercise type")

// Input describes one activity instance. Optional values are nil when absent.
type Input struct {
	BodyWeightLbs     *float64
	FallbackWeightLbs *float64
	Type              entity.ExerciseType
	// BaseMET of the exercise type; zero means the type table value
	BaseMET         float64
	Intensity       entity.ExerciseIntensity
	DurationMinutes *float64
	Reps            *int
	Sets            *int
}

// ResolveWeightLbs picks the first present, non-zero weight and falls back to
// DefaultWeightLbs.
func ResolveWeightLbs(primary, secondary *float64) float64 {
	if primary != nil && *primary != 0 {
		return *primary
	}
	if secondary != nil && *secondary != 0 {
		return *secondary
	}
	return DefaultWeightLbs
}

// AdjustedMET applies the intensity multiplier for aerobic and anaerobic
// exercises. Other categories keep their base MET.
func AdjustedMET(t entity.ExerciseType, baseMET float64, intensity entity.ExerciseIntensity) float64 {
	if !t.AffectedByIntensity() {
		return baseMET
	}
	return baseMET * intensity.Multiplier(t)
}

// Estimate returns the kilocalories burned, never negative. Duration and
// reps/sets contributions are added together when both are given.
func Estimate(in Input) (float64, error) {
	met := in.BaseMET
	if met == 0 {
		var ok bool
		met, ok = in.Type.BaseMET()
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrUnknownExerciseType, in.Type)
		}
	}
	if !in.Type.Valid() || met < 0 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownExerciseType, in.Type)
	}

	weightKg := ResolveWeightLbs(in.BodyWeightLbs, in.FallbackWeightLbs) * KgPerLb
	perMinute := AdjustedMET(in.Type, met, in.Intensity) * 3.5 * weightKg / 200

	total := 0.0
	if in.DurationMinutes != nil && *in.DurationMinutes > 0 {
		total += perMinute * *in.DurationMinutes
	}
	if in.Reps != nil && in.Sets != nil && *in.Reps > 0 && *in.Sets > 0 {
		total += perMinute * float64(*in.Reps) * float64(*in.Sets) * MinutesPerRep
	}
	if total < 0 {
		return 0, nil
	}
	return total, nil
}

// MustEstimate is Estimate for callers holding a checked exercise reference.
func MustEstimate(in Input) float64 {
	kcal, err := Estimate(in)
	if err != nil {
		panic(err)
	}
	return kcal
}
