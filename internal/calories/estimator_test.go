package calories_test

import (
	"testing"

	"github.com/Dustin-Locke/HealthAndwellness/internal/calories"
	"github.com/Dustin-Locke/HealthAndwellness/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func TestResolveWeightLbs(t *testing.T) {
	testCases := []struct {
		Desc      string
		Primary   *float64
		Secondary *float64
		Expected  float64
	}{
		{"primary weight", ptr(180.0), ptr(200.0), 180},
		{"nil primary uses secondary", nil, ptr(200.0), 200},
		{"zero primary uses secondary", ptr(0.0), ptr(200.0), 200},
		{"both missing", nil, nil, calories.DefaultWeightLbs},
		{"both zero", ptr(0.0), ptr(0.0), calories.DefaultWeightLbs},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			assert.Equal(t, tc.Expected, calories.ResolveWeightLbs(tc.Primary, tc.Secondary))
		})
	}
}

func TestEstimateAerobicModerate(t *testing.T) {
	kcal, err := calories.Estimate(calories.Input{
		BodyWeightLbs:   ptr(154.0),
		Type:            entity.ExerciseAerobic,
		BaseMET:         8.0,
		Intensity:       entity.IntensityModerate,
		DurationMinutes: ptr(10.0),
	})
	require.NoError(t, err)
	assert.InDelta(t, 97.79, kcal, 0.01)
}

func TestEstimateZeroDuration(t *testing.T) {
	kcal, err := calories.Estimate(calories.Input{
		BodyWeightLbs:   ptr(154.0),
		Type:            entity.ExerciseAerobic,
		Intensity:       entity.IntensityVigorous,
		DurationMinutes: ptr(0.0),
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, kcal)

	kcal, err = calories.Estimate(calories.Input{Type: entity.ExerciseBalance})
	require.NoError(t, err)
	assert.Equal(t, 0.0, kcal)
}

func TestEstimateFlexibilityIgnoresIntensity(t *testing.T) {
	base := calories.Input{
		BodyWeightLbs:   ptr(170.0),
		Type:            entity.ExerciseFlexibility,
		BaseMET:         2.8,
		DurationMinutes: ptr(30.0),
	}
	light, vigorous := base, base
	light.Intensity = entity.IntensityLight
	vigorous.Intensity = entity.IntensityVigorous

	lightKcal, err := calories.Estimate(light)
	require.NoError(t, err)
	vigorousKcal, err := calories.Estimate(vigorous)
	require.NoError(t, err)
	assert.Equal(t, lightKcal, vigorousKcal)
	assert.Greater(t, lightKcal, 0.0)
}

func TestEstimateWeightFallback(t *testing.T) {
	in := calories.Input{
		Type:            entity.ExerciseMixed,
		DurationMinutes: ptr(20.0),
	}
	perLb := 5.0 * 3.5 * calories.KgPerLb / 200 * 20

	t.Run("secondary weight", func(t *testing.T) {
		in := in
		in.BodyWeightLbs = ptr(0.0)
		in.FallbackWeightLbs = ptr(200.0)
		kcal, err := calories.Estimate(in)
		require.NoError(t, err)
		assert.InDelta(t, perLb*200, kcal, 1e-9)
	})
	t.Run("default weight", func(t *testing.T) {
		kcal, err := calories.Estimate(in)
		require.NoError(t, err)
		assert.InDelta(t, perLb*calories.DefaultWeightLbs, kcal, 1e-9)
	})
}

func TestEstimateRepsAndDurationAreSummed(t *testing.T) {
	in := calories.Input{
		BodyWeightLbs: ptr(154.0),
		Type:          entity.ExerciseAnaerobic,
		Intensity:     entity.IntensityVigorous,
		Reps:          ptr(10),
		Sets:          ptr(3),
	}
	repsOnly, err := calories.Estimate(in)
	require.NoError(t, err)
	// 30 reps -> 15 minutes at 5.0 * 1.2 MET
	assert.InDelta(t, 6.0*3.5*154*calories.KgPerLb/200*15, repsOnly, 1e-9)

	in.DurationMinutes = ptr(15.0)
	both, err := calories.Estimate(in)
	require.NoError(t, err)
	assert.InDelta(t, 2*repsOnly, both, 1e-9)

	in.Sets = nil
	durationOnly, err := calories.Estimate(in)
	require.NoError(t, err)
	assert.InDelta(t, repsOnly, durationOnly, 1e-9)
}

func TestEstimateNeverNegative(t *testing.T) {
	types := []entity.ExerciseType{
		entity.ExerciseAerobic, entity.ExerciseAnaerobic, entity.ExerciseFlexibility,
		entity.ExerciseBalance, entity.ExerciseMixed,
	}
	intensities := []entity.ExerciseIntensity{
		entity.IntensityLight, entity.IntensityModerate, entity.IntensityVigorous,
	}
	for _, typ := range types {
		for _, intensity := range intensities {
			for _, minutes := range []float64{0, 1, 45.5} {
				for _, reps := range []int{-8, 0, 8} {
					kcal, err := calories.Estimate(calories.Input{
						Type:            typ,
						Intensity:       intensity,
						DurationMinutes: ptr(minutes),
						Reps:            ptr(reps),
						Sets:            ptr(3),
					})
					require.NoError(t, err)
					assert.GreaterOrEqual(t, kcal, 0.0)
				}
			}
		}
	}
}

func TestEstimateIgnoresNegativeRepsAndSets(t *testing.T) {
	testCases := []struct {
		Desc string
		Reps int
		Sets int
	}{
		{"both negative", -10, -3},
		{"negative reps", -10, 3},
		{"negative sets", 10, -3},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			kcal, err := calories.Estimate(calories.Input{
				Type: entity.ExerciseAerobic,
				Reps: ptr(tc.Reps),
				Sets: ptr(tc.Sets),
			})
			require.NoError(t, err)
			assert.Zero(t, kcal)
		})
	}
	t.Run("duration still counts", func(t *testing.T) {
		withReps, err := calories.Estimate(calories.Input{
			Type:            entity.ExerciseAerobic,
			DurationMinutes: ptr(30.0),
			Reps:            ptr(-10),
			Sets:            ptr(-3),
		})
		require.NoError(t, err)
		alone, err := calories.Estimate(calories.Input{
			Type:            entity.ExerciseAerobic,
			DurationMinutes: ptr(30.0),
		})
		require.NoError(t, err)
		assert.InDelta(t, alone, withReps, 1e-9)
	})
}

func TestEstimateUnknownType(t *testing.T) {
	_, err := calories.Estimate(calories.Input{Type: "SWIMMING", DurationMinutes: ptr(10.0)})
	assert.ErrorIs(t, err, calories.ErrUnknownExerciseType)
	assert.Panics(t, func() {
		calories.MustEstimate(calories.Input{Type: ""})
	})
}
