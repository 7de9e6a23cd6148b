package entity

import "strings"

type ExerciseType string

const (
	ExerciseAerobic     ExerciseType = "AEROBIC"
	ExerciseAnaerobic   ExerciseType = "ANAEROBIC"
	ExerciseFlexibility ExerciseType = "FLEXIBILITY"
	ExerciseBalance     ExerciseType = "BALANCE"
	ExerciseMixed       ExerciseType = "MIXED"
)

// Metabolic equivalents per exercise category
var exerciseMET = map[ExerciseType]float64{
	ExerciseAerobic:     8.0,
	ExerciseAnaerobic:   5.0,
	ExerciseFlexibility: 2.8,
	ExerciseBalance:     3.0,
	ExerciseMixed:       5.0,
}

// BaseMET returns the fixed MET of the category; ok is false for unknown types.
func (t ExerciseType) BaseMET() (met float64, ok bool) {
	met, ok = exerciseMET[t]
	return met, ok
}

func (t ExerciseType) Valid() bool {
	_, ok := exerciseMET[t]
	return ok
}

// AffectedByIntensity reports whether intensity multipliers apply to the type.
func (t ExerciseType) AffectedByIntensity() bool {
	return t == ExerciseAerobic || t == ExerciseAnaerobic
}

type ExerciseIntensity string

const (
	IntensityLight    ExerciseIntensity = "LIGHT"
	IntensityModerate ExerciseIntensity = "MODERATE"
	IntensityVigorous ExerciseIntensity = "VIGOROUS"
)

type intensityMultipliers struct {
	aerobic   float64
	anaerobic float64
}

var intensityTable = map[ExerciseIntensity]intensityMultipliers{
	IntensityLight:    {aerobic: 0.75, anaerobic: 0.85},
	IntensityModerate: {aerobic: 1.0, anaerobic: 1.0},
	IntensityVigorous: {aerobic: 1.25, anaerobic: 1.2},
}

func (i ExerciseIntensity) Valid() bool {
	_, ok := intensityTable[i]
	return ok
}

// Multiplier returns the aerobic multiplier for AEROBIC exercises and the
// anaerobic one otherwise. Unknown intensities count as moderate.
func (i ExerciseIntensity) Multiplier(t ExerciseType) float64 {
	m, ok := intensityTable[i]
	if !ok {
		m = intensityTable[IntensityModerate]
	}
	if t == ExerciseAerobic {
		return m.aerobic
	}
	return m.anaerobic
}

type ReminderType string

const (
	ReminderWorkout    ReminderType = "WORKOUT"
	ReminderRestDay    ReminderType = "REST_DAY"
	ReminderDrinkWater ReminderType = "DRINK_WATER"
	ReminderWeighIn    ReminderType = "WEIGH_IN"
	ReminderMealLog    ReminderType = "MEAL_LOG"
	ReminderBedtime    ReminderType = "BEDTIME"
)

var reminderDefaults = map[ReminderType]string{
	ReminderWorkout:    "Time to exercise!",
	ReminderRestDay:    "Enjoy your rest day.",
	ReminderDrinkWater: "Time to hydrate!",
	ReminderWeighIn:    "Track your weight today.",
	ReminderMealLog:    "Log your meals.",
	ReminderBedtime:    "Time to wind down for bed.",
}

func (t ReminderType) Valid() bool {
	_, ok := reminderDefaults[t]
	return ok
}

func (t ReminderType) DefaultMessage() string {
	return reminderDefaults[t]
}

// IsDefaultReminderMessage reports whether msg is the default text of some reminder type.
func IsDefaultReminderMessage(msg string) bool {
	for _, m := range reminderDefaults {
		if m == msg {
			return true
		}
	}
	return false
}

type ReminderFrequency string

const (
	FrequencyOnce     ReminderFrequency = "ONCE"
	FrequencyDaily    ReminderFrequency = "DAILY"
	FrequencyWeekly   ReminderFrequency = "WEEKLY"
	FrequencyWeekdays ReminderFrequency = "WEEKDAYS"
	FrequencyWeekends ReminderFrequency = "WEEKENDS"
	FrequencyMonthly  ReminderFrequency = "MONTHLY"
	FrequencyYearly   ReminderFrequency = "YEARLY"
)

// Valid accepts the empty frequency, which stands for a one-time reminder.
func (f ReminderFrequency) Valid() bool {
	switch f {
	case "", FrequencyOnce, FrequencyDaily, FrequencyWeekly, FrequencyWeekdays,
		FrequencyWeekends, FrequencyMonthly, FrequencyYearly:
		return true
	}
	return false
}

type MealType string

const (
	MealBreakfast MealType = "BREAKFAST"
	MealLunch     MealType = "LUNCH"
	MealDinner    MealType = "DINNER"
	MealSnack     MealType = "SNACK"
)

func (t MealType) Valid() bool {
	switch t {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}

type MeasurementUnit string

const (
	UnitOunceWeight MeasurementUnit = "OUNCE_WEIGHT"
	UnitPound       MeasurementUnit = "POUND"
	UnitGram        MeasurementUnit = "GRAM"
	UnitKilogram    MeasurementUnit = "KILOGRAM"
	UnitOunceVolume MeasurementUnit = "OUNCE_VOL"
	UnitTeaspoon    MeasurementUnit = "TEASPOON"
	UnitTablespoon  MeasurementUnit = "TABLESPOON"
	UnitCup         MeasurementUnit = "CUP"
	UnitMilliliter  MeasurementUnit = "MILLILITER"
	UnitLiter       MeasurementUnit = "LITER"
)

func (u MeasurementUnit) Valid() bool {
	switch u {
	case "", UnitOunceWeight, UnitPound, UnitGram, UnitKilogram, UnitOunceVolume,
		UnitTeaspoon, UnitTablespoon, UnitCup, UnitMilliliter, UnitLiter:
		return true
	}
	return false
}

type MeasurementSystem string

const (
	SystemMetric   MeasurementSystem = "METRIC"
	SystemImperial MeasurementSystem = "IMPERIAL"
)

func (s MeasurementSystem) Valid() bool {
	return s == SystemMetric || s == SystemImperial
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
