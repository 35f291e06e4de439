package domain

// Key identifies one settings entry. Name is the identifier used inside
// backup documents; Storage is the underlying store key. Both sets of names
// are kept byte-compatible with the original web app so its backup files
// import cleanly.
type Key struct {
	Name    string
	Storage string
}

var (
	KeyUserProfile        = Key{Name: "USER_PROFILE", Storage: "workout_user_profile"}
	KeyOnboardingComplete = Key{Name: "ONBOARDING_COMPLETE", Storage: "workout_onboarding_complete"}
	KeyDarkMode           = Key{Name: "DARK_MODE", Storage: "workout_dark_mode"}
	KeyTrainingPlan       = Key{Name: "TRAINING_PLAN", Storage: "workout_training_plan"}
)

// All returns the fixed key enumeration. No other keys ever exist in the
// settings store.
func All() []Key {
	return []Key{KeyUserProfile, KeyOnboardingComplete, KeyDarkMode, KeyTrainingPlan}
}

// ByName resolves a backup-document key name. Unknown names report false so
// importers can skip them the way the original app did.
func ByName(name string) (Key, bool) {
	for _, k := range All() {
		if k.Name == name {
			return k, true
		}
	}
	return Key{}, false
}
