package config

// Profile is the detected hosting platform. It only changes diagnostic
// verbosity and whether the keep-alive server is needed; validation
// behaves the same everywhere.
type Profile int

const (
	ProfileDefault Profile = iota
	ProfileRailway
	ProfileReplit
)

func (p Profile) String() string {
	switch p {
	case ProfileRailway:
		return "Railway"
	case ProfileReplit:
		return "Replit"
	default:
		return "Default"
	}
}

// DetectProfile resolves the hosting platform from marker variables the
// platforms inject. Resolved once at startup; marker values are not
// validated, presence is enough.
func DetectProfile(getenv func(string) string) Profile {
	if getenv("RAILWAY_ENVIRONMENT") != "" {
		return ProfileRailway
	}
	if getenv("REPLIT") != "" || getenv("REPL_ID") != "" {
		return ProfileReplit
	}
	return ProfileDefault
}
