package bootstrap

import (
	"bytes"
	"strings"
	"testing"

	"botlauncher/config"
)

func fakeEnv(vars map[string]string) (func(string) string, func() []string) {
	getenv := func(key string) string { return vars[key] }
	environ := func() []string {
		kv := make([]string, 0, len(vars))
		for k, v := range vars {
			kv = append(kv, k+"="+v)
		}
		return kv
	}
	return getenv, environ
}

func newValidator(vars map[string]string, profile config.Profile, halt bool, out *bytes.Buffer) *Validator {
	getenv, environ := fakeEnv(vars)
	return &Validator{
		BotName:       "AI Ebisuya Bot",
		Vars:          config.RequiredVars,
		Profile:       profile,
		HaltOnMissing: halt,
		Out:           out,
		Getenv:        getenv,
		Environ:       environ,
	}
}

func TestValidatorRun(t *testing.T) {
	tests := []struct {
		name         string
		env          map[string]string
		profile      config.Profile
		halt         bool
		wantDecision Decision
		wantLines    []string
		rejectLines  []string
	}{
		{
			name: "all present",
			env: map[string]string{
				"DISCORD_BOT_TOKEN": "tok-1234567890",
				"OPENAI_API_KEY":    "sk-abcdef",
			},
			wantDecision: DecisionLaunch,
			wantLines: []string{
				"DISCORD_BOT_TOKEN is set (length: 14)",
				"OPENAI_API_KEY is set (length: 9)",
			},
			rejectLines: []string{"ERROR:"},
		},
		{
			name: "discord token missing, launch still attempted",
			env: map[string]string{
				"OPENAI_API_KEY": "abc123",
			},
			wantDecision: DecisionLaunch,
			wantLines: []string{
				"ERROR: DISCORD_BOT_TOKEN is not set!",
				"OPENAI_API_KEY is set (length: 6)",
			},
		},
		{
			name:         "both missing with halt enabled",
			env:          map[string]string{},
			halt:         true,
			wantDecision: DecisionAbort,
			wantLines: []string{
				"ERROR: DISCORD_BOT_TOKEN is not set!",
				"ERROR: OPENAI_API_KEY is not set!",
			},
		},
		{
			name: "railway banner with all present",
			env: map[string]string{
				"DISCORD_BOT_TOKEN": "tok",
				"OPENAI_API_KEY":    "key",
			},
			profile:      config.ProfileRailway,
			wantDecision: DecisionLaunch,
			wantLines:    []string{"Detected profile: Railway"},
			rejectLines:  []string{"ERROR:"},
		},
		{
			name: "railway lists related names for missing var",
			env: map[string]string{
				"DISCORD_TOKEN":  "oops-wrong-name",
				"OPENAI_API_KEY": "key",
			},
			profile:      config.ProfileRailway,
			wantDecision: DecisionLaunch,
			wantLines: []string{
				"ERROR: DISCORD_BOT_TOKEN is not set!",
				`environment variables matching "discord": DISCORD_TOKEN`,
			},
			rejectLines: []string{"oops-wrong-name"},
		},
		{
			name:         "railway reports when nothing matches",
			env:          map[string]string{"OPENAI_API_KEY": "key"},
			profile:      config.ProfileRailway,
			wantDecision: DecisionLaunch,
			wantLines:    []string{`no environment variables matching "discord"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			v := newValidator(tt.env, tt.profile, tt.halt, &out)

			_, decision := v.Run()
			if decision != tt.wantDecision {
				t.Errorf("Run() decision = %v, want %v", decision, tt.wantDecision)
			}

			got := out.String()
			for _, want := range tt.wantLines {
				if !strings.Contains(got, want) {
					t.Errorf("output missing %q\noutput:\n%s", want, got)
				}
			}
			for _, reject := range tt.rejectLines {
				if strings.Contains(got, reject) {
					t.Errorf("output should not contain %q\noutput:\n%s", reject, got)
				}
			}
		})
	}
}

func TestValidatorRedaction(t *testing.T) {
	secrets := map[string]string{
		"DISCORD_BOT_TOKEN": "super-secret-discord-token",
		"OPENAI_API_KEY":    "sk-very-secret-key",
	}

	var out bytes.Buffer
	v := newValidator(secrets, config.ProfileRailway, false, &out)
	results, _ := v.Run()

	got := out.String()
	for _, secret := range secrets {
		if strings.Contains(got, secret) {
			t.Errorf("redacted value %q leaked into output:\n%s", secret, got)
		}
	}

	for _, res := range results {
		if !res.Present {
			t.Errorf("%s: Present = false, want true", res.Var.Name)
		}
		if res.Length != len(secrets[res.Var.Name]) {
			t.Errorf("%s: Length = %d, want %d", res.Var.Name, res.Length, len(secrets[res.Var.Name]))
		}
	}
}

func TestValidatorDeclaredOrder(t *testing.T) {
	var out bytes.Buffer
	v := newValidator(map[string]string{}, config.ProfileDefault, false, &out)
	v.Run()

	got := out.String()
	discord := strings.Index(got, "DISCORD_BOT_TOKEN")
	openai := strings.Index(got, "OPENAI_API_KEY")
	if discord < 0 || openai < 0 {
		t.Fatalf("expected both variables reported, got:\n%s", got)
	}
	if discord > openai {
		t.Errorf("DISCORD_BOT_TOKEN reported after OPENAI_API_KEY:\n%s", got)
	}
}

func TestValidatorIdempotent(t *testing.T) {
	env := map[string]string{"OPENAI_API_KEY": "abc123"}

	var first, second bytes.Buffer
	newValidator(env, config.ProfileRailway, false, &first).Run()
	newValidator(env, config.ProfileRailway, false, &second).Run()

	if first.String() != second.String() {
		t.Errorf("two runs over the same environment differ:\n--- first\n%s--- second\n%s",
			first.String(), second.String())
	}
}

func TestValidatorNonRedactedValueShown(t *testing.T) {
	var out bytes.Buffer
	getenv, environ := fakeEnv(map[string]string{"BOT_LOCALE": "ja-JP"})
	v := &Validator{
		BotName: "AI Ebisuya Bot",
		Vars:    []config.RequiredVar{{Name: "BOT_LOCALE", Redact: false}},
		Out:     &out,
		Getenv:  getenv,
		Environ: environ,
	}
	v.Run()

	if !strings.Contains(out.String(), "BOT_LOCALE is set: ja-JP") {
		t.Errorf("non-redacted value not reported as-is:\n%s", out.String())
	}
}

func TestDomainWord(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"DISCORD_BOT_TOKEN", "discord"},
		{"OPENAI_API_KEY", "openai"},
		{"TOKEN", "token"},
	}
	for _, tt := range tests {
		if got := domainWord(tt.name); got != tt.want {
			t.Errorf("domainWord(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
