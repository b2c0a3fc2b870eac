package cmds

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory(t *testing.T) {
	env := newEnv(t)
	seed(t, env, today.AddDate(0, 0, -1), "09:00 Gym\n11:00 Standup\n")
	seed(t, env, today, "11:00 Daily standup\n")

	res := run(t, env, "history")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "31/12/2023: 2 appointments\n01/01/2024: 1 appointments\n", res.stdout)

	res = run(t, env, "history", "--until", "31/12/2023")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "31/12/2023: 2 appointments\n", res.stdout)

	res = run(t, env, "history", "--date", "31/12/2023")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "[09:00] Gym\n[11:00] Standup\n", res.stdout)

	res = run(t, env, "history", "--date", "30/12/2023")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "There were no appointments added in this day.\n", res.stdout)
}

func TestHistory_NothingStored(t *testing.T) {
	res := run(t, newEnv(t), "history")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "There are no appointments stored yet.\n", res.stdout)
}

func TestFind(t *testing.T) {
	env := newEnv(t)
	seed(t, env, today.AddDate(0, 0, -1), "09:00 Gym\n11:00 Standup\n")
	seed(t, env, today, "11:00 Daily standup\n")

	res := run(t, env, "find", "STANDUP")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "31/12/2023 [11:00] Standup\n01/01/2024 [11:00] Daily standup\n", res.stdout)

	res = run(t, env, "find", "dentist")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "No appointments found.\n", res.stdout)

	res = run(t, env, "find")
	assert.Equal(t, exitUsage, res.code)
}

func TestExport(t *testing.T) {
	env := newEnv(t)
	seed(t, env, today, "11:00 Standup\n15:00 Review\n")

	res := run(t, env, "export")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "date: 01/01/2024")
	assert.Contains(t, res.stdout, "description: Standup")
	assert.Contains(t, res.stdout, "description: Review")

	res = run(t, env, "export", "--format", "ics")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "BEGIN:VCALENDAR")
	assert.Contains(t, res.stdout, "SUMMARY:Standup")
	assert.Contains(t, res.stdout, "SUMMARY:Review")

	res = run(t, env, "export", "--date", "31/12/2023")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "appointments: []")

	res = run(t, env, "export", "-f", "csv")
	assert.Equal(t, exitUsage, res.code)
	assert.Contains(t, res.stderr, `unknown format "csv"`)
}

func TestImport(t *testing.T) {
	env := newEnv(t)
	md := filepath.Join(t.TempDir(), "monday.md")
	require.NoError(t, os.WriteFile(md, []byte(`# Monday

- 11:00 Standup
- 09:00 Gym
- buy milk

1. 15:00 Review
`), 0o644))

	res := run(t, env, "import", md)
	require.Equal(t, 0, res.code, res.stderr)
	assert.Equal(t, "2 appointments imported.\n", res.stdout)
	assert.Contains(t, res.stderr, `skipped "buy milk"`)
	assert.Contains(t, res.stderr, `skipped "09:00 Gym"`)
	assert.Equal(t, "11:00 Standup\n15:00 Review\n", fileContent(t, env.Config.Days().PathFor(today)))

	res = run(t, env, "import")
	assert.Equal(t, exitUsage, res.code)

	res = run(t, env, "import", filepath.Join(t.TempDir(), "missing.md"))
	assert.Equal(t, exitFailure, res.code)
}

func TestConfig(t *testing.T) {
	env := newEnv(t)

	res := run(t, env, "config")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "data_dir")
	assert.Contains(t, res.stdout, env.Config.DataDir)
	assert.Contains(t, res.stdout, "release_repo")
	assert.NotContains(t, res.stdout, "loaded from")
}

func TestConfig_DataDirFlag(t *testing.T) {
	env := newEnv(t)
	dir := filepath.Join(t.TempDir(), "elsewhere")

	res := run(t, env, "--data-dir", dir, "add", "-d", "Standup", "-t", "11:00")
	require.Equal(t, 0, res.code, res.stderr)

	_, err := os.Stat(filepath.Join(dir, "appointments_01012024.txt"))
	assert.NoError(t, err)
}

func TestUpdate(t *testing.T) {
	tests := []struct {
		version string
		want    string
	}{
		{"0.5.3", "latest release: v0.6.0; current version: 0.5.3\nA newer version is available.\n"},
		{"0.6.0", "latest release: v0.6.0; current version: 0.6.0\n"},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/repos/vncsmyrnk/todayiwill/releases/latest", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"tag_name": "v0.6.0"}`)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			env := newEnv(t)
			env.HTTP = server.Client()
			env.GitHubAPI = server.URL
			env.Version = tt.version

			res := run(t, env, "update")
			require.Equal(t, 0, res.code, res.stderr)
			assert.Equal(t, tt.want, res.stdout)
		})
	}
}

func TestUpdate_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	env := newEnv(t)
	env.HTTP = server.Client()
	env.GitHubAPI = server.URL

	res := run(t, env, "update")
	assert.Equal(t, exitFailure, res.code)
}

func TestRofi(t *testing.T) {
	t.Run("first open lists upcoming", func(t *testing.T) {
		env := newEnv(t)
		seed(t, env, today, "09:00 Gym\n11:00 Standup\n")
		t.Setenv("ROFI_RETV", "0")
		t.Setenv("ROFI_INFO", "")

		res := run(t, env, "rofi")
		require.Equal(t, 0, res.code, res.stderr)
		assert.Equal(t, "\x00prompt\x1ftoday\n[11:00] Standup\x00info\x1f11:00\n", res.stdout)
	})

	t.Run("custom entry adds", func(t *testing.T) {
		env := newEnv(t)
		path := seed(t, env, today, "11:00 Standup\n")
		t.Setenv("ROFI_RETV", "2")
		t.Setenv("ROFI_INFO", "")

		res := run(t, env, "rofi", "12:00 Lunch")
		require.Equal(t, 0, res.code, res.stderr)
		assert.Contains(t, res.stdout, "[12:00] Lunch\x00info\x1f12:00\n")
		assert.Equal(t, "11:00 Standup\n12:00 Lunch\n", fileContent(t, path))
	})

	t.Run("past custom entry shows message", func(t *testing.T) {
		env := newEnv(t)
		path := seed(t, env, today, "11:00 Standup\n")
		t.Setenv("ROFI_RETV", "2")
		t.Setenv("ROFI_INFO", "")

		res := run(t, env, "rofi", "08:00 Gym")
		require.Equal(t, 0, res.code, res.stderr)
		assert.Contains(t, res.stdout, "\x00message\x1fGiven time already passed.\n")
		assert.Equal(t, "11:00 Standup\n", fileContent(t, path))
	})

	t.Run("error wins over empty notice", func(t *testing.T) {
		env := newEnv(t)
		t.Setenv("ROFI_RETV", "2")
		t.Setenv("ROFI_INFO", "")

		res := run(t, env, "rofi", "08:00 Gym")
		require.Equal(t, 0, res.code, res.stderr)
		assert.Equal(t, "\x00prompt\x1ftoday\n\x00message\x1fGiven time already passed.\n", res.stdout)
	})

	t.Run("nothing upcoming", func(t *testing.T) {
		env := newEnv(t)
		t.Setenv("ROFI_RETV", "0")
		t.Setenv("ROFI_INFO", "")

		res := run(t, env, "rofi")
		require.Equal(t, 0, res.code, res.stderr)
		assert.Equal(t, "\x00prompt\x1ftoday\n\x00message\x1fNo upcoming appointments.\n", res.stdout)
	})

	t.Run("selected entry is removed", func(t *testing.T) {
		env := newEnv(t)
		path := seed(t, env, today, "11:00 Standup\n12:00 Lunch\n")
		t.Setenv("ROFI_RETV", "1")
		t.Setenv("ROFI_INFO", "11:00")

		res := run(t, env, "rofi", "[11:00] Standup")
		require.Equal(t, 0, res.code, res.stderr)
		assert.NotContains(t, res.stdout, "Standup")
		assert.Equal(t, "12:00 Lunch\n", fileContent(t, path))
	})
}

func TestOpen_MissingDay(t *testing.T) {
	res := run(t, newEnv(t), "open", "--date", "30/12/2023")
	assert.Equal(t, exitFailure, res.code)
	assert.Contains(t, res.stderr, "There were no appointments added in this day.")
}
