package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/lootboard/internal/board"
	"github.com/mesh-intelligence/lootboard/internal/jsonl"
	"github.com/mesh-intelligence/lootboard/internal/paths"
)

// testEnv runs lootboard commands in-process against isolated directories.
type testEnv struct {
	t         *testing.T
	configDir string
	dataDir   string
}

type result struct {
	Stdout string
	Stderr string
	Code   int
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	t.Setenv(paths.EnvConfigDir, "")
	t.Setenv(paths.EnvDataDir, "")
	t.Setenv("LOOTBOARD_BACKEND", "")
	t.Setenv("LOOTBOARD_LOG_LEVEL", "")
	root := t.TempDir()
	return &testEnv{
		t:         t,
		configDir: filepath.Join(root, "config"),
		dataDir:   filepath.Join(root, "data"),
	}
}

func (e *testEnv) run(args ...string) result {
	e.t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	full := append([]string{"--config-dir", e.configDir, "--data-dir", e.dataDir}, args...)
	code := run(cmd, full, &stderr)
	return result{Stdout: stdout.String(), Stderr: stderr.String(), Code: code}
}

func (e *testEnv) mustRun(args ...string) result {
	e.t.Helper()
	r := e.run(args...)
	require.Equal(e.t, exitSuccess, r.Code, "lootboard %v failed: %s", args, r.Stderr)
	return r
}

// view runs list --json and decodes the projection.
func (e *testEnv) view(args ...string) board.Projection {
	e.t.Helper()
	r := e.mustRun(append([]string{"list", "--json"}, args...)...)
	var p board.Projection
	require.NoError(e.t, json.Unmarshal([]byte(r.Stdout), &p))
	return p
}

func rowIDs(p board.Projection) []string {
	ids := make([]string, len(p.Rows))
	for i, r := range p.Rows {
		ids[i] = r.ID
	}
	return ids
}

func findRow(t *testing.T, p board.Projection, id string) board.Row {
	t.Helper()
	for _, r := range p.Rows {
		if r.ID == id {
			return r
		}
	}
	t.Fatalf("row %q not found in %v", id, rowIDs(p))
	return board.Row{}
}

func TestVersion(t *testing.T) {
	env := newTestEnv(t)
	r := env.mustRun("version")
	assert.Contains(t, r.Stdout, "lootboard v")
	assert.Contains(t, r.Stdout, modulePath)
}

func TestInit(t *testing.T) {
	env := newTestEnv(t)
	r := env.mustRun("init")
	assert.Contains(t, r.Stdout, "initialized successfully")

	cfg, err := os.ReadFile(filepath.Join(env.configDir, configFileExt))
	require.NoError(t, err)
	assert.Contains(t, string(cfg), "backend: sqlite")

	_, err = os.Stat(filepath.Join(env.dataDir, "lootboard.db"))
	assert.NoError(t, err)
}

func TestInitRecordsBackend(t *testing.T) {
	env := newTestEnv(t)
	env.mustRun("--backend", "jsonl", "init")

	cfg, err := os.ReadFile(filepath.Join(env.configDir, configFileExt))
	require.NoError(t, err)
	assert.Contains(t, string(cfg), "backend: jsonl")

	// Later commands pick the backend up from config.yaml.
	env.mustRun("item", "add", "Wyvern Gem")
	data, err := os.ReadFile(filepath.Join(env.dataDir, jsonl.FileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Wyvern Gem")
}

func TestBackendFromEnv(t *testing.T) {
	env := newTestEnv(t)
	t.Setenv("LOOTBOARD_BACKEND", "badger")

	env.mustRun("list")
	_, err := os.Stat(filepath.Join(env.dataDir, "badger"))
	assert.NoError(t, err)
}

func TestUnknownBackend(t *testing.T) {
	env := newTestEnv(t)
	r := env.run("--backend", "postgres", "list")
	assert.Equal(t, exitUserError, r.Code)
	assert.Contains(t, r.Stderr, "unknown backend")
}

func TestListSeedsEmptyStore(t *testing.T) {
	env := newTestEnv(t)
	r := env.mustRun("list")

	lines := strings.Split(strings.TrimSpace(r.Stdout), "\n")
	require.Len(t, lines, 15, "header plus 14 starter loot types")
	assert.Regexp(t, `^MATERIAL\s+TAGS\s+PLAYER 1\s+PLAYER 2\s+PLAYER 3\s+PLAYER 4\s+TOTAL$`, lines[0])
	assert.Regexp(t, `^Carbalite Ore\s+Basic, Ore\s+-\s+-\s+-\s+-\s+-$`, lines[1])
}

func TestListFilterAndSort(t *testing.T) {
	env := newTestEnv(t)
	env.mustRun("item", "add", "Bone", "--tags", "Basic,Bone")
	env.mustRun("item", "add", "Scale", "--tags", "Scale")

	p := env.view("--filter", "hasAll=Basic,Bone", "--sort", "total", "--desc")
	require.NotEmpty(t, p.Rows)
	assert.Equal(t, "Bone", p.Rows[0].ID)
	assert.Equal(t, board.Quantity(50), p.Rows[0].Total)
	assert.NotContains(t, rowIDs(p), "Scale")

	p = env.view("--filter", "doesNotHave=Basic")
	assert.Equal(t, []string{"Potions", "Scale"}, rowIDs(p))

	p = env.view("--filter", "hasAtLeastOne=Scale,Consumable", "--sort", "3")
	assert.Equal(t, []string{"Potions", "Scale"}, rowIDs(p), "zero sorts before positive")
}

func TestListUsageErrors(t *testing.T) {
	env := newTestEnv(t)
	tests := []struct {
		name string
		args []string
	}{
		{"filter without operator", []string{"list", "--filter", "Basic"}},
		{"unknown operator", []string{"list", "--filter", "hasSome=Basic"}},
		{"unsortable column", []string{"list", "--sort", "actions"}},
		{"unknown flag", []string{"list", "--nope"}},
		{"unknown command", []string{"frobnicate"}},
		{"extra argument", []string{"list", "extra"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := env.run(tt.args...)
			assert.Equal(t, exitUserError, r.Code, r.Stderr)
		})
	}
}

func TestTags(t *testing.T) {
	env := newTestEnv(t)
	r := env.mustRun("tags")
	assert.Equal(t, "Basic\nOre\nBone\nHide\nConsumable\n", r.Stdout)
}

func TestItemLifecycle(t *testing.T) {
	env := newTestEnv(t)

	r := env.mustRun("item", "add", "Wyvern Gem", "--tags", "Rare, Gem")
	assert.Contains(t, r.Stdout, "Added Wyvern Gem [Rare, Gem]")

	r = env.run("item", "add", "Wyvern Gem")
	assert.Equal(t, exitUserError, r.Code)
	assert.Contains(t, r.Stderr, "already exists")

	env.mustRun("set", "Wyvern Gem", "2", "3")

	r = env.mustRun("item", "edit", "Wyvern Gem", "--name", "Wyvern Jewel")
	assert.Contains(t, r.Stdout, "Updated Wyvern Jewel [Rare, Gem]", "tags are kept")

	p := env.view()
	row := findRow(t, p, "Wyvern Jewel")
	assert.Equal(t, board.Quantity(3), row.Quantity(2), "holdings follow the rename")
	assert.NotContains(t, rowIDs(p), "Wyvern Gem")
	assert.Equal(t, "Wyvern Jewel", p.Rows[len(p.Rows)-1].ID, "edited item moves to the end")

	env.mustRun("item", "edit", "Wyvern Jewel", "--tags", "")
	row = findRow(t, env.view(), "Wyvern Jewel")
	assert.Empty(t, row.Tags)

	r = env.mustRun("item", "remove", "Wyvern Jewel")
	assert.Contains(t, r.Stdout, "Removed Wyvern Jewel")
	r = env.run("item", "remove", "Wyvern Jewel")
	assert.Equal(t, exitUserError, r.Code)

	// Holdings survive removal and come back with the item.
	env.mustRun("item", "add", "Wyvern Jewel")
	row = findRow(t, env.view(), "Wyvern Jewel")
	assert.Equal(t, board.Quantity(3), row.Total)
}

func TestItemAddRequiresName(t *testing.T) {
	env := newTestEnv(t)
	r := env.run("item", "add", "   ")
	assert.Equal(t, exitUserError, r.Code)
	assert.Contains(t, r.Stderr, "Name is required")
}

func TestItemEditMissing(t *testing.T) {
	env := newTestEnv(t)
	r := env.run("item", "edit", "Nope", "--name", "Other")
	assert.Equal(t, exitUserError, r.Code)
	assert.Contains(t, r.Stderr, "not found")
}

func TestSet(t *testing.T) {
	env := newTestEnv(t)
	tests := []struct {
		qty  string
		want board.Quantity
	}{
		{"4", 4},
		{"2.7", 2},
		{"-3", 0},
		{"-0.5", 0},
		{"lots", 0},
	}
	for _, tt := range tests {
		t.Run(tt.qty, func(t *testing.T) {
			env.mustRun("set", "Potions", "1", tt.qty)
			row := findRow(t, env.view(), "Potions")
			assert.Equal(t, tt.want, row.Quantity(1))
		})
	}
}

func TestSetFlagsBeforeArguments(t *testing.T) {
	env := newTestEnv(t)
	r := env.mustRun("set", "--json", "Potions", "2", "-7")

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(r.Stdout), &got))
	assert.Equal(t, "Potions", got["item"])
	assert.Equal(t, float64(0), got["quantity"])
}

func TestSetErrors(t *testing.T) {
	env := newTestEnv(t)
	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{"slot out of range", []string{"set", "Potions", "5", "1"}, "invalid participant slot"},
		{"unknown item", []string{"set", "Nope", "1", "1"}, "not found"},
		{"missing arguments", []string{"set", "Potions"}, "accepts 3 arg(s)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := env.run(tt.args...)
			assert.Equal(t, exitUserError, r.Code)
			assert.Contains(t, r.Stderr, tt.msg)
		})
	}
}

func TestPlayers(t *testing.T) {
	env := newTestEnv(t)

	r := env.mustRun("players")
	assert.Regexp(t, `(?m)^1\s+Player 1\s+true$`, r.Stdout)

	r = env.mustRun("players", "configure", "--player1", "Ana", "--player2", "")
	assert.Regexp(t, `(?m)^1\s+Ana\s+true$`, r.Stdout)
	assert.Regexp(t, `(?m)^2\s+Player 2\s+true$`, r.Stdout, "empty names are ignored")

	r = env.mustRun("players", "clear", "2")
	assert.Regexp(t, `(?m)^2\s+-\s+false$`, r.Stdout)

	headers := []string{}
	for _, c := range env.view().Columns {
		headers = append(headers, c.Header)
	}
	assert.Equal(t, []string{"Material", "Tags", "Ana", "Player 3", "Player 4", "Total", "Actions"}, headers)

	r = env.run("players", "clear", "1")
	assert.Equal(t, exitUserError, r.Code)

	r = env.run("players", "configure", "--player1", " ")
	assert.Equal(t, exitUserError, r.Code)
	assert.Contains(t, r.Stderr, "Player 1's name is required")
}

func TestExportImport(t *testing.T) {
	env := newTestEnv(t)
	out := filepath.Join(t.TempDir(), "board.json")

	env.mustRun("set", "Potions", "1", "2")
	env.mustRun("export", "--out", out)

	var exported map[string]string
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &exported))
	assert.Contains(t, exported, "lootData")
	assert.Contains(t, exported, "playerData")

	env.mustRun("item", "add", "Temporary")
	env.mustRun("set", "Potions", "1", "9")

	r := env.mustRun("import", out)
	assert.Contains(t, r.Stdout, "14 loot types, 4 active players")

	p := env.view()
	assert.NotContains(t, rowIDs(p), "Temporary")
	assert.Equal(t, board.Quantity(2), findRow(t, p, "Potions").Quantity(1))
}

func TestExportToStdout(t *testing.T) {
	env := newTestEnv(t)
	r := env.mustRun("export", "--out", "-")
	var exported map[string]string
	require.NoError(t, json.Unmarshal([]byte(r.Stdout), &exported))
	assert.Len(t, exported, 2)
}

func TestImportMalformed(t *testing.T) {
	env := newTestEnv(t)
	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("[1, 2"), 0o644))

	env.mustRun("item", "add", "Keep Me")
	r := env.run("import", bad)
	assert.Equal(t, exitUserError, r.Code)
	assert.Contains(t, rowIDs(env.view()), "Keep Me")

	r = env.run("import", filepath.Join(t.TempDir(), "missing.json"))
	assert.Equal(t, exitUserError, r.Code)
}

func TestResetWritesBackup(t *testing.T) {
	env := newTestEnv(t)
	env.mustRun("item", "add", "Temporary")

	r := env.mustRun("reset")
	assert.Contains(t, r.Stdout, "Backup written to")
	assert.Contains(t, r.Stdout, "Board reset")

	backups, err := filepath.Glob(filepath.Join(env.dataDir, "backups", "backup-*.json"))
	require.NoError(t, err)
	require.Len(t, backups, 1)
	data, err := os.ReadFile(backups[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), "Temporary")

	p := env.view()
	assert.Len(t, p.Rows, 14)
	assert.NotContains(t, rowIDs(p), "Temporary")
}

func TestResetNoBackup(t *testing.T) {
	env := newTestEnv(t)
	env.mustRun("item", "add", "Temporary")

	r := env.mustRun("reset", "--no-backup")
	assert.NotContains(t, r.Stdout, "Backup written to")

	backups, err := filepath.Glob(filepath.Join(env.dataDir, "backups", "*.json"))
	require.NoError(t, err)
	assert.Empty(t, backups)
	assert.NotContains(t, rowIDs(env.view()), "Temporary")
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, exitUserError, exitCode(usagef("bad")))
	assert.Equal(t, exitSysError, exitCode(os.ErrPermission))
}
