package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/GardenPlot/internal/model"
	"github.com/piwi3910/GardenPlot/internal/project"
)

// execute runs the root command with the given args and captures its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeGardenFile(t *testing.T, g model.Garden) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "garden.json")
	require.NoError(t, project.SaveGarden(path, project.GardenFile{Garden: g}))
	return path
}

func cliGarden() model.Garden {
	return model.Garden{
		ID:   "g1",
		Name: "Backyard",
		Area: 100,
		Zones: []model.Zone{
			{ID: "z1", Name: "South bed", Area: 50, SunlightHours: 8},
		},
		Plants: []model.Plant{
			{ID: "p1", Name: "Tomato", SpacingSideLength: 2, Quantity: 4,
				SunlightHoursNeeded: 6, DaysToMaturity: 75},
		},
	}
}

func TestValidateCommand(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := writeGardenFile(t, cliGarden())

	out, err := execute(t, "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, `Garden "Backyard" is valid`)
}

func TestValidateCommandInvalidGarden(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	g := cliGarden()
	g.Zones = nil
	path := writeGardenFile(t, g)

	_, err := execute(t, "validate", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is invalid")
}

func TestPlanCommandNoSave(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := writeGardenFile(t, cliGarden())

	out, err := execute(t, "plan", "--no-save", path)
	require.NoError(t, err)
	assert.Contains(t, out, "38.40% utilization")
	assert.Contains(t, out, "4x Tomato")
	assert.Contains(t, out, "best-effort")

	// --no-save leaves the garden file without a layout.
	gf, err := project.LoadGarden(path)
	require.NoError(t, err)
	assert.Nil(t, gf.Layout)
}

func TestPlanCommandSavesLayout(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := writeGardenFile(t, cliGarden())

	// Flag values persist across Execute calls, so reset --no-save explicitly.
	_, err := execute(t, "plan", "--no-save=false", path)
	require.NoError(t, err)

	gf, err := project.LoadGarden(path)
	require.NoError(t, err)
	require.NotNil(t, gf.Layout)
	assert.Equal(t, 38.4, gf.Layout.SpaceUtilization)

	cfg, _, err := project.LoadOrCreateAppConfig()
	require.NoError(t, err)
	assert.Contains(t, cfg.RecentGardens, path)

	// A second run with unchanged content serves the stored layout.
	out, err := execute(t, "plan", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Stored layout is current")
}

func TestBackupExportImport(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	g := cliGarden()
	gardenPath := writeGardenFile(t, g)

	backupPath := filepath.Join(t.TempDir(), "backup.json")
	out, err := execute(t, "backup", "export", backupPath, gardenPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported app config and 1 garden(s)")

	restoreDir := t.TempDir()
	out, err = execute(t, "backup", "import", "--dir", restoreDir, backupPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported app config and 1 garden(s)")

	restored, err := project.LoadGarden(filepath.Join(restoreDir, g.ID+".json"))
	require.NoError(t, err)
	assert.Equal(t, g, restored.Garden)
}

func TestBackupExportDefaultsToRecentGardens(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := writeGardenFile(t, cliGarden())

	// Planning records the garden in the recent list, which export then
	// picks up when no garden files are named.
	_, err := execute(t, "plan", "--no-save=false", path)
	require.NoError(t, err)

	backupPath := filepath.Join(t.TempDir(), "backup.json")
	out, err := execute(t, "backup", "export", backupPath)
	require.NoError(t, err)
	assert.Contains(t, out, "1 garden(s)")

	backup, err := project.ImportAllData(backupPath)
	require.NoError(t, err)
	require.Len(t, backup.Gardens, 1)
	assert.Equal(t, "g1", backup.Gardens[0].Garden.ID)
}

func TestCatalogCommand(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	out, err := execute(t, "catalog")
	require.NoError(t, err)
	assert.Contains(t, strings.ToLower(out), "tomato")
	assert.Contains(t, strings.ToLower(out), "marigold")
}
