package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/misterclayt0n/ftracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePackagesFromTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "packages.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[[package]]
type = "RUN"
data = [15000, 1, 75]

[[package]]
type = "SWM"
data = [720, 1.5, 80, 25, 40]
`), 0o644))

	packages, err := ParsePackagesFromTOML(path)
	require.NoError(t, err)
	assert.Equal(t, []models.WorkoutPackage{
		{Type: "RUN", Data: []float64{15000, 1, 75}},
		{Type: "SWM", Data: []float64{720, 1.5, 80, 25, 40}},
	}, packages)
}

func TestParsePackagesFromTOMLErrors(t *testing.T) {
	_, err := ParsePackagesFromTOML(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[package]\n"), 0o644))
	_, err = ParsePackagesFromTOML(path)
	assert.ErrorContains(t, err, "invalid TOML format")
}

func TestParsePackagesText(t *testing.T) {
	input := `
# morning
SWM 720 1 80 25 40
  RUN	15000 1 75

WLK 9000 1 75 180
XYZ
`
	packages, err := ParsePackagesText(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []models.WorkoutPackage{
		{Type: "SWM", Data: []float64{720, 1, 80, 25, 40}},
		{Type: "RUN", Data: []float64{15000, 1, 75}},
		{Type: "WLK", Data: []float64{9000, 1, 75, 180}},
		{Type: "XYZ", Data: []float64{}},
	}, packages)
}

func TestParsePackagesTextInvalidNumber(t *testing.T) {
	_, err := ParsePackagesText(strings.NewReader("RUN 15000 1 75\nRUN 15000 one 75\n"))
	assert.EqualError(t, err, `line 2: invalid number "one"`)
}

func TestDefaultPackages(t *testing.T) {
	packages := DefaultPackages()
	require.Len(t, packages, 3)
	assert.Equal(t, "SWM", packages[0].Type)

	packages[0].Data[0] = 1
	assert.Equal(t, 720.0, DefaultPackages()[0].Data[0])
}
