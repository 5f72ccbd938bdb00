package data

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadScene(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.yaml")
	content := `
resources:
  timer: 2002

entities:
  - name: "person1"
  - name: "person2"
    id: 1
  - id: 2
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	scene, err := LoadScene(path)
	require.NoError(t, err)

	require.NotNil(t, scene.Resources.Timer)
	assert.Equal(t, 2002, *scene.Resources.Timer)

	require.Equal(t, 3, scene.Count())
	assert.Equal(t, "person1", *scene.Entities[0].Name)
	assert.Nil(t, scene.Entities[0].ID)
	assert.Equal(t, "person2", *scene.Entities[1].Name)
	assert.Equal(t, 1, *scene.Entities[1].ID)
	assert.Nil(t, scene.Entities[2].Name)
	assert.Equal(t, 2, *scene.Entities[2].ID)
}

func TestLoadSceneNoResources(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bare.yaml")
	require.NoError(t, os.WriteFile(path, []byte("entities:\n  - name: \"solo\"\n"), 0o644))

	scene, err := LoadScene(path)
	require.NoError(t, err)
	assert.Nil(t, scene.Resources.Timer)
	assert.Equal(t, 1, scene.Count())
}

func TestLoadSceneMissingFile(t *testing.T) {
	_, err := LoadScene(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadSceneMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("entities: {nope"), 0o644))
	_, err := LoadScene(path)
	assert.Error(t, err)
}
