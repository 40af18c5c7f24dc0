package scenefile

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleScene = `{
  "nbounces": 3,
  "rendermode": "phong",
  "camera": {
    "type": "pinhole",
    "width": 16,
    "height": 16,
    "position": [0, 0, 0],
    "lookAt": [0, 0, -1],
    "upVector": [0, 1, 0],
    "fov": 60,
    "exposure": 1
  },
  "scene": {
    "backgroundcolor": [0.1, 0.2, 0.3],
    "lightsources": [
      {"type": "pointlight", "position": [0, 5, 0], "intensity": [1, 1, 1]},
      {"type": "arealight", "position": [2, 5, 0], "intensity": [1, 1, 1], "u_axis": [1, 0, 0], "v_axis": [0, 0, 1]}
    ],
    "shapes": [
      {
        "type": "sphere",
        "center": [0, 0, -3],
        "radius": 1,
        "material": {
          "ks": 0.5, "kd": 0.8, "specularexponent": 32,
          "diffusecolor": [1, 0, 0], "specularcolor": [1, 1, 1],
          "isreflective": false, "reflectivity": 0,
          "isrefractive": false, "refractiveindex": 1
        }
      },
      {
        "type": "triangle",
        "v0": [0, 0, 0], "v1": [1, 0, 0], "v2": [0, 1, 0],
        "material": {"ks": 0, "kd": 1, "diffusecolor": [0, 1, 0]}
      }
    ]
  }
}`

func writeTempScene(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.json")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing temp scene: %v", err)
	}
	return path
}

func TestLoadDecodesSceneFile(t *testing.T) {
	path := writeTempScene(t, sampleScene)

	result, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if result.NumBounces != 3 {
		t.Errorf("expected nbounces=3, got %d", result.NumBounces)
	}
	if result.RenderMode != "phong" {
		t.Errorf("expected rendermode=phong, got %q", result.RenderMode)
	}
	if result.Camera.Width != 16 || result.Camera.Height != 16 {
		t.Errorf("unexpected camera dimensions: %dx%d", result.Camera.Width, result.Camera.Height)
	}
	if len(result.Scene.Lights) != 2 {
		t.Fatalf("expected 2 lights, got %d", len(result.Scene.Lights))
	}
	if len(result.Scene.Primitives) != 2 {
		t.Fatalf("expected 2 primitives, got %d", len(result.Scene.Primitives))
	}
}

func TestLoadRejectsUnknownShapeType(t *testing.T) {
	bad := `{"rendermode":"binary","camera":{"width":1,"height":1,"position":[0,0,0],"lookAt":[0,0,-1],"upVector":[0,1,0],"fov":60},"scene":{"shapes":[{"type":"cone","material":{}}]}}`
	path := writeTempScene(t, bad)

	if _, err := Load(path); err == nil {
		t.Error("expected an error for an unknown shape type")
	}
}

func TestLoadRejectsUnknownLightType(t *testing.T) {
	bad := `{"rendermode":"binary","camera":{"width":1,"height":1,"position":[0,0,0],"lookAt":[0,0,-1],"upVector":[0,1,0],"fov":60},"scene":{"lightsources":[{"type":"laser"}]}}`
	path := writeTempScene(t, bad)

	if _, err := Load(path); err == nil {
		t.Error("expected an error for an unknown light type")
	}
}
