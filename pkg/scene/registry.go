package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-pathtracer/pkg/log"
)

// ErrUnknownScene is returned by Create for a name that is not registered
var ErrUnknownScene = errors.New("scene: unknown scene")

// Builder constructs a scene. Scenes with random content draw it from seed.
type Builder func(seed uint64) *Scene

// SceneInfo describes a registered scene
type SceneInfo struct {
	Name        string
	Description string
	build       Builder
}

// registry lists the built-in scenes in display order
var registry = []SceneInfo{
	{"cornell", "Cornell box with a rotated block and a glass sphere", NewCornellScene},
	{"cornell-smoke", "Cornell box with two blocks of smoke", NewCornellSmokeScene},
	{"spheres", "Random spheres over a checkered ground, with motion blur and defocus", NewSpheresScene},
	{"perlin", "Two spheres with a Perlin marble texture", NewPerlinScene},
	{"quads", "Five colored quads facing the camera", NewQuadsScene},
	{"simple-light", "Perlin spheres lit by a sphere light and a quad light", NewSimpleLightScene},
	{"textures", "Image-mapped planet under a checkered area light", NewTexturesScene},
}

var logger = log.New("scene")

// List returns every registered scene in display order
func List() []SceneInfo {
	return append([]SceneInfo(nil), registry...)
}

// Names returns the names of the registered scenes in display order
func Names() []string {
	names := make([]string, len(registry))
	for i, info := range registry {
		names[i] = info.Name
	}
	return names
}

// Create builds the named scene
func Create(name string, seed uint64) (*Scene, error) {
	for _, info := range registry {
		if info.Name != name {
			continue
		}

		s := info.build(seed)
		logger.Debugf("built scene %q: %d primitives, %d lights", name, s.PrimitiveCount(), s.LightCount())
		return s, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
}
