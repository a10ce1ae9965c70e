package scene

import (
	"image"
	"image/color"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// perlinSpheres returns a marbled ground sphere and a marbled sphere resting on it
func perlinSpheres(seed uint64) []geometry.Hittable {
	marble := material.NewTexturedLambertian(material.NewNoiseTexture(4, core.NewRandomSampler(seed, 1)))
	return []geometry.Hittable{
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
	}
}

// NewPerlinScene creates two spheres with a turbulent marble texture under an open sky
func NewPerlinScene(seed uint64) *Scene {
	return &Scene{
		World:  geometry.NewHittableList(perlinSpheres(seed)...),
		Camera: outdoorCamera(skyBackground),
	}
}

// NewSimpleLightScene lights the marble spheres with a sphere light and a quad light in the dark
func NewSimpleLightScene(seed uint64) *Scene {
	world := geometry.NewHittableList(perlinSpheres(seed)...)

	light := material.NewDiffuseLight(core.NewVec3(4, 4, 4))
	sphereLight := geometry.NewSphere(core.NewVec3(0, 7, 0), 2, light)
	quadLight := geometry.NewQuad(core.NewVec3(3, 1, -2), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), light)
	world.Add(sphereLight)
	world.Add(quadLight)

	config := outdoorCamera(core.NewVec3(0, 0, 0))
	config.LookFrom = core.NewVec3(26, 3, 6)
	config.LookAt = core.NewVec3(0, 2, 0)

	return &Scene{
		World:  world,
		Lights: geometry.NewHittableList(sphereLight, quadLight),
		Camera: config,
	}
}

// NewQuadsScene creates five colored quads surrounding the view direction
func NewQuadsScene(seed uint64) *Scene {
	leftRed := material.NewLambertian(core.NewVec3(1.0, 0.2, 0.2))
	backGreen := material.NewLambertian(core.NewVec3(0.2, 1.0, 0.2))
	rightBlue := material.NewLambertian(core.NewVec3(0.2, 0.2, 1.0))
	upperOrange := material.NewLambertian(core.NewVec3(1.0, 0.5, 0.0))
	lowerTeal := material.NewLambertian(core.NewVec3(0.2, 0.8, 0.8))

	world := geometry.NewHittableList(
		geometry.NewQuad(core.NewVec3(-3, -2, 5), core.NewVec3(0, 0, -4), core.NewVec3(0, 4, 0), leftRed),
		geometry.NewQuad(core.NewVec3(-2, -2, 0), core.NewVec3(4, 0, 0), core.NewVec3(0, 4, 0), backGreen),
		geometry.NewQuad(core.NewVec3(3, -2, 1), core.NewVec3(0, 0, 4), core.NewVec3(0, 4, 0), rightBlue),
		geometry.NewQuad(core.NewVec3(-2, 3, 1), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, 4), upperOrange),
		geometry.NewQuad(core.NewVec3(-2, -3, 5), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, -4), lowerTeal),
	)

	config := outdoorCamera(skyBackground)
	config.AspectRatio = 1.0
	config.VFov = 80
	config.LookFrom = core.NewVec3(0, 0, 9)
	config.LookAt = core.NewVec3(0, 0, 0)

	return &Scene{
		World:  world,
		Camera: config,
	}
}

// bandedPlanet paints latitude bands with a darker stripe every 30 degrees of longitude
func bandedPlanet(width, height int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	bands := []color.RGBA{
		{R: 230, G: 220, B: 200, A: 255},
		{R: 200, G: 140, B: 80, A: 255},
		{R: 160, G: 90, B: 50, A: 255},
		{R: 210, G: 180, B: 140, A: 255},
	}

	for y := 0; y < height; y++ {
		band := bands[(y*len(bands)*3/height)%len(bands)]
		for x := 0; x < width; x++ {
			c := band
			if (x*12/width)%2 == 1 {
				c.R, c.G, c.B = c.R-c.R/4, c.G-c.G/4, c.B-c.B/4
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// NewTexturesScene shows an image-mapped planet on a checkered ground under a checkered area light
func NewTexturesScene(seed uint64) *Scene {
	ground := material.NewCheckerColors(0.5, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	planet := material.NewImageTextureFromImage(bandedPlanet(128, 64))
	panel := material.NewCheckerColors(0.5, core.NewVec3(6, 6, 6), core.NewVec3(2, 2, 1.5))

	// u x v points down, so the panel shines onto the scene
	light := geometry.NewQuad(core.NewVec3(-2, 5, -2), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, 4),
		material.NewTexturedDiffuseLight(panel))

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(ground)),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, material.NewTexturedLambertian(planet)),
		light,
	)

	config := outdoorCamera(core.NewVec3(0.05, 0.05, 0.08))
	config.LookFrom = core.NewVec3(0, 3, 12)
	config.LookAt = core.NewVec3(0, 2, 0)
	config.VFov = 35

	return &Scene{
		World:  world,
		Lights: geometry.NewHittableList(light),
		Camera: config,
	}
}
