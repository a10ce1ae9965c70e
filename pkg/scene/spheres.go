package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewSpheresScene scatters small random spheres around three large ones on a checkered ground.
// The diffuse spheres bounce during the shutter interval and the camera has a shallow depth of field.
func NewSpheresScene(seed uint64) *Scene {
	random := core.NewRandomSampler(seed, 0)
	objects := make([]geometry.Hittable, 0, 500)

	checker := material.NewCheckerColors(0.32, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	objects = append(objects, geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(checker)))

	clearing := core.NewVec3(4, 0.2, 0)
	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := random.Get1D()
			center := core.NewVec3(float64(a)+0.9*random.Get1D(), 0.2, float64(b)+0.9*random.Get1D())
			if center.Subtract(clearing).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				// Diffuse, bouncing up during the exposure
				albedo := random.Get3D().MultiplyVec(random.Get3D())
				center2 := center.Add(core.NewVec3(0, core.RandomInRange(random.Get1D(), 0, 0.5), 0))
				objects = append(objects, geometry.NewMovingSphere(center, center2, 0.2, material.NewLambertian(albedo)))
			case chooseMat < 0.95:
				albedo := core.NewVec3(
					core.RandomInRange(random.Get1D(), 0.5, 1),
					core.RandomInRange(random.Get1D(), 0.5, 1),
					core.RandomInRange(random.Get1D(), 0.5, 1),
				)
				fuzz := core.RandomInRange(random.Get1D(), 0, 0.5)
				objects = append(objects, geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				objects = append(objects, geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	objects = append(objects,
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)

	config := outdoorCamera(skyBackground)
	config.DefocusAngle = 0.6
	config.FocusDist = 10.0

	return &Scene{
		World:  geometry.NewBVH(objects),
		Camera: config,
	}
}
