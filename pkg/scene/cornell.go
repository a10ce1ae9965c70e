package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// NewCornellScene creates the classic Cornell box with a rotated white block and a glass sphere.
// Both the ceiling light and the glass sphere are sampled directly.
func NewCornellScene(seed uint64) *Scene {
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	light := material.NewDiffuseLight(core.NewVec3(15, 15, 15))

	world := geometry.NewHittableList(cornellWalls()...)

	// Ceiling light, facing down
	ceilingLight := geometry.NewQuad(
		core.NewVec3(343, 554, 332), // corner
		core.NewVec3(-130, 0, 0),    // u
		core.NewVec3(0, 0, -105),    // v
		light,
	)
	world.Add(ceilingLight)

	// Tall block, turned toward the camera
	var block geometry.Hittable = geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white)
	block = geometry.NewRotateY(block, 15)
	block = geometry.NewTranslate(block, core.NewVec3(265, 0, 295))
	world.Add(block)

	glass := geometry.NewSphere(core.NewVec3(190, 90, 190), 90, material.NewDielectric(1.5))
	world.Add(glass)

	return &Scene{
		World:  geometry.NewBVHFromList(world),
		Lights: geometry.NewHittableList(ceilingLight, glass),
		Camera: cornellCamera(100),
	}
}

// NewCornellSmokeScene fills the Cornell box with a block of dark smoke and a block of white fog
func NewCornellSmokeScene(seed uint64) *Scene {
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	light := material.NewDiffuseLight(core.NewVec3(7, 7, 7))

	world := geometry.NewHittableList(cornellWalls()...)

	ceilingLight := geometry.NewQuad(
		core.NewVec3(113, 554, 127), // corner
		core.NewVec3(330, 0, 0),     // u
		core.NewVec3(0, 0, 305),     // v
		light,
	)
	world.Add(ceilingLight)

	var tall geometry.Hittable = geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white)
	tall = geometry.NewRotateY(tall, 15)
	tall = geometry.NewTranslate(tall, core.NewVec3(265, 0, 295))

	var short geometry.Hittable = geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white)
	short = geometry.NewRotateY(short, -18)
	short = geometry.NewTranslate(short, core.NewVec3(130, 0, 65))

	world.Add(geometry.NewConstantMedium(tall, 0.01, core.NewVec3(0, 0, 0)))
	world.Add(geometry.NewConstantMedium(short, 0.01, core.NewVec3(1, 1, 1)))

	return &Scene{
		World:  geometry.NewBVHFromList(world),
		Lights: geometry.NewHittableList(ceilingLight),
		Camera: cornellCamera(200),
	}
}
