package main

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hubastard/glcanvas/engine/colors"
	"github.com/hubastard/glcanvas/engine/scene"
)

// demoScene is a small grid of cubes under linear fog and a diffuse
// color material.
func demoScene() *scene.Scene {
	s := scene.New()

	ambient := colors.Gray
	s.AmbientLight = &ambient

	s.ColorMaterialFace = scene.FaceFrontAndBack
	s.ColorMaterialMode = scene.ModeAmbientAndDiffuse
	specular := colors.White
	s.MaterialSpecular = &specular
	s.SetShininess(32)

	fog := colors.Fog
	s.FogMode = scene.FogLinear
	s.FogStart = 4
	s.FogEnd = 30
	s.FogColor = &fog

	palette := []colors.Color{colors.Red, colors.Green, colors.Blue}
	for i := -2; i <= 2; i++ {
		for j := -2; j <= 2; j++ {
			cube := scene.Cube(0.8, palette[(i+j+4)%len(palette)])
			cube.Transform = mgl32.Translate3D(float32(i)*2, 0, float32(j)*2)
			s.Objects = append(s.Objects, cube)
		}
	}
	return s
}
