package canvas

import (
	"github.com/hubastard/glcanvas/engine/core"
	"github.com/hubastard/glcanvas/engine/glu"
	"github.com/hubastard/glcanvas/engine/scene"
)

// applyDefaults installs the one-shot context state every canvas starts with.
func applyDefaults(g Graphics, cfg core.Config) {
	g.ClearColor(cfg.ClearColor)
	g.PerspectiveCorrectionNicest()
	g.ClearDepth(1.0)
	g.LineWidth(cfg.LineWidth)
	g.Enable(CapDepthTest)
}

// applyScene installs lighting, material and fog state from s. Unset
// enums leave the context defaults alone.
func applyScene(g Graphics, s *scene.Scene) {
	if s.AmbientLight != nil {
		g.Enable(CapLighting)
		g.LightModelAmbient(*s.AmbientLight)
	}
	if s.ColorMaterialFace != scene.FaceUnset {
		applyMaterial(g, s)
	}
	if s.FogMode != scene.FogUnset {
		applyFog(g, s)
	}
}

func applyMaterial(g Graphics, s *scene.Scene) {
	face := s.ColorMaterialFace
	g.Enable(CapColorMaterial)
	if face != scene.FaceUnset {
		g.ColorMaterial(face, s.ColorMaterialMode)
	}
	if s.MaterialAmbient != nil {
		g.Material(face, MaterialAmbient, *s.MaterialAmbient)
	}
	if s.MaterialDiffuse != nil {
		g.Material(face, MaterialDiffuse, *s.MaterialDiffuse)
	}
	if s.MaterialSpecular != nil {
		g.Material(face, MaterialSpecular, *s.MaterialSpecular)
	}
	if s.MaterialEmission != nil {
		g.Material(face, MaterialEmission, *s.MaterialEmission)
	}
	if s.MaterialShininess != nil {
		g.Shininess(face, *s.MaterialShininess)
	}
}

func applyFog(g Graphics, s *scene.Scene) {
	g.Enable(CapFog)
	g.FogMode(s.FogMode)
	if !glu.EpsilonEquals(s.FogDensity, 1) {
		g.Fog(FogDensity, s.FogDensity)
	}
	if !glu.EpsilonEquals(s.FogStart, 0) {
		g.Fog(FogStart, s.FogStart)
	}
	if !glu.EpsilonEquals(s.FogEnd, 1) {
		g.Fog(FogEnd, s.FogEnd)
	}
	if !glu.EpsilonEquals(s.FogIndex, 0) {
		g.Fog(FogIndex, s.FogIndex)
	}
	if s.FogColor != nil {
		g.FogColor(*s.FogColor)
	}
}
