package glbackend

import (
	"github.com/go-gl/gl/v2.1/gl"
	"github.com/hubastard/glcanvas/engine/canvas"
	"github.com/hubastard/glcanvas/engine/scene"
)

// Scene enums map onto GL enums. The Unset values have no GL counterpart:
// they mean the state is left at the context default, so each converter
// reports ok=false for them.

func glFace(f scene.Face) (uint32, bool) {
	switch f {
	case scene.FaceFront:
		return gl.FRONT, true
	case scene.FaceBack:
		return gl.BACK, true
	case scene.FaceFrontAndBack:
		return gl.FRONT_AND_BACK, true
	}
	return 0, false
}

func glColorMaterialMode(m scene.ColorMaterialMode) (uint32, bool) {
	switch m {
	case scene.ModeEmission:
		return gl.EMISSION, true
	case scene.ModeAmbient:
		return gl.AMBIENT, true
	case scene.ModeDiffuse:
		return gl.DIFFUSE, true
	case scene.ModeSpecular:
		return gl.SPECULAR, true
	case scene.ModeAmbientAndDiffuse:
		return gl.AMBIENT_AND_DIFFUSE, true
	}
	return 0, false
}

func glFogMode(m scene.FogMode) (uint32, bool) {
	switch m {
	case scene.FogLinear:
		return gl.LINEAR, true
	case scene.FogExp:
		return gl.EXP, true
	case scene.FogExp2:
		return gl.EXP2, true
	}
	return 0, false
}

func glCapability(c canvas.Capability) (uint32, bool) {
	switch c {
	case canvas.CapDepthTest:
		return gl.DEPTH_TEST, true
	case canvas.CapLighting:
		return gl.LIGHTING, true
	case canvas.CapColorMaterial:
		return gl.COLOR_MATERIAL, true
	case canvas.CapFog:
		return gl.FOG, true
	}
	return 0, false
}

func glMaterialParam(p canvas.MaterialParam) (uint32, bool) {
	switch p {
	case canvas.MaterialAmbient:
		return gl.AMBIENT, true
	case canvas.MaterialDiffuse:
		return gl.DIFFUSE, true
	case canvas.MaterialSpecular:
		return gl.SPECULAR, true
	case canvas.MaterialEmission:
		return gl.EMISSION, true
	}
	return 0, false
}

func glFogParam(p canvas.FogParam) (uint32, bool) {
	switch p {
	case canvas.FogDensity:
		return gl.FOG_DENSITY, true
	case canvas.FogStart:
		return gl.FOG_START, true
	case canvas.FogEnd:
		return gl.FOG_END, true
	case canvas.FogIndex:
		return gl.FOG_INDEX, true
	}
	return 0, false
}
