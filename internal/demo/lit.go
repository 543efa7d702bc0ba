package demo

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"bifrost-engine/internal/camera"
)

// litBox draws unit cubes with one directional light plus ambient. The mesh and shader are
// created on first draw so GPU resources are allocated after the window exists.
type litBox struct {
	loaded   bool
	mesh     rl.Mesh
	mtl      rl.Material
	viewPos  [3]float32
	lightDir [3]float32

	viewPosLoc  int32
	lightDirLoc int32
}

const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragPosition;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`
	litFS = `#version 330
in vec3 fragPosition;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightDir;
out vec4 finalColor;
void main() {
  vec3 N = normalize(fragNormal);
  vec3 L = normalize(lightDir);
  vec3 V = normalize(viewPos - fragPosition);
  float NdotL = max(dot(N, L), 0.0);
  vec3 diffuse = colDiffuse.rgb * NdotL * 0.75;
  vec3 amb = vec3(0.2, 0.22, 0.26) * colDiffuse.rgb;
  float spec = pow(max(dot(N, normalize(L + V)), 0.0), 48.0) * 0.35;
  finalColor = vec4(amb + diffuse + vec3(spec) * step(0.0, NdotL), colDiffuse.a);
}
`
)

func newLitBox() *litBox {
	return &litBox{lightDir: [3]float32{0.5, 1, 0.5}}
}

func (b *litBox) ensure() {
	if b.loaded {
		return
	}
	b.loaded = true
	b.mesh = rl.GenMeshCube(1, 1, 1)
	b.mtl = rl.LoadMaterialDefault()
	b.viewPosLoc, b.lightDirLoc = -1, -1
	if shader := rl.LoadShaderFromMemory(litVS, litFS); rl.IsShaderValid(shader) {
		b.mtl.Shader = shader
		b.viewPosLoc = rl.GetShaderLocation(shader, "viewPos")
		b.lightDirLoc = rl.GetShaderLocation(shader, "lightDir")
	}
}

// setView sets the camera position for specular highlights. Call once per frame before draw.
func (b *litBox) setView(eye camera.Vec3) {
	b.ensure()
	b.viewPos = eye.Array()
	// cgo-safe: local arrays
	viewPos := b.viewPos
	lightDir := b.lightDir
	if b.viewPosLoc >= 0 {
		rl.SetShaderValueV(b.mtl.Shader, b.viewPosLoc, viewPos[:], rl.ShaderUniformVec3, 1)
	}
	if b.lightDirLoc >= 0 {
		rl.SetShaderValueV(b.mtl.Shader, b.lightDirLoc, lightDir[:], rl.ShaderUniformVec3, 1)
	}
}

// draw draws a box centered at position. Must be called between BeginMode3D and EndMode3D.
func (b *litBox) draw(position, scale [3]float32, tint rl.Color) {
	b.ensure()
	if albedo := b.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = tint
	}
	transform := rl.MatrixMultiply(
		rl.MatrixScale(scale[0], scale[1], scale[2]),
		rl.MatrixTranslate(position[0], position[1], position[2]),
	)
	rl.DrawMesh(b.mesh, b.mtl, transform)
}
