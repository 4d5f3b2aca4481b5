package primitives

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"bin-viewer/internal/geom"
)

const (
	sphereRings  = 24
	sphereSlices = 24
)

// Registry maps primitive names ("cube", "sphere", "plane") to a unit mesh sharing one lit material.
// Meshes are created on first use so that GPU resources are allocated after the window exists.
type Registry struct {
	meshes   map[string]rl.Mesh
	mtl      rl.Material
	loaded   bool
	lightDir [3]float32
}

// NewRegistry returns an empty registry lit from above-front-right.
func NewRegistry() *Registry {
	return &Registry{
		meshes:   make(map[string]rl.Mesh),
		lightDir: [3]float32{0.4, 1, 0.6},
	}
}

// Unit meshes: cube 1x1x1, sphere radius 1, plane 1x1 on XZ. Size arrives through the model matrix.
func genMesh(prim string) (rl.Mesh, bool) {
	switch prim {
	case "cube":
		return rl.GenMeshCube(1, 1, 1), true
	case "sphere":
		return rl.GenMeshSphere(1, sphereRings, sphereSlices), true
	case "plane":
		return rl.GenMeshPlane(1, 1, 1, 1), true
	}
	return rl.Mesh{}, false
}

func (r *Registry) ensureMaterial() {
	if r.loaded {
		return
	}
	r.loaded = true
	r.mtl = rl.LoadMaterialDefault()
	shader := rl.LoadShaderFromMemory(litVS, litFS)
	if !rl.IsShaderValid(shader) {
		return
	}
	r.mtl.Shader = shader
	sky := []float32{1, 1, 1}
	ground := []float32{0.27, 0.27, 0.27}
	light := r.lightDir[:]
	if loc := rl.GetShaderLocation(shader, "skyColor"); loc >= 0 {
		rl.SetShaderValue(shader, loc, sky, rl.ShaderUniformVec3)
	}
	if loc := rl.GetShaderLocation(shader, "groundColor"); loc >= 0 {
		rl.SetShaderValue(shader, loc, ground, rl.ShaderUniformVec3)
	}
	if loc := rl.GetShaderLocation(shader, "lightDir"); loc >= 0 {
		rl.SetShaderValue(shader, loc, light, rl.ShaderUniformVec3)
	}
}

// Draw draws prim with the model transform m and size (box edge lengths, sphere radius in X,
// plane extent in X and Z). Must be called between BeginMode3D and EndMode3D. Unknown names are skipped.
func (r *Registry) Draw(prim string, m geom.Affine, size geom.Vec3, c color.RGBA) {
	mesh, ok := r.meshes[prim]
	if !ok {
		if mesh, ok = genMesh(prim); !ok {
			return
		}
		r.meshes[prim] = mesh
	}
	r.ensureMaterial()
	if albedo := r.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = c
	}
	sized := m.Mul(geom.Transform{Scale: size}.Matrix())
	rl.DrawMesh(mesh, r.mtl, Matrix(sized))
}

// Matrix converts an affine transform into raylib's column-major 4x4 matrix.
func Matrix(a geom.Affine) rl.Matrix {
	return rl.Matrix{
		M0: a.M[0][0], M4: a.M[0][1], M8: a.M[0][2], M12: a.T.X,
		M1: a.M[1][0], M5: a.M[1][1], M9: a.M[1][2], M13: a.T.Y,
		M2: a.M[2][0], M6: a.M[2][1], M10: a.M[2][2], M14: a.T.Z,
		M15: 1,
	}
}

// Hemisphere ambient (sky above, dark ground below) plus one directional light.
const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
uniform mat4 matNormal;
out vec3 fragNormal;
void main() {
  fragNormal = normalize(mat3(matNormal) * vertexNormal);
  gl_Position = matProjection * matView * matModel * vec4(vertexPosition, 1.0);
}
`
	litFS = `#version 330
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 skyColor;
uniform vec3 groundColor;
uniform vec3 lightDir;
out vec4 finalColor;
void main() {
  vec3 n = normalize(fragNormal);
  vec3 hemi = mix(groundColor, skyColor, n.y * 0.5 + 0.5);
  float diffuse = max(dot(n, normalize(lightDir)), 0.0);
  vec3 lit = colDiffuse.rgb * (0.55 * hemi + 0.6 * diffuse);
  finalColor = vec4(min(lit, vec3(1.0)), colDiffuse.a);
}
`
)
