// Package scene defines the read-only scene description handed to the
// validation engine, plus the JSON loader that stands in for a host-editor
// adapter. The engine never queries a live editor; everything it needs is
// captured here once per scan.
package scene

// Object is a read-only view of one scene object. All measurements are
// taken by the adapter before the scan starts; rules only read them.
type Object struct {
	// Name identifies the object. An object without a name is malformed
	// and cannot be evaluated.
	Name string `json:"name"`

	// Collections lists the names of every collection the object belongs to.
	Collections []string `json:"collections,omitempty"`

	// IsHighPoly marks sculpt/bake sources. Set once at load from the
	// naming markers (see FlagHighPoly) or explicitly by the adapter;
	// never mutated by the engine.
	IsHighPoly bool `json:"is_high_poly,omitempty"`

	Geometry  *Geometry  `json:"geometry,omitempty"`
	UV        *UV        `json:"uv,omitempty"`
	Textures  []Texture  `json:"textures,omitempty"`
	Modifiers []Modifier `json:"modifiers,omitempty"`
	Armature  *Armature  `json:"armature,omitempty"`
}

// HasArmature reports whether rigging checks apply to this object.
func (o *Object) HasArmature() bool {
	return o.Armature != nil
}

// Geometry summarizes mesh topology and transform state.
type Geometry struct {
	VertexCount int `json:"vertex_count"`
	FaceCount   int `json:"face_count"`
	EdgeCount   int `json:"edge_count"`

	NGonCount        int `json:"ngon_count"`
	NonManifoldEdges int `json:"non_manifold_edges"`
	StrayVertices    int `json:"stray_vertices"`
	DoubleVertices   int `json:"double_vertices"`

	// FlippedNormals is set when any face normal points into the mesh.
	FlippedNormals bool `json:"flipped_normals,omitempty"`

	LocationApplied bool `json:"location_applied"`
	RotationApplied bool `json:"rotation_applied"`
	ScaleApplied    bool `json:"scale_applied"`
}

// UV summarizes the active UV layer of a mesh.
type UV struct {
	HasUV       bool `json:"has_uv"`
	SeamsMarked bool `json:"seams_marked"`
	IslandCount int  `json:"island_count"`

	// DensityRatio is total UV area over total face area (px/cm at the
	// working texture size). DensityAverage and DensityStdDev are computed
	// across per-island texel density samples.
	DensityRatio   float64 `json:"density_ratio"`
	DensityAverage float64 `json:"density_average"`
	DensityStdDev  float64 `json:"density_std_dev"`

	// Utilization is the percentage of 0-1 UV space covered by the
	// layout's bounding box. Overflow is set when any coordinate leaves
	// the 0-1 square.
	Utilization float64 `json:"utilization"`
	Overflow    bool    `json:"overflow,omitempty"`
}

// Texture is image metadata only; pixel data is never read.
type Texture struct {
	Name   string `json:"name"`
	Width  int    `json:"width"`
	Height int    `json:"height"`

	// Maps lists map types the adapter detected on the material
	// (e.g. "Diffuse", "Normal"). When empty, map type is inferred from
	// the filename suffix.
	Maps []string `json:"maps,omitempty"`
}

// Modifier is one entry in an object's modifier stack.
type Modifier struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Applied bool   `json:"applied"`
}

// Armature summarizes the rig bound to an object.
type Armature struct {
	BoneCount      int      `json:"bone_count"`
	BoneNames      []string `json:"bone_names,omitempty"`
	HierarchyClean bool     `json:"hierarchy_clean"`
	HasConstraints bool     `json:"has_constraints,omitempty"`
	HasDrivers     bool     `json:"has_drivers,omitempty"`
}

// Collection is a node in the collection graph. Children reference other
// collections by name; the graph may be arbitrarily deep and the engine
// tolerates cycles.
type Collection struct {
	Name     string   `json:"name"`
	Children []string `json:"children,omitempty"`
}

// Scene is the complete read-only scene description for one scan.
type Scene struct {
	// ActiveObject names the object an OBJECT-scope scan targets when the
	// caller does not name one explicitly.
	ActiveObject string `json:"active_object,omitempty"`

	Collections []Collection `json:"collections,omitempty"`
	Objects     []Object     `json:"objects"`
}

// CollectionByName returns the named collection, or nil.
func (s *Scene) CollectionByName(name string) *Collection {
	for i := range s.Collections {
		if s.Collections[i].Name == name {
			return &s.Collections[i]
		}
	}
	return nil
}

// ObjectByName returns the named object, or nil.
func (s *Scene) ObjectByName(name string) *Object {
	for i := range s.Objects {
		if s.Objects[i].Name == name {
			return &s.Objects[i]
		}
	}
	return nil
}
