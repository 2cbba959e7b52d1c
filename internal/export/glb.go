package export

import (
	"bytes"
	"fmt"
	"os"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"voxcast/internal/voxel"
)

// Document builds a glTF document with one mesh and node per non-empty volume.
// names, when non-nil, supplies mesh names by volume index.
func Document(vols []*voxel.Volume, names []string) *gltf.Document {
	doc := gltf.NewDocument()
	doc.Asset.Generator = "voxcast"

	pbr := &gltf.PBRMetallicRoughness{BaseColorFactor: &[4]float32{1, 1, 1, 1}, MetallicFactor: gltf.Float(0), RoughnessFactor: gltf.Float(1)}
	doc.Materials = []*gltf.Material{{PBRMetallicRoughness: pbr, AlphaMode: gltf.AlphaOpaque}}

	for i, v := range vols {
		m := BuildMesh(v)
		if len(m.Indices) == 0 {
			continue
		}
		posAccessor := modeler.WritePosition(doc, m.Positions)
		normalAccessor := modeler.WriteNormal(doc, m.Normals)
		colorAccessor := modeler.WriteColor(doc, m.Colors)
		indicesAccessor := modeler.WriteIndices(doc, m.Indices)
		prim := &gltf.Primitive{
			Attributes: map[string]uint32{
				gltf.POSITION: uint32(posAccessor),
				gltf.NORMAL:   uint32(normalAccessor),
				gltf.COLOR_0:  uint32(colorAccessor),
			},
			Indices:  gltf.Index(uint32(indicesAccessor)),
			Material: gltf.Index(0),
		}

		name := fmt.Sprintf("volume_%d", i)
		if i < len(names) && names[i] != "" {
			name = names[i]
		}
		doc.Meshes = append(doc.Meshes, &gltf.Mesh{Name: name, Primitives: []*gltf.Primitive{prim}})
		doc.Nodes = append(doc.Nodes, &gltf.Node{Name: name, Mesh: gltf.Index(uint32(len(doc.Meshes) - 1))})
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, uint32(len(doc.Nodes)-1))
	}
	return doc
}

// GLB encodes the volumes as a binary glTF.
func GLB(vols []*voxel.Volume, names []string) ([]byte, error) {
	var out bytes.Buffer
	enc := gltf.NewEncoder(&out)
	enc.AsBinary = true
	if err := enc.Encode(Document(vols, names)); err != nil {
		return nil, fmt.Errorf("export: encode glb: %w", err)
	}
	return out.Bytes(), nil
}

// SaveGLB writes the volumes to path as a .glb file.
func SaveGLB(path string, vols []*voxel.Volume, names []string) error {
	data, err := GLB(vols, names)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}
