package model

// BuildSkeleton creates a line mesh of the current poses: one vertex per
// node at its posed pivot and one line from each node to its parent.
func BuildSkeleton(inst *Instance) *SkeletonMesh {
	poses := inst.Poses()
	if len(poses) == 0 {
		return nil
	}

	mesh := &SkeletonMesh{
		Vertices: make([]Vertex, 0, len(poses)),
		Bounds:   emptyBounds(),
	}
	for i := range poses {
		pos := poses[i].Position()
		mesh.Vertices = append(mesh.Vertices, Vertex{Position: pos, Node: i})
		mesh.Bounds.extend(pos)
	}
	for i := range poses {
		if p := poses[i].Parent; p >= 0 {
			mesh.Indices = append(mesh.Indices, uint32(p), uint32(i))
		}
	}
	return mesh
}
