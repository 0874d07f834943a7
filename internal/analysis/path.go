package analysis

import (
	"github.com/san-kum/spacesim/internal/physics"
	"github.com/san-kum/spacesim/internal/sim"
)

func CenterOfMassPath(frames []sim.Frame) []physics.Vec {
	path := make([]physics.Vec, len(frames))
	for i, f := range frames {
		path[i] = physics.CenterOfMass(f.Entities)
	}
	return path
}

// EntityPath follows one entity through the frames. Frames that do not
// contain index are skipped.
func EntityPath(frames []sim.Frame, index int) []physics.Vec {
	path := make([]physics.Vec, 0, len(frames))
	for _, f := range frames {
		if index >= 0 && index < len(f.Entities) {
			path = append(path, f.Entities[index].Position)
		}
	}
	return path
}
