package advanced

import "math"

// PrecisionModel specifies the grid that coordinates live on. A floating
// model leaves coordinates untouched (full float64 precision); a fixed model
// with scale S rounds every ordinate to the nearest multiple of 1/S. The
// noding core treats this purely as an injected strategy: the line
// intersector uses it to round computed intersection points, and the snap
// rounders use its scale to map into the integer domain and back.
type PrecisionModel struct {
	scale float64
}

// NewFloatingPrecisionModel creates a model with no rounding at all.
func NewFloatingPrecisionModel() *PrecisionModel {
	return &PrecisionModel{}
}

// NewFixedPrecisionModel creates a model whose grid spacing is 1/scale.
func NewFixedPrecisionModel(scale float64) *PrecisionModel {
	if scale <= 0 {
		fatalf("precision model scale must be positive, got %v", scale)
	}
	return &PrecisionModel{scale: scale}
}

func (pm *PrecisionModel) IsFloating() bool {
	return pm.scale == 0
}

func (pm *PrecisionModel) Scale() float64 {
	return pm.scale
}

// MakePrecise rounds the coordinate onto the model's grid, in place. Rounding
// is half-away-from-zero, so a fixed model with scale 1 maps 0.5 to 1.
func (pm *PrecisionModel) MakePrecise(c Coord) {
	if pm.IsFloating() {
		return
	}
	c[0] = math.Round(c[0]*pm.scale) / pm.scale
	c[1] = math.Round(c[1]*pm.scale) / pm.scale
}
