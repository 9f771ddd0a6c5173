package render

import "github.com/lixenwraith/snake/vmath"

func rectOf(x, y, w, h float64) vmath.Rect {
	return vmath.Rect{X: x, Y: y, W: w, H: h}
}

func ellipseOf(cx, cy, rx, ry float64) vmath.Ellipse {
	return vmath.Ellipse{CX: cx, CY: cy, RX: rx, RY: ry}
}
