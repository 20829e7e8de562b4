package render

import "image/color"

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	onRGBA := color.RGBAModel.Convert(on).(color.RGBA)
	offRGBA := color.RGBAModel.Convert(off).(color.RGBA)
	for i, c := range cells {
		px := offRGBA
		if c != 0 {
			px = onRGBA
		}
		base := i * 4
		buf[base+0] = px.R
		buf[base+1] = px.G
		buf[base+2] = px.B
		buf[base+3] = px.A
	}
}
