package render

import "sandfall/internal/sims/sandbox"

var (
	backgroundColor = [3]uint8{12, 12, 16}
	actorBodyColor  = [3]uint8{235, 235, 235}
	actorBurnColor  = [3]uint8{255, 120, 30}
)

// FillSnapshotRGBA converts a sandbox snapshot into RGBA pixels. Empty
// cells get the background color, other cells their stored color, and
// actors are overdrawn last as two-cell figures.
func FillSnapshotRGBA(buf []byte, snap sandbox.Snapshot) {
	if len(buf) < 4*snap.W*snap.H || len(snap.Materials) != snap.W*snap.H {
		return
	}
	for i, m := range snap.Materials {
		base := i * 4
		if m == sandbox.Empty {
			buf[base+0] = backgroundColor[0]
			buf[base+1] = backgroundColor[1]
			buf[base+2] = backgroundColor[2]
			buf[base+3] = 0xff
			continue
		}
		c := snap.Colors[i]
		buf[base+0] = c.R
		buf[base+1] = c.G
		buf[base+2] = c.B
		buf[base+3] = 0xff
	}

	for _, a := range snap.Actors {
		if !a.Alive {
			continue
		}
		col := actorBodyColor
		if a.Burning {
			col = actorBurnColor
		}
		x, y := int(a.X), int(a.Y)
		putPixel(buf, snap.W, snap.H, x, y, col)
		putPixel(buf, snap.W, snap.H, x, y-1, col)
	}
}

func putPixel(buf []byte, w, h, x, y int, col [3]uint8) {
	if x < 0 || x >= w || y < 0 || y >= h {
		return
	}
	base := (y*w + x) * 4
	buf[base+0] = col[0]
	buf[base+1] = col[1]
	buf[base+2] = col[2]
	buf[base+3] = 0xff
}
