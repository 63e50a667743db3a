package beamform

// computeTransmit fills DistTx for the points in r. Workers own disjoint
// ranges, so no synchronisation is needed.
func computeTransmit(ws *Workspace, r Range) {
	g := ws.Geom
	tx := g.TransmitPosition()
	dist := ws.DistTx[r.Start:r.End]
	for i := range dist {
		dist[i] = Dist(tx, g.ScanPoint(r.Start+i))
	}
}
