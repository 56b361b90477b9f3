package models

// FlatRecord is one leaf path of a BucketTree.
type FlatRecord struct {
	Site    string  `json:"site"`
	VO      string  `json:"vo"`
	Probe   string  `json:"probe"`
	Project string  `json:"project"`
	Hours   float64 `json:"hours"`
}

// Less orders records by (Site, VO, Probe, Project).
func (r FlatRecord) Less(other FlatRecord) bool {
	if r.Site != other.Site {
		return r.Site < other.Site
	}
	if r.VO != other.VO {
		return r.VO < other.VO
	}
	if r.Probe != other.Probe {
		return r.Probe < other.Probe
	}
	return r.Project < other.Project
}
