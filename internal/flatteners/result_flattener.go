package flatteners

import (
	"iter"

	"flocking-report/internal/models"
)

type ResultFlattener interface {
	// Flatten yields one record per project bucket, depth first in the store's bucket order.
	// Each range over the returned sequence walks the tree again.
	Flatten(tree *models.BucketTree) iter.Seq[models.FlatRecord]
}

type resultFlattener struct{}

func NewResultFlattener() ResultFlattener {
	return &resultFlattener{}
}

func (f *resultFlattener) Flatten(tree *models.BucketTree) iter.Seq[models.FlatRecord] {
	return func(yield func(models.FlatRecord) bool) {
		if tree == nil {
			return
		}
		for _, site := range tree.Sites {
			for _, vo := range site.VOs {
				for _, probe := range vo.Probes {
					for _, project := range probe.Projects {
						record := models.FlatRecord{
							Site:    site.Key,
							VO:      vo.Key,
							Probe:   probe.Key,
							Project: project.Key,
							Hours:   project.CoreHours,
						}
						if !yield(record) {
							return
						}
					}
				}
			}
		}
	}
}
