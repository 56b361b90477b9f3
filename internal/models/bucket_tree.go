package models

// BucketTree is the decoded result of an AggregationRequest.
// Bucket order is whatever the store returned.
//
// Example JSON (as returned by the store under "aggregations"):
//
//	{
//	  "group_Site": {"buckets": [{"key": "A",
//	    "group_VOName": {"buckets": [{"key": "VO1",
//	      "group_ProbeName": {"buckets": [{"key": "P1",
//	        "group_ProjectName": {"buckets": [
//	          {"key": "Proj1", "CoreHours_sum": {"value": 10.0}},
//	          {"key": "Proj2", "CoreHours_sum": {"value": 5.0}}
//	        ]}}]}}]}}]}
//	}
type BucketTree struct {
	Sites []SiteBucket
}

type SiteBucket struct {
	Key string
	VOs []VOBucket
}

type VOBucket struct {
	Key    string
	Probes []ProbeBucket
}

type ProbeBucket struct {
	Key      string
	Projects []ProjectBucket
}

type ProjectBucket struct {
	Key       string
	CoreHours float64
}
