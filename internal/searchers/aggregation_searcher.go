package searchers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"flocking-report/internal/models"
	"flocking-report/internal/shared/loggers"
	"flocking-report/internal/shared/svcerrors"

	es "github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
)

// treeDepth is the number of grouping levels a BucketTree holds.
const treeDepth = 4

//go:generate mockgen -source=aggregation_searcher.go -destination=./mocks/aggregation_searcher_mock.go -package=mocks
type AggregationSearcher interface {
	// Search executes req once and decodes its aggregation reply.
	Search(ctx context.Context, req *models.AggregationRequest) (*models.BucketTree, error)
}

type aggregationSearcher struct {
	client  *es.Client
	timeout time.Duration
}

func NewAggregationSearcher(client *es.Client, timeout time.Duration) AggregationSearcher {
	return &aggregationSearcher{client: client, timeout: timeout}
}

func (s *aggregationSearcher) Search(ctx context.Context, req *models.AggregationRequest) (*models.BucketTree, error) {
	start := time.Now()
	tree, err := s.search(ctx, req)
	metricSearchDuration.WithLabelValues(svcerrors.CodeOf(err)).Observe(time.Since(start).Seconds())
	return tree, err
}

func (s *aggregationSearcher) search(ctx context.Context, req *models.AggregationRequest) (*models.BucketTree, error) {
	if len(req.Levels) != treeDepth {
		return nil, errMalformedTree("request has %d grouping levels, want %d", len(req.Levels), treeDepth)
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(req.Body()); err != nil {
		return nil, errQueryExecutionFailed(fmt.Errorf("failed to encode query: %w", err))
	}

	logger := loggers.Ctx(ctx)
	logger.Debug().
		Str(loggers.FieldIndexPattern, req.IndexPattern).
		RawJSON("query", bytes.TrimSpace(buf.Bytes())).
		Msg("executing aggregation query")

	options := []func(*esapi.SearchRequest){
		s.client.Search.WithContext(ctx),
		s.client.Search.WithIndex(req.IndexPattern),
		s.client.Search.WithBody(&buf),
	}
	if s.timeout > 0 {
		options = append(options, s.client.Search.WithTimeout(s.timeout))
	}

	res, err := s.client.Search(options...)
	if err != nil {
		return nil, errQueryExecutionFailed(err)
	}
	defer func() {
		_ = res.Body.Close()
	}()

	if res.IsError() {
		body, _ := io.ReadAll(res.Body)
		return nil, errQueryExecutionFailed(fmt.Errorf("elasticsearch returned error [%d]: %s", res.StatusCode, string(body)))
	}

	return decodeBucketTree(res.Body, req)
}

// searchReply is the part of a search response the report reads.
type searchReply struct {
	TimedOut bool `json:"timed_out"`
	Shards   struct {
		Total  int `json:"total"`
		Failed int `json:"failed"`
	} `json:"_shards"`
	Aggregations rawBucket `json:"aggregations"`
}

// rawBucket holds a bucket's key fields and its named sub-aggregations.
type rawBucket map[string]json.RawMessage

type rawAggregation struct {
	Buckets []rawBucket `json:"buckets"`
}

type rawMetric struct {
	Value *float64 `json:"value"`
}

// decodeBucketTree reads the reply using the aggregation names in req.
func decodeBucketTree(body io.Reader, req *models.AggregationRequest) (*models.BucketTree, error) {
	var reply searchReply
	if err := json.NewDecoder(body).Decode(&reply); err != nil {
		return nil, errMalformedTree("failed to decode search reply: %v", err)
	}
	if reply.TimedOut {
		return nil, errQueryExecutionFailed(fmt.Errorf("search timed out"))
	}
	if reply.Shards.Failed > 0 {
		return nil, errQueryExecutionFailed(fmt.Errorf("%d of %d shards failed", reply.Shards.Failed, reply.Shards.Total))
	}

	siteLevel, voLevel, probeLevel, projectLevel := req.Levels[0], req.Levels[1], req.Levels[2], req.Levels[3]

	sites, err := subBuckets(reply.Aggregations, siteLevel.Name)
	if err != nil {
		return nil, err
	}

	tree := &models.BucketTree{Sites: make([]models.SiteBucket, 0, len(sites))}
	for _, site := range sites {
		siteBucket := models.SiteBucket{}
		if siteBucket.Key, err = bucketKey(site, siteLevel.Name); err != nil {
			return nil, err
		}
		vos, err := subBuckets(site, voLevel.Name)
		if err != nil {
			return nil, err
		}
		for _, vo := range vos {
			voBucket := models.VOBucket{}
			if voBucket.Key, err = bucketKey(vo, voLevel.Name); err != nil {
				return nil, err
			}
			probes, err := subBuckets(vo, probeLevel.Name)
			if err != nil {
				return nil, err
			}
			for _, probe := range probes {
				probeBucket := models.ProbeBucket{}
				if probeBucket.Key, err = bucketKey(probe, probeLevel.Name); err != nil {
					return nil, err
				}
				projects, err := subBuckets(probe, projectLevel.Name)
				if err != nil {
					return nil, err
				}
				for _, project := range projects {
					projectBucket := models.ProjectBucket{}
					if projectBucket.Key, err = bucketKey(project, projectLevel.Name); err != nil {
						return nil, err
					}
					if projectBucket.CoreHours, err = metricValue(project, req.Metric.Name); err != nil {
						return nil, err
					}
					probeBucket.Projects = append(probeBucket.Projects, projectBucket)
				}
				voBucket.Probes = append(voBucket.Probes, probeBucket)
			}
			siteBucket.VOs = append(siteBucket.VOs, voBucket)
		}
		tree.Sites = append(tree.Sites, siteBucket)
	}

	return tree, nil
}

func subBuckets(parent rawBucket, name string) ([]rawBucket, error) {
	raw, ok := parent[name]
	if !ok {
		return nil, errMalformedTree("missing aggregation %q", name)
	}
	var agg rawAggregation
	if err := json.Unmarshal(raw, &agg); err != nil {
		return nil, errMalformedTree("aggregation %q: %v", name, err)
	}
	return agg.Buckets, nil
}

// bucketKey prefers key_as_string and renders numeric keys without exponent.
func bucketKey(bucket rawBucket, name string) (string, error) {
	if raw, ok := bucket["key_as_string"]; ok {
		var key string
		if err := json.Unmarshal(raw, &key); err == nil {
			return key, nil
		}
	}

	raw, ok := bucket["key"]
	if !ok {
		return "", errMalformedTree("bucket in %q has no key", name)
	}
	var key any
	if err := json.Unmarshal(raw, &key); err != nil {
		return "", errMalformedTree("bucket key in %q: %v", name, err)
	}
	switch k := key.(type) {
	case string:
		return k, nil
	case float64:
		return strconv.FormatFloat(k, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(k), nil
	default:
		return "", errMalformedTree("bucket key in %q has unsupported type %T", name, key)
	}
}

// metricValue reads a sum metric. A null value is read as 0.
func metricValue(bucket rawBucket, name string) (float64, error) {
	raw, ok := bucket[name]
	if !ok {
		return 0, errMalformedTree("missing metric %q", name)
	}
	var metric rawMetric
	if err := json.Unmarshal(raw, &metric); err != nil {
		return 0, errMalformedTree("metric %q: %v", name, err)
	}
	if metric.Value == nil {
		return 0, nil
	}
	return *metric.Value, nil
}
