package logger

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
)

type endpointStat struct {
	requests int64
	bytes    int64
}

var (
	errorsClient   int64
	errorsAnalysis int64
	warnsClient    int64
	warnsAnalysis  int64
	networkFetches int64
	cacheHits      int64
	retriesIssued  int64
	parseFailures  int64
	endpoints      sync.Map // map[string]*endpointStat
)

func recordWarn(component string) {
	if component == "fio" {
		atomic.AddInt64(&warnsClient, 1)
	} else if component == "analysis" {
		atomic.AddInt64(&warnsAnalysis, 1)
	}
}

func recordError(component string) {
	if component == "fio" {
		atomic.AddInt64(&errorsClient, 1)
	} else if component == "analysis" {
		atomic.AddInt64(&errorsAnalysis, 1)
	}
}

// IncrementNetworkFetch records one upstream request together with the size of
// the body it returned.
func IncrementNetworkFetch(endpoint string, size int) {
	atomic.AddInt64(&networkFetches, 1)
	recordEndpoint(endpoint, size)
}

// IncrementCacheHit records a request served from the on-disk response cache.
func IncrementCacheHit(endpoint string, size int) {
	atomic.AddInt64(&cacheHits, 1)
	recordEndpoint(endpoint, size)
}

// IncrementRetry records a single 429 backoff sleep.
func IncrementRetry() {
	atomic.AddInt64(&retriesIssued, 1)
}

// IncrementParseFailure records a response body that failed to decode.
func IncrementParseFailure() {
	atomic.AddInt64(&parseFailures, 1)
}

func recordEndpoint(name string, size int) {
	v, _ := endpoints.LoadOrStore(name, &endpointStat{})
	es := v.(*endpointStat)
	atomic.AddInt64(&es.requests, 1)
	atomic.AddInt64(&es.bytes, int64(size))
}

func startReport(ctx context.Context, log *Log, interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		for {
			select {
			case <-ctx.Done():
				ticker.Stop()
				return
			case <-ticker.C:
				logReport(ctx, log)
			}
		}
	}()
}

// StartReport begins periodic logging of client and runtime statistics.
// It exposes the internal startReport function for use by other packages.
func StartReport(ctx context.Context, log *Log, interval time.Duration) {
	startReport(ctx, log, interval)
}

func logReport(ctx context.Context, log *Log) {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	endpointData := map[string]map[string]int64{}
	endpoints.Range(func(k, v any) bool {
		name := k.(string)
		es := v.(*endpointStat)
		endpointData[name] = map[string]int64{
			"requests": atomic.LoadInt64(&es.requests),
			"bytes":    atomic.LoadInt64(&es.bytes),
		}
		return true
	})

	fields := Fields{
		"errors_client":   atomic.LoadInt64(&errorsClient),
		"errors_analysis": atomic.LoadInt64(&errorsAnalysis),
		"warns_client":    atomic.LoadInt64(&warnsClient),
		"warns_analysis":  atomic.LoadInt64(&warnsAnalysis),
		"network_fetches": atomic.LoadInt64(&networkFetches),
		"cache_hits":      atomic.LoadInt64(&cacheHits),
		"retries_issued":  atomic.LoadInt64(&retriesIssued),
		"parse_failures":  atomic.LoadInt64(&parseFailures),
		"goroutines":      runtime.NumGoroutine(),
		"heap_mb":         int64(memStats.HeapAlloc) / 1024 / 1024,
		"endpoints":       endpointData,
	}

	log.WithComponent("report").WithFields(fields).Info("runtime report")

	var data []cwtypes.MetricDatum
	data = append(data,
		cwtypes.MetricDatum{MetricName: aws.String("NetworkFetches"), Unit: cwtypes.StandardUnitCount, Value: aws.Float64(float64(fields["network_fetches"].(int64)))},
		cwtypes.MetricDatum{MetricName: aws.String("CacheHits"), Unit: cwtypes.StandardUnitCount, Value: aws.Float64(float64(fields["cache_hits"].(int64)))},
		cwtypes.MetricDatum{MetricName: aws.String("RetriesIssued"), Unit: cwtypes.StandardUnitCount, Value: aws.Float64(float64(fields["retries_issued"].(int64)))},
		cwtypes.MetricDatum{MetricName: aws.String("ParseFailures"), Unit: cwtypes.StandardUnitCount, Value: aws.Float64(float64(fields["parse_failures"].(int64)))},
		cwtypes.MetricDatum{MetricName: aws.String("ErrorsClient"), Unit: cwtypes.StandardUnitCount, Value: aws.Float64(float64(fields["errors_client"].(int64)))},
		cwtypes.MetricDatum{MetricName: aws.String("ErrorsAnalysis"), Unit: cwtypes.StandardUnitCount, Value: aws.Float64(float64(fields["errors_analysis"].(int64)))},
		cwtypes.MetricDatum{MetricName: aws.String("HeapMB"), Unit: cwtypes.StandardUnitMegabytes, Value: aws.Float64(float64(memStats.HeapAlloc) / 1024 / 1024)},
	)

	for name, stats := range endpointData {
		data = append(data,
			cwtypes.MetricDatum{
				MetricName: aws.String("EndpointRequests"),
				Unit:       cwtypes.StandardUnitCount,
				Dimensions: []cwtypes.Dimension{{Name: aws.String("Endpoint"), Value: aws.String(name)}},
				Value:      aws.Float64(float64(stats["requests"])),
			},
			cwtypes.MetricDatum{
				MetricName: aws.String("EndpointBytes"),
				Unit:       cwtypes.StandardUnitBytes,
				Dimensions: []cwtypes.Dimension{{Name: aws.String("Endpoint"), Value: aws.String(name)}},
				Value:      aws.Float64(float64(stats["bytes"])),
			},
		)
	}

	publishMetrics(ctx, data)
}
