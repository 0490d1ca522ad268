// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package source

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/z5labs/partial/internal/try"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/sony/gobreaker"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type remoteOptions struct {
	optional   bool
	transport  http.RoundTripper
	tp         trace.TracerProvider
	timeout    time.Duration
	retryLog   *zap.Logger
	maxRetries int
	waitMin    time.Duration
	waitMax    time.Duration
	circuitLog *zap.Logger
	tripCount  uint32
	openFor    time.Duration
}

// RemoteOption configures a Remote source.
type RemoteOption func(*remoteOptions)

// RemoteOptional makes a 404 Not Found response apply nothing instead of failing.
func RemoteOptional() RemoteOption {
	return func(ro *remoteOptions) {
		ro.optional = true
	}
}

// RemoteTransport sets the [http.RoundTripper] requests are sent with.
func RemoteTransport(rt http.RoundTripper) RemoteOption {
	return func(ro *remoteOptions) {
		ro.transport = rt
	}
}

// RemoteTracerProvider sets the provider used to trace every request attempt.
// The global provider is used by default.
func RemoteTracerProvider(tp trace.TracerProvider) RemoteOption {
	return func(ro *remoteOptions) {
		ro.tp = tp
	}
}

// RemoteTimeout bounds a single request attempt.
func RemoteTimeout(d time.Duration) RemoteOption {
	return func(ro *remoteOptions) {
		ro.timeout = d
	}
}

// RetryAttemptLogger logs every request attempt and response.
func RetryAttemptLogger(logger *zap.Logger) RemoteOption {
	return func(ro *remoteOptions) {
		ro.retryLog = logger
	}
}

// MaxRetries sets how many times a failed request is retried.
func MaxRetries(n int) RemoteOption {
	return func(ro *remoteOptions) {
		ro.maxRetries = n
	}
}

// RetryWait sets the minimum and maximum backoff between attempts.
func RetryWait(min, max time.Duration) RemoteOption {
	return func(ro *remoteOptions) {
		ro.waitMin = min
		ro.waitMax = max
	}
}

// CircuitLogger logs circuit breaker state changes.
func CircuitLogger(logger *zap.Logger) RemoteOption {
	return func(ro *remoteOptions) {
		ro.circuitLog = logger
	}
}

// CircuitTripCount determines the number of consecutive failures required to trip the circuit.
func CircuitTripCount(n uint32) RemoteOption {
	return func(ro *remoteOptions) {
		ro.tripCount = n
	}
}

// CircuitTimeout is the period of the open state, after which the circuit becomes half-open.
func CircuitTimeout(d time.Duration) RemoteOption {
	return func(ro *remoteOptions) {
		ro.openFor = d
	}
}

// UnexpectedStatusError occurs when a remote config document
// is answered with a non 200 status code.
type UnexpectedStatusError struct {
	URL        string
	StatusCode int
}

// Error implements the [builtin.error] interface.
func (e UnexpectedStatusError) Error() string {
	return fmt.Sprintf("unexpected status code %d from %s", e.StatusCode, e.URL)
}

var errServerStatus = errors.New("server error status code")

// Remote represents a Source backed by a config document served over HTTP.
type Remote struct {
	url      string
	format   Format
	optional bool
	client   *http.Client
}

// FromURL returns a Source which fetches the document at url and parses it as format.
// Requests are retried with backoff and guarded by a circuit breaker which
// counts transport failures and 5xx responses. Every attempt is traced as an
// HTTP client span and carries the trace context to the server.
func FromURL(url string, format Format, opts ...RemoteOption) *Remote {
	ro := &remoteOptions{
		transport:  http.DefaultTransport,
		retryLog:   zap.NewNop(),
		maxRetries: 2,
		waitMin:    100 * time.Millisecond,
		waitMax:    5 * time.Second,
		circuitLog: zap.NewNop(),
		tripCount:  5,
		openFor:    60 * time.Second,
	}
	for _, opt := range opts {
		opt(ro)
	}

	return &Remote{
		url:      url,
		format:   format,
		optional: ro.optional,
		client:   newRemoteClient(url, ro),
	}
}

func newRemoteClient(url string, ro *remoteOptions) *http.Client {
	var otelOpts []otelhttp.Option
	if ro.tp != nil {
		otelOpts = append(otelOpts, otelhttp.WithTracerProvider(ro.tp))
	}

	circuitLog := ro.circuitLog.Named(url)
	rt := &circuitRoundTripper{
		RoundTripper: otelhttp.NewTransport(ro.transport, otelOpts...),
		cb: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        url,
			MaxRequests: 1,
			Timeout:     ro.openFor,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= ro.tripCount
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				switch to {
				case gobreaker.StateOpen:
					circuitLog.Error("circuit has been opened")
				case gobreaker.StateHalfOpen:
					circuitLog.Warn("circuit is now half open and letting a request through")
				case gobreaker.StateClosed:
					circuitLog.Info("circuit has been closed")
				}
			},
		}),
	}

	log := ro.retryLog
	rc := retryablehttp.Client{
		HTTPClient: &http.Client{
			Timeout:   ro.timeout,
			Transport: rt,
		},
		Logger:       nil,
		RetryWaitMin: ro.waitMin,
		RetryWaitMax: ro.waitMax,
		RetryMax:     ro.maxRetries,
		RequestLogHook: func(l retryablehttp.Logger, req *http.Request, i int) {
			log.Info("sending http request", zap.String("url", req.URL.String()), zap.Int("request_attempt_count", i))
		},
		ResponseLogHook: func(l retryablehttp.Logger, resp *http.Response) {
			log.Info("received http response", zap.String("url", resp.Request.URL.String()), zap.Int("http_status_code", resp.StatusCode))
		},
		CheckRetry:   retryablehttp.DefaultRetryPolicy,
		Backoff:      retryablehttp.DefaultBackoff,
		ErrorHandler: retryablehttp.PassthroughErrorHandler,
	}
	return rc.StandardClient()
}

// Apply implements the Source interface.
func (src *Remote) Apply(ctx context.Context, store Store) (err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.url, nil)
	if err != nil {
		return err
	}

	resp, err := src.client.Do(req)
	if err != nil {
		return err
	}
	if resp.StatusCode == http.StatusNotFound && src.optional {
		defer try.Close(&err, resp.Body)
		return nil
	}
	if resp.StatusCode != http.StatusOK {
		defer try.Close(&err, resp.Body)
		return UnexpectedStatusError{URL: src.url, StatusCode: resp.StatusCode}
	}
	return src.format.Source(resp.Body).Apply(ctx, store)
}

type circuitRoundTripper struct {
	http.RoundTripper
	cb *gobreaker.CircuitBreaker
}

func (rt *circuitRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	v, err := rt.cb.Execute(func() (interface{}, error) {
		resp, err := rt.RoundTripper.RoundTrip(req)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode >= http.StatusInternalServerError {
			// counted as a failure by the breaker but still returned to the caller
			return resp, errServerStatus
		}
		return resp, nil
	})
	resp, _ := v.(*http.Response)
	if resp != nil {
		return resp, nil
	}
	return nil, err
}
