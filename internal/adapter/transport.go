// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"github.com/MKhiriev/go-threat-sync/internal/config"
	"github.com/MKhiriev/go-threat-sync/internal/logger"
	"github.com/MKhiriev/go-threat-sync/internal/utils"
	"github.com/MKhiriev/go-threat-sync/models"
)

const (
	defaultRequestTimeout  = 60 * time.Second
	defaultBreakerFailures = 5
)

type httpTransport struct {
	client         *utils.HTTPClient
	breaker        *gobreaker.CircuitBreaker
	defaultTimeout time.Duration

	logger *logger.Logger
}

// NewHTTPTransport builds a [Transport] on a resty client. Transient
// failures are retried by resty with the configured count and waits; the
// whole call, retries included, runs behind a circuit breaker that opens
// after adapterCfg.BreakerFailures consecutive server side failures.
//
// Returns an error if adapterCfg.BaseURL cannot be parsed as a URL with a host.
func NewHTTPTransport(adapterCfg config.ClientAdapter, appCfg config.ClientApp, log *logger.Logger) (Transport, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	timeout := adapterCfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	client := utils.NewHTTPClient(utils.HTTPClientOptions{
		BaseURL:          baseURL,
		Timeout:          timeout,
		RetryCount:       adapterCfg.RetryCount,
		RetryWaitTime:    adapterCfg.RetryWaitTime,
		RetryMaxWaitTime: adapterCfg.RetryMaxWaitTime,
	})
	client.SetAuthToken(strings.TrimSpace(appCfg.APIToken))

	return &httpTransport{
		client:         client,
		breaker:        newCircuitBreaker(adapterCfg, log),
		defaultTimeout: timeout,
		logger:         log,
	}, nil
}

func newCircuitBreaker(adapterCfg config.ClientAdapter, log *logger.Logger) *gobreaker.CircuitBreaker {
	failures := adapterCfg.BreakerFailures
	if failures == 0 {
		failures = defaultBreakerFailures
	}

	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "threat-intel-api",
		MaxRequests: 1,
		Timeout:     adapterCfg.BreakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		IsSuccessful: isBreakerSuccess,
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.Warn().
				Str("func", "httpTransport.breaker").
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("circuit breaker state changed")
		},
	})
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Execute implements [Transport]. req.Timeout bounds the call including
// retries; zero falls back to the configured request timeout.
func (h *httpTransport) Execute(ctx context.Context, req models.APIRequest) ([]byte, error) {
	timeout := req.Timeout
	if timeout <= 0 {
		timeout = h.defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	result, err := h.breaker.Execute(func() (any, error) {
		request := h.client.R().
			SetContext(ctx).
			SetHeaders(req.Headers)
		if len(req.Query) > 0 {
			request.SetQueryParamsFromValues(req.Query)
		}

		resp, err := request.Get(req.Path)
		if err != nil {
			return nil, classifyTransportError(ctx, err)
		}
		if err = mapHTTPError(resp); err != nil {
			return nil, err
		}
		return resp.Body(), nil
	})
	if err != nil {
		err = classifyTransportError(ctx, err)
		logger.FromContext(ctx).Debug().Err(err).
			Str("func", "httpTransport.Execute").
			Str("path", req.Path).
			Msg("api request failed")
		return nil, err
	}

	return result.([]byte), nil
}
