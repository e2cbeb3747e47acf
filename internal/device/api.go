// internal/device/api.go
package device

import (
	"context"
	"crypto/tls"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ConnectInfo holds the fields required to open a live API session.
// Keys match the execution-context keys they are decoded from.
type ConnectInfo struct {
	Hostname string `mapstructure:"hostname"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Port     string `mapstructure:"port"`
}

// APISession is a live session against an appliance XML API. It is created
// connected (Connect performs key generation up front) and stays connected
// for its lifetime.
type APISession struct {
	info   ConnectInfo
	client *http.Client
	apiKey string
}

type apiResponse struct {
	Status string `xml:"status,attr"`
	Result struct {
		Key   string `xml:"key"`
		Inner string `xml:",innerxml"`
	} `xml:"result"`
	Msg string `xml:"msg>line"`
}

// Connect opens a session to the appliance and generates an API key.
// Timeout policy lives in the HTTP client; no retries at this layer.
func Connect(ctx context.Context, info ConnectInfo) (*APISession, error) {
	if info.Port == "" {
		info.Port = "443"
	}
	s := &APISession{
		info: info,
		client: &http.Client{
			Timeout: 60 * time.Second,
			Transport: &http.Transport{
				// Appliance management interfaces commonly run self-signed certs
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
			},
		},
	}

	resp, err := s.call(ctx, url.Values{
		"type":     {"keygen"},
		"user":     {info.Username},
		"password": {info.Password},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate to %s: %w", info.Hostname, err)
	}
	if resp.Result.Key == "" {
		return nil, fmt.Errorf("no API key in keygen response from %s", info.Hostname)
	}
	s.apiKey = resp.Result.Key
	return s, nil
}

func (s *APISession) endpoint() string {
	return fmt.Sprintf("https://%s:%s/api/", s.info.Hostname, s.info.Port)
}

func (s *APISession) call(ctx context.Context, params url.Values) (*apiResponse, error) {
	if s.apiKey != "" {
		params.Set("key", s.apiKey)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint(),
		strings.NewReader(params.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	httpResp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("device API returned HTTP %d", httpResp.StatusCode)
	}

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, err
	}

	var parsed apiResponse
	if err := xml.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("invalid device API response: %w", err)
	}
	if parsed.Status != "success" {
		if parsed.Msg != "" {
			return nil, fmt.Errorf("device API error: %s", parsed.Msg)
		}
		return nil, fmt.Errorf("device API returned status %q", parsed.Status)
	}
	return &parsed, nil
}

func (s *APISession) Connected() bool {
	return s.apiKey != ""
}

// Configuration fetches the full running configuration document.
func (s *APISession) Configuration(ctx context.Context) (string, error) {
	if !s.Connected() {
		return "", fmt.Errorf("not connected to %s", s.info.Hostname)
	}
	resp, err := s.call(ctx, url.Values{
		"type": {"op"},
		"cmd":  {"<show><config><running></running></config></show>"},
	})
	if err != nil {
		return "", fmt.Errorf("failed to fetch configuration from %s: %w", s.info.Hostname, err)
	}
	return strings.TrimSpace(resp.Result.Inner), nil
}
