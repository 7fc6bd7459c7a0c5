package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.openweathermap.org"

// Client запрашивает текущую температуру в OpenWeatherMap.
type Client struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

// Configured reports whether the client has an API key to call with.
func (c *Client) Configured() bool {
	return c != nil && strings.TrimSpace(c.APIKey) != ""
}

// Fetch возвращает текущую температуру города в °C.
// Любой не-200 ответ или отсутствие поля температуры — ошибка.
func (c *Client) Fetch(ctx context.Context, city string) (float64, error) {
	base := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if base == "" {
		base = defaultBaseURL
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	u := fmt.Sprintf("%s/data/2.5/weather?q=%s&appid=%s&units=metric",
		base,
		url.QueryEscape(strings.TrimSpace(city)),
		url.QueryEscape(c.APIKey),
	)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, fmt.Errorf("create weather request: %w", err)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("execute weather request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("read weather response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("weather request failed with status %d", resp.StatusCode)
	}

	var parsed owmResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return 0, fmt.Errorf("decode weather response: %w", err)
	}
	if parsed.Main.Temp == nil {
		return 0, fmt.Errorf("weather response does not contain temperature")
	}

	return *parsed.Main.Temp, nil
}

type owmResponse struct {
	Main struct {
		Temp *float64 `json:"temp"`
	} `json:"main"`
}
