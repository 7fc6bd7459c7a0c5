package food

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultBaseURL = "https://world.openfoodfacts.org"

// kJ → kcal
const kcalPerKilojoule = 4.184

// ErrNotFound — в базе нет продукта с пригодной калорийностью.
// Отличается от транспортных ошибок, хотя деградация для пользователя
// одна и та же: ручной ввод ккал.
var ErrNotFound = errors.New("product not found")

// Product — результат поиска: отображаемое имя и ккал на 100 г.
type Product struct {
	Name        string
	KcalPer100g float64
}

// Client ищет калорийность продукта в OpenFoodFacts.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Search возвращает первый продукт с пригодной калорийностью на 100 г.
// Калорийность берётся напрямую из energy-kcal_100g либо конвертируется
// из energy_100g по единице измерения (kJ ÷ 4.184, kcal/cal как есть).
func (c *Client) Search(ctx context.Context, name string) (Product, error) {
	base := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if base == "" {
		base = defaultBaseURL
	}
	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	u := fmt.Sprintf("%s/cgi/search.pl?action=process&json=true&search_terms=%s",
		base,
		url.QueryEscape(strings.TrimSpace(name)),
	)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return Product{}, fmt.Errorf("create openfoodfacts request: %w", err)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return Product{}, fmt.Errorf("execute openfoodfacts request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Product{}, fmt.Errorf("read openfoodfacts response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return Product{}, fmt.Errorf("openfoodfacts request failed with status %d", resp.StatusCode)
	}

	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return Product{}, fmt.Errorf("decode openfoodfacts response: %w", err)
	}

	for _, p := range parsed.Products {
		kcal, ok := kcalPer100g(p.Nutriments)
		if !ok {
			continue
		}
		displayName := strings.TrimSpace(p.ProductName)
		if displayName == "" {
			displayName = strings.TrimSpace(p.ProductNameRU)
		}
		if displayName == "" {
			displayName = strings.TrimSpace(name)
		}
		return Product{Name: displayName, KcalPer100g: kcal}, nil
	}

	return Product{}, ErrNotFound
}

func kcalPer100g(n map[string]any) (float64, bool) {
	if v, ok := parseFloatAny(n["energy-kcal_100g"]); ok {
		return v, true
	}
	energy, ok := parseFloatAny(n["energy_100g"])
	if !ok {
		return 0, false
	}
	unit, _ := n["energy_unit"].(string)
	if unit == "" {
		unit, _ = n["energy-unit"].(string)
	}
	switch strings.ToLower(strings.TrimSpace(unit)) {
	case "kj":
		return energy / kcalPerKilojoule, true
	case "kcal", "cal":
		return energy, true
	}
	return 0, false
}

func parseFloatAny(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

type searchResponse struct {
	Products []searchProduct `json:"products"`
}

type searchProduct struct {
	ProductName   string         `json:"product_name"`
	ProductNameRU string         `json:"product_name_ru"`
	Nutriments    map[string]any `json:"nutriments"`
}
