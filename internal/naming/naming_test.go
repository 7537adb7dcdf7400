package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToSnake(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"MyFeature", "myfeature"},
		{"my-feature", "my_feature"},
		{"my feature", "my_feature"},
		{"My-Feature Name", "my_feature_name"},
		{"a--b  c", "a__b__c"},
		{"already_snake", "already_snake"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ToSnake(tt.in))
		})
	}
}

func TestToPascal(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"stock_price", "StockPrice"},
		{"market_analysis", "MarketAnalysis"},
		{"my_feature_name", "MyFeatureName"},
		{"single", "Single"},
		{"a__b", "AB"},
		{"_leading", "Leading"},
		{"v2_api", "V2Api"},
		{"2fa_login", "2faLogin"},
		{"oauth2_token_v3", "Oauth2TokenV3"},
		{"ǆemal", "ǅemal"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ToPascal(tt.in))
		})
	}
}

func TestNormalize(t *testing.T) {
	n := Normalize("Order Service")
	assert.Equal(t, "order_service", n.Snake)
	assert.Equal(t, "OrderService", n.Pascal)

	empty := Normalize("")
	assert.Empty(t, empty.Snake)
	assert.Empty(t, empty.Pascal)
}

func TestNormalize_SnakeIsIdempotent(t *testing.T) {
	inputs := []string{
		"My-Feature Name",
		"HTTP Client",
		"order-service",
		"  spaced  out ",
		"Mixed_Case-and Spaces",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			once := Normalize(in).Snake
			twice := Normalize(once).Snake
			assert.Equal(t, once, twice)
		})
	}
}
