package model

import (
	"encoding/json"
	"testing"
)

func intPtr(v int) *int { return &v }

func TestInstantBuyFiniteBook(t *testing.T) {
	ticker := Ticker{
		SellingOrders: []BookOrder{
			{ItemCost: 267.0, Count: intPtr(298)},
			{ItemCost: 270.0, Count: intPtr(50)},
		},
	}

	cases := []struct {
		quantity int
		total    float64
		limit    float64
	}{
		{1, 267.0, 267.0},
		{298, 79566.0, 267.0},
		{300, 80106.0, 270.0},
	}
	for _, c := range cases {
		trade := ticker.InstantBuy(c.quantity)
		if trade == nil {
			t.Fatalf("InstantBuy(%d) returned nil", c.quantity)
		}
		if trade.TotalValue != c.total {
			t.Errorf("InstantBuy(%d) total = %v, want %v", c.quantity, trade.TotalValue, c.total)
		}
		if trade.PriceLimit != c.limit {
			t.Errorf("InstantBuy(%d) limit = %v, want %v", c.quantity, trade.PriceLimit, c.limit)
		}
	}
}

func TestInstantBuyEmptyBook(t *testing.T) {
	ticker := Ticker{
		BuyingOrders: []BookOrder{{ItemCost: 100.0, Count: intPtr(10)}},
	}
	if trade := ticker.InstantBuy(1); trade != nil {
		t.Errorf("InstantBuy on empty selling book = %+v, want nil", trade)
	}
}

func TestInstantBuyExhaustedBook(t *testing.T) {
	ticker := Ticker{
		SellingOrders: []BookOrder{{ItemCost: 267.0, Count: intPtr(298)}},
	}
	if trade := ticker.InstantBuy(299); trade != nil {
		t.Errorf("InstantBuy past book depth = %+v, want nil", trade)
	}
}

func TestInstantSellThroughMarketMaker(t *testing.T) {
	ticker := Ticker{
		BuyingOrders: []BookOrder{
			{ItemCost: 5.0, Count: intPtr(10)},
			{ItemCost: 4.5, Count: nil},
		},
	}
	trade := ticker.InstantSell(100)
	if trade == nil {
		t.Fatalf("InstantSell(100) returned nil")
	}
	if trade.TotalValue != 455.0 {
		t.Errorf("total = %v, want 455.0", trade.TotalValue)
	}
	if trade.PriceLimit != 4.5 {
		t.Errorf("limit = %v, want 4.5", trade.PriceLimit)
	}
}

func TestTickerDecodeSortsBooks(t *testing.T) {
	raw := `{
		"TickerName": "RAT.IC1",
		"MaterialTicker": "RAT",
		"ExchangeCode": "IC1",
		"Price": 100.0,
		"SellingOrders": [
			{"CompanyName": "b", "ItemCost": 270.0, "ItemCount": 50},
			{"CompanyName": "a", "ItemCost": 267.0, "ItemCount": 298}
		],
		"BuyingOrders": [
			{"CompanyName": "mm", "ItemCost": 4.5},
			{"CompanyName": "c", "ItemCost": 5.0, "ItemCount": 10}
		]
	}`
	ticker := Ticker{}
	if err := json.Unmarshal([]byte(raw), &ticker); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if ticker.SellingOrders[0].ItemCost != 267.0 {
		t.Errorf("selling book not ascending: %v", ticker.SellingOrders)
	}
	if ticker.BuyingOrders[0].ItemCost != 5.0 {
		t.Errorf("buying book not descending: %v", ticker.BuyingOrders)
	}
	if ticker.BuyingOrders[1].Count != nil {
		t.Errorf("market-maker count should decode as nil")
	}
}

func TestAskBidFallBackToPrice(t *testing.T) {
	ask := 120.0
	ticker := Ticker{Price: 100.0, Ask: &ask}
	if got := ticker.AskOrPrice(); got != 120.0 {
		t.Errorf("AskOrPrice = %v, want 120.0", got)
	}
	if got := ticker.BidOrPrice(); got != 100.0 {
		t.Errorf("BidOrPrice = %v, want 100.0", got)
	}
}
