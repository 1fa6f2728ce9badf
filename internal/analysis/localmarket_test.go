package analysis

import (
	"math"
	"testing"

	"prunflow/internal/model"
)

func ratTicker() *model.Ticker {
	ask := 110.0
	bid := 90.0
	return &model.Ticker{
		MaterialTicker: "RAT",
		Price:          100.0,
		Ask:            &ask,
		Bid:            &bid,
		SellingOrders:  []model.BookOrder{{ItemCost: 110.0, Count: intPtr(1000)}},
		BuyingOrders:   []model.BookOrder{{ItemCost: 90.0, Count: intPtr(1000)}},
	}
}

func TestClassifySellingAds(t *testing.T) {
	lm := &model.LocalMarket{
		SellingAds: []model.Advert{
			{Ticker: "RAT", Amount: 10, TotalPrice: 1000, CreatorCompanyCode: "AAA"},
			{Ticker: "RAT", Amount: 10, TotalPrice: 800, CreatorCompanyCode: "BBB"},
			{Ticker: "RAT", Amount: 10, TotalPrice: 2000, CreatorCompanyCode: "CCC"},
		},
	}
	deals := ClassifyDeals(lm, PriceBook{"RAT": ratTicker()}, "ME")
	if len(deals) != 3 {
		t.Fatalf("deals = %d, want 3", len(deals))
	}
	// 100/unit beats the 110 ask.
	if deals[0].Flag != DealGood {
		t.Errorf("ad at 100/unit flagged %v, want good", deals[0].Flag)
	}
	// Instant sell of 10 brings 900, the lot costs 800.
	if deals[1].Flag != DealArbitrage || math.Abs(deals[1].Gain-100.0) > 1e-9 {
		t.Errorf("ad at 800 flagged %v gain %v, want arbitrage gain 100", deals[1].Flag, deals[1].Gain)
	}
	if deals[2].Flag != DealNone {
		t.Errorf("overpriced ad flagged %v, want none", deals[2].Flag)
	}
}

func TestClassifyBuyingAds(t *testing.T) {
	lm := &model.LocalMarket{
		BuyingAds: []model.Advert{
			{Ticker: "RAT", Amount: 10, TotalPrice: 1000, CreatorCompanyCode: "AAA"},
			{Ticker: "RAT", Amount: 10, TotalPrice: 1200, CreatorCompanyCode: "BBB"},
			{Ticker: "RAT", Amount: 10, TotalPrice: 500, CreatorCompanyCode: "CCC"},
		},
	}
	deals := ClassifyDeals(lm, PriceBook{"RAT": ratTicker()}, "ME")
	// 100/unit beats the 90 bid but buying the lot on the exchange costs 1100.
	if deals[0].Flag != DealGood {
		t.Errorf("ad paying 100/unit flagged %v, want good", deals[0].Flag)
	}
	// Fill from the exchange at 1100, deliver for 1200.
	if deals[1].Flag != DealArbitrage || math.Abs(deals[1].Gain-100.0) > 1e-9 {
		t.Errorf("ad paying 1200 flagged %v gain %v, want arbitrage gain 100", deals[1].Flag, deals[1].Gain)
	}
	if deals[2].Flag != DealNone {
		t.Errorf("lowball ad flagged %v, want none", deals[2].Flag)
	}
}

func TestClassifySkipsOwnAds(t *testing.T) {
	lm := &model.LocalMarket{
		SellingAds: []model.Advert{{Ticker: "RAT", Amount: 1, TotalPrice: 1, CreatorCompanyCode: "ME"}},
		BuyingAds:  []model.Advert{{Ticker: "RAT", Amount: 1, TotalPrice: 9999, CreatorCompanyCode: "ME"}},
	}
	if deals := ClassifyDeals(lm, PriceBook{"RAT": ratTicker()}, "ME"); len(deals) != 0 {
		t.Errorf("own ads classified: %+v", deals)
	}
}

func TestProposedListings(t *testing.T) {
	planet := &model.Planet{LocalMarketFeeFactor: 2.0}
	storage := storageWith(map[string]float64{
		"PWO": 50,  // luxury surplus, listed
		"COF": 100, // excluded ticker
		"DW":  400, // excluded ticker
		"H2O": 900, // not a consumable
		"MED": 12,  // surplus below a lot
	})
	targets := map[string]float64{"PWO": 10, "MED": 5}
	prices := PriceBook{
		"PWO": {High: 200.0},
		"MED": {High: 40.0},
	}

	listings := ProposedListings(planet, storage, targets, prices)
	if len(listings) != 1 {
		t.Fatalf("listings = %+v, want only PWO", listings)
	}
	l := listings[0]
	if l.Ticker != "PWO" || l.Amount != 10 {
		t.Errorf("listing = %+v, want 10 PWO", l)
	}
	// 10 × high × 1.15 plus the 50 + 30 × fee-factor listing fee.
	want := 10*200.0*1.15 + 110.0
	if math.Abs(l.Price-want) > 1e-9 {
		t.Errorf("price = %v, want %v", l.Price, want)
	}
}

func TestProposedListingsNoFeeWhenFactorZero(t *testing.T) {
	planet := &model.Planet{LocalMarketFeeFactor: 0}
	storage := storageWith(map[string]float64{"PWO": 50})
	prices := PriceBook{"PWO": {High: 100.0}}

	listings := ProposedListings(planet, storage, nil, prices)
	if len(listings) != 1 {
		t.Fatalf("listings = %+v, want one", listings)
	}
	if math.Abs(listings[0].Price-1150.0) > 1e-9 {
		t.Errorf("price = %v, want 1150 with no fee", listings[0].Price)
	}
}
