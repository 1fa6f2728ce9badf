package model

import (
	"encoding/json"
	"sort"
)

// BookOrder is a single level in a commodity-exchange order book. A nil
// CompanyCode belongs to a liquidated company or the exchange's market maker;
// a nil Count marks a market-maker order with unlimited volume.
type BookOrder struct {
	CompanyCode *string `json:"CompanyCode"`
	CompanyName string  `json:"CompanyName"`
	ItemCost    float64 `json:"ItemCost"`
	Count       *int    `json:"ItemCount"`
}

// Ticker is one commodity-exchange quote, canonically named
// "MATERIAL.EXCHANGE". The raw response order of the books is not trusted:
// both are sorted by item cost during decoding, selling ascending and buying
// descending, so derivations can walk them front to back.
type Ticker struct {
	Name           string      `json:"TickerName"`
	MaterialTicker string      `json:"MaterialTicker"`
	ExchangeCode   string      `json:"ExchangeCode"`
	Currency       string      `json:"Currency"`
	Price          float64     `json:"Price"`
	Average        float64     `json:"PriceAverage"`
	Ask            *float64    `json:"Ask"`
	Bid            *float64    `json:"Bid"`
	High           float64     `json:"High"`
	Low            float64     `json:"Low"`
	BuyingOrders   []BookOrder `json:"BuyingOrders"`
	SellingOrders  []BookOrder `json:"SellingOrders"`
}

// UnmarshalJSON decodes the quote and normalises both book orderings.
func (t *Ticker) UnmarshalJSON(data []byte) error {
	type alias Ticker
	aux := (*alias)(t)
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}
	sort.SliceStable(t.SellingOrders, func(i, j int) bool {
		return t.SellingOrders[i].ItemCost < t.SellingOrders[j].ItemCost
	})
	sort.SliceStable(t.BuyingOrders, func(i, j int) bool {
		return t.BuyingOrders[i].ItemCost > t.BuyingOrders[j].ItemCost
	})
	return nil
}

// AskOrPrice returns the ask when quoted, otherwise the mid price.
func (t *Ticker) AskOrPrice() float64 {
	if t.Ask != nil {
		return *t.Ask
	}
	return t.Price
}

// BidOrPrice returns the bid when quoted, otherwise the mid price.
func (t *Ticker) BidOrPrice() float64 {
	if t.Bid != nil {
		return *t.Bid
	}
	return t.Price
}

// BookTrade is the simulated outcome of sweeping one side of a book.
type BookTrade struct {
	TotalValue float64
	PriceLimit float64
}

// InstantBuy simulates buying quantity units against the selling book,
// consuming levels from the lowest price upward. A market-maker level with
// unlimited count fulfils any remainder. Returns nil when the book is
// exhausted before the quantity is met.
func (t *Ticker) InstantBuy(quantity int) *BookTrade {
	return sweep(t.SellingOrders, quantity)
}

// InstantSell is the order-dual of InstantBuy: it consumes the buying book
// from the highest price downward.
func (t *Ticker) InstantSell(quantity int) *BookTrade {
	return sweep(t.BuyingOrders, quantity)
}

func sweep(book []BookOrder, quantity int) *BookTrade {
	if quantity <= 0 {
		return &BookTrade{}
	}
	remaining := quantity
	trade := BookTrade{}
	for _, order := range book {
		take := remaining
		if order.Count != nil && *order.Count < take {
			take = *order.Count
		}
		trade.TotalValue += order.ItemCost * float64(take)
		trade.PriceLimit = order.ItemCost
		remaining -= take
		if remaining == 0 {
			return &trade
		}
	}
	return nil
}
