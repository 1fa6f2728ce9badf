package analysis

import (
	"prunflow/internal/model"
	"prunflow/internal/static"
)

// DealFlag classifies a local-market advertisement relative to the exchange.
type DealFlag int

const (
	DealNone DealFlag = iota
	// DealGood marks a price better than the exchange side we would
	// otherwise trade against.
	DealGood
	// DealArbitrage marks a risk-free round trip between the local market
	// and the exchange.
	DealArbitrage
)

func (f DealFlag) String() string {
	switch f {
	case DealGood:
		return "+"
	case DealArbitrage:
		return "!"
	default:
		return " "
	}
}

// Deal is one classified advertisement. Gain is the round-trip margin for
// arbitrage deals, zero otherwise.
type Deal struct {
	Ad   model.Advert
	Flag DealFlag
	Gain float64
}

// ClassifyDeals grades every foreign advertisement on a planet's board
// against the exchange quotes. Own adverts are skipped by company code.
func ClassifyDeals(lm *model.LocalMarket, prices PriceBook, ownCompanyCode string) []Deal {
	if lm == nil {
		return nil
	}
	deals := []Deal{}
	for _, ad := range lm.SellingAds {
		if ad.CreatorCompanyCode == ownCompanyCode {
			continue
		}
		deals = append(deals, classifySelling(ad, prices[ad.Ticker]))
	}
	for _, ad := range lm.BuyingAds {
		if ad.CreatorCompanyCode == ownCompanyCode {
			continue
		}
		deals = append(deals, classifyBuying(ad, prices[ad.Ticker]))
	}
	return deals
}

func classifySelling(ad model.Advert, t *model.Ticker) Deal {
	deal := Deal{Ad: ad}
	if t == nil {
		return deal
	}
	if trade := t.InstantSell(ad.Amount); trade != nil && trade.TotalValue > ad.TotalPrice {
		deal.Flag = DealArbitrage
		deal.Gain = trade.TotalValue - ad.TotalPrice
		return deal
	}
	if ad.PricePerUnit() < t.AskOrPrice() {
		deal.Flag = DealGood
	}
	return deal
}

func classifyBuying(ad model.Advert, t *model.Ticker) Deal {
	deal := Deal{Ad: ad}
	if t == nil {
		return deal
	}
	if trade := t.InstantBuy(ad.Amount); trade != nil && ad.TotalPrice-trade.TotalValue > 0 {
		deal.Flag = DealArbitrage
		deal.Gain = ad.TotalPrice - trade.TotalValue
		return deal
	}
	if ad.PricePerUnit() > t.BidOrPrice() {
		deal.Flag = DealGood
	}
	return deal
}

// proposedLotSize is the unit count of a derived sell listing.
const proposedLotSize = 10

// neverListed are consumables kept off the local market regardless of
// surplus.
var neverListed = map[string]bool{
	"DW":  true,
	"RAT": true,
	"COF": true,
}

// Listing is a proposed local-market sell order for surplus consumables.
type Listing struct {
	Ticker string
	Amount int
	Price  float64
}

// ProposedListings derives sell orders for surplus consumables: inventory
// exceeding the holding target by at least a lot. The price is a 15% markup
// on the exchange high for the lot plus the planet's listing fee.
func ProposedListings(planet *model.Planet, storage *model.Storage, targets map[string]float64, prices PriceBook) []Listing {
	if storage == nil {
		return nil
	}
	fee := 0.0
	if planet != nil && planet.LocalMarketFeeFactor > 0 {
		fee = 50 + 30*planet.LocalMarketFeeFactor
	}

	listings := []Listing{}
	for ticker, item := range storage.Items {
		if neverListed[ticker] {
			continue
		}
		m, ok := static.MaterialByTicker(ticker)
		if !ok {
			continue
		}
		if m.Category != static.CategoryConsumablesBasic && m.Category != static.CategoryConsumablesLuxury {
			continue
		}
		if item.Amount-targets[ticker] < proposedLotSize {
			continue
		}
		t := prices[ticker]
		if t == nil || t.High <= 0 {
			continue
		}
		listings = append(listings, Listing{
			Ticker: ticker,
			Amount: proposedLotSize,
			Price:  proposedLotSize*t.High*1.15 + fee,
		})
	}
	return listings
}
