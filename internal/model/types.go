package model

import (
	"encoding/json"
	"fmt"
)

// StorageType identifies the kind of store a storage document describes.
type StorageType int

const (
	StorageBase StorageType = iota
	StorageWarehouse
	StorageShip
	StorageSTLFuel
	StorageFTLFuel
)

var storageTypeNames = map[string]StorageType{
	"STORE":           StorageBase,
	"WAREHOUSE_STORE": StorageWarehouse,
	"SHIP_STORE":      StorageShip,
	"STL_FUEL_STORE":  StorageSTLFuel,
	"FTL_FUEL_STORE":  StorageFTLFuel,
}

func (t StorageType) String() string {
	switch t {
	case StorageBase:
		return "STORE"
	case StorageWarehouse:
		return "WAREHOUSE_STORE"
	case StorageShip:
		return "SHIP_STORE"
	case StorageSTLFuel:
		return "STL_FUEL_STORE"
	case StorageFTLFuel:
		return "FTL_FUEL_STORE"
	default:
		return "UNKNOWN"
	}
}

// UnmarshalJSON maps the upstream type string onto the closed enum.
func (t *StorageType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, ok := storageTypeNames[s]
	if !ok {
		return fmt.Errorf("unknown storage type %q", s)
	}
	*t = v
	return nil
}

// ResourceType classifies a planetary deposit.
type ResourceType string

const (
	ResourceGaseous ResourceType = "GASEOUS"
	ResourceMineral ResourceType = "MINERAL"
	ResourceLiquid  ResourceType = "LIQUID"
)

// Deposit is a single extractable resource on a planet.
type Deposit struct {
	Ticker string       `json:"MaterialTicker"`
	Type   ResourceType `json:"ResourceType"`
	Factor float64      `json:"Factor"`
}

// Planet is the per-base planet document.
type Planet struct {
	PlanetID             string    `json:"PlanetId"`
	NaturalID            string    `json:"PlanetNaturalId"`
	Name                 string    `json:"PlanetName"`
	HasLocalMarket       bool      `json:"HasLocalMarket"`
	LocalMarketFeeFactor float64   `json:"LocalMarketFeeFactor"`
	Resources            []Deposit `json:"Resources"`
}

// StorageItem is one material stack inside a store.
type StorageItem struct {
	Ticker   string  `json:"MaterialTicker"`
	Amount   float64 `json:"MaterialAmount"`
	Weight   float64 `json:"TotalWeight"`
	Volume   float64 `json:"TotalVolume"`
	ItemType string  `json:"Type"`
}

// Storage is one store document. Items are keyed by material ticker; stacks
// the upstream marks as BLOCKED are dropped during decoding.
type Storage struct {
	AddressableID  string                 `json:"AddressableId"`
	StorageID      string                 `json:"StorageId"`
	Type           StorageType            `json:"Type"`
	Items          map[string]StorageItem `json:"-"`
	WeightLoad     float64                `json:"WeightLoad"`
	WeightCapacity float64                `json:"WeightCapacity"`
	VolumeLoad     float64                `json:"VolumeLoad"`
	VolumeCapacity float64                `json:"VolumeCapacity"`
}

// UnmarshalJSON decodes the raw item list into the ticker-keyed map.
func (s *Storage) UnmarshalJSON(data []byte) error {
	type alias Storage
	aux := struct {
		*alias
		StorageItems []StorageItem `json:"StorageItems"`
	}{alias: (*alias)(s)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	s.Items = make(map[string]StorageItem, len(aux.StorageItems))
	for _, item := range aux.StorageItems {
		if item.ItemType == "BLOCKED" {
			continue
		}
		s.Items[item.Ticker] = item
	}
	return nil
}

// Quantity returns the held amount of a ticker, zero when absent.
func (s *Storage) Quantity(ticker string) float64 {
	return s.Items[ticker].Amount
}

// WorkforceNeed is one consumable requirement of a workforce tier.
type WorkforceNeed struct {
	Ticker           string  `json:"MaterialTicker"`
	Essential        bool    `json:"Essential"`
	Satisfaction     float64 `json:"Satisfaction"`
	UnitsPerInterval float64 `json:"UnitsPerInterval"`
	UnitsPer100      float64 `json:"UnitsPer100"`
}

// WorkforceTier is the state of one of the five workforce tiers on a planet.
type WorkforceTier struct {
	Name         string          `json:"WorkforceTypeName"`
	Capacity     int             `json:"Capacity"`
	Population   int             `json:"Population"`
	Required     int             `json:"Required"`
	Satisfaction float64         `json:"Satisfaction"`
	Needs        []WorkforceNeed `json:"WorkforceNeeds"`
}

// PlanetWorkforce is the workforce document for one planet.
type PlanetWorkforce struct {
	PlanetID  string          `json:"PlanetId"`
	NaturalID string          `json:"PlanetNaturalId"`
	Tiers     []WorkforceTier `json:"Workforces"`
}

// OrderDirection distinguishes buying from selling on a market.
type OrderDirection int

const (
	DirectionBuying OrderDirection = iota
	DirectionSelling
)

func (d OrderDirection) String() string {
	if d == DirectionSelling {
		return "SELLING"
	}
	return "BUYING"
}

// Advert is a single local-market advertisement.
type Advert struct {
	Direction          OrderDirection `json:"-"`
	Ticker             string         `json:"MaterialTicker"`
	Amount             int            `json:"MaterialAmount"`
	TotalPrice         float64        `json:"Price"`
	Currency           string         `json:"PriceCurrency"`
	DeliveryDays       int            `json:"DeliveryTime"`
	CreatorCompanyName string         `json:"CreatorCompanyName"`
	CreatorCompanyCode string         `json:"CreatorCompanyCode"`
}

// PricePerUnit returns the advert price normalised per unit.
func (a Advert) PricePerUnit() float64 {
	if a.Amount == 0 {
		return a.TotalPrice
	}
	return a.TotalPrice / float64(a.Amount)
}

// LocalMarket is the per-planet advertisement board.
type LocalMarket struct {
	BuyingAds  []Advert `json:"BuyingAds"`
	SellingAds []Advert `json:"SellingAds"`
}

// UnmarshalJSON tags each advert with its board side.
func (m *LocalMarket) UnmarshalJSON(data []byte) error {
	type alias LocalMarket
	aux := (*alias)(m)
	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}
	for i := range m.BuyingAds {
		m.BuyingAds[i].Direction = DirectionBuying
	}
	for i := range m.SellingAds {
		m.SellingAds[i].Direction = DirectionSelling
	}
	return nil
}

// OrderStatus is the lifecycle state of an own exchange order.
type OrderStatus string

const (
	OrderFilled          OrderStatus = "FILLED"
	OrderPlaced          OrderStatus = "PLACED"
	OrderPartiallyFilled OrderStatus = "PARTIALLY_FILLED"
)

// MarketOrder is one of the player's own commodity-exchange orders.
type MarketOrder struct {
	Ticker          string         `json:"MaterialTicker"`
	ExchangeCode    string         `json:"ExchangeCode"`
	OrderType       OrderDirection `json:"-"`
	InitialAmount   int            `json:"InitialAmount"`
	RemainingAmount int            `json:"Amount"`
	Limit           float64        `json:"Limit"`
	LimitCurrency   string         `json:"LimitCurrency"`
	Status          OrderStatus    `json:"Status"`
	CreatedEpochMs  int64          `json:"CreatedEpochMs"`
}

// UnmarshalJSON maps the upstream order type string onto the direction enum.
func (o *MarketOrder) UnmarshalJSON(data []byte) error {
	type alias MarketOrder
	aux := struct {
		*alias
		OrderType string `json:"OrderType"`
	}{alias: (*alias)(o)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	switch aux.OrderType {
	case "SELLING":
		o.OrderType = DirectionSelling
	case "BUYING":
		o.OrderType = DirectionBuying
	default:
		return fmt.Errorf("unknown order type %q", aux.OrderType)
	}
	return nil
}

// Warehouse is one rented warehouse unit.
type Warehouse struct {
	StoreID            string  `json:"StoreId"`
	Units              int     `json:"Units"`
	WeightCapacity     float64 `json:"WeightCapacity"`
	VolumeCapacity     float64 `json:"VolumeCapacity"`
	NextPaymentEpochMs int64   `json:"NextPaymentTimestampEpochMs"`
	FeeAmount          float64 `json:"FeeAmount"`
	FeeCurrency        string  `json:"FeeCurrency"`
	LocationNaturalID  string  `json:"LocationNaturalId"`
	LocationName       string  `json:"LocationName"`
}

// SiteBuilding is one constructed building on a site.
type SiteBuilding struct {
	Ticker         string  `json:"BuildingTicker"`
	Condition      float64 `json:"Condition"`
	CreatedEpochMs int64   `json:"BuildingCreated"`
}

// Site is one of the player's planetary sites.
type Site struct {
	SiteID    string         `json:"SiteId"`
	PlanetID  string         `json:"PlanetIdentifier"`
	NaturalID string         `json:"PlanetNaturalId"`
	Name      string         `json:"PlanetName"`
	Buildings []SiteBuilding `json:"Buildings"`
}
