package fio

import (
	"context"

	"prunflow/internal/model"
)

// Planet fetches a planet by opaque id or natural id.
func (c *Client) Planet(ctx context.Context, id string) (*model.Planet, error) {
	p := model.Planet{}
	present, err := c.getJSON(ctx, "/planet/"+id, &p)
	if err != nil || !present {
		return nil, err
	}
	return &p, nil
}

// Storages fetches all of a user's stores.
func (c *Client) Storages(ctx context.Context, user string) ([]model.Storage, error) {
	out := []model.Storage{}
	present, err := c.getJSON(ctx, "/storage/"+user, &out)
	if err != nil || !present {
		return nil, err
	}
	return out, nil
}

// Storage fetches one store by planet or store id. A nil record means the
// user has no such store.
func (c *Client) Storage(ctx context.Context, user, store string) (*model.Storage, error) {
	s := model.Storage{}
	present, err := c.getJSON(ctx, "/storage/"+user+"/"+store, &s)
	if err != nil || !present {
		return nil, err
	}
	return &s, nil
}

// StoragePlanets fetches the natural ids of the planets the user stores
// goods on.
func (c *Client) StoragePlanets(ctx context.Context, user string) ([]string, error) {
	out := []string{}
	present, err := c.getJSON(ctx, "/storage/planets/"+user, &out)
	if err != nil || !present {
		return nil, err
	}
	return out, nil
}

// Workforce fetches the user's workforce state on one planet.
func (c *Client) Workforce(ctx context.Context, user, planet string) (*model.PlanetWorkforce, error) {
	w := model.PlanetWorkforce{}
	present, err := c.getJSON(ctx, "/workforce/"+user+"/"+planet, &w)
	if err != nil || !present {
		return nil, err
	}
	return &w, nil
}

// LocalMarket fetches a planet's advertisement board. Planets without a
// local market report absence, returned as a nil record.
func (c *Client) LocalMarket(ctx context.Context, planet string) (*model.LocalMarket, error) {
	m := model.LocalMarket{}
	present, err := c.getJSON(ctx, "/localmarket/planet/"+planet, &m)
	if err != nil || !present {
		return nil, err
	}
	return &m, nil
}

// ExchangeTicker fetches one commodity-exchange quote, named
// "MATERIAL.EXCHANGE".
func (c *Client) ExchangeTicker(ctx context.Context, name string) (*model.Ticker, error) {
	t := model.Ticker{}
	present, err := c.getJSON(ctx, "/exchange/"+name, &t)
	if err != nil || !present {
		return nil, err
	}
	return &t, nil
}

// SitePlanets fetches the natural ids of the planets the user has sites on.
func (c *Client) SitePlanets(ctx context.Context, user string) ([]string, error) {
	out := []string{}
	present, err := c.getJSON(ctx, "/sites/planets/"+user, &out)
	if err != nil || !present {
		return nil, err
	}
	return out, nil
}

// Site fetches the user's site on one planet.
func (c *Client) Site(ctx context.Context, user, planet string) (*model.Site, error) {
	s := model.Site{}
	present, err := c.getJSON(ctx, "/sites/"+user+"/"+planet, &s)
	if err != nil || !present {
		return nil, err
	}
	return &s, nil
}

// Production fetches the user's production lines on one planet.
func (c *Client) Production(ctx context.Context, user, planet string) ([]model.ProductionLine, error) {
	out := []model.ProductionLine{}
	present, err := c.getJSON(ctx, "/production/"+user+"/"+planet, &out)
	if err != nil || !present {
		return nil, err
	}
	return out, nil
}

// Warehouses fetches the user's rented warehouse units.
func (c *Client) Warehouses(ctx context.Context, user string) ([]model.Warehouse, error) {
	out := []model.Warehouse{}
	present, err := c.getJSON(ctx, "/sites/warehouses/"+user, &out)
	if err != nil || !present {
		return nil, err
	}
	return out, nil
}

// CXOS fetches the user's own open and recently filled exchange orders.
func (c *Client) CXOS(ctx context.Context, user string) ([]model.MarketOrder, error) {
	out := []model.MarketOrder{}
	present, err := c.getJSON(ctx, "/cxos/"+user, &out)
	if err != nil || !present {
		return nil, err
	}
	return out, nil
}
