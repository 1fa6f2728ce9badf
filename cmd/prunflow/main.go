package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"prunflow/config"
	"prunflow/internal/analysis"
	"prunflow/internal/dashboard"
	"prunflow/internal/fio"
	"prunflow/internal/model"
	"prunflow/internal/static"
	"prunflow/logger"
)

func main() {
	// Load .env file if present, before anything reads the environment.
	_ = godotenv.Load()

	configPath := flag.String("config", "config.yaml", "path to the configuration file")
	overridesPath := flag.String("overrides", "", "path to the holding-policy overrides file")
	planetFilter := flag.String("planet", "", "analyse a single planet (natural id or name)")
	username := flag.String("username", os.Getenv("FIO_USERNAME"), "account user name")
	refresh := flag.Duration("refresh", 0, "refresh interval, 0 runs once")
	flag.Parse()

	log := logger.GetLogger()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration")
	}
	if err := log.Configure(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output, cfg.Logging.MaxAge); err != nil {
		log.WithError(err).Fatal("failed to configure logging")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if cfg.Metrics.CloudWatch.Enabled {
		logger.InitCloudWatch(cfg.Metrics.CloudWatch.Region, cfg.Metrics.CloudWatch.Namespace)
		logger.StartReport(ctx, log, 60*time.Second)
	}

	overrides := config.NewOverrideStore()
	if *overridesPath != "" {
		if err := overrides.Reload(*overridesPath); err != nil {
			log.WithError(err).Warn("failed to load overrides, continuing with an empty table")
		}
	}

	if *username == "" {
		log.Fatal("a user name is required (flag -username or FIO_USERNAME)")
	}
	client, err := buildClient(ctx, cfg)
	if err != nil {
		log.WithError(err).Fatal("failed to authenticate")
	}

	dash := dashboard.NewServer(cfg.Dashboard, log)
	if dash != nil {
		go func() {
			if err := dash.Run(ctx); err != nil {
				log.WithError(err).Error("dashboard server failed")
			}
		}()
	}

	runner := &refresher{
		client:    client,
		cfg:       cfg,
		overrides: overrides,
		dash:      dash,
		user:      *username,
		filter:    *planetFilter,
		ownCosts:  map[string]float64{},
		log:       log.WithComponent("main"),
	}

	runner.refresh(ctx)
	if *refresh <= 0 {
		return
	}
	ticker := time.NewTicker(*refresh)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if *overridesPath != "" {
				if err := overrides.Reload(*overridesPath); err != nil {
					log.WithError(err).Warn("overrides reload failed, keeping previous table")
				}
			}
			runner.refresh(ctx)
		}
	}
}

// buildClient prefers a pre-issued token from the environment over a
// password login.
func buildClient(ctx context.Context, cfg *config.Config) (*fio.Client, error) {
	if token := os.Getenv("FIO_AUTH_TOKEN"); token != "" {
		client := fio.NewClientWithToken(cfg, token)
		if !client.IsAuth(ctx) {
			return nil, fio.ErrAuthenticationFailed
		}
		return client, nil
	}
	username := os.Getenv("FIO_USERNAME")
	password := os.Getenv("FIO_PASSWORD")
	if username == "" || password == "" {
		return nil, fmt.Errorf("set FIO_AUTH_TOKEN, or FIO_USERNAME and FIO_PASSWORD")
	}
	return fio.NewClient(ctx, cfg, username, password)
}

type refresher struct {
	client    *fio.Client
	cfg       *config.Config
	overrides *config.OverrideStore
	dash      *dashboard.Server
	user      string
	filter    string
	ownCosts  map[string]float64
	log       *logger.Entry
}

// refresh analyses every planet (or the filtered one) and publishes the
// result. Per-planet failures are logged and skipped so one bad document
// does not abort the whole pass.
func (r *refresher) refresh(ctx context.Context) {
	started := time.Now()

	planets := []string{r.filter}
	if r.filter == "" {
		ids, err := r.client.SitePlanets(ctx, r.user)
		if err != nil {
			r.log.WithError(err).Error("failed to list site planets")
			return
		}
		planets = ids
	}

	snap := &dashboard.Snapshot{
		GeneratedAt: started,
		Planets:     make(map[string]dashboard.PlanetReport, len(planets)),
	}
	prices := newPriceCache(r.client, r.cfg.Analysis.Exchange)
	for _, id := range planets {
		report, err := r.analysePlanet(ctx, id, prices)
		if err != nil {
			r.log.WithError(err).WithFields(logger.Fields{"planet": id}).Error("planet analysis failed")
			continue
		}
		snap.Planets[report.Planet] = *report
	}

	warehouses, err := r.client.Warehouses(ctx, r.user)
	if err != nil {
		r.log.WithError(err).Error("failed to fetch warehouses")
	} else {
		snap.Warehouses = warehouses
	}
	orders, err := r.client.CXOS(ctx, r.user)
	if err != nil {
		r.log.WithError(err).Error("failed to fetch exchange orders")
	} else {
		snap.Orders = orders
		open := 0
		for _, order := range orders {
			if order.Status != model.OrderFilled {
				open++
			}
		}
		r.log.WithFields(logger.Fields{"open": open, "total": len(orders)}).Info("exchange orders")
	}

	if r.dash != nil {
		r.dash.Publish(snap)
	}
	r.log.WithFields(logger.Fields{
		"planets":  len(snap.Planets),
		"duration": time.Since(started),
	}).Info("refresh complete")
}

func (r *refresher) analysePlanet(ctx context.Context, id string, prices *priceCache) (*dashboard.PlanetReport, error) {
	planet, err := r.client.Planet(ctx, id)
	if err != nil {
		return nil, err
	}
	if planet == nil {
		return nil, fmt.Errorf("planet %s not found", id)
	}

	production, err := r.client.Production(ctx, r.user, planet.NaturalID)
	if err != nil {
		return nil, err
	}
	storage, err := r.client.Storage(ctx, r.user, planet.NaturalID)
	if err != nil {
		return nil, err
	}
	workforce, err := r.client.Workforce(ctx, r.user, planet.NaturalID)
	if err != nil {
		return nil, err
	}
	site, err := r.client.Site(ctx, r.user, planet.NaturalID)
	if err != nil {
		return nil, err
	}
	if site != nil {
		for _, b := range site.Buildings {
			if b.Condition < 0.8 {
				r.log.WithFields(logger.Fields{
					"planet":    planet.Name,
					"building":  b.Ticker,
					"condition": b.Condition,
				}).Warn("building condition degraded")
			}
		}
	}

	balance, err := analysis.DailyBalance(production, storage, workforce, r.cfg.Analysis.SupplyWarnDays)
	if err != nil {
		return nil, err
	}

	planetOverrides := r.overrides.Current().Planet(planet.Name)
	resupply := analysis.ResupplyTargets(balance, storage, planetOverrides, r.cfg.Analysis.ResupplyDays)
	for _, item := range resupply {
		r.log.WithFields(logger.Fields{
			"planet":   planet.Name,
			"material": item.Ticker,
			"target":   item.Target,
			"buy":      item.AmountToBuy,
			"override": item.Override.String(),
		}).Info("resupply")
	}
	for _, flow := range balance.Consuming {
		if flow.Warning {
			r.log.WithFields(logger.Fields{
				"planet":   planet.Name,
				"material": flow.Ticker,
				"days":     flow.DaysOfSupply,
			}).Warn("supply running low")
		}
	}

	report := &dashboard.PlanetReport{
		Planet:    planet.Name,
		NaturalID: planet.NaturalID,
		Balance:   balance,
		Resupply:  resupply,
		Galactic:  analysis.GalacticResupply(r.overrides.Current(), storage),
	}
	for _, item := range report.Galactic {
		r.log.WithFields(logger.Fields{
			"planet":   planet.Name,
			"material": item.Ticker,
			"need":     item.Target,
			"buy":      item.AmountToBuy,
		}).Info("galactic need shortfall")
	}
	report.Costs = r.productionCosts(ctx, planet, production, prices)
	for i := range report.Costs {
		cost := &report.Costs[i]
		prices.get(ctx, cost.Output)
		report.Profits = append(report.Profits, analysis.DailyProfit(cost, prices.quotes))

		perUnit := cost.OwnPerUnit()
		if perUnit <= 0 {
			continue
		}
		if current, ok := r.ownCosts[cost.Output]; !ok || perUnit < current {
			r.ownCosts[cost.Output] = perUnit
		}
	}

	if planet.HasLocalMarket {
		lm, err := r.client.LocalMarket(ctx, planet.NaturalID)
		if err != nil {
			return nil, err
		}
		if lm != nil {
			book := prices.forAdverts(ctx, lm)
			report.Deals = analysis.ClassifyDeals(lm, book, r.cfg.Analysis.CompanyCode)
			for _, deal := range report.Deals {
				if deal.Flag == analysis.DealArbitrage {
					r.log.WithFields(logger.Fields{
						"planet":   planet.Name,
						"material": deal.Ad.Ticker,
						"gain":     deal.Gain,
					}).Info("arbitrage deal on local market")
				}
			}

			targets := map[string]float64{}
			for _, item := range resupply {
				targets[item.Ticker] = item.Target
			}
			book = prices.forStorage(ctx, storage)
			report.Listings = analysis.ProposedListings(planet, storage, targets, book)
		}
	}
	return report, nil
}

// productionCosts derives COGM for every output the planet's production
// lines are queued to make. The shared own-cost table accumulated from
// earlier planets substitutes for market input prices where it can.
func (r *refresher) productionCosts(ctx context.Context, planet *model.Planet, lines []model.ProductionLine, prices *priceCache) []analysis.CostResult {
	opts := analysis.CostOptions{UseLux1: true, UseLux2: true, OwnCosts: r.ownCosts}

	var results []analysis.CostResult
	for i := range lines {
		line := &lines[i]
		building, ok := static.BuildingByKey(line.Type)
		if !ok {
			r.log.WithFields(logger.Fields{"planet": planet.Name, "type": line.Type}).Error("unknown building type")
			continue
		}
		prices.forBuilding(ctx, building)

		if building.IsExtractor() {
			for _, deposit := range planet.Resources {
				prices.get(ctx, deposit.Ticker)
			}
			extracted, err := analysis.ExtractionCOGM(building, planet, line.Efficiency, prices.quotes, opts)
			if err != nil {
				r.log.WithError(err).WithFields(logger.Fields{"planet": planet.Name, "building": building.Ticker}).Error("extraction cost derivation failed")
				continue
			}
			results = append(results, extracted...)
			continue
		}

		seen := map[string]bool{}
		for j := range line.Orders {
			recipe := matchRecipe(building.Ticker, &line.Orders[j])
			if recipe == nil {
				continue
			}
			prices.forRecipe(ctx, recipe)
			for _, out := range recipe.Outputs {
				if seen[out.Ticker] {
					continue
				}
				seen[out.Ticker] = true
				cost, err := analysis.RecipeCOGM(building, recipe, out.Ticker, line.Efficiency, prices.quotes, opts)
				if err != nil {
					r.log.WithError(err).WithFields(logger.Fields{"planet": planet.Name, "recipe": recipe.StandardName()}).Error("cost derivation failed")
					continue
				}
				results = append(results, *cost)
			}
		}
	}
	return results
}

// matchRecipe resolves a queued order to its static recipe, by standard name
// first and by first output as a fallback.
func matchRecipe(building string, order *model.ProductionOrder) *static.Recipe {
	candidates := static.RecipesFor(building)
	for i := range candidates {
		if candidates[i].StandardName() == order.StandardRecipeName {
			return &candidates[i]
		}
	}
	if len(order.Outputs) == 0 {
		return nil
	}
	for i := range candidates {
		for _, out := range candidates[i].Outputs {
			if out.Ticker == order.Outputs[0].Ticker {
				return &candidates[i]
			}
		}
	}
	return nil
}

// priceCache memoises exchange quotes for one refresh pass. Failed lookups
// are cached as nil so a delisted material is fetched once.
type priceCache struct {
	client   *fio.Client
	exchange string
	quotes   analysis.PriceBook
	log      *logger.Entry
}

func newPriceCache(client *fio.Client, exchange string) *priceCache {
	return &priceCache{
		client:   client,
		exchange: exchange,
		quotes:   analysis.PriceBook{},
		log:      logger.GetLogger().WithComponent("main"),
	}
}

func (p *priceCache) get(ctx context.Context, ticker string) *model.Ticker {
	if quote, ok := p.quotes[ticker]; ok {
		return quote
	}
	quote, err := p.client.ExchangeTicker(ctx, ticker+"."+p.exchange)
	if err != nil {
		p.log.WithError(err).WithFields(logger.Fields{"ticker": ticker}).Warn("quote fetch failed")
		quote = nil
	}
	p.quotes[ticker] = quote
	return quote
}

func (p *priceCache) forAdverts(ctx context.Context, lm *model.LocalMarket) analysis.PriceBook {
	for _, ad := range lm.SellingAds {
		p.get(ctx, ad.Ticker)
	}
	for _, ad := range lm.BuyingAds {
		p.get(ctx, ad.Ticker)
	}
	return p.quotes
}

func (p *priceCache) forBuilding(ctx context.Context, building *static.Building) {
	for _, q := range building.Bill {
		p.get(ctx, q.Ticker)
	}
	for tier, count := range building.Workforce {
		if count == 0 {
			continue
		}
		for _, need := range static.TierNeeds(static.WorkforceTier(tier)) {
			p.get(ctx, need.Ticker)
		}
	}
}

func (p *priceCache) forRecipe(ctx context.Context, recipe *static.Recipe) {
	for _, q := range recipe.Inputs {
		p.get(ctx, q.Ticker)
	}
	for _, q := range recipe.Outputs {
		p.get(ctx, q.Ticker)
	}
}

func (p *priceCache) forStorage(ctx context.Context, storage *model.Storage) analysis.PriceBook {
	if storage != nil {
		for ticker := range storage.Items {
			p.get(ctx, ticker)
		}
	}
	return p.quotes
}
