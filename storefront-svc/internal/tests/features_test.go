package tests

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/GlennDumoulin/food-orders/storefront-svc/internal/domain"
	"github.com/GlennDumoulin/food-orders/storefront-svc/internal/service"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"
)

type storefrontTestContext struct {
	ctx    context.Context
	store  *memoryStore
	orders *service.OrderService
	prices *service.PriceService
	now    time.Time
	// last order touched per user
	current map[string]string
	err     error
}

func (c *storefrontTestContext) reset() {
	c.ctx = context.Background()
	c.store = newMemoryStore()
	c.now = time.Date(2024, 3, 14, 9, 15, 0, 0, time.UTC)
	c.current = map[string]string{}
	c.err = nil
	c.buildServices(time.UTC)
}

func (c *storefrontTestContext) buildServices(loc *time.Location) {
	c.orders = service.NewOrderService(c.store, c.store, nil, nil, nil, nil, service.OrderOptions{
		Location: loc,
		Now:      func() time.Time { return c.now },
	})
	c.prices = service.NewPriceService(c.store, c.store, c.store, nil)
}

func (c *storefrontTestContext) todayIsIn(date, zone string) error {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return err
	}
	day, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return err
	}
	c.now = day.Add(9*time.Hour + 15*time.Minute)
	c.buildServices(loc)
	return nil
}

func (c *storefrontTestContext) seedSize(restaurantID, sizeID string) {
	if _, ok := c.store.sizes[sizeID]; ok {
		return
	}
	sizes, _ := c.store.ListSizes(c.ctx, restaurantID)
	c.store.sizes[sizeID] = domain.Size{ID: sizeID, Name: sizeID, Order: len(sizes), RestaurantID: restaurantID}
}

func (c *storefrontTestContext) dishOfRestaurantCostsInSizeAsPrice(dishID, restaurantID, value, sizeID, priceID string) error {
	c.seedSize(restaurantID, sizeID)
	c.store.dishes[dishID] = domain.Dish{ID: dishID, Name: dishID, RestaurantID: restaurantID, Available: true}
	price, err := decimal.NewFromString(value)
	if err != nil {
		return err
	}
	c.store.prices[priceID] = domain.Price{ID: priceID, DishID: dishID, SizeID: sizeID, Price: price}
	return nil
}

func (c *storefrontTestContext) userHasNoCart(userID string) error {
	if _, err := c.store.FindCart(c.ctx, userID); !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("expected no cart for %s, got err %v", userID, err)
	}
	return nil
}

func (c *storefrontTestContext) userAddsOfPriceFromRestaurant(userID string, amount int, priceID, restaurantID string) error {
	cart, err := c.orders.GetOrCreateCart(c.ctx, userID, restaurantID, domain.LineItem{PriceID: priceID, Amount: amount})
	c.err = err
	if err == nil {
		c.current[userID] = cart.ID
	}
	return nil
}

func (c *storefrontTestContext) userPlacesTheCartForPickupAt(userID, pickup string) error {
	cart, err := c.store.FindCart(c.ctx, userID)
	if err != nil {
		return fmt.Errorf("user %s has no cart to place: %w", userID, err)
	}
	c.current[userID] = cart.ID
	_, c.err = c.orders.PlaceOrder(c.ctx, cart.ID, pickup)
	return nil
}

func (c *storefrontTestContext) userCancelsTheOrder(userID string) error {
	_, c.err = c.orders.CancelOrder(c.ctx, c.current[userID], userID)
	return nil
}

func (c *storefrontTestContext) restaurantAcceptsTheOrderOfUser(restaurantID, userID string) error {
	_, c.err = c.orders.AcceptOrder(c.ctx, c.current[userID], restaurantID)
	return nil
}

func (c *storefrontTestContext) restaurantMarksTheOrderOfUserAsPickedUp(restaurantID, userID string) error {
	_, c.err = c.orders.MarkPickedUp(c.ctx, c.current[userID], restaurantID)
	return nil
}

func (c *storefrontTestContext) priceIsDeleted(priceID string) error {
	return c.store.DeletePrice(c.ctx, priceID)
}

func (c *storefrontTestContext) userHasACartForRestaurantWithStatus(userID, restaurantID, status string) error {
	cart, err := c.store.FindCart(c.ctx, userID)
	if err != nil {
		return fmt.Errorf("expected a cart for %s: %w", userID, err)
	}
	if cart.RestaurantID != restaurantID {
		return fmt.Errorf("expected cart for restaurant %s, got %s", restaurantID, cart.RestaurantID)
	}
	if string(cart.Status) != status {
		return fmt.Errorf("expected status %q, got %q", status, cart.Status)
	}
	return nil
}

func (c *storefrontTestContext) theCartOfUserContains(userID string, table *godog.Table) error {
	cart, err := c.store.FindCart(c.ctx, userID)
	if err != nil {
		return err
	}
	expected := make([]domain.LineItem, 0, len(table.Rows)-1)
	for _, row := range table.Rows[1:] {
		amount, err := strconv.Atoi(row.Cells[1].Value)
		if err != nil {
			return err
		}
		expected = append(expected, domain.LineItem{PriceID: row.Cells[0].Value, Amount: amount})
	}
	if fmt.Sprint(cart.OrderContent) != fmt.Sprint(expected) {
		return fmt.Errorf("expected content %v, got %v", expected, cart.OrderContent)
	}
	return nil
}

func (c *storefrontTestContext) thereAreOrdersForUser(count int, userID string) error {
	orders, err := c.store.ListOrdersByUser(c.ctx, userID)
	if err != nil {
		return err
	}
	if len(orders) != count {
		return fmt.Errorf("expected %d orders for %s, got %d", count, userID, len(orders))
	}
	return nil
}

func (c *storefrontTestContext) currentOrder(userID string) (*domain.Order, error) {
	id, ok := c.current[userID]
	if !ok {
		return nil, fmt.Errorf("user %s has no order yet", userID)
	}
	return c.store.GetOrder(c.ctx, id)
}

func (c *storefrontTestContext) theOrderOfUserHasStatus(userID, status string) error {
	order, err := c.currentOrder(userID)
	if err != nil {
		return err
	}
	if string(order.Status) != status {
		return fmt.Errorf("expected status %q, got %q", status, order.Status)
	}
	return nil
}

func (c *storefrontTestContext) theOrderOfUserIsPickedUpAt(userID, moment string) error {
	order, err := c.currentOrder(userID)
	if err != nil {
		return err
	}
	expected, err := time.Parse(time.RFC3339, moment)
	if err != nil {
		return err
	}
	if order.PickupAt != expected.UnixMilli() {
		return fmt.Errorf("expected pickupAt %d, got %d", expected.UnixMilli(), order.PickupAt)
	}
	return nil
}

func (c *storefrontTestContext) theOrderOfUserTotals(userID, total string) error {
	order, err := c.currentOrder(userID)
	if err != nil {
		return err
	}
	computed, err := c.orders.Total(c.ctx, order)
	if err != nil {
		return err
	}
	if computed.Total.StringFixed(2) != total {
		return fmt.Errorf("expected total %s, got %s", total, computed.Total.StringFixed(2))
	}
	return nil
}

func (c *storefrontTestContext) theRequestFailsWith(message string) error {
	if c.err == nil {
		return errors.New("expected the request to fail but it succeeded")
	}
	if !strings.Contains(c.err.Error(), message) {
		return fmt.Errorf("expected error containing %q, got %q", message, c.err.Error())
	}
	return nil
}

func (c *storefrontTestContext) restaurantHasSizes(restaurantID, names string) error {
	for _, name := range strings.Split(names, ",") {
		c.seedSize(restaurantID, strings.TrimSpace(name))
	}
	return nil
}

func (c *storefrontTestContext) restaurantHasDish(restaurantID, dishID string) error {
	c.store.dishes[dishID] = domain.Dish{ID: dishID, Name: dishID, RestaurantID: restaurantID, Available: true}
	return nil
}

func (c *storefrontTestContext) dishCostsInSize(dishID, value, sizeID string) error {
	dish, ok := c.store.dishes[dishID]
	if !ok {
		return fmt.Errorf("unknown dish %s", dishID)
	}
	return c.dishOfRestaurantCostsInSizeAsPrice(dishID, dish.RestaurantID, value, sizeID, dishID+"-"+sizeID)
}

func (c *storefrontTestContext) restaurantSavesThePricesOfDish(restaurantID, dishID string, table *godog.Table) error {
	submitted := make([]domain.SizePrice, 0, len(table.Rows)-1)
	for _, row := range table.Rows[1:] {
		price, err := decimal.NewFromString(row.Cells[1].Value)
		if err != nil {
			return err
		}
		submitted = append(submitted, domain.SizePrice{SizeID: row.Cells[0].Value, Price: price})
	}
	_, c.err = c.prices.SavePrices(c.ctx, restaurantID, dishID, submitted)
	return nil
}

func (c *storefrontTestContext) dishHasPrices(dishID string, table *godog.Table) error {
	prices, err := c.store.ListPricesByDish(c.ctx, dishID)
	if err != nil {
		return err
	}
	if len(prices) != len(table.Rows)-1 {
		return fmt.Errorf("expected %d prices, got %v", len(table.Rows)-1, prices)
	}
	for i, row := range table.Rows[1:] {
		expected := decimal.RequireFromString(row.Cells[1].Value)
		if prices[i].SizeID != row.Cells[0].Value || !prices[i].Price.Equal(expected) {
			return fmt.Errorf("expected %s at %s, got %s at %s",
				row.Cells[0].Value, expected, prices[i].SizeID, prices[i].Price)
		}
	}
	return nil
}

func (c *storefrontTestContext) priceWritesHappened(count int) error {
	if c.store.priceWrites != count {
		return fmt.Errorf("expected %d price writes, got %d", count, c.store.priceWrites)
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &storefrontTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^today is "([^"]*)" in "([^"]*)"$`, tc.todayIsIn)
	ctx.Step(`^dish "([^"]*)" of restaurant "([^"]*)" costs (\d+(?:\.\d+)?) in size "([^"]*)" as price "([^"]*)"$`, tc.dishOfRestaurantCostsInSizeAsPrice)
	ctx.Step(`^user "([^"]*)" has no cart$`, tc.userHasNoCart)
	ctx.Step(`^restaurant "([^"]*)" has sizes "([^"]*)"$`, tc.restaurantHasSizes)
	ctx.Step(`^restaurant "([^"]*)" has dish "([^"]*)"$`, tc.restaurantHasDish)
	ctx.Step(`^dish "([^"]*)" costs (\d+(?:\.\d+)?) in size "([^"]*)"$`, tc.dishCostsInSize)

	// When steps
	ctx.Step(`^user "([^"]*)" adds (\d+) of price "([^"]*)" from restaurant "([^"]*)"$`, tc.userAddsOfPriceFromRestaurant)
	ctx.Step(`^user "([^"]*)" places the cart for pickup at "([^"]*)"$`, tc.userPlacesTheCartForPickupAt)
	ctx.Step(`^user "([^"]*)" cancels the order$`, tc.userCancelsTheOrder)
	ctx.Step(`^restaurant "([^"]*)" accepts the order of user "([^"]*)"$`, tc.restaurantAcceptsTheOrderOfUser)
	ctx.Step(`^restaurant "([^"]*)" marks the order of user "([^"]*)" as picked up$`, tc.restaurantMarksTheOrderOfUserAsPickedUp)
	ctx.Step(`^price "([^"]*)" is deleted$`, tc.priceIsDeleted)
	ctx.Step(`^restaurant "([^"]*)" saves the prices of dish "([^"]*)":$`, tc.restaurantSavesThePricesOfDish)

	// Then steps
	ctx.Step(`^user "([^"]*)" has a cart for restaurant "([^"]*)" with status "([^"]*)"$`, tc.userHasACartForRestaurantWithStatus)
	ctx.Step(`^the cart of user "([^"]*)" contains:$`, tc.theCartOfUserContains)
	ctx.Step(`^there (?:is|are) (\d+) orders? for user "([^"]*)"$`, tc.thereAreOrdersForUser)
	ctx.Step(`^the order of user "([^"]*)" has status "([^"]*)"$`, tc.theOrderOfUserHasStatus)
	ctx.Step(`^the order of user "([^"]*)" is picked up at "([^"]*)"$`, tc.theOrderOfUserIsPickedUpAt)
	ctx.Step(`^the order of user "([^"]*)" totals "([^"]*)"$`, tc.theOrderOfUserTotals)
	ctx.Step(`^the request fails with "([^"]*)"$`, tc.theRequestFailsWith)
	ctx.Step(`^dish "([^"]*)" has prices:$`, tc.dishHasPrices)
	ctx.Step(`^(\d+) price writes? happened$`, tc.priceWritesHappened)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
