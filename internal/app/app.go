// Package app wires the storefront together: one application context object
// owning the bus, the domain models, the view components and the API client,
// plus the handler registrations that connect them. All cross-component
// communication goes through the event bus; nothing here holds a reference
// into another component's internals.
package app

import (
	"context"

	"go.uber.org/zap"

	"github.com/webshop/storefront/internal/domain/shop"
	"github.com/webshop/storefront/internal/event"
	"github.com/webshop/storefront/internal/infrastructure/api"
	"github.com/webshop/storefront/internal/infrastructure/config"
	"github.com/webshop/storefront/internal/ui"
	"github.com/webshop/storefront/internal/view"
)

// App is the application context, constructed once at startup.
type App struct {
	cfg     *config.Config
	log     *zap.Logger
	bus     *event.Bus
	shopAPI *api.ShopAPI

	catalog *shop.CatalogModel
	basket  *shop.BasketModel

	templates    view.Templates
	doc          *ui.Document
	page         *view.Page
	modal        *view.Modal
	basketView   *view.Basket
	orderForm    *view.OrderForm
	contactsForm *view.ContactsForm
	success      *view.Success

	baseCtx context.Context
}

// New builds the full component graph and registers every event handler.
func New(cfg *config.Config, shopAPI *api.ShopAPI, log *zap.Logger) *App {
	bus := event.NewBus(log)
	body := view.NewPageElement()

	a := &App{
		cfg:       cfg,
		log:       log,
		bus:       bus,
		shopAPI:   shopAPI,
		catalog:   shop.NewCatalogModel(bus),
		basket:    shop.NewBasketModel(bus),
		templates: view.NewTemplates(),
		doc:       ui.NewDocument(body),
		baseCtx:   context.Background(),
	}

	a.page = view.NewPage(body, bus)
	a.modal = view.NewModal(ui.MustFind(body, "#modal-container"), a.doc, bus)
	a.basketView = view.NewBasket(ui.CloneTemplate(a.templates.Basket), bus)
	a.orderForm = view.NewOrderForm(ui.CloneTemplate(a.templates.Order), bus)
	a.contactsForm = view.NewContactsForm(ui.CloneTemplate(a.templates.Contacts), bus)
	a.success = view.NewSuccess(ui.CloneTemplate(a.templates.Success), view.SuccessActions{
		OnClick: func() { a.modal.Close() },
	})

	a.wire()
	return a
}

// Start records the base context for outbound calls and loads the catalog.
func (a *App) Start(ctx context.Context) {
	a.baseCtx = ctx
	a.LoadCatalog(ctx)
}

// LoadCatalog fetches the product list and replaces the catalog. A failed
// load is logged and otherwise silently degraded: the gallery stays empty.
func (a *App) LoadCatalog(ctx context.Context) {
	items, err := a.shopAPI.GetProductList(ctx)
	if err != nil {
		a.log.Error("catalog load failed", zap.Error(err))
		return
	}
	a.catalog.SetCatalog(items)
	a.log.Info("catalog loaded", zap.Int("items", len(items)))
}

// Document returns the document owning the UI tree, for drivers that inject
// events the way a browser would.
func (a *App) Document() *ui.Document { return a.doc }

// Bus returns the application event bus.
func (a *App) Bus() *event.Bus { return a.bus }

// Catalog returns the catalog model.
func (a *App) Catalog() *shop.CatalogModel { return a.catalog }

// Basket returns the basket model.
func (a *App) Basket() *shop.BasketModel { return a.basket }

// Modal returns the modal host.
func (a *App) Modal() *view.Modal { return a.modal }
