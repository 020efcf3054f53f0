package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"go.uber.org/zap"

	"github.com/webshop/storefront/internal/app"
	"github.com/webshop/storefront/internal/infrastructure/api"
	"github.com/webshop/storefront/internal/infrastructure/config"
	"github.com/webshop/storefront/internal/infrastructure/logger"
	"github.com/webshop/storefront/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("starting storefront",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("api", cfg.API.BaseURL),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shopAPI := api.NewShopAPI(api.NewClient(cfg.API.BaseURL, cfg.API.Timeout), cfg.CDN.BaseURL)
	a := app.New(cfg, shopAPI, log)
	a.Start(ctx)

	runPrompt(ctx, a)
}

// runPrompt drives the UI tree from stdin, injecting events the way a
// browser would. Every state change still flows through the bus.
func runPrompt(ctx context.Context, a *app.App) {
	fmt.Println("storefront - type 'help' for commands")
	printCatalog(a)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() || ctx.Err() != nil {
			return
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "help":
			printHelp()
		case "list":
			printCatalog(a)
		case "show":
			clickNth(a, ".gallery", args)
		case "toggle":
			clickInModal(a, ".card__button")
		case "basket":
			click(a, ".header__basket")
		case "remove":
			removeNth(a, args)
		case "checkout":
			clickInModal(a, ".basket__button")
		case "pay":
			if len(args) == 1 {
				clickInModal(a, "button[name="+args[0]+"]")
			}
		case "set":
			if len(args) >= 2 {
				typeInto(a, args[0], strings.Join(args[1:], " "))
			}
		case "next", "submit":
			submitModalForm(a)
		case "close":
			a.Document().DispatchKey("Escape")
		case "quit", "exit":
			return
		default:
			fmt.Println("unknown command, try 'help'")
		}
		printModal(a)
	}
}

func printHelp() {
	fmt.Println(`commands:
  list               show the catalog
  show <n>           open product n in the preview
  toggle             add/remove the previewed product
  basket             open the basket
  remove <n>         remove row n from the basket
  checkout           start the order wizard
  pay card|cash      choose the payment method
  set <field> <v>    fill a form field (address, email, phone)
  next | submit      submit the current wizard step
  close              close the modal
  quit               exit`)
}

func printCatalog(a *app.App) {
	for i, card := range ui.Find(a.Document().Body, ".gallery").Children() {
		fmt.Printf("  %d. %s - %s\n", i+1,
			ui.Find(card, ".card__title").Text,
			ui.Find(card, ".card__price").Text,
		)
	}
	fmt.Printf("  basket: %s\n", ui.Find(a.Document().Body, ".header__basket-counter").Text)
}

func printModal(a *app.App) {
	if !a.Modal().IsOpen() {
		fmt.Printf("  basket: %s\n", ui.Find(a.Document().Body, ".header__basket-counter").Text)
		return
	}
	for _, content := range a.Modal().Content() {
		switch {
		case content.HasClass("basket"):
			for i, row := range ui.Find(content, ".basket__list").Children() {
				title := ui.Find(row, ".card__title")
				price := ui.Find(row, ".card__price")
				if title != nil && price != nil {
					fmt.Printf("  %d. %s - %s\n", i+1, title.Text, price.Text)
				}
			}
			fmt.Printf("  total: %s\n", ui.Find(content, ".basket__price").Text)
		case content.HasClass("order-success"):
			fmt.Printf("  %s\n", ui.Find(content, ".order-success__description").Text)
		case content.Tag == "form":
			fmt.Printf("  form: %s\n", content.Name)
			if errs := ui.Find(content, ".form__errors"); errs != nil && errs.Text != "" {
				fmt.Printf("  ! %s\n", errs.Text)
			}
		default:
			title := ui.Find(content, ".card__title")
			price := ui.Find(content, ".card__price")
			if title != nil && price != nil {
				fmt.Printf("  %s - %s\n", title.Text, price.Text)
			}
		}
	}
}

func click(a *app.App, selector string) {
	if el := ui.Find(a.Document().Body, selector); el != nil {
		el.Click()
	}
}

func clickInModal(a *app.App, selector string) {
	for _, content := range a.Modal().Content() {
		if el := ui.Find(content, selector); el != nil {
			el.Click()
			return
		}
	}
	fmt.Println("nothing to click here")
}

func clickNth(a *app.App, listSelector string, args []string) {
	n, err := strconv.Atoi(strings.Join(args, ""))
	if err != nil {
		fmt.Println("expected an item number")
		return
	}
	items := ui.Find(a.Document().Body, listSelector).Children()
	if n < 1 || n > len(items) {
		fmt.Println("no such item")
		return
	}
	items[n-1].Click()
}

func removeNth(a *app.App, args []string) {
	n, err := strconv.Atoi(strings.Join(args, ""))
	if err != nil {
		fmt.Println("expected a row number")
		return
	}
	for _, content := range a.Modal().Content() {
		if list := ui.Find(content, ".basket__list"); list != nil {
			rows := list.Children()
			if n < 1 || n > len(rows) {
				fmt.Println("no such row")
				return
			}
			if del := ui.Find(rows[n-1], ".basket__item-delete"); del != nil {
				del.Click()
			}
			return
		}
	}
	fmt.Println("basket is not open")
}

func typeInto(a *app.App, field, value string) {
	for _, content := range a.Modal().Content() {
		if input := ui.Find(content, "input[name="+field+"]"); input != nil {
			input.Value = value
			input.Dispatch(&ui.Event{Type: ui.Input, Field: field, Value: value})
			return
		}
	}
	fmt.Println("no such field on this step")
}

func submitModalForm(a *app.App) {
	for _, content := range a.Modal().Content() {
		if content.Tag == "form" {
			content.Dispatch(&ui.Event{Type: ui.Submit})
			return
		}
	}
	fmt.Println("no form on screen")
}
