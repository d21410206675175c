package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/LuisAngelSanchezRomero/product-admin/internal/client"
	"github.com/LuisAngelSanchezRomero/product-admin/internal/domain"
	"github.com/LuisAngelSanchezRomero/product-admin/internal/export"
	"github.com/LuisAngelSanchezRomero/product-admin/internal/list"
	"github.com/LuisAngelSanchezRomero/product-admin/internal/ui"
	"github.com/hashicorp/go-hclog"
	"github.com/nicholasjackson/env"
)

// Environment variables
var (
	backendURL = env.String("BACKEND_URL", false,
		"http://localhost:8080", "Base URL of the product backend")
	logLevel = env.String("LOG_LEVEL", false,
		"info", "Log output level [debug, info, trace]")
	reportDir = env.String("REPORT_DIR", false,
		".", "Directory exported reports are saved to")
)

const maxReportSize = 10 << 20 // 10 MB

func main() {
	env.Parse()

	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "productctl",
		Level: hclog.LevelFromString(*logLevel),
	})

	saver, err := export.NewLocal(*reportDir, maxReportSize)
	if err != nil {
		logger.Error("Failed to prepare report directory", "dir", *reportDir, "error", err)
		os.Exit(1)
	}

	productClient := client.New(*backendURL, nil, logger.Named("product-client"))
	console := ui.NewConsole(os.Stdin, os.Stdout)
	controller := list.NewController(
		productClient,
		console,
		saver,
		list.NewNotifier(list.DefaultNotificationTTL),
		logger.Named("product-list"),
	)
	defer controller.Close()

	ctx := context.Background()

	controller.Load(ctx)
	printNotes(controller)
	printProducts(controller.Products())

	run(ctx, controller, productClient, console)
}

func run(ctx context.Context, controller *list.Controller, productClient client.ProductClient, console *ui.Console) {
	scanner := bufio.NewScanner(os.Stdin)
	fmt.Println("Type 'help' for the available commands.")

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		cmd, arg := fields[0], ""
		if len(fields) > 1 {
			arg = fields[1]
		}

		switch cmd {
		case "list":
			controller.Load(ctx)
			printProducts(controller.Products())

		case "add":
			controller.Add()
			fillAndSave(ctx, controller, console)

		case "edit":
			controller.Edit(arg)
			if controller.FormVisible() {
				fillAndSave(ctx, controller, console)
			}

		case "rm":
			controller.SoftDelete(ctx, arg)

		case "restore":
			controller.Restore(ctx, arg)

		case "purge":
			controller.HardDelete(ctx, arg)

		case "show":
			product, err := productClient.GetByCode(ctx, arg)
			if err != nil {
				fmt.Println("Could not find the product.")
				continue
			}
			printProducts(domain.Products{*product})

		case "filter":
			products, err := productClient.GetByStatus(ctx, domain.Status(arg))
			if err != nil {
				fmt.Println("Could not filter the products.")
				continue
			}
			printProducts(products)

		case "report":
			controller.ExportReport(ctx)

		case "help":
			printHelp()

		case "quit", "exit":
			return

		default:
			fmt.Printf("Unknown command %q. Type 'help'.\n", cmd)
		}

		printNotes(controller)
	}
}

// fillAndSave prompts for the form fields and submits. Validation failures
// re-prompt so the user can correct the flagged fields.
func fillAndSave(ctx context.Context, controller *list.Controller, console *ui.Console) {
	for controller.FormVisible() {
		console.FillForm(controller.Form())

		errs := controller.Save(ctx)
		if len(errs) == 0 {
			return
		}

		fmt.Println("The form has invalid fields:")
		console.ShowFieldErrors(errs)
		if !console.Confirm("Correct them?") {
			controller.Cancel()
			return
		}
	}
}

func printProducts(products domain.Products) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tPROVIDER\tNAME\tUNIT\tPRICE\tSTOCK\tSTATUS\tCREATED")
	for _, p := range products {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%.2f\t%d\t%s\t%s\n",
			p.Code, p.ProviderID, p.Name, p.Unit, p.Price, p.Stock, p.Status, p.CreatedDate)
	}
	w.Flush()
}

func printNotes(controller *list.Controller) {
	if msg := controller.SuccessMessage(); msg != "" {
		fmt.Println("OK:", msg)
	}
	if msg := controller.ErrorMessage(); msg != "" {
		fmt.Println("ERROR:", msg)
	}
}

func printHelp() {
	fmt.Print(`Commands:
  list              reload and print the product list
  add               create a new product
  edit <code>       edit an active product
  rm <code>         soft delete (deactivate) a product
  restore <code>    restore a deactivated product
  purge <code>      permanently delete a product
  show <code>       fetch a single product
  filter <status>   fetch products by status (Activo/Inactivo)
  report            download the PDF report
  quit              exit
`)
}
