package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/codesbysuraj/Quickart/api"
	"github.com/codesbysuraj/Quickart/initializers"
	"github.com/codesbysuraj/Quickart/models"
	"github.com/codesbysuraj/Quickart/session"
	"github.com/codesbysuraj/Quickart/ui"
	"github.com/codesbysuraj/Quickart/utils"
)

const usage = `quickkart <command> [args]

  login <username> <password>       sign in and store the session
  register <username> <password> <role> <pincode>
  logout                            clear the stored session
  whoami                            show the stored session record
  products [pincode]                list products, optionally by pincode
  product <id>                      show one product
  add-product <name> <category> <price> <stock>
  cart                              show the signed-in user's cart
  cart-add <productId> [quantity]
  cart-rm <cartItemId>
  cart-qty <cartItemId> <quantity>
  order <pincode>                   place an order from the cart
  orders                            list the signed-in user's orders
  order-details <orderId>
  vendor-orders                     list orders containing your products
  addresses                         list the signed-in user's addresses
  notifications                     list vendor notifications`

func main() {
	initializers.LoadEnv()
	cfg := initializers.LoadConfig()

	log := utils.NewLogger(os.Stdout, "quickkart")
	store, err := session.NewFileStore(cfg.SessionDir, log)
	if err != nil {
		log.Error("Cannot open session store", "dir", cfg.SessionDir, "error", err)
		os.Exit(1)
	}
	toasts := ui.NewNotificationCenter(os.Stdout)

	client := api.New(api.Config{
		BaseURL:       cfg.APIBaseURL,
		Sessions:      store,
		Toasts:        toasts,
		Redirect:      func(target string) { log.Warn("Please sign in again", "at", target) },
		RedirectDelay: cfg.RedirectDelay,
		LoginTarget:   cfg.LoginTarget,
		Logger:        log,
	})

	if len(os.Args) < 2 {
		fmt.Println(usage)
		os.Exit(2)
	}
	if err := run(client, store, toasts, os.Args[1], os.Args[2:]); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

func run(client *api.Client, store session.Store, toasts *ui.NotificationCenter, command string, args []string) error {
	ctx := context.Background()

	switch command {
	case "login":
		if len(args) != 2 {
			return fmt.Errorf("usage: login <username> <password>")
		}
		return report(client.Login(ctx, args[0], args[1]))

	case "register":
		if len(args) != 4 {
			return fmt.Errorf("usage: register <username> <password> <role> <pincode>")
		}
		role := strings.ToUpper(args[2])
		if role != models.RoleCustomer && role != models.RoleVendor {
			return fmt.Errorf("role must be %s or %s", models.RoleCustomer, models.RoleVendor)
		}
		return report(client.Register(ctx, models.User{
			Username: args[0],
			Password: args[1],
			Role:     role,
			Pincode:  args[3],
		}))

	case "logout":
		dialog := ui.ConfirmDialog(os.Stdout, ui.ConfirmOptions{
			Title:   "Sign out",
			Message: "Clear the stored session?",
		})
		if !dialog.Await(os.Stdin) {
			return nil
		}
		client.Logout()
		return nil

	case "whoami":
		user := store.CurrentUser()
		if user == nil {
			fmt.Println("Not logged in.")
			return nil
		}
		return printJSON(user)

	case "products":
		pincode := ""
		if len(args) > 0 {
			pincode = args[0]
		}
		return report(client.GetProducts(ctx, pincode))

	case "product":
		id, err := parseID(args, 0)
		if err != nil {
			return err
		}
		return report(client.GetProductByID(ctx, id))

	case "add-product":
		if len(args) != 4 {
			return fmt.Errorf("usage: add-product <name> <category> <price> <stock>")
		}
		price, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return fmt.Errorf("invalid price %q", args[2])
		}
		stock, err := strconv.Atoi(args[3])
		if err != nil {
			return fmt.Errorf("invalid stock %q", args[3])
		}
		res := client.AddProduct(ctx, models.Product{
			Name:     args[0],
			Category: args[1],
			Price:    price,
			Stock:    stock,
		})
		if res.Success {
			toasts.NotifySuccess("Product " + res.Data.Name + " added")
		}
		return report(res)

	case "cart":
		username, err := requireLogin(store)
		if err != nil {
			return err
		}
		return report(client.GetCart(ctx, username))

	case "cart-add":
		username, err := requireLogin(store)
		if err != nil {
			return err
		}
		id, err := parseID(args, 0)
		if err != nil {
			return err
		}
		quantity := 1
		if len(args) > 1 {
			if quantity, err = strconv.Atoi(args[1]); err != nil {
				return fmt.Errorf("invalid quantity %q", args[1])
			}
		}
		return report(client.AddToCart(ctx, username, id, quantity))

	case "cart-rm":
		id, err := parseID(args, 0)
		if err != nil {
			return err
		}
		dialog := ui.ConfirmDialog(os.Stdout, ui.ConfirmOptions{
			Title:   "Remove item",
			Message: fmt.Sprintf("Remove cart item %d?", id),
		})
		if !dialog.Await(os.Stdin) {
			return nil
		}
		return report(client.RemoveFromCart(ctx, id))

	case "cart-qty":
		id, err := parseID(args, 0)
		if err != nil {
			return err
		}
		if len(args) < 2 {
			return fmt.Errorf("usage: cart-qty <cartItemId> <quantity>")
		}
		quantity, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid quantity %q", args[1])
		}
		return report(client.UpdateCartQuantity(ctx, id, quantity))

	case "order":
		username, err := requireLogin(store)
		if err != nil {
			return err
		}
		pincode := ""
		if len(args) > 0 {
			pincode = args[0]
		}
		res := client.PlaceOrder(ctx, username, pincode)
		if res.Success {
			toasts.NotifySuccess(fmt.Sprintf("Order #%d placed", res.Data.ID))
		}
		return report(res)

	case "orders":
		username, err := requireLogin(store)
		if err != nil {
			return err
		}
		return report(client.GetOrders(ctx, username))

	case "order-details":
		id, err := parseID(args, 0)
		if err != nil {
			return err
		}
		return report(client.GetOrderDetails(ctx, id))

	case "vendor-orders":
		username, err := requireLogin(store)
		if err != nil {
			return err
		}
		if !session.IsVendor(store) {
			return fmt.Errorf("vendor-orders requires a vendor session")
		}
		return report(client.GetVendorOrders(ctx, username))

	case "addresses":
		username, err := requireLogin(store)
		if err != nil {
			return err
		}
		return report(client.GetAddresses(ctx, username))

	case "notifications":
		user := store.CurrentUser()
		if user == nil || user.Role != models.RoleVendor {
			return fmt.Errorf("notifications requires a vendor session")
		}
		return report(client.GetVendorNotifications(ctx, user.ID))

	default:
		fmt.Println(usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func requireLogin(store session.Store) (string, error) {
	user := store.CurrentUser()
	if user == nil {
		return "", fmt.Errorf("not logged in")
	}
	return user.Username, nil
}

func parseID(args []string, index int) (int64, error) {
	if len(args) <= index {
		return 0, fmt.Errorf("missing id argument")
	}
	id, err := strconv.ParseInt(args[index], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", args[index])
	}
	return id, nil
}

func report[T any](res api.Result[T]) error {
	if !res.Success {
		return fmt.Errorf("%s", res.Error)
	}
	return printJSON(res.Data)
}

func printJSON(v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(raw))
	return nil
}
