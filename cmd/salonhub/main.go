// salonhub is the command-line dashboard for salon owners and platform
// admins. It talks to the platform REST API; run cmd/salonhub-stub for
// a local backend.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"text/tabwriter"

	"salonhub/internal/api"
	"salonhub/internal/config"
	"salonhub/internal/domain"
	"salonhub/internal/forms"
	"salonhub/internal/listview"
	"salonhub/internal/policy"
	"salonhub/internal/recovery"
	"salonhub/internal/session"
)

type app struct {
	client   *api.Client
	sessions *session.Store
	stdin    *bufio.Reader
}

func main() {
	log.SetFlags(0)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	client := api.New(api.Config{BaseURL: cfg.APIBaseURL, Timeout: cfg.HTTPTimeout})
	sessions := session.NewStore(client, session.NewFileStorage(cfg.SessionFile()))
	client.SetTokenSource(sessions)

	a := &app{client: client, sessions: sessions, stdin: bufio.NewReader(os.Stdin)}

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	ctx := context.Background()
	if err := a.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		log.Fatalf("error: %v", err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: salonhub <command> [args]

  login <email>            sign in (password read from stdin)
  logout                   sign out and clear the stored session
  whoami                   show the current session
  refresh                  re-fetch the signed-in profile
  forgot-password          interactive password recovery
  salons <subcommand>      list, create, update, approve, reject, delete
  services <subcommand>    list, create, update, delete
  bookings <subcommand>    list, confirm, complete, cancel
  users <subcommand>       list, set-role, delete
  analytics [scope]        system|users|bookings|salons, or -salon <id>`)
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		return a.login(ctx, args)
	case "logout":
		a.sessions.Logout(ctx)
		fmt.Println("signed out")
		return nil
	case "whoami":
		return a.whoami()
	case "refresh":
		if err := a.sessions.RefreshUser(ctx); err != nil {
			return err
		}
		return a.whoami()
	case "forgot-password":
		return a.forgotPassword(ctx)
	case "salons":
		return a.salons(ctx, args)
	case "services":
		return a.services(ctx, args)
	case "bookings":
		return a.bookings(ctx, args)
	case "users":
		return a.users(ctx, args)
	case "analytics":
		return a.analytics(ctx, args)
	default:
		usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func (a *app) login(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: salonhub login <email>")
	}
	fmt.Print("password: ")
	password, err := a.readLine()
	if err != nil {
		return err
	}

	form := forms.LoginForm{Email: args[0], Password: password}
	if fields := form.Validate(); len(fields) > 0 {
		return fmt.Errorf("invalid input: %v", fields)
	}

	if err := a.sessions.Login(ctx, args[0], password); err != nil {
		return err
	}
	current := a.sessions.Current()
	fmt.Printf("signed in as %s (%s)\n", current.User.Name, current.User.Role)
	fmt.Printf("sections: %s\n", strings.Join(policy.NavSections(current.User.Role), ", "))
	return nil
}

func (a *app) whoami() error {
	current := a.sessions.Current()
	if current == nil {
		fmt.Println("not signed in")
		return nil
	}
	w := newTable()
	fmt.Fprintf(w, "name\t%s\n", current.User.Name)
	fmt.Fprintf(w, "email\t%s\n", current.User.Email)
	fmt.Fprintf(w, "role\t%s\n", current.User.Role)
	fmt.Fprintf(w, "verified\t%v\n", current.User.IsVerified)
	return w.Flush()
}

func (a *app) forgotPassword(ctx context.Context) error {
	flow := recovery.New(a.client)

	fmt.Print("email: ")
	email, err := a.readLine()
	if err != nil {
		return err
	}
	if err := flow.SubmitEmail(ctx, email); err != nil {
		return err
	}
	fmt.Println("a verification code was sent if the address is registered")

	for flow.State() == recovery.StateOTP {
		fmt.Print("code (or 'resend'): ")
		code, err := a.readLine()
		if err != nil {
			return err
		}
		if code == "resend" {
			if err := flow.Resend(ctx); err != nil {
				fmt.Printf("resend failed: %v\n", err)
			}
			continue
		}
		if err := flow.SubmitCode(ctx, code); err != nil {
			fmt.Printf("verification failed: %v\n", err)
		}
	}

	for flow.State() == recovery.StateReset {
		fmt.Print("new password: ")
		newPassword, err := a.readLine()
		if err != nil {
			return err
		}
		fmt.Print("confirm password: ")
		confirm, err := a.readLine()
		if err != nil {
			return err
		}
		if err := flow.SubmitNewPassword(ctx, newPassword, confirm); err != nil {
			fmt.Printf("reset failed: %v\n", err)
		}
	}

	fmt.Println("password updated, you can sign in now")
	return nil
}

func (a *app) salons(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}
	role, err := a.requireRole()
	if err != nil {
		return err
	}

	switch args[0] {
	case "list":
		fs := flag.NewFlagSet("salons list", flag.ContinueOnError)
		page := fs.Int("page", 1, "page number")
		search := fs.String("search", "", "search by name or address")
		status := fs.String("status", "", "filter by status")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}

		fetch := func(ctx context.Context, p, limit int, f listview.Filters) (listview.Page[domain.Salon], error) {
			q := api.ListQuery{Page: p, Limit: limit, Search: f.Search, Status: f.Status}
			var (
				salons []domain.Salon
				meta   *api.Meta
				err    error
			)
			if role == domain.RoleAdmin {
				salons, meta, err = a.client.AdminSalons(ctx, q)
			} else {
				salons, meta, err = a.client.MySalons(ctx, q)
			}
			if err != nil {
				return listview.Page[domain.Salon]{}, err
			}
			return listview.Page[domain.Salon]{Items: salons, Total: meta.Total, Pages: meta.Pages}, nil
		}

		ctrl := listview.New(fetch, api.SalonsPageSize)
		if err := ctrl.SetFilters(ctx, listview.Filters{Search: *search, Status: *status}); err != nil {
			return err
		}
		if *page > 1 {
			if err := ctrl.SetPage(ctx, *page); err != nil {
				return err
			}
		}

		w := newTable()
		fmt.Fprintln(w, "ID\tNAME\tADDRESS\tSTATUS\tRATING")
		for _, salon := range ctrl.Items() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.1f (%d)\n",
				salon.ID, salon.Name, salon.Address, salon.Status, salon.Rating, salon.ReviewCount)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Printf("page %d of %d (%d total)\n", ctrl.Page(), ctrl.Pages(), ctrl.Total())
		return nil

	case "create":
		if !policy.Allowed(role, policy.ActionSalonCreate) {
			return fmt.Errorf("your role cannot create salons")
		}
		fs := flag.NewFlagSet("salons create", flag.ContinueOnError)
		name := fs.String("name", "", "salon name")
		address := fs.String("address", "", "street address")
		description := fs.String("description", "", "description")
		phone := fs.String("phone", "", "contact phone")
		email := fs.String("email", "", "contact email")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}

		form := forms.SalonForm{Name: *name, Description: *description, Address: *address, Phone: *phone, Email: *email}
		if fields := form.Validate(); len(fields) > 0 {
			return fmt.Errorf("invalid input: %v", fields)
		}

		salon, err := a.client.CreateSalon(ctx, api.SalonInput{
			Name:         *name,
			Description:  *description,
			Address:      *address,
			Phone:        *phone,
			Email:        *email,
			WorkingHours: domain.DefaultWorkingHours(),
		})
		if err != nil {
			return err
		}
		fmt.Printf("created salon %s (status %s, pending admin approval)\n", salon.ID, salon.Status)
		return nil

	case "update":
		if len(args) < 2 {
			return fmt.Errorf("usage: salonhub salons update <id> [flags]")
		}
		if !policy.Allowed(role, policy.ActionSalonEdit) {
			return fmt.Errorf("your role cannot edit salons")
		}
		id := args[1]
		fs := flag.NewFlagSet("salons update", flag.ContinueOnError)
		name := fs.String("name", "", "salon name")
		address := fs.String("address", "", "street address")
		description := fs.String("description", "", "description")
		phone := fs.String("phone", "", "contact phone")
		email := fs.String("email", "", "contact email")
		if err := fs.Parse(args[2:]); err != nil {
			return err
		}
		if *phone != "" && !forms.ValidPhone(*phone) {
			return fmt.Errorf("invalid input: enter a valid phone number")
		}

		salon, err := a.client.UpdateSalon(ctx, id, api.SalonInput{
			Name:        *name,
			Description: *description,
			Address:     *address,
			Phone:       *phone,
			Email:       *email,
		})
		if err != nil {
			return err
		}
		fmt.Printf("updated salon %s\n", salon.ID)
		return nil

	case "approve", "reject":
		if len(args) != 2 {
			return fmt.Errorf("usage: salonhub salons %s <id>", args[0])
		}
		action := policy.ActionSalonApprove
		status := domain.SalonApproved
		if args[0] == "reject" {
			action = policy.ActionSalonReject
			status = domain.SalonRejected
		}
		if !policy.Allowed(role, action) {
			return fmt.Errorf("your role cannot %s salons", args[0])
		}
		salon, err := a.client.UpdateSalonStatus(ctx, args[1], status)
		if err != nil {
			return err
		}
		fmt.Printf("salon %s is now %s\n", salon.ID, salon.Status)
		return nil

	case "delete":
		if len(args) != 2 {
			return fmt.Errorf("usage: salonhub salons delete <id>")
		}
		if !policy.Allowed(role, policy.ActionSalonDelete) {
			return fmt.Errorf("your role cannot delete salons")
		}
		if err := a.client.DeleteSalon(ctx, args[1]); err != nil {
			return err
		}
		fmt.Println("salon deleted")
		return nil

	default:
		return fmt.Errorf("unknown salons subcommand %q", args[0])
	}
}

func (a *app) services(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}
	role, err := a.requireRole()
	if err != nil {
		return err
	}
	if !policy.Allowed(role, policy.ActionServiceManage) {
		return fmt.Errorf("your role cannot manage services")
	}

	switch args[0] {
	case "list":
		fs := flag.NewFlagSet("services list", flag.ContinueOnError)
		salonID := fs.String("salon", "", "restrict to one salon")
		page := fs.Int("page", 1, "page number")
		search := fs.String("search", "", "search by name")
		category := fs.String("category", "", "filter by category")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}

		fetch := func(ctx context.Context, p, limit int, f listview.Filters) (listview.Page[domain.Service], error) {
			q := api.ListQuery{Page: p, Limit: limit, Search: f.Search, Category: f.Category}
			services, meta, err := a.client.Services(ctx, *salonID, q)
			if err != nil {
				return listview.Page[domain.Service]{}, err
			}
			return listview.Page[domain.Service]{Items: services, Total: meta.Total, Pages: meta.Pages}, nil
		}

		ctrl := listview.New(fetch, api.DefaultPageSize)
		if err := ctrl.SetFilters(ctx, listview.Filters{Search: *search, Category: *category}); err != nil {
			return err
		}
		if *page > 1 {
			if err := ctrl.SetPage(ctx, *page); err != nil {
				return err
			}
		}

		w := newTable()
		fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tPRICE\tDURATION\tACTIVE")
		for _, service := range ctrl.Items() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%dm\t%v\n",
				service.ID, service.Name, service.Category, service.Price, service.Duration, service.IsActive)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Printf("page %d of %d (%d total)\n", ctrl.Page(), ctrl.Pages(), ctrl.Total())
		return nil

	case "create":
		fs := flag.NewFlagSet("services create", flag.ContinueOnError)
		salonID := fs.String("salon", "", "salon id")
		name := fs.String("name", "", "service name")
		description := fs.String("description", "", "description")
		price := fs.Float64("price", 0, "price")
		duration := fs.Int("duration", 60, "duration in minutes")
		category := fs.String("category", "", "category")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}

		form := forms.ServiceForm{Name: *name, Price: *price, Duration: *duration, Category: *category}
		if fields := form.Validate(); len(fields) > 0 {
			return fmt.Errorf("invalid input: %v", fields)
		}

		service, err := a.client.CreateService(ctx, api.ServiceInput{
			SalonID:     *salonID,
			Name:        *name,
			Description: *description,
			Price:       *price,
			Duration:    *duration,
			Category:    *category,
			IsActive:    true,
		})
		if err != nil {
			return err
		}
		fmt.Printf("created service %s\n", service.ID)
		return nil

	case "update":
		if len(args) < 2 {
			return fmt.Errorf("usage: salonhub services update <id> [flags]")
		}
		id := args[1]
		fs := flag.NewFlagSet("services update", flag.ContinueOnError)
		salonID := fs.String("salon", "", "salon id")
		name := fs.String("name", "", "service name")
		description := fs.String("description", "", "description")
		price := fs.Float64("price", 0, "price")
		duration := fs.Int("duration", 60, "duration in minutes")
		category := fs.String("category", "", "category")
		active := fs.Bool("active", true, "bookable")
		if err := fs.Parse(args[2:]); err != nil {
			return err
		}

		form := forms.ServiceForm{Name: *name, Price: *price, Duration: *duration, Category: *category}
		if fields := form.Validate(); len(fields) > 0 {
			return fmt.Errorf("invalid input: %v", fields)
		}

		service, err := a.client.UpdateService(ctx, id, api.ServiceInput{
			SalonID:     *salonID,
			Name:        *name,
			Description: *description,
			Price:       *price,
			Duration:    *duration,
			Category:    *category,
			IsActive:    *active,
		})
		if err != nil {
			return err
		}
		fmt.Printf("updated service %s\n", service.ID)
		return nil

	case "delete":
		if len(args) != 2 {
			return fmt.Errorf("usage: salonhub services delete <id>")
		}
		if err := a.client.DeleteService(ctx, args[1]); err != nil {
			return err
		}
		fmt.Println("service deleted")
		return nil

	default:
		return fmt.Errorf("unknown services subcommand %q", args[0])
	}
}

func (a *app) bookings(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}
	role, err := a.requireRole()
	if err != nil {
		return err
	}

	switch args[0] {
	case "list":
		fs := flag.NewFlagSet("bookings list", flag.ContinueOnError)
		salonID := fs.String("salon", "", "salon id (required for owners)")
		page := fs.Int("page", 1, "page number")
		status := fs.String("status", "", "filter by status")
		search := fs.String("search", "", "search customer or service")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}
		if role == domain.RoleSalonOwner && *salonID == "" {
			return fmt.Errorf("owners must pass -salon <id>")
		}

		fetch := func(ctx context.Context, p, limit int, f listview.Filters) (listview.Page[domain.Booking], error) {
			q := api.ListQuery{Page: p, Limit: limit, Search: f.Search, Status: f.Status}
			var (
				bookings []domain.Booking
				meta     *api.Meta
				err      error
			)
			if role == domain.RoleAdmin && *salonID == "" {
				bookings, meta, err = a.client.AdminBookings(ctx, q)
			} else {
				bookings, meta, err = a.client.SalonBookings(ctx, *salonID, q)
			}
			if err != nil {
				return listview.Page[domain.Booking]{}, err
			}
			return listview.Page[domain.Booking]{Items: bookings, Total: meta.Total, Pages: meta.Pages}, nil
		}

		ctrl := listview.New(fetch, api.DefaultPageSize)
		if err := ctrl.SetFilters(ctx, listview.Filters{Search: *search, Status: *status}); err != nil {
			return err
		}
		if *page > 1 {
			if err := ctrl.SetPage(ctx, *page); err != nil {
				return err
			}
		}

		w := newTable()
		fmt.Fprintln(w, "ID\tCUSTOMER\tSERVICE\tDATE\tTIME\tSTATUS\tAMOUNT\tACTIONS")
		for _, booking := range ctrl.Items() {
			actions := make([]string, 0, 2)
			for _, next := range policy.BookingActions(role, booking.Status) {
				actions = append(actions, actionName(next))
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%.2f\t%s\n",
				booking.ID, booking.CustomerName, booking.ServiceName,
				booking.Date, booking.Time, booking.Status, booking.TotalAmount,
				strings.Join(actions, ","))
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Printf("page %d of %d (%d total)\n", ctrl.Page(), ctrl.Pages(), ctrl.Total())
		return nil

	case "confirm", "complete", "cancel":
		if len(args) != 2 {
			return fmt.Errorf("usage: salonhub bookings %s <id>", args[0])
		}
		if !policy.Allowed(role, policy.ActionBookingUpdate) {
			return fmt.Errorf("your role cannot update bookings")
		}
		var status domain.BookingStatus
		switch args[0] {
		case "confirm":
			status = domain.BookingConfirmed
		case "complete":
			status = domain.BookingCompleted
		case "cancel":
			status = domain.BookingCancelled
		}
		booking, err := a.client.UpdateBookingStatus(ctx, args[1], status)
		if err != nil {
			return err
		}
		fmt.Printf("booking %s is now %s\n", booking.ID, booking.Status)
		return nil

	default:
		return fmt.Errorf("unknown bookings subcommand %q", args[0])
	}
}

func (a *app) users(ctx context.Context, args []string) error {
	if len(args) == 0 {
		args = []string{"list"}
	}
	role, err := a.requireRole()
	if err != nil {
		return err
	}
	if !policy.Allowed(role, policy.ActionUserManage) {
		return fmt.Errorf("your role cannot manage users")
	}

	switch args[0] {
	case "list":
		fs := flag.NewFlagSet("users list", flag.ContinueOnError)
		page := fs.Int("page", 1, "page number")
		search := fs.String("search", "", "search name or email")
		roleFilter := fs.String("role", "", "filter by role")
		if err := fs.Parse(args[1:]); err != nil {
			return err
		}

		fetch := func(ctx context.Context, p, limit int, f listview.Filters) (listview.Page[domain.User], error) {
			q := api.ListQuery{Page: p, Limit: limit, Search: f.Search, Role: *roleFilter}
			users, meta, err := a.client.AdminUsers(ctx, q)
			if err != nil {
				return listview.Page[domain.User]{}, err
			}
			return listview.Page[domain.User]{Items: users, Total: meta.Total, Pages: meta.Pages}, nil
		}

		ctrl := listview.New(fetch, api.UsersPageSize)
		if err := ctrl.SetFilters(ctx, listview.Filters{Search: *search}); err != nil {
			return err
		}
		if *page > 1 {
			if err := ctrl.SetPage(ctx, *page); err != nil {
				return err
			}
		}

		w := newTable()
		fmt.Fprintln(w, "ID\tNAME\tEMAIL\tROLE\tVERIFIED")
		for _, user := range ctrl.Items() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%v\n", user.ID, user.Name, user.Email, user.Role, user.IsVerified)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Printf("page %d of %d (%d total)\n", ctrl.Page(), ctrl.Pages(), ctrl.Total())
		return nil

	case "set-role":
		if len(args) != 3 {
			return fmt.Errorf("usage: salonhub users set-role <id> <role>")
		}
		user, err := a.client.UpdateUserRole(ctx, args[1], domain.Role(args[2]))
		if err != nil {
			return err
		}
		fmt.Printf("user %s is now %s\n", user.ID, user.Role)
		return nil

	case "delete":
		if len(args) != 2 {
			return fmt.Errorf("usage: salonhub users delete <id>")
		}
		if err := a.client.DeleteUser(ctx, args[1]); err != nil {
			return err
		}
		fmt.Println("user deleted")
		return nil

	default:
		return fmt.Errorf("unknown users subcommand %q", args[0])
	}
}

func (a *app) analytics(ctx context.Context, args []string) error {
	role, err := a.requireRole()
	if err != nil {
		return err
	}
	if !policy.Allowed(role, policy.ActionAnalyticsView) {
		return fmt.Errorf("your role cannot view analytics")
	}

	fs := flag.NewFlagSet("analytics", flag.ContinueOnError)
	salonID := fs.String("salon", "", "per-salon report (owners)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *salonID != "" {
		report, err := a.client.SalonAnalytics(ctx, *salonID)
		if err != nil {
			return err
		}
		w := newTable()
		fmt.Fprintf(w, "bookings\t%d\n", report.TotalBookings)
		fmt.Fprintf(w, "completed\t%d\n", report.CompletedBookings)
		fmt.Fprintf(w, "cancelled\t%d\n", report.CancelledBookings)
		fmt.Fprintf(w, "revenue\t%.2f\n", report.Revenue)
		fmt.Fprintf(w, "rating\t%.1f\n", report.AverageRating)
		return w.Flush()
	}

	if !policy.Allowed(role, policy.ActionAnalyticsAdmin) {
		return fmt.Errorf("pass -salon <id> for a per-salon report")
	}

	scope := "system"
	if rest := fs.Args(); len(rest) > 0 {
		scope = rest[0]
	}
	w := newTable()
	switch scope {
	case "system":
		report, err := a.client.SystemAnalytics(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "users\t%d\n", report.TotalUsers)
		fmt.Fprintf(w, "salons\t%d\n", report.TotalSalons)
		fmt.Fprintf(w, "pending salons\t%d\n", report.PendingSalons)
		fmt.Fprintf(w, "bookings\t%d\n", report.TotalBookings)
		fmt.Fprintf(w, "revenue\t%.2f\n", report.TotalRevenue)
	case "users":
		report, err := a.client.UserAnalytics(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "customers\t%d\n", report.TotalCustomers)
		fmt.Fprintf(w, "salon owners\t%d\n", report.TotalSalonOwners)
		fmt.Fprintf(w, "verified\t%d\n", report.VerifiedUsers)
	case "bookings":
		report, err := a.client.BookingAnalytics(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "pending\t%d\n", report.Pending)
		fmt.Fprintf(w, "confirmed\t%d\n", report.Confirmed)
		fmt.Fprintf(w, "completed\t%d\n", report.Completed)
		fmt.Fprintf(w, "cancelled\t%d\n", report.Cancelled)
		fmt.Fprintf(w, "revenue\t%.2f\n", report.TotalRevenue)
	case "salons":
		report, err := a.client.SalonDirectoryAnalytics(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "approved\t%d\n", report.Approved)
		fmt.Fprintf(w, "pending\t%d\n", report.Pending)
		fmt.Fprintf(w, "rejected\t%d\n", report.Rejected)
		fmt.Fprintf(w, "avg rating\t%.2f\n", report.AverageRating)
	default:
		return fmt.Errorf("unknown analytics scope %q", scope)
	}
	return w.Flush()
}

func (a *app) requireRole() (domain.Role, error) {
	current := a.sessions.Current()
	if current == nil {
		return "", fmt.Errorf("sign in first: salonhub login <email>")
	}
	return current.User.Role, nil
}

func (a *app) readLine() (string, error) {
	line, err := a.stdin.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func actionName(status domain.BookingStatus) string {
	switch status {
	case domain.BookingConfirmed:
		return "confirm"
	case domain.BookingCompleted:
		return "complete"
	case domain.BookingCancelled:
		return "cancel"
	}
	return string(status)
}

func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}
