package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"bazaar/internal/client"
	"bazaar/internal/client/search"
	"bazaar/internal/client/state"
	"bazaar/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const usage = `usage: bazaar [-lat N -lng N] <command> [args]

commands:
  list                         bazaars for the active tab with vote tallies
  search                       search bazaars, mosques and transport near -lat/-lng
  open <place>                 reviews and nearby transport for a place
  vote <place> up|down
  fav <place>                  toggle a favorite
  tab all|favorites
  theme                        toggle dark mode
  signup <username> <email> <password>
  login <email> <password>
  logout
  subscribe <place>
  review <place> <rating> [comment...]
  inbox                        notifications, newest first
  read                         mark all notifications read
`

func newLogger(level string) (*zap.SugaredLogger, error) {
	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), zapcore.Lock(os.Stderr), lvl)
	return zap.New(core).Sugar(), nil
}

func main() {
	lat := flag.Float64("lat", 0, "latitude used for searches")
	lng := flag.Float64("lng", 0, "longitude used for searches")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.LoadClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading configuration:", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error creating logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := client.OpenSQLiteStorage(ctx, cfg.StorePath)
	if err != nil {
		logger.Fatalw("opening local storage", "path", cfg.StorePath, "error", err)
	}
	defer store.Close()

	provider, err := search.NewGeminiProvider(cfg.PlacesAPIKey, cfg.PlacesModel, cfg.PlacesEndpoint)
	if err != nil {
		logger.Fatal(err)
	}

	ctrl, err := client.New(ctx, client.NewHTTPClient(cfg.APIURL), provider, store, logger)
	if err != nil {
		logger.Fatal(err)
	}
	if err := ctrl.Init(ctx); err != nil {
		logger.Warnw("some vote tallies could not be loaded", "error", err)
	}

	isSet := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { isSet[f.Name] = true })
	if isSet["lat"] && isSet["lng"] {
		ctrl.SetLocation(state.Location{Lat: *lat, Lng: *lng})
	}

	if err := run(ctx, ctrl, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

var errUsage = errors.New("invalid arguments, run without arguments for help")

func run(ctx context.Context, ctrl *client.Controller, args []string) error {
	cmd, args := args[0], args[1:]

	switch cmd {
	case "list":
		printBazaars(ctrl)
		return nil

	case "search":
		if err := ctrl.Search(ctx); err != nil {
			return err
		}
		st := ctrl.Snapshot()
		printBazaars(ctrl)
		printPlaces("Mosques", st.Places.Mosques)
		printPlaces("Transport", st.Places.Transports)
		return nil

	case "open":
		if len(args) != 1 {
			return errUsage
		}
		if err := ctrl.OpenPlace(ctx, findPlace(ctrl, args[0])); err != nil {
			return err
		}
		st := ctrl.Snapshot()
		fmt.Printf("%s\n\n", st.Detail.Place.Name)
		if len(st.Detail.Reviews) == 0 {
			fmt.Println("  no reviews yet")
		}
		for _, r := range st.Detail.Reviews {
			name := r.UserName
			if r.VerifiedUsername != nil {
				name += " ✓"
			}
			fmt.Printf("  %s  %d★  %s\n", name, r.Rating, r.Comment)
		}
		printPlaces("Transport nearby", st.Places.Transports)
		return nil

	case "vote":
		if len(args) != 2 {
			return errUsage
		}
		voteType := map[string]int{"up": 1, "down": -1}[args[1]]
		if voteType == 0 {
			return errUsage
		}
		if err := ctrl.Vote(ctx, args[0], voteType); err != nil {
			return err
		}
		t := ctrl.Snapshot().Votes[args[0]]
		fmt.Printf("%s: +%d / -%d\n", args[0], t.Up, t.Down)
		return nil

	case "fav":
		if len(args) != 1 {
			return errUsage
		}
		return ctrl.ToggleFavorite(ctx, args[0])

	case "tab":
		if len(args) != 1 {
			return errUsage
		}
		return ctrl.SetTab(ctx, state.Tab(args[0]))

	case "theme":
		return ctrl.ToggleTheme(ctx)

	case "signup":
		if len(args) != 3 {
			return errUsage
		}
		if err := ctrl.Signup(ctx, args[0], args[1], args[2]); err != nil {
			return err
		}
		fmt.Println("signed up as", args[0])
		return nil

	case "login":
		if len(args) != 2 {
			return errUsage
		}
		if err := ctrl.Login(ctx, args[0], args[1]); err != nil {
			return err
		}
		fmt.Println("logged in as", ctrl.Snapshot().Auth.User.Username)
		return nil

	case "logout":
		return ctrl.Logout(ctx)

	case "subscribe":
		if len(args) != 1 {
			return errUsage
		}
		// Subscribe and SubmitReview act on the open place.
		if err := ctrl.OpenPlace(ctx, findPlace(ctrl, args[0])); err != nil {
			return err
		}
		if err := ctrl.Subscribe(ctx); err != nil {
			return err
		}
		fmt.Println("Subscribed to updates for", args[0])
		return nil

	case "review":
		if len(args) < 2 {
			return errUsage
		}
		rating, err := strconv.Atoi(args[1])
		if err != nil {
			return errUsage
		}
		if err := ctrl.OpenPlace(ctx, findPlace(ctrl, args[0])); err != nil {
			return err
		}
		return ctrl.SubmitReview(ctx, rating, strings.Join(args[2:], " "))

	case "inbox":
		if err := ctrl.RefreshNotifications(ctx); err != nil {
			return err
		}
		unread, err := ctrl.Unread(ctx)
		if err != nil {
			return err
		}
		inbox := ctrl.Snapshot().Inbox
		fmt.Printf("%d unread\n", unread)
		for _, n := range inbox {
			mark := " "
			if !n.IsRead {
				mark = "•"
			}
			fmt.Printf("%s %s  %s\n", mark, n.CreatedAt.Local().Format("02 Jan 15:04"), n.Message)
		}
		return nil

	case "read":
		if err := ctrl.RefreshNotifications(ctx); err != nil {
			return err
		}
		return ctrl.MarkRead(ctx)

	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

// findPlace resolves a name against the known bazaars; unknown names become a bare place.
func findPlace(ctrl *client.Controller, name string) state.Place {
	st := ctrl.Snapshot()
	for _, list := range [][]state.Place{st.Places.Bazaars, st.Places.Mosques, st.Places.Transports} {
		for _, p := range list {
			if p.Name == name {
				return p
			}
		}
	}
	return state.Place{Name: name}
}

func printBazaars(ctrl *client.Controller) {
	st := ctrl.Snapshot()
	fmt.Printf("Bazaars (%s)\n", st.UI.Tab)
	for _, b := range ctrl.VisibleBazaars() {
		t := st.Votes[b.Name]
		fav := " "
		for _, f := range st.Favorites {
			if f == b.Name {
				fav = "♥"
			}
		}
		fmt.Printf("%s %-40s +%d/-%d  %s\n", fav, b.Name, t.Up, t.Down, b.MapsURI)
	}
}

func printPlaces(title string, places []state.Place) {
	if len(places) == 0 {
		return
	}
	fmt.Printf("\n%s\n", title)
	for _, p := range places {
		fmt.Printf("  %-40s %s\n", p.Name, p.MapsURI)
	}
}
