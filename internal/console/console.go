// Package console renders marketplace records as terminal tables. It
// is read-mostly glue over the listing controllers; all paging and
// filtering behavior lives in the usecase layer.
package console

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/garciapp2/gameaccounts/internal/domain"
	"github.com/garciapp2/gameaccounts/internal/infrastructure/logger"
	"github.com/garciapp2/gameaccounts/internal/usecase/listing"
)

// Options selects the entity and the action for one console run.
type Options struct {
	Entity      string
	Page        int
	Size        int
	FilterKind  string
	FilterValue string
	Quick       string
	GetID       int64
	DeleteID    int64
}

// Console executes one command against the remote marketplace server.
type Console struct {
	users        domain.UserGateway
	games        domain.GameGateway
	accounts     domain.GameAccountGateway
	ads          domain.AdvertisementGateway
	transactions domain.TransactionGateway
	logger       *logger.Logger
	out          io.Writer
}

// NewConsole creates a console over the five entity gateways.
func NewConsole(
	users domain.UserGateway,
	games domain.GameGateway,
	accounts domain.GameAccountGateway,
	ads domain.AdvertisementGateway,
	transactions domain.TransactionGateway,
	log *logger.Logger,
	out io.Writer,
) *Console {
	return &Console{
		users:        users,
		games:        games,
		accounts:     accounts,
		ads:          ads,
		transactions: transactions,
		logger:       log,
		out:          out,
	}
}

// Run dispatches one command. Exactly one of list (the default), get
// or delete runs per invocation.
func (c *Console) Run(ctx context.Context, opts Options) error {
	switch opts.Entity {
	case "users":
		return runEntity[domain.User](ctx, c, c.users, opts,
			func(item domain.User, q string) bool {
				return strings.Contains(strings.ToLower(item.Name), q) ||
					strings.Contains(strings.ToLower(item.Email), q)
			},
			"ID\tNAME\tEMAIL",
			func(u domain.User) string {
				return fmt.Sprintf("%d\t%s\t%s", u.ID, u.Name, u.Email)
			})
	case "games":
		return runEntity[domain.Game](ctx, c, c.games, opts,
			func(item domain.Game, q string) bool {
				return strings.Contains(strings.ToLower(item.Name), q)
			},
			"ID\tNAME\tPLATFORM\tPRICE",
			func(g domain.Game) string {
				return fmt.Sprintf("%d\t%s\t%s\t%s", g.ID, g.Name, g.Platform, g.Price.StringFixed(2))
			})
	case "game-accounts":
		return runEntity[domain.GameAccount](ctx, c, c.accounts, opts,
			func(item domain.GameAccount, q string) bool {
				return strings.Contains(strings.ToLower(item.CharacterName), q)
			},
			"ID\tUSER\tGAME\tCHARACTER\tLEVEL\tBALANCE",
			func(a domain.GameAccount) string {
				return fmt.Sprintf("%d\t%s\t%s\t%s\t%d\t%s",
					a.ID, a.User.Name, a.Game.Name, a.CharacterName, a.Level, a.Balance.StringFixed(2))
			})
	case "advertisements":
		return runEntity[domain.Advertisement](ctx, c, c.ads, opts,
			func(item domain.Advertisement, q string) bool {
				return strings.Contains(strings.ToLower(item.Description), q)
			},
			"ID\tUSER\tGAME\tDESCRIPTION\tPRICE\tAVAILABLE",
			func(ad domain.Advertisement) string {
				return fmt.Sprintf("%d\t%s\t%s\t%s\t%s\t%t",
					ad.ID, ad.User.Name, ad.Game.Name, ad.Description, ad.Price.StringFixed(2), ad.Available)
			})
	case "transactions":
		return runEntity[domain.Transaction](ctx, c, c.transactions, opts,
			func(item domain.Transaction, q string) bool {
				return strings.Contains(strings.ToLower(item.Description), q)
			},
			"ID\tUSER\tDESCRIPTION\tAMOUNT\tDATE\tTYPE\tSTATUS",
			func(t domain.Transaction) string {
				return fmt.Sprintf("%d\t%s\t%s\t%s\t%s\t%s\t%s",
					t.ID, t.User.Name, t.Description, t.Amount.StringFixed(2),
					t.Date.Format("2006-01-02 15:04"), t.Type, t.Status)
			})
	default:
		return fmt.Errorf("unknown entity %q (expected users, games, game-accounts, advertisements or transactions)", opts.Entity)
	}
}

// reader is the slice of a gateway the console needs. Every entity
// gateway satisfies it regardless of its draft type.
type reader[T any] interface {
	domain.Lister[T]
	GetByID(ctx context.Context, id int64) (T, error)
	Delete(ctx context.Context, id int64) error
}

// runEntity handles get and delete directly and hands listing to a
// controller so the output matches what a list screen would show.
func runEntity[T any](
	ctx context.Context,
	c *Console,
	gw reader[T],
	opts Options,
	match listing.MatchFunc[T],
	header string,
	row func(T) string,
) error {
	if opts.DeleteID > 0 {
		if err := gw.Delete(ctx, opts.DeleteID); err != nil {
			return err
		}
		fmt.Fprintf(c.out, "Deleted %s %d\n", opts.Entity, opts.DeleteID)
		return nil
	}

	if opts.GetID > 0 {
		item, err := gw.GetByID(ctx, opts.GetID)
		if err != nil {
			return err
		}
		encoded, err := json.MarshalIndent(item, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(c.out, string(encoded))
		return nil
	}

	ctrl := listing.NewController(gw, match, c.logger)
	ctrl.ConfigurePageSizes(opts.Size, nil)
	if opts.FilterKind != "" {
		if err := ctrl.SetFilter(ctx, domain.FilterKind(opts.FilterKind), opts.FilterValue); err != nil {
			return err
		}
	}
	if err := ctrl.SetPage(ctx, opts.Page); err != nil {
		return err
	}
	if opts.Quick != "" {
		ctrl.SetQuickSearch(opts.Quick)
		if !ctrl.QuickSearchEnabled() {
			fmt.Fprintln(c.out, "Quick search is disabled while a server filter is active")
		}
	}

	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, header)
	for _, item := range ctrl.VisibleItems() {
		fmt.Fprintln(w, row(item))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	pages := int((ctrl.TotalElements() + int64(ctrl.PageSize()) - 1) / int64(ctrl.PageSize()))
	fmt.Fprintf(c.out, "Page %d of %d (%d records)\n", ctrl.Page()+1, pages, ctrl.TotalElements())
	return nil
}
