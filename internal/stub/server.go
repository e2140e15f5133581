// Package stub serves the marketplace REST contract from an
// in-memory store. It stands in for the real server of record during
// local development and gateway tests; it carries no business rules
// beyond the wire contract itself.
package stub

import (
	"net/http"
	"strconv"

	"github.com/garciapp2/gameaccounts/internal/domain"
	"github.com/garciapp2/gameaccounts/internal/infrastructure/logger"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// Server wires the store behind gin routes.
type Server struct {
	router *gin.Engine
	store  *Store
	addr   string
}

// NewServer creates a stub server around the given store.
func NewServer(store *Store, log *logger.Logger, addr string) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(RequestIDMiddleware())
	router.Use(RequestLogMiddleware(log))
	router.Use(gin.Recovery())

	s := &Server{router: router, store: store, addr: addr}
	s.setupRoutes()
	return s
}

// Handler exposes the router for httptest-driven tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	return s.router.Run(s.addr)
}

// restHooks adapts one entity's store operations to the uniform REST
// surface. searches maps an endpoint segment to a producer of the
// full filtered slice; paging happens afterwards.
type restHooks[T any, D any] struct {
	list     func(sortKey, direction string) []T
	get      func(id int64) (T, error)
	create   func(draft D) (T, error)
	update   func(id int64, draft D) (T, error)
	remove   func(id int64) error
	searches map[string]func(c *gin.Context) ([]T, bool)
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := s.router.Group("/api")

	registerEntity(api, "users", restHooks[domain.User, domain.UserDraft]{
		list: s.store.ListUsers,
		get:  s.store.GetUser,
		create: func(d domain.UserDraft) (domain.User, error) {
			return s.store.CreateUser(d), nil
		},
		update: s.store.UpdateUser,
		remove: s.store.DeleteUser,
		searches: map[string]func(c *gin.Context) ([]domain.User, bool){
			"name": func(c *gin.Context) ([]domain.User, bool) {
				return s.store.SearchUsers("name", c.Query("name")), true
			},
			"email": func(c *gin.Context) ([]domain.User, bool) {
				return s.store.SearchUsers("email", c.Query("email")), true
			},
		},
	})

	registerEntity(api, "games", restHooks[domain.Game, domain.GameDraft]{
		list: s.store.ListGames,
		get:  s.store.GetGame,
		create: func(d domain.GameDraft) (domain.Game, error) {
			return s.store.CreateGame(d), nil
		},
		update: s.store.UpdateGame,
		remove: s.store.DeleteGame,
		searches: map[string]func(c *gin.Context) ([]domain.Game, bool){
			"name": func(c *gin.Context) ([]domain.Game, bool) {
				return s.store.SearchGames(c.Query("name")), true
			},
		},
	})

	registerEntity(api, "game-accounts", restHooks[domain.GameAccount, domain.GameAccountDraft]{
		list:   func(_, _ string) []domain.GameAccount { return s.store.ListAccounts() },
		get:    s.store.GetAccount,
		create: s.store.CreateAccount,
		update: s.store.UpdateAccount,
		remove: s.store.DeleteAccount,
	})

	accounts := api.Group("/game-accounts")
	accounts.GET("/by-user/:id", func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, s.store.ListAccountsByUser(id))
	})
	accounts.GET("/by-game/:id", func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, s.store.ListAccountsByGame(id))
	})

	registerEntity(api, "advertisements", restHooks[domain.Advertisement, domain.AdvertisementDraft]{
		list:   func(_, _ string) []domain.Advertisement { return s.store.ListAds() },
		get:    s.store.GetAd,
		create: s.store.CreateAd,
		update: s.store.UpdateAd,
		remove: s.store.DeleteAd,
		searches: map[string]func(c *gin.Context) ([]domain.Advertisement, bool){
			"description": func(c *gin.Context) ([]domain.Advertisement, bool) {
				return s.store.SearchAdsByDescription(c.Query("description")), true
			},
			"min-price": func(c *gin.Context) ([]domain.Advertisement, bool) {
				bound, err := decimal.NewFromString(c.Query("minPrice"))
				if err != nil {
					badRequest(c, "minPrice must be a number")
					return nil, false
				}
				return s.store.SearchAdsByPrice(bound, false), true
			},
			"max-price": func(c *gin.Context) ([]domain.Advertisement, bool) {
				bound, err := decimal.NewFromString(c.Query("maxPrice"))
				if err != nil {
					badRequest(c, "maxPrice must be a number")
					return nil, false
				}
				return s.store.SearchAdsByPrice(bound, true), true
			},
		},
	})

	registerEntity(api, "transactions", restHooks[domain.Transaction, domain.TransactionDraft]{
		list:   s.store.ListTransactions,
		get:    s.store.GetTransaction,
		create: s.store.CreateTransaction,
		update: s.store.UpdateTransaction,
		remove: s.store.DeleteTransaction,
	})
}

// registerEntity mounts the uniform CRUD + paging + search routes for
// one entity type.
func registerEntity[T any, D any](api *gin.RouterGroup, path string, h restHooks[T, D]) {
	group := api.Group("/" + path)

	group.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, h.list(c.Query("sort"), c.Query("direction")))
	})

	group.GET("/paged", func(c *gin.Context) {
		page, size := pageParams(c)
		all := h.list(c.Query("sort"), c.Query("direction"))
		c.JSON(http.StatusOK, pageWindow(all, page, size))
	})

	for segment, search := range h.searches {
		search := search
		group.GET("/search/"+segment, func(c *gin.Context) {
			matched, ok := search(c)
			if !ok {
				return
			}
			page, size := pageParams(c)
			c.JSON(http.StatusOK, pageWindow(matched, page, size))
		})
	}

	group.GET("/:id", func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		item, err := h.get(id)
		if err != nil {
			storeError(c, err)
			return
		}
		c.JSON(http.StatusOK, item)
	})

	group.POST("", func(c *gin.Context) {
		var draft D
		if err := c.ShouldBindJSON(&draft); err != nil {
			badRequest(c, "Invalid request body")
			return
		}
		item, err := h.create(draft)
		if err != nil {
			storeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, item)
	})

	group.PUT("/:id", func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		var draft D
		if err := c.ShouldBindJSON(&draft); err != nil {
			badRequest(c, "Invalid request body")
			return
		}
		item, err := h.update(id, draft)
		if err != nil {
			storeError(c, err)
			return
		}
		c.JSON(http.StatusOK, item)
	})

	group.DELETE("/:id", func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			return
		}
		if err := h.remove(id); err != nil {
			storeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	})
}

// pageWindow slices one page out of the full result set. A page
// beyond range yields empty content with the true total, never an
// error.
func pageWindow[T any](items []T, page, size int) domain.Page[T] {
	total := int64(len(items))
	start := page * size
	if start >= len(items) {
		return domain.Page[T]{Content: []T{}, TotalElements: total}
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return domain.Page[T]{Content: items[start:end], TotalElements: total}
}

func pageParams(c *gin.Context) (page, size int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ = strconv.Atoi(c.DefaultQuery("size", "10"))
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = 10
	}
	return page, size
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "Invalid id")
		return 0, false
	}
	return id, true
}

func badRequest(c *gin.Context, msg string) {
	appErr := domain.NewAppError("BAD_REQUEST", msg, http.StatusBadRequest, nil)
	c.JSON(http.StatusBadRequest, domain.NewErrorResponse(appErr))
}

func storeError(c *gin.Context, err error) {
	switch err {
	case ErrNotFound:
		appErr := domain.NewAppError(domain.ErrCodeNotFound, "Record not found", http.StatusNotFound, nil)
		c.JSON(http.StatusNotFound, domain.NewErrorResponse(appErr))
	case ErrBadReference:
		badRequest(c, "Draft references a missing or mismatched record")
	default:
		appErr := domain.NewAppError("INTERNAL_ERROR", err.Error(), http.StatusInternalServerError, err)
		c.JSON(http.StatusInternalServerError, domain.NewErrorResponse(appErr))
	}
}
