package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	cartapp "github.com/dwikikusuma/guitar-cart/internal/cart/app"
	"github.com/dwikikusuma/guitar-cart/internal/cart/domain"
	catalogapp "github.com/dwikikusuma/guitar-cart/internal/catalog/app"
)

type Server struct {
	cart    *cartapp.Service
	catalog *catalogapp.Service
	log     *slog.Logger
}

func NewServer(cart *cartapp.Service, catalog *catalogapp.Service, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{cart: cart, catalog: catalog, log: log}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	mux.HandleFunc("GET /api/catalog", s.listCatalog)
	mux.HandleFunc("GET /api/cart", s.getCart)
	mux.HandleFunc("DELETE /api/cart", s.clearCart)
	mux.HandleFunc("POST /api/cart/items", s.addItem)
	mux.HandleFunc("DELETE /api/cart/items/{id}", s.removeItem)
	mux.HandleFunc("POST /api/cart/items/{id}/increase", s.increase)
	mux.HandleFunc("POST /api/cart/items/{id}/decrease", s.decrease)

	return withRequestID(s.log, mux)
}

type lineView struct {
	domain.LineItem
	Subtotal int64 `json:"subtotal"`
}

type cartView struct {
	Items   []lineView `json:"items"`
	IsEmpty bool       `json:"isEmpty"`
	Total   int64      `json:"total"`
}

func toView(c domain.Cart) cartView {
	items := make([]lineView, 0, len(c))
	for _, li := range c {
		items = append(items, lineView{LineItem: li, Subtotal: li.Subtotal()})
	}
	return cartView{
		Items:   items,
		IsEmpty: c.IsEmpty(),
		Total:   c.Total(),
	}
}

type addItemRequest struct {
	ID int64 `json:"id"`
}

func (s *Server) listCatalog(w http.ResponseWriter, r *http.Request) {
	products, err := s.catalog.ListProducts(r.Context())
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, "INTERNAL", "error listing catalog", err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (s *Server) getCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toView(s.cart.Cart()))
}

func (s *Server) addItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, r, http.StatusBadRequest, "INVALID_ARGUMENT", "body must be {\"id\": <number>}", err)
		return
	}

	product, err := s.catalog.GetProduct(r.Context(), req.ID)
	switch {
	case errors.Is(err, catalogapp.ErrInvalidInput):
		s.writeError(w, r, http.StatusBadRequest, "INVALID_ARGUMENT", "product id must be positive", err)
		return
	case errors.Is(err, catalogapp.ErrNotFound):
		s.writeError(w, r, http.StatusNotFound, "NOT_FOUND", "product not found", err)
		return
	case err != nil:
		s.writeError(w, r, http.StatusInternalServerError, "INTERNAL", "error getting product", err)
		return
	}

	cart, err := s.cart.AddToCart(r.Context(), product)
	s.respondCart(w, r, cart, err)
}

func (s *Server) removeItem(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}
	cart, err := s.cart.RemoveFromCart(r.Context(), id)
	s.respondCart(w, r, cart, err)
}

func (s *Server) increase(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}
	cart, err := s.cart.IncreaseQuantity(r.Context(), id)
	s.respondCart(w, r, cart, err)
}

func (s *Server) decrease(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}
	cart, err := s.cart.DecreaseQuantity(r.Context(), id)
	s.respondCart(w, r, cart, err)
}

func (s *Server) clearCart(w http.ResponseWriter, r *http.Request) {
	cart, err := s.cart.ClearCart(r.Context())
	s.respondCart(w, r, cart, err)
}

func (s *Server) respondCart(w http.ResponseWriter, r *http.Request, cart domain.Cart, err error) {
	if err != nil {
		s.writeError(w, r, http.StatusInternalServerError, "INTERNAL", "cart updated but not saved", err)
		return
	}
	writeJSON(w, http.StatusOK, toView(cart))
}

func (s *Server) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, "INVALID_ARGUMENT", "item id must be a number", err)
		return 0, false
	}
	return id, true
}

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, code, msg string, err error) {
	level := slog.LevelWarn
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	s.log.Log(r.Context(), level, msg,
		slog.String("request_id", RequestID(r.Context())),
		slog.Int("status", status),
		slog.Any("err", err),
	)

	var body errorBody
	body.Error.Code = code
	body.Error.Message = msg
	writeJSON(w, status, body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
