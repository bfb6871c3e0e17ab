package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/wherearethenoodles/pkg/httpx"
	"github.com/ghuser/wherearethenoodles/pkg/logger"
	"github.com/ghuser/wherearethenoodles/pkg/session"
	"github.com/ghuser/wherearethenoodles/services/inventory/application/dispatch"
	appsvcs "github.com/ghuser/wherearethenoodles/services/inventory/application/services"
	"github.com/ghuser/wherearethenoodles/services/inventory/application/view"
	"github.com/ghuser/wherearethenoodles/services/inventory/domain/models"
)

// Messages shown in the page banner.
const (
	msgSaveFailed    = "The inventory could not be saved. Your last change is kept until the next restart."
	msgUnknownAction = "That action is not supported."
	msgBadForm       = "The form could not be read."
)

// PageHandler serves the HTML inventory page and its form actions. Successful
// actions redirect to the page for the resulting view state; rejected saves
// and failures answer with the page directly.
type PageHandler struct {
	svc        *appsvcs.Services
	dispatcher *dispatch.Dispatcher
	renderer   *view.Renderer
	prefs      *session.Preferences
	log        logger.Logger
}

// NewPageHandler returns a PageHandler. prefs may be nil.
func NewPageHandler(svc *appsvcs.Services, renderer *view.Renderer, prefs *session.Preferences, log logger.Logger) *PageHandler {
	if log == nil {
		log = logger.Discard()
	}
	return &PageHandler{
		svc:        svc,
		dispatcher: dispatch.New(svc.Inventory, log),
		renderer:   renderer,
		prefs:      prefs,
		log:        log,
	}
}

// Show handles GET /. The tab comes from the query, then the session, then
// the default.
func (h *PageHandler) Show(w http.ResponseWriter, r *http.Request) {
	state := view.ParseState(r.URL.Query(), h.rememberedTab(r))
	h.prefs.SetActiveTab(w, r, state.Tab.String())
	h.render(w, r, http.StatusOK, state, "")
}

// Act handles POST /actions/{action}.
func (h *PageHandler) Act(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		status := http.StatusBadRequest
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			status = http.StatusRequestEntityTooLarge
		}
		h.render(w, r, status, view.ParseState(r.URL.Query(), h.rememberedTab(r)), msgBadForm)
		return
	}

	state := view.ParseState(r.PostForm, h.rememberedTab(r))
	cmd := dispatch.CommandFromForm(chi.URLParam(r, "action"), r.PostForm)
	next, err := h.dispatcher.Dispatch(r.Context(), state, cmd)
	h.prefs.SetActiveTab(w, r, next.Tab.String())

	switch {
	case errors.Is(err, dispatch.ErrUnknownAction):
		h.render(w, r, http.StatusBadRequest, next, msgUnknownAction)
	case err != nil:
		h.log.ErrorContext(r.Context(), "page action failed", "action", cmd.Action, "error", err)
		h.render(w, r, http.StatusInternalServerError, next, msgSaveFailed)
	case !next.Cacheable():
		// drafts only live in this response
		h.render(w, r, http.StatusOK, next, "")
	default:
		http.Redirect(w, r, "/?"+next.Values().Encode(), http.StatusSeeOther)
	}
}

func (h *PageHandler) rememberedTab(r *http.Request) models.Location {
	if raw, ok := h.prefs.ActiveTab(r); ok {
		if tab, err := models.ParseLocation(raw); err == nil {
			return tab
		}
	}
	return view.DefaultTab
}

func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, status int, state view.State, message string) {
	var (
		page []byte
		err  error
	)
	if message == "" {
		items, rev := h.svc.Inventory.Snapshot()
		page, err = h.renderer.RenderBoard(items, rev, state)
	} else {
		page, err = h.renderer.RenderError(h.svc.Inventory.List(), state, message)
	}
	if err != nil {
		h.log.ErrorContext(r.Context(), "render page failed", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	httpx.HTML(w, status, page)
}
