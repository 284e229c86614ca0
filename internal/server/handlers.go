// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pdiddy/care-navigator/internal/locator"
	"github.com/pdiddy/care-navigator/internal/qa"
	"github.com/pdiddy/care-navigator/internal/research"
	"github.com/pdiddy/care-navigator/internal/session"
	"github.com/pdiddy/care-navigator/internal/symptoms"
	"github.com/pdiddy/care-navigator/internal/trials"
	"github.com/pdiddy/care-navigator/pkg/types"
)

// Handler exposes every pipeline over HTTP.
type Handler struct {
	locator  *locator.Service
	research *research.Service
	trials   *trials.Service
	qa       *qa.Service
	sessions *session.Store
	symptoms *symptoms.Checker
}

// NewHandler wires the services into one HTTP surface.
func NewHandler(
	loc *locator.Service,
	res *research.Service,
	tri *trials.Service,
	ans *qa.Service,
	sess *session.Store,
	sym *symptoms.Checker,
) *Handler {
	return &Handler{
		locator:  loc,
		research: res,
		trials:   tri,
		qa:       ans,
		sessions: sess,
		symptoms: sym,
	}
}

// RegisterRoutes mounts every endpoint on api.
func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/health", h.Health)

	api.POST("/locator/search", h.SearchHospitals)
	api.POST("/research/search", h.SearchResearch)
	api.POST("/trials/search", h.SearchTrials)

	api.GET("/symptoms", h.ListSymptoms)
	api.POST("/symptoms/check", h.CheckSymptoms)

	api.POST("/qa/ask", h.Ask)

	api.GET("/session/medications", h.ListMedications)
	api.POST("/session/medications", h.AddMedication)
	api.DELETE("/session/medications/:index", h.RemoveMedication)
	api.GET("/session/journal", h.ListJournal)
	api.POST("/session/journal", h.AddJournalEntry)
	api.GET("/session/appointments", h.ListAppointments)
	api.POST("/session/appointments", h.AddAppointment)
}

// statusForKind maps a classified error to its HTTP status.
func statusForKind(kind types.ErrorKind) int {
	switch kind {
	case types.KindValidation:
		return http.StatusBadRequest
	case types.KindNotFound:
		return http.StatusNotFound
	case types.KindNetworkTimeout:
		return http.StatusGatewayTimeout
	case types.KindNetworkFailure, types.KindMalformedResponse:
		return http.StatusBadGateway
	case types.KindCapabilityUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// errorBody is the JSON shape every failed request answers with.
type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// fail writes the classified error response. Unclassified errors stay
// opaque to the client.
func fail(c echo.Context, err error) error {
	var terr *types.Error
	if errors.As(err, &terr) {
		return c.JSON(statusForKind(terr.Kind), errorBody{
			Error: errorDetail{Kind: terr.Kind.String(), Message: terr.Message},
		})
	}
	return c.JSON(http.StatusInternalServerError, errorBody{
		Error: errorDetail{Kind: "internal", Message: "internal server error"},
	})
}

// Health answers liveness probes. The question-answering availability
// flag rides along so a frontend can hide the feature.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":       "ok",
		"qa_available": h.qa.Available(),
	})
}

type hospitalSearchRequest struct {
	Location string `json:"location"`
}

func (h *Handler) SearchHospitals(c echo.Context) error {
	var req hospitalSearchRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, types.Invalid("invalid request body"))
	}
	result, err := h.locator.Locate(c.Request().Context(), req.Location)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

type researchSearchRequest struct {
	Topic string `json:"topic"`
}

func (h *Handler) SearchResearch(c echo.Context) error {
	var req researchSearchRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, types.Invalid("invalid request body"))
	}
	articles, err := h.research.Lookup(c.Request().Context(), req.Topic)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"articles": articles})
}

type trialSearchRequest struct {
	Condition string `json:"condition"`
	Location  string `json:"location"`
	Phase     string `json:"phase"`
}

func (h *Handler) SearchTrials(c echo.Context) error {
	var req trialSearchRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, types.Invalid("invalid request body"))
	}
	records, err := h.trials.Find(c.Request().Context(), trials.Query{
		Condition: req.Condition,
		Location:  req.Location,
		Phase:     req.Phase,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"trials": records})
}

func (h *Handler) ListSymptoms(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{"symptoms": h.symptoms.Supported()})
}

type symptomCheckRequest struct {
	Symptoms []string `json:"symptoms"`
}

func (h *Handler) CheckSymptoms(c echo.Context) error {
	var req symptomCheckRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, types.Invalid("invalid request body"))
	}
	suggestions, err := h.symptoms.Check(req.Symptoms)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"suggestions": suggestions})
}

type askRequest struct {
	Question string `json:"question"`
}

func (h *Handler) Ask(c echo.Context) error {
	var req askRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, types.Invalid("invalid request body"))
	}
	answer, err := h.qa.Ask(c.Request().Context(), req.Question)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"answer": answer.Text})
}

func (h *Handler) ListMedications(c echo.Context) error {
	meds, err := h.sessions.Medications(c.Request().Context(), sessionID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"medications": meds})
}

func (h *Handler) AddMedication(c echo.Context) error {
	var med types.Medication
	if err := c.Bind(&med); err != nil {
		return fail(c, types.Invalid("invalid request body"))
	}
	if err := h.sessions.AddMedication(c.Request().Context(), sessionID(c), med); err != nil {
		return fail(c, err)
	}
	return c.NoContent(http.StatusCreated)
}

func (h *Handler) RemoveMedication(c echo.Context) error {
	var index int
	if err := echo.PathParamsBinder(c).Int("index", &index).BindError(); err != nil {
		return fail(c, types.Invalid("removal index must be an integer"))
	}
	if err := h.sessions.RemoveMedication(c.Request().Context(), sessionID(c), index); err != nil {
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ListJournal(c echo.Context) error {
	entries, err := h.sessions.JournalEntries(c.Request().Context(), sessionID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"entries": entries})
}

func (h *Handler) AddJournalEntry(c echo.Context) error {
	var entry types.JournalEntry
	if err := c.Bind(&entry); err != nil {
		return fail(c, types.Invalid("invalid request body"))
	}
	if err := h.sessions.AddJournalEntry(c.Request().Context(), sessionID(c), entry); err != nil {
		return fail(c, err)
	}
	return c.NoContent(http.StatusCreated)
}

func (h *Handler) ListAppointments(c echo.Context) error {
	appts, err := h.sessions.Appointments(c.Request().Context(), sessionID(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"appointments": appts})
}

func (h *Handler) AddAppointment(c echo.Context) error {
	var appt types.Appointment
	if err := c.Bind(&appt); err != nil {
		return fail(c, types.Invalid("invalid request body"))
	}
	if err := h.sessions.AddAppointment(c.Request().Context(), sessionID(c), appt); err != nil {
		return fail(c, err)
	}
	return c.NoContent(http.StatusCreated)
}
