package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sampledata/user-sampler/internal/api/metrics"
	"github.com/sampledata/user-sampler/internal/core/codec"
	"github.com/sampledata/user-sampler/internal/core/domain"
	"github.com/sampledata/user-sampler/internal/core/ports"
)

// UserHandler serves random entity samples and canonical-document
// validation.
type UserHandler struct {
	service      ports.SamplerService
	defaultDepth int
}

func NewUserHandler(service ports.SamplerService, defaultDepth int) *UserHandler {
	return &UserHandler{service: service, defaultDepth: defaultDepth}
}

// SampleUser handles GET /v1/users/sample.
//
// @Summary      Sample a random user of any variant
// @Tags         samples
// @Produce      json
// @Param        depth  query     int    false  "Depth budget for the admin promotion chain"
// @Param        seed   query     int    false  "Seed for reproducible output"
// @Success      200    {object}  map[string]any
// @Failure      400    {object}  errorResponse
// @Router       /v1/users/sample [get]
func (h *UserHandler) SampleUser(c echo.Context) error {
	return h.sample(c, domain.KindUser)
}

// SampleAdmin handles GET /v1/admins/sample.
//
// @Summary      Sample a random admin
// @Tags         samples
// @Produce      json
// @Param        depth  query     int    false  "Depth budget for the admin promotion chain"
// @Param        seed   query     int    false  "Seed for reproducible output"
// @Success      200    {object}  map[string]any
// @Failure      400    {object}  errorResponse
// @Router       /v1/admins/sample [get]
func (h *UserHandler) SampleAdmin(c echo.Context) error {
	return h.sample(c, domain.KindAdmin)
}

// SampleModerator handles GET /v1/moderators/sample.
//
// @Summary      Sample a random moderator
// @Tags         samples
// @Produce      json
// @Param        depth  query     int    false  "Depth budget for the admin promotion chain"
// @Param        seed   query     int    false  "Seed for reproducible output"
// @Success      200    {object}  map[string]any
// @Failure      400    {object}  errorResponse
// @Router       /v1/moderators/sample [get]
func (h *UserHandler) SampleModerator(c echo.Context) error {
	return h.sample(c, domain.KindModerator)
}

// SampleBasicUser handles GET /v1/basic-users/sample.
//
// @Summary      Sample a random basic user
// @Tags         samples
// @Produce      json
// @Param        seed   query     int    false  "Seed for reproducible output"
// @Success      200    {object}  map[string]any
// @Failure      400    {object}  errorResponse
// @Router       /v1/basic-users/sample [get]
func (h *UserHandler) SampleBasicUser(c echo.Context) error {
	return h.sample(c, domain.KindBasicUser)
}

func (h *UserHandler) sample(c echo.Context, kind domain.EntityKind) error {
	var req sampleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	depth := h.defaultDepth
	if req.Depth != nil {
		depth = *req.Depth
	}

	user, err := h.service.Sample(c.Request().Context(), ports.SampleInput{
		Kind:  kind,
		Depth: depth,
		Seed:  req.Seed,
	})
	if err != nil {
		return err
	}

	doc, err := codec.Encode(user)
	if err != nil {
		return err
	}

	metrics.SamplesGeneratedTotal.WithLabelValues(codec.Tag(user)).Inc()
	if admin, ok := user.(domain.Admin); ok {
		metrics.PromotionChainLength.Observe(float64(admin.ChainLen()))
	}

	return c.JSONBlob(http.StatusOK, doc)
}

// Validate handles POST /v1/users/validate — decodes a canonical document
// and, on success, returns its variant and canonical re-encoding.
//
// @Summary      Validate a canonical user document
// @Tags         codec
// @Accept       json
// @Produce      json
// @Param        body  body      map[string]any  true  "Canonical user document"
// @Success      200   {object}  validateResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/users/validate [post]
func (h *UserHandler) Validate(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cannot read request body")
	}

	user, err := codec.Decode(body)
	if err != nil {
		return err
	}

	canonical, err := codec.Encode(user)
	if err != nil {
		return err
	}

	resp := validateResponse{
		Variant:   codec.Tag(user),
		Canonical: canonical,
	}
	if admin, ok := user.(domain.Admin); ok {
		chain := admin.ChainLen()
		resp.PromotionChain = &chain
	}

	return c.JSON(http.StatusOK, resp)
}
