package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/recruitment/internal/app/models/dto"
	"github.com/yigit/recruitment/internal/app/services"
	"github.com/yigit/recruitment/internal/middleware"
)

// OfferController handles job offers
type OfferController struct {
	offerService services.OfferService
	logger       zerolog.Logger
}

// NewOfferController creates a new OfferController
func NewOfferController(offerService services.OfferService, logger zerolog.Logger) *OfferController {
	return &OfferController{
		offerService: offerService,
		logger:       logger,
	}
}

// CreateOffer extends an offer to a candidate
// @Summary Create an offer
// @Tags offers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateOfferRequest true "Offer"
// @Success 201 {object} dto.APIResponse{data=dto.OfferResponse} "Offer created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Candidate or job not found"
// @Router /offers [post]
func (c *OfferController) CreateOffer(ctx *gin.Context) {
	var req dto.CreateOfferRequest
	if !bindJSON(ctx, &req) {
		return
	}

	offer, err := c.offerService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("offerID", offer.ID).Int64("candidateID", req.CandidateID).Msg("Offer created")
	ctx.JSON(http.StatusCreated, dto.NewDataResponse(offer))
}

// UpdateOfferStatus changes an offer's status
// @Summary Update offer status
// @Tags offers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Offer ID" Format(int64) minimum(1)
// @Param request body dto.UpdateOfferStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=dto.OfferResponse} "Updated offer"
// @Failure 400 {object} dto.ErrorResponse "Invalid status"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Offer not found"
// @Router /offers/{id}/status [put]
func (c *OfferController) UpdateOfferStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateOfferStatusRequest
	if !bindJSON(ctx, &req) {
		return
	}

	offer, err := c.offerService.UpdateStatus(ctx.Request.Context(), id, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(offer))
}

// GetMyOffers lists the caller's offers
// @Summary List my offers
// @Tags candidate
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.OfferResponse} "Offers"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Candidate only"
// @Router /candidate/offers [get]
func (c *OfferController) GetMyOffers(ctx *gin.Context) {
	p, ok := requirePrincipal(ctx)
	if !ok {
		return
	}

	offers, err := c.offerService.ListForCandidate(ctx.Request.Context(), p)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewDataResponse(offers))
}

// RespondToOffer accepts or rejects one of the caller's offers
// @Summary Respond to an offer
// @Tags candidate
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Offer ID" Format(int64) minimum(1)
// @Param request body dto.RespondOfferRequest true "Answer"
// @Success 200 {object} dto.APIResponse{data=dto.OfferResponse} "Updated offer"
// @Failure 400 {object} dto.ErrorResponse "Offer already answered"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Offer belongs to another candidate"
// @Failure 404 {object} dto.ErrorResponse "Offer not found"
// @Router /candidate/offers/{id}/respond [put]
func (c *OfferController) RespondToOffer(ctx *gin.Context) {
	p, ok := requirePrincipal(ctx)
	if !ok {
		return
	}
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.RespondOfferRequest
	if !bindJSON(ctx, &req) {
		return
	}

	offer, err := c.offerService.Respond(ctx.Request.Context(), p, id, req.Accept)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("offerID", id).Bool("accepted", req.Accept).Msg("Candidate responded to offer")
	ctx.JSON(http.StatusOK, dto.NewDataResponse(offer))
}
