package http

import (
	"errors"
	"net/http"

	"parcelops/internal/core/application/usecases/commands"
	"parcelops/internal/core/application/usecases/queries"
	"parcelops/internal/core/domain/model/kernel"
	"parcelops/internal/core/domain/model/shipment"
	"parcelops/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Header names the reverse proxy fills in after authenticating the caller.
// Requests without them run as an anonymous actor.
const (
	headerActorID   = "X-Actor-Id"
	headerActorRole = "X-Actor-Role"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createClientHandler         commands.CreateClientCommandHandler
	createDriverHandler         commands.CreateDriverCommandHandler
	createParcelHandler         commands.CreateParcelCommandHandler
	createShipmentHandler       commands.CreateShipmentCommandHandler
	claimShipmentHandler        commands.ClaimShipmentCommandHandler
	updateStatusHandler         commands.UpdateShipmentStatusCommandHandler
	staffEditHandler            commands.StaffEditShipmentCommandHandler
	deleteShipmentHandler       commands.DeleteShipmentCommandHandler
	trackParcelHandler          queries.TrackParcelQueryHandler
	getUnassignedShipmentsQuery queries.GetUnassignedShipmentsQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createClientHandler commands.CreateClientCommandHandler,
	createDriverHandler commands.CreateDriverCommandHandler,
	createParcelHandler commands.CreateParcelCommandHandler,
	createShipmentHandler commands.CreateShipmentCommandHandler,
	claimShipmentHandler commands.ClaimShipmentCommandHandler,
	updateStatusHandler commands.UpdateShipmentStatusCommandHandler,
	staffEditHandler commands.StaffEditShipmentCommandHandler,
	deleteShipmentHandler commands.DeleteShipmentCommandHandler,
	trackParcelHandler queries.TrackParcelQueryHandler,
	getUnassignedShipmentsQuery queries.GetUnassignedShipmentsQueryHandler,
) *Server {
	return &Server{
		createClientHandler:         createClientHandler,
		createDriverHandler:         createDriverHandler,
		createParcelHandler:         createParcelHandler,
		createShipmentHandler:       createShipmentHandler,
		claimShipmentHandler:        claimShipmentHandler,
		updateStatusHandler:         updateStatusHandler,
		staffEditHandler:            staffEditHandler,
		deleteShipmentHandler:       deleteShipmentHandler,
		trackParcelHandler:          trackParcelHandler,
		getUnassignedShipmentsQuery: getUnassignedShipmentsQuery,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.GET("/track", s.TrackParcel)

	v1 := e.Group("/api/v1")
	v1.POST("/clients", s.CreateClient)
	v1.POST("/drivers", s.CreateDriver)
	v1.POST("/packages", s.CreateParcel)
	v1.POST("/shipments", s.CreateShipment)
	v1.GET("/shipments/unassigned", s.GetUnassignedShipments)
	v1.POST("/shipments/:id/claim", s.ClaimShipment)
	v1.POST("/shipments/:id/status", s.UpdateShipmentStatus)
	v1.PATCH("/shipments/:id", s.EditShipment)
	v1.DELETE("/shipments/:id", s.DeleteShipment)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, response{Success: true, Data: map[string]string{"status": "healthy"}})
}

// CreateClient handles POST /api/v1/clients.
func (s *Server) CreateClient(ctx echo.Context) error {
	var req createClientRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateClientCommand(
		req.Name, req.Email, req.Phone, req.Address, req.City, req.Country)
	if err != nil {
		return fail(ctx, err)
	}

	id, err := s.createClientHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, response{Success: true, Data: createdResponse{ID: id.String()}})
}

// CreateDriver handles POST /api/v1/drivers.
func (s *Server) CreateDriver(ctx echo.Context) error {
	var req createDriverRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	var vehicleID *kernel.EntityID
	if req.VehicleID != "" {
		id, err := kernel.EntityIDFromString(req.VehicleID)
		if err != nil {
			return fail(ctx, err)
		}
		vehicleID = &id
	}

	cmd, err := commands.NewCreateDriverCommand(
		req.Name, req.Email, req.Phone, req.LicenseNumber, vehicleID)
	if err != nil {
		return fail(ctx, err)
	}

	id, err := s.createDriverHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, response{Success: true, Data: createdResponse{ID: id.String()}})
}

// CreateParcel handles POST /api/v1/packages.
func (s *Server) CreateParcel(ctx echo.Context) error {
	var req createParcelRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	clientID, err := kernel.EntityIDFromString(req.ClientID)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewCreateParcelCommand(clientID, req.Weight, req.Pieces, req.Type)
	if err != nil {
		return fail(ctx, err)
	}

	result, err := s.createParcelHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, response{Success: true, Data: createParcelResponse{
		ID:             result.ID.String(),
		TrackingNumber: result.TrackingNumber,
	}})
}

// CreateShipment handles POST /api/v1/shipments.
func (s *Server) CreateShipment(ctx echo.Context) error {
	var req createShipmentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	packageID, err := kernel.EntityIDFromString(req.PackageID)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewCreateShipmentCommand(
		packageID, req.Origin, req.Destination, req.Zone, req.Speed,
		req.Distance, req.ScheduledDate, req.Description)
	if err != nil {
		return fail(ctx, err)
	}

	id, err := s.createShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, response{Success: true, Data: createdResponse{ID: id.String()}})
}

// ClaimShipment handles POST /api/v1/shipments/:id/claim.
func (s *Server) ClaimShipment(ctx echo.Context) error {
	shipmentID, err := kernel.EntityIDFromString(ctx.Param("id"))
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewClaimShipmentCommand(shipmentID, actorFrom(ctx))
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.claimShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response{Success: true})
}

// UpdateShipmentStatus handles POST /api/v1/shipments/:id/status.
func (s *Server) UpdateShipmentStatus(ctx echo.Context) error {
	shipmentID, err := kernel.EntityIDFromString(ctx.Param("id"))
	if err != nil {
		return fail(ctx, err)
	}

	var req updateShipmentStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateShipmentStatusCommand(shipmentID, req.Action, actorFrom(ctx))
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.updateStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response{Success: true})
}

// EditShipment handles PATCH /api/v1/shipments/:id.
func (s *Server) EditShipment(ctx echo.Context) error {
	shipmentID, err := kernel.EntityIDFromString(ctx.Param("id"))
	if err != nil {
		return fail(ctx, err)
	}

	var req editShipmentRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewStaffEditShipmentCommand(shipmentID, actorFrom(ctx), commands.StaffEditShipmentPatch{
		Status:             req.Status,
		DriverID:           req.DriverID,
		Origin:             req.Origin,
		Destination:        req.Destination,
		Zone:               req.Zone,
		Speed:              req.Speed,
		Distance:           req.Distance,
		ScheduledDate:      req.ScheduledDate,
		ClearScheduledDate: req.ClearScheduledDate,
		Description:        req.Description,
	})
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.staffEditHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response{Success: true})
}

// DeleteShipment handles DELETE /api/v1/shipments/:id.
func (s *Server) DeleteShipment(ctx echo.Context) error {
	shipmentID, err := kernel.EntityIDFromString(ctx.Param("id"))
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewDeleteShipmentCommand(shipmentID, actorFrom(ctx))
	if err != nil {
		return fail(ctx, err)
	}

	if err = s.deleteShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response{Success: true})
}

// TrackParcel handles GET /track?number=SW...
func (s *Server) TrackParcel(ctx echo.Context) error {
	query, err := queries.NewTrackParcelQuery(ctx.QueryParam("number"), actorFrom(ctx))
	if err != nil {
		return fail(ctx, err)
	}

	result, err := s.trackParcelHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	events := make([]trackingEventView, len(result.Events))
	for i, event := range result.Events {
		events[i] = trackingEventView{Description: event.Description, Date: event.Date}
	}

	return ctx.JSON(http.StatusOK, response{Success: true, Data: trackingView{
		TrackingNumber:    result.TrackingNumber,
		Status:            result.Status,
		Progress:          result.Progress,
		EstimatedDelivery: result.EstimatedDelivery,
		Events:            events,
		ClientID:          result.Client.ID,
		ClientEmail:       result.Client.Email,
	}})
}

// GetUnassignedShipments handles GET /api/v1/shipments/unassigned.
func (s *Server) GetUnassignedShipments(ctx echo.Context) error {
	query, err := queries.NewGetUnassignedShipmentsQuery(actorFrom(ctx))
	if err != nil {
		return fail(ctx, err)
	}

	shipments, err := s.getUnassignedShipmentsQuery.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	views := make([]unassignedShipmentView, len(shipments))
	for i, sh := range shipments {
		views[i] = unassignedShipmentView{
			ID:            sh.ID,
			PackageID:     sh.PackageID,
			Origin:        sh.Origin,
			Destination:   sh.Destination,
			Zone:          sh.Zone,
			Speed:         sh.Speed,
			Distance:      sh.Distance,
			ScheduledDate: sh.ScheduledDate,
			CreatedAt:     sh.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response{Success: true, Data: views})
}

// actorFrom builds the request actor from the auth headers.
func actorFrom(ctx echo.Context) kernel.Actor {
	id := ctx.Request().Header.Get(headerActorID)
	role := kernel.ParseRole(ctx.Request().Header.Get(headerActorRole))
	if id == "" && role == kernel.RoleAnonymous {
		return kernel.Anonymous()
	}
	return kernel.NewActor(id, role)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, response{
		Success: false,
		Error:   &apiError{Code: http.StatusBadRequest, Message: message},
	})
}

// fail maps a use-case error to its HTTP status. Unrecognized errors answer
// with 500 and a generic message so internals never leak to callers.
func fail(ctx echo.Context, err error) error {
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "Internal server error"
	}

	return ctx.JSON(status, response{
		Success: false,
		Error:   &apiError{Code: status, Message: message},
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, queries.ErrNotParcelOwner),
		errors.Is(err, queries.ErrClaimablePoolRestricted),
		errors.Is(err, shipment.ErrNotAssignedDriver),
		errors.Is(err, commands.ErrDriverRoleRequired),
		errors.Is(err, commands.ErrStaffRoleRequired):
		return http.StatusForbidden
	case errors.Is(err, shipment.ErrAlreadyAssigned),
		errors.Is(err, commands.ErrDuplicateShipmentForPackage),
		errors.Is(err, errs.ErrReferentialIntegrity):
		return http.StatusConflict
	case errors.Is(err, errs.ErrContentionTimeout):
		return http.StatusServiceUnavailable
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
