package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"shipflow/internal/core/application/usecases/commands"
	"shipflow/internal/core/application/usecases/queries"
	"shipflow/internal/core/domain/model/dispute"
	"shipflow/internal/core/domain/model/kernel"
	"shipflow/internal/core/domain/model/shipment"
	"shipflow/internal/core/ports"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type (
	CreateShipmentHandler interface {
		Handle(ctx context.Context, cmd commands.CreateShipmentCommand) (*shipment.Shipment, error)
	}
	AssignCarrierHandler interface {
		Handle(ctx context.Context, cmd commands.AssignCarrierCommand) (*shipment.Shipment, error)
	}
	ChangeStatusHandler interface {
		Handle(ctx context.Context, cmd commands.ChangeStatusCommand) (*shipment.TransitionRecord, error)
	}
	FileDisputeHandler interface {
		Handle(ctx context.Context, cmd commands.FileDisputeCommand) (*dispute.Dispute, error)
	}
	RegisterPushTokenHandler interface {
		Handle(ctx context.Context, cmd commands.RegisterPushTokenCommand) error
	}
	ShipmentStatusHandler interface {
		Handle(ctx context.Context, query queries.GetShipmentStatusQuery) (queries.GetShipmentStatusQueryResponse, error)
	}
	ShipmentHistoryHandler interface {
		Handle(ctx context.Context, query queries.GetShipmentHistoryQuery) ([]queries.GetShipmentHistoryQueryResponse, error)
	}
	ActiveDisputeHandler interface {
		Handle(ctx context.Context, query queries.GetActiveDisputeQuery) (*dispute.Dispute, error)
	}
	// LiveEventSource yields the events published for one user until ctx ends
	// or the returned close function runs.
	LiveEventSource interface {
		Subscribe(ctx context.Context, recipient kernel.UUID) (<-chan ports.StatusEvent, func() error, error)
	}
)

// Handlers groups the use cases the API exposes.
type Handlers struct {
	CreateShipment    CreateShipmentHandler
	AssignCarrier     AssignCarrierHandler
	ChangeStatus      ChangeStatusHandler
	FileDispute       FileDisputeHandler
	RegisterPushToken RegisterPushTokenHandler
	ShipmentStatus    ShipmentStatusHandler
	ShipmentHistory   ShipmentHistoryHandler
	ActiveDispute     ActiveDisputeHandler
	// LiveEvents is nil when no live channel is configured.
	LiveEvents LiveEventSource
}

// Server implements ServerInterface on top of the command and query handlers.
type Server struct {
	h Handlers
}

var _ ServerInterface = (*Server)(nil)

func NewServer(h Handlers) *Server {
	return &Server{h: h}
}

// CreateShipment handles POST /api/v1/shipments.
func (s *Server) CreateShipment(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	var body NewShipment
	if err = ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	id := kernel.NewUUID()
	if body.Id != nil {
		if id, err = toKernel(*body.Id); err != nil {
			return writeError(ctx, err)
		}
	}
	var carrierID *kernel.UUID
	if body.CarrierId != nil {
		carrier, convErr := toKernel(*body.CarrierId)
		if convErr != nil {
			return writeError(ctx, convErr)
		}
		carrierID = &carrier
	}

	cmd, err := commands.NewCreateShipmentCommand(id, actor, carrierID)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.h.CreateShipment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, toShipment(created))
}

// GetShipment handles GET /api/v1/shipments/{shipmentId}.
func (s *Server) GetShipment(ctx echo.Context, shipmentId uuid.UUID) error {
	actor, id, err := actorAndShipment(ctx, shipmentId)
	if err != nil {
		return err
	}

	query, err := queries.NewGetShipmentStatusQuery(id, actor)
	if err != nil {
		return writeError(ctx, err)
	}
	view, err := s.h.ShipmentStatus.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	next := make([]string, 0, len(view.AllowedNextStates))
	for _, st := range view.AllowedNextStates {
		next = append(next, st.String())
	}
	return ctx.JSON(http.StatusOK, ShipmentStatus{
		Shipment: Shipment{
			Id:        view.ID.Bytes(),
			SenderId:  view.SenderID.Bytes(),
			CarrierId: kernel.NullableBytes(view.CarrierID),
			Status:    view.Status.String(),
			CreatedAt: view.CreatedAt,
			UpdatedAt: view.UpdatedAt,
		},
		Role:              view.Role.String(),
		AllowedNextStates: next,
		CanDispute:        view.CanDispute,
	})
}

// ChangeShipmentStatus handles PUT /api/v1/shipments/{shipmentId}/status.
func (s *Server) ChangeShipmentStatus(ctx echo.Context, shipmentId uuid.UUID) error {
	actor, id, err := actorAndShipment(ctx, shipmentId)
	if err != nil {
		return err
	}

	var body ChangeStatusRequest
	if err = ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	status, err := shipment.ParseStatus(body.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewChangeStatusCommand(id, actor, status, shipment.TransitionOptions{
		Note:        deref(body.Note),
		Location:    deref(body.Location),
		EvidenceRef: deref(body.EvidenceRef),
	})
	if err != nil {
		return writeError(ctx, err)
	}

	record, err := s.h.ChangeStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, TransitionRecord{
		Id:          record.ID().Bytes(),
		Seq:         record.Seq(),
		ShipmentId:  record.ShipmentID().Bytes(),
		Status:      record.Status().String(),
		ActorId:     record.ActorID().Bytes(),
		Note:        record.Note(),
		Location:    record.Location(),
		EvidenceRef: record.EvidenceRef(),
		RecordedAt:  record.RecordedAt(),
	})
}

// AssignCarrier handles PUT /api/v1/shipments/{shipmentId}/carrier.
func (s *Server) AssignCarrier(ctx echo.Context, shipmentId uuid.UUID) error {
	actor, id, err := actorAndShipment(ctx, shipmentId)
	if err != nil {
		return err
	}

	var body AssignCarrierRequest
	if err = ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	carrier, err := toKernel(body.CarrierId)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAssignCarrierCommand(id, actor, carrier)
	if err != nil {
		return writeError(ctx, err)
	}
	updated, err := s.h.AssignCarrier.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toShipment(updated))
}

// FileDispute handles POST /api/v1/shipments/{shipmentId}/disputes.
func (s *Server) FileDispute(ctx echo.Context, shipmentId uuid.UUID) error {
	actor, id, err := actorAndShipment(ctx, shipmentId)
	if err != nil {
		return err
	}

	var body DisputeRequest
	if err = ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewFileDisputeCommand(id, actor, body.Reason, body.Description, body.EvidenceRefs)
	if err != nil {
		return writeError(ctx, err)
	}
	filed, err := s.h.FileDispute.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, toDispute(filed))
}

// GetActiveDispute handles GET /api/v1/shipments/{shipmentId}/dispute.
func (s *Server) GetActiveDispute(ctx echo.Context, shipmentId uuid.UUID) error {
	actor, id, err := actorAndShipment(ctx, shipmentId)
	if err != nil {
		return err
	}

	query, err := queries.NewGetActiveDisputeQuery(id, actor)
	if err != nil {
		return writeError(ctx, err)
	}
	latest, err := s.h.ActiveDispute.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toDispute(latest))
}

// GetShipmentHistory handles GET /api/v1/shipments/{shipmentId}/history.
func (s *Server) GetShipmentHistory(ctx echo.Context, shipmentId uuid.UUID) error {
	actor, id, err := actorAndShipment(ctx, shipmentId)
	if err != nil {
		return err
	}

	query, err := queries.NewGetShipmentHistoryQuery(id, actor)
	if err != nil {
		return writeError(ctx, err)
	}
	records, err := s.h.ShipmentHistory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]TransitionRecord, len(records))
	for i, r := range records {
		response[i] = TransitionRecord{
			Id:          r.ID.Bytes(),
			Seq:         r.Seq,
			ShipmentId:  id.Bytes(),
			Status:      r.Status.String(),
			ActorId:     r.ActorID.Bytes(),
			Note:        r.Note,
			Location:    r.Location,
			EvidenceRef: r.EvidenceRef,
			RecordedAt:  r.RecordedAt,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// RegisterPushToken handles POST /api/v1/push-tokens.
func (s *Server) RegisterPushToken(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}

	var body PushTokenRequest
	if err = ctx.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	cmd, err := commands.NewRegisterPushTokenCommand(actor, body.Token)
	if err != nil {
		return writeError(ctx, err)
	}
	if err = s.h.RegisterPushToken.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// StreamEvents handles GET /api/v1/events. The stream ends when the client
// disconnects or the subscription closes.
func (s *Server) StreamEvents(ctx echo.Context) error {
	actor, err := actorFrom(ctx)
	if err != nil {
		return err
	}
	if s.h.LiveEvents == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "Live events are not enabled")
	}

	reqCtx := ctx.Request().Context()
	events, closeSub, err := s.h.LiveEvents.Subscribe(reqCtx, actor)
	if err != nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "Live events are unavailable")
	}
	defer func() {
		_ = closeSub()
	}()

	res := ctx.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set(echo.HeaderCacheControl, "no-cache")
	res.Header().Set(echo.HeaderConnection, "keep-alive")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	for {
		select {
		case <-reqCtx.Done():
			return nil
		case event, ok := <-events:
			if !ok {
				return nil
			}
			raw, err := json.Marshal(event)
			if err != nil {
				continue
			}
			if _, err = fmt.Fprintf(res, "event: status\ndata: %s\n\n", raw); err != nil {
				return nil
			}
			res.Flush()
		}
	}
}

func actorAndShipment(ctx echo.Context, shipmentId uuid.UUID) (kernel.UUID, kernel.UUID, error) {
	actor, err := actorFrom(ctx)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	id, err := toKernel(shipmentId)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return actor, id, nil
}

func toKernel(id uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func toShipment(s *shipment.Shipment) Shipment {
	return Shipment{
		Id:        s.ID().Bytes(),
		SenderId:  s.SenderID().Bytes(),
		CarrierId: kernel.NullableBytes(s.CarrierID()),
		Status:    s.Status().String(),
		CreatedAt: s.CreatedAt(),
		UpdatedAt: s.UpdatedAt(),
	}
}

func toDispute(d *dispute.Dispute) Dispute {
	return Dispute{
		Id:               d.ID().Bytes(),
		ShipmentId:       d.ShipmentID().Bytes(),
		ReporterId:       d.ReporterID().Bytes(),
		Reason:           d.Reason(),
		Description:      d.Description(),
		EvidenceRefs:     d.EvidenceRefs(),
		ResolutionStatus: string(d.Resolution()),
		CreatedAt:        d.CreatedAt(),
	}
}
